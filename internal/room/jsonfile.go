package room

import (
	"github.com/megapark/hotel-backend/internal"
	"github.com/megapark/hotel-backend/internal/storage/jsonstore"
)

// FileRepository implements Repository on the JSON-file store. New rooms go
// to the front of the file so listing keeps newest-first order without a
// sort pass.
type FileRepository struct {
	rooms *jsonstore.Collection[Room]
}

func NewFileRepository(dataDir string) (*FileRepository, error) {
	rooms, err := jsonstore.NewCollection[Room](dataDir, "rooms")
	if err != nil {
		return nil, err
	}
	return &FileRepository{rooms: rooms}, nil
}

func (r *FileRepository) GetAll() ([]*Room, error) {
	rooms, err := r.rooms.All()
	if err != nil {
		return nil, err
	}

	out := make([]*Room, len(rooms))
	for i := range rooms {
		rm := rooms[i]
		out[i] = &rm
	}
	return out, nil
}

func (r *FileRepository) GetByID(id string) (*Room, error) {
	rooms, err := r.rooms.All()
	if err != nil {
		return nil, err
	}
	for i := range rooms {
		if rooms[i].ID == id {
			rm := rooms[i]
			return &rm, nil
		}
	}
	return nil, internal.ErrRoomNotFound
}

func (r *FileRepository) Create(rm *Room) error {
	return r.rooms.Mutate(func(rooms []Room) ([]Room, error) {
		return append([]Room{*rm}, rooms...), nil
	})
}

func (r *FileRepository) Update(rm *Room) error {
	return r.rooms.Mutate(func(rooms []Room) ([]Room, error) {
		for i := range rooms {
			if rooms[i].ID == rm.ID {
				rooms[i] = *rm
				return rooms, nil
			}
		}
		return nil, internal.ErrRoomNotFound
	})
}

func (r *FileRepository) Delete(id string) error {
	return r.rooms.Mutate(func(rooms []Room) ([]Room, error) {
		for i := range rooms {
			if rooms[i].ID == id {
				return append(rooms[:i], rooms[i+1:]...), nil
			}
		}
		return nil, internal.ErrRoomNotFound
	})
}
