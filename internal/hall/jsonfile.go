package hall

import (
	"github.com/megapark/hotel-backend/internal"
	"github.com/megapark/hotel-backend/internal/storage/jsonstore"
)

// FileRepository stores halls in <data-dir>/halls.json, newest first.
type FileRepository struct {
	col *jsonstore.Collection[Hall]
}

func NewFileRepository(dataDir string) (*FileRepository, error) {
	col, err := jsonstore.NewCollection[Hall](dataDir, "halls")
	if err != nil {
		return nil, err
	}
	return &FileRepository{col: col}, nil
}

func (r *FileRepository) GetAll() ([]*Hall, error) {
	halls, err := r.col.All()
	if err != nil {
		return nil, err
	}
	out := make([]*Hall, len(halls))
	for i := range halls {
		h := halls[i]
		out[i] = &h
	}
	return out, nil
}

func (r *FileRepository) GetByID(id string) (*Hall, error) {
	halls, err := r.col.All()
	if err != nil {
		return nil, err
	}
	for i := range halls {
		if halls[i].ID == id {
			h := halls[i]
			return &h, nil
		}
	}
	return nil, internal.ErrHallNotFound
}

func (r *FileRepository) Create(h *Hall) error {
	return r.col.Mutate(func(halls []Hall) ([]Hall, error) {
		return append([]Hall{*h}, halls...), nil
	})
}

func (r *FileRepository) Update(h *Hall) error {
	return r.col.Mutate(func(halls []Hall) ([]Hall, error) {
		for i := range halls {
			if halls[i].ID == h.ID {
				halls[i] = *h
				return halls, nil
			}
		}
		return nil, internal.ErrHallNotFound
	})
}

func (r *FileRepository) Delete(id string) error {
	return r.col.Mutate(func(halls []Hall) ([]Hall, error) {
		for i := range halls {
			if halls[i].ID == id {
				return append(halls[:i], halls[i+1:]...), nil
			}
		}
		return nil, internal.ErrHallNotFound
	})
}
