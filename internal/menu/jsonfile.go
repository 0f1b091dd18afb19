package menu

import (
	"github.com/megapark/hotel-backend/internal"
	"github.com/megapark/hotel-backend/internal/storage/jsonstore"
)

type FileRepository struct {
	items *jsonstore.Collection[Item]
}

func NewFileRepository(dataDir string) (*FileRepository, error) {
	items, err := jsonstore.NewCollection[Item](dataDir, "menu")
	if err != nil {
		return nil, err
	}
	return &FileRepository{items: items}, nil
}

func (r *FileRepository) GetAll() ([]*Item, error) {
	items, err := r.items.All()
	if err != nil {
		return nil, err
	}
	out := make([]*Item, len(items))
	for i := range items {
		it := items[i]
		out[i] = &it
	}
	return out, nil
}

func (r *FileRepository) GetByID(id string) (*Item, error) {
	items, err := r.items.All()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			it := items[i]
			return &it, nil
		}
	}
	return nil, internal.ErrMenuItemNotFound
}

func (r *FileRepository) Create(item *Item) error {
	return r.items.Mutate(func(items []Item) ([]Item, error) {
		return append([]Item{*item}, items...), nil
	})
}

func (r *FileRepository) Update(item *Item) error {
	return r.items.Mutate(func(items []Item) ([]Item, error) {
		for i := range items {
			if items[i].ID == item.ID {
				items[i] = *item
				return items, nil
			}
		}
		return nil, internal.ErrMenuItemNotFound
	})
}

func (r *FileRepository) Delete(id string) error {
	return r.items.Mutate(func(items []Item) ([]Item, error) {
		for i := range items {
			if items[i].ID == id {
				return append(items[:i], items[i+1:]...), nil
			}
		}
		return nil, internal.ErrMenuItemNotFound
	})
}
