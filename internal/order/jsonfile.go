package order

import (
	"github.com/megapark/hotel-backend/internal"
	"github.com/megapark/hotel-backend/internal/storage/jsonstore"
)

type FileRepository struct {
	orders *jsonstore.Collection[Order]
}

func NewFileRepository(dataDir string) (*FileRepository, error) {
	orders, err := jsonstore.NewCollection[Order](dataDir, "orders")
	if err != nil {
		return nil, err
	}
	return &FileRepository{orders: orders}, nil
}

func (r *FileRepository) GetAll() ([]*Order, error) {
	orders, err := r.orders.All()
	if err != nil {
		return nil, err
	}
	out := make([]*Order, len(orders))
	for i := range orders {
		o := orders[i]
		out[i] = &o
	}
	return out, nil
}

func (r *FileRepository) GetByID(id string) (*Order, error) {
	orders, err := r.orders.All()
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			o := orders[i]
			return &o, nil
		}
	}
	return nil, internal.ErrOrderNotFound
}

func (r *FileRepository) Create(o *Order) error {
	return r.orders.Mutate(func(orders []Order) ([]Order, error) {
		return append([]Order{*o}, orders...), nil
	})
}

func (r *FileRepository) Update(o *Order) error {
	return r.orders.Mutate(func(orders []Order) ([]Order, error) {
		for i := range orders {
			if orders[i].ID == o.ID {
				orders[i] = *o
				return orders, nil
			}
		}
		return nil, internal.ErrOrderNotFound
	})
}
