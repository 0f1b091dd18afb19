package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/megapark/hotel-backend/internal"
	"github.com/megapark/hotel-backend/internal/order"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) GetAll() ([]*order.Order, error) {
	var orders []*order.Order
	if err := r.db.Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepository) GetByID(id string) (*order.Order, error) {
	var o order.Order
	if err := r.db.First(&o, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrOrderNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) Create(o *order.Order) error {
	return r.db.Create(o).Error
}

func (r *OrderRepository) Update(o *order.Order) error {
	return r.db.Save(o).Error
}
