package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/megapark/hotel-backend/internal"
	"github.com/megapark/hotel-backend/internal/menu"
)

type MenuRepository struct {
	db *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{db: db}
}

func (r *MenuRepository) GetAll() ([]*menu.Item, error) {
	var items []*menu.Item
	if err := r.db.Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MenuRepository) GetByID(id string) (*menu.Item, error) {
	var item menu.Item
	if err := r.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrMenuItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) Create(item *menu.Item) error {
	return r.db.Create(item).Error
}

func (r *MenuRepository) Update(item *menu.Item) error {
	return r.db.Save(item).Error
}

func (r *MenuRepository) Delete(id string) error {
	result := r.db.Delete(&menu.Item{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return internal.ErrMenuItemNotFound
	}
	return nil
}
