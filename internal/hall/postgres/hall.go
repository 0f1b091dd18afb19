package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/megapark/hotel-backend/internal"
	"github.com/megapark/hotel-backend/internal/hall"
)

type HallRepository struct {
	db *gorm.DB
}

func NewHallRepository(db *gorm.DB) *HallRepository {
	return &HallRepository{db: db}
}

func (r *HallRepository) GetAll() ([]*hall.Hall, error) {
	var halls []*hall.Hall
	if err := r.db.Order("created_at DESC").Find(&halls).Error; err != nil {
		return nil, err
	}
	return halls, nil
}

func (r *HallRepository) GetByID(id string) (*hall.Hall, error) {
	var h hall.Hall
	if err := r.db.First(&h, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrHallNotFound
		}
		return nil, err
	}
	return &h, nil
}

func (r *HallRepository) Create(h *hall.Hall) error {
	return r.db.Create(h).Error
}

func (r *HallRepository) Update(h *hall.Hall) error {
	return r.db.Save(h).Error
}

func (r *HallRepository) Delete(id string) error {
	result := r.db.Delete(&hall.Hall{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return internal.ErrHallNotFound
	}
	return nil
}
