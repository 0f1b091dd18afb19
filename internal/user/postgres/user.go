package postgres

import (
	"github.com/megapark/hotel-backend/internal"
	"github.com/megapark/hotel-backend/internal/user"
	"gorm.io/gorm"
)

// UserRepository implements user.Repository using GORM.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) user.Repository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetAll() ([]*user.Record, error) {
	var records []*user.Record
	err := r.db.Order("created_at DESC").Find(&records).Error
	return records, err
}

func (r *UserRepository) GetByID(id string) (*user.Record, error) {
	var rec user.Record
	err := r.db.Where("id = ?", id).First(&rec).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, internal.ErrUserNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *UserRepository) GetByEmail(email string) (*user.Record, error) {
	var rec user.Record
	err := r.db.Where("email = ?", email).First(&rec).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, internal.ErrUserNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *UserRepository) Create(rec *user.Record) error {
	return r.db.Create(rec).Error
}

func (r *UserRepository) Update(rec *user.Record) error {
	return r.db.Save(rec).Error
}

func (r *UserRepository) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&user.Record{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return internal.ErrUserNotFound
	}
	return nil
}
