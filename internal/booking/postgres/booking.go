package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/megapark/hotel-backend/internal"
	"github.com/megapark/hotel-backend/internal/booking"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) GetAll() ([]*booking.Booking, error) {
	var bookings []*booking.Booking
	if err := r.db.Order("created_at DESC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingRepository) GetByID(id string) (*booking.Booking, error) {
	var b booking.Booking
	if err := r.db.First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrBookingNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) GetByTransactionID(txID string) (*booking.Booking, error) {
	var b booking.Booking
	if err := r.db.First(&b, "transaction_id = ?", txID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrBookingNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) Create(b *booking.Booking) error {
	return r.db.Create(b).Error
}

func (r *BookingRepository) Update(b *booking.Booking) error {
	return r.db.Save(b).Error
}
