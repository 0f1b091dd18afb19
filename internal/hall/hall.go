package hall

import (
	"time"

	"github.com/megapark/hotel-backend/internal"
)

type Hall struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Description  string    `json:"description"`
	Capacity     int       `json:"capacity" gorm:"not null"`
	PricePerDay  float64   `json:"pricePerDay" gorm:"column:price_per_day;not null"`
	Images       []string  `json:"images" gorm:"serializer:json"`
	Amenities    []string  `json:"amenities" gorm:"serializer:json"`
	Availability bool      `json:"availability" gorm:"default:true"`
	CreatedAt    time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt    time.Time `json:"updatedAt" gorm:"column:updated_at"`
}

func (Hall) TableName() string {
	return "halls"
}

type Repository interface {
	GetAll() ([]*Hall, error)
	GetByID(id string) (*Hall, error)
	Create(hall *Hall) error
	Update(hall *Hall) error
	Delete(id string) error
}

type CreateHallDTO struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Capacity     *int     `json:"capacity"`
	PricePerDay  *float64 `json:"pricePerDay"`
	Images       []string `json:"images"`
	Amenities    []string `json:"amenities"`
	Availability *bool    `json:"availability"`
}

func (d *CreateHallDTO) Validate() error {
	var errs []internal.ValidationError

	if d.Name == "" || len(d.Name) > 255 {
		errs = append(errs, internal.ValidationError{Field: "name", Message: "name required", Code: string(internal.ErrCodeValidationFailed)})
	}
	if d.Capacity == nil || *d.Capacity < 1 {
		errs = append(errs, internal.ValidationError{Field: "capacity", Message: "capacity must be > 0", Code: string(internal.ErrCodeValidationFailed)})
	}
	if d.PricePerDay == nil || *d.PricePerDay < 0 {
		errs = append(errs, internal.ValidationError{Field: "pricePerDay", Message: "price must be >= 0", Code: string(internal.ErrCodeValidationFailed)})
	}

	if len(errs) > 0 {
		return internal.NewValidationFieldErrors(errs)
	}
	return nil
}

type UpdateHallDTO struct {
	Name         *string   `json:"name,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Capacity     *int      `json:"capacity,omitempty"`
	PricePerDay  *float64  `json:"pricePerDay,omitempty"`
	Images       *[]string `json:"images,omitempty"`
	Amenities    *[]string `json:"amenities,omitempty"`
	Availability *bool     `json:"availability,omitempty"`
}

func (d *UpdateHallDTO) Validate() error {
	if d.Name == nil && d.Description == nil && d.Capacity == nil && d.PricePerDay == nil &&
		d.Images == nil && d.Amenities == nil && d.Availability == nil {
		return internal.NewValidationError("At least one field required", internal.ErrCodeValidationFailed)
	}

	var errs []internal.ValidationError

	if d.Name != nil && (*d.Name == "" || len(*d.Name) > 255) {
		errs = append(errs, internal.ValidationError{Field: "name", Message: "name required", Code: string(internal.ErrCodeValidationFailed)})
	}
	if d.Capacity != nil && *d.Capacity < 1 {
		errs = append(errs, internal.ValidationError{Field: "capacity", Message: "capacity must be > 0", Code: string(internal.ErrCodeValidationFailed)})
	}
	if d.PricePerDay != nil && *d.PricePerDay < 0 {
		errs = append(errs, internal.ValidationError{Field: "pricePerDay", Message: "price must be >= 0", Code: string(internal.ErrCodeValidationFailed)})
	}

	if len(errs) > 0 {
		return internal.NewValidationFieldErrors(errs)
	}
	return nil
}
