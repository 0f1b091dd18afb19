package room

import (
	"time"

	"github.com/megapark/hotel-backend/internal"
)

// Room types offered by the property.
const (
	TypeStandard  = "standard"
	TypeDouble    = "double"
	TypeDeluxe    = "deluxe"
	TypeSuite     = "suite"
	TypeExecutive = "executive"
)

func validType(t string) bool {
	switch t {
	case TypeStandard, TypeDouble, TypeDeluxe, TypeSuite, TypeExecutive:
		return true
	}
	return false
}

type Room struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	RoomNumber   string    `json:"roomNumber" gorm:"column:room_number;not null"`
	Name         string    `json:"name" gorm:"not null"`
	Type         string    `json:"type" gorm:"not null;default:standard"`
	Description  string    `json:"description"`
	PricePerNight float64  `json:"pricePerNight" gorm:"column:price_per_night;not null"`
	Images       []string  `json:"images" gorm:"serializer:json"`
	Amenities    []string  `json:"amenities" gorm:"serializer:json"`
	Capacity     int       `json:"capacity" gorm:"default:2"`
	Availability bool      `json:"availability" gorm:"default:true"`
	CreatedAt    time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt    time.Time `json:"updatedAt" gorm:"column:updated_at"`
}

func (Room) TableName() string {
	return "rooms"
}

type Repository interface {
	GetAll() ([]*Room, error)
	GetByID(id string) (*Room, error)
	Create(room *Room) error
	Update(room *Room) error
	Delete(id string) error
}

// CreateRoomDTO is the payload for creating a room.
type CreateRoomDTO struct {
	RoomNumber    string   `json:"roomNumber"`
	Name          string   `json:"name"`
	Type          string   `json:"type"`
	Description   string   `json:"description"`
	PricePerNight *float64 `json:"pricePerNight"`
	Images        []string `json:"images"`
	Amenities     []string `json:"amenities"`
	Capacity      *int     `json:"capacity"`
	Availability  *bool    `json:"availability"`
}

func (d *CreateRoomDTO) Validate() error {
	var errs []internal.ValidationError

	if d.RoomNumber == "" || len(d.RoomNumber) > 50 {
		errs = append(errs, internal.ValidationError{Field: "roomNumber", Message: "room number required", Code: string(internal.ErrCodeValidationFailed)})
	}
	if d.Name == "" || len(d.Name) > 255 {
		errs = append(errs, internal.ValidationError{Field: "name", Message: "name required", Code: string(internal.ErrCodeValidationFailed)})
	}
	if d.Type == "" {
		d.Type = TypeStandard
	} else if !validType(d.Type) {
		errs = append(errs, internal.ValidationError{Field: "type", Message: "invalid room type", Code: string(internal.ErrCodeValidationFailed)})
	}
	if d.PricePerNight == nil || *d.PricePerNight < 0 {
		errs = append(errs, internal.ValidationError{Field: "pricePerNight", Message: "price must be >= 0", Code: string(internal.ErrCodeValidationFailed)})
	}
	if d.Capacity != nil && *d.Capacity < 1 {
		errs = append(errs, internal.ValidationError{Field: "capacity", Message: "capacity must be > 0", Code: string(internal.ErrCodeValidationFailed)})
	}

	if len(errs) > 0 {
		return internal.NewValidationFieldErrors(errs)
	}
	return nil
}

// UpdateRoomDTO carries mutable room fields; nil means unchanged.
type UpdateRoomDTO struct {
	RoomNumber    *string   `json:"roomNumber,omitempty"`
	Name          *string   `json:"name,omitempty"`
	Type          *string   `json:"type,omitempty"`
	Description   *string   `json:"description,omitempty"`
	PricePerNight *float64  `json:"pricePerNight,omitempty"`
	Images        *[]string `json:"images,omitempty"`
	Amenities     *[]string `json:"amenities,omitempty"`
	Capacity      *int      `json:"capacity,omitempty"`
	Availability  *bool     `json:"availability,omitempty"`
}

func (d *UpdateRoomDTO) Validate() error {
	if d.RoomNumber == nil && d.Name == nil && d.Type == nil && d.Description == nil &&
		d.PricePerNight == nil && d.Images == nil && d.Amenities == nil &&
		d.Capacity == nil && d.Availability == nil {
		return internal.NewValidationError("At least one field required", internal.ErrCodeValidationFailed)
	}

	var errs []internal.ValidationError

	if d.RoomNumber != nil && (*d.RoomNumber == "" || len(*d.RoomNumber) > 50) {
		errs = append(errs, internal.ValidationError{Field: "roomNumber", Message: "room number required", Code: string(internal.ErrCodeValidationFailed)})
	}
	if d.Name != nil && (*d.Name == "" || len(*d.Name) > 255) {
		errs = append(errs, internal.ValidationError{Field: "name", Message: "name required", Code: string(internal.ErrCodeValidationFailed)})
	}
	if d.Type != nil && !validType(*d.Type) {
		errs = append(errs, internal.ValidationError{Field: "type", Message: "invalid room type", Code: string(internal.ErrCodeValidationFailed)})
	}
	if d.PricePerNight != nil && *d.PricePerNight < 0 {
		errs = append(errs, internal.ValidationError{Field: "pricePerNight", Message: "price must be >= 0", Code: string(internal.ErrCodeValidationFailed)})
	}
	if d.Capacity != nil && *d.Capacity < 1 {
		errs = append(errs, internal.ValidationError{Field: "capacity", Message: "capacity must be > 0", Code: string(internal.ErrCodeValidationFailed)})
	}

	if len(errs) > 0 {
		return internal.NewValidationFieldErrors(errs)
	}
	return nil
}
