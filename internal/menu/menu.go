package menu

import (
	"time"

	"github.com/megapark/hotel-backend/internal"
)

const (
	CategoryAppetizers = "appetizers"
	CategoryMains      = "mains"
	CategorySides      = "sides"
	CategoryDesserts   = "desserts"
	CategoryDrinks     = "drinks"
)

const DefaultPreparationTime = 15

func validCategory(c string) bool {
	switch c {
	case CategoryAppetizers, CategoryMains, CategorySides, CategoryDesserts, CategoryDrinks:
		return true
	}
	return false
}

type Item struct {
	ID              string    `json:"id" gorm:"primaryKey"`
	Name            string    `json:"name" gorm:"not null"`
	Description     string    `json:"description"`
	Category        string    `json:"category" gorm:"not null"`
	Price           float64   `json:"price" gorm:"not null"`
	Image           string    `json:"image"`
	PreparationTime int       `json:"preparationTime" gorm:"column:preparation_time"`
	Availability    bool      `json:"availability" gorm:"default:true"`
	CreatedAt       time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt       time.Time `json:"updatedAt" gorm:"column:updated_at"`
}

func (Item) TableName() string {
	return "menu_items"
}

type Repository interface {
	GetAll() ([]*Item, error)
	GetByID(id string) (*Item, error)
	Create(item *Item) error
	Update(item *Item) error
	Delete(id string) error
}

type CreateItemDTO struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Category        string   `json:"category"`
	Price           *float64 `json:"price"`
	Image           string   `json:"image"`
	PreparationTime *int     `json:"preparationTime"`
	Availability    *bool    `json:"availability"`
}

func (d *CreateItemDTO) Validate() error {
	var errs []internal.ValidationError

	if d.Name == "" || len(d.Name) > 255 {
		errs = append(errs, internal.ValidationError{Field: "name", Message: "name required", Code: string(internal.ErrCodeValidationFailed)})
	}
	if d.Category != "" && !validCategory(d.Category) {
		errs = append(errs, internal.ValidationError{Field: "category", Message: "invalid category", Code: string(internal.ErrCodeValidationFailed)})
	}
	if d.Price == nil || *d.Price < 0 {
		errs = append(errs, internal.ValidationError{Field: "price", Message: "price must be >= 0", Code: string(internal.ErrCodeValidationFailed)})
	}
	if d.PreparationTime != nil && *d.PreparationTime < 0 {
		errs = append(errs, internal.ValidationError{Field: "preparationTime", Message: "preparation time must be >= 0", Code: string(internal.ErrCodeValidationFailed)})
	}

	if len(errs) > 0 {
		return internal.NewValidationFieldErrors(errs)
	}
	return nil
}

type UpdateItemDTO struct {
	Name            *string  `json:"name,omitempty"`
	Description     *string  `json:"description,omitempty"`
	Category        *string  `json:"category,omitempty"`
	Price           *float64 `json:"price,omitempty"`
	Image           *string  `json:"image,omitempty"`
	PreparationTime *int     `json:"preparationTime,omitempty"`
	Availability    *bool    `json:"availability,omitempty"`
}

func (d *UpdateItemDTO) Validate() error {
	if d.Name == nil && d.Description == nil && d.Category == nil && d.Price == nil &&
		d.Image == nil && d.PreparationTime == nil && d.Availability == nil {
		return internal.NewValidationError("At least one field required", internal.ErrCodeValidationFailed)
	}

	var errs []internal.ValidationError

	if d.Name != nil && (*d.Name == "" || len(*d.Name) > 255) {
		errs = append(errs, internal.ValidationError{Field: "name", Message: "name required", Code: string(internal.ErrCodeValidationFailed)})
	}
	if d.Category != nil && !validCategory(*d.Category) {
		errs = append(errs, internal.ValidationError{Field: "category", Message: "invalid category", Code: string(internal.ErrCodeValidationFailed)})
	}
	if d.Price != nil && *d.Price < 0 {
		errs = append(errs, internal.ValidationError{Field: "price", Message: "price must be >= 0", Code: string(internal.ErrCodeValidationFailed)})
	}
	if d.PreparationTime != nil && *d.PreparationTime < 0 {
		errs = append(errs, internal.ValidationError{Field: "preparationTime", Message: "preparation time must be >= 0", Code: string(internal.ErrCodeValidationFailed)})
	}

	if len(errs) > 0 {
		return internal.NewValidationFieldErrors(errs)
	}
	return nil
}
