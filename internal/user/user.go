package user

import (
	"time"
)

// Record is the persisted user shape. The password hash round-trips through
// storage but never reaches a response: API responses use User, which has
// no hash field at all.
type Record struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	Name         string    `json:"name" gorm:"not null"`
	Role         string    `json:"role" gorm:"not null;default:staff"`
	PasswordHash string    `json:"passwordHash" gorm:"column:password_hash;not null"`
	IsActive     bool      `json:"isActive" gorm:"column:is_active;default:true"`
	CreatedAt    time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt    time.Time `json:"updatedAt" gorm:"column:updated_at"`
}

func (Record) TableName() string {
	return "users"
}

// User is the API projection of a Record.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (r *Record) ToUser() *User {
	return &User{
		ID:        r.ID,
		Email:     r.Email,
		Name:      r.Name,
		Role:      r.Role,
		IsActive:  r.IsActive,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// Repository persists user records.
type Repository interface {
	GetAll() ([]*Record, error)
	GetByID(id string) (*Record, error)
	GetByEmail(email string) (*Record, error)
	Create(rec *Record) error
	Update(rec *Record) error
	Delete(id string) error
}
