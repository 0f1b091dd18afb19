package booking

import (
	"time"
)

const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
	PaymentFailed  = "failed"
)

// Booking is the payment-side record created when a visitor starts an
// M-Pesa checkout. It tracks the money, not the room allocation.
type Booking struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail,omitempty"`
	Description   string    `json:"description,omitempty"`
	TotalPrice    float64   `json:"totalPrice" gorm:"column:total_price;not null"`
	PaymentStatus string    `json:"paymentStatus" gorm:"column:payment_status"`
	PaymentMethod string    `json:"paymentMethod,omitempty" gorm:"column:payment_method"`
	TransactionID string    `json:"transactionId,omitempty" gorm:"column:transaction_id"`
	CreatedAt     time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt     time.Time `json:"updatedAt" gorm:"column:updated_at"`
}

func (Booking) TableName() string {
	return "bookings"
}

type Repository interface {
	GetAll() ([]*Booking, error)
	GetByID(id string) (*Booking, error)
	GetByTransactionID(txID string) (*Booking, error)
	Create(b *Booking) error
	Update(b *Booking) error
}
