package order

import (
	"time"

	"github.com/megapark/hotel-backend/internal"
)

const (
	TypeDelivery = "delivery"
	TypeDineIn   = "dine-in"
	TypePickup   = "pickup"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusPreparing = "preparing"
	StatusReady     = "ready"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentFailed   = "failed"
	PaymentRefunded = "refunded"
)

func validOrderType(t string) bool {
	switch t {
	case TypeDelivery, TypeDineIn, TypePickup:
		return true
	}
	return false
}

func validStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusReady, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

func validPaymentStatus(s string) bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}

type Item struct {
	ItemName   string  `json:"itemName"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
	TotalPrice float64 `json:"totalPrice"`
}

type DeliveryAddress struct {
	FullName     string `json:"fullName"`
	Phone        string `json:"phone"`
	County       string `json:"county"`
	Town         string `json:"town"`
	Street       string `json:"street"`
	Building     string `json:"building,omitempty"`
	Instructions string `json:"instructions,omitempty"`
}

type Order struct {
	ID              string           `json:"id" gorm:"primaryKey"`
	CustomerName    string           `json:"customerName" gorm:"not null"`
	CustomerEmail   string           `json:"customerEmail,omitempty"`
	CustomerPhone   string           `json:"customerPhone,omitempty"`
	OrderType       string           `json:"orderType" gorm:"column:order_type"`
	OrderDate       string           `json:"orderDate,omitempty" gorm:"column:order_date"`
	DeliveryDate    string           `json:"deliveryDate,omitempty" gorm:"column:delivery_date"`
	DeliveryAddress *DeliveryAddress `json:"deliveryAddress,omitempty" gorm:"serializer:json"`
	Items           []Item           `json:"items" gorm:"serializer:json"`
	Subtotal        float64          `json:"subtotal"`
	DeliveryFee     float64          `json:"deliveryFee" gorm:"column:delivery_fee"`
	Tax             float64          `json:"tax"`
	TotalAmount     float64          `json:"totalAmount" gorm:"column:total_amount;not null"`
	Status          string           `json:"status"`
	PaymentStatus   string           `json:"paymentStatus" gorm:"column:payment_status"`
	PaymentMethod   string           `json:"paymentMethod,omitempty" gorm:"column:payment_method"`
	CreatedAt       time.Time        `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt       time.Time        `json:"updatedAt" gorm:"column:updated_at"`
}

func (Order) TableName() string {
	return "orders"
}

type Repository interface {
	GetAll() ([]*Order, error)
	GetByID(id string) (*Order, error)
	Create(order *Order) error
	Update(order *Order) error
}

type CreateOrderDTO struct {
	CustomerName    string           `json:"customerName"`
	CustomerEmail   string           `json:"customerEmail"`
	CustomerPhone   string           `json:"customerPhone"`
	OrderType       string           `json:"orderType"`
	OrderDate       string           `json:"orderDate"`
	DeliveryDate    string           `json:"deliveryDate"`
	DeliveryAddress *DeliveryAddress `json:"deliveryAddress"`
	Items           []Item           `json:"items"`
	Subtotal        float64          `json:"subtotal"`
	DeliveryFee     float64          `json:"deliveryFee"`
	Tax             float64          `json:"tax"`
	TotalAmount     *float64         `json:"totalAmount"`
	Status          string           `json:"status"`
	PaymentStatus   string           `json:"paymentStatus"`
	PaymentMethod   string           `json:"paymentMethod"`
}

func (d *CreateOrderDTO) Validate() error {
	var errs []internal.ValidationError

	if d.CustomerName == "" || len(d.CustomerName) > 255 {
		errs = append(errs, internal.ValidationError{Field: "customerName", Message: "customer name required", Code: string(internal.ErrCodeValidationFailed)})
	}
	if d.OrderType != "" && !validOrderType(d.OrderType) {
		errs = append(errs, internal.ValidationError{Field: "orderType", Message: "invalid order type", Code: string(internal.ErrCodeValidationFailed)})
	}
	if d.TotalAmount == nil || *d.TotalAmount < 0 {
		errs = append(errs, internal.ValidationError{Field: "totalAmount", Message: "total amount must be >= 0", Code: string(internal.ErrCodeValidationFailed)})
	}
	if d.Status != "" && !validStatus(d.Status) {
		errs = append(errs, internal.ValidationError{Field: "status", Message: "invalid status", Code: string(internal.ErrCodeValidationFailed)})
	}
	if d.PaymentStatus != "" && !validPaymentStatus(d.PaymentStatus) {
		errs = append(errs, internal.ValidationError{Field: "paymentStatus", Message: "invalid payment status", Code: string(internal.ErrCodeValidationFailed)})
	}
	for _, item := range d.Items {
		if item.ItemName == "" || item.Quantity < 1 || item.UnitPrice < 0 || item.TotalPrice < 0 {
			errs = append(errs, internal.ValidationError{Field: "items", Message: "invalid order item", Code: string(internal.ErrCodeValidationFailed)})
			break
		}
	}

	if len(errs) > 0 {
		return internal.NewValidationFieldErrors(errs)
	}
	return nil
}

type UpdateOrderDTO struct {
	Status        *string `json:"status,omitempty"`
	PaymentStatus *string `json:"paymentStatus,omitempty"`
	Items         *[]Item `json:"items,omitempty"`
}

func (d *UpdateOrderDTO) Validate() error {
	if d.Status == nil && d.PaymentStatus == nil && d.Items == nil {
		return internal.NewValidationError("At least one field required", internal.ErrCodeValidationFailed)
	}

	var errs []internal.ValidationError

	if d.Status != nil && !validStatus(*d.Status) {
		errs = append(errs, internal.ValidationError{Field: "status", Message: "invalid status", Code: string(internal.ErrCodeValidationFailed)})
	}
	if d.PaymentStatus != nil && !validPaymentStatus(*d.PaymentStatus) {
		errs = append(errs, internal.ValidationError{Field: "paymentStatus", Message: "invalid payment status", Code: string(internal.ErrCodeValidationFailed)})
	}

	if len(errs) > 0 {
		return internal.NewValidationFieldErrors(errs)
	}
	return nil
}
