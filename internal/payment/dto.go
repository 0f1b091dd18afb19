package payment

import (
	"net/mail"

	"github.com/megapark/hotel-backend/internal"
)

type PaymentIntentDTO struct {
	ID            string   `json:"id"`
	TotalPrice    *float64 `json:"totalPrice"`
	CustomerName  string   `json:"customerName"`
	CustomerEmail string   `json:"customerEmail"`
	PhoneNumber   string   `json:"phoneNumber"`
	Description   string   `json:"description"`
	BookingID     string   `json:"bookingId"`
}

func (d *PaymentIntentDTO) Validate() error {
	var errs []internal.ValidationError

	if d.TotalPrice == nil || *d.TotalPrice < 0.01 {
		errs = append(errs, internal.ValidationError{Field: "totalPrice", Message: "Amount must be > 0", Code: string(internal.ErrCodeValidationFailed)})
	}
	if len(d.CustomerName) > 255 {
		errs = append(errs, internal.ValidationError{Field: "customerName", Message: "customer name too long", Code: string(internal.ErrCodeValidationFailed)})
	}
	if d.CustomerEmail != "" {
		if _, err := mail.ParseAddress(d.CustomerEmail); err != nil {
			errs = append(errs, internal.ValidationError{Field: "customerEmail", Message: "invalid email", Code: string(internal.ErrCodeValidationFailed)})
		}
	}

	if len(errs) > 0 {
		return internal.NewValidationFieldErrors(errs)
	}
	return nil
}

// CallbackDTO mirrors the payload the payment provider posts back after the
// customer confirms or rejects the STK prompt. ResultCode zero means paid.
type CallbackDTO struct {
	BookingID     string `json:"bookingId"`
	TransactionID string `json:"transactionId"`
	ResultCode    int    `json:"resultCode"`
	ResultDesc    string `json:"resultDesc"`
}

func (d *CallbackDTO) Validate() error {
	if d.TransactionID == "" && d.BookingID == "" {
		return internal.NewValidationError("transactionId or bookingId required", internal.ErrCodeValidationFailed)
	}
	return nil
}
