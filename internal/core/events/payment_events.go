package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypePaymentCompleted = "payment.completed"
	EventTypePaymentFailed    = "payment.failed"
)

// PaymentCompletedEvent is published when an M-Pesa callback confirms a
// payment. The booking subscriber flips the booking to paid.
type PaymentCompletedEvent struct {
	BaseEvent
	BookingID     string  `json:"booking_id"`
	TransactionID string  `json:"transaction_id"`
	Amount        float64 `json:"amount"`
}

func NewPaymentCompletedEvent(bookingID, transactionID string, amount float64) *PaymentCompletedEvent {
	return &PaymentCompletedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.NewString(),
			Type:      EventTypePaymentCompleted,
			Timestamp: time.Now(),
		},
		BookingID:     bookingID,
		TransactionID: transactionID,
		Amount:        amount,
	}
}

type PaymentFailedEvent struct {
	BaseEvent
	BookingID     string `json:"booking_id"`
	TransactionID string `json:"transaction_id"`
	FailureReason string `json:"failure_reason"`
}

func NewPaymentFailedEvent(bookingID, transactionID, failureReason string) *PaymentFailedEvent {
	return &PaymentFailedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.NewString(),
			Type:      EventTypePaymentFailed,
			Timestamp: time.Now(),
		},
		BookingID:     bookingID,
		TransactionID: transactionID,
		FailureReason: failureReason,
	}
}
