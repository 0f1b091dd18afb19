package booking

import (
	"context"
	"log/slog"
	"time"

	"github.com/megapark/hotel-backend/internal"
	"github.com/megapark/hotel-backend/internal/core/events"
)

type ServiceAPI interface {
	ListBookings() ([]*Booking, error)
	GetBooking(id string) (*Booking, error)
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) ListBookings() ([]*Booking, error) {
	return s.repo.GetAll()
}

func (s *Service) GetBooking(id string) (*Booking, error) {
	b, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrBookingNotFound
	}
	return b, nil
}

// RegisterEventHandlers wires the payment outcome events into booking state.
func (s *Service) RegisterEventHandlers(bus *events.Bus) {
	bus.Subscribe(events.EventTypePaymentCompleted, s.onPaymentCompleted)
	bus.Subscribe(events.EventTypePaymentFailed, s.onPaymentFailed)
}

func (s *Service) onPaymentCompleted(ctx context.Context, event events.Event) error {
	e, ok := event.(*events.PaymentCompletedEvent)
	if !ok {
		return nil
	}
	return s.setPaymentStatus(e.BookingID, e.TransactionID, PaymentPaid)
}

func (s *Service) onPaymentFailed(ctx context.Context, event events.Event) error {
	e, ok := event.(*events.PaymentFailedEvent)
	if !ok {
		return nil
	}
	return s.setPaymentStatus(e.BookingID, e.TransactionID, PaymentFailed)
}

func (s *Service) setPaymentStatus(bookingID, txID, status string) error {
	b, err := s.lookup(bookingID, txID)
	if err != nil {
		s.logger.Warn("payment event for unknown booking",
			slog.String("booking_id", bookingID),
			slog.String("transaction_id", txID))
		return err
	}

	b.PaymentStatus = status
	if txID != "" {
		b.TransactionID = txID
	}
	b.UpdatedAt = time.Now()

	if err := s.repo.Update(b); err != nil {
		s.logger.Error("failed to update booking payment status",
			slog.String("booking_id", b.ID),
			slog.String("error", err.Error()))
		return err
	}

	s.logger.Info("booking payment status updated",
		slog.String("booking_id", b.ID),
		slog.String("payment_status", status),
		slog.String("transaction_id", b.TransactionID))
	return nil
}

// lookup resolves a booking by id first and falls back to the M-Pesa
// transaction id, since callbacks do not always carry our booking id.
func (s *Service) lookup(bookingID, txID string) (*Booking, error) {
	if bookingID != "" {
		if b, err := s.repo.GetByID(bookingID); err == nil {
			return b, nil
		}
	}
	if txID != "" {
		if b, err := s.repo.GetByTransactionID(txID); err == nil {
			return b, nil
		}
	}
	return nil, internal.ErrBookingNotFound
}
