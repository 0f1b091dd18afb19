package payment

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/megapark/hotel-backend/internal"
	"github.com/megapark/hotel-backend/internal/booking"
	"github.com/megapark/hotel-backend/internal/core/events"
	"github.com/megapark/hotel-backend/internal/payment/mpesa"
)

type STKPusher interface {
	InitiateSTKPush(ctx context.Context, req mpesa.STKPushRequest) (*mpesa.STKPushResponse, error)
}

type IntentResult struct {
	BookingID     string `json:"bookingId"`
	TransactionID string `json:"transactionId"`
	Status        string `json:"status"`
	Message       string `json:"message"`
}

type CallbackResult struct {
	Received bool   `json:"received"`
	Status   string `json:"status"`
}

type ServiceAPI interface {
	CreateIntent(ctx context.Context, dto PaymentIntentDTO) (*IntentResult, error)
	HandleCallback(ctx context.Context, dto CallbackDTO) (*CallbackResult, error)
}

type Service struct {
	bookings booking.Repository
	gateway  STKPusher
	bus      *events.Bus
	logger   *slog.Logger
}

func NewService(bookings booking.Repository, gateway STKPusher, bus *events.Bus, logger *slog.Logger) *Service {
	return &Service{
		bookings: bookings,
		gateway:  gateway,
		bus:      bus,
		logger:   logger,
	}
}

// CreateIntent records a pending booking and kicks off the STK push. The
// booking stays pending until the provider callback arrives.
func (s *Service) CreateIntent(ctx context.Context, dto PaymentIntentDTO) (*IntentResult, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	bookingID := dto.BookingID
	var b *booking.Booking

	if bookingID != "" {
		existing, err := s.bookings.GetByID(bookingID)
		if err != nil {
			return nil, internal.ErrBookingNotFound
		}
		b = existing
	} else {
		now := time.Now()
		b = &booking.Booking{
			ID:            "booking-" + uuid.NewString(),
			CustomerName:  dto.CustomerName,
			CustomerEmail: dto.CustomerEmail,
			Description:   dto.Description,
			TotalPrice:    *dto.TotalPrice,
			PaymentStatus: booking.PaymentPending,
			PaymentMethod: "mpesa",
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := s.bookings.Create(b); err != nil {
			s.logger.Error("failed to create booking", slog.String("error", err.Error()))
			return nil, internal.NewInternalError("Failed to create booking", err)
		}
	}

	resp, err := s.gateway.InitiateSTKPush(ctx, mpesa.STKPushRequest{
		PhoneNumber: dto.PhoneNumber,
		Amount:      *dto.TotalPrice,
		AccountName: dto.CustomerName,
		BookingID:   b.ID,
	})
	if err != nil {
		s.logger.Error("stk push failed",
			slog.String("booking_id", b.ID),
			slog.String("error", err.Error()))
		return nil, internal.ErrPaymentFailed
	}

	b.TransactionID = resp.TransactionID
	b.UpdatedAt = time.Now()
	if err := s.bookings.Update(b); err != nil {
		s.logger.Error("failed to record transaction id",
			slog.String("booking_id", b.ID),
			slog.String("error", err.Error()))
		return nil, internal.NewInternalError("Failed to update booking", err)
	}

	return &IntentResult{
		BookingID:     b.ID,
		TransactionID: resp.TransactionID,
		Status:        resp.Status,
		Message:       resp.Message,
	}, nil
}

// HandleCallback translates the provider result into a payment event. The
// booking state change happens in the subscriber, not here.
func (s *Service) HandleCallback(ctx context.Context, dto CallbackDTO) (*CallbackResult, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	if dto.ResultCode == 0 {
		amount := 0.0
		if b, err := s.lookupBooking(dto); err == nil {
			amount = b.TotalPrice
		}
		if err := s.bus.PublishSync(ctx, events.NewPaymentCompletedEvent(dto.BookingID, dto.TransactionID, amount)); err != nil {
			s.logger.Error("payment completed handler failed", slog.String("error", err.Error()))
		}
		return &CallbackResult{Received: true, Status: booking.PaymentPaid}, nil
	}

	reason := dto.ResultDesc
	if reason == "" {
		reason = "payment declined"
	}
	if err := s.bus.PublishSync(ctx, events.NewPaymentFailedEvent(dto.BookingID, dto.TransactionID, reason)); err != nil {
		s.logger.Error("payment failed handler failed", slog.String("error", err.Error()))
	}
	return &CallbackResult{Received: true, Status: booking.PaymentFailed}, nil
}

func (s *Service) lookupBooking(dto CallbackDTO) (*booking.Booking, error) {
	if dto.BookingID != "" {
		if b, err := s.bookings.GetByID(dto.BookingID); err == nil {
			return b, nil
		}
	}
	return s.bookings.GetByTransactionID(dto.TransactionID)
}
