package hall

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/megapark/hotel-backend/internal"
	"github.com/megapark/hotel-backend/internal/email"
)

type ServiceAPI interface {
	ListHalls() ([]*Hall, error)
	GetHall(id string) (*Hall, error)
	CreateHall(dto CreateHallDTO) (*Hall, error)
	UpdateHall(id string, dto UpdateHallDTO) (*Hall, error)
	DeleteHall(id string) error
	RequestQuote(ctx context.Context, dto QuoteDTO) (*QuoteResult, error)
}

type Service struct {
	repo       Repository
	mailer     email.Sender
	salesEmail string
	logger     *slog.Logger
}

func NewService(repo Repository, mailer email.Sender, salesEmail string, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		mailer:     mailer,
		salesEmail: salesEmail,
		logger:     logger,
	}
}

func (s *Service) ListHalls() ([]*Hall, error) {
	return s.repo.GetAll()
}

func (s *Service) GetHall(id string) (*Hall, error) {
	hall, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrHallNotFound
	}
	return hall, nil
}

func (s *Service) CreateHall(dto CreateHallDTO) (*Hall, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	availability := true
	if dto.Availability != nil {
		availability = *dto.Availability
	}

	now := time.Now()
	hall := &Hall{
		ID:           "hall-" + uuid.NewString(),
		Name:         dto.Name,
		Description:  dto.Description,
		Capacity:     *dto.Capacity,
		PricePerDay:  *dto.PricePerDay,
		Images:       dto.Images,
		Amenities:    dto.Amenities,
		Availability: availability,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if hall.Images == nil {
		hall.Images = []string{}
	}
	if hall.Amenities == nil {
		hall.Amenities = []string{}
	}

	if err := s.repo.Create(hall); err != nil {
		s.logger.Error("failed to create hall", slog.String("error", err.Error()))
		return nil, internal.NewInternalError("Failed to create hall", err)
	}
	return hall, nil
}

func (s *Service) UpdateHall(id string, dto UpdateHallDTO) (*Hall, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	hall, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrHallNotFound
	}

	if dto.Name != nil {
		hall.Name = *dto.Name
	}
	if dto.Description != nil {
		hall.Description = *dto.Description
	}
	if dto.Capacity != nil {
		hall.Capacity = *dto.Capacity
	}
	if dto.PricePerDay != nil {
		hall.PricePerDay = *dto.PricePerDay
	}
	if dto.Images != nil {
		hall.Images = *dto.Images
	}
	if dto.Amenities != nil {
		hall.Amenities = *dto.Amenities
	}
	if dto.Availability != nil {
		hall.Availability = *dto.Availability
	}
	hall.UpdatedAt = time.Now()

	if err := s.repo.Update(hall); err != nil {
		s.logger.Error("failed to update hall", slog.String("hall_id", id), slog.String("error", err.Error()))
		return nil, internal.NewInternalError("Failed to update hall", err)
	}
	return hall, nil
}

func (s *Service) DeleteHall(id string) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return internal.ErrHallNotFound
	}
	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete hall", slog.String("hall_id", id), slog.String("error", err.Error()))
		return internal.NewInternalError("Failed to delete hall", err)
	}
	return nil
}

// RequestQuote forwards an event enquiry to the sales inbox and, when the
// visitor left an email address, sends them an acknowledgement. A failure to
// reach the mailer is reported, but the acknowledgement is best effort.
func (s *Service) RequestQuote(ctx context.Context, dto QuoteDTO) (*QuoteResult, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	body := quoteBody(dto)
	if err := s.mailer.Send(ctx, email.Message{
		To:      s.salesEmail,
		Subject: fmt.Sprintf("Event quote request from %s", dto.ContactName),
		Body:    body,
	}); err != nil {
		s.logger.Error("failed to send quote request", slog.String("error", err.Error()))
		return nil, internal.NewInternalError("Failed to send quote request", err)
	}

	if dto.ContactEmail != "" {
		ack := email.Message{
			To:      dto.ContactEmail,
			Subject: "We received your event quote request",
			Body:    "Thank you for your enquiry. Our events team will get back to you within one business day.",
		}
		if err := s.mailer.Send(ctx, ack); err != nil {
			s.logger.Warn("failed to send quote acknowledgement",
				slog.String("to", dto.ContactEmail),
				slog.String("error", err.Error()))
		}
	}

	return &QuoteResult{Sent: true}, nil
}

func quoteBody(dto QuoteDTO) string {
	var b strings.Builder
	write := func(label, value string) {
		if value != "" {
			fmt.Fprintf(&b, "%s: %s\n", label, value)
		}
	}
	write("Contact", dto.ContactName)
	write("Phone", dto.ContactPhone)
	write("Email", dto.ContactEmail)
	write("Hall", dto.HallName)
	write("Hall ID", dto.HallID)
	write("Package", dto.PackageName)
	write("Package ID", dto.PackageID)
	write("Date", dto.EventDate)
	write("Time", dto.EventTime)
	if dto.GuestCount > 0 {
		fmt.Fprintf(&b, "Guests: %d\n", dto.GuestCount)
	}
	write("Notes", dto.Notes)
	return b.String()
}
