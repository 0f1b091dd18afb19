package room

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/megapark/hotel-backend/internal"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) List() ([]*Room, error) {
	rooms, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	return rooms, nil
}

func (s *Service) Get(id string) (*Room, error) {
	rm, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrRoomNotFound
	}
	return rm, nil
}

func (s *Service) Create(dto *CreateRoomDTO) (*Room, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	rm := &Room{
		ID:            "room-" + uuid.NewString(),
		RoomNumber:    dto.RoomNumber,
		Name:          dto.Name,
		Type:          dto.Type,
		Description:   dto.Description,
		PricePerNight: *dto.PricePerNight,
		Images:        dto.Images,
		Amenities:     dto.Amenities,
		Capacity:      2,
		Availability:  true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if rm.Images == nil {
		rm.Images = []string{}
	}
	if rm.Amenities == nil {
		rm.Amenities = []string{}
	}
	if dto.Capacity != nil {
		rm.Capacity = *dto.Capacity
	}
	if dto.Availability != nil {
		rm.Availability = *dto.Availability
	}

	if err := s.repo.Create(rm); err != nil {
		return nil, fmt.Errorf("create room: %w", err)
	}

	s.logger.Info("room created", "room_id", rm.ID, "room_number", rm.RoomNumber)
	return rm, nil
}

func (s *Service) Update(id string, dto *UpdateRoomDTO) (*Room, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	rm, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrRoomNotFound
	}

	if dto.RoomNumber != nil {
		rm.RoomNumber = *dto.RoomNumber
	}
	if dto.Name != nil {
		rm.Name = *dto.Name
	}
	if dto.Type != nil {
		rm.Type = *dto.Type
	}
	if dto.Description != nil {
		rm.Description = *dto.Description
	}
	if dto.PricePerNight != nil {
		rm.PricePerNight = *dto.PricePerNight
	}
	if dto.Images != nil {
		rm.Images = *dto.Images
	}
	if dto.Amenities != nil {
		rm.Amenities = *dto.Amenities
	}
	if dto.Capacity != nil {
		rm.Capacity = *dto.Capacity
	}
	if dto.Availability != nil {
		rm.Availability = *dto.Availability
	}
	rm.UpdatedAt = time.Now()

	if err := s.repo.Update(rm); err != nil {
		return nil, fmt.Errorf("update room: %w", err)
	}
	return rm, nil
}

func (s *Service) Delete(id string) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return internal.ErrRoomNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("delete room: %w", err)
	}

	s.logger.Info("room deleted", "room_id", id)
	return nil
}
