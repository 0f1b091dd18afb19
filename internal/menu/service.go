package menu

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/megapark/hotel-backend/internal"
)

type ServiceAPI interface {
	ListItems() ([]*Item, error)
	GetItem(id string) (*Item, error)
	CreateItem(dto CreateItemDTO) (*Item, error)
	UpdateItem(id string, dto UpdateItemDTO) (*Item, error)
	DeleteItem(id string) error
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) ListItems() ([]*Item, error) {
	return s.repo.GetAll()
}

func (s *Service) GetItem(id string) (*Item, error) {
	item, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrMenuItemNotFound
	}
	return item, nil
}

func (s *Service) CreateItem(dto CreateItemDTO) (*Item, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	category := dto.Category
	if category == "" {
		category = CategoryMains
	}
	prepTime := DefaultPreparationTime
	if dto.PreparationTime != nil {
		prepTime = *dto.PreparationTime
	}
	availability := true
	if dto.Availability != nil {
		availability = *dto.Availability
	}

	now := time.Now()
	item := &Item{
		ID:              "menu-" + uuid.NewString(),
		Name:            dto.Name,
		Description:     dto.Description,
		Category:        category,
		Price:           *dto.Price,
		Image:           dto.Image,
		PreparationTime: prepTime,
		Availability:    availability,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(item); err != nil {
		s.logger.Error("failed to create menu item", slog.String("error", err.Error()))
		return nil, internal.NewInternalError("Failed to create menu item", err)
	}
	return item, nil
}

func (s *Service) UpdateItem(id string, dto UpdateItemDTO) (*Item, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	item, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrMenuItemNotFound
	}

	if dto.Name != nil {
		item.Name = *dto.Name
	}
	if dto.Description != nil {
		item.Description = *dto.Description
	}
	if dto.Category != nil {
		item.Category = *dto.Category
	}
	if dto.Price != nil {
		item.Price = *dto.Price
	}
	if dto.Image != nil {
		item.Image = *dto.Image
	}
	if dto.PreparationTime != nil {
		item.PreparationTime = *dto.PreparationTime
	}
	if dto.Availability != nil {
		item.Availability = *dto.Availability
	}
	item.UpdatedAt = time.Now()

	if err := s.repo.Update(item); err != nil {
		s.logger.Error("failed to update menu item", slog.String("item_id", id), slog.String("error", err.Error()))
		return nil, internal.NewInternalError("Failed to update menu item", err)
	}
	return item, nil
}

func (s *Service) DeleteItem(id string) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return internal.ErrMenuItemNotFound
	}
	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete menu item", slog.String("item_id", id), slog.String("error", err.Error()))
		return internal.NewInternalError("Failed to delete menu item", err)
	}
	return nil
}
