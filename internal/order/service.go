package order

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/megapark/hotel-backend/internal"
)

type ServiceAPI interface {
	ListOrders() ([]*Order, error)
	GetOrder(id string) (*Order, error)
	CreateOrder(dto CreateOrderDTO) (*Order, error)
	UpdateOrder(id string, dto UpdateOrderDTO) (*Order, error)
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) ListOrders() ([]*Order, error) {
	return s.repo.GetAll()
}

func (s *Service) GetOrder(id string) (*Order, error) {
	o, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrOrderNotFound
	}
	return o, nil
}

func (s *Service) CreateOrder(dto CreateOrderDTO) (*Order, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	orderType := dto.OrderType
	if orderType == "" {
		orderType = TypeDineIn
	}
	status := dto.Status
	if status == "" {
		status = StatusPending
	}
	paymentStatus := dto.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = PaymentPending
	}
	items := dto.Items
	if items == nil {
		items = []Item{}
	}

	now := time.Now()
	o := &Order{
		ID:              "order-" + uuid.NewString(),
		CustomerName:    dto.CustomerName,
		CustomerEmail:   dto.CustomerEmail,
		CustomerPhone:   dto.CustomerPhone,
		OrderType:       orderType,
		OrderDate:       dto.OrderDate,
		DeliveryDate:    dto.DeliveryDate,
		DeliveryAddress: dto.DeliveryAddress,
		Items:           items,
		Subtotal:        dto.Subtotal,
		DeliveryFee:     dto.DeliveryFee,
		Tax:             dto.Tax,
		TotalAmount:     *dto.TotalAmount,
		Status:          status,
		PaymentStatus:   paymentStatus,
		PaymentMethod:   dto.PaymentMethod,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(o); err != nil {
		s.logger.Error("failed to create order", slog.String("error", err.Error()))
		return nil, internal.NewInternalError("Failed to create order", err)
	}

	s.logger.Info("order created",
		slog.String("order_id", o.ID),
		slog.String("order_type", o.OrderType),
		slog.Float64("total_amount", o.TotalAmount))
	return o, nil
}

func (s *Service) UpdateOrder(id string, dto UpdateOrderDTO) (*Order, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	o, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrOrderNotFound
	}

	if dto.Status != nil {
		o.Status = *dto.Status
	}
	if dto.PaymentStatus != nil {
		o.PaymentStatus = *dto.PaymentStatus
	}
	if dto.Items != nil {
		o.Items = *dto.Items
	}
	o.UpdatedAt = time.Now()

	if err := s.repo.Update(o); err != nil {
		s.logger.Error("failed to update order", slog.String("order_id", id), slog.String("error", err.Error()))
		return nil, internal.NewInternalError("Failed to update order", err)
	}
	return o, nil
}
