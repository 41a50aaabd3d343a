package orders

import (
	"context"
	"fmt"

	"kapehan/internal/logger"
	"kapehan/internal/models"
)

// Service implements the orders API on top of a Repository.
type Service struct {
	repo   Repository
	logger *logger.Logger
}

// NewService creates a new orders service
func NewService(repo Repository, log *logger.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: log,
	}
}

// CreateDineIn validates and persists a dine-in order.
func (s *Service) CreateDineIn(ctx context.Context, req *models.CreateDineInOrderRequest, requestID string) (models.OrderSummary, error) {
	if err := req.Validate(); err != nil {
		return models.OrderSummary{}, err
	}

	summary, err := s.repo.InsertDineIn(ctx, req)
	if err != nil {
		s.logger.Error("order_creation_failed", requestID, "Failed to create dine-in order", err)
		return models.OrderSummary{}, err
	}

	s.logger.Info("order_created", requestID,
		fmt.Sprintf("Dine-in order %d created for table %s", summary.ID, req.TableNumber))
	return summary, nil
}

// CreateDelivery validates and persists a delivery order. A zero delivery
// fee is replaced by the default flat fee, mirroring the table default.
func (s *Service) CreateDelivery(ctx context.Context, req *models.CreateDeliveryOrderRequest, requestID string) (models.OrderSummary, error) {
	if err := req.Validate(); err != nil {
		return models.OrderSummary{}, err
	}

	if req.DeliveryFee == 0 {
		req.DeliveryFee = models.DefaultDeliveryFee
	}

	summary, err := s.repo.InsertDelivery(ctx, req)
	if err != nil {
		s.logger.Error("order_creation_failed", requestID, "Failed to create delivery order", err)
		return models.OrderSummary{}, err
	}

	s.logger.Info("order_created", requestID,
		fmt.Sprintf("Delivery order %d created for %s", summary.ID, req.CustomerName))
	return summary, nil
}

// ListDineIn returns all dine-in orders, newest first.
func (s *Service) ListDineIn(ctx context.Context, requestID string) ([]models.DineInOrder, error) {
	orders, err := s.repo.ListDineIn(ctx)
	if err != nil {
		s.logger.Error("db_query_failed", requestID, "Failed to list dine-in orders", err)
		return nil, err
	}
	return orders, nil
}

// ListDelivery returns all delivery orders, newest first.
func (s *Service) ListDelivery(ctx context.Context, requestID string) ([]models.DeliveryOrder, error) {
	orders, err := s.repo.ListDelivery(ctx)
	if err != nil {
		s.logger.Error("db_query_failed", requestID, "Failed to list delivery orders", err)
		return nil, err
	}
	return orders, nil
}

// GetDineIn returns one dine-in order.
func (s *Service) GetDineIn(ctx context.Context, id int, requestID string) (models.DineInOrder, error) {
	order, err := s.repo.GetDineIn(ctx, id)
	if err != nil {
		if err != ErrNotFound {
			s.logger.Error("db_query_failed", requestID, fmt.Sprintf("Failed to get dine-in order %d", id), err)
		}
		return models.DineInOrder{}, err
	}
	return order, nil
}

// GetDelivery returns one delivery order.
func (s *Service) GetDelivery(ctx context.Context, id int, requestID string) (models.DeliveryOrder, error) {
	order, err := s.repo.GetDelivery(ctx, id)
	if err != nil {
		if err != ErrNotFound {
			s.logger.Error("db_query_failed", requestID, fmt.Sprintf("Failed to get delivery order %d", id), err)
		}
		return models.DeliveryOrder{}, err
	}
	return order, nil
}

// UpdateStatus changes the status of an order of either kind. The new
// status must be one of the five known values.
func (s *Service) UpdateStatus(ctx context.Context, kind models.OrderType, id int, status models.OrderStatus, requestID string) (models.OrderSummary, error) {
	if !models.ValidOrderStatus(status) {
		return models.OrderSummary{}, models.ValidationError{Field: "status", Message: fmt.Sprintf("unknown order status %q", status)}
	}

	var (
		summary models.OrderSummary
		err     error
	)
	switch kind {
	case models.DineIn:
		summary, err = s.repo.UpdateDineInStatus(ctx, id, status)
	case models.Delivery:
		summary, err = s.repo.UpdateDeliveryStatus(ctx, id, status)
	default:
		return models.OrderSummary{}, models.ValidationError{Field: "orderKind", Message: fmt.Sprintf("unknown order kind %q", kind)}
	}
	if err != nil {
		if err != ErrNotFound {
			s.logger.Error("status_update_failed", requestID, fmt.Sprintf("Failed to update %s order %d", kind, id), err)
		}
		return models.OrderSummary{}, err
	}

	s.logger.Info("status_updated", requestID,
		fmt.Sprintf("%s order %d moved to %s", kind, id, status))
	return summary, nil
}
