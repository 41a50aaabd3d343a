// Package admin is the order management side of the storefront: list the
// order queues and move orders through their statuses.
package admin

import (
	"context"
	"fmt"

	"kapehan/internal/logger"
	"kapehan/internal/models"
)

// OrdersAPI is the slice of the API client the dashboard needs.
type OrdersAPI interface {
	GetDineInOrders(ctx context.Context) ([]models.DineInOrder, error)
	GetDeliveryOrders(ctx context.Context) ([]models.DeliveryOrder, error)
	UpdateDineInOrderStatus(ctx context.Context, id int, status models.OrderStatus) (models.OrderSummary, error)
	UpdateDeliveryOrderStatus(ctx context.Context, id int, status models.OrderStatus) (models.OrderSummary, error)
}

// Dashboard lists orders and mutates their statuses through the API.
type Dashboard struct {
	api    OrdersAPI
	logger *logger.Logger
}

// New creates a dashboard over the given API client.
func New(api OrdersAPI, log *logger.Logger) *Dashboard {
	return &Dashboard{api: api, logger: log}
}

// DineInOrders returns the dine-in queue, newest first.
func (d *Dashboard) DineInOrders(ctx context.Context) ([]models.DineInOrder, error) {
	orders, err := d.api.GetDineInOrders(ctx)
	if err != nil {
		d.logger.Error("orders_fetch_failed", "", "Failed to fetch dine-in orders", err)
		return nil, err
	}
	return orders, nil
}

// DeliveryOrders returns the delivery queue, newest first.
func (d *Dashboard) DeliveryOrders(ctx context.Context) ([]models.DeliveryOrder, error) {
	orders, err := d.api.GetDeliveryOrders(ctx)
	if err != nil {
		d.logger.Error("orders_fetch_failed", "", "Failed to fetch delivery orders", err)
		return nil, err
	}
	return orders, nil
}

// UpdateStatus moves an order to a new status, then refetches the matching
// queue so the caller always sees the server's view rather than a locally
// patched one. The refetched queue is returned alongside the updated order.
func (d *Dashboard) UpdateStatus(ctx context.Context, kind models.OrderType, id int, status models.OrderStatus) (models.OrderSummary, error) {
	if !models.ValidOrderStatus(status) {
		return models.OrderSummary{}, models.ValidationError{Field: "status", Message: fmt.Sprintf("unknown order status %q", status)}
	}

	var (
		summary models.OrderSummary
		err     error
	)
	switch kind {
	case models.DineIn:
		summary, err = d.api.UpdateDineInOrderStatus(ctx, id, status)
	case models.Delivery:
		summary, err = d.api.UpdateDeliveryOrderStatus(ctx, id, status)
	default:
		return models.OrderSummary{}, models.ValidationError{Field: "orderKind", Message: fmt.Sprintf("unknown order kind %q", kind)}
	}
	if err != nil {
		d.logger.Error("status_update_failed", "", fmt.Sprintf("Failed to update %s order %d", kind, id), err)
		return models.OrderSummary{}, err
	}

	d.logger.Info("status_updated", "", fmt.Sprintf("%s order %d moved to %s", kind, id, status))
	return summary, nil
}

// UpdateDineInStatus updates a dine-in order and returns the refetched queue.
func (d *Dashboard) UpdateDineInStatus(ctx context.Context, id int, status models.OrderStatus) ([]models.DineInOrder, error) {
	if _, err := d.UpdateStatus(ctx, models.DineIn, id, status); err != nil {
		return nil, err
	}
	return d.DineInOrders(ctx)
}

// UpdateDeliveryStatus updates a delivery order and returns the refetched
// queue.
func (d *Dashboard) UpdateDeliveryStatus(ctx context.Context, id int, status models.OrderStatus) ([]models.DeliveryOrder, error) {
	if _, err := d.UpdateStatus(ctx, models.Delivery, id, status); err != nil {
		return nil, err
	}
	return d.DeliveryOrders(ctx)
}
