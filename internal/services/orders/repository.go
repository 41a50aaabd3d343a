package orders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"kapehan/internal/database"
	"kapehan/internal/models"
)

// ErrNotFound is returned when no order matches the requested id.
var ErrNotFound = errors.New("order not found")

// Repository is the storage contract the orders service depends on.
type Repository interface {
	InsertDineIn(ctx context.Context, req *models.CreateDineInOrderRequest) (models.OrderSummary, error)
	InsertDelivery(ctx context.Context, req *models.CreateDeliveryOrderRequest) (models.OrderSummary, error)
	ListDineIn(ctx context.Context) ([]models.DineInOrder, error)
	ListDelivery(ctx context.Context) ([]models.DeliveryOrder, error)
	GetDineIn(ctx context.Context, id int) (models.DineInOrder, error)
	GetDelivery(ctx context.Context, id int) (models.DeliveryOrder, error)
	UpdateDineInStatus(ctx context.Context, id int, status models.OrderStatus) (models.OrderSummary, error)
	UpdateDeliveryStatus(ctx context.Context, id int, status models.OrderStatus) (models.OrderSummary, error)
}

// PostgresRepository stores orders in the dine_in_orders and
// delivery_orders tables, with line items serialized as JSONB.
type PostgresRepository struct {
	db *database.DB
}

// NewPostgresRepository creates an order repository backed by PostgreSQL.
func NewPostgresRepository(db *database.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// InsertDineIn creates a dine-in order with status pending.
func (r *PostgresRepository) InsertDineIn(ctx context.Context, req *models.CreateDineInOrderRequest) (models.OrderSummary, error) {
	items, err := json.Marshal(req.Items)
	if err != nil {
		return models.OrderSummary{}, fmt.Errorf("failed to marshal order items: %w", err)
	}

	var summary models.OrderSummary
	err = r.db.QueryRow(ctx, database.InsertDineInOrderSQL,
		req.CustomerName, req.TableNumber, nullable(req.PhoneNumber), nullable(req.Notes),
		req.PaymentMethod, req.Subtotal, req.Total, items, models.StatusPending).
		Scan(&summary.ID, &summary.CustomerName, &summary.TableNumber, &summary.CreatedAt, &summary.OrderStatus)
	if err != nil {
		return models.OrderSummary{}, fmt.Errorf("failed to insert dine-in order: %w", err)
	}
	return summary, nil
}

// InsertDelivery creates a delivery order with status pending.
func (r *PostgresRepository) InsertDelivery(ctx context.Context, req *models.CreateDeliveryOrderRequest) (models.OrderSummary, error) {
	items, err := json.Marshal(req.Items)
	if err != nil {
		return models.OrderSummary{}, fmt.Errorf("failed to marshal order items: %w", err)
	}

	var summary models.OrderSummary
	err = r.db.QueryRow(ctx, database.InsertDeliveryOrderSQL,
		req.CustomerName, req.PhoneNumber, req.DeliveryAddress, nullable(req.Notes),
		req.PaymentMethod, req.Subtotal, req.DeliveryFee, req.Total, items, models.StatusPending).
		Scan(&summary.ID, &summary.CustomerName, &summary.PhoneNumber, &summary.CreatedAt, &summary.OrderStatus)
	if err != nil {
		return models.OrderSummary{}, fmt.Errorf("failed to insert delivery order: %w", err)
	}
	return summary, nil
}

// ListDineIn returns every dine-in order, newest first.
func (r *PostgresRepository) ListDineIn(ctx context.Context) ([]models.DineInOrder, error) {
	rows, err := r.db.Query(ctx, database.ListDineInOrdersSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to query dine-in orders: %w", err)
	}
	defer rows.Close()

	orders := []models.DineInOrder{}
	for rows.Next() {
		order, err := scanDineInOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

// ListDelivery returns every delivery order, newest first.
func (r *PostgresRepository) ListDelivery(ctx context.Context) ([]models.DeliveryOrder, error) {
	rows, err := r.db.Query(ctx, database.ListDeliveryOrdersSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to query delivery orders: %w", err)
	}
	defer rows.Close()

	orders := []models.DeliveryOrder{}
	for rows.Next() {
		order, err := scanDeliveryOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

// GetDineIn returns a single dine-in order by id.
func (r *PostgresRepository) GetDineIn(ctx context.Context, id int) (models.DineInOrder, error) {
	order, err := scanDineInOrder(r.db.QueryRow(ctx, database.GetDineInOrderSQL, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.DineInOrder{}, ErrNotFound
		}
		return models.DineInOrder{}, err
	}
	return order, nil
}

// GetDelivery returns a single delivery order by id.
func (r *PostgresRepository) GetDelivery(ctx context.Context, id int) (models.DeliveryOrder, error) {
	order, err := scanDeliveryOrder(r.db.QueryRow(ctx, database.GetDeliveryOrderSQL, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.DeliveryOrder{}, ErrNotFound
		}
		return models.DeliveryOrder{}, err
	}
	return order, nil
}

// UpdateDineInStatus sets the status and bumps updated_at.
func (r *PostgresRepository) UpdateDineInStatus(ctx context.Context, id int, status models.OrderStatus) (models.OrderSummary, error) {
	var summary models.OrderSummary
	err := r.db.QueryRow(ctx, database.UpdateDineInOrderStatusSQL, status, id).
		Scan(&summary.ID, &summary.CustomerName, &summary.TableNumber, &summary.OrderStatus, &summary.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.OrderSummary{}, ErrNotFound
		}
		return models.OrderSummary{}, fmt.Errorf("failed to update dine-in order status: %w", err)
	}
	return summary, nil
}

// UpdateDeliveryStatus sets the status and bumps updated_at.
func (r *PostgresRepository) UpdateDeliveryStatus(ctx context.Context, id int, status models.OrderStatus) (models.OrderSummary, error) {
	var summary models.OrderSummary
	err := r.db.QueryRow(ctx, database.UpdateDeliveryOrderStatusSQL, status, id).
		Scan(&summary.ID, &summary.CustomerName, &summary.PhoneNumber, &summary.OrderStatus, &summary.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.OrderSummary{}, ErrNotFound
		}
		return models.OrderSummary{}, fmt.Errorf("failed to update delivery order status: %w", err)
	}
	return summary, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDineInOrder(row rowScanner) (models.DineInOrder, error) {
	var (
		order models.DineInOrder
		items []byte
	)
	err := row.Scan(&order.ID, &order.CustomerName, &order.TableNumber, &order.PhoneNumber,
		&order.Notes, &order.PaymentMethod, &order.Subtotal, &order.Total, &items,
		&order.OrderStatus, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return models.DineInOrder{}, err
	}
	if err := json.Unmarshal(items, &order.Items); err != nil {
		return models.DineInOrder{}, fmt.Errorf("failed to unmarshal order items: %w", err)
	}
	return order, nil
}

func scanDeliveryOrder(row rowScanner) (models.DeliveryOrder, error) {
	var (
		order models.DeliveryOrder
		items []byte
	)
	err := row.Scan(&order.ID, &order.CustomerName, &order.PhoneNumber, &order.DeliveryAddress,
		&order.Notes, &order.PaymentMethod, &order.Subtotal, &order.DeliveryFee, &order.Total,
		&items, &order.OrderStatus, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return models.DeliveryOrder{}, err
	}
	if err := json.Unmarshal(items, &order.Items); err != nil {
		return models.DeliveryOrder{}, fmt.Errorf("failed to unmarshal order items: %w", err)
	}
	return order, nil
}
