package admin

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"kapehan/internal/logger"
	"kapehan/internal/models"
)

// fakeAPI serves two in-memory order queues and records status updates.
type fakeAPI struct {
	dineIn     []models.DineInOrder
	delivery   []models.DeliveryOrder
	listCalls  int
	failUpdate error
}

func (f *fakeAPI) GetDineInOrders(ctx context.Context) ([]models.DineInOrder, error) {
	f.listCalls++
	return f.dineIn, nil
}

func (f *fakeAPI) GetDeliveryOrders(ctx context.Context) ([]models.DeliveryOrder, error) {
	f.listCalls++
	return f.delivery, nil
}

func (f *fakeAPI) UpdateDineInOrderStatus(ctx context.Context, id int, status models.OrderStatus) (models.OrderSummary, error) {
	if f.failUpdate != nil {
		return models.OrderSummary{}, f.failUpdate
	}
	for i := range f.dineIn {
		if f.dineIn[i].ID == id {
			f.dineIn[i].OrderStatus = status
			f.dineIn[i].UpdatedAt = time.Now()
			return models.OrderSummary{ID: id, OrderStatus: status}, nil
		}
	}
	return models.OrderSummary{}, errors.New("order not found")
}

func (f *fakeAPI) UpdateDeliveryOrderStatus(ctx context.Context, id int, status models.OrderStatus) (models.OrderSummary, error) {
	if f.failUpdate != nil {
		return models.OrderSummary{}, f.failUpdate
	}
	for i := range f.delivery {
		if f.delivery[i].ID == id {
			f.delivery[i].OrderStatus = status
			return models.OrderSummary{ID: id, OrderStatus: status}, nil
		}
	}
	return models.OrderSummary{}, errors.New("order not found")
}

func newTestDashboard(api *fakeAPI) *Dashboard {
	return New(api, logger.New("admin-test"))
}

func TestUpdateDineInStatus_RefetchesQueue(t *testing.T) {
	api := &fakeAPI{dineIn: []models.DineInOrder{
		{ID: 2, CustomerName: "Ana", OrderStatus: models.StatusPending},
		{ID: 1, CustomerName: "Juan", OrderStatus: models.StatusPending},
	}}
	d := newTestDashboard(api)

	orders, err := d.UpdateDineInStatus(context.Background(), 1, models.StatusPreparing)
	require.NoError(t, err)

	// The returned queue is the server's view after the update.
	require.Len(t, orders, 2)
	require.Equal(t, models.StatusPreparing, orders[1].OrderStatus)
	require.Equal(t, models.StatusPending, orders[0].OrderStatus)
	require.Equal(t, 1, api.listCalls)
}

func TestUpdateDeliveryStatus_RefetchesQueue(t *testing.T) {
	api := &fakeAPI{delivery: []models.DeliveryOrder{
		{ID: 3, CustomerName: "Maria", OrderStatus: models.StatusReady},
	}}
	d := newTestDashboard(api)

	orders, err := d.UpdateDeliveryStatus(context.Background(), 3, models.StatusCompleted)
	require.NoError(t, err)
	require.Equal(t, models.StatusCompleted, orders[0].OrderStatus)
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	api := &fakeAPI{}
	d := newTestDashboard(api)

	_, err := d.UpdateStatus(context.Background(), models.DineIn, 1, "shipped")
	var verr models.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "status", verr.Field)
	require.Equal(t, 0, api.listCalls)
}

func TestUpdateStatus_FailedUpdateSkipsRefetch(t *testing.T) {
	api := &fakeAPI{
		dineIn:     []models.DineInOrder{{ID: 1, OrderStatus: models.StatusPending}},
		failUpdate: errors.New("server unreachable"),
	}
	d := newTestDashboard(api)

	_, err := d.UpdateDineInStatus(context.Background(), 1, models.StatusPreparing)
	require.Error(t, err)
	require.Equal(t, 0, api.listCalls)
	require.Equal(t, models.StatusPending, api.dineIn[0].OrderStatus)
}

func TestListQueues(t *testing.T) {
	api := &fakeAPI{
		dineIn:   []models.DineInOrder{{ID: 1}},
		delivery: []models.DeliveryOrder{{ID: 2}, {ID: 1}},
	}
	d := newTestDashboard(api)

	dineIn, err := d.DineInOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, dineIn, 1)

	delivery, err := d.DeliveryOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, delivery, 2)
}
