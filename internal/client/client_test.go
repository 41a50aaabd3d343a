package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"kapehan/internal/models"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL)
}

func TestGetAllItems(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/items", r.URL.Path)
		json.NewEncoder(w).Encode([]models.MenuItem{
			{ID: 1, ItemID: "LAT-001", Name: "Cafe Latte", Category: "Latte", DiscountedPrice: 150},
			{ID: 2, ItemID: "ESP-001", Name: "Espresso", Category: "Espresso", DiscountedPrice: 120},
		})
	})

	items, err := c.GetAllItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "Cafe Latte", items[0].Name)
}

func TestGetItemByID(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/items/LAT-001", r.URL.Path)
		json.NewEncoder(w).Encode(models.MenuItem{ID: 1, ItemID: "LAT-001", Name: "Cafe Latte"})
	})

	item, err := c.GetItemByID(context.Background(), "LAT-001")
	require.NoError(t, err)
	require.Equal(t, "Cafe Latte", item.Name)
}

func TestGetItemByID_NotFound(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": "Product not found"}`))
	})

	_, err := c.GetItemByID(context.Background(), "NOPE-999")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.True(t, apiErr.NotFound())
	require.Equal(t, `API error (404): {"error": "Product not found"}`, apiErr.Error())
}

func TestGetItemsByCategory(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/items/category/Frappe", r.URL.Path)
		json.NewEncoder(w).Encode([]models.MenuItem{{ID: 7, Name: "Mocha Frappe", Category: "Frappe"}})
	})

	items, err := c.GetItemsByCategory(context.Background(), "Frappe")
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestCreateDineInOrder(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/orders/dine-in", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req models.CreateDineInOrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "Juan Dela Cruz", req.CustomerName)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.OrderResponse{
			Success: true,
			Message: "Dine-in order created successfully",
			Order:   models.OrderSummary{ID: 1, CustomerName: req.CustomerName, TableNumber: req.TableNumber, OrderStatus: models.StatusPending},
		})
	})

	order, err := c.CreateDineInOrder(context.Background(), &models.CreateDineInOrderRequest{
		CustomerName:  "Juan Dela Cruz",
		TableNumber:   "5",
		PaymentMethod: "cash",
		Subtotal:      150,
		Total:         150,
		Items:         []models.OrderItem{{ID: 1, Name: "Cafe Latte", Price: 150, Quantity: 1}},
	})
	require.NoError(t, err)
	require.Equal(t, 1, order.ID)
	require.Equal(t, models.StatusPending, order.OrderStatus)
}

func TestCreateDeliveryOrder_ServerRejects(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "deliveryAddress: delivery address is required for delivery orders"}`))
	})

	_, err := c.CreateDeliveryOrder(context.Background(), &models.CreateDeliveryOrderRequest{CustomerName: "Maria"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	require.Contains(t, apiErr.Error(), "deliveryAddress")
}

func TestUpdateOrderStatus(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/api/orders/delivery/3/status", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "preparing", body["status"])

		json.NewEncoder(w).Encode(models.OrderResponse{
			Success: true,
			Order:   models.OrderSummary{ID: 3, OrderStatus: models.StatusPreparing},
		})
	})

	order, err := c.UpdateDeliveryOrderStatus(context.Background(), 3, models.StatusPreparing)
	require.NoError(t, err)
	require.Equal(t, models.StatusPreparing, order.OrderStatus)
}

func TestGetDineInOrders(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/orders/dine-in/list", r.URL.Path)
		json.NewEncoder(w).Encode([]models.DineInOrder{
			{ID: 2, CustomerName: "Ana", TableNumber: "7", OrderStatus: models.StatusPending},
			{ID: 1, CustomerName: "Juan", TableNumber: "5", OrderStatus: models.StatusReady},
		})
	})

	orders, err := c.GetDineInOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 2)
	require.Equal(t, 2, orders[0].ID)
}

func TestEmptyErrorBody(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.GetAllItems(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "API error (500): Unknown error", apiErr.Error())
}
