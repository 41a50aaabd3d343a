// Package client is the storefront's wrapper around the items and orders
// API. It is a pure request/response layer: no retries, no backoff, one
// HTTP call per method.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"kapehan/internal/models"
)

// APIError is returned for any non-2xx response. Body carries the response
// body verbatim so callers can surface the server's own message.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	body := e.Body
	if body == "" {
		body = "Unknown error"
	}
	return fmt.Sprintf("API error (%d): %s", e.StatusCode, body)
}

// NotFound reports whether the error is a 404 from the API.
func (e *APIError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// Client calls the coffee shop API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the API at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// NewWithHTTPClient creates a client with a caller-supplied http.Client.
func NewWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// GetAllItems fetches the full menu.
func (c *Client) GetAllItems(ctx context.Context) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := c.do(ctx, http.MethodGet, "/api/items", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetItemByID fetches a single menu item by numeric id or item_id.
func (c *Client) GetItemByID(ctx context.Context, id string) (models.MenuItem, error) {
	var item models.MenuItem
	if err := c.do(ctx, http.MethodGet, "/api/items/"+url.PathEscape(id), nil, &item); err != nil {
		return models.MenuItem{}, err
	}
	return item, nil
}

// GetItemsByCategory fetches the menu items in one category.
func (c *Client) GetItemsByCategory(ctx context.Context, category string) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := c.do(ctx, http.MethodGet, "/api/items/category/"+url.PathEscape(category), nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetDineInOrders fetches all dine-in orders, newest first.
func (c *Client) GetDineInOrders(ctx context.Context) ([]models.DineInOrder, error) {
	var orders []models.DineInOrder
	if err := c.do(ctx, http.MethodGet, "/api/orders/dine-in/list", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetDeliveryOrders fetches all delivery orders, newest first.
func (c *Client) GetDeliveryOrders(ctx context.Context) ([]models.DeliveryOrder, error) {
	var orders []models.DeliveryOrder
	if err := c.do(ctx, http.MethodGet, "/api/orders/delivery/list", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// CreateDineInOrder submits a dine-in order.
func (c *Client) CreateDineInOrder(ctx context.Context, req *models.CreateDineInOrderRequest) (models.OrderSummary, error) {
	var resp models.OrderResponse
	if err := c.do(ctx, http.MethodPost, "/api/orders/dine-in", req, &resp); err != nil {
		return models.OrderSummary{}, err
	}
	return resp.Order, nil
}

// CreateDeliveryOrder submits a delivery order.
func (c *Client) CreateDeliveryOrder(ctx context.Context, req *models.CreateDeliveryOrderRequest) (models.OrderSummary, error) {
	var resp models.OrderResponse
	if err := c.do(ctx, http.MethodPost, "/api/orders/delivery", req, &resp); err != nil {
		return models.OrderSummary{}, err
	}
	return resp.Order, nil
}

// UpdateDineInOrderStatus changes a dine-in order's status.
func (c *Client) UpdateDineInOrderStatus(ctx context.Context, id int, status models.OrderStatus) (models.OrderSummary, error) {
	return c.updateStatus(ctx, fmt.Sprintf("/api/orders/dine-in/%d/status", id), status)
}

// UpdateDeliveryOrderStatus changes a delivery order's status.
func (c *Client) UpdateDeliveryOrderStatus(ctx context.Context, id int, status models.OrderStatus) (models.OrderSummary, error) {
	return c.updateStatus(ctx, fmt.Sprintf("/api/orders/delivery/%d/status", id), status)
}

func (c *Client) updateStatus(ctx context.Context, path string, status models.OrderStatus) (models.OrderSummary, error) {
	body := map[string]models.OrderStatus{"status": status}

	var resp models.OrderResponse
	if err := c.do(ctx, http.MethodPatch, path, body, &resp); err != nil {
		return models.OrderSummary{}, err
	}
	return resp.Order, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(resp.Body)
		return &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(text))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
