package models

import (
	"fmt"
	"time"
)

// OrderType represents how a customer receives an order
type OrderType string

const (
	DineIn   OrderType = "dine-in"
	Delivery OrderType = "delivery"
)

// PaymentMethod represents how a customer pays for an order
type PaymentMethod string

const (
	PaymentCash  PaymentMethod = "cash"
	PaymentCOD   PaymentMethod = "cod"
	PaymentGcash PaymentMethod = "gcash"
)

// OrderStatus represents the lifecycle status of an order
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

// DefaultDeliveryFee is the flat fee added to every delivery order.
const DefaultDeliveryFee = 50.0

// ValidOrderStatus reports whether s is one of the known statuses.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case StatusPending, StatusPreparing, StatusReady, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ValidPaymentMethod reports whether the payment method is allowed for the
// given order type: delivery takes cod or gcash, dine-in takes cash or gcash.
func ValidPaymentMethod(orderType OrderType, method PaymentMethod) bool {
	switch orderType {
	case Delivery:
		return method == PaymentCOD || method == PaymentGcash
	case DineIn:
		return method == PaymentCash || method == PaymentGcash
	}
	return false
}

// DefaultPaymentMethod returns the payment method pre-selected for an order
// type: cod for delivery, cash for dine-in.
func DefaultPaymentMethod(orderType OrderType) PaymentMethod {
	if orderType == Delivery {
		return PaymentCOD
	}
	return PaymentCash
}

// OrderItem is a purchased line as persisted inside an order's items column.
type OrderItem struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// CartLine is a product snapshot plus the quantity in the cart.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// OrderItem converts the cart line to its persisted order shape.
func (l CartLine) OrderItem() OrderItem {
	return OrderItem{
		ID:       l.Product.ID,
		Name:     l.Product.Name,
		Price:    l.Product.Price,
		Quantity: l.Quantity,
	}
}

// CustomerInfo holds the customer fields collected during checkout.
type CustomerInfo struct {
	Name        string `json:"name"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	TableNumber string `json:"tableNumber,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// Order is the finalized order assembled by the checkout flow and handed to
// the order-confirmed callback.
type Order struct {
	OrderType     OrderType     `json:"orderType"`
	CustomerInfo  CustomerInfo  `json:"customerInfo"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	GcashNumber   string        `json:"gcashNumber,omitempty"`
	Items         []CartLine    `json:"items"`
	Subtotal      float64       `json:"subtotal"`
	DeliveryFee   float64       `json:"deliveryFee"`
	Total         float64       `json:"total"`
}

// CreateDineInOrderRequest is the payload for POST /api/orders/dine-in.
type CreateDineInOrderRequest struct {
	CustomerName  string      `json:"customerName"`
	TableNumber   string      `json:"tableNumber"`
	PhoneNumber   string      `json:"phoneNumber,omitempty"`
	Notes         string      `json:"notes,omitempty"`
	PaymentMethod string      `json:"paymentMethod"`
	Subtotal      float64     `json:"subtotal"`
	Total         float64     `json:"total"`
	Items         []OrderItem `json:"items"`
}

// Validate checks the dine-in request fields the server requires.
func (req *CreateDineInOrderRequest) Validate() error {
	if req.CustomerName == "" {
		return ValidationError{Field: "customerName", Message: "customer name is required"}
	}
	if req.TableNumber == "" {
		return ValidationError{Field: "tableNumber", Message: "table number is required for dine-in orders"}
	}
	if req.PaymentMethod == "" {
		return ValidationError{Field: "paymentMethod", Message: "payment method is required"}
	}
	if !ValidPaymentMethod(DineIn, PaymentMethod(req.PaymentMethod)) {
		return ValidationError{Field: "paymentMethod", Message: "payment method must be cash or gcash for dine-in orders"}
	}
	return validateItems(req.Items)
}

// CreateDeliveryOrderRequest is the payload for POST /api/orders/delivery.
type CreateDeliveryOrderRequest struct {
	CustomerName    string      `json:"customerName"`
	PhoneNumber     string      `json:"phoneNumber"`
	DeliveryAddress string      `json:"deliveryAddress"`
	Notes           string      `json:"notes,omitempty"`
	PaymentMethod   string      `json:"paymentMethod"`
	Subtotal        float64     `json:"subtotal"`
	DeliveryFee     float64     `json:"deliveryFee"`
	Total           float64     `json:"total"`
	Items           []OrderItem `json:"items"`
}

// Validate checks the delivery request fields the server requires.
func (req *CreateDeliveryOrderRequest) Validate() error {
	if req.CustomerName == "" {
		return ValidationError{Field: "customerName", Message: "customer name is required"}
	}
	if req.PhoneNumber == "" {
		return ValidationError{Field: "phoneNumber", Message: "phone number is required for delivery orders"}
	}
	if req.DeliveryAddress == "" {
		return ValidationError{Field: "deliveryAddress", Message: "delivery address is required for delivery orders"}
	}
	if req.PaymentMethod == "" {
		return ValidationError{Field: "paymentMethod", Message: "payment method is required"}
	}
	if !ValidPaymentMethod(Delivery, PaymentMethod(req.PaymentMethod)) {
		return ValidationError{Field: "paymentMethod", Message: "payment method must be cod or gcash for delivery orders"}
	}
	return validateItems(req.Items)
}

func validateItems(items []OrderItem) error {
	if len(items) == 0 {
		return ValidationError{Field: "items", Message: "items cannot be empty"}
	}
	for i, item := range items {
		if item.Name == "" {
			return ValidationError{Field: fmt.Sprintf("items[%d].name", i), Message: "item name is required"}
		}
		if item.Quantity < 1 {
			return ValidationError{Field: fmt.Sprintf("items[%d].quantity", i), Message: "item quantity must be at least 1"}
		}
		if item.Price < 0 {
			return ValidationError{Field: fmt.Sprintf("items[%d].price", i), Message: "item price must not be negative"}
		}
	}
	return nil
}

// DineInOrder is a row of the dine_in_orders table.
type DineInOrder struct {
	ID            int         `json:"id"`
	CustomerName  string      `json:"customer_name"`
	TableNumber   string      `json:"table_number"`
	PhoneNumber   *string     `json:"phone_number,omitempty"`
	Notes         *string     `json:"notes,omitempty"`
	PaymentMethod string      `json:"payment_method"`
	Subtotal      float64     `json:"subtotal"`
	Total         float64     `json:"total"`
	Items         []OrderItem `json:"items"`
	OrderStatus   OrderStatus `json:"order_status"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// DeliveryOrder is a row of the delivery_orders table.
type DeliveryOrder struct {
	ID              int         `json:"id"`
	CustomerName    string      `json:"customer_name"`
	PhoneNumber     string      `json:"phone_number"`
	DeliveryAddress string      `json:"delivery_address"`
	Notes           *string     `json:"notes,omitempty"`
	PaymentMethod   string      `json:"payment_method"`
	Subtotal        float64     `json:"subtotal"`
	DeliveryFee     float64     `json:"delivery_fee"`
	Total           float64     `json:"total"`
	Items           []OrderItem `json:"items"`
	OrderStatus     OrderStatus `json:"order_status"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// OrderSummary is the abbreviated order returned by the create and
// status-update endpoints.
type OrderSummary struct {
	ID           int         `json:"id"`
	CustomerName string      `json:"customer_name"`
	TableNumber  string      `json:"table_number,omitempty"`
	PhoneNumber  string      `json:"phone_number,omitempty"`
	OrderStatus  OrderStatus `json:"order_status"`
	CreatedAt    *time.Time  `json:"created_at,omitempty"`
	UpdatedAt    *time.Time  `json:"updated_at,omitempty"`
}

// OrderResponse wraps a mutation result for the orders API.
type OrderResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Order   OrderSummary `json:"order"`
}
