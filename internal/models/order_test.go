package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validItems() []OrderItem {
	return []OrderItem{{ID: 1, Name: "Cafe Latte", Price: 150, Quantity: 1}}
}

func TestCreateDineInOrderRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CreateDineInOrderRequest)
		wantErr string
	}{
		{name: "valid request"},
		{
			name:    "missing customer name",
			mutate:  func(r *CreateDineInOrderRequest) { r.CustomerName = "" },
			wantErr: "customerName",
		},
		{
			name:    "missing table number",
			mutate:  func(r *CreateDineInOrderRequest) { r.TableNumber = "" },
			wantErr: "tableNumber",
		},
		{
			name:    "missing payment method",
			mutate:  func(r *CreateDineInOrderRequest) { r.PaymentMethod = "" },
			wantErr: "paymentMethod",
		},
		{
			name:    "cod not allowed for dine-in",
			mutate:  func(r *CreateDineInOrderRequest) { r.PaymentMethod = "cod" },
			wantErr: "paymentMethod",
		},
		{
			name:    "empty items",
			mutate:  func(r *CreateDineInOrderRequest) { r.Items = nil },
			wantErr: "items",
		},
		{
			name:    "zero quantity",
			mutate:  func(r *CreateDineInOrderRequest) { r.Items[0].Quantity = 0 },
			wantErr: "items[0].quantity",
		},
		{
			name:    "negative price",
			mutate:  func(r *CreateDineInOrderRequest) { r.Items[0].Price = -1 },
			wantErr: "items[0].price",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &CreateDineInOrderRequest{
				CustomerName:  "Juan Dela Cruz",
				TableNumber:   "5",
				PaymentMethod: "cash",
				Subtotal:      150,
				Total:         150,
				Items:         validItems(),
			}
			if tt.mutate != nil {
				tt.mutate(req)
			}

			err := req.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			var verr ValidationError
			require.ErrorAs(t, err, &verr)
			require.Equal(t, tt.wantErr, verr.Field)
		})
	}
}

func TestCreateDeliveryOrderRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CreateDeliveryOrderRequest)
		wantErr string
	}{
		{name: "valid request"},
		{
			name:    "missing customer name",
			mutate:  func(r *CreateDeliveryOrderRequest) { r.CustomerName = "" },
			wantErr: "customerName",
		},
		{
			name:    "missing phone number",
			mutate:  func(r *CreateDeliveryOrderRequest) { r.PhoneNumber = "" },
			wantErr: "phoneNumber",
		},
		{
			name:    "missing delivery address",
			mutate:  func(r *CreateDeliveryOrderRequest) { r.DeliveryAddress = "" },
			wantErr: "deliveryAddress",
		},
		{
			name:    "cash not allowed for delivery",
			mutate:  func(r *CreateDeliveryOrderRequest) { r.PaymentMethod = "cash" },
			wantErr: "paymentMethod",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &CreateDeliveryOrderRequest{
				CustomerName:    "Maria Santos",
				PhoneNumber:     "0917 000 0000",
				DeliveryAddress: "123 Mabini St, Manila",
				PaymentMethod:   "cod",
				Subtotal:        310,
				DeliveryFee:     50,
				Total:           360,
				Items:           validItems(),
			}
			if tt.mutate != nil {
				tt.mutate(req)
			}

			err := req.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			var verr ValidationError
			require.ErrorAs(t, err, &verr)
			require.Equal(t, tt.wantErr, verr.Field)
		})
	}
}

func TestValidOrderStatus(t *testing.T) {
	for _, s := range []OrderStatus{StatusPending, StatusPreparing, StatusReady, StatusCompleted, StatusCancelled} {
		require.True(t, ValidOrderStatus(s))
	}
	require.False(t, ValidOrderStatus("shipped"))
	require.False(t, ValidOrderStatus(""))
}

func TestDefaultPaymentMethod(t *testing.T) {
	require.Equal(t, PaymentCOD, DefaultPaymentMethod(Delivery))
	require.Equal(t, PaymentCash, DefaultPaymentMethod(DineIn))
}
