package service

import (
	"context"
	"testing"

	"shop-service/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderService() *OrderService {
	return NewOrderService(store.New(), nil, nil)
}

func TestCreateOrderService(t *testing.T) {
	s := newOrderService()

	order, err := s.CreateOrder(context.Background(), &CreateOrderRequest{
		UserID: 7,
		Items: []OrderItemRequest{
			{ProductID: 1, Quantity: 2},
		},
		CustomerName:    "Jane Doe",
		CustomerEmail:   "jane@example.com",
		ShippingAddress: "1 Main St",
	})
	require.NoError(t, err)

	assert.Equal(t, 199.98, order.Total)
	assert.Equal(t, "Cash on Delivery", order.PaymentMethod)

	got, err := s.GetOrder(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
}

func TestCreateOrderServiceFailures(t *testing.T) {
	s := newOrderService()

	_, err := s.CreateOrder(context.Background(), &CreateOrderRequest{
		UserID:          1,
		Items:           []OrderItemRequest{{ProductID: 999, Quantity: 1}},
		CustomerName:    "Jane",
		CustomerEmail:   "jane@example.com",
		ShippingAddress: "1 Main St",
	})
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.CreateOrder(context.Background(), &CreateOrderRequest{
		UserID:          1,
		Items:           []OrderItemRequest{{ProductID: 1, Quantity: 1000}},
		CustomerName:    "Jane",
		CustomerEmail:   "jane@example.com",
		ShippingAddress: "1 Main St",
	})
	assert.ErrorIs(t, err, store.ErrInsufficientStock)

	assert.Empty(t, s.ListOrders(context.Background()))
}

func TestOrderFailureReason(t *testing.T) {
	assert.Equal(t, "product_not_found", orderFailureReason(store.ErrNotFound))
	assert.Equal(t, "insufficient_stock", orderFailureReason(store.ErrInsufficientStock))
	assert.Equal(t, "unknown", orderFailureReason(assert.AnError))
}
