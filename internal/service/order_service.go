package service

import (
	"context"
	"errors"
	"time"

	"shop-service/internal/broker"
	"shop-service/internal/models"
	"shop-service/internal/redisclient"
	"shop-service/internal/store"
	"shop-service/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OrderService handles order business logic
type OrderService struct {
	store          *store.Store
	cache          *redisclient.Client
	eventPublisher *broker.EventPublisher
	logger         *zap.Logger
}

// NewOrderService creates a new order service. cache and eventPublisher may
// be nil when Redis/Kafka are not configured.
func NewOrderService(st *store.Store, cache *redisclient.Client, eventPublisher *broker.EventPublisher) *OrderService {
	return &OrderService{
		store:          st,
		cache:          cache,
		eventPublisher: eventPublisher,
		logger:         util.GetLogger(),
	}
}

// CreateOrderRequest represents a request to create an order
type CreateOrderRequest struct {
	UserID          int64              `json:"user_id" binding:"required"`
	Items           []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	CustomerName    string             `json:"customer_name" binding:"required"`
	CustomerEmail   string             `json:"customer_email" binding:"required,email"`
	ShippingAddress string             `json:"shipping_address" binding:"required"`
	PaymentMethod   string             `json:"payment_method"`
}

// OrderItemRequest represents an item in an order
type OrderItemRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required,min=1"`
}

// CreateOrder validates the cart against stock and commits it atomically.
func (s *OrderService) CreateOrder(ctx context.Context, req *CreateOrderRequest) (models.Order, error) {
	ctx, span := util.StartSpan(ctx, "OrderService.CreateOrder")
	defer span.End()

	items := make([]models.CartItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = models.CartItem{ProductID: item.ProductID, Quantity: item.Quantity}
	}

	order, err := s.store.CreateOrder(req.UserID, items,
		req.CustomerName, req.CustomerEmail, req.ShippingAddress, req.PaymentMethod)
	if err != nil {
		util.OrdersFailedTotal.WithLabelValues(orderFailureReason(err)).Inc()
		return models.Order{}, err
	}

	util.OrdersPlacedTotal.Inc()
	util.OrderValue.Observe(order.Total)
	s.logger.Info("Order placed",
		zap.Int64("order_id", order.ID),
		zap.Int64("user_id", order.UserID),
		zap.Float64("total", order.Total))

	s.invalidateProducts(ctx, items)
	s.publishOrderEvents(ctx, order)

	return order, nil
}

func orderFailureReason(err error) string {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return "product_not_found"
	case errors.Is(err, store.ErrInsufficientStock):
		return "insufficient_stock"
	default:
		return "unknown"
	}
}

// invalidateProducts drops the order's products from the read cache after
// their stock changed.
func (s *OrderService) invalidateProducts(ctx context.Context, items []models.CartItem) {
	if s.cache == nil {
		return
	}
	for _, item := range items {
		if err := s.cache.InvalidateProduct(ctx, item.ProductID); err != nil {
			s.logger.Warn("Failed to invalidate product cache",
				zap.Int64("product_id", item.ProductID),
				zap.Error(err))
		}
	}
}

// publishOrderEvents emits OrderPlaced plus StockDepleted for any product
// the commit drove to zero. Publishing is best effort; failures are logged,
// never surfaced to the caller.
func (s *OrderService) publishOrderEvents(ctx context.Context, order models.Order) {
	if s.eventPublisher == nil {
		return
	}

	event := &models.OrderPlacedEvent{
		BaseEvent: models.BaseEvent{
			EventID:   uuid.New().String(),
			EventType: models.EventTypeOrderPlaced,
			Timestamp: time.Now(),
		},
		OrderID:       order.ID,
		UserID:        order.UserID,
		Total:         order.Total,
		Items:         order.Items,
		CustomerEmail: order.CustomerEmail,
	}
	if err := s.eventPublisher.PublishOrderPlaced(ctx, event); err != nil {
		s.logger.Error("Failed to publish OrderPlaced event",
			zap.Int64("order_id", order.ID), zap.Error(err))
	}

	for _, item := range order.Items {
		product, err := s.store.GetProduct(item.ProductID)
		if err != nil || product.Stock > 0 {
			continue
		}
		depleted := &models.StockDepletedEvent{
			BaseEvent: models.BaseEvent{
				EventID:   uuid.New().String(),
				EventType: models.EventTypeStockDepleted,
				Timestamp: time.Now(),
			},
			ProductID: product.ID,
			Name:      product.Name,
		}
		if err := s.eventPublisher.PublishStockDepleted(ctx, depleted); err != nil {
			s.logger.Error("Failed to publish StockDepleted event",
				zap.Int64("product_id", product.ID), zap.Error(err))
		}
	}
}

// GetOrder retrieves an order by ID
func (s *OrderService) GetOrder(ctx context.Context, orderID int64) (models.Order, error) {
	_, span := util.StartSpan(ctx, "OrderService.GetOrder")
	defer span.End()

	return s.store.GetOrder(orderID)
}

// ListOrdersByUser returns a user's orders, newest first
func (s *OrderService) ListOrdersByUser(ctx context.Context, userID int64) []models.Order {
	_, span := util.StartSpan(ctx, "OrderService.ListOrdersByUser")
	defer span.End()

	return s.store.ListOrdersByUser(userID)
}

// ListOrders returns all orders, newest first
func (s *OrderService) ListOrders(ctx context.Context) []models.Order {
	_, span := util.StartSpan(ctx, "OrderService.ListOrders")
	defer span.End()

	return s.store.ListOrders()
}
