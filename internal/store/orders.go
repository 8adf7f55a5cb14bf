package store

import (
	"fmt"
	"time"

	"shop-service/internal/models"
)

// CreateOrder validates every cart line against current stock and, only if
// all lines pass, decrements stock and records the order. The write lock is
// held across both phases, so an order either commits fully or leaves no
// trace; concurrent orders cannot both pass validation against the same
// stock.
func (s *Store) CreateOrder(userID int64, items []models.CartItem, customerName, customerEmail, shippingAddress, paymentMethod string) (models.Order, error) {
	if paymentMethod == "" {
		paymentMethod = models.DefaultPaymentMethod
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Phase 1: validate all lines and accumulate the total. No mutation
	// happens until every line has passed.
	var total float64
	for _, item := range items {
		idx, ok := s.productIdx[item.ProductID]
		if !ok {
			return models.Order{}, fmt.Errorf("product %d: %w", item.ProductID, ErrNotFound)
		}
		p := s.products[idx]
		if item.Quantity > p.Stock {
			return models.Order{}, fmt.Errorf("product %d (%s): %w", p.ID, p.Name, ErrInsufficientStock)
		}
		total += p.Price * float64(item.Quantity)
	}

	// Phase 2: commit. Decrements cannot fail after validation because the
	// lock has been held throughout.
	for _, item := range items {
		s.products[s.productIdx[item.ProductID]].Stock -= item.Quantity
	}

	order := models.Order{
		ID:              s.nextOrderID,
		UserID:          userID,
		Items:           append([]models.CartItem(nil), items...),
		Total:           round2(total),
		CustomerName:    customerName,
		CustomerEmail:   customerEmail,
		ShippingAddress: shippingAddress,
		PaymentMethod:   paymentMethod,
		Status:          models.OrderStatusPending,
		CreatedAt:       time.Now(),
	}

	s.orders = append(s.orders, order)
	s.nextOrderID++

	return cloneOrder(order), nil
}

// GetOrder retrieves an order by ID.
func (s *Store) GetOrder(id int64) (models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			return cloneOrder(s.orders[i]), nil
		}
	}
	return models.Order{}, fmt.Errorf("order %d: %w", id, ErrNotFound)
}

// ListOrdersByUser returns a user's orders, newest first.
func (s *Store) ListOrdersByUser(userID int64) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Order
	for i := len(s.orders) - 1; i >= 0; i-- {
		if s.orders[i].UserID == userID {
			out = append(out, cloneOrder(s.orders[i]))
		}
	}
	return out
}

// ListOrders returns every committed order, newest first.
func (s *Store) ListOrders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Order, 0, len(s.orders))
	for i := len(s.orders) - 1; i >= 0; i-- {
		out = append(out, cloneOrder(s.orders[i]))
	}
	return out
}

// cloneOrder copies an order so callers never share the stored Items slice.
func cloneOrder(o models.Order) models.Order {
	o.Items = append([]models.CartItem(nil), o.Items...)
	return o
}
