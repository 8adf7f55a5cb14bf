package models

import "time"

// Event types
const (
	EventTypeOrderPlaced   = "ORDER_PLACED"
	EventTypeStockDepleted = "STOCK_DEPLETED"
	EventTypeReviewAdded   = "REVIEW_ADDED"
)

// BaseEvent contains common fields for all events
type BaseEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
}

// OrderPlacedEvent published when an order commits
type OrderPlacedEvent struct {
	BaseEvent
	OrderID       int64      `json:"order_id"`
	UserID        int64      `json:"user_id"`
	Total         float64    `json:"total"`
	Items         []CartItem `json:"items"`
	CustomerEmail string     `json:"customer_email"`
}

// StockDepletedEvent published when an order commit drives stock to zero
type StockDepletedEvent struct {
	BaseEvent
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
}

// ReviewAddedEvent published after a review rollup
type ReviewAddedEvent struct {
	BaseEvent
	ReviewID      int64   `json:"review_id"`
	ProductID     int64   `json:"product_id"`
	Rating        int     `json:"rating"`
	ProductRating float64 `json:"product_rating"`
	ReviewsCount  int     `json:"reviews_count"`
}
