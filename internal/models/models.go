package models

import "time"

// Product represents a product in the catalog. Rating and ReviewsCount are
// derived from the review collection; Stock is mutated only by order commits.
type Product struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	Image        string  `json:"image"`
	Category     string  `json:"category"`
	Stock        int     `json:"stock"`
	Rating       float64 `json:"rating"`
	ReviewsCount int     `json:"reviews_count"`
	Discount     float64 `json:"discount"`
}

// CartItem is a single line of an order request.
type CartItem struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// Order represents a committed customer order. Total is fixed at commit time
// and never recomputed.
type Order struct {
	ID              int64      `json:"id"`
	UserID          int64      `json:"user_id"`
	Items           []CartItem `json:"items"`
	Total           float64    `json:"total"`
	CustomerName    string     `json:"customer_name"`
	CustomerEmail   string     `json:"customer_email"`
	ShippingAddress string     `json:"shipping_address"`
	PaymentMethod   string     `json:"payment_method"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
}

// Order defaults
const (
	OrderStatusPending   = "Pending"
	DefaultPaymentMethod = "Cash on Delivery"
)

// Review represents a product review. Rating is 1-5.
type Review struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"product_id"`
	UserID    int64     `json:"user_id"`
	UserName  string    `json:"user_name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// WishlistEntry is a saved (user, product) pairing.
type WishlistEntry struct {
	UserID    int64     `json:"user_id"`
	ProductID int64     `json:"product_id"`
	AddedAt   time.Time `json:"added_at"`
}

// WishlistProduct is a wishlist entry hydrated with its product fields.
type WishlistProduct struct {
	Product
	AddedAt time.Time `json:"added_at"`
}

// User represents a registered user. PasswordHash never leaves the process.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// AdminStats is a point-in-time snapshot of store totals.
type AdminStats struct {
	TotalUsers    int     `json:"total_users"`
	TotalOrders   int     `json:"total_orders"`
	TotalRevenue  float64 `json:"total_revenue"`
	TotalProducts int     `json:"total_products"`
}
