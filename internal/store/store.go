package store

import (
	"math"
	"sync"

	"shop-service/internal/models"
)

type reviewKey struct {
	productID int64
	userID    int64
}

type wishKey struct {
	userID    int64
	productID int64
}

// Store owns all service state: the product catalog, committed orders,
// reviews, wishlist entries, registered users and the id counters. A single
// RWMutex guards everything; mutating operations hold the write lock across
// their full validate-and-commit sequence so each one is all-or-nothing.
type Store struct {
	mu sync.RWMutex

	products   []models.Product
	productIdx map[int64]int

	orders  []models.Order
	reviews []models.Review

	reviewKeys map[reviewKey]struct{}

	wishlist []models.WishlistEntry
	wishKeys map[wishKey]struct{}

	users       []models.User
	userByEmail map[string]int

	nextOrderID  int64
	nextReviewID int64
	nextUserID   int64
}

// New creates a store seeded with the startup catalog.
func New() *Store {
	s := &Store{
		productIdx:   make(map[int64]int),
		reviewKeys:   make(map[reviewKey]struct{}),
		wishKeys:     make(map[wishKey]struct{}),
		userByEmail:  make(map[string]int),
		nextOrderID:  1,
		nextReviewID: 1,
		nextUserID:   1,
	}

	for _, p := range seedProducts() {
		s.productIdx[p.ID] = len(s.products)
		s.products = append(s.products, p)
	}

	return s
}

// Stats returns a snapshot of store totals. Revenue is the sum of committed
// order totals, rounded to 2 decimals.
func (s *Store) Stats() models.AdminStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var revenue float64
	for i := range s.orders {
		revenue += s.orders[i].Total
	}

	return models.AdminStats{
		TotalUsers:    len(s.users),
		TotalOrders:   len(s.orders),
		TotalRevenue:  round2(revenue),
		TotalProducts: len(s.products),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
