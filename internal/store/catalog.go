package store

import (
	"fmt"
	"strings"

	"shop-service/internal/models"
)

// GetProduct retrieves a product by ID.
func (s *Store) GetProduct(id int64) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.productIdx[id]
	if !ok {
		return models.Product{}, fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	return s.products[idx], nil
}

// ListProducts returns products in insertion order. A non-empty category
// filters by exact match.
func (s *Store) ListProducts(category string) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		if category != "" && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out
}

// SearchProducts returns products whose name or description contains the
// query, case-insensitively.
func (s *Store) SearchProducts(query string) []models.Product {
	q := strings.ToLower(query)

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Product
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns distinct category labels in first-seen catalog order.
func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{}, len(s.products))
	var out []string
	for _, p := range s.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

// DecrementStock removes quantity units from a product's stock. It fails
// without mutation if the product is unknown or stock is insufficient.
func (s *Store) DecrementStock(id int64, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.decrementStockLocked(id, quantity)
}

func (s *Store) decrementStockLocked(id int64, quantity int) error {
	idx, ok := s.productIdx[id]
	if !ok {
		return fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	if quantity > s.products[idx].Stock {
		return fmt.Errorf("product %d: %w", id, ErrInsufficientStock)
	}
	s.products[idx].Stock -= quantity
	return nil
}
