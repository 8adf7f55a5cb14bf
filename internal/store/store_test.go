package store

import (
	"testing"

	"shop-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProduct(t *testing.T) {
	s := New()

	p, err := s.GetProduct(1)
	require.NoError(t, err)
	assert.Equal(t, "Wireless Headphones", p.Name)
	assert.Equal(t, 99.99, p.Price)
	assert.Equal(t, 50, p.Stock)
}

func TestGetProductNotFound(t *testing.T) {
	s := New()

	_, err := s.GetProduct(999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListProducts(t *testing.T) {
	s := New()

	all := s.ListProducts("")
	require.Len(t, all, 6)

	// insertion order
	for i, p := range all {
		assert.Equal(t, int64(i+1), p.ID)
	}
}

func TestListProductsByCategory(t *testing.T) {
	s := New()

	sports := s.ListProducts("Sports")
	require.Len(t, sports, 2)
	assert.Equal(t, int64(3), sports[0].ID)
	assert.Equal(t, int64(6), sports[1].ID)

	assert.Empty(t, s.ListProducts("Nonexistent"))
}

func TestSearchProducts(t *testing.T) {
	tests := []struct {
		name  string
		query string
		ids   []int64
	}{
		{"case insensitive name match", "WIRELESS", []int64{1}},
		{"description match", "heart rate", []int64{2}},
		{"substring across products", "with", []int64{1, 2, 3, 4, 5, 6}},
		{"no match", "quantum", nil},
	}

	s := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := s.SearchProducts(tt.query)
			var ids []int64
			for _, p := range results {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.ids, ids)
		})
	}
}

func TestCategories(t *testing.T) {
	s := New()

	// distinct, first-seen order
	assert.Equal(t,
		[]string{"Electronics", "Sports", "Beverages", "Accessories"},
		s.Categories())
}

func TestDecrementStock(t *testing.T) {
	s := New()

	require.NoError(t, s.DecrementStock(1, 10))
	p, _ := s.GetProduct(1)
	assert.Equal(t, 40, p.Stock)

	err := s.DecrementStock(1, 41)
	assert.ErrorIs(t, err, ErrInsufficientStock)
	p, _ = s.GetProduct(1)
	assert.Equal(t, 40, p.Stock)

	assert.ErrorIs(t, s.DecrementStock(999, 1), ErrNotFound)
}

func TestStats(t *testing.T) {
	s := New()

	stats := s.Stats()
	assert.Equal(t, 0, stats.TotalUsers)
	assert.Equal(t, 0, stats.TotalOrders)
	assert.Equal(t, 0.0, stats.TotalRevenue)
	assert.Equal(t, 6, stats.TotalProducts)

	_, err := s.CreateUser("Alice", "alice@example.com", "hash")
	require.NoError(t, err)

	_, err = s.CreateOrder(1, []models.CartItem{{ProductID: 1, Quantity: 2}},
		"Alice", "alice@example.com", "1 Main St", "")
	require.NoError(t, err)
	_, err = s.CreateOrder(1, []models.CartItem{{ProductID: 6, Quantity: 1}},
		"Alice", "alice@example.com", "1 Main St", "")
	require.NoError(t, err)

	stats = s.Stats()
	assert.Equal(t, 1, stats.TotalUsers)
	assert.Equal(t, 2, stats.TotalOrders)
	assert.Equal(t, 229.97, stats.TotalRevenue) // 199.98 + 29.99
	assert.Equal(t, 6, stats.TotalProducts)
}
