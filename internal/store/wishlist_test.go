package store

import (
	"testing"
	"time"

	"shop-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddWishlist(t *testing.T) {
	s := New()

	entry, err := s.AddWishlist(1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), entry.UserID)
	assert.Equal(t, int64(2), entry.ProductID)
	assert.False(t, entry.AddedAt.IsZero())
}

func TestAddWishlistUnknownProduct(t *testing.T) {
	s := New()

	_, err := s.AddWishlist(1, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddWishlistDuplicate(t *testing.T) {
	s := New()

	_, err := s.AddWishlist(1, 2)
	require.NoError(t, err)

	_, err = s.AddWishlist(1, 2)
	assert.ErrorIs(t, err, ErrAlreadyExists)

	// same product for another user is fine
	_, err = s.AddWishlist(2, 2)
	assert.NoError(t, err)
}

func TestRemoveWishlist(t *testing.T) {
	s := New()

	_, err := s.AddWishlist(1, 2)
	require.NoError(t, err)

	require.NoError(t, s.RemoveWishlist(1, 2))
	assert.Empty(t, s.ListWishlistByUser(1))

	// removing again fails
	assert.ErrorIs(t, s.RemoveWishlist(1, 2), ErrNotFound)
}

func TestRemoveWishlistMissing(t *testing.T) {
	s := New()

	assert.ErrorIs(t, s.RemoveWishlist(1, 2), ErrNotFound)
}

func TestListWishlistByUserHydrates(t *testing.T) {
	s := New()

	_, err := s.AddWishlist(1, 2)
	require.NoError(t, err)
	_, err = s.AddWishlist(1, 5)
	require.NoError(t, err)
	_, err = s.AddWishlist(2, 3)
	require.NoError(t, err)

	list := s.ListWishlistByUser(1)
	require.Len(t, list, 2)
	assert.Equal(t, "Smart Watch", list[0].Name)
	assert.Equal(t, 199.99, list[0].Price)
	assert.Equal(t, "Backpack", list[1].Name)
	assert.False(t, list[0].AddedAt.IsZero())
}

func TestListWishlistSkipsMissingProducts(t *testing.T) {
	s := New()

	_, err := s.AddWishlist(1, 2)
	require.NoError(t, err)

	// entry referencing a product that no longer exists is skipped silently
	s.mu.Lock()
	s.wishlist = append(s.wishlist, models.WishlistEntry{
		UserID:    1,
		ProductID: 999,
		AddedAt:   time.Now(),
	})
	s.wishKeys[wishKey{userID: 1, productID: 999}] = struct{}{}
	s.mu.Unlock()

	list := s.ListWishlistByUser(1)
	require.Len(t, list, 1)
	assert.Equal(t, int64(2), list[0].ID)
}
