package store

import (
	"fmt"
	"time"

	"shop-service/internal/models"
)

// AddWishlist saves a (user, product) pairing. The product must exist and
// the pairing must not already be present.
func (s *Store) AddWishlist(userID, productID int64) (models.WishlistEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.productIdx[productID]; !ok {
		return models.WishlistEntry{}, fmt.Errorf("product %d: %w", productID, ErrNotFound)
	}

	key := wishKey{userID: userID, productID: productID}
	if _, ok := s.wishKeys[key]; ok {
		return models.WishlistEntry{}, fmt.Errorf("product %d for user %d: %w", productID, userID, ErrAlreadyExists)
	}

	entry := models.WishlistEntry{
		UserID:    userID,
		ProductID: productID,
		AddedAt:   time.Now(),
	}
	s.wishlist = append(s.wishlist, entry)
	s.wishKeys[key] = struct{}{}

	return entry, nil
}

// RemoveWishlist deletes a (user, product) pairing.
func (s *Store) RemoveWishlist(userID, productID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := wishKey{userID: userID, productID: productID}
	if _, ok := s.wishKeys[key]; !ok {
		return fmt.Errorf("wishlist entry for user %d, product %d: %w", userID, productID, ErrNotFound)
	}
	delete(s.wishKeys, key)

	for i := range s.wishlist {
		if s.wishlist[i].UserID == userID && s.wishlist[i].ProductID == productID {
			s.wishlist = append(s.wishlist[:i], s.wishlist[i+1:]...)
			break
		}
	}
	return nil
}

// ListWishlistByUser returns a user's wishlist entries hydrated with product
// fields, in the order they were added. Entries whose product no longer
// exists are skipped.
func (s *Store) ListWishlistByUser(userID int64) []models.WishlistProduct {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.WishlistProduct
	for _, entry := range s.wishlist {
		if entry.UserID != userID {
			continue
		}
		idx, ok := s.productIdx[entry.ProductID]
		if !ok {
			continue
		}
		out = append(out, models.WishlistProduct{
			Product: s.products[idx],
			AddedAt: entry.AddedAt,
		})
	}
	return out
}
