package service

import (
	"context"

	"shop-service/internal/models"
	"shop-service/internal/store"
	"shop-service/internal/util"

	"go.uber.org/zap"
)

// WishlistService handles wishlist membership
type WishlistService struct {
	store  *store.Store
	logger *zap.Logger
}

// NewWishlistService creates a new wishlist service
func NewWishlistService(st *store.Store) *WishlistService {
	return &WishlistService{
		store:  st,
		logger: util.GetLogger(),
	}
}

// WishlistRequest identifies a (user, product) pairing
type WishlistRequest struct {
	UserID    int64 `json:"user_id" binding:"required"`
	ProductID int64 `json:"product_id" binding:"required"`
}

// Add saves a product to a user's wishlist
func (s *WishlistService) Add(ctx context.Context, userID, productID int64) (models.WishlistEntry, error) {
	_, span := util.StartSpan(ctx, "WishlistService.Add")
	defer span.End()

	entry, err := s.store.AddWishlist(userID, productID)
	if err != nil {
		return models.WishlistEntry{}, err
	}

	util.WishlistAddsTotal.Inc()
	s.logger.Debug("Wishlist entry added",
		zap.Int64("user_id", userID),
		zap.Int64("product_id", productID))
	return entry, nil
}

// Remove deletes a product from a user's wishlist
func (s *WishlistService) Remove(ctx context.Context, userID, productID int64) error {
	_, span := util.StartSpan(ctx, "WishlistService.Remove")
	defer span.End()

	if err := s.store.RemoveWishlist(userID, productID); err != nil {
		return err
	}

	util.WishlistRemovesTotal.Inc()
	return nil
}

// ListByUser returns a user's wishlist hydrated with product fields
func (s *WishlistService) ListByUser(ctx context.Context, userID int64) []models.WishlistProduct {
	_, span := util.StartSpan(ctx, "WishlistService.ListByUser")
	defer span.End()

	return s.store.ListWishlistByUser(userID)
}
