package service

import (
	"context"
	"testing"

	"shop-service/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReviewService(t *testing.T) {
	st := store.New()
	s := NewReviewService(st, nil, nil)
	ctx := context.Background()

	review, err := s.CreateReview(ctx, &CreateReviewRequest{
		ProductID: 1,
		UserID:    10,
		UserName:  "Alice",
		Rating:    4,
		Comment:   "Solid",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), review.ID)

	_, err = s.CreateReview(ctx, &CreateReviewRequest{
		ProductID: 1, UserID: 10, UserName: "Alice", Rating: 5,
	})
	assert.ErrorIs(t, err, store.ErrDuplicateReview)

	reviews := s.ListReviewsByProduct(ctx, 1)
	require.Len(t, reviews, 1)
	assert.Equal(t, 4, reviews[0].Rating)
}

func TestReviewFailureReason(t *testing.T) {
	assert.Equal(t, "product_not_found", reviewFailureReason(store.ErrNotFound))
	assert.Equal(t, "duplicate", reviewFailureReason(store.ErrDuplicateReview))
	assert.Equal(t, "unknown", reviewFailureReason(assert.AnError))
}

func TestCatalogServiceWithoutCache(t *testing.T) {
	s := NewCatalogService(store.New(), nil)
	ctx := context.Background()

	p, err := s.GetProduct(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Wireless Headphones", p.Name)

	_, err = s.GetProduct(ctx, 999)
	assert.ErrorIs(t, err, store.ErrNotFound)

	assert.Len(t, s.ListProducts(ctx, ""), 6)
	assert.Len(t, s.Categories(ctx), 4)
}
