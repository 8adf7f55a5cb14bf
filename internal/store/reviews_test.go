package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReviewRollup(t *testing.T) {
	s := New()

	_, err := s.CreateReview(1, 10, "Alice", 4, "Good")
	require.NoError(t, err)

	p, _ := s.GetProduct(1)
	assert.Equal(t, 4.0, p.Rating)
	assert.Equal(t, 1, p.ReviewsCount)

	_, err = s.CreateReview(1, 11, "Bob", 5, "Great")
	require.NoError(t, err)

	p, _ = s.GetProduct(1)
	assert.Equal(t, 4.5, p.Rating)
	assert.Equal(t, 2, p.ReviewsCount)
}

func TestReviewRollupRounding(t *testing.T) {
	s := New()

	// mean of 4, 4, 5 is 4.333..., rounded to one decimal
	_, err := s.CreateReview(2, 1, "A", 4, "")
	require.NoError(t, err)
	_, err = s.CreateReview(2, 2, "B", 4, "")
	require.NoError(t, err)
	_, err = s.CreateReview(2, 3, "C", 5, "")
	require.NoError(t, err)

	p, _ := s.GetProduct(2)
	assert.Equal(t, 4.3, p.Rating)
	assert.Equal(t, 3, p.ReviewsCount)
}

func TestCreateReviewUnknownProduct(t *testing.T) {
	s := New()

	_, err := s.CreateReview(999, 1, "Alice", 5, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDuplicateReviewRejected(t *testing.T) {
	s := New()

	_, err := s.CreateReview(1, 10, "Alice", 4, "Good")
	require.NoError(t, err)

	_, err = s.CreateReview(1, 10, "Alice", 1, "Changed my mind")
	assert.ErrorIs(t, err, ErrDuplicateReview)

	// rollup untouched by the rejected review
	p, _ := s.GetProduct(1)
	assert.Equal(t, 4.0, p.Rating)
	assert.Equal(t, 1, p.ReviewsCount)

	// same user may still review a different product
	_, err = s.CreateReview(2, 10, "Alice", 5, "")
	assert.NoError(t, err)
}

func TestListReviewsByProductNewestFirst(t *testing.T) {
	s := New()

	for userID := int64(1); userID <= 3; userID++ {
		_, err := s.CreateReview(1, userID, "User", 4, "")
		require.NoError(t, err)
	}
	_, err := s.CreateReview(2, 1, "User", 5, "")
	require.NoError(t, err)

	reviews := s.ListReviewsByProduct(1)
	require.Len(t, reviews, 3)
	assert.Equal(t, int64(3), reviews[0].ID)
	assert.Equal(t, int64(2), reviews[1].ID)
	assert.Equal(t, int64(1), reviews[2].ID)

	assert.Empty(t, s.ListReviewsByProduct(3))
}
