package store

import (
	"fmt"
	"time"

	"shop-service/internal/models"
)

// CreateReview appends a review and recomputes the owning product's rating
// and review count from the full review set. Append and rollup happen under
// one write lock, so readers never see a review without its rollup.
func (s *Store) CreateReview(productID, userID int64, userName string, rating int, comment string) (models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.productIdx[productID]
	if !ok {
		return models.Review{}, fmt.Errorf("product %d: %w", productID, ErrNotFound)
	}

	key := reviewKey{productID: productID, userID: userID}
	if _, ok := s.reviewKeys[key]; ok {
		return models.Review{}, fmt.Errorf("product %d, user %d: %w", productID, userID, ErrDuplicateReview)
	}

	review := models.Review{
		ID:        s.nextReviewID,
		ProductID: productID,
		UserID:    userID,
		UserName:  userName,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: time.Now(),
	}

	s.reviews = append(s.reviews, review)
	s.reviewKeys[key] = struct{}{}
	s.nextReviewID++

	rating1, count := s.rollupLocked(productID)
	s.products[idx].Rating = rating1
	s.products[idx].ReviewsCount = count

	return review, nil
}

// rollupLocked recomputes a product's rating from scratch: the arithmetic
// mean of all its review ratings, rounded to 1 decimal, 0.0 when there are
// none.
func (s *Store) rollupLocked(productID int64) (float64, int) {
	var sum, count int
	for i := range s.reviews {
		if s.reviews[i].ProductID == productID {
			sum += s.reviews[i].Rating
			count++
		}
	}
	if count == 0 {
		return 0.0, 0
	}
	return round1(float64(sum) / float64(count)), count
}

// ListReviewsByProduct returns a product's reviews, newest first.
func (s *Store) ListReviewsByProduct(productID int64) []models.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Review
	for i := len(s.reviews) - 1; i >= 0; i-- {
		if s.reviews[i].ProductID == productID {
			out = append(out, s.reviews[i])
		}
	}
	return out
}
