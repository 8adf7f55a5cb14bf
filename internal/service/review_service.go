package service

import (
	"context"
	"errors"
	"time"

	"shop-service/internal/broker"
	"shop-service/internal/models"
	"shop-service/internal/redisclient"
	"shop-service/internal/store"
	"shop-service/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReviewService handles review creation and listing
type ReviewService struct {
	store          *store.Store
	cache          *redisclient.Client
	eventPublisher *broker.EventPublisher
	logger         *zap.Logger
}

// NewReviewService creates a new review service. cache and eventPublisher
// may be nil.
func NewReviewService(st *store.Store, cache *redisclient.Client, eventPublisher *broker.EventPublisher) *ReviewService {
	return &ReviewService{
		store:          st,
		cache:          cache,
		eventPublisher: eventPublisher,
		logger:         util.GetLogger(),
	}
}

// CreateReviewRequest represents a request to review a product
type CreateReviewRequest struct {
	ProductID int64  `json:"product_id" binding:"required"`
	UserID    int64  `json:"user_id" binding:"required"`
	UserName  string `json:"user_name" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}

// CreateReview adds a review and rolls the product rating up.
func (s *ReviewService) CreateReview(ctx context.Context, req *CreateReviewRequest) (models.Review, error) {
	ctx, span := util.StartSpan(ctx, "ReviewService.CreateReview")
	defer span.End()

	review, err := s.store.CreateReview(req.ProductID, req.UserID, req.UserName, req.Rating, req.Comment)
	if err != nil {
		util.ReviewsRejectedTotal.WithLabelValues(reviewFailureReason(err)).Inc()
		return models.Review{}, err
	}

	util.ReviewsCreatedTotal.Inc()
	s.logger.Info("Review created",
		zap.Int64("review_id", review.ID),
		zap.Int64("product_id", review.ProductID),
		zap.Int("rating", review.Rating))

	if s.cache != nil {
		if err := s.cache.InvalidateProduct(ctx, review.ProductID); err != nil {
			s.logger.Warn("Failed to invalidate product cache",
				zap.Int64("product_id", review.ProductID), zap.Error(err))
		}
	}

	s.publishReviewAdded(ctx, review)

	return review, nil
}

func reviewFailureReason(err error) string {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return "product_not_found"
	case errors.Is(err, store.ErrDuplicateReview):
		return "duplicate"
	default:
		return "unknown"
	}
}

func (s *ReviewService) publishReviewAdded(ctx context.Context, review models.Review) {
	if s.eventPublisher == nil {
		return
	}

	product, err := s.store.GetProduct(review.ProductID)
	if err != nil {
		return
	}

	event := &models.ReviewAddedEvent{
		BaseEvent: models.BaseEvent{
			EventID:   uuid.New().String(),
			EventType: models.EventTypeReviewAdded,
			Timestamp: time.Now(),
		},
		ReviewID:      review.ID,
		ProductID:     review.ProductID,
		Rating:        review.Rating,
		ProductRating: product.Rating,
		ReviewsCount:  product.ReviewsCount,
	}
	if err := s.eventPublisher.PublishReviewAdded(ctx, event); err != nil {
		s.logger.Error("Failed to publish ReviewAdded event",
			zap.Int64("review_id", review.ID), zap.Error(err))
	}
}

// ListReviewsByProduct returns a product's reviews, newest first
func (s *ReviewService) ListReviewsByProduct(ctx context.Context, productID int64) []models.Review {
	_, span := util.StartSpan(ctx, "ReviewService.ListReviewsByProduct")
	defer span.End()

	return s.store.ListReviewsByProduct(productID)
}
