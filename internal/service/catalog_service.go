package service

import (
	"context"

	"shop-service/internal/models"
	"shop-service/internal/redisclient"
	"shop-service/internal/store"
	"shop-service/internal/util"

	"go.uber.org/zap"
)

// CatalogService handles product catalog reads
type CatalogService struct {
	store  *store.Store
	cache  *redisclient.Client
	logger *zap.Logger
}

// NewCatalogService creates a new catalog service. cache may be nil.
func NewCatalogService(st *store.Store, cache *redisclient.Client) *CatalogService {
	return &CatalogService{
		store:  st,
		cache:  cache,
		logger: util.GetLogger(),
	}
}

// GetProduct retrieves a product by ID, through the read cache when one is
// configured.
func (s *CatalogService) GetProduct(ctx context.Context, id int64) (models.Product, error) {
	ctx, span := util.StartSpan(ctx, "CatalogService.GetProduct")
	defer span.End()

	if s.cache != nil {
		if p, ok := s.cache.GetProduct(ctx, id); ok {
			util.ProductCacheHits.Inc()
			return p, nil
		}
		util.ProductCacheMisses.Inc()
	}

	p, err := s.store.GetProduct(id)
	if err != nil {
		return models.Product{}, err
	}

	if s.cache != nil {
		if err := s.cache.SetProduct(ctx, p); err != nil {
			s.logger.Warn("Failed to cache product",
				zap.Int64("product_id", id), zap.Error(err))
		}
	}

	return p, nil
}

// ListProducts returns products in insertion order, optionally filtered by
// exact category match.
func (s *CatalogService) ListProducts(ctx context.Context, category string) []models.Product {
	_, span := util.StartSpan(ctx, "CatalogService.ListProducts")
	defer span.End()

	return s.store.ListProducts(category)
}

// SearchProducts matches the query against product names and descriptions.
func (s *CatalogService) SearchProducts(ctx context.Context, query string) []models.Product {
	_, span := util.StartSpan(ctx, "CatalogService.SearchProducts")
	defer span.End()

	return s.store.SearchProducts(query)
}

// Categories returns distinct category labels.
func (s *CatalogService) Categories(ctx context.Context) []string {
	_, span := util.StartSpan(ctx, "CatalogService.Categories")
	defer span.End()

	return s.store.Categories()
}
