package service

import (
	"context"

	"shop-service/internal/models"
	"shop-service/internal/store"
	"shop-service/internal/util"
)

// StatsService exposes aggregate store totals for the admin surface
type StatsService struct {
	store *store.Store
}

// NewStatsService creates a new stats service
func NewStatsService(st *store.Store) *StatsService {
	return &StatsService{store: st}
}

// Admin computes current totals from store state on demand.
func (s *StatsService) Admin(ctx context.Context) models.AdminStats {
	_, span := util.StartSpan(ctx, "StatsService.Admin")
	defer span.End()

	return s.store.Stats()
}
