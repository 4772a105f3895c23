package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Osvaldowo/EncontradOS/internal/domain"
	"github.com/Osvaldowo/EncontradOS/internal/workingset"
)

const cacheTTL = 30 * time.Second

type sightingService struct {
	repo   SightingRepository
	cache  SightingCache
	set    *workingset.Set
	logger *slog.Logger
}

func NewSightingService(repo SightingRepository, cache SightingCache, set *workingset.Set, logger *slog.Logger) SightingService {
	return &sightingService{
		repo:   repo,
		cache:  cache,
		set:    set,
		logger: logger,
	}
}

// List is cache-aside over the record store. When both the cache and the
// store are down, the in-memory working set is served instead:
// stale-but-available.
func (s *sightingService) List(ctx context.Context) ([]domain.Sighting, error) {
	cached, err := s.cache.Get(ctx)
	if err != nil {
		s.logger.Warn("cache read failed", slog.Any("error", err))
	} else if cached != nil {
		return cached, nil
	}

	sightings, err := s.repo.List(ctx)
	if err != nil {
		if stale := s.set.Snapshot(); len(stale) > 0 {
			s.logger.Warn("serving stale sighting list", slog.Any("error", err))
			return stale, nil
		}
		return nil, err
	}

	if err := s.cache.Set(ctx, sightings, cacheTTL); err != nil {
		s.logger.Warn("cache write failed", slog.Any("error", err))
	}

	return sightings, nil
}

func (s *sightingService) ListByReporter(ctx context.Context, reporterID string) ([]domain.Sighting, error) {
	return s.repo.ListByReporter(ctx, reporterID)
}

func (s *sightingService) Delete(ctx context.Context, id uuid.UUID, reporterID string) error {
	if err := s.repo.Delete(ctx, id, reporterID); err != nil {
		return err
	}

	// Keep this process's working set in step; other processes repair on
	// their next feed reconnect re-fetch.
	s.set.Remove(id)

	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("cache invalidate failed", slog.Any("error", err))
	}

	s.logger.Info("sighting deleted",
		slog.String("sighting_id", id.String()),
		slog.String("reporter_id", reporterID))

	return nil
}
