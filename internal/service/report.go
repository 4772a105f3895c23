package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Osvaldowo/EncontradOS/internal/domain"
	"github.com/Osvaldowo/EncontradOS/pkg/e"
	"github.com/Osvaldowo/EncontradOS/pkg/validator"
)

//go:generate mockgen -source=report.go -destination=mocks/mock.go
type SightingRepository interface {
	Create(ctx context.Context, s *domain.Sighting) error
	List(ctx context.Context) ([]domain.Sighting, error)
	ListByReporter(ctx context.Context, reporterID string) ([]domain.Sighting, error)
	Delete(ctx context.Context, id uuid.UUID, reporterID string) error
	ExistsByNameAndReporter(ctx context.Context, name, reporterID string) (bool, error)
}

type PhotoStore interface {
	Save(ctx context.Context, name string, contentType string, data []byte) (string, error)
}

type FeedPublisher interface {
	Publish(ctx context.Context, s domain.Sighting) error
}

type SightingCache interface {
	Get(ctx context.Context) ([]domain.Sighting, error)
	Set(ctx context.Context, sightings []domain.Sighting, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

type reportService struct {
	repo   SightingRepository
	photos PhotoStore
	feed   FeedPublisher
	cache  SightingCache
	logger *slog.Logger
}

func NewReportService(repo SightingRepository, photos PhotoStore, feed FeedPublisher, cache SightingCache, logger *slog.Logger) ReportService {
	return &reportService{
		repo:   repo,
		photos: photos,
		feed:   feed,
		cache:  cache,
		logger: logger,
	}
}

// Submit validates and persists a new sighting, then publishes it on the
// real-time feed so every connected process evaluates it immediately.
//
// A resubmission of the same name by the same device is a distinct,
// named condition (ErrDuplicate), not a generic failure.
func (s *reportService) Submit(ctx context.Context, req domain.ReportRequest) (*domain.Sighting, error) {
	const op = "service.Report.Submit"

	if err := validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%s: %w: %s", op, e.ErrInvalidInput, err.Error())
	}
	if (req.Latitude == nil) != (req.Longitude == nil) {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	if req.DeviceID != "" {
		exists, err := s.repo.ExistsByNameAndReporter(ctx, req.Name, req.DeviceID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, fmt.Errorf("%s: %w", op, e.ErrDuplicate)
		}
	}

	sighting := &domain.Sighting{
		ID:          uuid.New(),
		Name:        req.Name,
		Contact:     req.Contact,
		Description: req.Description,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		ReporterID:  req.DeviceID,
		CreatedAt:   time.Now().UTC(),
	}

	if req.PhotoBase64 != "" {
		data, err := base64.StdEncoding.DecodeString(req.PhotoBase64)
		if err != nil {
			return nil, fmt.Errorf("%s: %w: bad photo encoding", op, e.ErrInvalidInput)
		}
		name := fmt.Sprintf("pet_%s.jpg", uuid.NewString())
		url, err := s.photos.Save(ctx, name, "image/jpeg", data)
		if err != nil {
			return nil, err
		}
		sighting.ImageURL = url
	}

	if err := s.repo.Create(ctx, sighting); err != nil {
		// The partial unique index backs up the explicit pre-check.
		if errors.Is(err, e.ErrUniqueViolation) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrDuplicate)
		}
		return nil, err
	}

	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("cache invalidate failed", slog.Any("error", err))
	}

	// Publish failure is non-fatal: the feed adapters repair their
	// working sets with a full re-fetch on reconnect.
	if err := s.feed.Publish(ctx, *sighting); err != nil {
		s.logger.Error("feed publish failed",
			slog.String("sighting_id", sighting.ID.String()),
			slog.Any("error", err))
	}

	s.logger.Info("sighting reported",
		slog.String("sighting_id", sighting.ID.String()),
		slog.String("nombre", sighting.Name),
		slog.Bool("has_coords", sighting.Latitude != nil))

	return sighting, nil
}
