package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Osvaldowo/EncontradOS/internal/domain"
)

// ReportService handles new sighting submissions.
type ReportService interface {
	Submit(ctx context.Context, req domain.ReportRequest) (*domain.Sighting, error)
}

// SightingService is the read/manage side of the record set.
type SightingService interface {
	List(ctx context.Context) ([]domain.Sighting, error)
	ListByReporter(ctx context.Context, reporterID string) ([]domain.Sighting, error)
	Delete(ctx context.Context, id uuid.UUID, reporterID string) error
}

// AlertService ingests device position updates into the proximity core.
type AlertService interface {
	UpdateLocation(ctx context.Context, req domain.LocationUpdateRequest) (domain.LocationUpdateResponse, error)
}

type StatsService interface {
	GetStats(ctx context.Context, req domain.StatsRequest) (*domain.ReportStats, error)
}

type Service struct {
	ReportService   ReportService
	SightingService SightingService
	AlertService    AlertService
	StatsService    StatsService
}

func NewService(
	reportService ReportService,
	sightingService SightingService,
	alertService AlertService,
	statsService StatsService,
) *Service {
	return &Service{
		ReportService:   reportService,
		SightingService: sightingService,
		AlertService:    alertService,
		StatsService:    statsService,
	}
}
