package service

import (
	"context"
	"fmt"

	"github.com/Osvaldowo/EncontradOS/internal/domain"
	"github.com/Osvaldowo/EncontradOS/pkg/e"
)

//go:generate mockgen -source=stats.go -destination=mocks/stats_mock.go
type StatsRepository interface {
	CountReporters(ctx context.Context, minutes int) (int64, error)
}

type statsService struct {
	repo StatsRepository
}

func NewStatsService(repo StatsRepository) StatsService {
	return &statsService{repo: repo}
}

func (s *statsService) GetStats(ctx context.Context, req domain.StatsRequest) (*domain.ReportStats, error) {
	const op = "service.Stats.GetStats"

	if req.Minutes <= 0 || req.Minutes > 1440 {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	count, err := s.repo.CountReporters(ctx, req.Minutes)
	if err != nil {
		return nil, err
	}

	return &domain.ReportStats{ReporterCount: count}, nil
}
