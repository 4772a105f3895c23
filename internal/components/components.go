package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/Osvaldowo/EncontradOS/internal/alert"
	"github.com/Osvaldowo/EncontradOS/internal/api"
	"github.com/Osvaldowo/EncontradOS/internal/config"
	"github.com/Osvaldowo/EncontradOS/internal/feed"
	"github.com/Osvaldowo/EncontradOS/internal/redis"
	"github.com/Osvaldowo/EncontradOS/internal/service"
	"github.com/Osvaldowo/EncontradOS/internal/storage/postgres"
	"github.com/Osvaldowo/EncontradOS/internal/workers"
	"github.com/Osvaldowo/EncontradOS/internal/workingset"
	"github.com/Osvaldowo/EncontradOS/pkg/logger"
)

// Components holds every long-lived piece of the service, constructed
// once at startup and passed around explicitly.
type Components struct {
	logger      *slog.Logger
	HttpServer  *api.Server
	Postgres    *postgres.Postgres
	Redis       *redis.Redis
	Registry    *alert.Registry
	FeedAdapter *feed.Adapter
	AlertSender *workers.AlertSender
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Postgres")
	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		storage.Pool.Close()
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	alertQueue := redis.NewAlertQueue(redisClient.Client, "alerts:queue")
	sightingFeed := redis.NewSightingFeed(redisClient, cfg.Feed.Channel, logger)
	cache := redis.NewSightingCache(redisClient)

	set := workingset.New()
	registry := alert.NewRegistry(cfg.Alert.MinDistanceM, cfg.Alert.SessionTTL)

	alertSvc := service.NewAlertService(registry, set, alertQueue, cfg.Alert.RadiusM, logger)
	reportSvc := service.NewReportService(storage.Sightings(), storage.Photos(), sightingFeed, cache, logger)
	sightingSvc := service.NewSightingService(storage.Sightings(), cache, set, logger)
	statsSvc := service.NewStatsService(storage.Stats())

	svc := service.NewService(reportSvc, sightingSvc, alertSvc, statsSvc)

	feedAdapter := feed.NewAdapter(
		storage.Sightings(),
		sightingFeed,
		set,
		alertSvc.HandleInsert,
		feed.Config{
			FetchTimeout: cfg.Feed.FetchTimeout,
			BackoffBase:  cfg.Feed.BackoffBase,
			BackoffMax:   cfg.Feed.BackoffMax,
		},
		logger,
	)

	alertSender := workers.NewAlertSender(logger, cfg.Notify, alertQueue)

	httpServer := api.NewServer(cfg, logger, svc, storage.Photos())
	logger.Info("Initialized server")

	return &Components{
		logger:      logger,
		HttpServer:  httpServer,
		Postgres:    storage,
		Redis:       redisClient,
		Registry:    registry,
		FeedAdapter: feedAdapter,
		AlertSender: alertSender,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Shutting down components")

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}
