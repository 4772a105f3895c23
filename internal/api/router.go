package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/Osvaldowo/EncontradOS/internal/api/handlers/http/admin"
	"github.com/Osvaldowo/EncontradOS/internal/api/handlers/http/public"
	"github.com/Osvaldowo/EncontradOS/internal/api/handlers/http/system"
	"github.com/Osvaldowo/EncontradOS/internal/config"
	"github.com/Osvaldowo/EncontradOS/internal/middleware"
	"github.com/Osvaldowo/EncontradOS/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service, photos public.PhotoReader) *Server {
	publicHandler := public.NewHandler(logger, svc.ReportService, svc.SightingService, svc.AlertService, photos)
	adminHandler := admin.NewHandler(logger, svc.StatsService)
	systemHandler := system.NewHandler(logger)

	r := InitRouter(cfg, publicHandler, adminHandler, systemHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(cfg *config.Config, publicHandler *public.Handler, adminHandler *admin.Handler, systemHandler *system.Handler, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Route("/api/v1", func(api chi.Router) {
		api.Route("/sightings", func(sr chi.Router) {
			sr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))

			sr.Post("/", publicHandler.ReportSighting)
			sr.Get("/", publicHandler.ListSightings)
			sr.Get("/mine", publicHandler.MySightings)
			sr.Delete("/{id}", publicHandler.DeleteSighting)
		})

		// Position updates arrive on every movement tick, so the limit
		// is looser than the report routes.
		api.Route("/location", func(lr chi.Router) {
			lr.Use(middleware.Limit(30, 60, 5*time.Minute, logger))
			lr.Post("/update", publicHandler.UpdateLocation)
		})

		api.Route("/admin", func(ar chi.Router) {
			ar.Use(middleware.APIKeyMiddleware(cfg.APIKey))
			ar.Use(middleware.Limit(2, 5, 10*time.Minute, logger))

			ar.Get("/stats", adminHandler.AdminStats)
		})

		api.Get("/health", systemHandler.SystemHealth)
	})

	r.Get("/photos/{name}", publicHandler.Photo)

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("Starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
