package admin

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Osvaldowo/EncontradOS/internal/domain"
	"github.com/Osvaldowo/EncontradOS/pkg/e"
)

type StatsHandler interface {
	GetStats(ctx context.Context, req domain.StatsRequest) (*domain.ReportStats, error)
}

type Handler struct {
	logger *slog.Logger
	stats  StatsHandler
}

func NewHandler(logger *slog.Logger, stats StatsHandler) *Handler {
	return &Handler{
		logger: logger,
		stats:  stats,
	}
}

func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	req := domain.StatsRequest{Minutes: parseInt(r.URL.Query().Get("minutes"), 60)}

	stats, err := h.stats.GetStats(r.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, e.ErrInvalidInput) {
			status = http.StatusBadRequest
		}
		h.writeJSON(w, status, map[string]string{"error": err.Error()})
		return
	}

	h.writeJSON(w, http.StatusOK, stats)
}

func parseInt(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("json encode failed", slog.Any("error", err))
	}
}
