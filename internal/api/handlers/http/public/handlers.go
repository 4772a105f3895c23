package public

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Osvaldowo/EncontradOS/internal/domain"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type ReportHandler interface {
	Submit(ctx context.Context, req domain.ReportRequest) (*domain.Sighting, error)
}

type SightingHandler interface {
	List(ctx context.Context) ([]domain.Sighting, error)
	ListByReporter(ctx context.Context, reporterID string) ([]domain.Sighting, error)
	Delete(ctx context.Context, id uuid.UUID, reporterID string) error
}

type AlertHandler interface {
	UpdateLocation(ctx context.Context, req domain.LocationUpdateRequest) (domain.LocationUpdateResponse, error)
}

type PhotoReader interface {
	Get(ctx context.Context, name string) ([]byte, string, error)
}

type Handler struct {
	logger    *slog.Logger
	reports   ReportHandler
	sightings SightingHandler
	alerts    AlertHandler
	photos    PhotoReader
}

func NewHandler(logger *slog.Logger, reports ReportHandler, sightings SightingHandler, alerts AlertHandler, photos PhotoReader) *Handler {
	return &Handler{
		logger:    logger,
		reports:   reports,
		sightings: sightings,
		alerts:    alerts,
		photos:    photos,
	}
}

// deviceID is the best-effort installation identity: header first, then
// the request body field. Advisory only, not a credential.
func deviceID(r *http.Request, fromBody string) string {
	if id := r.Header.Get("X-Device-ID"); id != "" {
		return id
	}
	return fromBody
}

func (h *Handler) ReportSighting(w http.ResponseWriter, r *http.Request) {
	var req domain.ReportRequest

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	req.DeviceID = deviceID(r, req.DeviceID)

	sighting, err := h.reports.Submit(r.Context(), req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, sighting)
}

func (h *Handler) ListSightings(w http.ResponseWriter, r *http.Request) {
	sightings, err := h.sightings.List(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, sightings)
}

func (h *Handler) MySightings(w http.ResponseWriter, r *http.Request) {
	id := deviceID(r, "")
	if id == "" {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "X-Device-ID required"})
		return
	}

	sightings, err := h.sightings.ListByReporter(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, sightings)
}

func (h *Handler) DeleteSighting(w http.ResponseWriter, r *http.Request) {
	reporterID := deviceID(r, "")
	if reporterID == "" {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "X-Device-ID required"})
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid sighting id"})
		return
	}

	if err := h.sightings.Delete(r.Context(), id, reporterID); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	var req domain.LocationUpdateRequest

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	req.DeviceID = deviceID(r, req.DeviceID)

	resp, err := h.alerts.UpdateLocation(r.Context(), req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) Photo(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	data, contentType, err := h.photos.Get(r.Context(), name)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=86400")
	if _, err := w.Write(data); err != nil {
		h.log(r).Error("photo write failed", slog.Any("error", err))
	}
}
