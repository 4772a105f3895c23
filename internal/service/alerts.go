package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Osvaldowo/EncontradOS/internal/alert"
	"github.com/Osvaldowo/EncontradOS/internal/domain"
	"github.com/Osvaldowo/EncontradOS/internal/geo"
	"github.com/Osvaldowo/EncontradOS/internal/workingset"
	"github.com/Osvaldowo/EncontradOS/pkg/e"
)

// Alerts wires the proximity core to its two event sources. Location
// updates evaluate the full working set against the device's fresh
// position; feed inserts evaluate the single new sighting against every
// active session. The per-session notified set makes the two paths safe
// to run concurrently without double-notifying.
type Alerts struct {
	registry   *alert.Registry
	set        *workingset.Set
	dispatcher alert.Dispatcher
	radiusM    float64
	logger     *slog.Logger
}

func NewAlertService(registry *alert.Registry, set *workingset.Set, dispatcher alert.Dispatcher, radiusM float64, logger *slog.Logger) *Alerts {
	return &Alerts{
		registry:   registry,
		set:        set,
		dispatcher: dispatcher,
		radiusM:    radiusM,
		logger:     logger,
	}
}

func (s *Alerts) UpdateLocation(ctx context.Context, req domain.LocationUpdateRequest) (domain.LocationUpdateResponse, error) {
	const op = "service.Alerts.UpdateLocation"

	if req.DeviceID == "" {
		return domain.LocationUpdateResponse{}, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	pos := geo.Coordinate{Lat: req.Lat, Lng: req.Lng}
	if !pos.Valid() {
		return domain.LocationUpdateResponse{}, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	sess := s.registry.Get(req.DeviceID)
	if !sess.Offer(pos) {
		// Below the minimum movement distance; nothing to evaluate.
		return domain.LocationUpdateResponse{Notified: []string{}}, nil
	}

	intents := alert.Evaluate(pos, s.set.Snapshot(), s.radiusM, sess.Notified)
	notified := s.dispatch(ctx, sess.DeviceID, intents)

	return domain.LocationUpdateResponse{Notified: notified}, nil
}

// HandleInsert is the feed adapter's callback: a freshly reported
// sighting is evaluated against every session's last-known position right
// away, without waiting for the next location tick.
//
// Range holds the registry read lock, so only the (cheap) evaluation runs
// inside it; queue I/O happens after the lock is released.
func (s *Alerts) HandleInsert(ctx context.Context, sighting domain.Sighting) {
	if _, ok := sighting.Coord(); !ok {
		return
	}
	single := []domain.Sighting{sighting}

	type hit struct {
		deviceID string
		intents  []domain.NotificationIntent
	}
	var hits []hit

	s.registry.Range(func(sess *alert.Session) {
		pos, ok := sess.Pos.Get()
		if !ok {
			return
		}
		if intents := alert.Evaluate(pos, single, s.radiusM, sess.Notified); len(intents) > 0 {
			hits = append(hits, hit{deviceID: sess.DeviceID, intents: intents})
		}
	})

	for _, h := range hits {
		s.dispatch(ctx, h.deviceID, h.intents)
	}
}

func (s *Alerts) dispatch(ctx context.Context, deviceID string, intents []domain.NotificationIntent) []string {
	notified := make([]string, 0, len(intents))
	for _, intent := range intents {
		intent.DeviceID = deviceID
		notified = append(notified, intent.SightingID.String())

		// Failed delivery never unmarks the notified set: the alert is
		// "shown, not guaranteed seen".
		if err := s.dispatcher.Dispatch(ctx, intent); err != nil {
			s.logger.Error("alert dispatch failed",
				slog.String("sighting_id", intent.SightingID.String()),
				slog.String("device_id", deviceID),
				slog.Any("error", err))
			continue
		}
		s.logger.Info("alert dispatched",
			slog.String("sighting_id", intent.SightingID.String()),
			slog.String("device_id", deviceID))
	}
	return notified
}
