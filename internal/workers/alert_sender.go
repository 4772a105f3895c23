package workers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/Osvaldowo/EncontradOS/internal/config"
	"github.com/Osvaldowo/EncontradOS/internal/domain"
	"github.com/Osvaldowo/EncontradOS/pkg/e"
)

// IntentQueue is the consumer side of the alert queue.
type IntentQueue interface {
	Next(ctx context.Context, timeout time.Duration) (domain.NotificationIntent, error)
}

// AlertSender drains the alert queue and posts each intent to the push
// gateway, which turns it into a device-local notification. Delivery is
// best-effort: after the retries run out the intent is dropped and only
// logged, never re-queued.
type AlertSender struct {
	logger   *slog.Logger
	cfg      config.NotifyConfig
	queue    IntentQueue
	http     *http.Client
	poolSize int
}

func NewAlertSender(logger *slog.Logger, cfg config.NotifyConfig, queue IntentQueue) *AlertSender {
	poolSize := cfg.PoolSize
	if poolSize <= 0 {
		poolSize = 1
	}
	return &AlertSender{
		logger:   logger,
		cfg:      cfg,
		queue:    queue,
		http:     &http.Client{Timeout: 5 * time.Second},
		poolSize: poolSize,
	}
}

func (s *AlertSender) Run(ctx context.Context) {
	if s.cfg.Disabled {
		s.logger.Warn("alert sender disabled, intents will queue up unread")
		<-ctx.Done()
		return
	}

	s.logger.Info("alert sender started",
		slog.String("gateway_url", s.cfg.GatewayURL),
		slog.Int("pool_size", s.poolSize))

	var wg sync.WaitGroup
	for i := 0; i < s.poolSize; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.worker(ctx)
		}()
	}
	wg.Wait()

	s.logger.Info("alert sender stopped")
}

func (s *AlertSender) worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		intent, err := s.queue.Next(ctx, 5*time.Second)
		if err != nil {
			if errors.Is(err, e.ErrQueueEmpty) || ctx.Err() != nil {
				continue
			}
			s.logger.Error("alert queue read failed", slog.Any("error", err))
			time.Sleep(500 * time.Millisecond)
			continue
		}

		s.sendWithRetry(ctx, intent)
	}
}

func (s *AlertSender) sendWithRetry(ctx context.Context, intent domain.NotificationIntent) {
	const maxRetries = 3

	body, err := json.Marshal(intent)
	if err != nil {
		s.logger.Error("marshal intent failed", slog.String("error", err.Error()))
		return
	}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		if ctx.Err() != nil {
			return
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.GatewayURL, bytes.NewReader(body))
		if err != nil {
			s.logger.Error("create gateway request failed", slog.String("error", err.Error()))
			return
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.http.Do(req)
		if err == nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
			_ = resp.Body.Close()
			return
		}
		if resp != nil {
			_ = resp.Body.Close()
		}

		reason := "unknown"
		if err != nil {
			reason = err.Error()
		} else if resp != nil {
			reason = resp.Status
		}

		s.logger.Warn("alert delivery failed",
			slog.Int("attempt", attempt),
			slog.String("sighting_id", intent.SightingID.String()),
			slog.String("device_id", intent.DeviceID),
			slog.String("reason", reason),
		)

		time.Sleep(time.Duration(attempt) * time.Second)
	}

	s.logger.Error("alert dropped after retries",
		slog.String("sighting_id", intent.SightingID.String()),
		slog.String("device_id", intent.DeviceID))
}
