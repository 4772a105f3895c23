package redis

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/Osvaldowo/EncontradOS/internal/domain"
)

// SightingFeed is the real-time insert feed, carried as JSON over a Redis
// pub/sub channel. Every process that inserts a sighting publishes it
// here; the feed adapter in each process subscribes.
type SightingFeed struct {
	client  *redis.Client
	channel string
	logger  *slog.Logger
}

func NewSightingFeed(r *Redis, channel string, logger *slog.Logger) *SightingFeed {
	return &SightingFeed{client: r.Client, channel: channel, logger: logger}
}

func (f *SightingFeed) Publish(ctx context.Context, s domain.Sighting) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return f.client.Publish(ctx, f.channel, b).Err()
}

// Subscribe opens the channel and returns decoded sightings. The returned
// channel closes when the subscription ends; stop is safe to call more
// than once.
func (f *SightingFeed) Subscribe(ctx context.Context) (<-chan domain.Sighting, func(), error) {
	sub := f.client.Subscribe(ctx, f.channel)

	// Confirms the subscription before any publish can be missed.
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, nil, err
	}

	out := make(chan domain.Sighting)
	go func() {
		defer close(out)
		for msg := range sub.Channel() {
			var s domain.Sighting
			if err := json.Unmarshal([]byte(msg.Payload), &s); err != nil {
				f.logger.Warn("malformed feed payload dropped", slog.Any("error", err))
				continue
			}
			select {
			case out <- s:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, func() { _ = sub.Close() }, nil
}
