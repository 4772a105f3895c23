package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/Osvaldowo/EncontradOS/internal/domain"
)

type SightingCacheService interface {
	Get(ctx context.Context) ([]domain.Sighting, error)
	Set(ctx context.Context, sightings []domain.Sighting, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

// SightingCache keeps a JSON snapshot of the current sighting list so the
// read path stays available while Postgres hiccups.
type SightingCache struct {
	client *goredis.Client
	key    string
}

func NewSightingCache(r *Redis) *SightingCache {
	return &SightingCache{
		client: r.Client,
		key:    "sightings:current",
	}
}

func (c *SightingCache) Get(ctx context.Context) ([]domain.Sighting, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var sightings []domain.Sighting
	if err := json.Unmarshal(data, &sightings); err != nil {
		return nil, err
	}

	return sightings, nil
}

func (c *SightingCache) Set(ctx context.Context, sightings []domain.Sighting, ttl time.Duration) error {
	b, err := json.Marshal(sightings)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, b, ttl).Err()
}

func (c *SightingCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, c.key).Err()
}
