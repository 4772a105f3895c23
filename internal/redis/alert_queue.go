package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Osvaldowo/EncontradOS/internal/domain"
	"github.com/Osvaldowo/EncontradOS/pkg/e"
)

// AlertQueue buffers notification intents between the evaluator and the
// sender workers. Dispatch is the producer side (alert.Dispatcher), Next
// the consumer side.
type AlertQueue struct {
	client *redis.Client
	key    string
}

func NewAlertQueue(client *redis.Client, key string) *AlertQueue {
	return &AlertQueue{client: client, key: key}
}

func (q *AlertQueue) Dispatch(ctx context.Context, intent domain.NotificationIntent) error {
	b, err := json.Marshal(intent)
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, q.key, b).Err()
}

func (q *AlertQueue) Next(ctx context.Context, timeout time.Duration) (domain.NotificationIntent, error) {
	var intent domain.NotificationIntent

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return intent, e.ErrQueueEmpty
		}
		return intent, err
	}
	if len(res) < 2 {
		return intent, redis.Nil
	}
	if err := json.Unmarshal([]byte(res[1]), &intent); err != nil {
		return intent, err
	}
	return intent, nil
}
