package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Osvaldowo/EncontradOS/pkg/e"
)

type Stats struct {
	pool *pgxpool.Pool
}

func NewStats(pool *pgxpool.Pool) *Stats {
	return &Stats{pool: pool}
}

// CountReporters returns the number of distinct devices that submitted a
// report within the last N minutes.
func (r *Stats) CountReporters(ctx context.Context, minutes int) (int64, error) {
	const op = "postgres.Stats.CountReporters"

	if minutes <= 0 {
		return 0, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	const query = `
SELECT COUNT(DISTINCT user_id)
FROM mascotas
WHERE user_id IS NOT NULL
  AND created_at > now() - ($1 * interval '1 minute')
`

	var count int64
	if err := r.pool.QueryRow(ctx, query, minutes).Scan(&count); err != nil {
		return 0, e.WrapError(ctx, op, err)
	}

	return count, nil
}
