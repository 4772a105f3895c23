package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Osvaldowo/EncontradOS/pkg/e"
)

// Photos stores attached pet photos as binary objects. The public URL it
// hands back is served by the API under /photos/{name}.
type Photos struct {
	pool    *pgxpool.Pool
	baseURL string
	logger  *slog.Logger
}

func NewPhotos(pool *pgxpool.Pool, baseURL string, logger *slog.Logger) *Photos {
	return &Photos{pool: pool, baseURL: baseURL, logger: logger}
}

func (r *Photos) Save(ctx context.Context, name string, contentType string, data []byte) (string, error) {
	const op = "postgres.Photos.Save"

	if name == "" || len(data) == 0 {
		return "", fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if contentType == "" {
		contentType = "image/jpeg"
	}

	const query = `
INSERT INTO fotos (name, content_type, data, created_at)
VALUES ($1, $2, $3, $4)
`

	_, err := r.pool.Exec(ctx, query, name, contentType, data, time.Now().UTC())
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return "", e.WrapError(ctx, op, err)
	}

	return r.baseURL + "/photos/" + name, nil
}

func (r *Photos) Get(ctx context.Context, name string) ([]byte, string, error) {
	const op = "postgres.Photos.Get"

	const query = `
SELECT data, content_type
FROM fotos
WHERE name = $1
`

	var (
		data        []byte
		contentType string
	)
	if err := r.pool.QueryRow(ctx, query, name).Scan(&data, &contentType); err != nil {
		return nil, "", e.WrapError(ctx, op, err)
	}

	return data, contentType, nil
}
