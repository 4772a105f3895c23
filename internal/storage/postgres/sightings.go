package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Osvaldowo/EncontradOS/internal/domain"
	"github.com/Osvaldowo/EncontradOS/pkg/e"
)

type Sightings struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewSightings(pool *pgxpool.Pool, logger *slog.Logger) *Sightings {
	return &Sightings{pool: pool, logger: logger}
}

const sightingColumns = `id, nombre, contacto, descripcion, imagen_url, latitud, longitud, user_id, created_at`

func (r *Sightings) Create(ctx context.Context, s *domain.Sighting) error {
	const op = "postgres.Sightings.Create"

	if s == nil || s.Name == "" {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if (s.Latitude == nil) != (s.Longitude == nil) {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}
	if coord, ok := s.Coord(); ok && !coord.Valid() {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}

	const query = `
INSERT INTO mascotas (` + sightingColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

	_, err := r.pool.Exec(ctx, query,
		s.ID,
		s.Name,
		nullIfEmpty(s.Contact),
		nullIfEmpty(s.Description),
		nullIfEmpty(s.ImageURL),
		s.Latitude,
		s.Longitude,
		nullIfEmpty(s.ReporterID),
		s.CreatedAt,
	)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (r *Sightings) List(ctx context.Context) ([]domain.Sighting, error) {
	const op = "postgres.Sightings.List"

	const query = `
SELECT ` + sightingColumns + `
FROM mascotas
ORDER BY created_at DESC
`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	return scanSightings(ctx, op, rows)
}

func (r *Sightings) ListByReporter(ctx context.Context, reporterID string) ([]domain.Sighting, error) {
	const op = "postgres.Sightings.ListByReporter"

	if reporterID == "" {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	const query = `
SELECT ` + sightingColumns + `
FROM mascotas
WHERE user_id = $1
ORDER BY created_at DESC
`

	rows, err := r.pool.Query(ctx, query, reporterID)
	if err != nil {
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	return scanSightings(ctx, op, rows)
}

func (r *Sightings) Get(ctx context.Context, id uuid.UUID) (*domain.Sighting, error) {
	const op = "postgres.Sightings.Get"

	const query = `
SELECT ` + sightingColumns + `
FROM mascotas
WHERE id = $1
`

	row := r.pool.QueryRow(ctx, query, id)
	s, err := scanSighting(row)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return s, nil
}

func (r *Sightings) Delete(ctx context.Context, id uuid.UUID, reporterID string) error {
	const op = "postgres.Sightings.Delete"

	if reporterID == "" {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	const query = `
DELETE FROM mascotas
WHERE id = $1 AND user_id = $2
`

	tag, err := r.pool.Exec(ctx, query, id, reporterID)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func (r *Sightings) ExistsByNameAndReporter(ctx context.Context, name, reporterID string) (bool, error) {
	const op = "postgres.Sightings.ExistsByNameAndReporter"

	const query = `
SELECT EXISTS (
  SELECT 1 FROM mascotas WHERE nombre = $1 AND user_id = $2
)
`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, name, reporterID).Scan(&exists); err != nil {
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return false, e.WrapError(ctx, op, err)
	}

	return exists, nil
}

func scanSightings(ctx context.Context, op string, rows pgx.Rows) ([]domain.Sighting, error) {
	sightings := make([]domain.Sighting, 0, 16)
	for rows.Next() {
		s, err := scanSighting(rows)
		if err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		sightings = append(sightings, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return sightings, nil
}

func scanSighting(row pgx.Row) (*domain.Sighting, error) {
	var (
		s          domain.Sighting
		contact    *string
		desc       *string
		imageURL   *string
		reporterID *string
	)
	err := row.Scan(
		&s.ID,
		&s.Name,
		&contact,
		&desc,
		&imageURL,
		&s.Latitude,
		&s.Longitude,
		&reporterID,
		&s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.Contact = deref(contact)
	s.Description = deref(desc)
	s.ImageURL = deref(imageURL)
	s.ReporterID = deref(reporterID)
	return &s, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
