package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/Osvaldowo/EncontradOS/internal/domain"
)

type SightingRepository interface {
	Create(ctx context.Context, s *domain.Sighting) error
	List(ctx context.Context) ([]domain.Sighting, error)
	ListByReporter(ctx context.Context, reporterID string) ([]domain.Sighting, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Sighting, error)
	// Delete removes the sighting only when reporterID matches the
	// record's user_id (weak advisory ownership, not a credential).
	Delete(ctx context.Context, id uuid.UUID, reporterID string) error
	ExistsByNameAndReporter(ctx context.Context, name, reporterID string) (bool, error)
}

type PhotoRepository interface {
	// Save stores the photo bytes and returns the public URL the record
	// should carry in imagen_url.
	Save(ctx context.Context, name string, contentType string, data []byte) (string, error)
	Get(ctx context.Context, name string) ([]byte, string, error)
}

type StatsRepository interface {
	CountReporters(ctx context.Context, minutes int) (int64, error)
}

func (p *Postgres) Sightings() SightingRepository { return p.Sighting }
func (p *Postgres) Photos() PhotoRepository       { return p.Photo }
func (p *Postgres) Stats() StatsRepository        { return p.Stat }
