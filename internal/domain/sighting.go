package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/Osvaldowo/EncontradOS/internal/geo"
)

// Sighting is a community-submitted report of a lost pet seen at a
// location. JSON field names follow the persisted record contract
// (Spanish column names inherited from the original schema). Coordinates
// are optional at the schema level: a sighting without them stays on the
// record but is excluded from the map and from proximity evaluation.
type Sighting struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"nombre"`
	Contact     string    `json:"contacto,omitempty"`
	Description string    `json:"descripcion,omitempty"`
	ImageURL    string    `json:"imagen_url,omitempty"`
	Latitude    *float64  `json:"latitud,omitempty"`
	Longitude   *float64  `json:"longitud,omitempty"`
	ReporterID  string    `json:"user_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Coord returns the sighting position, or false when the record lacks
// coordinates.
func (s Sighting) Coord() (geo.Coordinate, bool) {
	if s.Latitude == nil || s.Longitude == nil {
		return geo.Coordinate{}, false
	}
	return geo.Coordinate{Lat: *s.Latitude, Lng: *s.Longitude}, true
}
