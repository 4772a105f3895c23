package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NotificationIntent is a decided alert for one device about one sighting.
// At most one intent is produced per (device, sighting) per process run.
type NotificationIntent struct {
	SightingID uuid.UUID `json:"sighting_id"`
	DeviceID   string    `json:"device_id"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewNotificationIntent(s Sighting) NotificationIntent {
	return NotificationIntent{
		SightingID: s.ID,
		Title:      "Lost pet reported nearby",
		Body:       fmt.Sprintf("%s was seen close to your location. Keep an eye out!", s.Name),
		CreatedAt:  time.Now().UTC(),
	}
}
