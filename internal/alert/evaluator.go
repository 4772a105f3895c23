package alert

import (
	"github.com/Osvaldowo/EncontradOS/internal/domain"
	"github.com/Osvaldowo/EncontradOS/internal/geo"
)

// Evaluate decides which of the given sightings should alert a user at
// pos. A sighting qualifies when it has coordinates, lies within radiusM
// meters (inclusive boundary), and has not been notified yet for this set.
// Qualifying IDs are marked via TestAndMark at decision time, so the two
// event paths can run this concurrently without double-notifying.
//
// Sightings without coordinates are incomplete records, not errors; they
// are skipped.
func Evaluate(pos geo.Coordinate, sightings []domain.Sighting, radiusM float64, notified *NotifiedSet) []domain.NotificationIntent {
	var intents []domain.NotificationIntent
	for _, s := range sightings {
		coord, ok := s.Coord()
		if !ok {
			continue
		}
		if geo.Distance(pos, coord) > radiusM {
			continue
		}
		if !notified.TestAndMark(s.ID) {
			continue
		}
		intents = append(intents, domain.NewNotificationIntent(s))
	}
	return intents
}
