package workingset

import (
	"sync"

	"github.com/google/uuid"

	"github.com/Osvaldowo/EncontradOS/internal/domain"
)

// Set is the shared working set of current sightings. The feed adapter
// owns the writes; evaluations take a snapshot so a long loop never holds
// the lock.
type Set struct {
	mu    sync.RWMutex
	items []domain.Sighting
}

func New() *Set {
	return &Set{}
}

// Replace swaps in a freshly fetched list, e.g. after a feed reconnect.
func (s *Set) Replace(items []domain.Sighting) {
	s.mu.Lock()
	s.items = append([]domain.Sighting(nil), items...)
	s.mu.Unlock()
}

func (s *Set) Append(item domain.Sighting) {
	s.mu.Lock()
	s.items = append(s.items, item)
	s.mu.Unlock()
}

func (s *Set) Remove(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, it := range s.items {
		if it.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Snapshot returns a copy of the current items.
func (s *Set) Snapshot() []domain.Sighting {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Sighting(nil), s.items...)
}

func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
