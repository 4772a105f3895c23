package alert

import (
	"sync"

	"github.com/google/uuid"
)

// NotifiedSet tracks which sighting IDs have already produced an alert
// during this process run. It grows for the lifetime of the process: no
// eviction, re-alerting after a restart is expected behavior.
//
// Both the location-update path and the feed-insert path evaluate
// concurrently, so the check and the mark must be a single atomic step.
type NotifiedSet struct {
	mu  sync.Mutex
	ids map[uuid.UUID]struct{}
}

func NewNotifiedSet() *NotifiedSet {
	return &NotifiedSet{ids: make(map[uuid.UUID]struct{})}
}

func (s *NotifiedSet) Has(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.ids[id]
	return ok
}

// TestAndMark marks id as notified and reports whether this call was the
// one that marked it. Exactly one caller gets true per ID.
func (s *NotifiedSet) TestAndMark(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ids[id]; ok {
		return false
	}
	s.ids[id] = struct{}{}
	return true
}

func (s *NotifiedSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids)
}
