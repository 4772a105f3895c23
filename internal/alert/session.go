package alert

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Osvaldowo/EncontradOS/internal/geo"
	"github.com/Osvaldowo/EncontradOS/internal/location"
)

// Session is the per-device alert state: the freshest known position and
// the set of sightings already notified during this process run. The
// position cell is written only by the location path and read fresh on
// every evaluation.
type Session struct {
	DeviceID string
	Pos      *location.Cell
	Notified *NotifiedSet

	watcher *location.Watcher

	mu       sync.Mutex
	lastSeen time.Time
}

func NewSession(deviceID string, minDistanceM float64) *Session {
	s := &Session{
		DeviceID: deviceID,
		Pos:      location.NewCell(),
		Notified: NewNotifiedSet(),
		lastSeen: time.Now(),
	}
	s.watcher = location.NewWatcher(location.Options{MinDistanceM: minDistanceM}, s.Pos.Set)
	return s
}

// Offer feeds a raw position update through the session's min-distance
// watcher. It reports whether the update was accepted (and the position
// cell refreshed).
func (s *Session) Offer(p geo.Coordinate) bool {
	s.mu.Lock()
	s.lastSeen = time.Now()
	s.mu.Unlock()
	return s.watcher.Offer(p)
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}

// Registry holds the active sessions keyed by device ID. Sessions are
// created on first use and dropped after sitting idle past the TTL.
type Registry struct {
	mu           sync.RWMutex
	sessions     map[string]*Session
	minDistanceM float64
	ttl          time.Duration
}

func NewRegistry(minDistanceM float64, ttl time.Duration) *Registry {
	return &Registry{
		sessions:     make(map[string]*Session),
		minDistanceM: minDistanceM,
		ttl:          ttl,
	}
}

func (r *Registry) Get(deviceID string) *Session {
	r.mu.RLock()
	s, ok := r.sessions[deviceID]
	r.mu.RUnlock()
	if ok {
		return s
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[deviceID]; ok {
		return s
	}
	s = NewSession(deviceID, r.minDistanceM)
	r.sessions[deviceID] = s
	return s
}

// Range calls fn for every active session. fn must not block for long: it
// runs under the registry read lock.
func (r *Registry) Range(fn func(*Session)) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.sessions {
		fn(s)
	}
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Cleanup evicts idle sessions once a minute until ctx is done. An evicted
// device that comes back starts with an empty notified set, the same as a
// process restart.
func (r *Registry) Cleanup(ctx context.Context, logger *slog.Logger) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			r.mu.Lock()
			for id, s := range r.sessions {
				if s.idleSince(now) > r.ttl {
					delete(r.sessions, id)
					logger.Debug("alert session evicted", slog.String("device_id", id))
				}
			}
			r.mu.Unlock()
		}
	}
}
