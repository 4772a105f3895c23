package location

import (
	"sync"

	"github.com/Osvaldowo/EncontradOS/internal/geo"
)

// Cell holds the latest known position. Long-lived callbacks read it fresh
// on every invocation instead of capturing a snapshot at subscription time.
type Cell struct {
	mu  sync.RWMutex
	pos geo.Coordinate
	set bool
}

func NewCell() *Cell {
	return &Cell{}
}

func (c *Cell) Set(p geo.Coordinate) {
	c.mu.Lock()
	c.pos = p
	c.set = true
	c.mu.Unlock()
}

// Get returns the current position, or false when no update has arrived
// yet.
func (c *Cell) Get() (geo.Coordinate, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.pos, c.set
}
