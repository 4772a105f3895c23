package location

import (
	"context"
	"sync"

	"github.com/Osvaldowo/EncontradOS/internal/geo"
)

type Accuracy int

const (
	AccuracyCoarse Accuracy = iota
	AccuracyBalanced
	AccuracyFine
)

type Options struct {
	Accuracy Accuracy
	// MinDistanceM drops updates that moved less than this many meters
	// from the last delivered position. Zero delivers every update.
	MinDistanceM float64
}

// Source is the external location provider: one-shot current position plus
// a continuous watch. Watch must return e.ErrPermissionDenied (wrapped or
// not) when the user denied location access; that condition is terminal
// and is never retried.
type Source interface {
	Current(ctx context.Context) (geo.Coordinate, error)
	Watch(ctx context.Context, opts Options, fn func(geo.Coordinate)) (stop func(), err error)
}

// Watcher filters a raw position stream by minimum movement distance and
// hands accepted updates to a single callback.
//
// Offer runs the callback under the watcher lock, which is what guarantees
// that no callback is in flight once Unsubscribe has returned.
type Watcher struct {
	mu     sync.Mutex
	opts   Options
	fn     func(geo.Coordinate)
	last   *geo.Coordinate
	closed bool
}

func NewWatcher(opts Options, fn func(geo.Coordinate)) *Watcher {
	return &Watcher{opts: opts, fn: fn}
}

// Offer delivers p to the callback unless the watcher is unsubscribed or p
// is within MinDistanceM of the last delivered position. It reports
// whether the callback ran.
func (w *Watcher) Offer(p geo.Coordinate) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return false
	}
	if w.last != nil && geo.Distance(*w.last, p) < w.opts.MinDistanceM {
		return false
	}

	w.last = &p
	w.fn(p)
	return true
}

// Unsubscribe stops delivery. Safe to call more than once.
func (w *Watcher) Unsubscribe() {
	w.mu.Lock()
	w.closed = true
	w.mu.Unlock()
}

// Subscribe attaches fn to src through a min-distance Watcher and returns
// an idempotent stop handle. A permission denial from src is returned to
// the caller as-is; callers degrade to "no live evaluation" instead of
// retrying.
func Subscribe(ctx context.Context, src Source, opts Options, fn func(geo.Coordinate)) (func(), error) {
	w := NewWatcher(opts, fn)

	stop, err := src.Watch(ctx, opts, func(p geo.Coordinate) {
		w.Offer(p)
	})
	if err != nil {
		return nil, err
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			stop()
			w.Unsubscribe()
		})
	}, nil
}
