package feed

import (
	"context"
	"log/slog"
	"time"

	"github.com/Osvaldowo/EncontradOS/internal/domain"
	"github.com/Osvaldowo/EncontradOS/internal/workingset"
)

//go:generate mockgen -source=feed.go -destination=mocks/mock.go

// Store is the bulk-read side of the sighting record set.
type Store interface {
	List(ctx context.Context) ([]domain.Sighting, error)
}

// Stream is the real-time insert feed. The returned channel closes when
// the underlying subscription ends; stop is idempotent.
type Stream interface {
	Subscribe(ctx context.Context) (<-chan domain.Sighting, func(), error)
}

type Config struct {
	// FetchTimeout bounds the bulk fetch run after each successful
	// subscribe. Expiry is reported and non-fatal.
	FetchTimeout time.Duration
	BackoffBase  time.Duration
	BackoffMax   time.Duration
}

// Adapter keeps the working set in sync with the record store: a bulk
// load on every connect, then live inserts merged as they arrive. Every
// merged insert
// is handed to onInsert so a freshly reported sighting near an
// already-present user alerts immediately, without waiting for that user's
// next location tick.
type Adapter struct {
	store    Store
	stream   Stream
	set      *workingset.Set
	onInsert func(context.Context, domain.Sighting)
	cfg      Config
	logger   *slog.Logger
}

func NewAdapter(store Store, stream Stream, set *workingset.Set, onInsert func(context.Context, domain.Sighting), cfg Config, logger *slog.Logger) *Adapter {
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = 15 * time.Second
	}
	if cfg.BackoffBase <= 0 {
		cfg.BackoffBase = 500 * time.Millisecond
	}
	if cfg.BackoffMax <= 0 {
		cfg.BackoffMax = 30 * time.Second
	}
	return &Adapter{
		store:    store,
		stream:   stream,
		set:      set,
		onInsert: onInsert,
		cfg:      cfg,
		logger:   logger,
	}
}

// Run blocks until ctx is done. The subscription is re-established with
// exponential backoff after any stream failure, and the working set is
// fully re-fetched after every successful subscribe. Fetching only once
// the subscription is live closes the repair window: an insert published
// while the fetch runs arrives on the channel instead of falling between
// fetch and subscribe.
func (a *Adapter) Run(ctx context.Context) {
	backoff := a.cfg.BackoffBase
	for {
		if ctx.Err() != nil {
			return
		}

		ch, stop, err := a.stream.Subscribe(ctx)
		if err != nil {
			a.logger.Error("feed subscribe failed", slog.Any("error", err))
			if !a.sleep(ctx, backoff) {
				return
			}
			backoff = a.nextBackoff(backoff)
			continue
		}

		a.logger.Info("sighting feed connected")
		backoff = a.cfg.BackoffBase

		if err := a.refetch(ctx); err != nil {
			// Stale-but-available: keep whatever the set holds and let
			// the next reconnect repair it.
			a.logger.Warn("working set fetch failed", slog.Any("error", err))
		}

		a.consume(ctx, ch)
		stop()

		if ctx.Err() != nil {
			return
		}

		a.logger.Warn("sighting feed disconnected, reconnecting")
		if !a.sleep(ctx, backoff) {
			return
		}
		backoff = a.nextBackoff(backoff)
	}
}

func (a *Adapter) consume(ctx context.Context, ch <-chan domain.Sighting) {
	for {
		select {
		case <-ctx.Done():
			return
		case s, ok := <-ch:
			if !ok {
				return
			}
			a.set.Append(s)
			a.onInsert(ctx, s)
		}
	}
}

func (a *Adapter) refetch(ctx context.Context) error {
	fetchCtx, cancel := context.WithTimeout(ctx, a.cfg.FetchTimeout)
	defer cancel()

	items, err := a.store.List(fetchCtx)
	if err != nil {
		return err
	}
	a.set.Replace(items)
	a.logger.Info("working set loaded", slog.Int("sightings", len(items)))
	return nil
}

func (a *Adapter) nextBackoff(cur time.Duration) time.Duration {
	next := cur * 2
	if next > a.cfg.BackoffMax {
		next = a.cfg.BackoffMax
	}
	return next
}

func (a *Adapter) sleep(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}
