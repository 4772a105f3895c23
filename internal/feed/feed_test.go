package feed_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Osvaldowo/EncontradOS/internal/domain"
	"github.com/Osvaldowo/EncontradOS/internal/feed"
	"github.com/Osvaldowo/EncontradOS/internal/workingset"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeStore struct {
	mu    sync.Mutex
	lists [][]domain.Sighting
	calls int
	err   error
}

func (s *fakeStore) List(ctx context.Context) ([]domain.Sighting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	if len(s.lists) == 0 {
		return nil, nil
	}
	out := s.lists[0]
	if len(s.lists) > 1 {
		s.lists = s.lists[1:]
	}
	return out, nil
}

func (s *fakeStore) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

type fakeStream struct {
	mu         sync.Mutex
	channels   []chan domain.Sighting
	current    chan domain.Sighting
	subscribed chan struct{}
}

func newFakeStream(subs int) *fakeStream {
	s := &fakeStream{subscribed: make(chan struct{}, subs)}
	for i := 0; i < subs; i++ {
		s.channels = append(s.channels, make(chan domain.Sighting))
	}
	return s
}

func (s *fakeStream) Subscribe(ctx context.Context) (<-chan domain.Sighting, func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.channels) == 0 {
		return nil, nil, errors.New("no more subscriptions")
	}
	s.current = s.channels[0]
	s.channels = s.channels[1:]
	s.subscribed <- struct{}{}
	return s.current, func() {}, nil
}

func (s *fakeStream) push(t *testing.T, sighting domain.Sighting) {
	t.Helper()
	s.mu.Lock()
	ch := s.current
	s.mu.Unlock()

	select {
	case ch <- sighting:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out pushing into feed")
	}
}

func (s *fakeStream) closeCurrent() {
	s.mu.Lock()
	defer s.mu.Unlock()
	close(s.current)
}

func waitSignal(t *testing.T, ch chan struct{}, what string) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for %s", what)
	}
}

func TestAdapter_InitialLoadAndInsert(t *testing.T) {
	t.Parallel()

	existing := domain.Sighting{ID: uuid.New(), Name: "Luna"}
	fresh := domain.Sighting{ID: uuid.New(), Name: "Max"}

	store := &fakeStore{lists: [][]domain.Sighting{{existing}}}
	stream := newFakeStream(1)
	set := workingset.New()

	inserted := make(chan domain.Sighting, 1)
	adapter := feed.NewAdapter(store, stream, set, func(ctx context.Context, s domain.Sighting) {
		inserted <- s
	}, feed.Config{BackoffBase: time.Millisecond}, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		adapter.Run(ctx)
		close(done)
	}()

	waitSignal(t, stream.subscribed, "subscribe")

	stream.push(t, fresh)

	select {
	case got := <-inserted:
		if got.ID != fresh.ID {
			t.Fatalf("onInsert saw %s, want %s", got.ID, fresh.ID)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for onInsert")
	}

	if set.Len() != 2 {
		t.Fatalf("working set len = %d, want 2 (initial + insert)", set.Len())
	}

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("adapter did not stop on cancel")
	}
}

func TestAdapter_ReconnectRefetchesWorkingSet(t *testing.T) {
	t.Parallel()

	first := domain.Sighting{ID: uuid.New(), Name: "Luna"}
	repaired := domain.Sighting{ID: uuid.New(), Name: "Toby"}
	live := domain.Sighting{ID: uuid.New(), Name: "Max"}

	store := &fakeStore{lists: [][]domain.Sighting{
		{first},
		{first, repaired}, // served on the reconnect re-fetch
	}}
	stream := newFakeStream(2)
	set := workingset.New()

	inserted := make(chan domain.Sighting, 1)
	adapter := feed.NewAdapter(store, stream, set, func(_ context.Context, s domain.Sighting) {
		inserted <- s
	}, feed.Config{BackoffBase: time.Millisecond}, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		adapter.Run(ctx)
		close(done)
	}()

	waitSignal(t, stream.subscribed, "first subscribe")
	stream.closeCurrent()

	waitSignal(t, stream.subscribed, "reconnect subscribe")

	// A live insert only reaches onInsert once the re-fetch has run, so
	// receiving it pins the repaired set.
	stream.push(t, live)
	select {
	case <-inserted:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for onInsert after reconnect")
	}

	if store.callCount() < 2 {
		t.Fatalf("store.List called %d times, want initial + reconnect re-fetch", store.callCount())
	}
	if set.Len() != 3 {
		t.Fatalf("working set len = %d, want repaired 2 + live insert", set.Len())
	}

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("adapter did not stop on cancel")
	}
}

// A sighting reported while the feed is down is in the store but was never
// published to the new subscription; the post-subscribe re-fetch must pick
// it up.
func TestAdapter_ReconnectRepairsInsertMissedWhileDown(t *testing.T) {
	t.Parallel()

	missed := domain.Sighting{ID: uuid.New(), Name: "Rocky"}
	live := domain.Sighting{ID: uuid.New(), Name: "Max"}

	store := &fakeStore{lists: [][]domain.Sighting{
		{},       // before the outage
		{missed}, // reported during the outage
	}}
	stream := newFakeStream(2)
	set := workingset.New()

	inserted := make(chan domain.Sighting, 1)
	adapter := feed.NewAdapter(store, stream, set, func(_ context.Context, s domain.Sighting) {
		inserted <- s
	}, feed.Config{BackoffBase: time.Millisecond}, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		adapter.Run(ctx)
		close(done)
	}()

	waitSignal(t, stream.subscribed, "first subscribe")
	stream.closeCurrent()
	waitSignal(t, stream.subscribed, "reconnect subscribe")

	stream.push(t, live)
	select {
	case <-inserted:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for onInsert after reconnect")
	}

	found := false
	for _, s := range set.Snapshot() {
		if s.ID == missed.ID {
			found = true
		}
	}
	if !found {
		t.Fatalf("sighting reported during the outage never entered the working set (len=%d)", set.Len())
	}

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("adapter did not stop on cancel")
	}
}

func TestAdapter_InitialFetchFailureIsNonFatal(t *testing.T) {
	t.Parallel()

	store := &fakeStore{err: errors.New("store down")}
	stream := newFakeStream(1)
	set := workingset.New()

	adapter := feed.NewAdapter(store, stream, set, func(context.Context, domain.Sighting) {},
		feed.Config{BackoffBase: time.Millisecond, FetchTimeout: 50 * time.Millisecond}, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		adapter.Run(ctx)
		close(done)
	}()

	// The adapter must still reach the live subscription.
	waitSignal(t, stream.subscribed, "subscribe after failed fetch")
	if set.Len() != 0 {
		t.Fatalf("working set len = %d, want 0", set.Len())
	}

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("adapter did not stop on cancel")
	}
}
