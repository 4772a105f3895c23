package alert_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"

	"github.com/Osvaldowo/EncontradOS/internal/alert"
)

func TestNotifiedSet_TestAndMark(t *testing.T) {
	t.Parallel()

	set := alert.NewNotifiedSet()
	id := uuid.New()

	if set.Has(id) {
		t.Fatal("fresh set should not contain id")
	}
	if !set.TestAndMark(id) {
		t.Fatal("first TestAndMark should win")
	}
	if set.TestAndMark(id) {
		t.Fatal("second TestAndMark should lose")
	}
	if !set.Has(id) {
		t.Fatal("id should be marked")
	}
	if set.Len() != 1 {
		t.Fatalf("len = %d, want 1", set.Len())
	}
}

// Both event paths can race on the same sighting; exactly one caller may
// win the mark.
func TestNotifiedSet_ConcurrentMark(t *testing.T) {
	t.Parallel()

	set := alert.NewNotifiedSet()
	id := uuid.New()

	const goroutines = 32
	var wins int64
	var wg sync.WaitGroup

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if set.TestAndMark(id) {
				atomic.AddInt64(&wins, 1)
			}
		}()
	}
	wg.Wait()

	if wins != 1 {
		t.Fatalf("wins = %d, want exactly 1", wins)
	}
}
