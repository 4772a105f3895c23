package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/Osvaldowo/EncontradOS/internal/domain"
	"github.com/Osvaldowo/EncontradOS/internal/service"
	mock_service "github.com/Osvaldowo/EncontradOS/internal/service/mocks"
	"github.com/Osvaldowo/EncontradOS/internal/workingset"
	"github.com/Osvaldowo/EncontradOS/pkg/e"
)

type sightingsFixture struct {
	svc   service.SightingService
	repo  *mock_service.MockSightingRepository
	cache *mock_service.MockSightingCache
	set   *workingset.Set
}

func newSightings(t *testing.T) sightingsFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := sightingsFixture{
		repo:  mock_service.NewMockSightingRepository(ctrl),
		cache: mock_service.NewMockSightingCache(ctrl),
		set:   workingset.New(),
	}
	f.svc = service.NewSightingService(f.repo, f.cache, f.set, discardLogger())
	return f
}

func TestList_CacheHitSkipsStore(t *testing.T) {
	t.Parallel()

	f := newSightings(t)
	cached := []domain.Sighting{{ID: uuid.New(), Name: "Luna"}}

	f.cache.EXPECT().Get(gomock.Any()).Return(cached, nil)

	got, err := f.svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0].ID != cached[0].ID {
		t.Fatalf("list = %+v, want the cached snapshot", got)
	}
}

func TestList_CacheMissFillsCache(t *testing.T) {
	t.Parallel()

	f := newSightings(t)
	fresh := []domain.Sighting{{ID: uuid.New(), Name: "Max"}}

	f.cache.EXPECT().Get(gomock.Any()).Return(nil, nil)
	f.repo.EXPECT().List(gomock.Any()).Return(fresh, nil)
	f.cache.EXPECT().Set(gomock.Any(), fresh, gomock.Any()).Return(nil)

	got, err := f.svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0].ID != fresh[0].ID {
		t.Fatalf("list = %+v", got)
	}
}

// Cache and store both down: the working set is the last line of defense.
func TestList_ServesWorkingSetWhenStoreDown(t *testing.T) {
	t.Parallel()

	f := newSightings(t)
	stale := domain.Sighting{ID: uuid.New(), Name: "Toby"}
	f.set.Append(stale)

	f.cache.EXPECT().Get(gomock.Any()).Return(nil, errors.New("redis down"))
	f.repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("pg down"))

	got, err := f.svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0].ID != stale.ID {
		t.Fatalf("list = %+v, want the working-set snapshot", got)
	}
}

func TestList_EverythingDown(t *testing.T) {
	t.Parallel()

	f := newSightings(t)

	f.cache.EXPECT().Get(gomock.Any()).Return(nil, nil)
	f.repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("pg down"))

	if _, err := f.svc.List(context.Background()); err == nil {
		t.Fatal("expected the store error with nothing to fall back on")
	}
}

func TestList_CacheWriteFailureIsNonFatal(t *testing.T) {
	t.Parallel()

	f := newSightings(t)
	fresh := []domain.Sighting{{ID: uuid.New(), Name: "Luna"}}

	f.cache.EXPECT().Get(gomock.Any()).Return(nil, nil)
	f.repo.EXPECT().List(gomock.Any()).Return(fresh, nil)
	f.cache.EXPECT().Set(gomock.Any(), fresh, gomock.Any()).Return(errors.New("redis down"))

	got, err := f.svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("list = %+v", got)
	}
}

func TestDelete_RemovesFromWorkingSet(t *testing.T) {
	t.Parallel()

	f := newSightings(t)
	s := domain.Sighting{ID: uuid.New(), Name: "Luna"}
	f.set.Append(s)

	f.repo.EXPECT().Delete(gomock.Any(), s.ID, "device-1").Return(nil)
	f.cache.EXPECT().Invalidate(gomock.Any()).Return(nil)

	if err := f.svc.Delete(context.Background(), s.ID, "device-1"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if f.set.Len() != 0 {
		t.Fatal("deleted sighting must leave the working set")
	}
}

func TestDelete_RepoErrorKeepsWorkingSet(t *testing.T) {
	t.Parallel()

	f := newSightings(t)
	s := domain.Sighting{ID: uuid.New(), Name: "Luna"}
	f.set.Append(s)

	f.repo.EXPECT().Delete(gomock.Any(), s.ID, "device-2").
		Return(e.Wrap("repo", e.ErrNotFound))

	err := f.svc.Delete(context.Background(), s.ID, "device-2")
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if f.set.Len() != 1 {
		t.Fatal("failed delete must not touch the working set")
	}
}

func TestGetStats(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mock_service.NewMockStatsRepository(ctrl)
	svc := service.NewStatsService(repo)

	repo.EXPECT().CountReporters(gomock.Any(), 60).Return(int64(4), nil)

	got, err := svc.GetStats(context.Background(), domain.StatsRequest{Minutes: 60})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.ReporterCount != 4 {
		t.Fatalf("count = %d, want 4", got.ReporterCount)
	}

	for _, minutes := range []int{0, -5, 100000} {
		if _, err := svc.GetStats(context.Background(), domain.StatsRequest{Minutes: minutes}); !errors.Is(err, e.ErrInvalidInput) {
			t.Fatalf("minutes=%d: err = %v, want ErrInvalidInput", minutes, err)
		}
	}
}
