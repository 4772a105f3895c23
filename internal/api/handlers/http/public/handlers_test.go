package public_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Osvaldowo/EncontradOS/internal/api/handlers/http/public"
	"github.com/Osvaldowo/EncontradOS/internal/domain"
	"github.com/Osvaldowo/EncontradOS/pkg/e"
)

type stubReports struct {
	got domain.ReportRequest
	out *domain.Sighting
	err error
}

func (s *stubReports) Submit(ctx context.Context, req domain.ReportRequest) (*domain.Sighting, error) {
	s.got = req
	return s.out, s.err
}

type stubSightings struct {
	list      []domain.Sighting
	listErr   error
	deletedID uuid.UUID
	deleteErr error
}

func (s *stubSightings) List(ctx context.Context) ([]domain.Sighting, error) {
	return s.list, s.listErr
}

func (s *stubSightings) ListByReporter(ctx context.Context, reporterID string) ([]domain.Sighting, error) {
	return s.list, s.listErr
}

func (s *stubSightings) Delete(ctx context.Context, id uuid.UUID, reporterID string) error {
	s.deletedID = id
	return s.deleteErr
}

type stubAlerts struct {
	got  domain.LocationUpdateRequest
	resp domain.LocationUpdateResponse
	err  error
}

func (s *stubAlerts) UpdateLocation(ctx context.Context, req domain.LocationUpdateRequest) (domain.LocationUpdateResponse, error) {
	s.got = req
	return s.resp, s.err
}

type stubPhotos struct {
	data        []byte
	contentType string
	err         error
}

func (s *stubPhotos) Get(ctx context.Context, name string) ([]byte, string, error) {
	return s.data, s.contentType, s.err
}

type fixture struct {
	reports   *stubReports
	sightings *stubSightings
	alerts    *stubAlerts
	photos    *stubPhotos
	router    chi.Router
}

func newFixture() *fixture {
	f := &fixture{
		reports:   &stubReports{},
		sightings: &stubSightings{},
		alerts:    &stubAlerts{},
		photos:    &stubPhotos{},
	}
	h := public.NewHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), f.reports, f.sightings, f.alerts, f.photos)

	r := chi.NewRouter()
	r.Post("/sightings", h.ReportSighting)
	r.Get("/sightings", h.ListSightings)
	r.Get("/sightings/mine", h.MySightings)
	r.Delete("/sightings/{id}", h.DeleteSighting)
	r.Post("/location/update", h.UpdateLocation)
	r.Get("/photos/{name}", h.Photo)
	f.router = r
	return f
}

func (f *fixture) do(t *testing.T, method, path, body string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, path, nil)
	} else {
		r = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	for k, v := range header {
		r.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, r)
	return w
}

func TestReportSighting_Created(t *testing.T) {
	t.Parallel()

	f := newFixture()
	id := uuid.New()
	f.reports.out = &domain.Sighting{
		ID:        id,
		Name:      "Firulais",
		Contact:   "3001234567",
		CreatedAt: time.Now().UTC(),
	}

	body := `{"nombre":"Firulais","contacto":"3001234567","latitud":4.6,"longitud":-74.08}`
	w := f.do(t, http.MethodPost, "/sightings", body, nil)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body %s", w.Code, w.Body)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("content type = %q", ct)
	}

	var got domain.Sighting
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if got.ID != id || got.Name != "Firulais" {
		t.Fatalf("response = %+v", got)
	}
}

func TestReportSighting_BadJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{"malformed", `{"nombre": `},
		{"unknown field", `{"nombre":"a","contacto":"12345","raza":"labrador"}`},
		{"trailing data", `{"nombre":"a","contacto":"12345"}{"again":true}`},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture()
			w := f.do(t, http.MethodPost, "/sightings", tc.body, nil)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
		})
	}
}

func TestReportSighting_Duplicate(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.reports.err = fmt.Errorf("service: %w", e.ErrDuplicate)

	body := `{"nombre":"Firulais","contacto":"3001234567"}`
	w := f.do(t, http.MethodPost, "/sightings", body, nil)

	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}
	if !strings.Contains(w.Body.String(), "duplicate") {
		t.Fatalf("body = %s, want the duplicate hint", w.Body)
	}
}

func TestReportSighting_HeaderDeviceIDWins(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.reports.out = &domain.Sighting{ID: uuid.New()}

	body := `{"nombre":"Firulais","contacto":"3001234567","device_id":"from-body"}`
	w := f.do(t, http.MethodPost, "/sightings", body, map[string]string{"X-Device-ID": "from-header"})

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", w.Code)
	}
	if f.reports.got.DeviceID != "from-header" {
		t.Fatalf("device id = %q, want the header value", f.reports.got.DeviceID)
	}
}

func TestListSightings(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.sightings.list = []domain.Sighting{
		{ID: uuid.New(), Name: "Luna"},
		{ID: uuid.New(), Name: "Max"},
	}

	w := f.do(t, http.MethodGet, "/sightings", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var got []domain.Sighting
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
}

func TestMySightings_RequiresDeviceID(t *testing.T) {
	t.Parallel()

	f := newFixture()
	w := f.do(t, http.MethodGet, "/sightings/mine", "", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 without X-Device-ID", w.Code)
	}

	w = f.do(t, http.MethodGet, "/sightings/mine", "", map[string]string{"X-Device-ID": "device-1"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestDeleteSighting(t *testing.T) {
	t.Parallel()

	f := newFixture()
	id := uuid.New()
	hdr := map[string]string{"X-Device-ID": "device-1"}

	w := f.do(t, http.MethodDelete, "/sightings/"+id.String(), "", hdr)
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", w.Code)
	}
	if f.sightings.deletedID != id {
		t.Fatalf("deleted %s, want %s", f.sightings.deletedID, id)
	}

	w = f.do(t, http.MethodDelete, "/sightings/not-a-uuid", "", hdr)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for a bad id", w.Code)
	}

	w = f.do(t, http.MethodDelete, "/sightings/"+id.String(), "", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 without X-Device-ID", w.Code)
	}
}

func TestDeleteSighting_NotFound(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.sightings.deleteErr = fmt.Errorf("repo: %w", e.ErrNotFound)

	w := f.do(t, http.MethodDelete, "/sightings/"+uuid.NewString(), "",
		map[string]string{"X-Device-ID": "device-1"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestUpdateLocation(t *testing.T) {
	t.Parallel()

	f := newFixture()
	sightingID := uuid.NewString()
	f.alerts.resp = domain.LocationUpdateResponse{Notified: []string{sightingID}}

	body := `{"device_id":"device-1","lat":4.6,"lng":-74.08}`
	w := f.do(t, http.MethodPost, "/location/update", body, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", w.Code, w.Body)
	}

	var resp domain.LocationUpdateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(resp.Notified) != 1 || resp.Notified[0] != sightingID {
		t.Fatalf("notified = %v", resp.Notified)
	}
	if f.alerts.got.DeviceID != "device-1" || f.alerts.got.Lat != 4.6 {
		t.Fatalf("service saw %+v", f.alerts.got)
	}
}

func TestUpdateLocation_InvalidCoordinates(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.alerts.err = fmt.Errorf("service: %w", e.ErrInvalidCoordinates)

	body := `{"device_id":"device-1","lat":123.0,"lng":0}`
	w := f.do(t, http.MethodPost, "/location/update", body, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestPhoto(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.photos.data = []byte{0xFF, 0xD8}
	f.photos.contentType = "image/jpeg"

	w := f.do(t, http.MethodGet, "/photos/pet_1.jpg", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/jpeg" {
		t.Fatalf("content type = %q", ct)
	}
	if cc := w.Header().Get("Cache-Control"); cc == "" {
		t.Fatal("photos must be cacheable")
	}
}

func TestPhoto_NotFound(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.photos.err = fmt.Errorf("repo: %w", e.ErrNotFound)

	w := f.do(t, http.MethodGet, "/photos/missing.jpg", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
