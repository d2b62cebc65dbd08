package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fireflysocial/events-service/internal/application/event"
	"github.com/fireflysocial/events-service/internal/config"
	"github.com/fireflysocial/events-service/internal/domain"
	"github.com/fireflysocial/events-service/internal/transport/http/handlers"
	authmw "github.com/fireflysocial/events-service/internal/transport/http/middleware"
)

type stubClock struct{}

func (stubClock) Now() time.Time { return time.Date(2025, 12, 26, 12, 0, 0, 0, time.UTC) }

type stubRepo struct{}

func (*stubRepo) Create(context.Context, *domain.Event) error { return nil }
func (*stubRepo) GetByID(context.Context, string) (*domain.Event, error) {
	return nil, domain.ErrNoSuchEvent()
}
func (*stubRepo) Update(context.Context, *domain.Event) error { return nil }
func (*stubRepo) Delete(context.Context, string) error        { return nil }
func (*stubRepo) FindActive(context.Context, int, string, string) ([]*domain.Event, error) {
	return nil, nil
}
func (*stubRepo) FindEnded(context.Context, int, string, string) ([]*domain.Event, error) {
	return nil, nil
}
func (*stubRepo) IsParticipating(context.Context, string, string) (bool, error) { return false, nil }
func (*stubRepo) ListParticipants(context.Context, string, int, string, string) ([]*domain.Participant, error) {
	return nil, nil
}
func (*stubRepo) Join(context.Context, *domain.Participant, time.Time) error { return nil }
func (*stubRepo) Leave(context.Context, string, string) error                { return nil }

type stubDir struct{}

func (stubDir) Get(context.Context, string) (*event.UserProfile, error) { return nil, nil }

type stubFiles struct{}

func (stubFiles) Get(context.Context, string) (*event.StoredFile, error) { return nil, nil }

func newTestRouter(rlEnabled bool) http.Handler {
	svc := event.New(&stubRepo{}, stubDir{}, stubFiles{}, nil, nil, stubClock{}, time.Minute)
	h := handlers.NewEventsHandler(svc)
	auth := authmw.NewAuth("secret", "test")
	cfg := &config.Config{RLEnabled: rlEnabled, RLLimit: 2, RLWindow: time.Minute}
	return New(h, auth, handlers.NewHealthHandler(), cfg)
}

func TestRouter(t *testing.T) {
	t.Run("healthz_is_public", func(t *testing.T) {
		r := newTestRouter(false)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("list_is_public", func(t *testing.T) {
		r := newTestRouter(false)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/events/v1/events", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("create_requires_auth", func(t *testing.T) {
		r := newTestRouter(false)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/events/v1/events", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("participate_requires_auth", func(t *testing.T) {
		r := newTestRouter(false)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/events/v1/events/550e8400-e29b-41d4-a716-446655440000/participate", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("unknown_route_404", func(t *testing.T) {
		r := newTestRouter(false)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/nope", nil))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("rate_limit_kicks_in", func(t *testing.T) {
		r := newTestRouter(true)
		var last int
		for i := 0; i < 5; i++ {
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
			req.RemoteAddr = "10.1.1.1:1234"
			r.ServeHTTP(rr, req)
			last = rr.Code
		}
		assert.Equal(t, http.StatusTooManyRequests, last)
	})

	t.Run("security_headers_set", func(t *testing.T) {
		r := newTestRouter(false)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
	})

	t.Run("request_id_echoed", func(t *testing.T) {
		r := newTestRouter(false)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.NotEmpty(t, rr.Header().Get("X-Request-Id"))
	})
}
