package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"

	"github.com/fireflysocial/events-service/internal/config"
	"github.com/fireflysocial/events-service/internal/transport/http/handlers"
	authmw "github.com/fireflysocial/events-service/internal/transport/http/middleware"
)

func New(
	h *handlers.EventsHandler,
	auth *authmw.AuthMiddleware,
	z *handlers.HealthHandler,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	r.Use(authmw.RequestID)
	r.Use(authmw.SecurityHeaders)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(authmw.AccessLog)

	if cfg.RLEnabled {
		r.Use(httprate.Limit(
			cfg.RLLimit,
			cfg.RLWindow,
			httprate.WithKeyFuncs(httprate.KeyByIP),
		))
	}

	r.Get("/healthz", z.Healthz)

	r.Route("/events/v1", func(r chi.Router) {
		// public reads still carry the viewer when a token is present
		r.Group(func(r chi.Router) {
			r.Use(auth.Optional)
			r.Get("/events", h.List)
			r.Get("/events/{event_id}", h.Show)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.Require)
			r.Post("/events", h.Create)
			r.Patch("/events/{event_id}", h.Update)
			r.Delete("/events/{event_id}", h.Delete)
			r.Post("/events/{event_id}/participate", h.Participate)
			r.Post("/events/{event_id}/leave", h.Leave)
		})
	})

	return r
}
