package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"

	"github.com/stagepass/core-service/internal/config"
	"github.com/stagepass/core-service/internal/metrics"
	"github.com/stagepass/core-service/internal/transport/http/handlers"
	appmw "github.com/stagepass/core-service/internal/transport/http/middleware"
)

type Handlers struct {
	Demerits  *handlers.DemeritsHandler
	Appeals   *handlers.AppealsHandler
	Waitlist  *handlers.WaitlistHandler
	Discounts *handlers.DiscountsHandler
	Settings  *handlers.SettingsHandler
	Health    *handlers.HealthHandler
}

func New(h Handlers, identity *appmw.Identity, limiter appmw.Limiter, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(appmw.RequestID)
	r.Use(appmw.SecurityHeaders)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(appmw.AccessLog)
	r.Use(identity.Optional)

	if cfg.RLEnabled {
		if limiter != nil {
			r.Use(appmw.RateLimit(limiter, cfg.RLLimit, cfg.RLWindow))
		} else {
			r.Use(httprate.LimitByIP(cfg.RLLimit, cfg.RLWindow))
		}
	}

	r.Get("/healthz", h.Health.Healthz)
	r.Handle("/metrics", metrics.Handler())

	// paths are unversioned: existing clients call them as-is
	r.Route("/demerits", func(r chi.Router) {
		r.Post("/", h.Demerits.Post)
		r.Get("/stats", h.Demerits.Stats)
		r.Post("/appeals", h.Appeals.Post)
		r.Get("/appeals", h.Appeals.List)
		r.Get("/{demerit_id}", h.Demerits.Get)
	})

	r.Get("/users/{user_id}/demerits", h.Demerits.UserDemerits)

	r.Route("/events/{event_id}/waitlist", func(r chi.Router) {
		r.Post("/", h.Waitlist.Post)
		r.Get("/", h.Waitlist.List)
		r.Get("/position", h.Waitlist.Position)
		r.Get("/next", h.Waitlist.Next)
	})

	r.Route("/payments/discount", func(r chi.Router) {
		r.Post("/", h.Discounts.Create)
		r.Get("/", h.Discounts.Validate)
		r.Post("/apply", h.Discounts.Apply)
		r.Get("/codes", h.Discounts.ListCodes)
	})

	r.Route("/calendars/{calendar_id}/demerit-settings", func(r chi.Router) {
		r.Put("/", h.Settings.Put)
		r.Get("/", h.Settings.Get)
	})

	return r
}
