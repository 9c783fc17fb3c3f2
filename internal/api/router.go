package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/KefouegFrank/zenithis-test-technique-backend/internal/api/handlers"
	"github.com/KefouegFrank/zenithis-test-technique-backend/internal/config"
	"github.com/KefouegFrank/zenithis-test-technique-backend/internal/metrics"
	"github.com/KefouegFrank/zenithis-test-technique-backend/internal/middleware"
)

type RouterDeps struct {
	Cfg    config.Config
	Log    *slog.Logger
	AuthMW *middleware.AuthMiddleware
	AuthH  *handlers.AuthHandler
	UserH  *handlers.UserHandler
	TripH  *handlers.TripHandler
}

func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover)
	r.Use(middleware.SlogLogger(d.Log))
	r.Use(middleware.HTTPMetrics)
	r.Use(middleware.RateLimit(d.Cfg.RateRPS))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Handle("/metrics", metrics.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Get("/health", handlers.Health(d.Cfg.Version))

		r.Post("/auth/register", d.AuthH.Register)
		r.Post("/auth/login", d.AuthH.Login)
		r.Post("/auth/refresh", d.AuthH.Refresh)

		r.Group(func(r chi.Router) {
			r.Use(d.AuthMW.Auth)

			r.Post("/auth/logout", d.AuthH.Logout)
			r.Get("/auth/me", d.AuthH.Me)

			r.Route("/users", func(r chi.Router) {
				r.Get("/", d.UserH.List)
				r.Get("/stats", d.UserH.Stats)
				r.Get("/{id}", d.UserH.Get)
				r.Put("/profile", d.UserH.UpdateProfile)
				r.Delete("/account", d.UserH.DeleteAccount)
			})

			r.Route("/trips", func(r chi.Router) {
				r.Get("/", d.TripH.List)
				r.Post("/", d.TripH.Create)
				r.Get("/my-trips", d.TripH.MyTrips)
				r.Get("/{id}", d.TripH.Get)
				r.Put("/{id}", d.TripH.Update)
				r.Delete("/{id}", d.TripH.Delete)
				r.Patch("/{id}/cancel", d.TripH.Cancel)
				r.Patch("/{id}/complete", d.TripH.Complete)
			})
		})
	})

	return r
}
