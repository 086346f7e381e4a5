package api

import (
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/go-chi/chi/v5"

	"github.com/warnaku/warnaku/internal/api/handler"
	"github.com/warnaku/warnaku/internal/api/middleware"
	"github.com/warnaku/warnaku/internal/auth"
	"github.com/warnaku/warnaku/internal/metrics"
	"github.com/warnaku/warnaku/internal/profile"
	"github.com/warnaku/warnaku/internal/token"
	"github.com/warnaku/warnaku/internal/user"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	Codec       *token.Codec
	AuthService *auth.Service
	Users       user.Repository
	Profiles    profile.Repository
	DBPinger    handler.DBPinger
	ClientURL   string
	Registry    *prometheus.Registry
	// Development exposes panic detail in 500 bodies.
	Development bool
}

// NewRouter creates and configures a Chi router with all middleware and routes.
func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(deps.Development))
	r.Use(chimiddleware.Logger)

	if deps.Registry != nil {
		collector := metrics.NewCollector(deps.Registry)
		r.Use(collector.Middleware)
		r.Method("GET", "/metrics", metrics.Handler(deps.Registry))
	}

	healthHandler := handler.NewHealthHandler(deps.DBPinger)
	r.Get("/api/health", healthHandler.ServeHTTP)

	authHandler := handler.NewAuthHandler(deps.AuthService, deps.ClientURL)
	r.Route("/auth", func(r chi.Router) {
		r.Get("/google", authHandler.Login)
		r.Get("/google/callback", authHandler.Callback)
		r.Get("/logout", authHandler.Logout)
		r.With(middleware.Auth(deps.Codec)).Get("/user", authHandler.CurrentUser)
	})

	profileHandler := handler.NewProfileHandler(deps.Profiles)
	r.Route("/api/profiles", func(r chi.Router) {
		r.Use(middleware.Auth(deps.Codec))
		r.Get("/", profileHandler.List)
		r.Post("/", profileHandler.Create)
		r.Put("/{id}", profileHandler.Update)
		r.Delete("/{id}", profileHandler.Delete)
	})

	adminHandler := handler.NewAdminHandler(deps.Users)
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.Auth(deps.Codec))
		r.Use(middleware.RequireAdmin())
		r.Get("/users", adminHandler.ListUsers)
		r.Get("/stats", adminHandler.Stats)
		r.Put("/users/{id}/toggle-admin", adminHandler.ToggleAdmin)
		r.Delete("/users/{id}", adminHandler.DeleteUser)
	})

	return r
}
