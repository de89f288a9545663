package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/hackforge-dev/admin-api/internal/application/announcement"
	"github.com/hackforge-dev/admin-api/internal/application/broadcast"
	"github.com/hackforge-dev/admin-api/internal/application/stats"
	"github.com/hackforge-dev/admin-api/internal/application/subscription"
	"github.com/hackforge-dev/admin-api/internal/config"
	"github.com/hackforge-dev/admin-api/internal/domain"
	"github.com/hackforge-dev/admin-api/internal/transport/http/handler"
	appmiddleware "github.com/hackforge-dev/admin-api/internal/transport/http/middleware"
	"golang.org/x/time/rate"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	var authMw func(http.Handler) http.Handler
	if deps.JWTProvider != nil {
		authMw = appmiddleware.Auth(deps.JWTProvider)
	} else {
		authMw = func(next http.Handler) http.Handler { return next }
	}

	// 5 requests/second, burst of 10 — applied to the public registration endpoint.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	broadcastSvc := broadcast.NewService(
		deps.SubscriptionRepo, deps.UserRepo,
		deps.ChatNotifier, deps.PushSender,
		cfg.NotifyTimeout,
	)
	annSvc := announcement.NewService(deps.AnnouncementRepo, broadcastSvc)
	subSvc := subscription.NewService(deps.SubscriptionRepo)
	statsSvc := stats.NewService(deps.AnnouncementRepo, deps.UserRepo)

	healthH := handler.NewHealthHandler()
	annH := handler.NewAnnouncementHandler(annSvc)
	subH := handler.NewSubscriptionHandler(subSvc)
	statsH := handler.NewStatsHandler(statsSvc)

	r.Route("/v1", func(r chi.Router) {
		// ── Public routes (no auth) ──────────────────────────────────────────
		r.Get("/health-check/{action}", healthH.Ping)
		r.With(sensitiveRL.Limit).Post("/push-subscriptions", subH.Register)
		r.With(sensitiveRL.Limit).Delete("/push-subscriptions", subH.Unsubscribe)

		// ── Authenticated routes ─────────────────────────────────────────────
		r.Group(func(r chi.Router) {
			r.Use(authMw)

			// Any authenticated user
			r.Get("/announcements", annH.List)

			// Admin-only routes
			r.Group(func(r chi.Router) {
				r.Use(appmiddleware.RequireRole(domain.RoleAdmin))

				r.Post("/announcements", annH.Create)
				r.Delete("/announcements", annH.Delete)
				r.Get("/announcements/stats", statsH.AnnouncementTotal)
				r.Get("/users/total", statsH.UserTotal)
			})
		})
	})

	return r
}
