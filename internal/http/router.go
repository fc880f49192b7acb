// http assembles the REST router: middleware stack, CORS and routes.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/pribylovaa/credit-dispute/internal/http/handlers"
	"github.com/pribylovaa/credit-dispute/internal/http/middleware"
	"github.com/pribylovaa/credit-dispute/internal/models"
)

// Options — router parameters.
type Options struct {
	Logger         *slog.Logger
	Timeout        time.Duration
	AllowedOrigins []string
	BasePath       string // e.g. "/api"; empty mounts routes at the root.
	Metrics        *middleware.Metrics
}

// Service is what the routes need: handler operations plus token checks.
type Service interface {
	handlers.Service
	middleware.TokenValidator
}

// NewRouter builds the chi handler with middlewares and routes.
func NewRouter(svc Service, opts Options) http.Handler {
	root := chi.NewRouter()

	// Outermost first. RequestID must run before Logging.
	root.Use(
		middleware.Recover(),
		middleware.RequestID(),
		middleware.Logging(opts.Logger),
	)
	if opts.Metrics != nil {
		root.Use(opts.Metrics.Middleware())
	}
	if len(opts.AllowedOrigins) > 0 {
		root.Use(cors.Handler(cors.Options{
			AllowedOrigins:   opts.AllowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
			AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-Id"},
			ExposedHeaders:   []string{"X-Request-Id"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout))
	}

	h := handlers.New(svc)

	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h, svc)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h, svc)
	return root
}

// registerRoutes is the single place where REST endpoints are declared.
func registerRoutes(r chi.Router, h *handlers.Handlers, v middleware.TokenValidator) {
	// public
	r.Post("/auth/register", h.Register)
	r.Post("/auth/login", h.Login)
	r.Post("/auth/refresh", h.Refresh)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(v))

		// auth
		r.Post("/auth/regenerate-token", h.RegenerateToken)
		r.Post("/auth/logout", h.Logout)
		r.Get("/auth/me", h.Me)

		// credit
		r.Get("/credit-profile/{userID}", h.CreditProfile)
		r.Get("/credit-profile/{userID}/items", h.CreditReportItems)
		r.Get("/credit-profile/{userID}/refresh", h.RefreshCreditProfile)

		// disputes
		r.Post("/disputes/create", h.CreateDispute)
		r.Get("/disputes/history", h.DisputeHistory)
		r.Get("/disputes/{id}", h.Dispute)
		r.Get("/disputes/{id}/letters", h.DisputeLetters)

		// letters
		r.Post("/ai/generate-letter", h.GenerateLetter)

		// admin
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(models.RoleAdmin))

			r.Get("/users", h.ListUsers)
			r.Get("/disputes/stats/overview", h.DisputeStats)
			r.Put("/disputes/{id}/status", h.UpdateDisputeStatus)
		})
	})
}
