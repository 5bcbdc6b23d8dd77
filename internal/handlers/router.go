package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sathyaantham2-wq/Labour-cms-Google-studio/internal/middleware"
	"github.com/sathyaantham2-wq/Labour-cms-Google-studio/internal/services"
	"go.uber.org/zap"
)

// RouterConfig carries what the router needs beyond the handlers
type RouterConfig struct {
	JWTSecret      string
	AllowedOrigins []string
	RateLimitRPM   int
	Logger         *zap.Logger
}

// Handlers groups every endpoint handler
type Handlers struct {
	Cases    *CaseHandler
	Public   *PublicHandler
	Notices  *NoticeHandler
	Settings *SettingsHandler
	Auth     *AuthHandler
	Health   *HealthHandler
}

// NewRouter builds the API router. ctx bounds the rate limiter's sweeper.
func NewRouter(ctx context.Context, cfg RouterConfig, h Handlers) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimw.RequestID)
	r.Use(middleware.StructuredLogger(cfg.Logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", h.Health.Check)
		r.Get("/health/ready", h.Health.Ready)

		// Public portal (no auth, no IP logging)
		r.Route("/public", func(r chi.Router) {
			r.Use(middleware.StripIPHeaders())
			r.Use(middleware.RateLimit(ctx, cfg.RateLimitRPM))
			r.Get("/lookup", h.Public.Lookup)
			r.Get("/search", h.Public.Search)
		})

		r.With(middleware.RateLimit(ctx, cfg.RateLimitRPM)).Post("/auth/login", h.Auth.Login)

		// Officer dashboard
		r.Group(func(r chi.Router) {
			r.Use(chimw.RealIP)
			r.Use(middleware.RequireAuth(cfg.JWTSecret, services.OfficerSubject))

			r.Route("/cases", func(r chi.Router) {
				r.Get("/", h.Cases.List)
				r.Post("/", h.Cases.Create)
				r.Get("/stats", h.Cases.Stats)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Cases.Get)
					r.Post("/hearings", h.Cases.AddHearing)
					r.Get("/hearings/next", h.Cases.NextHearing)
					r.Put("/amount", h.Cases.SetAmount)
					r.Post("/status/toggle", h.Cases.ToggleStatus)
					r.Get("/notice", h.Notices.Notice)
					r.Post("/notice/dispatch", h.Notices.Dispatch)
					r.Get("/notice/dispatch", h.Notices.DispatchStatus)
				})
			})

			r.Get("/settings/dispatch", h.Settings.GetDispatch)
			r.Put("/settings/dispatch", h.Settings.PutDispatch)

			r.Get("/vocabularies/{name}", h.Settings.Vocabulary)
			r.Post("/vocabularies/{name}", h.Settings.AddVocabularyOption)
		})
	})

	return r
}
