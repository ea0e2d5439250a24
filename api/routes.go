package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/rs/zerolog/log"

	"github.com/anand7670/portfolio-backend/errs"
)

// Contact form rate limit: 3 accepted submissions per source IP per 15 minutes
const (
	contactRateLimit  = 3
	contactRateWindow = 15 * time.Minute
)

// setupRoutes registers the public surface and the admin surface behind the
// auth gate
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware, startupTime time.Time) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/health", healthHandler(startupTime))
		r.Post("/auth/login", handlers.authHandler.login())

		r.Get("/portfolio", handlers.portfolioHandler.getPortfolio())
		r.Get("/portfolio/cv/check", handlers.portfolioHandler.checkCV())
		r.Get("/portfolio/cv/download", handlers.portfolioHandler.downloadCV())

		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Get("/projects/{projectID}", handlers.projectHandler.getProject())

		// Limited requests are rejected before any validation runs
		r.With(contactLimiter()).Post("/contact", handlers.contactHandler.submitContact())
	})

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(authMiddleware.authenticate)

		r.Put("/portfolio/personal-info", handlers.portfolioHandler.updatePersonalInfo())
		r.Put("/portfolio/about", handlers.portfolioHandler.updateAbout())
		r.Post("/portfolio/cv", handlers.portfolioHandler.uploadCV())

		r.Post("/projects", handlers.projectHandler.createProject())
		r.Put("/projects/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/projects/{projectID}", handlers.projectHandler.deleteProject())

		r.Get("/contact", handlers.contactHandler.getAllContacts())
		r.Put("/contact/{contactID}/status", handlers.contactHandler.updateContactStatus())
		r.Delete("/contact/{contactID}", handlers.contactHandler.deleteContact())
	})
}

// contactLimiter keys the process-local rate limiter by source IP
func contactLimiter() func(http.Handler) http.Handler {
	responder := NewResponder(log.With().Str("handlerName", "contactLimiter").Logger())
	return httprate.Limit(
		contactRateLimit,
		contactRateWindow,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			responder.WriteError(w, errs.NewRateLimitedError("Too many contact form submissions, please try again later."))
		}),
	)
}

func healthHandler(startupTime time.Time) http.HandlerFunc {
	responder := NewResponder(log.With().Str("handlerName", "healthHandler").Logger())
	return func(w http.ResponseWriter, r *http.Request) {
		responder.WriteJSON(w, map[string]any{
			"status": "ok",
			"uptime": time.Since(startupTime).String(),
		})
	}
}
