package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/phrazzld/volunteer-api/internal/api"
	apiMiddleware "github.com/phrazzld/volunteer-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware) // Add trace IDs for log correlation

	// Create API handlers using the application's registry
	userHandler := api.NewUserHandler(app.registry, app.logger)
	activityHandler := api.NewActivityHandler(app.registry, app.logger)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		// User endpoints
		r.Post("/users", userHandler.Register)
		r.Get("/users/{id}/matches", userHandler.GetMatches)
		r.Get("/users/{id}/activities", userHandler.ListJoinedActivities)
		r.Post("/users/{id}/registrations", userHandler.CreateRegistration)
		r.Delete("/users/{id}/registrations/{activityID}", userHandler.DeleteRegistration)

		// Activity endpoints
		r.Post("/activities", activityHandler.Create)
		r.Get("/activities", activityHandler.List)

		// Overview totals
		r.Get("/stats", activityHandler.GetStats)
	})

	// Prometheus metrics
	r.Handle("/metrics", promhttp.Handler())

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
