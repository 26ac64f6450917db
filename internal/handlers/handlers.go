package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMid "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"delizur.dev/internal/config"
	"delizur.dev/internal/logging"
	"delizur.dev/internal/middleware"
	"delizur.dev/internal/models"
	"delizur.dev/internal/services"
)

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, projects []models.Project, logger *zap.Logger) http.Handler {
	logger = logging.OrNop(logger)
	r := chi.NewRouter()

	// Middleware
	r.Use(chiMid.RequestID)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.RangeHeaders)

	projectHandler := NewProjectHandler(services.NewProjectService(projects), logger)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{slug}", projectHandler.GetProject)

		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, logger, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	// Everything else is the static site, generated project pages included
	site := NewSiteHandler(cfg.SiteRoot)
	r.Get("/*", site.ServeHTTP)
	r.Head("/*", site.ServeHTTP)

	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, logger *zap.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Warn("encoding JSON response", zap.Error(err))
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, logger *zap.Logger, status int, message string) {
	respondJSON(w, logger, status, map[string]string{"error": message})
}
