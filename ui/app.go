// Package ui is the upload front end: a small web app that accepts a data
// file, runs the group comparator on two chosen columns (or a full pairwise
// sweep) and renders the verdict.
package ui

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"neurometrics/internal"
	"neurometrics/internal/config"
	"neurometrics/ports"
)

//go:embed templates/*
var embeddedFiles embed.FS

// App represents the UI application
type App struct {
	router    *chi.Mux
	templates *template.Template
	cfg       *config.Config
	logger    *internal.Logger
	repo      ports.ComparisonRepository // nil when history is disabled
}

// NewApp creates a new UI application. repo may be nil.
func NewApp(cfg *config.Config, logger *internal.Logger, repo ports.ComparisonRepository) (*App, error) {
	templates, err := template.New("").ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	app := &App{
		router:    chi.NewRouter(),
		templates: templates,
		cfg:       cfg,
		logger:    logger,
		repo:      repo,
	}

	app.setupMiddleware()
	app.setupRoutes()

	return app, nil
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

// setupRoutes configures the upload and comparison routes
func (a *App) setupRoutes() {
	a.router.Get("/", a.handleIndex)
	a.router.Post("/compare", a.handleCompare)
	a.router.Post("/sweep", a.handleSweep)
}

// Start runs the HTTP server on the configured port.
func (a *App) Start() error {
	addr := ":" + a.cfg.Server.Port
	a.logger.Info("upload UI listening on %s", addr)
	return http.ListenAndServe(addr, a.router)
}

// Router exposes the underlying handler, used by tests.
func (a *App) Router() http.Handler {
	return a.router
}
