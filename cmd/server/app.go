package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/volunteer-api/internal/config"
	"github.com/phrazzld/volunteer-api/internal/platform/jsonfile"
	"github.com/phrazzld/volunteer-api/internal/service"
	"github.com/phrazzld/volunteer-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure a single construction path for the registry.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger

	// Store (interface for proper abstraction)
	documentStore store.DocumentStore

	// The registry: single owner of the user and activity collections
	registry *service.Registry
}

// newApplication creates a new application instance with all dependencies
// initialized. The registry is constructed exactly once here and handed
// to every caller by reference; no component reaches for ambient state.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	app.documentStore = jsonfile.NewStore(cfg.Store.Path, logger)

	registry, err := service.NewRegistry(ctx, app.documentStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize registry: %w", err)
	}
	app.registry = registry

	return app, nil
}
