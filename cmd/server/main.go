// Package main implements the entry point for the volunteer activity
// matching server, which pairs registered users with volunteer
// activities based on availability, preferred categories, and location.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/phrazzld/volunteer-api/internal/config"
	"github.com/phrazzld/volunteer-api/internal/platform/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
}

// run loads configuration, sets up application components, and serves
// HTTP until interrupted.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"store_path", cfg.Store.Path)

	ctx := context.Background()

	app, err := newApplication(ctx, cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	if cfg.Store.SeedSampleData {
		if err := app.seedSampleActivities(ctx); err != nil {
			return fmt.Errorf("failed to seed sample activities: %w", err)
		}
	}

	return app.startHTTPServer(ctx, app.setupRouter())
}
