// Package main implements the entry point for the illustration API server,
// which turns lesson text into a set of illustrative images via LLM-derived
// search terms and concurrent image searches.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/phrazzld/illustrate-api/internal/config"
	"github.com/phrazzld/illustrate-api/internal/platform/logger"
)

// main initializes configuration, logging, and the upstream API clients, then
// starts the HTTP server. Any initialization failure is fatal; in particular,
// missing credentials stop the process before a single request is served.
func main() {
	ctx := context.Background()

	app, err := initializeApp(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up application components.
// Returns the assembled application and any initialization error.
func initializeApp(ctx context.Context) (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	l := logger.Setup(cfg.Server)

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"model", cfg.LLM.ModelName)

	app, err := newApplication(ctx, cfg, l)
	if err != nil {
		return nil, fmt.Errorf("failed to build application: %w", err)
	}

	return app, nil
}
