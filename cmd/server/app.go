package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/illustrate-api/internal/api"
	"github.com/phrazzld/illustrate-api/internal/config"
	"github.com/phrazzld/illustrate-api/internal/illustration"
	"github.com/phrazzld/illustrate-api/internal/platform/gemini"
	"github.com/phrazzld/illustrate-api/internal/platform/googlesearch"
)

// application holds the assembled dependencies for the server.
type application struct {
	config              *config.Config
	logger              *slog.Logger
	illustrationService api.IllustrationService
}

// newApplication wires the upstream clients and the orchestration service
// together. Construction fails if either upstream client rejects its
// configuration.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	generator, err := gemini.NewTermGenerator(ctx, logger, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to create term generator: %w", err)
	}

	searcher, err := googlesearch.NewSearcher(ctx, logger, cfg.Search)
	if err != nil {
		return nil, fmt.Errorf("failed to create image searcher: %w", err)
	}

	service, err := illustration.NewService(generator, searcher, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create illustration service: %w", err)
	}

	return &application{
		config:              cfg,
		logger:              logger,
		illustrationService: service,
	}, nil
}
