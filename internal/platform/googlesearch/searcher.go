package googlesearch

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"

	"github.com/phrazzld/illustrate-api/internal/config"
	"github.com/phrazzld/illustrate-api/internal/search"
)

// searchType fixes every request to image search; this service never issues
// web searches.
const searchType = "image"

// Searcher implements the search.ImageSearcher interface using the Custom
// Search JSON API.
type Searcher struct {
	// logger is used for structured logging
	logger *slog.Logger

	// service is the Custom Search API client
	service *customsearch.Service

	// engineID identifies the programmable search engine for every query
	engineID string
}

// NewSearcher creates a new Searcher with the provided dependencies.
//
// Missing credentials fail at construction wrapping search.ErrInvalidConfig;
// credential problems are a startup precondition, not a per-request error.
// cfg.Endpoint, when set, overrides the API base URL (used by tests).
//
// Parameters:
//   - ctx: Context for client construction
//   - logger: A structured logger for operation logging
//   - cfg: Search configuration containing the API key and engine ID
//
// Returns:
//   - A properly initialized Searcher or an error if initialization fails
func NewSearcher(ctx context.Context, logger *slog.Logger, cfg config.SearchConfig) (*Searcher, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: search API key cannot be empty", search.ErrInvalidConfig)
	}

	if cfg.EngineID == "" {
		return nil, fmt.Errorf("%w: search engine ID cannot be empty", search.ErrInvalidConfig)
	}

	opts := []option.ClientOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}

	service, err := customsearch.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create custom search client: %v",
			search.ErrInvalidConfig, err)
	}

	return &Searcher{
		logger:   logger,
		service:  service,
		engineID: cfg.EngineID,
	}, nil
}

// SearchImages queries the Custom Search API with the given phrase in image
// mode and maps each returned item to a search.ImageResult, preserving the
// API's result order. A response with no items yields an empty slice, not an
// error. Transport or API-status failures wrap search.ErrSearchFailed,
// annotated with the query that triggered them.
func (s *Searcher) SearchImages(ctx context.Context, query string) ([]search.ImageResult, error) {
	if query == "" {
		return nil, search.ErrEmptyQuery
	}

	s.logger.DebugContext(ctx, "calling custom search API",
		"query", query)

	resp, err := s.service.Cse.List().
		Q(query).
		Cx(s.engineID).
		SearchType(searchType).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("%w: query %q: %v", search.ErrSearchFailed, query, err)
	}

	results := make([]search.ImageResult, 0, len(resp.Items))
	for _, item := range resp.Items {
		results = append(results, search.ImageResult{
			Link:        item.Link,
			DisplayLink: item.DisplayLink,
			Title:       item.Title,
		})
	}

	s.logger.DebugContext(ctx, "custom search API call completed",
		"query", query,
		"result_count", len(results))

	return results, nil
}
