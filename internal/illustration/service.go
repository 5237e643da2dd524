package illustration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/phrazzld/illustrate-api/internal/generation"
	"github.com/phrazzld/illustrate-api/internal/search"
)

// Result is the aggregated response of one pipeline run. It is constructed
// once at the end of a successful run and never mutated afterwards.
type Result struct {
	// SearchTerms is the ordered set of phrases derived from the lesson text
	SearchTerms []string

	// Images is the flattened result list: phrase order first, then the
	// per-phrase order returned by the search capability
	Images []search.ImageResult
}

// Service orchestrates the two-stage pipeline. It holds no per-request state
// and is safe for concurrent use across requests.
type Service struct {
	generator generation.TermGenerator
	searcher  search.ImageSearcher
	logger    *slog.Logger
}

// NewService creates a new illustration Service with the provided dependencies.
//
// Parameters:
//   - generator: The term generator used to derive search phrases
//   - searcher: The image searcher invoked once per phrase
//   - logger: A structured logger for operation logging
//
// Returns:
//   - A properly initialized Service or an error if any dependency is nil
func NewService(
	generator generation.TermGenerator,
	searcher search.ImageSearcher,
	logger *slog.Logger,
) (*Service, error) {
	if generator == nil {
		return nil, errors.New("term generator cannot be nil")
	}
	if searcher == nil {
		return nil, errors.New("image searcher cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &Service{
		generator: generator,
		searcher:  searcher,
		logger:    logger,
	}, nil
}

// GenerateIllustrations runs the full pipeline for one lesson text.
//
// Step 1 derives the search phrases; any failure short-circuits the pipeline
// before a single search call is issued. Step 2 fans out one search per phrase
// concurrently, so the wall-clock cost of this step is roughly one search
// round-trip rather than three. Step 3 joins the searches and flattens their
// results in phrase order. If any one search fails the whole call fails; the
// group context cancels the remaining in-flight searches, whose results would
// be discarded anyway.
//
// Parameters:
//   - ctx: Context for the operation, threaded through every outbound call
//   - lessonText: The raw lesson text; may be empty
//
// Returns:
//   - The aggregated Result on success
//   - An error wrapping generation.* or search.* sentinels on failure
func (s *Service) GenerateIllustrations(ctx context.Context, lessonText string) (*Result, error) {
	terms, err := s.generator.GenerateSearchTerms(ctx, lessonText)
	if err != nil {
		s.logger.ErrorContext(ctx, "search term generation failed",
			"error", err,
			"lesson_length", len(lessonText))
		return nil, fmt.Errorf("generating search terms: %w", err)
	}

	s.logger.DebugContext(ctx, "search terms generated",
		"terms", terms)

	perTerm := make([][]search.ImageResult, len(terms))

	g, gctx := errgroup.WithContext(ctx)
	for i, term := range terms {
		g.Go(func() error {
			images, err := s.searcher.SearchImages(gctx, term)
			if err != nil {
				return fmt.Errorf("searching images for %q: %w", term, err)
			}
			perTerm[i] = images
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.logger.ErrorContext(ctx, "image search fan-out failed",
			"error", err,
			"term_count", len(terms))
		return nil, err
	}

	var images []search.ImageResult
	for _, batch := range perTerm {
		images = append(images, batch...)
	}
	if images == nil {
		images = []search.ImageResult{}
	}

	s.logger.InfoContext(ctx, "illustration pipeline completed",
		"term_count", len(terms),
		"image_count", len(images))

	return &Result{
		SearchTerms: terms,
		Images:      images,
	}, nil
}
