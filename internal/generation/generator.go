package generation

import (
	"context"
)

// TermCount is the number of search phrases derived from each lesson text.
// The prompt, the response validation, and the downstream search fan-out all
// depend on this value.
const TermCount = 3

// TermGenerator defines the interface for deriving image-search phrases from
// lesson text. This interface serves as a boundary between the application
// core and external AI/LLM services, following the hexagonal architecture
// pattern.
type TermGenerator interface {
	// GenerateSearchTerms derives exactly TermCount search phrases from the
	// provided lesson text.
	//
	// Parameters:
	//   - ctx: Context for the operation, which can be used for cancellation
	//   - lessonText: The lesson text to derive phrases from; may be empty
	//
	// Returns:
	//   - An ordered slice of exactly TermCount non-empty phrase strings
	//   - An error if generation fails (see errors.go for specific types)
	GenerateSearchTerms(ctx context.Context, lessonText string) ([]string, error)
}
