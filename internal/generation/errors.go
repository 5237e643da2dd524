package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrGenerationFailed is returned when the upstream LLM call fails for
	// transport or API-status reasons
	ErrGenerationFailed = errors.New("failed to generate search terms from text")

	// ErrInvalidResponse is returned when the LLM response cannot be parsed or
	// does not satisfy the term-list contract
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the LLM blocks the content due to safety filters
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
