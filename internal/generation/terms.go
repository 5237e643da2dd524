package generation

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseTermList validates the raw textual output of the language model against
// the term-list contract: a JSON array of exactly TermCount non-empty strings.
//
// The raw output may be wrapped in a markdown code fence, which is stripped
// before parsing; models routinely fence JSON despite being told not to.
// Every contract violation returns an error wrapping ErrInvalidResponse so the
// caller can map all malformed output to a single failure mode.
//
// Parameters:
//   - raw: The verbatim text returned by the completion capability
//
// Returns:
//   - The validated, ordered slice of TermCount phrase strings
//   - An error wrapping ErrInvalidResponse if the output is malformed
func ParseTermList(raw string) ([]string, error) {
	cleaned := stripCodeFence(raw)

	var parsed interface{}
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return nil, fmt.Errorf("%w: output is not valid JSON: %v", ErrInvalidResponse, err)
	}

	items, ok := parsed.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: expected a JSON array, got %T", ErrInvalidResponse, parsed)
	}

	if len(items) != TermCount {
		return nil, fmt.Errorf("%w: expected %d terms, got %d", ErrInvalidResponse, TermCount, len(items))
	}

	terms := make([]string, 0, TermCount)
	for i, item := range items {
		term, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%w: term %d is not a string", ErrInvalidResponse, i)
		}

		term = strings.TrimSpace(term)
		if term == "" {
			return nil, fmt.Errorf("%w: term %d is empty", ErrInvalidResponse, i)
		}

		terms = append(terms, term)
	}

	return terms, nil
}

// stripCodeFence removes a surrounding markdown code fence (``` or ```json)
// from the model output, if present.
func stripCodeFence(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```")
	// Drop an optional language tag on the opening fence line.
	if idx := strings.Index(trimmed, "\n"); idx >= 0 {
		firstLine := strings.TrimSpace(trimmed[:idx])
		if firstLine == "" || firstLine == "json" {
			trimmed = trimmed[idx+1:]
		}
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")

	return strings.TrimSpace(trimmed)
}
