package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/illustrate-api/internal/generation"
	"github.com/phrazzld/illustrate-api/internal/search"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
//
// Malformed model output is the client-visible 400 case; every upstream
// transport or API failure surfaces as 502 Bad Gateway.
func MapErrorToStatusCode(err error) int {
	switch {
	// The model returned output that failed the term-list contract
	case errors.Is(err, generation.ErrInvalidResponse):
		return http.StatusBadRequest

	// Upstream failures: completion capability
	case errors.Is(err, generation.ErrGenerationFailed),
		errors.Is(err, generation.ErrContentBlocked):
		return http.StatusBadGateway

	// Upstream failures: search capability
	case errors.Is(err, search.ErrSearchFailed):
		return http.StatusBadGateway

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, generation.ErrInvalidResponse):
		return "The language model returned an unusable response"

	case errors.Is(err, generation.ErrContentBlocked):
		return "The lesson text was rejected by the language model's safety filters"

	case errors.Is(err, generation.ErrGenerationFailed):
		return "Search term generation failed"

	case errors.Is(err, search.ErrSearchFailed):
		return "Image search failed"

	default:
		return "An unexpected error occurred"
	}
}
