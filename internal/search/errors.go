package search

import "errors"

// Common errors returned by the search package
var (
	// ErrSearchFailed is returned when the upstream image-search call fails
	// for transport or API-status reasons
	ErrSearchFailed = errors.New("image search request failed")

	// ErrEmptyQuery is returned when SearchImages is called with an empty query
	ErrEmptyQuery = errors.New("search query cannot be empty")

	// ErrInvalidConfig is returned when the searcher configuration is invalid
	ErrInvalidConfig = errors.New("invalid searcher configuration")
)
