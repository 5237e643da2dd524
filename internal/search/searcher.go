package search

import (
	"context"
)

// ImageResult is the normalized record for a single image returned by the
// search capability. Duplicate links across different queries are permitted
// and never deduplicated.
type ImageResult struct {
	// Link is the direct URL of the image
	Link string `json:"link"`

	// DisplayLink is the hostname of the page the image was found on
	DisplayLink string `json:"display_link"`

	// Title is the title of the page the image was found on
	Title string `json:"title"`
}

// ImageSearcher defines the interface for resolving one search phrase into an
// ordered list of image results. Implementations must preserve the order the
// underlying service returns results in.
type ImageSearcher interface {
	// SearchImages queries the image-search capability with the given phrase.
	//
	// Parameters:
	//   - ctx: Context for the operation, which can be used for cancellation
	//   - query: The search phrase; must be non-empty
	//
	// Returns:
	//   - An ordered slice of image results; empty (never nil) when the
	//     service returns no items
	//   - An error wrapping ErrSearchFailed on transport or API failure
	SearchImages(ctx context.Context, query string) ([]ImageResult, error)
}
