// Package illustration implements the orchestration pipeline that turns
// lesson text into illustrative images: it sequences search-term generation,
// fans out one image search per term concurrently, and aggregates the results
// into a single ordered response.
package illustration
