// Package googlesearch implements the search.ImageSearcher interface using
// the Google Custom Search JSON API in image mode. Each query is resolved
// through a programmable search engine identified by the configured engine ID.
package googlesearch
