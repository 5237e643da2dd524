// Package search provides interfaces and types for querying external
// image-search services. It abstracts the details of the search API
// integration (Google Programmable Search), allowing the application to
// resolve search phrases into image metadata without coupling to a specific
// provider.
package search
