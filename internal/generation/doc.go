// Package generation provides interfaces and implementations for interacting
// with external AI/LLM services for search-term generation. It abstracts the
// details of LLM API integration (Gemini), allowing the application to derive
// image-search phrases from lesson text without coupling to specific external
// services.
package generation
