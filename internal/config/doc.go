// Package config handles loading and validating application configuration
// from environment variables.
package config
