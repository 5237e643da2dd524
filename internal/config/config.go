package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
	Search SearchConfig `mapstructure:"search" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// LLMConfig contains all settings for the search-term generation capability.
type LLMConfig struct {
	// GeminiAPIKey authenticates calls to the Gemini API. Required; absence
	// is a fatal startup precondition, never a per-request error.
	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required"`

	// ModelName selects the Gemini model used for term generation.
	ModelName string `mapstructure:"model_name" validate:"required"`

	// PromptTemplatePath optionally overrides the embedded prompt template.
	PromptTemplatePath string `mapstructure:"prompt_template_path"`
}

// SearchConfig contains all settings for the image-search capability.
type SearchConfig struct {
	// APIKey authenticates calls to the Custom Search JSON API. Required.
	APIKey string `mapstructure:"api_key" validate:"required"`

	// EngineID identifies the programmable search engine (the search
	// context). Required.
	EngineID string `mapstructure:"engine_id" validate:"required"`

	// Endpoint optionally overrides the API base URL. Used by tests.
	Endpoint string `mapstructure:"endpoint"`
}
