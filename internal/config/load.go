package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// envPrefix is the prefix for all environment variables read by Load,
// e.g. ILLUSTRATE_LLM_GEMINI_API_KEY maps to llm.gemini_api_key.
const envPrefix = "ILLUSTRATE"

// Load reads configuration from environment variables, applies defaults, and
// validates the result. Returns a populated Config struct or an error if a
// required setting is missing or invalid. A Load failure is a fatal startup
// condition; no request is ever processed with incomplete credentials.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("llm.model_name", "gemini-2.0-flash")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv alone does not surface env-only keys through Unmarshal;
	// each key has to be bound explicitly.
	for _, key := range []string{
		"server.port",
		"server.log_level",
		"llm.gemini_api_key",
		"llm.model_name",
		"llm.prompt_template_path",
		"search.api_key",
		"search.engine_id",
		"search.endpoint",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}
