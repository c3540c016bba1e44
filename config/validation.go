package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks the loaded configuration and reports every problem at once
func ValidateConfig(cfg *Config) error {
	var errs []ValidationError

	if cfg.OpenAIAPIKey == "" {
		errs = append(errs, ValidationError{
			Field:   "OPENAI_API_KEY",
			Message: "missing OpenAI API key (set OPENAI_API_KEY or OPENAI_API_KEY_FILE)",
		})
	}
	if cfg.OpenAIModel == "" {
		errs = append(errs, ValidationError{Field: "OPENAI_MODEL", Message: "must not be empty"})
	}
	if cfg.OpenAIMaxTokens <= 0 {
		errs = append(errs, ValidationError{Field: "OPENAI_MAX_TOKENS", Message: "must be greater than zero"})
	}
	if cfg.OpenAITimeout < 0 {
		errs = append(errs, ValidationError{Field: "OPENAI_TIMEOUT", Message: "must not be negative"})
	}
	if cfg.ServerPort == "" {
		errs = append(errs, ValidationError{Field: "SERVER_PORT", Message: "must not be empty"})
	}

	for _, origin := range cfg.AllowedOrigins {
		if origin == "*" {
			continue
		}
		if !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			errs = append(errs, ValidationError{
				Field:   "CORS_ALLOWED_ORIGINS",
				Message: fmt.Sprintf("origin %q must be * or start with http:// or https://", origin),
			})
		}
	}

	if (cfg.CatalogS3Bucket == "") != (cfg.CatalogS3Key == "") {
		errs = append(errs, ValidationError{
			Field:   "CATALOG_S3_BUCKET",
			Message: "CATALOG_S3_BUCKET and CATALOG_S3_KEY must be set together",
		})
	}
	if cfg.CatalogS3Bucket != "" && cfg.CatalogPath != "" {
		errs = append(errs, ValidationError{
			Field:   "CATALOG_PATH",
			Message: "cannot be combined with an S3 catalog source",
		})
	}

	if len(errs) == 0 {
		return nil
	}

	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	return fmt.Errorf("%s", strings.Join(msgs, "\n"))
}
