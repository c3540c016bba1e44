package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerHost      string        `env:"SERVER_HOST"`
	ServerPort      string        `env:"SERVER_PORT" env-default:"8000"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"5s"`

	// OpenAI configuration
	OpenAIAPIKey     string        `env:"OPENAI_API_KEY"`
	OpenAIAPIKeyFile string        `env:"OPENAI_API_KEY_FILE"`
	OpenAIBaseURL    string        `env:"OPENAI_BASE_URL"`
	OpenAIModel      string        `env:"OPENAI_MODEL" env-default:"gpt-3.5-turbo"`
	OpenAIMaxTokens  int           `env:"OPENAI_MAX_TOKENS" env-default:"350"`
	OpenAITimeout    time.Duration `env:"OPENAI_TIMEOUT" env-default:"60s"`

	// CORS configuration
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"*"`

	// Catalog source. Empty values select the embedded catalog.
	CatalogPath     string `env:"CATALOG_PATH"`
	CatalogS3Bucket string `env:"CATALOG_S3_BUCKET"`
	CatalogS3Key    string `env:"CATALOG_S3_KEY"`

	// Observability
	LogLevel       string `env:"LOG_LEVEL" env-default:"info"`
	LogEncoding    string `env:"LOG_ENCODING"`
	MetricsEnabled bool   `env:"METRICS_ENABLED" env-default:"true"`

	Environment Environment
}

// LoadConfig creates a new Config instance with values from the environment,
// an optional .env file and an optional API key secret file
func LoadConfig() (*Config, error) {
	// A missing .env file is not an error; real environment variables win.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	cfg.Environment = GetEnvironment()
	if cfg.LogEncoding == "" {
		cfg.LogEncoding = "console"
		if cfg.Environment.IsProduction() {
			cfg.LogEncoding = "json"
		}
	}

	if err := loadAPIKey(cfg); err != nil {
		return nil, err
	}
	cfg.AllowedOrigins = normalizeOrigins(cfg.AllowedOrigins)

	// Validate the configuration
	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// loadAPIKey falls back to OPENAI_API_KEY_FILE when the key is not set directly
func loadAPIKey(cfg *Config) error {
	cfg.OpenAIAPIKey = strings.TrimSpace(cfg.OpenAIAPIKey)
	if cfg.OpenAIAPIKey != "" || cfg.OpenAIAPIKeyFile == "" {
		return nil
	}

	data, err := os.ReadFile(cfg.OpenAIAPIKeyFile)
	if err != nil {
		return fmt.Errorf("failed to read API key file: %w", err)
	}
	cfg.OpenAIAPIKey = strings.TrimSpace(string(data))
	return nil
}

func normalizeOrigins(origins []string) []string {
	out := make([]string, 0, len(origins))
	for _, o := range origins {
		o = strings.TrimSpace(o)
		if o != "" {
			out = append(out, strings.TrimSuffix(o, "/"))
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
