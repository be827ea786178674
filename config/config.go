package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds every environment-driven setting the service needs. It is
// loaded once in main and handed to the components that need it, so nothing
// else in the codebase reads os.Getenv directly.
type Config struct {
	// HTTP server
	Port string

	// Document store
	MongoURI      string
	MongoDatabase string

	// Auth provider
	JWTSecret string
	JWTIssuer string

	// Generative-text service. When the API key is empty the service falls
	// back to the static advisor.
	OpenAIAPIKey string
	OpenAIModel  string

	// Observability
	SentryDSN   string
	LogLevel    string
	Environment string

	// Bound applied to every document-store and completion call.
	RequestTimeout time.Duration
}

func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "8080"),
		MongoURI:       getEnv("MONGO_URI", ""),
		MongoDatabase:  getEnv("MONGO_DATABASE", "finwise"),
		JWTSecret:      getEnv("AUTH_JWT_SECRET", ""),
		JWTIssuer:      getEnv("AUTH_ISSUER", ""),
		OpenAIAPIKey:   getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:    getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
		SentryDSN:      getEnv("SENTRY_DSN", ""),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		Environment:    getEnv("ENVIRONMENT", "production"),
		RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 10*time.Second),
	}
}

// Validate reports the settings without which the service cannot start.
func (c *Config) Validate() error {
	var missing []string
	if c.MongoURI == "" {
		missing = append(missing, "MONGO_URI")
	}
	if c.JWTSecret == "" {
		missing = append(missing, "AUTH_JWT_SECRET")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Development reports whether the service runs in development mode.
func (c *Config) Development() bool {
	return c.Environment == "development"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
