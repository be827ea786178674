package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "finwise", cfg.MongoDatabase)
	assert.Equal(t, "gpt-3.5-turbo", cfg.OpenAIModel)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.False(t, cfg.Development())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("REQUEST_TIMEOUT", "3s")

	cfg := Load()

	assert.Equal(t, "9999", cfg.Port)
	assert.True(t, cfg.Development())
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
}

func TestLoadBadDurationFallsBack(t *testing.T) {
	t.Setenv("REQUEST_TIMEOUT", "soon")

	cfg := Load()

	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	err := cfg.Validate()
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "MONGO_URI")
		assert.Contains(t, err.Error(), "AUTH_JWT_SECRET")
	}

	cfg.MongoURI = "mongodb://localhost:27017"
	cfg.JWTSecret = "secret"
	assert.NoError(t, cfg.Validate())
}
