package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "5000", cfg.Port)
	assert.NotEmpty(t, cfg.DBPath)
	assert.Equal(t, "gemini", cfg.GenAIBackend)
	assert.Equal(t, "gemini-2.0-flash-exp", cfg.GeminiModel)
}

func TestLoadCustomValues(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DB_PATH", "/custom/db.sqlite")
	t.Setenv("GENAI_BACKEND", "anthropic")
	t.Setenv("ANTHROPIC_API_KEY", "sk-test123")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "/custom/db.sqlite", cfg.DBPath)
	assert.Equal(t, "anthropic", cfg.GenAIBackend)
	assert.Equal(t, "sk-test123", cfg.AnthropicAPIKey)
}

func TestAPIKeyFollowsBackend(t *testing.T) {
	cfg := &Config{GenAIBackend: "gemini", GeminiAPIKey: "g-key", AnthropicAPIKey: "a-key"}
	assert.Equal(t, "g-key", cfg.APIKey())

	cfg.GenAIBackend = "anthropic"
	assert.Equal(t, "a-key", cfg.APIKey())
}

func TestAPIKeyEmptyMeansDemoMode(t *testing.T) {
	cfg := &Config{GenAIBackend: "gemini"}
	assert.Empty(t, cfg.APIKey())
}
