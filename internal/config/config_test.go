package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "./data/focus.db", cfg.DBPath)
	assert.Equal(t, "http://127.0.0.1:11434", cfg.OllamaBaseURL)
	assert.Equal(t, "llama3.1:8b", cfg.OllamaModel)
	assert.Equal(t, 30*time.Second, cfg.CoachTimeout)
	assert.Equal(t, 5*time.Second, cfg.WebhookTimeout)
	assert.Empty(t, cfg.WebhookURL)
	assert.True(t, cfg.AutoBreakEnabled)
	assert.Equal(t, 5, cfg.AutoBreakMinutes)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("FOCUS_DB_PATH", "/tmp/focus-test.db")
	t.Setenv("OLLAMA_MODEL", "qwen2.5:3b")
	t.Setenv("N8N_WEBHOOK_URL", "https://hooks.example.com/focus")
	t.Setenv("AUTO_BREAK_ENABLED", "false")
	t.Setenv("AUTO_BREAK_MINUTES", "10")
	t.Setenv("CORS_ORIGINS", "https://app.example.com, https://staging.example.com")

	cfg := Load()

	assert.Equal(t, "/tmp/focus-test.db", cfg.DBPath)
	assert.Equal(t, "qwen2.5:3b", cfg.OllamaModel)
	assert.Equal(t, "https://hooks.example.com/focus", cfg.WebhookURL)
	assert.False(t, cfg.AutoBreakEnabled)
	assert.Equal(t, 10, cfg.AutoBreakMinutes)
	assert.Equal(t, []string{"https://app.example.com", "https://staging.example.com"}, cfg.CORSOrigins)
}

func TestGetEnvBoolParsing(t *testing.T) {
	cases := map[string]bool{
		"true":  true,
		"TRUE":  true,
		"1":     true,
		"false": false,
		"0":     false,
		"yes":   false,
	}

	for raw, want := range cases {
		t.Setenv("AUTO_BREAK_ENABLED", raw)
		assert.Equal(t, want, getEnvBool("AUTO_BREAK_ENABLED", true), "value %q", raw)
	}
}

func TestGetEnvIntBadValueFallsBack(t *testing.T) {
	t.Setenv("AUTO_BREAK_MINUTES", "soon")
	assert.Equal(t, 5, getEnvInt("AUTO_BREAK_MINUTES", 5))
}
