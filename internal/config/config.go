package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DBPath        string
	MigrationsDir string
	CORSOrigins   []string

	OllamaBaseURL string
	OllamaModel   string
	CoachTimeout  time.Duration

	WebhookURL     string
	WebhookTimeout time.Duration

	AlarmAudioURL    string
	AutoBreakEnabled bool
	AutoBreakMinutes int
}

func Load() Config {
	// A missing .env file is fine; real env vars always win.
	_ = godotenv.Load()

	return Config{
		Port:          getEnv("PORT", "8080"),
		DBPath:        getEnv("FOCUS_DB_PATH", "./data/focus.db"),
		MigrationsDir: getEnv("MIGRATIONS_DIR", "./migrations"),
		CORSOrigins:   getEnvList("CORS_ORIGINS", []string{"http://localhost:5173", "http://127.0.0.1:5173"}),

		OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://127.0.0.1:11434"),
		OllamaModel:   getEnv("OLLAMA_MODEL", "llama3.1:8b"),
		CoachTimeout:  time.Duration(getEnvInt("COACH_TIMEOUT_SECONDS", 30)) * time.Second,

		WebhookURL:     getEnv("N8N_WEBHOOK_URL", ""),
		WebhookTimeout: time.Duration(getEnvInt("WEBHOOK_TIMEOUT_SECONDS", 5)) * time.Second,

		AlarmAudioURL:    getEnv("ALARM_AUDIO_URL", ""),
		AutoBreakEnabled: getEnvBool("AUTO_BREAK_ENABLED", true),
		AutoBreakMinutes: getEnvInt("AUTO_BREAK_MINUTES", 5),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return strings.EqualFold(value, "true") || value == "1"
}

func getEnvList(key string, fallback []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			items = append(items, trimmed)
		}
	}
	if len(items) == 0 {
		return fallback
	}
	return items
}
