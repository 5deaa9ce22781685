package config

import (
	"os"
	"strconv"
	"strings"
)

// Config carries all process configuration. Endpoints are resolved once
// here and never rewritten at runtime.
type Config struct {
	Port            string
	GeminiAPIKey    string
	GeminiModel     string
	BooksAPIBaseURL string
	CoverLookupRPS  int
	AllowedOrigins  []string
}

// Load reads configuration from the environment, applying defaults.
// A missing or implausible API key is not an error here: the summarize
// path degrades to mock summaries instead of refusing to start.
func Load() Config {
	cfg := Config{}

	cfg.Port = envOrDefault("PORT", "8080")
	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	cfg.GeminiModel = envOrDefault("GEMINI_MODEL", "gemini-2.5-flash")
	cfg.BooksAPIBaseURL = envOrDefault("BOOKS_API_BASE_URL", "https://www.googleapis.com/books/v1")
	cfg.CoverLookupRPS = parseIntEnv("COVER_LOOKUP_RPS", 10)

	cfg.AllowedOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173"}
	if extra := os.Getenv("ALLOWED_ORIGINS"); extra != "" {
		for _, origin := range strings.Split(extra, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
			}
		}
	}

	return cfg
}

func envOrDefault(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func parseIntEnv(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	num, err := strconv.Atoi(value)
	if err != nil || num <= 0 {
		return fallback
	}
	return num
}
