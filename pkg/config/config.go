package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Extraction strategies selectable via EXTRACTION_STRATEGY.
const (
	StrategyHeuristic = "heuristic"
	StrategyAI        = "ai"
)

type Config struct {
	Port        string
	DatabaseURL string

	// Profiler selection: "heuristic" (default) or "ai".
	ExtractionStrategy string

	OpenRouterAPIKey   string
	OpenRouterBase     string
	OpenRouterModel    string
	OpenRouterAppTitle string
	OpenRouterReferer  string

	// Request body ceiling in megabytes.
	MaxUploadMB int
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:               getEnv("PORT", "8080"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		ExtractionStrategy: getEnv("EXTRACTION_STRATEGY", StrategyHeuristic),
		OpenRouterAPIKey:   os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterBase:     os.Getenv("OPENROUTER_BASE_URL"),
		OpenRouterModel:    getEnv("OPENROUTER_MODEL", "qwen/qwen2.5-32b-instruct"),
		OpenRouterAppTitle: getEnv("OPENROUTER_APP_TITLE", "resume-ingest"),
		OpenRouterReferer:  os.Getenv("OPENROUTER_REFERER"),
		MaxUploadMB:        getEnvInt("MAX_UPLOAD_MB", 15),
	}
	if cfg.ExtractionStrategy != StrategyAI {
		cfg.ExtractionStrategy = StrategyHeuristic
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
