package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Env             string
	ListenAddr      string
	DatabaseURL     string
	AnthropicAPIKey string
	AnthropicModel  string
	PageSpeedAPIKey string
	FormRelayURL    string
	RelayEmail      string
	ScanConcurrency int
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		var out int
		_, err := fmt.Sscanf(v, "%d", &out)
		if err == nil {
			return out
		}
	}
	return def
}

// Load reads configuration from the environment, with an optional .env file
// for local runs. DATABASE_URL and PAGESPEED_API_KEY are optional; a missing
// ANTHROPIC_API_KEY is surfaced as an error value so callers can decide
// whether report generation matters for their deployment.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Env:             getenv("APP_ENV", "development"),
		ListenAddr:      getenv("LISTEN_ADDR", ":8080"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		AnthropicModel:  getenv("ANTHROPIC_MODEL", "claude-sonnet-4-5-20250514"),
		PageSpeedAPIKey: os.Getenv("PAGESPEED_API_KEY"),
		FormRelayURL:    getenv("FORM_RELAY_URL", "https://formsubmit.co/ajax"),
		RelayEmail:      getenv("RELAY_EMAIL", "hello@leadfair.ai"),
		ScanConcurrency: getenvInt("SCAN_CONCURRENCY", 4),
	}
	if cfg.AnthropicAPIKey == "" {
		return cfg, fmt.Errorf("ANTHROPIC_API_KEY not set; report generation will fail")
	}
	return cfg, nil
}
