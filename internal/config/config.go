package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds client-side settings. Everything server-side (validation,
// persistence, auth) lives behind the API base URL.
type Config struct {
	// APIBaseURL is the backend base path, including the /api prefix.
	APIBaseURL string `env:"LEADMAN_API_URL" envDefault:"http://localhost:8080/api"`

	// Timeout bounds every request round-trip; there is no per-call override.
	Timeout time.Duration `env:"LEADMAN_HTTP_TIMEOUT" envDefault:"15s"`
}

// Load reads configuration from the environment, with a best-effort .env
// load first so local development mirrors deployed setups.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
