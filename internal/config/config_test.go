package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIBaseURL != "http://localhost:8080/api" {
		t.Fatalf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.Timeout != 15*time.Second {
		t.Fatalf("Timeout = %v", cfg.Timeout)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("LEADMAN_API_URL", "https://leads.example.com/api")
	t.Setenv("LEADMAN_HTTP_TIMEOUT", "3s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIBaseURL != "https://leads.example.com/api" {
		t.Fatalf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.Timeout != 3*time.Second {
		t.Fatalf("Timeout = %v", cfg.Timeout)
	}
}
