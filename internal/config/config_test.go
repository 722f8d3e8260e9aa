package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("CONFIDENCE_THRESHOLD", "")
	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Fatalf("expected default env, got %s", cfg.Env)
	}
	if cfg.ConfidenceThreshold != 0.15 {
		t.Fatalf("expected default confidence threshold, got %f", cfg.ConfidenceThreshold)
	}
	if cfg.ModelPath != "data/model.json" {
		t.Fatalf("expected default model path, got %s", cfg.ModelPath)
	}
	if cfg.LogResponseMax != 100 {
		t.Fatalf("expected default log response max, got %d", cfg.LogResponseMax)
	}
	if cfg.ShutdownTimeout != 30*time.Second {
		t.Fatalf("expected default shutdown timeout, got %s", cfg.ShutdownTimeout)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("CONFIDENCE_THRESHOLD", "0.25")
	t.Setenv("DATABASE_URL", "postgres://user@host/db")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_TLS", "true")
	t.Setenv("RANDOM_SEED", "42")
	t.Setenv("SHUTDOWN_TIMEOUT", "10s")
	cfg := Load()
	if cfg.Port != "9090" {
		t.Fatalf("expected override port, got %s", cfg.Port)
	}
	if cfg.ConfidenceThreshold != 0.25 {
		t.Fatalf("expected threshold override, got %f", cfg.ConfidenceThreshold)
	}
	if cfg.DatabaseURL != "postgres://user@host/db" {
		t.Fatalf("expected db override, got %s", cfg.DatabaseURL)
	}
	if !cfg.RedisTLS {
		t.Fatalf("expected redis tls enabled")
	}
	if cfg.RandomSeed != 42 {
		t.Fatalf("expected seed override, got %d", cfg.RandomSeed)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("expected shutdown timeout override, got %s", cfg.ShutdownTimeout)
	}
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("CONFIDENCE_THRESHOLD", "not-a-number")
	t.Setenv("REDIS_TLS", "maybe")
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")
	cfg := Load()
	if cfg.ConfidenceThreshold != 0.15 {
		t.Fatalf("expected fallback threshold, got %f", cfg.ConfidenceThreshold)
	}
	if cfg.RedisTLS {
		t.Fatalf("expected fallback redis tls false")
	}
	if cfg.ShutdownTimeout != 30*time.Second {
		t.Fatalf("expected fallback shutdown timeout, got %s", cfg.ShutdownTimeout)
	}
}
