package config

import "testing"

func setRequiredEnv(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("JWT_SECRET_KEY", "test-signing-key")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Database.MaxConns != 25 {
		t.Errorf("expected default MaxConns 25, got %d", cfg.Database.MaxConns)
	}
	if cfg.Database.MinConns != 5 {
		t.Errorf("expected default MinConns 5, got %d", cfg.Database.MinConns)
	}
	if cfg.App.FrontendURL != "http://localhost:3000" {
		t.Errorf("unexpected default FrontendURL %q", cfg.App.FrontendURL)
	}
	if cfg.App.LogLevel != "info" {
		t.Errorf("unexpected default LogLevel %q", cfg.App.LogLevel)
	}
}

func TestLoadPoolSettings(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_MAX_CONNS", "50")
	t.Setenv("DB_MIN_CONNS", "10")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Database.MaxConns != 50 {
		t.Errorf("expected MaxConns 50, got %d", cfg.Database.MaxConns)
	}
	if cfg.Database.MinConns != 10 {
		t.Errorf("expected MinConns 10, got %d", cfg.Database.MinConns)
	}
}

func TestLoadRejectsInvertedPoolBounds(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_MAX_CONNS", "5")
	t.Setenv("DB_MIN_CONNS", "10")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when DB_MIN_CONNS exceeds DB_MAX_CONNS")
	}
}

func TestLoadRejectsMissingSecrets(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("JWT_SECRET_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when JWT_SECRET_KEY is missing")
	}
}
