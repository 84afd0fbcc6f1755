package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jsamuelsen11/taskboard/internal/platform/config"
)

func TestLoad_LocalProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want \"debug\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want \"text\"", cfg.Log.Format)
	}
	if cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = true, want false for local")
	}
	if cfg.Auth.Mode != config.AuthModeLocal {
		t.Errorf("Auth.Mode = %q, want %q", cfg.Auth.Mode, config.AuthModeLocal)
	}
	if cfg.Auth.SharedSecret == "" {
		t.Error("Auth.SharedSecret is empty, want non-empty for local")
	}
}

func TestLoad_ProdProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("prod")
	if err != nil {
		t.Fatalf("Load(\"prod\") error: %v", err)
	}

	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want \"info\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want \"json\"", cfg.Log.Format)
	}
	if !cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = false, want true for prod")
	}
	if cfg.Telemetry.Exporter != "otlp" {
		t.Errorf("Telemetry.Exporter = %q, want \"otlp\"", cfg.Telemetry.Exporter)
	}
	if cfg.Telemetry.Endpoint == "" {
		t.Error("Telemetry.Endpoint is empty, want non-empty for prod")
	}
	if cfg.Auth.Mode != config.AuthModeJWKS {
		t.Errorf("Auth.Mode = %q, want %q", cfg.Auth.Mode, config.AuthModeJWKS)
	}
	if cfg.Client.RateLimit.RequestsPerSecond <= 0 {
		t.Error("Client.RateLimit.RequestsPerSecond <= 0, want rate limiting in prod")
	}
}

func TestLoad_BaseConfigInheritance(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	// These come from base.yaml, not overridden by local.yaml.
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Server.Host = %q, want \"127.0.0.1\" (from base)", cfg.Server.Host)
	}
	if cfg.Client.BaseURL != "http://localhost:5000/api" {
		t.Errorf("Client.BaseURL = %q, want the local task API (from base)", cfg.Client.BaseURL)
	}
	if !cfg.Board.Color {
		t.Error("Board.Color = false, want true (from base)")
	}
	if cfg.Client.CircuitBreaker.MaxFailures != 5 {
		t.Errorf("Client.CircuitBreaker.MaxFailures = %d, want 5 (from base)",
			cfg.Client.CircuitBreaker.MaxFailures)
	}
}

func TestLoad_EnvOverrideSimpleKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_SERVER_PORT", "9090")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090 (env override)", cfg.Server.Port)
	}
}

func TestLoad_EnvOverrideSnakeCaseKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_SERVER_READ_TIMEOUT", "15s")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	want := 15 * time.Second
	if cfg.Server.ReadTimeout != want {
		t.Errorf("Server.ReadTimeout = %v, want %v (env override)", cfg.Server.ReadTimeout, want)
	}
}

func TestLoad_EnvOverrideDeeplyNestedKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_CLIENT_CIRCUIT_BREAKER_MAX_FAILURES", "7")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Client.CircuitBreaker.MaxFailures != 7 {
		t.Errorf("Client.CircuitBreaker.MaxFailures = %d, want 7 (env override)",
			cfg.Client.CircuitBreaker.MaxFailures)
	}
}

func TestLoad_EnvOverrideIDToken(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_AUTH_ID_TOKEN", "header.payload.signature")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Auth.IDToken != "header.payload.signature" {
		t.Errorf("Auth.IDToken = %q, want env value", cfg.Auth.IDToken)
	}
}

func TestLoad_DefaultsFillMissingKeys(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	// telemetry.endpoint is absent from base.yaml and local.yaml.
	if cfg.Telemetry.Endpoint != "" {
		t.Errorf("Telemetry.Endpoint = %q, want empty default", cfg.Telemetry.Endpoint)
	}
	if cfg.Auth.JWKSRefresh != time.Hour {
		t.Errorf("Auth.JWKSRefresh = %v, want 1h", cfg.Auth.JWKSRefresh)
	}
}

func TestLoad_InvalidProfileName(t *testing.T) {
	t.Parallel()

	for _, profile := range []string{"", "  ", "../etc", "a/b"} {
		if _, err := config.Load(profile); err == nil {
			t.Errorf("Load(%q) returned nil error, want error", profile)
		}
	}
}

func TestLoad_MissingProfile(t *testing.T) {
	t.Chdir("../../..")

	_, err := config.Load("nonexistent")
	if err == nil {
		t.Fatal("Load(\"nonexistent\") returned nil error, want error")
	}
}

func TestLoad_NoConfigDirUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load("local", config.WithConfigDir(filepath.Join(t.TempDir(), "missing")))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Auth.Mode != config.AuthModeJWKS {
		t.Errorf("Auth.Mode = %q, want default %q", cfg.Auth.Mode, config.AuthModeJWKS)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want default 8080", cfg.Server.Port)
	}
}

func TestLoad_BaseConfigOptional(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	profile := "log:\n  level: warn\n"
	if err := os.WriteFile(filepath.Join(dir, "ci.yaml"), []byte(profile), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load("ci", config.WithConfigDir(dir))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want \"warn\" (from profile)", cfg.Log.Level)
	}
}

func TestLoad_ConfigDirFromEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "ci.yaml"), []byte("server:\n  port: 7070\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(config.ConfigDirEnv, dir)

	cfg, err := config.Load("ci")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("Server.Port = %d, want 7070", cfg.Server.Port)
	}
}

// validBaseConfig returns a Config with all fields set to valid values.
func validBaseConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		Log: config.LogConfig{
			Level:  "info",
			Format: "json",
		},
		Client: config.ClientConfig{
			BaseURL: "http://localhost:5000/api",
			Timeout: 10 * time.Second,
			RateLimit: config.RateLimitConfig{
				RequestsPerSecond: 0,
				Burst:             1,
			},
			CircuitBreaker: config.CircuitBreakerConfig{
				MaxFailures:   5,
				Timeout:       30 * time.Second,
				HalfOpenLimit: 1,
			},
		},
		Telemetry: config.TelemetryConfig{
			Enabled:  false,
			Exporter: "stdout",
		},
		Auth: config.AuthConfig{
			Mode:        config.AuthModeJWKS,
			JWKSURL:     "https://example.com/jwks.json",
			JWKSRefresh: time.Hour,
		},
		Board: config.BoardConfig{Color: true},
	}
}
