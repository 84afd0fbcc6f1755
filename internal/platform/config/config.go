// Package config provides configuration loading and validation for taskboard.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for taskboard.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Client    ClientConfig    `koanf:"client"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Auth      AuthConfig      `koanf:"auth"`
	Board     BoardConfig     `koanf:"board"`
}

// ServerConfig holds settings for the local board API started by "serve".
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`

	// HealthTimeout bounds each readiness check.
	HealthTimeout time.Duration `koanf:"health_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ClientConfig holds task API client settings.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
}

// RateLimitConfig holds client-side token bucket settings. A zero
// RequestsPerSecond disables rate limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	Burst             int     `koanf:"burst"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// Auth modes.
const (
	AuthModeJWKS  = "jwks"
	AuthModeLocal = "local"
)

// AuthConfig holds identity token verification settings.
//
// In jwks mode tokens are RS256-signed and verified against keys fetched from
// JWKSURL. In local mode tokens are HS256-signed with SharedSecret, which is
// meant for development against a local task API.
type AuthConfig struct {
	Mode         string        `koanf:"mode"`
	JWKSURL      string        `koanf:"jwks_url"`
	JWKSRefresh  time.Duration `koanf:"jwks_refresh"`
	Issuer       string        `koanf:"issuer"`
	Audience     string        `koanf:"audience"`
	SharedSecret string        `koanf:"shared_secret"`
	IDToken      string        `koanf:"id_token"`
	TokenFile    string        `koanf:"token_file"`
}

// BoardConfig holds terminal rendering settings.
type BoardConfig struct {
	// Color allows colored output on terminals. Pipes and files are never
	// colored.
	Color bool `koanf:"color"`
}
