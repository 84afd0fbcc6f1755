package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
)

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var p problems
	c.Server.check(&p)
	c.Log.check(&p)
	c.Client.check(&p)
	c.Telemetry.check(&p)
	c.Auth.check(&p)
	return errors.Join(p...)
}

// problems collects validation failures, each prefixed by its key.
type problems []error

func (p *problems) require(ok bool, key, format string, args ...any) {
	if !ok {
		*p = append(*p, fmt.Errorf("%s %s", key, fmt.Sprintf(format, args...)))
	}
}

func (s *ServerConfig) check(p *problems) {
	p.require(s.Port >= 1 && s.Port <= 65535, "server.port", "must be between 1 and 65535, got %d", s.Port)
	p.require(s.ReadTimeout > 0, "server.read_timeout", "must be positive")
	p.require(s.WriteTimeout > 0, "server.write_timeout", "must be positive")
	p.require(s.HealthTimeout >= 0, "server.health_timeout", "must not be negative")
}

func (l *LogConfig) check(p *problems) {
	p.require(slices.Contains([]string{"debug", "info", "warn", "error"}, l.Level),
		"log.level", "must be one of debug, info, warn, error; got %q", l.Level)
	p.require(slices.Contains([]string{"json", "text"}, l.Format),
		"log.format", "must be one of json, text; got %q", l.Format)
}

func (cl *ClientConfig) check(p *problems) {
	u, err := url.Parse(cl.BaseURL)
	p.require(cl.BaseURL != "" && err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != "",
		"client.base_url", "must be an absolute http(s) URL, got %q", cl.BaseURL)
	p.require(cl.Timeout > 0, "client.timeout", "must be positive")

	rl := cl.RateLimit
	p.require(rl.RequestsPerSecond >= 0, "client.rate_limit.requests_per_second", "must be >= 0, got %g", rl.RequestsPerSecond)
	p.require(rl.RequestsPerSecond == 0 || rl.Burst >= 1, "client.rate_limit.burst", "must be >= 1, got %d", rl.Burst)
	p.require(cl.CircuitBreaker.MaxFailures >= 1,
		"client.circuit_breaker.max_failures", "must be >= 1, got %d", cl.CircuitBreaker.MaxFailures)
}

func (t *TelemetryConfig) check(p *problems) {
	if !t.Enabled {
		return
	}
	p.require(t.Exporter == "stdout" || t.Exporter == "otlp",
		"telemetry.exporter", "must be one of stdout, otlp; got %q", t.Exporter)
	p.require(t.Exporter != "otlp" || t.Endpoint != "",
		"telemetry.endpoint", "must not be empty when exporter is otlp")
}

func (a *AuthConfig) check(p *problems) {
	switch a.Mode {
	case AuthModeJWKS:
		p.require(a.JWKSURL != "", "auth.jwks_url", "must not be empty when mode is jwks")
		p.require(a.JWKSRefresh > 0, "auth.jwks_refresh", "must be positive")
	case AuthModeLocal:
		p.require(a.SharedSecret != "", "auth.shared_secret", "must not be empty when mode is local")
	default:
		p.require(false, "auth.mode", "must be one of jwks, local; got %q", a.Mode)
	}
}
