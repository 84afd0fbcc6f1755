package config

const (
	defaultServerPort = 8080

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	// Google's public keys for Firebase ID tokens.
	defaultJWKSURL = "https://www.googleapis.com/service_accounts/v1/jwk/securetoken@system.gserviceaccount.com"
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":           "127.0.0.1",
		"server.port":           defaultServerPort,
		"server.read_timeout":   "5s",
		"server.write_timeout":  "10s",
		"server.idle_timeout":   "120s",
		"server.health_timeout": "2s",

		"log.level":  "info",
		"log.format": "json",

		"client.base_url":                        "http://localhost:5000/api",
		"client.timeout":                         "10s",
		"client.rate_limit.requests_per_second":  0,
		"client.rate_limit.burst":                1,
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "taskboard",

		"auth.mode":          AuthModeJWKS,
		"auth.jwks_url":      defaultJWKSURL,
		"auth.jwks_refresh":  "1h",
		"auth.issuer":        "",
		"auth.audience":      "",
		"auth.shared_secret": "",
		"auth.id_token":      "",
		"auth.token_file":    "",

		"board.color": true,
	}
}
