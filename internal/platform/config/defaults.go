package config

const (
	defaultServerPort = 8080

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"auth.cert_file": "",
		"auth.issuer":    "",
		"auth.audience":  "",

		"storage.driver":                          "memory",
		"storage.region":                          "",
		"storage.table":                           "todos",
		"storage.user_index":                      "byUser",
		"storage.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"storage.circuit_breaker.timeout":         "30s",
		"storage.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,

		"attachments.driver":   "memory",
		"attachments.region":   "",
		"attachments.bucket":   "",
		"attachments.url_ttl":  "5m",
		"attachments.base_url": "http://localhost:8080/attachments",

		"telemetry.enabled":  false,
		"telemetry.exporter": "stdout",
		"telemetry.endpoint": "",
	}
}
