// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server      ServerConfig      `koanf:"server"`
	Log         LogConfig         `koanf:"log"`
	Auth        AuthConfig        `koanf:"auth"`
	Storage     StorageConfig     `koanf:"storage"`
	Attachments AttachmentsConfig `koanf:"attachments"`
	Telemetry   TelemetryConfig   `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// AuthConfig holds bearer token verification settings. CertFile points to a
// PEM-encoded RSA public key or X.509 certificate used to verify RS256
// signatures. Issuer and Audience are checked against token claims when
// non-empty.
type AuthConfig struct {
	CertFile string `koanf:"cert_file"`
	Issuer   string `koanf:"issuer"`
	Audience string `koanf:"audience"`
}

// StorageConfig holds item store settings. Driver selects the backend:
// "dynamodb" for the DynamoDB adapter, "memory" for the in-memory adapter
// used in local development and tests.
type StorageConfig struct {
	Driver         string               `koanf:"driver"`
	Region         string               `koanf:"region"`
	Table          string               `koanf:"table"`
	UserIndex      string               `koanf:"user_index"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
}

// CircuitBreakerConfig holds circuit breaker settings for the item store.
// The breaker tracks backend health for readiness reporting; it does not
// retry failed calls.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// AttachmentsConfig holds attachment store settings. Driver selects the
// backend: "s3" for presigned S3 uploads, "memory" for local development.
// BaseURL is only used by the memory driver to derive attachment URLs.
type AttachmentsConfig struct {
	Driver  string        `koanf:"driver"`
	Region  string        `koanf:"region"`
	Bucket  string        `koanf:"bucket"`
	URLTTL  time.Duration `koanf:"url_ttl"`
	BaseURL string        `koanf:"base_url"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
