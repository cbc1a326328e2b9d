package config

import (
	"errors"
	"fmt"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Auth.validate(),
		c.Storage.validate(),
		c.Attachments.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (a *AuthConfig) validate() error {
	if a.CertFile == "" {
		return errors.New("auth.cert_file must not be empty")
	}
	return nil
}

func (s *StorageConfig) validate() error {
	var errs []error

	switch s.Driver {
	case "dynamodb", "memory":
		// Valid drivers.
	default:
		errs = append(errs, fmt.Errorf("storage.driver must be one of: dynamodb, memory; got %q", s.Driver))
	}

	if s.Driver == "dynamodb" {
		if s.Table == "" {
			errs = append(errs, errors.New("storage.table must not be empty when driver is dynamodb"))
		}
		if s.UserIndex == "" {
			errs = append(errs, errors.New("storage.user_index must not be empty when driver is dynamodb"))
		}
	}

	if s.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("storage.circuit_breaker.max_failures must be >= 1, got %d",
			s.CircuitBreaker.MaxFailures))
	}

	return errors.Join(errs...)
}

func (a *AttachmentsConfig) validate() error {
	var errs []error

	switch a.Driver {
	case "s3", "memory":
		// Valid drivers.
	default:
		errs = append(errs, fmt.Errorf("attachments.driver must be one of: s3, memory; got %q", a.Driver))
	}

	if a.Driver == "s3" && a.Bucket == "" {
		errs = append(errs, errors.New("attachments.bucket must not be empty when driver is s3"))
	}
	if a.Driver == "memory" && a.BaseURL == "" {
		errs = append(errs, errors.New("attachments.base_url must not be empty when driver is memory"))
	}
	if a.URLTTL <= 0 {
		errs = append(errs, errors.New("attachments.url_ttl must be positive"))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}
