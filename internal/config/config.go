// Package config defines the environment-driven service configuration.
package config

import (
	"fmt"
	"time"

	"github.com/rezkam/taskhub/internal/env"
)

// ServerConfig holds all configuration for the server binary.
type ServerConfig struct {
	Database        DatabaseConfig
	HTTP            HTTPConfig
	Token           TokenConfig
	Search          SearchConfig
	Observability   ObservabilityConfig
	ShutdownTimeout time.Duration `env:"TASKHUB_SHUTDOWN_TIMEOUT" default:"15s"`
}

// HTTPConfig holds HTTP server configuration.
type HTTPConfig struct {
	Host              string        `env:"TASKHUB_HTTP_HOST"`
	Port              string        `env:"TASKHUB_HTTP_PORT"`
	ReadTimeout       time.Duration `env:"TASKHUB_HTTP_READ_TIMEOUT"`
	WriteTimeout      time.Duration `env:"TASKHUB_HTTP_WRITE_TIMEOUT"`
	IdleTimeout       time.Duration `env:"TASKHUB_HTTP_IDLE_TIMEOUT"`
	ReadHeaderTimeout time.Duration `env:"TASKHUB_HTTP_READ_HEADER_TIMEOUT"`
	MaxHeaderBytes    int           `env:"TASKHUB_HTTP_MAX_HEADER_BYTES"`
	MaxBodyBytes      int64         `env:"TASKHUB_HTTP_MAX_BODY_BYTES"`
}

// SearchConfig holds task search pagination configuration.
type SearchConfig struct {
	DefaultPageSize int `env:"TASKHUB_DEFAULT_PAGE_SIZE"`
	MaxPageSize     int `env:"TASKHUB_MAX_PAGE_SIZE"`
}

// Validate validates pagination configuration.
func (c *SearchConfig) Validate() error {
	if c.MaxPageSize > 0 && c.DefaultPageSize > c.MaxPageSize {
		return fmt.Errorf("TASKHUB_MAX_PAGE_SIZE (%d) must be >= TASKHUB_DEFAULT_PAGE_SIZE (%d)", c.MaxPageSize, c.DefaultPageSize)
	}
	return nil
}

// ObservabilityConfig holds observability configuration.
type ObservabilityConfig struct {
	OTelEnabled bool   `env:"TASKHUB_OTEL_ENABLED"`
	ServiceName string `env:"OTEL_SERVICE_NAME" default:"taskhub"`
}

// LoadServerConfig loads and validates server configuration from environment.
func LoadServerConfig() (*ServerConfig, error) {
	cfg := &ServerConfig{}

	if err := env.Load(cfg); err != nil {
		return nil, fmt.Errorf("failed to load server config: %w", err)
	}

	return cfg, nil
}
