// Package config provides application configuration management.
// Configuration is loaded from environment variables following 12-factor principles.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Version is the service version reported by every metadata endpoint.
// It is fixed at build time and not configurable.
const Version = "1.0.0"

// EnvDevelopment is the environment label that turns on verbose behaviour.
const EnvDevelopment = "development"

// ErrInvalidPort is returned when PORT is outside the TCP port range.
var ErrInvalidPort = errors.New("port must be between 1 and 65535")

// ErrInvalidLogLevel is returned when LOG_LEVEL is not debug, info, warn or error.
var ErrInvalidLogLevel = errors.New("unsupported log level")

// Config holds all application configuration.
// It is built once at startup and never mutated afterwards.
type Config struct {
	// Application settings
	Port        int    `env:"PORT" envDefault:"8000"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`

	// Logging. Empty values are derived from Environment.
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`

	// Server timeouts
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout     time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	// Request body size limit in bytes (default 1MB)
	MaxRequestBodySize int64 `env:"MAX_REQUEST_BODY_SIZE" envDefault:"1048576"`

	MetricsEnabled bool `env:"METRICS_ENABLED" envDefault:"true"`
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == EnvDevelopment
}

// Level returns the effective log level name.
func (c *Config) Level() string {
	if c.LogLevel != "" {
		return c.LogLevel
	}
	if c.IsDevelopment() {
		return "debug"
	}
	return "info"
}

// Format returns the effective log format, "json" or "text".
func (c *Config) Format() string {
	if c.LogFormat != "" {
		return c.LogFormat
	}
	if c.IsDevelopment() {
		return "text"
	}
	return "json"
}

// Addr returns the listen address. The service binds on all interfaces.
func (c *Config) Addr() string {
	return fmt.Sprintf("0.0.0.0:%d", c.Port)
}

// Validate checks values the env parser cannot express as tags.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: got %d", ErrInvalidPort, c.Port)
	}
	if c.MaxRequestBodySize <= 0 {
		return errors.New("max request body size must be positive")
	}
	switch c.Level() {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	switch c.Format() {
	case "json", "text":
	default:
		return fmt.Errorf("unsupported log format %q", c.LogFormat)
	}
	return nil
}

// Load parses environment variables and returns a validated Config.
// In development, variables from ENV_FILE (default .env) are loaded first
// without overriding anything already set in the process environment.
func Load() (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func loadDotEnv() error {
	if e := os.Getenv("ENVIRONMENT"); e != "" && e != EnvDevelopment {
		return nil
	}

	path := os.Getenv("ENV_FILE")
	if path == "" {
		path = ".env"
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}
