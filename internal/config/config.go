// Package config loads and validates the service configuration from a
// YAML file with APP_* environment overrides.
package config

import (
	"time"

	"github.com/tifofan/football-proxy/pkg/logging"
)

// Config is the full service configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Upstream  UpstreamConfig  `mapstructure:"upstream"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Logger    LoggerConfig    `mapstructure:"logger"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Addr            string        `mapstructure:"addr" validate:"required"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// RedisConfig holds the cache backend connection settings.
type RedisConfig struct {
	Addr     string `mapstructure:"addr" validate:"required"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db" validate:"gte=0"`
}

// UpstreamConfig holds the API-Football client settings.
type UpstreamConfig struct {
	BaseURL           string  `mapstructure:"base_url" validate:"required,url"`
	APIKey            string  `mapstructure:"api_key" validate:"required"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second" validate:"gt=0"`
}

// RateLimitConfig holds the caller-facing fixed-window limits.
type RateLimitConfig struct {
	DefaultLimit   int           `mapstructure:"default_limit" validate:"gt=0"`
	ExpensiveLimit int           `mapstructure:"expensive_limit" validate:"gt=0"`
	Window         time.Duration `mapstructure:"window" validate:"gt=0"`
	AuthMultiplier int           `mapstructure:"auth_multiplier" validate:"gt=0"`
}

// LoggerConfig holds the logging settings.
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// LoggingConfig converts the logger section for logging.Setup.
func (c LoggerConfig) LoggingConfig() logging.Config {
	cfg := logging.DefaultConfig()
	if c.Level != "" {
		cfg.Level = logging.LogLevel(c.Level)
	}
	cfg.Pretty = c.Pretty
	return cfg
}
