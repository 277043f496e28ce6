package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads the configuration file at path, applies APP_* environment
// overrides and defaults, and validates the result. An empty path skips
// the file and relies on defaults and environment alone.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.password", "")
	v.SetDefault("upstream.base_url", "https://v3.football.api-sports.io")
	// Registered so APP_UPSTREAM_API_KEY binds without a config file.
	v.SetDefault("upstream.api_key", "")
	v.SetDefault("upstream.requests_per_second", 5.0)
	v.SetDefault("rate_limit.default_limit", 20)
	v.SetDefault("rate_limit.expensive_limit", 10)
	v.SetDefault("rate_limit.window", time.Minute)
	v.SetDefault("rate_limit.auth_multiplier", 5)
	v.SetDefault("logger.level", "info")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&config); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &config, nil
}
