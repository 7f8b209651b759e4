// Package config loads server settings from the environment, with an
// optional yaml config file for local development.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	Hub      HubConfig    `mapstructure:",squash"`
	LogLevel string       `mapstructure:"log_level"`
	Server   ServerConfig `mapstructure:",squash"`
}

// HubConfig holds the Sprut.hub connection settings.
type HubConfig struct {
	WSURL    string `mapstructure:"ws_url"`
	Email    string `mapstructure:"email"`
	Password string `mapstructure:"password"`
	Serial   string `mapstructure:"serial"`
}

// ServerConfig holds the HTTP server bind settings (cmd/api only).
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// Load reads configuration from SPRUTHUB_-prefixed environment variables
// (SPRUTHUB_WS_URL, SPRUTHUB_EMAIL, SPRUTHUB_PASSWORD, SPRUTHUB_SERIAL,
// SPRUTHUB_LOG_LEVEL, SPRUTHUB_HOST, SPRUTHUB_PORT), overlaid on an optional
// config.yaml in the working directory.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("log_level", "info")
	v.SetDefault("host", "127.0.0.1")
	v.SetDefault("port", 9084)

	v.SetEnvPrefix("SPRUTHUB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range []string{"ws_url", "email", "password", "serial", "log_level", "host", "port"} {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	var missing []string
	if cfg.Hub.WSURL == "" {
		missing = append(missing, "SPRUTHUB_WS_URL")
	}
	if cfg.Hub.Email == "" {
		missing = append(missing, "SPRUTHUB_EMAIL")
	}
	if cfg.Hub.Password == "" {
		missing = append(missing, "SPRUTHUB_PASSWORD")
	}
	if cfg.Hub.Serial == "" {
		missing = append(missing, "SPRUTHUB_SERIAL")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	return &cfg, nil
}

// APIAddress returns the host:port the HTTP server binds to.
func (c *Config) APIAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
