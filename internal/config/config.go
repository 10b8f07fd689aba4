package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Drivers DriverConfig
	Quirks  QuirksConfig
	Logging LogConfig
	Metrics MetricsConfig
}

// DriverConfig locates the driver configurations file.
type DriverConfig struct {
	File     string `envconfig:"WEBDRIVER_CONFIG" default:""`
	Selected string `envconfig:"WEBDRIVER_SELECTED" default:""`
}

// QuirksConfig locates quirks data. Files matching Glob under Dir are
// merged in path order, then File is merged over the result, so its
// definitions replace same-named ones from the glob.
type QuirksConfig struct {
	File string `envconfig:"QUIRKS_FILE" default:""`
	Dir  string `envconfig:"QUIRKS_DIR" default:"."`
	Glob string `envconfig:"QUIRKS_GLOB" default:""`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// MetricsConfig holds metrics configuration.
type MetricsConfig struct {
	Enabled bool `envconfig:"METRICS_ENABLED" default:"false"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Quirks: QuirksConfig{
			Dir: ".",
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
	}
}
