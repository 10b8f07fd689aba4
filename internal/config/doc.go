// Package config provides 12-factor configuration management for webdriverx.
//
// Configuration is loaded from environment variables with sensible defaults.
// CLI flags can override environment variables.
//
// Configuration Sections:
//   - Drivers: driver configurations file and the selected configuration
//   - Quirks: quirks data file and glob
//   - Logging: Log level and output format
//   - Metrics: whether metrics are printed after a command
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	fmt.Printf("Loading drivers from %s\n", cfg.Drivers.File)
//
// Environment Variables:
//   - WEBDRIVER_CONFIG, WEBDRIVER_SELECTED
//   - QUIRKS_FILE, QUIRKS_DIR, QUIRKS_GLOB
//   - LOG_LEVEL, LOG_DEV
//   - METRICS_ENABLED
package config
