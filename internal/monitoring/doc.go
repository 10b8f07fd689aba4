/*
Package monitoring provides metrics collection for browser identification,
quirks resolution, proxy creation and driver creation.

# Overview

Metrics are Prometheus collectors registered on a caller-supplied
registerer, so that a host application can expose them next to its own.
Every recording method is safe to call on a nil *Metrics, which lets
components treat metrics as optional.

# Metrics

  - webdriverx_browser_identities_total{source}
  - webdriverx_quirks_applicable_total{quirk}
  - webdriverx_quirks_loaded
  - webdriverx_proxies_created_total{augmentation}
  - webdriverx_drivers_created_total{driver_type}
  - webdriverx_driver_creation_seconds{driver_type}
  - webdriverx_driver_errors_total{driver_type}
  - webdriverx_driver_configs_omitted_total

# Usage

	reg := prometheus.NewRegistry()
	metrics := monitoring.NewMetrics(reg)

	timer := monitoring.NewTimer(metrics, "Chromium")
	driver, err := create()
	timer.Stop(err)
*/
package monitoring
