package monitoring

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Identity sources reported by RecordIdentity.
const (
	SourceReported = "reported"
	SourcePresumed = "presumed"
	SourceMissing  = "missing"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Identification metrics
	Identities *prometheus.CounterVec

	// Quirks metrics
	QuirksResolved *prometheus.CounterVec
	QuirksLoaded   prometheus.Gauge

	// Proxy metrics
	ProxiesCreated *prometheus.CounterVec

	// Driver metrics
	DriversCreated *prometheus.CounterVec
	DriverDuration *prometheus.HistogramVec
	DriverErrors   *prometheus.CounterVec
	ConfigsOmitted prometheus.Counter

	// Snapshot for CLI/JSON output - track current values
	snapshot MetricsSnapshot

	mu sync.RWMutex
}

// MetricsSnapshot holds current metric values for JSON output
type MetricsSnapshot struct {
	Identities     int64 `json:"identities"`
	PresumedIDs    int64 `json:"presumedIdentities"`
	MissingIDs     int64 `json:"missingVersions"`
	Proxies        int64 `json:"proxies"`
	QuirkMatches   int64 `json:"quirkMatches"`
	Drivers        int64 `json:"drivers"`
	DriverErrors   int64 `json:"driverErrors"`
	ConfigsOmitted int64 `json:"configsOmitted"`
}

// NewMetrics creates a new metrics collector registered on reg. A nil reg
// creates a private registry, which keeps repeated construction in tests
// from colliding on the default registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)

	return &Metrics{
		Identities: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "webdriverx_browser_identities_total",
				Help: "Total number of browser identities resolved, by version source",
			},
			[]string{"source"},
		),

		QuirksResolved: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "webdriverx_quirks_applicable_total",
				Help: "Total number of times a quirk was found to apply to a browser",
			},
			[]string{"quirk"},
		),
		QuirksLoaded: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "webdriverx_quirks_loaded",
				Help: "Number of quirks in the merged quirks data",
			},
		),

		ProxiesCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "webdriverx_proxies_created_total",
				Help: "Total number of augmented driver proxies created",
			},
			[]string{"augmentation"},
		),

		DriversCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "webdriverx_drivers_created_total",
				Help: "Total number of web drivers created",
			},
			[]string{"driver_type"},
		),
		DriverDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "webdriverx_driver_creation_seconds",
				Help:    "Web driver creation duration in seconds",
				Buckets: []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
			},
			[]string{"driver_type"},
		),
		DriverErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "webdriverx_driver_errors_total",
				Help: "Total number of failed web driver creations",
			},
			[]string{"driver_type"},
		),
		ConfigsOmitted: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "webdriverx_driver_configs_omitted_total",
				Help: "Total number of driver configurations omitted as invalid",
			},
		),
	}
}

// RecordIdentity records a resolved browser identity
func (m *Metrics) RecordIdentity(source string) {
	if m == nil {
		return
	}
	m.Identities.WithLabelValues(source).Inc()

	m.mu.Lock()
	m.snapshot.Identities++
	switch source {
	case SourcePresumed:
		m.snapshot.PresumedIDs++
	case SourceMissing:
		m.snapshot.MissingIDs++
	}
	m.mu.Unlock()
}

// RecordQuirks records the quirks found to apply to one browser
func (m *Metrics) RecordQuirks(quirks []string) {
	if m == nil {
		return
	}
	for _, q := range quirks {
		m.QuirksResolved.WithLabelValues(q).Inc()
	}

	m.mu.Lock()
	m.snapshot.QuirkMatches += int64(len(quirks))
	m.mu.Unlock()
}

// SetQuirksLoaded sets the number of quirks available
func (m *Metrics) SetQuirksLoaded(count int) {
	if m == nil {
		return
	}
	m.QuirksLoaded.Set(float64(count))
}

// RecordProxy records a proxy creation
func (m *Metrics) RecordProxy(augmentation string) {
	if m == nil {
		return
	}
	m.ProxiesCreated.WithLabelValues(augmentation).Inc()

	m.mu.Lock()
	m.snapshot.Proxies++
	m.mu.Unlock()
}

// RecordDriver records a driver creation attempt
func (m *Metrics) RecordDriver(driverType string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.DriverDuration.WithLabelValues(driverType).Observe(duration.Seconds())

	m.mu.Lock()
	defer m.mu.Unlock()

	if err != nil {
		m.DriverErrors.WithLabelValues(driverType).Inc()
		m.snapshot.DriverErrors++
		return
	}
	m.DriversCreated.WithLabelValues(driverType).Inc()
	m.snapshot.Drivers++
}

// IncConfigsOmitted increments the omitted configuration counter
func (m *Metrics) IncConfigsOmitted() {
	if m == nil {
		return
	}
	m.ConfigsOmitted.Inc()

	m.mu.Lock()
	m.snapshot.ConfigsOmitted++
	m.mu.Unlock()
}

// Snapshot returns the current metric values
func (m *Metrics) Snapshot() MetricsSnapshot {
	if m == nil {
		return MetricsSnapshot{}
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshot
}
