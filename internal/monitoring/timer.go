package monitoring

import "time"

// Timer measures driver creation duration
type Timer struct {
	start      time.Time
	metrics    *Metrics
	driverType string
}

// NewTimer creates a new timer
func NewTimer(metrics *Metrics, driverType string) *Timer {
	return &Timer{
		start:      time.Now(),
		metrics:    metrics,
		driverType: driverType,
	}
}

// Stop stops the timer and records the outcome
func (t *Timer) Stop(err error) {
	t.metrics.RecordDriver(t.driverType, time.Since(t.start), err)
}
