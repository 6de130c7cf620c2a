package monitoring

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for service execution.
type Metrics struct {
	// Service metrics
	ServiceCalls    *prometheus.CounterVec
	ServiceDuration *prometheus.HistogramVec
	ServiceErrors   *prometheus.CounterVec

	// System metrics
	Uptime    prometheus.Gauge
	startTime time.Time

	// Snapshot - track current values for in-process inspection
	snapshot Snapshot

	mu sync.RWMutex
}

// Snapshot holds current metric values for in-process inspection.
type Snapshot struct {
	TotalCalls    int64
	TotalErrors   int64
	TotalDuration float64 // sum of all call durations in seconds
}

// NewMetrics creates a new metrics collector registered against reg.
// Passing nil uses a fresh registry, which keeps tests and repeated
// construction free of duplicate-registration panics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)

	m := &Metrics{
		startTime: time.Now(),

		ServiceCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tools_service_calls_total",
				Help: "Total number of service tool calls",
			},
			[]string{"service", "tool"},
		),
		ServiceDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tools_service_call_duration_seconds",
				Help:    "Service tool call duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
			},
			[]string{"service", "tool"},
		),
		ServiceErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tools_service_errors_total",
				Help: "Total number of failed service tool calls",
			},
			[]string{"service", "tool"},
		),
		Uptime: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "tools_uptime_seconds",
				Help: "Process uptime in seconds",
			},
		),
	}

	return m
}

// RecordCall records a completed service tool call.
func (m *Metrics) RecordCall(service, tool string, duration time.Duration, failed bool) {
	m.ServiceCalls.WithLabelValues(service, tool).Inc()
	m.ServiceDuration.WithLabelValues(service, tool).Observe(duration.Seconds())
	if failed {
		m.ServiceErrors.WithLabelValues(service, tool).Inc()
	}

	m.mu.Lock()
	m.snapshot.TotalCalls++
	m.snapshot.TotalDuration += duration.Seconds()
	if failed {
		m.snapshot.TotalErrors++
	}
	m.mu.Unlock()
}

// GetSnapshot returns the current snapshot values.
func (m *Metrics) GetSnapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshot
}

// UpdateUptime refreshes the uptime gauge.
func (m *Metrics) UpdateUptime() {
	m.Uptime.Set(time.Since(m.startTime).Seconds())
}
