// Package observability exposes Prometheus instrumentation for the engine.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for engine operation counters.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Metrics holds the engine's Prometheus collectors.
type Metrics struct {
	Operations *prometheus.CounterVec
	Violations prometheus.Counter
	TreeSize   prometheus.Histogram
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "canopy_engine_operations_total",
				Help: "Tree engine operations by name and outcome.",
			},
			[]string{"op", "outcome"},
		),
		Violations: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "canopy_validation_violations_total",
				Help: "Structural violations reported by the validator.",
			},
		),
		TreeSize: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "canopy_tree_nodes",
				Help:    "Node count of trees passing through the engine.",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
		),
	}
	reg.MustRegister(m.Operations, m.Violations, m.TreeSize)
	return m
}

// Observe records one operation outcome.
func (m *Metrics) Observe(op string, err error) {
	if m == nil {
		return
	}
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	m.Operations.WithLabelValues(op, outcome).Inc()
}
