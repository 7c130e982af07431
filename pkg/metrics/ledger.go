package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const OutcomeOK = "ok"

// LedgerMetrics records match request operations and their outcomes.
type LedgerMetrics struct {
	duration *prometheus.HistogramVec
	outcomes *prometheus.CounterVec
}

// NewLedgerMetrics registers the ledger metrics on the provided registerer.
func NewLedgerMetrics(reg prometheus.Registerer) *LedgerMetrics {
	if reg == nil {
		return &LedgerMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "match_request_operation_duration_seconds",
		Help:    "Duration of match request ledger operations in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
	outcomes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "match_request_operations_total",
		Help: "Match request ledger operations by outcome (ok or error code).",
	}, []string{"operation", "outcome"})
	reg.MustRegister(duration, outcomes)
	return &LedgerMetrics{
		duration: duration,
		outcomes: outcomes,
	}
}

// Observe records one completed operation.
func (l *LedgerMetrics) Observe(operation, outcome string, elapsed time.Duration) {
	if l == nil || l.duration == nil {
		return
	}
	operation = normalizeLabel(operation)
	l.duration.WithLabelValues(operation).Observe(elapsed.Seconds())
	l.outcomes.WithLabelValues(operation, normalizeLabel(outcome)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
