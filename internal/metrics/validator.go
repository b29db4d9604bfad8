package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	validatorAwaitTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "validator",
		Name:      "await_total",
		Help:      "Count of transaction finality waits by outcome.",
	}, []string{"outcome"})

	validatorAwaitDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "validator",
		Name:      "await_duration_seconds",
		Help:      "Duration of transaction finality waits.",
		Buckets:   []float64{.1, .5, 1, 2.5, 5, 10, 20, 30, 45, 60},
	}, []string{"outcome"})

	validatorAwaitAttempts = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "validator",
		Name:      "await_attempts",
		Help:      "Number of ledger queries spent per finality wait.",
		Buckets:   prometheus.LinearBuckets(1, 1, 10),
	})
)

// Validator tracks metrics for transaction finality checks.
type Validator struct{}

// NewValidator constructs a Validator metrics collector.
func NewValidator() *Validator {
	return &Validator{}
}

// ObserveAwait records one finality wait. outcome is "success" or the failure kind.
func (m Validator) ObserveAwait(outcome string, attempts int, started time.Time) {
	if outcome == "" {
		outcome = "success"
	}
	validatorAwaitTotal.WithLabelValues(outcome).Inc()
	validatorAwaitDuration.WithLabelValues(outcome).Observe(time.Since(started).Seconds())
	validatorAwaitAttempts.Observe(float64(attempts))
}
