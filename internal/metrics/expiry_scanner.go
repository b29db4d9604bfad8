package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	expirySweepTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "expiry_scanner",
		Name:      "sweep_total",
		Help:      "Count of expiry sweeps.",
	}, []string{"network", "status"})

	expirySweepDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "expiry_scanner",
		Name:      "sweep_duration_seconds",
		Help:      "Duration of expiry sweeps.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	expiryChannelsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "expiry_scanner",
		Name:      "channels_total",
		Help:      "Count of expired channels handled by outcome.",
	}, []string{"network", "outcome"})
)

// ExpiryScanner tracks metrics for the expiry sweep.
type ExpiryScanner struct {
	network string
}

// NewExpiryScanner constructs an ExpiryScanner with defaults.
func NewExpiryScanner(network string) *ExpiryScanner {
	if network == "" {
		network = "unknown"
	}
	return &ExpiryScanner{network: network}
}

// ObserveSweep records one sweep and how its channels were resolved.
func (m ExpiryScanner) ObserveSweep(err error, finalized, stillOnLedger, failed int, started time.Time) {
	status := statusOf(err)
	expirySweepTotal.WithLabelValues(m.network, status).Inc()
	expirySweepDuration.WithLabelValues(m.network, status).Observe(time.Since(started).Seconds())
	expiryChannelsTotal.WithLabelValues(m.network, "finalized").Add(float64(finalized))
	expiryChannelsTotal.WithLabelValues(m.network, "still_on_ledger").Add(float64(stillOnLedger))
	expiryChannelsTotal.WithLabelValues(m.network, "failed").Add(float64(failed))
}
