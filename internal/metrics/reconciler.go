package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	reconcilerTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "reconciler",
		Name:      "transitions_total",
		Help:      "Count of channel status transitions written.",
	}, []string{"from", "to"})

	reconcilerApplyTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "reconciler",
		Name:      "apply_total",
		Help:      "Count of reconciliation runs by result.",
	}, []string{"operation", "result"})

	reconcilerApplyDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "reconciler",
		Name:      "apply_duration_seconds",
		Help:      "Duration of reconciliation runs.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "result"})

	closurePrepareTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "closure",
		Name:      "prepare_total",
		Help:      "Count of closure transactions prepared.",
	}, []string{"role", "source", "status"})
)

// Reconciler tracks metrics for off-chain state reconciliation.
type Reconciler struct{}

// NewReconciler constructs a Reconciler metrics collector.
func NewReconciler() *Reconciler {
	return &Reconciler{}
}

// ObserveTransition counts a status change written to storage.
func (m Reconciler) ObserveTransition(from, to string) {
	reconcilerTransitionsTotal.WithLabelValues(from, to).Inc()
}

// ObserveApply records one reconciliation run. result is "modified", "unchanged" or "error".
func (m Reconciler) ObserveApply(operation string, modified bool, err error, started time.Time) {
	result := "unchanged"
	switch {
	case err != nil:
		result = "error"
	case modified:
		result = "modified"
	}
	reconcilerApplyTotal.WithLabelValues(operation, result).Inc()
	reconcilerApplyDuration.WithLabelValues(operation, result).Observe(time.Since(started).Seconds())
}

// ObservePrepare counts a prepared closure by initiator role and balance source.
func (m Reconciler) ObservePrepare(role, source string, err error) {
	closurePrepareTotal.WithLabelValues(role, source, statusOf(err)).Inc()
}
