// Package metrics exposes prometheus instrumentation for the run service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	runsTotal            *prometheus.CounterVec
	runDuration          prometheus.Histogram
	partitionsDispatched prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		runsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "goscatter",
			Subsystem: "runs",
			Name:      "total",
			Help:      "Finished runs by terminal status.",
		}, []string{"status"}),
		runDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "goscatter",
			Subsystem: "runs",
			Name:      "duration_seconds",
			Help:      "Wall-clock run duration from dispatch to terminal state.",
			Buckets:   prometheus.DefBuckets,
		}),
		partitionsDispatched: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "goscatter",
			Subsystem: "runs",
			Name:      "partitions_dispatched_total",
			Help:      "Partitions dispatched to workers across all runs.",
		}),
	}
}

// ObserveRun records one finished run. Safe to call on a nil receiver so
// callers without a registry skip instrumentation.
func (m *Metrics) ObserveRun(status string, duration time.Duration, partitions int) {
	if m == nil {
		return
	}
	m.runsTotal.WithLabelValues(status).Inc()
	m.runDuration.Observe(duration.Seconds())
	m.partitionsDispatched.Add(float64(partitions))
}
