package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the engine-level Prometheus metrics. HTTP metrics live in
// the middleware package.
type Metrics struct {
	ClosingsRun        prometheus.Counter
	ClosingErrors      prometheus.Counter
	ProposalsGenerated prometheus.Counter
	AITBTotal          prometheus.Histogram
	DepreciationTotal  prometheus.Histogram
}

// New creates and registers all metrics with the default registry.
func New() *Metrics {
	return &Metrics{
		ClosingsRun: promauto.NewCounter(prometheus.CounterOpts{
			Name: "quipu_closings_run_total",
			Help: "Total number of committed closing runs",
		}),
		ClosingErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "quipu_closing_errors_total",
			Help: "Total number of failed closing runs",
		}),
		ProposalsGenerated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "quipu_proposals_generated_total",
			Help: "Total number of proposed transactions generated",
		}),
		AITBTotal: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "quipu_aitb_adjustment_total",
			Help:    "Absolute inflation adjustment per closing run",
			Buckets: prometheus.ExponentialBuckets(1, 10, 8),
		}),
		DepreciationTotal: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "quipu_depreciation_total",
			Help:    "Depreciation charge per closing run",
			Buckets: prometheus.ExponentialBuckets(1, 10, 8),
		}),
	}
}
