package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	RostersGenerated prometheus.Counter
	RostersSaved     *prometheus.CounterVec
	UpstreamErrors   *prometheus.CounterVec
	GenerationTime   prometheus.Histogram
}

// NewMetrics creates new prometheus metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		RostersGenerated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rosters_generated_total",
			Help:      "The total number of rosters generated from upstream services",
		}),
		RostersSaved: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rosters_saved_total",
			Help:      "The total number of rosters saved, by backend",
		}, []string{"backend"}),
		UpstreamErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_errors_total",
			Help:      "The total number of failed upstream service calls",
		}, []string{"service"}),
		GenerationTime: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "roster_generation_time_seconds",
			Help:      "Time taken to generate a roster",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}
