package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTPLatencyBuckets covers the expected API latency range.
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Ingestion and pipeline metrics
var (
	EventsIngested = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsIngested,
			Help: HelpTextEventsIngested,
		},
		[]string{LabelDevice},
	)

	IngestFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameIngestFailures,
			Help: HelpTextIngestFailures,
		},
	)

	NotifyDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameNotifyDuration,
			Help:    HelpTextNotifyDuration,
			Buckets: prometheus.DefBuckets,
		},
	)

	RecomputeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameRecomputeDuration,
			Help:    HelpTextRecomputeDuration,
			Buckets: prometheus.DefBuckets,
		},
	)

	RecomputeFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRecomputeFailures,
			Help: HelpTextRecomputeFailures,
		},
	)

	AggregatesUpserted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAggregatesUpserted,
			Help: HelpTextAggregatesUpserted,
		},
		[]string{LabelType},
	)
)

// RecordRecompute observes one day recomputation pass.
func RecordRecompute(duration time.Duration, ok bool) {
	RecomputeDuration.Observe(duration.Seconds())
	if !ok {
		RecomputeFailures.Inc()
	}
}
