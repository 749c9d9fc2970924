package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector owns the prometheus registry and the application metrics
type Collector struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	OverlayEvaluationsTotal  prometheus.Counter
	SuppressedIntervalsTotal prometheus.Counter
	IndexBuckets             prometheus.Gauge
}

// NewCollector creates a collector with its own registry so that tests can
// construct independent instances
func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	factory := promauto.With(registry)

	return &Collector{
		registry: registry,

		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests by path, method and status",
			},
			[]string{"path", "method", "status"},
		),

		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
			},
			[]string{"path"},
		),

		OverlayEvaluationsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "overlay_evaluations_total",
				Help:      "Total number of day overlay evaluations",
			},
		),

		SuppressedIntervalsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "suppressed_intervals_total",
				Help:      "Activity intervals suppressed because no enabled weather category co-occurred",
			},
		),

		IndexBuckets: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "weather_index_buckets",
				Help:      "Distinct (date, hour) buckets in the weather join index",
			},
		),
	}
}

// Registry returns the underlying registry for the /metrics handler
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
