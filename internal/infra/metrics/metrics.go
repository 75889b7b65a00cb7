// Package metrics holds the Prometheus collectors of the marketplace.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "marketplace"

// Metrics holds all collectors. Pass to components that need to record metrics.
type Metrics struct {
	GateDecisions   *prometheus.CounterVec
	SearchDuration  *prometheus.HistogramVec
	CaptionFailures prometheus.Counter
	ListingsCreated *prometheus.CounterVec
	HTTPRequests    *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// NewRegistry creates a registry carrying the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// New creates and registers all metrics with the given registry.
func New(reg *prometheus.Registry) *Metrics {
	return &Metrics{
		GateDecisions: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "gate_decisions_total",
				Help:      "Request gate decisions by state",
			},
			[]string{"state"}, // PUBLIC, NO_TOKEN, VALID, INVALID
		),
		SearchDuration: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "search_duration_seconds",
				Help:      "Smart search latency in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"type"},
		),
		CaptionFailures: promauto.With(reg).NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "caption_failures_total",
				Help:      "Image caption calls that failed and degraded to an empty description",
			},
		),
		ListingsCreated: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "listings_created_total",
				Help:      "Listings created by category",
			},
			[]string{"category"},
		),
		HTTPRequests: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "HTTP requests by method and status code",
			},
			[]string{"method", "code"},
		),
		gatherer: reg,
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
