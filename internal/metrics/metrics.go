package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "solace"

var _ prometheus.Collector = (*Metrics)(nil)

type Metrics struct {
	ChatRequests     *prometheus.CounterVec
	UpstreamDuration prometheus.Histogram
}

func New() *Metrics {
	return &Metrics{
		ChatRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "chat",
			Name:      "requests_total",
			Help:      "Total number of chat requests by response status code",
		}, []string{"code"}),
		UpstreamDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "chat",
			Name:      "upstream_duration_seconds",
			Help:      "Time spent waiting for the generative model",
			Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32},
		}),
	}
}

// Collect implements prometheus.Collector.
func (m *Metrics) Collect(c chan<- prometheus.Metric) {
	m.ChatRequests.Collect(c)
	m.UpstreamDuration.Collect(c)
}

// Describe implements prometheus.Collector.
func (m *Metrics) Describe(d chan<- *prometheus.Desc) {
	m.ChatRequests.Describe(d)
	m.UpstreamDuration.Describe(d)
}

// Handler exposes everything registered on g in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
