package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "stayease"

// Metrics holds the collectors for page rendering and live sessions.
type Metrics struct {
	registry *prometheus.Registry

	PageViews      *prometheus.CounterVec
	RenderErrors   prometheus.Counter
	ActiveSessions prometheus.Gauge
	LiveEvents     *prometheus.CounterVec
	PatchesSent    *prometheus.CounterVec
}

// New registers a fresh set of collectors on their own registry, so tests and
// multiple servers in one process don't collide on the default registerer.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		PageViews: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "page_views_total",
			Help:      "Rendered pages by path and response code.",
		}, []string{"path", "code"}),
		RenderErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "render_errors_total",
			Help:      "Templates that failed to render.",
		}),
		ActiveSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "live",
			Name:      "sessions_active",
			Help:      "Open live navbar sessions.",
		}),
		LiveEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "live",
			Name:      "events_total",
			Help:      "Client events received by type.",
		}, []string{"type"}),
		PatchesSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "live",
			Name:      "patches_total",
			Help:      "Patches pushed to clients by change kind.",
		}, []string{"kind"}),
	}

	m.registry.MustRegister(
		m.PageViews,
		m.RenderErrors,
		m.ActiveSessions,
		m.LiveEvents,
		m.PatchesSent,
		collectors.NewGoCollector(),
	)

	return m
}

// Handler serves the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
