// Package metrics exposes the service's Prometheus instrumentation.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

// Metrics holds the service's collectors on a private registry so tests
// can run side by side without duplicate-registration panics.
type Metrics struct {
	registry *prometheus.Registry

	// RendersTotal counts finished PDF generations by document type and
	// outcome ("ok", "not_found", "render_error").
	RendersTotal *prometheus.CounterVec

	// RenderDuration observes end-to-end generation time in seconds by
	// document type.
	RenderDuration *prometheus.HistogramVec

	// InFlight tracks currently running generations.
	InFlight prometheus.Gauge
}

// New builds the metrics set with process and Go runtime collectors
// alongside the service's own.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		RendersTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pdfservice",
			Name:      "renders_total",
			Help:      "Finished PDF generations by document type and outcome.",
		}, []string{"template", "status"}),
		RenderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "pdfservice",
			Name:      "render_duration_seconds",
			Help:      "End-to-end PDF generation time in seconds.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"template"}),
		InFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "pdfservice",
			Name:      "renders_in_flight",
			Help:      "PDF generations currently running.",
		}),
	}
	reg.MustRegister(m.RendersTotal, m.RenderDuration, m.InFlight)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Module provides the metrics set to the application graph.
var Module = fx.Module("metrics",
	fx.Provide(New),
)
