package service

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors of the module host on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	RegistryFetches     *prometheus.CounterVec
	RegistryModules     prometheus.Gauge
	OverrideResolutions *prometheus.CounterVec
	RemoteLoads         *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with a new registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		RegistryFetches: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mfehost_registry_fetches_total",
				Help: "Base registry fetches by result (ok, unavailable, error).",
			},
			[]string{"result"},
		),
		RegistryModules: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "mfehost_registry_modules",
				Help: "Number of modules in the published registry.",
			},
		),
		OverrideResolutions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mfehost_query_override_resolutions_total",
				Help: "Branch override resolutions by result (fetched, cached, failed).",
			},
			[]string{"result"},
		),
		RemoteLoads: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mfehost_remote_loads_total",
				Help: "Remote entry loads by final state (ready, failed).",
			},
			[]string{"state"},
		),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
