// Package metric provides Prometheus metrics for Weir.
package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/weirsim/weir-go/pkg/simtime"
)

// Registry holds all simulator metrics.
type Registry struct {
	reg *prometheus.Registry

	buildInfo      *prometheus.GaugeVec
	workerThreads  prometheus.Gauge
	scenarioFiles  prometheus.Gauge
	eventsExecuted prometheus.Counter
	simClockNanos  prometheus.Gauge
}

// NewRegistry creates a registry with all simulator metrics registered.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Registry{
		reg: reg,
		buildInfo: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "weir",
			Name:      "build_info",
			Help:      "Build information, value is always 1.",
		}, []string{"version", "commit"}),
		workerThreads: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "weir",
			Name:      "worker_threads",
			Help:      "Configured simulation worker threads (0 = single-threaded).",
		}),
		scenarioFiles: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "weir",
			Name:      "scenario_files",
			Help:      "Number of XML scenario files queued for loading.",
		}),
		eventsExecuted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "weir",
			Name:      "events_executed_total",
			Help:      "Simulation events executed.",
		}),
		simClockNanos: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "weir",
			Name:      "sim_clock_nanoseconds",
			Help:      "Current simulated time in nanoseconds since the simulation epoch.",
		}),
	}
}

// SetBuildInfo records the build identity.
func (r *Registry) SetBuildInfo(version, commit string) {
	r.buildInfo.WithLabelValues(version, commit).Set(1)
}

// ObserveConfig records the resolved configuration. Called once, after
// parsing; configuration never changes afterwards.
func (r *Registry) ObserveConfig(workers, scenarios int) {
	r.workerThreads.Set(float64(workers))
	r.scenarioFiles.Set(float64(scenarios))
}

// EventExecuted records one executed event at simulated time now.
func (r *Registry) EventExecuted(now simtime.Time) {
	r.eventsExecuted.Inc()
	r.simClockNanos.Set(float64(now))
}

// Handler returns an HTTP handler serving the registry in Prometheus format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}

// Gatherer exposes the underlying registry for tests.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}
