// Package metrics counts scenario and step outcomes and writes them in the
// Prometheus text format, for node_exporter's textfile collector.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"ui_automation/domain/entities"
)

// Collector implements interfaces.Recorder.
type Collector struct {
	registry *prometheus.Registry

	scenarios *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	steps     *prometheus.HistogramVec
	fallbacks *prometheus.CounterVec
}

func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,
		scenarios: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ui_automation",
			Name:      "scenarios_total",
			Help:      "Scenarios run, by name and final status.",
		}, []string{"scenario", "status"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "ui_automation",
			Name:      "scenario_duration_seconds",
			Help:      "Wall time of one scenario including session setup.",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 40, 80},
		}, []string{"scenario"}),
		steps: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "ui_automation",
			Name:      "step_duration_seconds",
			Help:      "Wall time of one step, by kind, action and status.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
		}, []string{"kind", "action", "status"}),
		fallbacks: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ui_automation",
			Name:      "fallbacks_total",
			Help:      "Times a fallback step used its secondary strategy.",
		}, []string{"scenario"}),
	}
}

func (c *Collector) StepFinished(kind entities.StepKind, action string, status entities.ScenarioStatus, seconds float64) {
	c.steps.WithLabelValues(string(kind), action, string(status)).Observe(seconds)
}

func (c *Collector) FallbackUsed(scenario string) {
	c.fallbacks.WithLabelValues(scenario).Inc()
}

func (c *Collector) ScenarioFinished(name string, status entities.ScenarioStatus, seconds float64) {
	c.scenarios.WithLabelValues(name, string(status)).Inc()
	c.duration.WithLabelValues(name).Observe(seconds)
}

// Registry exposes the underlying registry, e.g. for promhttp.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// WriteTextfile atomically writes all metrics to path.
func (c *Collector) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, c.registry)
}
