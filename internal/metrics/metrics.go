// Package metrics holds the Prometheus collectors for model evaluation. Each
// Metrics value owns its own registry so several instances can coexist.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	Registry *prometheus.Registry

	CacheLookups    *prometheus.CounterVec
	CachedModels    prometheus.Gauge
	ModelsEvaluated prometheus.Counter
	Comparisons     prometheus.Counter
	StateSpaceSize  prometheus.Histogram
}

// New creates and registers all metrics on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		Registry: reg,
		CacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ramodel_cache_lookups_total",
			Help: "Total number of model cache lookups by result",
		}, []string{"result"}),
		CachedModels: factory.NewGauge(prometheus.GaugeOpts{
			Name: "ramodel_cached_models",
			Help: "Current number of models held by the model cache",
		}),
		ModelsEvaluated: factory.NewCounter(prometheus.CounterOpts{
			Name: "ramodel_models_evaluated_total",
			Help: "Total number of models evaluated",
		}),
		Comparisons: factory.NewCounter(prometheus.CounterOpts{
			Name: "ramodel_model_comparisons_total",
			Help: "Total number of model containment and equivalence comparisons",
		}),
		StateSpaceSize: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "ramodel_structure_matrix_states",
			Help:    "Number of state-space columns in built structure matrices",
			Buckets: prometheus.ExponentialBuckets(2, 4, 10),
		}),
	}
}

// IncrementCacheHits records a successful cache lookup. Safe on a nil receiver.
func (m *Metrics) IncrementCacheHits() {
	if m != nil {
		m.CacheLookups.WithLabelValues("hit").Inc()
	}
}

// IncrementCacheMisses records a failed cache lookup.
func (m *Metrics) IncrementCacheMisses() {
	if m != nil {
		m.CacheLookups.WithLabelValues("miss").Inc()
	}
}

func (m *Metrics) SetCachedModels(count int) {
	if m != nil {
		m.CachedModels.Set(float64(count))
	}
}

func (m *Metrics) IncrementModelsEvaluated() {
	if m != nil {
		m.ModelsEvaluated.Inc()
	}
}

func (m *Metrics) IncrementComparisons() {
	if m != nil {
		m.Comparisons.Inc()
	}
}

func (m *Metrics) ObserveStateSpace(states int) {
	if m != nil {
		m.StateSpaceSize.Observe(float64(states))
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// WriteToTextfile writes the current values to path in the text format.
func (m *Metrics) WriteToTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}
