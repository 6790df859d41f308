// Package metrics collects operation counters and gauges for the stores and
// algorithms on a private Prometheus registry.
package metrics

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const namespace = "transitnet"

// Result labels.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Metrics owns a registry and the collectors registered on it.
type Metrics struct {
	registry *prometheus.Registry

	// Operations counts store operations by store/op/result.
	Operations *prometheus.CounterVec

	// Nodes, Edges and Vehicles track the live size of each store.
	Nodes    prometheus.Gauge
	Edges    prometheus.Gauge
	Vehicles prometheus.Gauge

	// Visits counts traversal visits by algorithm (bfs/dfs).
	Visits *prometheus.CounterVec

	// PathDuration measures shortest path computations.
	PathDuration prometheus.Histogram
}

// New creates a Metrics with all collectors registered.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "operations_total",
				Help:      "Store operations by outcome",
			},
			[]string{"store", "op", "result"},
		),
		Nodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "nodes",
			Help:      "Live nodes in the network",
		}),
		Edges: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "edges",
			Help:      "Edges in the network",
		}),
		Vehicles: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "vehicles",
			Help:      "Active vehicles in the registry",
		}),
		Visits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "traversal_visits_total",
				Help:      "Nodes visited by traversals",
			},
			[]string{"algorithm"},
		),
		PathDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "shortest_path_duration_seconds",
			Help:      "Shortest path computation latency in seconds",
			Buckets:   []float64{.00001, .0001, .001, .01, .1, 1},
		}),
	}
	m.registry.MustRegister(m.Operations, m.Nodes, m.Edges, m.Vehicles, m.Visits, m.PathDuration)
	return m
}

// Observe records one store operation.
func (m *Metrics) Observe(store, op string, err error) {
	result := ResultOK
	if err != nil {
		result = ResultError
	}
	m.Operations.WithLabelValues(store, op, result).Inc()
}

// ObservePath records how long a shortest path query took.
func (m *Metrics) ObservePath(d time.Duration) {
	m.PathDuration.Observe(d.Seconds())
}

// Registry exposes the underlying registry, e.g. for tests.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// WriteText writes every metric family in the Prometheus text format.
func (m *Metrics) WriteText(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}
