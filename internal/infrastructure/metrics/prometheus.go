package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusExporter exports collector metrics in Prometheus format. Each
// exporter carries its own registry, so its HTTP handler serves exactly the
// graph metrics and repeated construction never collides on metric names.
type PrometheusExporter struct {
	collector *Collector
	registry  *prometheus.Registry

	nodesCreated prometheus.CounterFunc
	nodesDeleted prometheus.CounterFunc
	edgesCreated prometheus.CounterFunc
	edgesDeleted prometheus.CounterFunc
	rejections   *prometheus.GaugeVec
}

// NewPrometheusExporter creates a new Prometheus exporter bound to the
// given collector.
func NewPrometheusExporter(collector *Collector) *PrometheusExporter {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	e := &PrometheusExporter{
		collector: collector,
		registry:  registry,
		nodesCreated: factory.NewCounterFunc(prometheus.CounterOpts{
			Name: "bfograph_nodes_created_total",
			Help: "Total number of nodes created",
		}, func() float64 {
			return float64(collector.GetMetrics().NodesCreated)
		}),
		nodesDeleted: factory.NewCounterFunc(prometheus.CounterOpts{
			Name: "bfograph_nodes_deleted_total",
			Help: "Total number of nodes deleted",
		}, func() float64 {
			return float64(collector.GetMetrics().NodesDeleted)
		}),
		edgesCreated: factory.NewCounterFunc(prometheus.CounterOpts{
			Name: "bfograph_edges_created_total",
			Help: "Total number of edges created",
		}, func() float64 {
			return float64(collector.GetMetrics().EdgesCreated)
		}),
		edgesDeleted: factory.NewCounterFunc(prometheus.CounterOpts{
			Name: "bfograph_edges_deleted_total",
			Help: "Total number of edges deleted",
		}, func() float64 {
			return float64(collector.GetMetrics().EdgesDeleted)
		}),
		rejections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "bfograph_validation_rejections_total",
			Help: "Total number of validation rejections by kind",
		}, []string{"kind"}),
	}
	return e
}

// Update refreshes the label-based metrics from the collector. The function
// metrics read the collector live; only the rejection gauges need this.
func (e *PrometheusExporter) Update() {
	for kind, count := range e.collector.GetMetrics().Rejections {
		e.rejections.WithLabelValues(kind).Set(float64(count))
	}
}

// Handler returns an HTTP handler serving the exporter's metrics in the
// Prometheus text format. Update runs before every scrape.
func (e *PrometheusExporter) Handler() http.Handler {
	inner := promhttp.HandlerFor(e.registry, promhttp.HandlerOpts{})
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		e.Update()
		inner.ServeHTTP(w, r)
	})
}
