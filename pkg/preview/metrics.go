package preview

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the Prometheus metrics for the preview server.
type metrics struct {
	buildsTotal   *prometheus.CounterVec
	buildDuration prometheus.Histogram
	reloadClients prometheus.GaugeFunc
}

// newMetrics registers the preview metrics with the given registry.
// clientCount feeds the connected-browser gauge.
func newMetrics(reg prometheus.Registerer, clientCount func() int) *metrics {
	factory := promauto.With(reg)

	return &metrics{
		buildsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "litbuilder",
			Subsystem: "preview",
			Name:      "builds_total",
			Help:      "Total number of descriptor builds served",
		}, []string{"status"}),

		buildDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "litbuilder",
			Subsystem: "preview",
			Name:      "build_duration_seconds",
			Help:      "Descriptor build and render duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),

		reloadClients: factory.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "litbuilder",
			Subsystem: "preview",
			Name:      "reload_clients",
			Help:      "Number of connected live-reload browsers",
		}, func() float64 {
			return float64(clientCount())
		}),
	}
}
