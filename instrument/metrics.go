package instrument

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds the algorithm metrics. It is kept apart from the default
// registry so a short-lived process can dump exactly these series to a
// textfile-collector file.
var Registry = prometheus.NewRegistry() //nolint:gochecknoglobals

var (
	runs = promauto.With(Registry).NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "algorithms_runs_total",
		Help: "The total number of times an algorithm was run",
	}, []string{"algorithm"})

	comparisonsTotal = promauto.With(Registry).NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "algorithms_comparisons_total",
		Help: "The total number of element comparisons performed",
	}, []string{"algorithm"})

	comparisonsPerRun = promauto.With(Registry).NewHistogramVec(prometheus.HistogramOpts{ //nolint:gochecknoglobals
		Name:    "algorithms_comparisons",
		Help:    "Element comparisons performed by a single run",
		Buckets: prometheus.ExponentialBuckets(1, 2, 12), //nolint:mnd
	}, []string{"algorithm"})
)

// Observe records one run of the named algorithm and the comparisons it made.
func Observe(algorithm string, comparisons int64) {
	runs.WithLabelValues(algorithm).Inc()
	comparisonsTotal.WithLabelValues(algorithm).Add(float64(comparisons))
	comparisonsPerRun.WithLabelValues(algorithm).Observe(float64(comparisons))
}

// WriteTextfile writes the current metrics in the Prometheus text format to
// path, for pickup by node_exporter's textfile collector.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, Registry)
}
