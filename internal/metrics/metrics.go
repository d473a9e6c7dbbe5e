// Package metrics exposes Prometheus instrumentation for status tree
// builds and status resolution. Collectors register with the default
// registry; binaries that serve /metrics pick them up automatically.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "fedcal"

// Tree labels.
const (
	TreeCR      = "cr"
	TreeGap     = "gap"
	TreeUnified = "unified"
)

// Resolve results.
const (
	ResultOK           = "ok"
	ResultInvalidInput = "invalid_input"
	ResultIntegrity    = "integrity"
	ResultError        = "error"
)

var (
	// buildDuration measures tree construction.
	// Labels: tree (cr, gap, unified)
	buildDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "tree",
		Name:      "build_duration_seconds",
		Help:      "Status tree build latency in seconds",
		Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
	}, []string{"tree"})

	// builds counts build attempts.
	// Labels: tree, result (ok, error)
	builds = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "tree",
		Name:      "builds_total",
		Help:      "Status tree builds by result",
	}, []string{"tree", "result"})

	// records tracks the size of the most recently built tree.
	// Labels: tree
	records = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "tree",
		Name:      "records",
		Help:      "Interval records held by the last built tree",
	}, []string{"tree"})

	// resolves counts status resolutions.
	// Labels: result (ok, invalid_input, integrity, error)
	resolves = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "resolver",
		Name:      "resolves_total",
		Help:      "Status resolutions by result",
	}, []string{"result"})

	resolveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "resolver",
		Name:      "resolve_duration_seconds",
		Help:      "Status resolution latency in seconds",
		Buckets:   []float64{0.000001, 0.000005, 0.00001, 0.00005, 0.0001, 0.0005, 0.001},
	})
)

// RecordBuild records one tree build.
func RecordBuild(tree string, d time.Duration, size int, err error) {
	buildDuration.WithLabelValues(tree).Observe(d.Seconds())
	result := ResultOK
	if err != nil {
		result = ResultError
	} else {
		records.WithLabelValues(tree).Set(float64(size))
	}
	builds.WithLabelValues(tree, result).Inc()
}

// RecordResolve records one resolution and its outcome.
func RecordResolve(result string, d time.Duration) {
	resolves.WithLabelValues(result).Inc()
	resolveDuration.Observe(d.Seconds())
}
