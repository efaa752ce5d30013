// Package metrics declares the prometheus collectors of the max-flow solver.
// Programs register them with prometheus.MustRegister(metrics.Collectors()...).
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Keys for solve status labels.
const (
	Fail = "fail"
	Ok   = "ok"
)

// Collectors for flow.EdmondsKarp.
var (
	SolveTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "maxflow_solve_total",
		Help: "Cumulative number of max-flow solves, by status.",
	}, []string{"status"})
	AugmentingPathsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "maxflow_augmenting_paths_total",
		Help: "Cumulative number of augmenting paths applied.",
	})
	FlowUnitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "maxflow_flow_units_total",
		Help: "Cumulative units of flow pushed from sources to sinks.",
	})
	SolveDurationSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "maxflow_solve_duration_seconds",
		Help:    "Wall-clock duration of max-flow solves.",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
	})
)

// Collectors returns all solver collectors.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		SolveTotal,
		AugmentingPathsTotal,
		FlowUnitsTotal,
		SolveDurationSeconds,
	}
}
