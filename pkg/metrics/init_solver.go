package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initSolverMetrics() {
	r.SolveRunsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "meshroute_solve_runs_total",
			Help: "Total number of solver runs driven to a terminal state",
		},
		[]string{"solver", "status"},
	)

	r.SolveDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "meshroute_solve_duration_seconds",
			Help:    "Wall-clock duration of a solver run",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
		},
		[]string{"solver"},
	)

	r.SolveSteps = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "meshroute_solve_steps",
			Help:    "Number of step() calls per solver run",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000},
		},
		[]string{"solver"},
	)

	r.SolveFailures = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "meshroute_solve_failures_total",
			Help: "Solver failures by error kind",
		},
		[]string{"solver", "kind"},
	)

	r.SegmentsAssignedTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "meshroute_segments_assigned_total",
			Help: "Port segments assigned, by assignment phase",
		},
		[]string{"phase"},
	)
}
