package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry bundles all solver metrics behind a private prometheus
// registry, so independent pipelines don't collide on collector names.
// A nil *Registry is valid and records nothing.
type Registry struct {
	registry *prometheus.Registry

	// Solver driver metrics
	SolveRunsTotal *prometheus.CounterVec
	SolveDuration  *prometheus.HistogramVec
	SolveSteps     *prometheus.HistogramVec
	SolveFailures  *prometheus.CounterVec

	// Segment assignment metrics
	SegmentsAssignedTotal *prometheus.CounterVec

	// Section extraction metrics
	SectionsExtractedTotal prometheus.Counter
	SectionNodes           prometheus.Histogram
	SectionEdges           prometheus.Histogram
	SectionTerminals       prometheus.Histogram
}

// NewRegistry creates a registry with all solver metrics registered.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}
	r.initSolverMetrics()
	r.initSectionMetrics()
	return r
}

// Gatherer exposes the underlying registry for scraping or testing.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}
