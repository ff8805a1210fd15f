package metrics

import (
	"time"
)

// RecordSolve records one completed solver run. status is "solved",
// "failed" or "aborted" (iteration budget exceeded).
func (r *Registry) RecordSolve(solver, status string, duration time.Duration, steps int) {
	if r == nil {
		return
	}
	r.SolveRunsTotal.WithLabelValues(solver, status).Inc()
	r.SolveDuration.WithLabelValues(solver).Observe(duration.Seconds())
	r.SolveSteps.WithLabelValues(solver).Observe(float64(steps))
}

// RecordFailure records a solver failure with its error kind.
func (r *Registry) RecordFailure(solver, kind string) {
	if r == nil {
		return
	}
	r.SolveFailures.WithLabelValues(solver, kind).Inc()
}

// RecordAssignment records segments assigned in one phase execution.
func (r *Registry) RecordAssignment(phase string, segments int) {
	if r == nil {
		return
	}
	r.SegmentsAssignedTotal.WithLabelValues(phase).Add(float64(segments))
}

// RecordSectionExtraction records the shape of one extracted section.
func (r *Registry) RecordSectionExtraction(nodes, edges, terminals int) {
	if r == nil {
		return
	}
	r.SectionsExtractedTotal.Inc()
	r.SectionNodes.Observe(float64(nodes))
	r.SectionEdges.Observe(float64(edges))
	r.SectionTerminals.Observe(float64(terminals))
}
