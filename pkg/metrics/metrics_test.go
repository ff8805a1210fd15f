package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RecordSolve(t *testing.T) {
	r := NewRegistry()

	r.RecordSolve("portassign", "solved", 25*time.Millisecond, 4)
	r.RecordSolve("portassign", "solved", 10*time.Millisecond, 2)
	r.RecordSolve("section", "failed", time.Millisecond, 1)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.SolveRunsTotal.WithLabelValues("portassign", "solved")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.SolveRunsTotal.WithLabelValues("section", "failed")))
}

func TestRegistry_RecordAssignment(t *testing.T) {
	r := NewRegistry()

	r.RecordAssignment("trivial", 3)
	r.RecordAssignment("fallback", 1)
	r.RecordAssignment("fallback", 1)

	assert.Equal(t, 3.0, testutil.ToFloat64(r.SegmentsAssignedTotal.WithLabelValues("trivial")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.SegmentsAssignedTotal.WithLabelValues("fallback")))
}

func TestRegistry_RecordSectionExtraction(t *testing.T) {
	r := NewRegistry()

	r.RecordSectionExtraction(12, 17, 4)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.SectionsExtractedTotal))

	families, err := r.Gatherer().Gather()
	require.NoError(t, err)
	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["meshroute_section_nodes"])
	assert.True(t, names["meshroute_section_edges"])
	assert.True(t, names["meshroute_section_terminals"])
}

func TestRegistry_NilSafe(t *testing.T) {
	var r *Registry
	assert.NotPanics(t, func() {
		r.RecordSolve("portassign", "solved", time.Millisecond, 1)
		r.RecordFailure("section", "iteration_limit")
		r.RecordAssignment("trivial", 1)
		r.RecordSectionExtraction(1, 1, 1)
	})
}
