package solver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copperline/meshroute/pkg/metrics"
)

// fakeSolver reaches a terminal state after a fixed number of steps.
type fakeSolver struct {
	stepsNeeded int
	steps       int
	failWith    error
	state       State
	err         error
}

func (f *fakeSolver) Step() {
	if f.state != StateUnsolved {
		return
	}
	f.steps++
	if f.steps < f.stepsNeeded {
		return
	}
	if f.failWith != nil {
		f.state = StateFailed
		f.err = f.failWith
		return
	}
	f.state = StateSolved
}

func (f *fakeSolver) Solved() bool { return f.state == StateSolved }
func (f *fakeSolver) Failed() bool { return f.state == StateFailed }
func (f *fakeSolver) Err() error   { return f.err }

func TestRun_SolvesWithinBudget(t *testing.T) {
	s := &fakeSolver{stepsNeeded: 5}

	result, err := Run(s, RunOptions{Solver: "fake"})
	require.NoError(t, err)
	assert.Equal(t, StateSolved, result.State)
	assert.Equal(t, 5, result.Steps)
	assert.NotEmpty(t, result.RunID)
}

func TestRun_IterationLimitIsDistinctErrorKind(t *testing.T) {
	// Never converges.
	s := &fakeSolver{stepsNeeded: 1 << 30}

	result, err := Run(s, RunOptions{Solver: "fake", MaxIterations: 50})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIterationLimit)
	assert.Equal(t, StateFailed, result.State)
	assert.Equal(t, 50, result.Steps)
	assert.Equal(t, "iteration_limit", Kind(err))
}

func TestRun_PropagatesSolverFailureVerbatim(t *testing.T) {
	cause := errors.New("no channel through congested region")
	s := &fakeSolver{stepsNeeded: 3, failWith: cause}

	result, err := Run(s, RunOptions{Solver: "fake"})
	require.Error(t, err)
	assert.Same(t, cause, err, "failure must not be rewrapped")
	assert.Equal(t, StateFailed, result.State)
}

func TestRun_RecordsMetrics(t *testing.T) {
	reg := metrics.NewRegistry()
	s := &fakeSolver{stepsNeeded: 2}

	_, err := Run(s, RunOptions{Solver: "fake", Metrics: reg})
	require.NoError(t, err)
	// A second, failing run.
	_, err = Run(&fakeSolver{stepsNeeded: 1, failWith: errors.New("boom")},
		RunOptions{Solver: "fake", Metrics: reg})
	require.Error(t, err)

	families, err := reg.Gatherer().Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestRun_StepAfterTerminalIsNoOp(t *testing.T) {
	s := &fakeSolver{stepsNeeded: 1}
	_, err := Run(s, RunOptions{Solver: "fake"})
	require.NoError(t, err)

	before := s.steps
	s.Step()
	s.Step()
	assert.Equal(t, before, s.steps)
	assert.True(t, s.Solved())
}

func TestKind(t *testing.T) {
	assert.Equal(t, "none", Kind(nil))
	assert.Equal(t, "precondition", Kind(&Error{Op: "Query", Solver: "portassign", Cause: ErrNotSolved}))
	assert.Equal(t, "invalid_input", Kind(&Error{Op: "New", Solver: "section", Cause: ErrInvalidInput}))
	assert.Equal(t, "solver", Kind(errors.New("anything else")))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "unsolved", StateUnsolved.String())
	assert.Equal(t, "solved", StateSolved.String())
	assert.Equal(t, "failed", StateFailed.String())
}
