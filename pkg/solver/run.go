package solver

import (
	"time"

	"github.com/google/uuid"

	"github.com/copperline/meshroute/pkg/logging"
	"github.com/copperline/meshroute/pkg/metrics"
)

// DefaultMaxIterations is the driver's iteration budget. It exists to
// guarantee termination even if a solver has a non-convergence bug.
const DefaultMaxIterations = 100000

// RunOptions configures the driver loop.
type RunOptions struct {
	Solver        string            // solver kind label for logs and metrics
	MaxIterations int               // 0 means DefaultMaxIterations
	Logger        logging.Logger    // nil means NopLogger
	Metrics       *metrics.Registry // nil records nothing
}

// RunResult summarises one driven run.
type RunResult struct {
	RunID    string
	State    State
	Steps    int
	Duration time.Duration
}

// Run steps s until it reaches a terminal state or the iteration budget
// is exhausted. Exceeding the budget is surfaced as ErrIterationLimit;
// a solver failure is returned as the solver's own error, untouched.
func Run(s Solver, opts RunOptions) (*RunResult, error) {
	maxIterations := opts.MaxIterations
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	kind := opts.Solver
	if kind == "" {
		kind = "solver"
	}

	result := &RunResult{RunID: uuid.NewString()}
	logger = logger.With(logging.RunID(result.RunID), logging.Component(kind))
	logger.Debug("solver run starting", logging.Int("max_iterations", maxIterations))

	start := time.Now()
	for !s.Solved() && !s.Failed() {
		if result.Steps >= maxIterations {
			result.State = StateFailed
			result.Duration = time.Since(start)
			err := &Error{Op: "Run", Solver: kind, Cause: ErrIterationLimit}
			opts.Metrics.RecordSolve(kind, "aborted", result.Duration, result.Steps)
			opts.Metrics.RecordFailure(kind, Kind(err))
			logger.Error("solver run aborted", logging.Steps(result.Steps), logging.Error(err))
			return result, err
		}
		s.Step()
		result.Steps++
	}
	result.Duration = time.Since(start)

	if s.Failed() {
		result.State = StateFailed
		err := s.Err()
		opts.Metrics.RecordSolve(kind, "failed", result.Duration, result.Steps)
		opts.Metrics.RecordFailure(kind, Kind(err))
		logger.Error("solver run failed",
			logging.Steps(result.Steps),
			logging.Latency(result.Duration),
			logging.Error(err))
		return result, err
	}

	result.State = StateSolved
	opts.Metrics.RecordSolve(kind, "solved", result.Duration, result.Steps)
	logger.Info("solver run solved",
		logging.Steps(result.Steps),
		logging.Latency(result.Duration))
	return result, nil
}
