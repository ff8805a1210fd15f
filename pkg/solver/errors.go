package solver

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrIterationLimit reports that the driver's iteration budget was
	// exhausted before the solver reached a terminal state. Fatal and
	// non-retryable at the same budget.
	ErrIterationLimit = errors.New("iteration limit exceeded")

	// ErrNotSolved reports a query made before the solver reached the
	// solved state.
	ErrNotSolved = errors.New("solver has not reached solved state")

	// ErrInvalidInput reports malformed construction input.
	ErrInvalidInput = errors.New("invalid input")
)

// Error provides structured error information for solver operations.
type Error struct {
	Op      string // operation that failed (e.g. "Run", "AssignedPortPoints")
	Solver  string // solver kind (e.g. "portassign", "section")
	Cause   error  // underlying error
	Context string // additional context
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s %s (%s): %v", e.Solver, e.Op, e.Context, e.Cause)
	}
	return fmt.Sprintf("%s %s: %v", e.Solver, e.Op, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Kind maps an error to a metrics-friendly failure kind label.
func Kind(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, ErrIterationLimit):
		return "iteration_limit"
	case errors.Is(err, ErrNotSolved):
		return "precondition"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	default:
		return "solver"
	}
}
