// Package solver defines the stepwise lifecycle shared by every engine
// in the routing core, plus the driver loop that steps a solver to a
// terminal state under an iteration budget.
package solver

import "github.com/copperline/meshroute/pkg/viz"

// State is a solver's lifecycle state. Solvers start Unsolved and move
// exactly once to Solved or Failed; both are terminal.
type State int

const (
	StateUnsolved State = iota
	StateSolved
	StateFailed
)

// String returns the string representation of a state
func (s State) String() string {
	switch s {
	case StateUnsolved:
		return "unsolved"
	case StateSolved:
		return "solved"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Solver is the stepwise execution contract. Step performs one bounded
// unit of work; calling it after a terminal state is a no-op.
type Solver interface {
	Step()
	Solved() bool
	Failed() bool
	Err() error
}

// Visualizer is implemented by solvers that can snapshot their internal
// state as a debug graphics object. Purely observational.
type Visualizer interface {
	Visualize() *viz.Graphics
}
