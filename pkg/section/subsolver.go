package section

import "github.com/copperline/meshroute/pkg/mesh"

// SubSolver is the injected per-section pathing engine. The extractor
// drives it through Step and mirrors its terminal state; no other
// method is called on it.
type SubSolver interface {
	Step()
	Solved() bool
	Failed() bool
	Err() error
}

// SubSolverInput is everything a sub-solver receives at construction.
type SubSolverInput struct {
	Terminals       []Terminal
	Nodes           []mesh.NodeID
	Edges           []mesh.Edge
	Colors          map[string]string
	HyperParameters HyperParameters
}

// SubSolverFactory builds a sub-solver for one extracted section.
type SubSolverFactory func(input SubSolverInput) SubSolver
