// Package section decomposes the capacity mesh into a bounded-radius
// neighbourhood around a focus node and trims global connection paths
// to that neighbourhood, so an injected sub-solver can search for
// concrete paths inside it.
package section

import (
	"fmt"

	"github.com/copperline/meshroute/pkg/logging"
	"github.com/copperline/meshroute/pkg/mesh"
	"github.com/copperline/meshroute/pkg/metrics"
	"github.com/copperline/meshroute/pkg/solver"
)

// ExtractorOptions configures a section extraction.
type ExtractorOptions struct {
	Hyper   *HyperParameters // nil means DefaultHyperParameters
	Colors  map[string]string
	Logger  logging.Logger
	Metrics *metrics.Registry
}

// Extractor computes the section eagerly at construction and then only
// forwards stepping to the sub-solver, mirroring its terminal state.
type Extractor struct {
	focus  mesh.NodeID
	hyper  HyperParameters
	lookup *mesh.Lookup
	colors map[string]string
	logger logging.Logger

	nodes     []mesh.NodeID // BFS discovery order, focus first
	nodeSet   map[mesh.NodeID]bool
	edges     []mesh.Edge
	terminals []Terminal

	sub   SubSolver
	state solver.State
	err   error
}

type bfsEntry struct {
	id  mesh.NodeID
	hop int
}

// NewExtractor extracts the hop-bounded section around focus and
// constructs the sub-solver through factory. The node, edge, and path
// collections are read, never mutated.
func NewExtractor(
	focus mesh.NodeID,
	paths []mesh.ConnectionPath,
	nodes []mesh.Node,
	edges []mesh.Edge,
	factory SubSolverFactory,
	opts ExtractorOptions,
) (*Extractor, error) {
	if factory == nil {
		return nil, newExtractorError("nil sub-solver factory")
	}
	hyper := DefaultHyperParameters()
	if opts.Hyper != nil {
		hyper = *opts.Hyper
	}
	if hyper.HopRadius < 1 {
		return nil, newExtractorError(fmt.Sprintf("hop radius must be >= 1, got %d", hyper.HopRadius))
	}
	lookup, err := mesh.NewLookup(nodes)
	if err != nil {
		return nil, &solver.Error{Op: "NewExtractor", Solver: "section", Cause: err}
	}
	if !lookup.Contains(focus) {
		return nil, newExtractorError(fmt.Sprintf("focus node %q not in mesh", focus))
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	x := &Extractor{
		focus:  focus,
		hyper:  hyper,
		lookup: lookup,
		colors: opts.Colors,
		logger: logger.With(
			logging.Component("section"),
			logging.NodeID(string(focus)),
			logging.HopRadius(hyper.HopRadius)),
	}

	x.extractNodes(edges)
	x.extractEdges(edges)
	x.trimTerminals(paths)

	opts.Metrics.RecordSectionExtraction(len(x.nodes), len(x.edges), len(x.terminals))
	x.logger.Info("section extracted",
		logging.Int("nodes", len(x.nodes)),
		logging.Int("edges", len(x.edges)),
		logging.Int("terminals", len(x.terminals)))

	x.sub = factory(SubSolverInput{
		Terminals:       x.terminals,
		Nodes:           x.nodes,
		Edges:           x.edges,
		Colors:          opts.Colors,
		HyperParameters: hyper,
	})
	if x.sub == nil {
		return nil, newExtractorError("sub-solver factory returned nil")
	}
	return x, nil
}

func newExtractorError(context string) error {
	return &solver.Error{
		Op:      "NewExtractor",
		Solver:  "section",
		Cause:   solver.ErrInvalidInput,
		Context: context,
	}
}

// extractNodes runs a hop-bounded BFS from the focus node. Nodes at
// depth hopRadius are included but their neighbours are not enqueued.
func (x *Extractor) extractNodes(edges []mesh.Edge) {
	adjacency := mesh.NewAdjacency(edges)

	x.nodeSet = map[mesh.NodeID]bool{x.focus: true}
	x.nodes = []mesh.NodeID{x.focus}

	queue := []bfsEntry{{id: x.focus, hop: 0}}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current.hop >= x.hyper.HopRadius {
			continue
		}
		for _, neighbour := range adjacency.Neighbours(current.id) {
			if x.nodeSet[neighbour] || !x.lookup.Contains(neighbour) {
				continue
			}
			x.nodeSet[neighbour] = true
			x.nodes = append(x.nodes, neighbour)
			queue = append(queue, bfsEntry{id: neighbour, hop: current.hop + 1})
		}
	}
}

// extractEdges keeps exactly the mesh edges with both endpoints inside
// the section node set.
func (x *Extractor) extractEdges(edges []mesh.Edge) {
	for _, e := range edges {
		if x.nodeSet[e.A] && x.nodeSet[e.B] {
			x.edges = append(x.edges, e)
		}
	}
}

// trimTerminals cuts each global connection path down to its first and
// last node inside the section. Paths that never enter the section
// contribute no terminal.
func (x *Extractor) trimTerminals(paths []mesh.ConnectionPath) {
	for _, path := range paths {
		var start, end mesh.NodeID
		found := false
		for _, id := range path.Nodes {
			if x.nodeSet[id] {
				start = id
				found = true
				break
			}
		}
		if !found {
			continue
		}
		for i := len(path.Nodes) - 1; i >= 0; i-- {
			if x.nodeSet[path.Nodes[i]] {
				end = path.Nodes[i]
				break
			}
		}
		x.terminals = append(x.terminals, Terminal{
			Connection:  path.Name,
			StartNodeID: start,
			EndNodeID:   end,
		})
	}
}

// Step forwards one unit of work to the sub-solver and mirrors its
// terminal state. A sub-solver failure is copied verbatim, never
// reinterpreted. No-op once terminal.
func (x *Extractor) Step() {
	if x.state != solver.StateUnsolved {
		return
	}
	x.sub.Step()
	switch {
	case x.sub.Solved():
		x.state = solver.StateSolved
	case x.sub.Failed():
		x.err = x.sub.Err()
		x.state = solver.StateFailed
		x.logger.Error("sub-solver failed", logging.Error(x.err))
	}
}

// Solved reports whether the sub-solver finished successfully.
func (x *Extractor) Solved() bool { return x.state == solver.StateSolved }

// Failed reports whether the sub-solver failed.
func (x *Extractor) Failed() bool { return x.state == solver.StateFailed }

// Err returns the sub-solver's error, nil unless Failed.
func (x *Extractor) Err() error { return x.err }

// Focus returns the focus node ID.
func (x *Extractor) Focus() mesh.NodeID { return x.focus }

// Nodes returns the section node IDs in BFS discovery order, focus
// first. The returned slice must not be mutated.
func (x *Extractor) Nodes() []mesh.NodeID { return x.nodes }

// Edges returns the section edges. The returned slice must not be mutated.
func (x *Extractor) Edges() []mesh.Edge { return x.edges }

// Terminals returns the trimmed connection terminals. The returned
// slice must not be mutated.
func (x *Extractor) Terminals() []Terminal { return x.terminals }

// Contains reports whether id is part of the section.
func (x *Extractor) Contains(id mesh.NodeID) bool { return x.nodeSet[id] }
