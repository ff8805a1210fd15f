// Package portassign assigns concrete (x, y, z) crossing points to the
// connections of node port segments. Single-connection segments take
// the segment midpoint; everything else is resolved by a deterministic
// fewest-connections-first fallback with lexicographic ordering.
package portassign

import (
	"fmt"
	"sort"

	"github.com/copperline/meshroute/pkg/logging"
	"github.com/copperline/meshroute/pkg/mesh"
	"github.com/copperline/meshroute/pkg/metrics"
	"github.com/copperline/meshroute/pkg/solver"
)

// EngineOptions configures a point assignment engine. The color map is
// cosmetic and only affects debug snapshots.
type EngineOptions struct {
	Colors  map[string]string
	Logger  logging.Logger
	Metrics *metrics.Registry
}

// Engine assigns port points to segments one step at a time. Each step
// runs exactly one phase and assigns at least one segment, so the
// engine reaches solved in at most len(segments) steps.
type Engine struct {
	lookup  *mesh.Lookup
	colors  map[string]string
	logger  logging.Logger
	metrics *metrics.Registry

	unassigned []*segmentState
	assigned   []*segmentState

	state solver.State
	err   error
}

// NewEngine validates the segments against the node lookup and builds
// an engine. Segments must have at least one available layer, at least
// one connection, and an owning node present in the lookup.
func NewEngine(segments []PortSegment, lookup *mesh.Lookup, opts EngineOptions) (*Engine, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	unassigned := make([]*segmentState, 0, len(segments))
	for _, seg := range segments {
		if len(seg.AvailableZ) == 0 {
			return nil, newInputError(seg.ID, "no available layers")
		}
		if len(seg.Connections) == 0 {
			return nil, newInputError(seg.ID, "no connections")
		}
		if !lookup.Contains(seg.NodeID) {
			return nil, newInputError(seg.ID, fmt.Sprintf("unknown node %q", seg.NodeID))
		}
		unassigned = append(unassigned, &segmentState{seg: seg})
	}

	return &Engine{
		lookup:     lookup,
		colors:     opts.Colors,
		logger:     logger.With(logging.Component("portassign")),
		metrics:    opts.Metrics,
		unassigned: unassigned,
		assigned:   make([]*segmentState, 0, len(segments)),
	}, nil
}

func newInputError(segmentID, context string) error {
	return &solver.Error{
		Op:      "NewEngine",
		Solver:  "portassign",
		Cause:   solver.ErrInvalidInput,
		Context: fmt.Sprintf("segment %q: %s", segmentID, context),
	}
}

// Step performs one assignment phase: either it drains every trivial
// single-connection segment, or it resolves exactly one segment via the
// fallback. A no-op once the engine is solved.
func (e *Engine) Step() {
	if e.state != solver.StateUnsolved {
		return
	}

	if n := e.assignTrivial(); n > 0 {
		e.metrics.RecordAssignment("trivial", n)
		e.logger.Debug("trivial segments assigned", logging.Phase("trivial"), logging.Count(n))
	} else if len(e.unassigned) > 0 {
		id := e.assignFallback()
		e.metrics.RecordAssignment("fallback", 1)
		e.logger.Debug("fallback segment assigned", logging.Phase("fallback"), logging.SegmentID(id))
	}

	if len(e.unassigned) == 0 {
		e.state = solver.StateSolved
		e.logger.Info("all segments assigned", logging.Count(len(e.assigned)))
	}
}

// assignTrivial gives every unassigned single-connection segment its
// midpoint and moves it to the assigned set. Returns how many moved.
func (e *Engine) assignTrivial() int {
	moved := 0
	// Backwards so swap-remove never skips an entry.
	for i := len(e.unassigned) - 1; i >= 0; i-- {
		s := e.unassigned[i]
		if len(s.seg.Connections) != 1 {
			continue
		}
		mid := mesh.Midpoint(s.seg.Start, s.seg.End)
		s.points = []AssignedPoint{{
			Connection: s.seg.Connections[0],
			X:          mid.X,
			Y:          mid.Y,
			Z:          s.seg.AvailableZ[0],
		}}
		e.moveToAssigned(i)
		moved++
	}
	return moved
}

// assignFallback resolves the unassigned segment with the fewest
// connections (first found wins ties): connection names are sorted
// lexicographically and placed at fractions i/(n+1) along start→end.
// Returns the resolved segment's ID.
func (e *Engine) assignFallback() string {
	best := 0
	for i := 1; i < len(e.unassigned); i++ {
		if len(e.unassigned[i].seg.Connections) < len(e.unassigned[best].seg.Connections) {
			best = i
		}
	}
	s := e.unassigned[best]

	names := append([]string(nil), s.seg.Connections...)
	sort.Strings(names)

	n := len(names)
	s.points = make([]AssignedPoint, 0, n)
	for i, name := range names {
		t := float64(i+1) / float64(n+1)
		p := mesh.Lerp(s.seg.Start, s.seg.End, t)
		s.points = append(s.points, AssignedPoint{
			Connection: name,
			X:          p.X,
			Y:          p.Y,
			Z:          s.seg.AvailableZ[0],
		})
	}
	e.moveToAssigned(best)
	return s.seg.ID
}

// moveToAssigned transfers ownership of the segment at index i from the
// unassigned to the assigned collection. Assigned segments are never
// rescanned, so an assignment can never be overwritten.
func (e *Engine) moveToAssigned(i int) {
	s := e.unassigned[i]
	last := len(e.unassigned) - 1
	e.unassigned[i] = e.unassigned[last]
	e.unassigned = e.unassigned[:last]
	e.assigned = append(e.assigned, s)
}

// Solved reports whether every segment has been assigned.
func (e *Engine) Solved() bool { return e.state == solver.StateSolved }

// Failed reports whether the engine failed.
func (e *Engine) Failed() bool { return e.state == solver.StateFailed }

// Err returns the failure error, nil unless Failed.
func (e *Engine) Err() error { return e.err }

// UnassignedCount returns the number of segments still to assign.
func (e *Engine) UnassignedCount() int { return len(e.unassigned) }

// AssignedCount returns the number of segments already assigned.
func (e *Engine) AssignedCount() int { return len(e.assigned) }

// AssignedPortPoints groups every assigned point by owning mesh node.
// Precondition: the engine must be solved; calling earlier fails with
// ErrNotSolved and never returns partial data. Node order is sorted by
// node ID so output is reproducible.
func (e *Engine) AssignedPortPoints() ([]NodePorts, error) {
	if !e.Solved() {
		return nil, &solver.Error{
			Op:     "AssignedPortPoints",
			Solver: "portassign",
			Cause:  solver.ErrNotSolved,
		}
	}

	byNode := make(map[mesh.NodeID][]PortPoint)
	order := make([]mesh.NodeID, 0)
	for _, s := range e.assigned {
		if _, seen := byNode[s.seg.NodeID]; !seen {
			order = append(order, s.seg.NodeID)
		}
		for _, p := range s.points {
			byNode[s.seg.NodeID] = append(byNode[s.seg.NodeID], PortPoint{
				Point:      mesh.Point3{X: p.X, Y: p.Y, Z: p.Z},
				Connection: p.Connection,
			})
		}
	}
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	result := make([]NodePorts, 0, len(order))
	for _, id := range order {
		node, _ := e.lookup.Get(id)
		result = append(result, NodePorts{
			NodeID: id,
			Center: node.Center,
			Width:  node.Width,
			Height: node.Height,
			Points: byNode[id],
		})
	}
	return result, nil
}
