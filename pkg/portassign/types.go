package portassign

import (
	"github.com/copperline/meshroute/pkg/mesh"
)

// PortSegment is a sub-span of a mesh node's boundary that one or more
// connections must cross. Each named connection gets exactly one
// assigned point on the segment, at one of the segment's layers.
type PortSegment struct {
	ID          string
	NodeID      mesh.NodeID
	Start       mesh.Point
	End         mesh.Point
	AvailableZ  []int    // candidate copper layers, never empty
	Connections []string // connection names needing a crossing point
}

// AssignedPoint binds one connection name to a concrete coordinate on
// one segment. Z is always the segment's first available layer.
type AssignedPoint struct {
	Connection string
	X          float64
	Y          float64
	Z          int
}

// PortPoint is one assigned crossing point, as reported per node.
type PortPoint struct {
	Point      mesh.Point3
	Connection string
}

// NodePorts groups every assigned point contributed by one mesh node's
// segments, together with the node's geometry.
type NodePorts struct {
	NodeID mesh.NodeID
	Center mesh.Point
	Width  float64
	Height float64
	Points []PortPoint
}

// segmentState pairs a segment with its assignment. It lives in exactly
// one of the engine's two collections at any time; moving it from
// unassigned to assigned is the irreversible assignment transition.
type segmentState struct {
	seg    PortSegment
	points []AssignedPoint
}
