package section

import "github.com/copperline/meshroute/pkg/mesh"

// DefaultHopRadius bounds the BFS around the focus node.
const DefaultHopRadius = 3

// Terminal is the section-local entry/exit pair of one connection whose
// global path intersects the section.
type Terminal struct {
	Connection  string
	StartNodeID mesh.NodeID
	EndNodeID   mesh.NodeID
}

// HyperParameters are the named tunables forwarded to the sub-solver.
// Callers retry a failed section with different values, typically a
// larger hop radius.
type HyperParameters struct {
	HopRadius     int
	PortSpacing   float64
	MaxExpansions int
}

// DefaultHyperParameters returns the tunables used when the caller
// supplies none.
func DefaultHyperParameters() HyperParameters {
	return HyperParameters{
		HopRadius:     DefaultHopRadius,
		PortSpacing:   0.5,
		MaxExpansions: 4096,
	}
}
