package mesh

import "fmt"

// Lookup is a build-once mapping from node ID to node record.
// It is constructed from the mesh node list and never mutated afterwards,
// so it is safe to share read-only between solver instances.
type Lookup struct {
	byID map[NodeID]Node
}

// NewLookup builds a lookup from the given nodes.
// Duplicate IDs in the input are rejected.
func NewLookup(nodes []Node) (*Lookup, error) {
	byID := make(map[NodeID]Node, len(nodes))
	for _, n := range nodes {
		if _, exists := byID[n.ID]; exists {
			return nil, fmt.Errorf("node %q: %w", n.ID, ErrDuplicateNodeID)
		}
		byID[n.ID] = n
	}
	return &Lookup{byID: byID}, nil
}

// Get returns the node with the given ID.
func (l *Lookup) Get(id NodeID) (Node, bool) {
	n, ok := l.byID[id]
	return n, ok
}

// Contains reports whether a node with the given ID exists.
func (l *Lookup) Contains(id NodeID) bool {
	_, ok := l.byID[id]
	return ok
}

// Len returns the number of nodes in the lookup.
func (l *Lookup) Len() int {
	return len(l.byID)
}
