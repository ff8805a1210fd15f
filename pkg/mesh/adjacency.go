package mesh

// Adjacency maps a node ID to its neighbours. Neighbour order follows
// edge input order, which keeps traversals over it deterministic.
type Adjacency map[NodeID][]NodeID

// NewAdjacency builds an undirected adjacency map from the given edges.
// Self-loops contribute a single neighbour entry.
func NewAdjacency(edges []Edge) Adjacency {
	adj := make(Adjacency)
	for _, e := range edges {
		adj[e.A] = append(adj[e.A], e.B)
		if e.A != e.B {
			adj[e.B] = append(adj[e.B], e.A)
		}
	}
	return adj
}

// Neighbours returns the neighbours of id, nil if the node has no edges.
func (a Adjacency) Neighbours(id NodeID) []NodeID {
	return a[id]
}
