package mesh

// NodeID identifies a mesh node.
type NodeID string

// Point is a 2D coordinate on the board plane.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Point3 is a board coordinate with a copper layer index.
type Point3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z int     `json:"z"`
}

// Node is one routable region of the capacity mesh.
// Nodes are immutable once constructed; both engines only read them.
type Node struct {
	ID     NodeID
	Center Point
	Width  float64
	Height float64
}

// Edge joins two adjacent mesh nodes. The pair is unordered.
type Edge struct {
	A NodeID
	B NodeID
}

// Touches reports whether the edge has id as one of its endpoints.
func (e Edge) Touches(id NodeID) bool {
	return e.A == id || e.B == id
}

// Other returns the endpoint opposite to id, or false if id is not an endpoint.
func (e Edge) Other(id NodeID) (NodeID, bool) {
	switch id {
	case e.A:
		return e.B, true
	case e.B:
		return e.A, true
	}
	return "", false
}

// ConnectionPath is one named connection's global route through the mesh,
// as produced by the upstream pathing stage. Read-only input here.
type ConnectionPath struct {
	Name  string
	Nodes []NodeID
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Point) Point {
	return Point{
		X: (a.X + b.X) / 2,
		Y: (a.Y + b.Y) / 2,
	}
}

// Lerp returns the point at fraction t along the a→b vector.
func Lerp(a, b Point, t float64) Point {
	return Point{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}
