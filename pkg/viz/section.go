package viz

import (
	"fmt"

	"github.com/copperline/meshroute/pkg/mesh"
)

// TerminalMark is the section-local entry/exit pair of one connection,
// as supplied by the section extractor for rendering.
type TerminalMark struct {
	Connection  string
	StartNodeID mesh.NodeID
	EndNodeID   mesh.NodeID
}

// RenderSection builds a snapshot of an extracted section: one rectangle
// per section node, one line per section edge, and start/end markers for
// every terminal. The focus node is stroked distinctly. Nodes missing
// from the lookup are skipped rather than invented.
func RenderSection(
	nodes []mesh.NodeID,
	edges []mesh.Edge,
	terminals []TerminalMark,
	lookup *mesh.Lookup,
	colors map[string]string,
	focus mesh.NodeID,
	title string,
) *Graphics {
	g := NewGraphics(title)

	for _, id := range nodes {
		n, ok := lookup.Get(id)
		if !ok {
			continue
		}
		stroke := "gray"
		if id == focus {
			stroke = "red"
		}
		g.AddRect(Rect{
			CenterX: n.Center.X,
			CenterY: n.Center.Y,
			Width:   n.Width,
			Height:  n.Height,
			Label:   string(id),
			Stroke:  stroke,
		})
	}

	for _, e := range edges {
		a, okA := lookup.Get(e.A)
		b, okB := lookup.Get(e.B)
		if !okA || !okB {
			continue
		}
		g.AddSegment(
			XY{X: a.Center.X, Y: a.Center.Y},
			XY{X: b.Center.X, Y: b.Center.Y},
			"gray", nil,
		)
	}

	for _, t := range terminals {
		color := colors[t.Connection]
		start, okS := lookup.Get(t.StartNodeID)
		end, okE := lookup.Get(t.EndNodeID)
		if okS {
			g.AddPoint(Point{
				X:     start.Center.X,
				Y:     start.Center.Y,
				Label: fmt.Sprintf("%s start", t.Connection),
				Color: color,
			})
		}
		if okE {
			g.AddPoint(Point{
				X:     end.Center.X,
				Y:     end.Center.Y,
				Label: fmt.Sprintf("%s end", t.Connection),
				Color: color,
			})
		}
	}

	return g
}
