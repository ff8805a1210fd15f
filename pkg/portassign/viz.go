package portassign

import (
	"fmt"

	"github.com/copperline/meshroute/pkg/viz"
)

// layerMarkOffset separates markers of stacked layers in snapshots.
const layerMarkOffset = 0.2

var dashPattern = []float64{2, 2}

// Visualize snapshots the engine: every segment as a line, every
// assigned point as a labelled marker (with a dashed offset mark when
// it sits above layer 0), and a dashed polyline linking the points of
// one connection inside one node.
func (e *Engine) Visualize() *viz.Graphics {
	g := viz.NewGraphics(fmt.Sprintf("port assignment (%d/%d segments)",
		len(e.assigned), len(e.assigned)+len(e.unassigned)))

	for _, s := range e.unassigned {
		g.AddSegment(
			viz.XY{X: s.seg.Start.X, Y: s.seg.Start.Y},
			viz.XY{X: s.seg.End.X, Y: s.seg.End.Y},
			"gray", nil,
		)
	}

	type nodeConn struct {
		node string
		conn string
	}
	polylines := make(map[nodeConn][]viz.XY)
	polyOrder := make([]nodeConn, 0)

	for _, s := range e.assigned {
		g.AddSegment(
			viz.XY{X: s.seg.Start.X, Y: s.seg.Start.Y},
			viz.XY{X: s.seg.End.X, Y: s.seg.End.Y},
			"gray", nil,
		)
		for _, p := range s.points {
			color := e.colors[p.Connection]
			if p.Z != 0 {
				// Dashed offset mark so overlapping layers stay readable.
				off := layerMarkOffset * float64(p.Z)
				g.AddSegment(
					viz.XY{X: p.X, Y: p.Y},
					viz.XY{X: p.X + off, Y: p.Y + off},
					color, dashPattern,
				)
			}
			g.AddPoint(viz.Point{
				X: p.X,
				Y: p.Y,
				Label: fmt.Sprintf("%s %s z=%v %s",
					s.seg.NodeID, p.Connection, s.seg.AvailableZ, s.seg.ID),
				Color: color,
			})

			key := nodeConn{node: string(s.seg.NodeID), conn: p.Connection}
			if _, seen := polylines[key]; !seen {
				polyOrder = append(polyOrder, key)
			}
			polylines[key] = append(polylines[key], viz.XY{X: p.X, Y: p.Y})
		}
	}

	// One dashed polyline per (node, connection) with multiple points,
	// showing multi-layer continuity of a single connection.
	for _, key := range polyOrder {
		pts := polylines[key]
		if len(pts) < 2 {
			continue
		}
		g.AddLine(viz.Line{
			Points:      pts,
			StrokeColor: e.colors[key.conn],
			StrokeDash:  dashPattern,
		})
	}

	return g
}
