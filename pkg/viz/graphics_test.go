package viz

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copperline/meshroute/pkg/mesh"
)

func TestNewGraphics_IsCartesian(t *testing.T) {
	g := NewGraphics("demo")
	assert.Equal(t, CoordinateSystemCartesian, g.CoordinateSystem)
	assert.Equal(t, "demo", g.Title)
	assert.Empty(t, g.Points)
}

func TestGraphics_Builders(t *testing.T) {
	g := NewGraphics("")
	g.AddPoint(Point{X: 1, Y: 2, Label: "p"})
	g.AddSegment(XY{X: 0, Y: 0}, XY{X: 1, Y: 1}, "red", []float64{2, 2})
	g.AddRect(Rect{CenterX: 5, CenterY: 5, Width: 2, Height: 2})
	g.AddCircle(Circle{Center: XY{X: 3, Y: 3}, Radius: 1})

	assert.Len(t, g.Points, 1)
	require.Len(t, g.Lines, 1)
	assert.Equal(t, []float64{2, 2}, g.Lines[0].StrokeDash)
	assert.Len(t, g.Rects, 1)
	assert.Len(t, g.Circles, 1)
}

func TestRenderSection_MarksFocusAndTerminals(t *testing.T) {
	lookup, err := mesh.NewLookup([]mesh.Node{
		{ID: "n0", Center: mesh.Point{X: 0, Y: 0}, Width: 4, Height: 4},
		{ID: "n1", Center: mesh.Point{X: 10, Y: 0}, Width: 4, Height: 4},
	})
	require.NoError(t, err)

	g := RenderSection(
		[]mesh.NodeID{"n0", "n1"},
		[]mesh.Edge{{A: "n0", B: "n1"}},
		[]TerminalMark{{Connection: "clk", StartNodeID: "n0", EndNodeID: "n1"}},
		lookup,
		map[string]string{"clk": "#00ff00"},
		"n1",
		"section around n1 (radius 3)",
	)

	require.Len(t, g.Rects, 2)
	var focusStroke string
	for _, r := range g.Rects {
		if r.Label == "n1" {
			focusStroke = r.Stroke
		}
	}
	assert.Equal(t, "red", focusStroke)
	assert.Len(t, g.Lines, 1)
	require.Len(t, g.Points, 2)
	assert.Equal(t, "#00ff00", g.Points[0].Color)
}

func TestRenderSection_SkipsUnknownNodes(t *testing.T) {
	lookup, err := mesh.NewLookup([]mesh.Node{
		{ID: "n0", Center: mesh.Point{X: 0, Y: 0}, Width: 4, Height: 4},
	})
	require.NoError(t, err)

	g := RenderSection(
		[]mesh.NodeID{"n0", "ghost"},
		[]mesh.Edge{{A: "n0", B: "ghost"}},
		nil, lookup, nil, "n0", "t",
	)
	assert.Len(t, g.Rects, 1)
	assert.Empty(t, g.Lines)
}

func TestRenderASCII(t *testing.T) {
	g := NewGraphics("snapshot")
	g.AddRect(Rect{CenterX: 5, CenterY: 5, Width: 10, Height: 10})
	g.AddSegment(XY{X: 0, Y: 0}, XY{X: 10, Y: 10}, "", nil)
	g.AddPoint(Point{X: 5, Y: 5})

	out := RenderASCII(g, 20, 10)
	assert.Contains(t, out, "snapshot")
	assert.Contains(t, out, "+")
	assert.Contains(t, out, "@")
	assert.Equal(t, 11, strings.Count(out, "\n"), "title line plus grid rows")
}

func TestRenderASCII_EmptySnapshot(t *testing.T) {
	g := NewGraphics("empty")
	assert.Equal(t, "empty", RenderASCII(g, 20, 10))
	assert.Equal(t, "", RenderASCII(nil, 20, 10))
}
