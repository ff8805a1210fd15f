package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var asciiTitleStyle = lipgloss.NewStyle().Bold(true)

type asciiCell struct {
	ch    rune
	color string
}

// RenderASCII rasterises a snapshot onto a width×height character grid,
// y increasing upwards to match the cartesian tag. Rect borders render
// as '+', solid lines as '*', dashed lines as '.', point markers as '@'.
// Intended for the interactive debugger, not for precise geometry.
func RenderASCII(g *Graphics, width, height int) string {
	if g == nil || width < 2 || height < 2 {
		return ""
	}

	minX, minY, maxX, maxY, ok := bounds(g)
	if !ok {
		return asciiTitleStyle.Render(g.Title)
	}
	// Degenerate extents still need a nonzero scale.
	if maxX-minX < 1e-9 {
		maxX = minX + 1
	}
	if maxY-minY < 1e-9 {
		maxY = minY + 1
	}

	grid := make([][]asciiCell, height)
	for r := range grid {
		grid[r] = make([]asciiCell, width)
		for c := range grid[r] {
			grid[r][c] = asciiCell{ch: ' '}
		}
	}

	toCol := func(x float64) int {
		return clamp(int(math.Round((x-minX)/(maxX-minX)*float64(width-1))), 0, width-1)
	}
	toRow := func(y float64) int {
		return clamp(height-1-int(math.Round((y-minY)/(maxY-minY)*float64(height-1))), 0, height-1)
	}
	set := func(col, row int, ch rune, color string) {
		grid[row][col] = asciiCell{ch: ch, color: color}
	}

	for _, r := range g.Rects {
		c0 := toCol(r.CenterX - r.Width/2)
		c1 := toCol(r.CenterX + r.Width/2)
		r0 := toRow(r.CenterY + r.Height/2)
		r1 := toRow(r.CenterY - r.Height/2)
		for c := c0; c <= c1; c++ {
			set(c, r0, '+', r.Stroke)
			set(c, r1, '+', r.Stroke)
		}
		for row := r0; row <= r1; row++ {
			set(c0, row, '+', r.Stroke)
			set(c1, row, '+', r.Stroke)
		}
		if r.Label != "" {
			drawLabel(grid, toCol(r.CenterX), toRow(r.CenterY), r.Label, r.Stroke)
		}
	}

	for _, l := range g.Lines {
		ch := '*'
		if len(l.StrokeDash) > 0 {
			ch = '.'
		}
		for i := 0; i+1 < len(l.Points); i++ {
			drawLine(grid, toCol(l.Points[i].X), toRow(l.Points[i].Y),
				toCol(l.Points[i+1].X), toRow(l.Points[i+1].Y), ch, l.StrokeColor)
		}
	}

	for _, c := range g.Circles {
		set(toCol(c.Center.X), toRow(c.Center.Y), 'o', c.Fill)
	}

	for _, p := range g.Points {
		set(toCol(p.X), toRow(p.Y), '@', p.Color)
	}

	var b strings.Builder
	if g.Title != "" {
		b.WriteString(asciiTitleStyle.Render(g.Title))
		b.WriteByte('\n')
	}
	for _, row := range grid {
		for _, cell := range row {
			if cell.color != "" && cell.ch != ' ' {
				b.WriteString(lipgloss.NewStyle().
					Foreground(lipgloss.Color(cell.color)).
					Render(string(cell.ch)))
			} else {
				b.WriteRune(cell.ch)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func bounds(g *Graphics) (minX, minY, maxX, maxY float64, ok bool) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	grow := func(x, y float64) {
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
		ok = true
	}
	for _, p := range g.Points {
		grow(p.X, p.Y)
	}
	for _, l := range g.Lines {
		for _, p := range l.Points {
			grow(p.X, p.Y)
		}
	}
	for _, r := range g.Rects {
		grow(r.CenterX-r.Width/2, r.CenterY-r.Height/2)
		grow(r.CenterX+r.Width/2, r.CenterY+r.Height/2)
	}
	for _, c := range g.Circles {
		grow(c.Center.X-c.Radius, c.Center.Y-c.Radius)
		grow(c.Center.X+c.Radius, c.Center.Y+c.Radius)
	}
	return minX, minY, maxX, maxY, ok
}

func drawLine(grid [][]asciiCell, c0, r0, c1, r1 int, ch rune, color string) {
	steps := max(abs(c1-c0), abs(r1-r0))
	if steps == 0 {
		grid[r0][c0] = asciiCell{ch: ch, color: color}
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		c := c0 + int(math.Round(t*float64(c1-c0)))
		r := r0 + int(math.Round(t*float64(r1-r0)))
		grid[r][c] = asciiCell{ch: ch, color: color}
	}
}

func drawLabel(grid [][]asciiCell, col, row int, label string, color string) {
	for i, ch := range label {
		c := col + i
		if c >= len(grid[row]) {
			return
		}
		grid[row][c] = asciiCell{ch: ch, color: color}
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
