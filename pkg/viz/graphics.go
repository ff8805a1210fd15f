package viz

// CoordinateSystemCartesian is the coordinate system tag used by every
// snapshot this module produces.
const CoordinateSystemCartesian = "cartesian"

// XY is a bare 2D coordinate inside a graphics snapshot.
type XY struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Point is a labelled, optionally coloured marker.
type Point struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Label string  `json:"label,omitempty"`
	Color string  `json:"color,omitempty"`
}

// Line is a polyline through two or more points.
type Line struct {
	Points      []XY      `json:"points"`
	StrokeColor string    `json:"strokeColor,omitempty"`
	StrokeDash  []float64 `json:"strokeDash,omitempty"`
}

// Rect is an axis-aligned rectangle, given by its center.
type Rect struct {
	CenterX float64 `json:"centerX"`
	CenterY float64 `json:"centerY"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Label   string  `json:"label,omitempty"`
	Fill    string  `json:"fill,omitempty"`
	Stroke  string  `json:"stroke,omitempty"`
}

// Circle is a filled circle marker.
type Circle struct {
	Center XY      `json:"center"`
	Radius float64 `json:"radius"`
	Fill   string  `json:"fill,omitempty"`
}

// Graphics is a generic debug snapshot of a solver's internal state.
// It is purely observational: producing one has no effect on solving,
// and there is no round-trip requirement.
type Graphics struct {
	Points           []Point  `json:"points,omitempty"`
	Lines            []Line   `json:"lines,omitempty"`
	Rects            []Rect   `json:"rects,omitempty"`
	Circles          []Circle `json:"circles,omitempty"`
	CoordinateSystem string   `json:"coordinateSystem"`
	Title            string   `json:"title,omitempty"`
}

// NewGraphics creates an empty cartesian snapshot with the given title.
func NewGraphics(title string) *Graphics {
	return &Graphics{
		CoordinateSystem: CoordinateSystemCartesian,
		Title:            title,
	}
}

// AddPoint appends a marker to the snapshot.
func (g *Graphics) AddPoint(p Point) {
	g.Points = append(g.Points, p)
}

// AddLine appends a polyline to the snapshot.
func (g *Graphics) AddLine(l Line) {
	g.Lines = append(g.Lines, l)
}

// AddSegment appends a two-point line to the snapshot.
func (g *Graphics) AddSegment(a, b XY, color string, dash []float64) {
	g.Lines = append(g.Lines, Line{
		Points:      []XY{a, b},
		StrokeColor: color,
		StrokeDash:  dash,
	})
}

// AddRect appends a rectangle to the snapshot.
func (g *Graphics) AddRect(r Rect) {
	g.Rects = append(g.Rects, r)
}

// AddCircle appends a circle to the snapshot.
func (g *Graphics) AddCircle(c Circle) {
	g.Circles = append(g.Circles, c)
}
