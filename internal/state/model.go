package state

import (
	"image/color"
	"math"
)

// Point is an X/Y pair in a single coordinate space. Whether it is a logical
// or a screen point is decided by whoever holds it; the two are never mixed
// without going through a viewport.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) Add(o Point) Point { return Point{X: p.X + o.X, Y: p.Y + o.Y} }

func (p Point) Sub(o Point) Point { return Point{X: p.X - o.X, Y: p.Y - o.Y} }

func (p Point) Mul(f float64) Point { return Point{X: p.X * f, Y: p.Y * f} }

// Near reports whether both coordinates are within eps of o.
func (p Point) Near(o Point, eps float64) bool {
	return math.Abs(p.X-o.X) <= eps && math.Abs(p.Y-o.Y) <= eps
}

type StrokeKind int

const (
	StrokePen StrokeKind = iota
	StrokeEraser
)

func (k StrokeKind) String() string {
	if k == StrokeEraser {
		return "eraser"
	}
	return "pen"
}

// Stroke is a freehand polyline in logical space. An eraser stroke is painted
// in the background color on top of earlier strokes; it never removes them.
type Stroke struct {
	ID     string      `json:"id"`
	Points []Point     `json:"points"`
	// Color is ignored for eraser strokes, which paint the background.
	Color  color.NRGBA `json:"color"`
	Width  float64     `json:"width"`
	Kind   StrokeKind  `json:"kind"`
}

// Bounds returns the logical bounding box of the stroke's points, without
// accounting for line width.
func (s Stroke) Bounds() Rect {
	return BoundsOf(s.Points)
}

func (s Stroke) clone() Stroke {
	c := s
	c.Points = append([]Point(nil), s.Points...)
	return c
}

type ShapeKind int

const (
	ShapeRectangle ShapeKind = iota
	ShapeCircle
	ShapeTriangle
	ShapeLine
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeRectangle:
		return "rectangle"
	case ShapeCircle:
		return "circle"
	case ShapeTriangle:
		return "triangle"
	case ShapeLine:
		return "line"
	default:
		return "unknown"
	}
}

// Shape is a vector primitive defined by the two corners of a drag.
type Shape struct {
	ID          string      `json:"id"`
	Kind        ShapeKind   `json:"kind"`
	Start       Point       `json:"start"`
	End         Point       `json:"end"`
	Color       color.NRGBA `json:"color"`
	StrokeWidth float64     `json:"stroke_width"`
}

// Box is the normalized axis-aligned rectangle spanned by Start and End.
func (s Shape) Box() Rect {
	return RectFromCorners(s.Start, s.End)
}

// Circle returns the circle's center and radius: the center of the box and
// half its diagonal.
func (s Shape) Circle() (Point, float64) {
	b := s.Box()
	return b.Center(), math.Hypot(b.Width, b.Height) / 2
}

// Triangle returns the apex (middle of the top edge) followed by the bottom
// right and bottom left corners of the box.
func (s Shape) Triangle() [3]Point {
	b := s.Box()
	return [3]Point{
		{X: b.X + b.Width/2, Y: b.Y},
		{X: b.X + b.Width, Y: b.Y + b.Height},
		{X: b.X, Y: b.Y + b.Height},
	}
}

// Bounds returns the logical area the shape covers.
func (s Shape) Bounds() Rect {
	if s.Kind == ShapeCircle {
		c, r := s.Circle()
		return Rect{X: c.X - r, Y: c.Y - r, Width: 2 * r, Height: 2 * r}
	}
	return s.Box()
}

// TextLabel is a placed piece of text. Position is the baseline origin.
type TextLabel struct {
	ID       string      `json:"id"`
	Position Point       `json:"position"`
	Text     string      `json:"text"`
	FontSize float64     `json:"font_size"`
	Color    color.NRGBA `json:"color"`
}

// Bounds approximates the area of the label from its font size.
func (t TextLabel) Bounds() Rect {
	w := float64(len([]rune(t.Text))) * t.FontSize * 0.6
	return Rect{X: t.Position.X, Y: t.Position.Y - t.FontSize, Width: w, Height: t.FontSize * 1.25}
}
