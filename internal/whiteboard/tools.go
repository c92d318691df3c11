package whiteboard

import (
	"image/color"

	"MathBoard/internal/state"
)

// Tool is the active drawing tool. The shape tools share one variant and
// differ only by the shape kind they produce.
type Tool int

const (
	ToolPan Tool = iota
	ToolPen
	ToolEraser
	ToolRectangle
	ToolCircle
	ToolTriangle
	ToolLine
	ToolText
)

// Tools lists every tool in toolbar order.
var Tools = []Tool{ToolPan, ToolPen, ToolEraser, ToolRectangle, ToolCircle, ToolTriangle, ToolLine, ToolText}

func (t Tool) String() string {
	switch t {
	case ToolPan:
		return "pan"
	case ToolPen:
		return "pen"
	case ToolEraser:
		return "eraser"
	case ToolText:
		return "text"
	}
	if k, ok := t.ShapeKind(); ok {
		return k.String()
	}
	return "unknown"
}

// ShapeKind reports the shape produced by a shape tool.
func (t Tool) ShapeKind() (state.ShapeKind, bool) {
	switch t {
	case ToolRectangle:
		return state.ShapeRectangle, true
	case ToolCircle:
		return state.ShapeCircle, true
	case ToolTriangle:
		return state.ShapeTriangle, true
	case ToolLine:
		return state.ShapeLine, true
	}
	return 0, false
}

// Style holds the attributes given to newly created elements.
type Style struct {
	Color       color.NRGBA
	Width       float64
	EraserWidth float64
	FontSize    float64
}

func DefaultStyle() Style {
	return Style{
		Color:       color.NRGBA{A: 0xff},
		Width:       3,
		EraserWidth: 20,
		FontSize:    16,
	}
}

// Palette is the set of colors offered by the toolbar.
var Palette = []color.NRGBA{
	{A: 0xff},
	{R: 0xe5, G: 0x39, B: 0x35, A: 0xff},
	{R: 0x43, G: 0xa0, B: 0x47, A: 0xff},
	{R: 0x1e, G: 0x88, B: 0xe5, A: 0xff},
	{R: 0xfb, G: 0xc0, B: 0x2d, A: 0xff},
	{R: 0x8e, G: 0x24, B: 0xaa, A: 0xff},
}
