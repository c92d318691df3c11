// Package render draws a whiteboard scene onto a raster surface.
package render

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"MathBoard/internal/state"
	"MathBoard/internal/viewport"
)

// GridSpacing is the distance between grid lines in logical units.
const GridSpacing = 20.0

var (
	Background = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	GridColor  = color.NRGBA{R: 0xe3, G: 0xe6, B: 0xeb, A: 0xff}
)

// Input is everything needed to draw one frame. View maps logical space
// straight to surface pixels.
type Input struct {
	Width  int
	Height int
	View   viewport.Viewport
	Scene  *state.Scene

	// In-progress elements, drawn above their committed counterparts.
	Stroke *state.Stroke
	Shape  *state.Shape
}

// Renderer performs full redraws. It caches font faces between frames.
type Renderer struct {
	fonts *faceCache
}

func NewRenderer() *Renderer {
	return &Renderer{fonts: newFaceCache()}
}

// Draw renders a full frame: background, grid, strokes, shapes and texts in
// that order. It returns nil for an empty surface.
func (r *Renderer) Draw(in Input) *image.RGBA {
	if in.Width <= 0 || in.Height <= 0 {
		return nil
	}
	if in.View.Scale <= 0 {
		in.View.Scale = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, in.Width, in.Height))
	dc := gg.NewContextForRGBA(img)
	dc.SetColor(Background)
	dc.Clear()

	drawGrid(dc, in.View, float64(in.Width), float64(in.Height))

	visible := in.View.Visible(float64(in.Width), float64(in.Height))
	v := &in.View

	dc.Push()
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)

	if in.Scene != nil {
		for i := range in.Scene.Strokes {
			st := &in.Scene.Strokes[i]
			if st.Bounds().Inset(-st.Width).Intersects(visible) {
				drawStroke(dc, v, st)
			}
		}
	}
	if in.Stroke != nil {
		drawStroke(dc, v, in.Stroke)
	}

	if in.Scene != nil {
		for i := range in.Scene.Shapes {
			sh := &in.Scene.Shapes[i]
			if sh.Bounds().Inset(-sh.StrokeWidth).Intersects(visible) {
				drawShape(dc, v, sh)
			}
		}
	}
	if in.Shape != nil {
		drawShape(dc, v, in.Shape)
	}

	if in.Scene != nil {
		for i := range in.Scene.Texts {
			r.drawText(dc, v, &in.Scene.Texts[i], in.Width, in.Height)
		}
	}
	dc.Pop()

	return img
}

// drawGrid draws lines every GridSpacing logical units. The first line is
// phased by the offset so the grid appears fixed to the canvas.
func drawGrid(dc *gg.Context, v viewport.Viewport, w, h float64) {
	spacing := GridSpacing * v.Scale
	if spacing <= 0 || math.IsNaN(spacing) {
		return
	}

	dc.Push()
	defer dc.Pop()

	dc.SetColor(GridColor)
	dc.SetLineWidth(1)
	for x := positiveMod(v.OffsetX, spacing); x < w; x += spacing {
		px := math.Floor(x) + 0.5
		dc.MoveTo(px, 0)
		dc.LineTo(px, h)
	}
	for y := positiveMod(v.OffsetY, spacing); y < h; y += spacing {
		py := math.Floor(y) + 0.5
		dc.MoveTo(0, py)
		dc.LineTo(w, py)
	}
	dc.Stroke()
}

func positiveMod(a, b float64) float64 {
	m := math.Mod(a, b)
	if m < 0 {
		m += b
	}
	return m
}

func drawStroke(dc *gg.Context, v *viewport.Viewport, st *state.Stroke) {
	if len(st.Points) == 0 {
		return
	}

	var c color.Color = st.Color
	if st.Kind == state.StrokeEraser {
		c = Background
	}
	width := st.Width * v.Scale
	dc.SetColor(c)

	if len(st.Points) == 1 {
		p := v.LogicalToScreen(st.Points[0])
		dc.DrawCircle(p.X, p.Y, width/2)
		dc.Fill()
		return
	}

	dc.SetLineWidth(width)
	dc.NewSubPath()
	for i, lp := range st.Points {
		p := v.LogicalToScreen(lp)
		if i == 0 {
			dc.MoveTo(p.X, p.Y)
		} else {
			dc.LineTo(p.X, p.Y)
		}
	}
	dc.Stroke()
}

func drawShape(dc *gg.Context, v *viewport.Viewport, sh *state.Shape) {
	dc.SetColor(sh.Color)
	dc.SetLineWidth(sh.StrokeWidth * v.Scale)

	switch sh.Kind {
	case state.ShapeRectangle:
		b := sh.Box()
		p := v.LogicalToScreen(b.Min())
		dc.DrawRectangle(p.X, p.Y, b.Width*v.Scale, b.Height*v.Scale)
	case state.ShapeCircle:
		c, r := sh.Circle()
		p := v.LogicalToScreen(c)
		dc.DrawCircle(p.X, p.Y, r*v.Scale)
	case state.ShapeTriangle:
		tri := sh.Triangle()
		for i, lp := range tri {
			p := v.LogicalToScreen(lp)
			if i == 0 {
				dc.MoveTo(p.X, p.Y)
			} else {
				dc.LineTo(p.X, p.Y)
			}
		}
		dc.ClosePath()
	case state.ShapeLine:
		a := v.LogicalToScreen(sh.Start)
		b := v.LogicalToScreen(sh.End)
		dc.DrawLine(a.X, a.Y, b.X, b.Y)
	default:
		return
	}
	dc.Stroke()
}

// drawText skips labels whose measured extent misses the surface.
func (r *Renderer) drawText(dc *gg.Context, v *viewport.Viewport, t *state.TextLabel, w, h int) {
	face := r.fonts.face(t.FontSize * v.Scale)
	if face == nil {
		return
	}
	p := v.LogicalToScreen(t.Position)
	if !textOnSurface(face, t.Text, p, w, h) {
		return
	}
	dc.SetFontFace(face)
	dc.SetColor(t.Color)
	dc.DrawString(t.Text, p.X, p.Y)
}

func textOnSurface(face font.Face, text string, p state.Point, w, h int) bool {
	m := face.Metrics()
	width := float64(font.MeasureString(face, text)) / 64
	ascent := float64(m.Ascent) / 64
	descent := float64(m.Descent) / 64
	return p.X+width >= 0 && p.X <= float64(w) &&
		p.Y+descent >= 0 && p.Y-ascent <= float64(h)
}
