// Package viewport maps between screen pixels and the infinite logical canvas.
package viewport

import (
	"math"

	"MathBoard/internal/state"
)

const (
	MinScale = 0.1
	MaxScale = 5.0

	// ButtonZoomStep is applied by the zoom in/out buttons.
	ButtonZoomStep = 1.2
)

// Viewport is the affine map screen = logical*Scale + Offset.
type Viewport struct {
	OffsetX float64
	OffsetY float64
	Scale   float64
}

// New returns the identity viewport.
func New() *Viewport {
	return &Viewport{Scale: 1}
}

func (v Viewport) Offset() state.Point {
	return state.Point{X: v.OffsetX, Y: v.OffsetY}
}

// ScreenToLogical inverts the viewport transform.
func (v Viewport) ScreenToLogical(p state.Point) state.Point {
	return state.Point{
		X: (p.X - v.OffsetX) / v.Scale,
		Y: (p.Y - v.OffsetY) / v.Scale,
	}
}

// LogicalToScreen applies the viewport transform.
func (v Viewport) LogicalToScreen(p state.Point) state.Point {
	return state.Point{
		X: p.X*v.Scale + v.OffsetX,
		Y: p.Y*v.Scale + v.OffsetY,
	}
}

// Pan moves the canvas by a screen-space delta. The canvas is unbounded so
// no clamping happens.
func (v *Viewport) Pan(delta state.Point) {
	v.OffsetX += delta.X
	v.OffsetY += delta.Y
}

// ZoomAt multiplies the scale while keeping the logical point under anchor
// at the same screen position. The resulting scale is clamped to
// [MinScale, MaxScale]. Multipliers that are not finite and positive are
// ignored.
func (v *Viewport) ZoomAt(anchor state.Point, multiplier float64) {
	if multiplier <= 0 || math.IsNaN(multiplier) || math.IsInf(multiplier, 0) {
		return
	}

	before := v.ScreenToLogical(anchor)
	newScale := clampScale(v.Scale * multiplier)

	// Where the anchor would land with the new scale and the old offset.
	test := state.Point{
		X: before.X*newScale + v.OffsetX,
		Y: before.Y*newScale + v.OffsetY,
	}

	v.OffsetX += anchor.X - test.X
	v.OffsetY += anchor.Y - test.Y
	v.Scale = newScale
}

// ZoomIn zooms by ButtonZoomStep around center.
func (v *Viewport) ZoomIn(center state.Point) {
	v.ZoomAt(center, ButtonZoomStep)
}

// ZoomOut zooms by 1/ButtonZoomStep around center.
func (v *Viewport) ZoomOut(center state.Point) {
	v.ZoomAt(center, 1/ButtonZoomStep)
}

// Reset restores the identity transform.
func (v *Viewport) Reset() {
	v.OffsetX, v.OffsetY, v.Scale = 0, 0, 1
}

// Visible returns the logical rectangle shown in a screen area of the given
// size.
func (v Viewport) Visible(width, height float64) state.Rect {
	return state.RectFromCorners(
		v.ScreenToLogical(state.Point{}),
		v.ScreenToLogical(state.Point{X: width, Y: height}),
	)
}

// Scaled returns a copy whose screen space is multiplied by factor, used to
// map logical widget coordinates onto device pixels.
func (v Viewport) Scaled(factor float64) Viewport {
	return Viewport{
		OffsetX: v.OffsetX * factor,
		OffsetY: v.OffsetY * factor,
		Scale:   v.Scale * factor,
	}
}

func clampScale(s float64) float64 {
	if s < MinScale {
		return MinScale
	}
	if s > MaxScale {
		return MaxScale
	}
	return s
}
