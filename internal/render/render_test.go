package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MathBoard/internal/state"
	"MathBoard/internal/viewport"
)

var black = color.NRGBA{A: 0xff}

func dark(img *image.RGBA, x, y int) bool {
	c := img.RGBAAt(x, y)
	return c.R < 0x40 && c.G < 0x40 && c.B < 0x40
}

func white(img *image.RGBA, x, y int) bool {
	c := img.RGBAAt(x, y)
	return c.R == 0xff && c.G == 0xff && c.B == 0xff
}

func penStroke(width float64, pts ...state.Point) state.Stroke {
	return state.Stroke{Points: pts, Color: black, Width: width, Kind: state.StrokePen}
}

func TestDrawEmptySurface(t *testing.T) {
	r := NewRenderer()
	assert.Nil(t, r.Draw(Input{Width: 0, Height: 10, View: *viewport.New()}))
	assert.Nil(t, r.Draw(Input{Width: 10, Height: -1, View: *viewport.New()}))
}

func TestDrawBackgroundAndGrid(t *testing.T) {
	img := NewRenderer().Draw(Input{Width: 100, Height: 100, View: *viewport.New()})
	require.NotNil(t, img)

	assert.True(t, white(img, 10, 10))
	assert.False(t, white(img, 20, 10), "vertical grid line at x=20")
	assert.False(t, white(img, 10, 40), "horizontal grid line at y=40")
}

func TestGridFollowsPan(t *testing.T) {
	v := viewport.New()
	v.Pan(state.Pt(5, 0))
	img := NewRenderer().Draw(Input{Width: 100, Height: 100, View: *v})
	require.NotNil(t, img)

	assert.False(t, white(img, 5, 10))
	assert.False(t, white(img, 25, 10))
	assert.True(t, white(img, 1, 10))
	assert.True(t, white(img, 20, 10))

	// Negative offsets keep the phase positive.
	v.Pan(state.Pt(-10, 0))
	img = NewRenderer().Draw(Input{Width: 100, Height: 100, View: *v})
	assert.False(t, white(img, 15, 10))
	assert.True(t, white(img, 10, 10))
}

func TestDrawPenThenEraser(t *testing.T) {
	var s state.Scene
	s.AddStroke(penStroke(10, state.Pt(0, 10), state.Pt(100, 10)))

	r := NewRenderer()
	img := r.Draw(Input{Width: 100, Height: 50, View: *viewport.New(), Scene: &s})
	require.NotNil(t, img)
	assert.True(t, dark(img, 50, 10))

	s.AddStroke(state.Stroke{
		Points: []state.Point{state.Pt(50, 0), state.Pt(50, 30)},
		Color:  black,
		Width:  20,
		Kind:   state.StrokeEraser,
	})
	img = r.Draw(Input{Width: 100, Height: 50, View: *viewport.New(), Scene: &s})
	assert.True(t, white(img, 50, 10))
	assert.True(t, dark(img, 10, 10))
}

func TestSinglePointStrokeIsDot(t *testing.T) {
	var s state.Scene
	s.AddStroke(penStroke(10, state.Pt(30, 30)))
	img := NewRenderer().Draw(Input{Width: 60, Height: 60, View: *viewport.New(), Scene: &s})
	assert.True(t, dark(img, 30, 30))
	assert.True(t, white(img, 50, 50))
}

func TestStrokeFollowsViewport(t *testing.T) {
	var s state.Scene
	s.AddStroke(penStroke(4, state.Pt(10, 10), state.Pt(10, 10.5)))

	v := viewport.New()
	v.ZoomAt(state.Pt(0, 0), 2)
	v.Pan(state.Pt(10, 10))
	img := NewRenderer().Draw(Input{Width: 60, Height: 60, View: *v, Scene: &s})

	// (10,10) logical lands at (30,30) and the width doubles.
	assert.True(t, dark(img, 30, 30))
	assert.True(t, dark(img, 27, 30))
	assert.True(t, white(img, 20, 20))
}

func TestShapesDrawAboveStrokes(t *testing.T) {
	// An eraser committed after a rectangle does not hide its outline.
	var s state.Scene
	s.AddShape(state.Shape{
		Kind:        state.ShapeRectangle,
		Start:       state.Pt(10, 10),
		End:         state.Pt(50, 50),
		Color:       black,
		StrokeWidth: 4,
	})
	s.AddStroke(state.Stroke{
		Points: []state.Point{state.Pt(0, 30), state.Pt(60, 30)},
		Color:  Background,
		Width:  10,
		Kind:   state.StrokeEraser,
	})
	img := NewRenderer().Draw(Input{Width: 70, Height: 70, View: *viewport.New(), Scene: &s})
	assert.True(t, dark(img, 10, 30))
	assert.True(t, dark(img, 49, 30))
}

func TestDrawShapes(t *testing.T) {
	shape := func(k state.ShapeKind) state.Shape {
		return state.Shape{Kind: k, Start: state.Pt(10, 10), End: state.Pt(70, 70), Color: black, StrokeWidth: 4}
	}
	cases := []struct {
		kind   state.ShapeKind
		onEdge image.Point
	}{
		{state.ShapeRectangle, image.Pt(10, 40)},
		// Radius is half the 60x60 diagonal, so the top is near y=-2.4.
		{state.ShapeCircle, image.Pt(40, -2)},
		{state.ShapeTriangle, image.Pt(40, 70)},
		{state.ShapeLine, image.Pt(40, 40)},
	}
	for _, tc := range cases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			s := state.Scene{}
			s.AddShape(shape(tc.kind))
			v := viewport.New()
			v.Pan(state.Pt(50, 50))
			img := NewRenderer().Draw(Input{Width: 200, Height: 200, View: *v, Scene: &s})
			assert.True(t, dark(img, tc.onEdge.X+50, tc.onEdge.Y+50))
		})
	}
}

func TestInProgressElementsAreDrawn(t *testing.T) {
	st := penStroke(6, state.Pt(5, 5), state.Pt(40, 5))
	sh := state.Shape{Kind: state.ShapeLine, Start: state.Pt(5, 30), End: state.Pt(40, 30), Color: black, StrokeWidth: 6}
	img := NewRenderer().Draw(Input{Width: 50, Height: 50, View: *viewport.New(), Stroke: &st, Shape: &sh})
	assert.True(t, dark(img, 30, 5))
	assert.True(t, dark(img, 30, 30))
}

func TestDrawText(t *testing.T) {
	var s state.Scene
	s.AddText(state.TextLabel{Position: state.Pt(10, 50), Text: "WWW", FontSize: 32, Color: black})
	img := NewRenderer().Draw(Input{Width: 120, Height: 80, View: *viewport.New(), Scene: &s})

	inked := 0
	for y := 20; y < 50; y++ {
		for x := 10; x < 70; x++ {
			if dark(img, x, y) {
				inked++
			}
		}
	}
	assert.Greater(t, inked, 20)
}

func TestWideTextPartlyOffLeftEdgeIsDrawn(t *testing.T) {
	var s state.Scene
	s.AddText(state.TextLabel{Position: state.Pt(-250, 40), Text: "WWWWWWWW", FontSize: 40, Color: black})
	img := NewRenderer().Draw(Input{Width: 300, Height: 100, View: *viewport.New(), Scene: &s})
	require.NotNil(t, img)

	inked := 0
	for y := 5; y < 45; y++ {
		for x := 0; x < 50; x++ {
			if dark(img, x, y) {
				inked++
			}
		}
	}
	assert.Greater(t, inked, 10, "the tail of the label reaches into the surface")
}

func TestTextOnSurface(t *testing.T) {
	face := newFaceCache().face(40)
	require.NotNil(t, face)

	assert.True(t, textOnSurface(face, "WWWWWWWW", state.Pt(-250, 40), 300, 100))
	assert.False(t, textOnSurface(face, "W", state.Pt(-250, 40), 300, 100))
	assert.False(t, textOnSurface(face, "WWWWWWWW", state.Pt(10, 200), 300, 100))
	assert.True(t, textOnSurface(face, "WWWWWWWW", state.Pt(10, 120), 300, 100), "ascenders above the baseline are visible")
}

func TestCulledElementsDoNotAffectFrame(t *testing.T) {
	var s state.Scene
	s.AddStroke(penStroke(4, state.Pt(-500, -500), state.Pt(-400, -400)))
	s.AddText(state.TextLabel{Position: state.Pt(-500, 20), Text: "x", FontSize: 16, Color: black})
	with := NewRenderer().Draw(Input{Width: 40, Height: 40, View: *viewport.New(), Scene: &s})
	without := NewRenderer().Draw(Input{Width: 40, Height: 40, View: *viewport.New()})
	assert.Equal(t, without.Pix, with.Pix)
}

func TestFaceCacheRoundsSizes(t *testing.T) {
	c := newFaceCache()
	a := c.face(16.1)
	b := c.face(15.9)
	require.NotNil(t, a)
	assert.Same(t, a, b)
	assert.NotNil(t, c.face(0))
	assert.Len(t, c.faces, 2)
}
