package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"MathBoard/internal/state"
	"MathBoard/internal/whiteboard"
)

// BoardWidget shows a whiteboard and feeds it pointer input. Drawing is done
// by the board's renderer into a raster sized in device pixels.
type BoardWidget struct {
	widget.BaseWidget
	board  *whiteboard.Board
	raster *canvas.Raster

	pressed bool
	last    fyne.Position

	// OnFrame receives every rendered frame.
	OnFrame func(image.Image)
}

var (
	_ fyne.Widget       = (*BoardWidget)(nil)
	_ fyne.Draggable    = (*BoardWidget)(nil)
	_ fyne.Scrollable   = (*BoardWidget)(nil)
	_ desktop.Mouseable = (*BoardWidget)(nil)
	_ desktop.Hoverable = (*BoardWidget)(nil)
)

func NewBoardWidget(board *whiteboard.Board) *BoardWidget {
	b := &BoardWidget{board: board}
	b.raster = canvas.NewRaster(b.draw)
	b.raster.ScaleMode = canvas.ImageScalePixels
	b.raster.SetMinSize(fyne.NewSize(300, 300))
	b.ExtendBaseWidget(b)
	return b
}

func (b *BoardWidget) Board() *whiteboard.Board { return b.board }

// draw is the raster generator; w and h are in device pixels.
func (b *BoardWidget) draw(w, h int) image.Image {
	ratio := 1.0
	if size := b.Size(); size.Width > 0 {
		ratio = float64(w) / float64(size.Width)
	}
	img := b.board.Render(w, h, ratio)
	if img == nil {
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}
	if b.OnFrame != nil {
		b.OnFrame(img)
	}
	return img
}

func toPoint(p fyne.Position) state.Point {
	return state.Pt(float64(p.X), float64(p.Y))
}

func toButton(b desktop.MouseButton) whiteboard.Button {
	switch b {
	case desktop.MouseButtonSecondary:
		return whiteboard.ButtonSecondary
	case desktop.MouseButtonTertiary:
		return whiteboard.ButtonMiddle
	default:
		return whiteboard.ButtonPrimary
	}
}

func toModifiers(m fyne.KeyModifier) whiteboard.Modifier {
	var out whiteboard.Modifier
	if m&fyne.KeyModifierShift != 0 {
		out |= whiteboard.ModShift
	}
	if m&fyne.KeyModifierControl != 0 {
		out |= whiteboard.ModControl
	}
	if m&fyne.KeyModifierAlt != 0 {
		out |= whiteboard.ModAlt
	}
	if m&fyne.KeyModifierSuper != 0 {
		out |= whiteboard.ModSuper
	}
	return out
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	b.pressed = true
	b.last = e.Position
	b.board.PointerDown(whiteboard.PointerEvent{
		Position:  toPoint(e.Position),
		Button:    toButton(e.Button),
		Modifiers: toModifiers(e.Modifier),
	})
}

func (b *BoardWidget) MouseUp(*desktop.MouseEvent) {
	b.release()
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent) {}

func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	if b.pressed {
		b.move(e.Position)
	}
}

func (b *BoardWidget) MouseOut() {
	if b.pressed {
		b.pressed = false
		b.board.PointerLeave()
	}
}

// Dragged also serves touch input, where no MouseDown precedes the drag.
func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	if !b.pressed {
		start := e.Position.Subtract(e.Dragged)
		b.pressed = true
		b.last = start
		b.board.PointerDown(whiteboard.PointerEvent{Position: toPoint(start)})
	}
	b.move(e.Position)
}

func (b *BoardWidget) DragEnd() {
	b.release()
}

func (b *BoardWidget) Scrolled(e *fyne.ScrollEvent) {
	b.board.Wheel(toPoint(e.Position), float64(e.Scrolled.DY))
}

// move forwards a pointer position once, whichever event reported it.
func (b *BoardWidget) move(p fyne.Position) {
	if p == b.last {
		return
	}
	b.last = p
	b.board.PointerMove(toPoint(p))
}

func (b *BoardWidget) release() {
	if !b.pressed {
		return
	}
	b.pressed = false
	b.board.PointerUp()
}

// Center is the middle of the widget, used as the anchor for button zoom.
func (b *BoardWidget) Center() state.Point {
	s := b.Size()
	return state.Pt(float64(s.Width)/2, float64(s.Height)/2)
}

// ScreenPosition maps a logical point to a position relative to the widget.
func (b *BoardWidget) ScreenPosition(at state.Point) fyne.Position {
	v := b.board.Viewport()
	p := v.LogicalToScreen(at)
	return fyne.NewPos(float32(p.X), float32(p.Y))
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(b.raster)
}

// Refresh redraws the raster; the board itself is the widget's only state.
func (b *BoardWidget) Refresh() {
	b.raster.Refresh()
}
