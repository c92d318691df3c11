package whiteboard

import (
	"strings"

	"MathBoard/internal/state"
	"MathBoard/internal/viewport"
)

// Gesture is the transient state of the pointer interaction.
type Gesture int

const (
	GestureIdle Gesture = iota
	GesturePanning
	GestureDrawingStroke
	GestureDrawingShape
	GesturePendingText
)

func (g Gesture) String() string {
	switch g {
	case GestureIdle:
		return "idle"
	case GesturePanning:
		return "panning"
	case GestureDrawingStroke:
		return "drawing-stroke"
	case GestureDrawingShape:
		return "drawing-shape"
	case GesturePendingText:
		return "pending-text"
	default:
		return "unknown"
	}
}

type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle
)

// Modifier is a bit set of held keyboard modifiers.
type Modifier uint

const (
	ModShift Modifier = 1 << iota
	ModControl
	ModAlt
	ModSuper
)

// PointerEvent is a pointer press in screen space.
type PointerEvent struct {
	Position  state.Point
	Button    Button
	Modifiers Modifier
}

// WheelStep is the zoom multiplier applied per wheel notch.
const WheelStep = 0.1

// sink receives what the router produces.
type sink interface {
	commitStroke(state.Stroke)
	commitShape(state.Shape)
	requestText(at state.Point)
}

// Router turns pointer, wheel and text events into viewport changes or
// geometry edits according to the active tool and the current gesture.
type Router struct {
	view *viewport.Viewport
	out  sink

	tool  Tool
	style Style

	gesture Gesture
	last    state.Point
	stroke  *state.Stroke
	shape   *state.Shape
	textAt  state.Point
}

func newRouter(view *viewport.Viewport, out sink) *Router {
	return &Router{
		view:  view,
		out:   out,
		tool:  ToolPen,
		style: DefaultStyle(),
	}
}

func (r *Router) Gesture() Gesture { return r.gesture }

func (r *Router) Tool() Tool { return r.tool }

func (r *Router) Style() Style { return r.style }

// SetTool changes the tool. A pending text placement is abandoned; an
// in-progress drag keeps the tool it started with until released.
func (r *Router) SetTool(t Tool) {
	if r.gesture == GesturePendingText {
		r.CancelText()
	}
	r.tool = t
}

func (r *Router) SetStyle(s Style) { r.style = s }

// InProgressStroke returns the stroke being drawn, if any.
func (r *Router) InProgressStroke() *state.Stroke { return r.stroke }

// InProgressShape returns the shape being dragged, if any.
func (r *Router) InProgressShape() *state.Shape { return r.shape }

// PendingText returns where a text label will be placed once committed.
func (r *Router) PendingText() (state.Point, bool) {
	return r.textAt, r.gesture == GesturePendingText
}

// PointerDown starts a gesture. It reports whether anything visible changed.
func (r *Router) PointerDown(ev PointerEvent) bool {
	switch r.gesture {
	case GestureIdle:
	case GesturePendingText:
		r.CancelText()
	default:
		// A second button pressed mid-gesture is ignored.
		return false
	}

	if r.wantsPan(ev) {
		r.gesture = GesturePanning
		r.last = ev.Position
		return false
	}
	if ev.Button != ButtonPrimary {
		return false
	}

	at := r.view.ScreenToLogical(ev.Position)
	switch r.tool {
	case ToolText:
		r.gesture = GesturePendingText
		r.textAt = at
		r.out.requestText(at)
		return false
	case ToolPen, ToolEraser:
		st := &state.Stroke{
			ID:     state.NewID(),
			Points: []state.Point{at},
			Color:  r.style.Color,
			Width:  r.style.Width,
			Kind:   state.StrokePen,
		}
		if r.tool == ToolEraser {
			st.Kind = state.StrokeEraser
			st.Width = r.style.EraserWidth
		}
		r.stroke = st
		r.gesture = GestureDrawingStroke
		return true
	}
	if kind, ok := r.tool.ShapeKind(); ok {
		r.shape = &state.Shape{
			ID:          state.NewID(),
			Kind:        kind,
			Start:       at,
			End:         at,
			Color:       r.style.Color,
			StrokeWidth: r.style.Width,
		}
		r.gesture = GestureDrawingShape
		return true
	}
	return false
}

func (r *Router) wantsPan(ev PointerEvent) bool {
	if ev.Button == ButtonMiddle {
		return true
	}
	if ev.Button != ButtonPrimary {
		return false
	}
	return r.tool == ToolPan || ev.Modifiers != 0
}

// PointerMove advances the current gesture. It reports whether anything
// visible changed.
func (r *Router) PointerMove(p state.Point) bool {
	switch r.gesture {
	case GesturePanning:
		delta := p.Sub(r.last)
		r.last = p
		if delta == (state.Point{}) {
			return false
		}
		r.view.Pan(delta)
		return true
	case GestureDrawingStroke:
		r.stroke.Points = append(r.stroke.Points, r.view.ScreenToLogical(p))
		return true
	case GestureDrawingShape:
		r.shape.End = r.view.ScreenToLogical(p)
		return true
	}
	return false
}

// PointerUp finishes the current gesture, committing whatever was drawn.
func (r *Router) PointerUp() bool {
	switch r.gesture {
	case GesturePanning:
		r.gesture = GestureIdle
		return false
	case GestureDrawingStroke:
		st := r.stroke
		r.stroke = nil
		r.gesture = GestureIdle
		if st != nil && len(st.Points) >= 1 {
			r.out.commitStroke(*st)
		}
		return true
	case GestureDrawingShape:
		sh := r.shape
		r.shape = nil
		r.gesture = GestureIdle
		if sh != nil {
			r.out.commitShape(*sh)
		}
		return true
	}
	return false
}

// PointerLeave is handled exactly like PointerUp.
func (r *Router) PointerLeave() bool {
	return r.PointerUp()
}

// Wheel zooms around the pointer whatever the tool or gesture. A positive
// dy zooms in.
func (r *Router) Wheel(at state.Point, dy float64) bool {
	if dy == 0 {
		return false
	}
	m := 1 + WheelStep
	if dy < 0 {
		m = 1 - WheelStep
	}
	r.view.ZoomAt(at, m)
	return true
}

// CommitText places a label at the pending position. Blank input is
// dropped without touching the scene.
func (r *Router) CommitText(text string) (state.TextLabel, bool) {
	if r.gesture != GesturePendingText {
		return state.TextLabel{}, false
	}
	r.gesture = GestureIdle
	if strings.TrimSpace(text) == "" {
		return state.TextLabel{}, false
	}
	return state.TextLabel{
		ID:       state.NewID(),
		Position: r.textAt,
		Text:     text,
		FontSize: r.style.FontSize,
		Color:    r.style.Color,
	}, true
}

// CancelText abandons a pending text placement.
func (r *Router) CancelText() {
	if r.gesture == GesturePendingText {
		r.gesture = GestureIdle
	}
}
