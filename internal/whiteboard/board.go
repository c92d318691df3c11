// Package whiteboard is the single-user infinite canvas: it owns the scene,
// its undo history and the viewport, and routes pointer input into them.
package whiteboard

import (
	"image"
	"log"

	"MathBoard/internal/render"
	"MathBoard/internal/state"
	"MathBoard/internal/viewport"
)

// Board is one whiteboard instance. It is not safe for concurrent use; all
// calls are expected on the UI goroutine.
type Board struct {
	id       string
	scene    state.Scene
	history  *state.History
	view     *viewport.Viewport
	router   *Router
	renderer *render.Renderer
	frame    *image.RGBA

	// OnChange is called whenever the board needs to be redrawn.
	OnChange func()
	// OnCommit is called after every history commit, undo and redo.
	OnCommit func()
	// OnTextRequest asks the UI to prompt for a label at a logical position.
	OnTextRequest func(at state.Point)
	// OnConfirmClear asks the user to confirm clearing; confirm is run only
	// if they agree.
	OnConfirmClear func(confirm func())
}

// NewBoard creates an empty board. id names exported files and has no
// effect on drawing. historyLimit caps undo depth; zero means unlimited.
func NewBoard(id string, historyLimit int) *Board {
	b := &Board{
		id:       id,
		history:  state.NewHistory(historyLimit),
		view:     viewport.New(),
		renderer: render.NewRenderer(),
	}
	b.router = newRouter(b.view, b)
	return b
}

func (b *Board) ID() string { return b.id }

// Scene returns a copy of the committed scene.
func (b *Board) Scene() state.Scene { return b.scene.Clone() }

// Viewport returns the current transform.
func (b *Board) Viewport() viewport.Viewport { return *b.view }

func (b *Board) Router() *Router { return b.router }

func (b *Board) Tool() Tool { return b.router.Tool() }

func (b *Board) SetTool(t Tool) {
	b.router.SetTool(t)
	b.changed()
}

func (b *Board) Style() Style { return b.router.Style() }

func (b *Board) SetStyle(s Style) { b.router.SetStyle(s) }

func (b *Board) PointerDown(ev PointerEvent) {
	if b.router.PointerDown(ev) {
		b.changed()
	}
}

func (b *Board) PointerMove(p state.Point) {
	if b.router.PointerMove(p) {
		b.changed()
	}
}

func (b *Board) PointerUp() {
	if b.router.PointerUp() {
		b.changed()
	}
}

func (b *Board) PointerLeave() {
	if b.router.PointerLeave() {
		b.changed()
	}
}

func (b *Board) Wheel(at state.Point, dy float64) {
	if b.router.Wheel(at, dy) {
		b.changed()
	}
}

// CommitText places the pending label. It reports whether a label was added.
func (b *Board) CommitText(text string) bool {
	label, ok := b.router.CommitText(text)
	if !ok {
		return false
	}
	b.scene.AddText(label)
	b.commit("text")
	return true
}

func (b *Board) CancelText() {
	b.router.CancelText()
}

// Undo reverts the last commit. It reports false at the beginning of history.
func (b *Board) Undo() bool {
	s, ok := b.history.Undo()
	if !ok {
		return false
	}
	b.scene = s
	log.Printf("[HISTORY] Undo -> entry %d of %d", b.history.Cursor(), b.history.Len())
	b.committed()
	return true
}

// Redo reapplies an undone commit. It reports false at the end of history.
func (b *Board) Redo() bool {
	s, ok := b.history.Redo()
	if !ok {
		return false
	}
	b.scene = s
	log.Printf("[HISTORY] Redo -> entry %d of %d", b.history.Cursor(), b.history.Len())
	b.committed()
	return true
}

func (b *Board) CanUndo() bool { return b.history.CanUndo() }

func (b *Board) CanRedo() bool { return b.history.CanRedo() }

// RequestClear asks for confirmation and clears the board if granted.
// Without a confirmation hook nothing is cleared.
func (b *Board) RequestClear() {
	if b.OnConfirmClear == nil {
		log.Println("[BOARD] Clear requested without a confirmation hook, ignoring")
		return
	}
	b.OnConfirmClear(b.Clear)
}

// Clear empties the scene and records the empty state as one history entry.
func (b *Board) Clear() {
	b.scene.Clear()
	b.commit("clear")
}

// ZoomIn zooms by the button step around a screen point, usually the
// center of the visible area.
func (b *Board) ZoomIn(center state.Point) {
	b.view.ZoomIn(center)
	b.changed()
}

func (b *Board) ZoomOut(center state.Point) {
	b.view.ZoomOut(center)
	b.changed()
}

func (b *Board) ResetView() {
	b.view.Reset()
	b.changed()
}

// Render redraws the whole board into a pixel surface of w by h. ratio is
// the number of pixels per screen unit of the pointer events. The result
// is kept as the board's current frame.
func (b *Board) Render(w, h int, ratio float64) image.Image {
	if ratio <= 0 {
		ratio = 1
	}
	frame := b.renderer.Draw(render.Input{
		Width:  w,
		Height: h,
		View:   b.view.Scaled(ratio),
		Scene:  &b.scene,
		Stroke: b.router.InProgressStroke(),
		Shape:  b.router.InProgressShape(),
	})
	if frame == nil {
		return nil
	}
	b.frame = frame
	return frame
}

// Frame returns the most recently rendered image, or nil before the first
// render.
func (b *Board) Frame() image.Image {
	if b.frame == nil {
		return nil
	}
	return b.frame
}

func (b *Board) commitStroke(st state.Stroke) {
	b.scene.AddStroke(st)
	b.commit(st.Kind.String())
}

func (b *Board) commitShape(sh state.Shape) {
	b.scene.AddShape(sh)
	b.commit(sh.Kind.String())
}

func (b *Board) requestText(at state.Point) {
	if b.OnTextRequest != nil {
		b.OnTextRequest(at)
	}
}

func (b *Board) commit(what string) {
	b.history.Commit(b.scene)
	log.Printf("[BOARD] Committed %s (%d elements, history %d)", what, b.scene.Len(), b.history.Len())
	b.committed()
}

func (b *Board) committed() {
	if b.OnCommit != nil {
		b.OnCommit()
	}
	b.changed()
}

func (b *Board) changed() {
	if b.OnChange != nil {
		b.OnChange()
	}
}
