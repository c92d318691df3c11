package ui

import (
	"errors"
	"fmt"
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"

	"MathBoard/internal/config"
	"MathBoard/internal/export"
	"MathBoard/internal/state"
	"MathBoard/internal/whiteboard"
)

// Workspace is everything inside the main window: toolbar, board, the
// calculator overlay and the status bar.
type Workspace struct {
	Board   *whiteboard.Board
	Canvas  *BoardWidget
	Toolbar *Toolbar
	Calc    *CalcOverlay
	Status  *StatusBar

	win      fyne.Window
	exporter *export.Exporter
	prompt   *textPrompt
	content  fyne.CanvasObject
}

func NewWorkspace(win fyne.Window, cfg *config.Config) *Workspace {
	board := whiteboard.NewBoard(cfg.ProblemID, cfg.HistoryLimit)
	ws := &Workspace{
		Board:    board,
		win:      win,
		exporter: &export.Exporter{Dir: cfg.ExportDir, ID: cfg.ProblemID},
	}
	ws.Canvas = NewBoardWidget(board)
	ws.Status = newStatusBar()
	ws.Calc = NewCalcOverlay(func() fyne.Size { return ws.Canvas.Size() })
	ws.Toolbar = NewToolbar(ws)
	ws.prompt = newTextPrompt(win.Canvas(), ws.placeText, ws.cancelText)

	board.OnChange = ws.refresh
	board.OnCommit = ws.committed
	board.OnTextRequest = func(state.Point) { ws.prompt.Show() }
	board.OnConfirmClear = ws.confirmClear

	ws.Calc.Resize(ws.Calc.MinSize())
	ws.Calc.Move(fyne.NewPos(16, 16))
	ws.Calc.Hide()
	overlay := container.NewWithoutLayout(ws.Calc)

	ws.content = container.NewBorder(
		ws.Toolbar.Content(), ws.Status.Content(), nil, nil,
		container.NewStack(ws.Canvas, overlay),
	)
	ws.addShortcuts()
	ws.Status.Update(board.Tool(), board.Viewport().Scale)
	return ws
}

func (ws *Workspace) Content() fyne.CanvasObject { return ws.content }

func (ws *Workspace) refresh() {
	ws.Canvas.Refresh()
	ws.Status.Update(ws.Board.Tool(), ws.Board.Viewport().Scale)
}

func (ws *Workspace) committed() {
	ws.Toolbar.Sync()
	if n := ws.Board.Scene().Len(); n == 1 {
		ws.Status.SetAction("1 element")
	} else {
		ws.Status.SetAction(fmt.Sprintf("%d elements", n))
	}
}

func (ws *Workspace) placeText(text string) {
	if !ws.Board.CommitText(text) {
		ws.Status.SetAction("Empty label discarded")
	}
}

func (ws *Workspace) cancelText() {
	ws.Board.CancelText()
	ws.Status.SetAction("Label cancelled")
}

func (ws *Workspace) confirmClear(confirm func()) {
	dialog.ShowConfirm("Clear board", "Remove everything from the board? You can undo this.",
		func(ok bool) {
			if ok {
				confirm()
			}
		}, ws.win)
}

func (ws *Workspace) Undo() {
	if ws.Board.Undo() {
		ws.Status.SetAction("Undo")
	}
}

func (ws *Workspace) Redo() {
	if ws.Board.Redo() {
		ws.Status.SetAction("Redo")
	}
}

func (ws *Workspace) ZoomIn() { ws.Board.ZoomIn(ws.Canvas.Center()) }

func (ws *Workspace) ZoomOut() { ws.Board.ZoomOut(ws.Canvas.Center()) }

func (ws *Workspace) ToggleCalculator() {
	if ws.Calc.Visible() {
		ws.Calc.Hide()
		return
	}
	ws.Calc.Move(ws.Calc.clamp(ws.Calc.Position()))
	ws.Calc.Show()
}

func (ws *Workspace) ExportPNG() {
	ws.export(ws.exporter.PNG)
}

func (ws *Workspace) ExportPDF() {
	ws.export(ws.exporter.PDF)
}

func (ws *Workspace) export(write func(frame image.Image) (string, error)) {
	path, err := write(ws.Board.Frame())
	switch {
	case errors.Is(err, export.ErrNoFrame):
		ws.Status.SetAction("Nothing to export yet")
	case err != nil:
		ws.Status.SetAction("Export failed")
		dialog.ShowError(err, ws.win)
	default:
		ws.Status.SetAction("Exported " + path)
	}
}

func (ws *Workspace) addShortcuts() {
	c := ws.win.Canvas()
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault},
		func(fyne.Shortcut) { ws.Undo() })
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyY, Modifier: fyne.KeyModifierShortcutDefault},
		func(fyne.Shortcut) { ws.Redo() })
}
