package ui

import (
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"MathBoard/internal/whiteboard"
)

var toolLabels = map[whiteboard.Tool]string{
	whiteboard.ToolPan:       "Pan",
	whiteboard.ToolPen:       "Pen",
	whiteboard.ToolEraser:    "Eraser",
	whiteboard.ToolRectangle: "Rect",
	whiteboard.ToolCircle:    "Circle",
	whiteboard.ToolTriangle:  "Triangle",
	whiteboard.ToolLine:      "Line",
	whiteboard.ToolText:      "Text",
}

var fontSizes = []string{"12", "16", "20", "28", "36", "48"}

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.NRGBA
	OnTapped func(color.NRGBA)

	border *canvas.Rectangle
}

func newColorSwatch(c color.NRGBA, tapped func(color.NRGBA)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(28, 28))

	s.border = canvas.NewRectangle(color.Transparent)
	s.border.StrokeColor = color.Gray{Y: 150}
	s.border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, s.border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

func (s *colorSwatch) setSelected(on bool) {
	if s.border == nil {
		return
	}
	if on {
		s.border.StrokeColor = theme.Color(theme.ColorNamePrimary)
		s.border.StrokeWidth = 3
	} else {
		s.border.StrokeColor = color.Gray{Y: 150}
		s.border.StrokeWidth = 1
	}
	s.border.Refresh()
}

// Toolbar holds the controls along the top of the window.
type Toolbar struct {
	ws *Workspace

	tools    map[whiteboard.Tool]*widget.Button
	swatches []*colorSwatch
	width    *widget.Slider
	fontSize *widget.Select
	undo     *widget.Button
	redo     *widget.Button

	content fyne.CanvasObject
}

func NewToolbar(ws *Workspace) *Toolbar {
	t := &Toolbar{ws: ws, tools: make(map[whiteboard.Tool]*widget.Button)}
	board := ws.Board

	toolBox := container.NewHBox()
	for _, tool := range whiteboard.Tools {
		tool := tool
		btn := widget.NewButton(toolLabels[tool], func() {
			board.SetTool(tool)
			t.Sync()
		})
		t.tools[tool] = btn
		toolBox.Add(btn)
	}

	// --- Color Palette ---
	onColorTapped := func(c color.NRGBA) {
		st := board.Style()
		st.Color = c
		board.SetStyle(st)
		t.Sync()
	}
	colorBox := container.NewHBox()
	for _, c := range whiteboard.Palette {
		sw := newColorSwatch(c, onColorTapped)
		t.swatches = append(t.swatches, sw)
		colorBox.Add(sw)
	}

	// --- Stroke Width Slider ---
	t.width = widget.NewSlider(1.0, 30.0)
	t.width.SetValue(board.Style().Width)
	t.width.OnChanged = func(val float64) {
		st := board.Style()
		st.Width = val
		board.SetStyle(st)
	}
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(120, 35)), t.width)

	t.fontSize = widget.NewSelect(fontSizes, func(v string) {
		size, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return
		}
		st := board.Style()
		st.FontSize = size
		board.SetStyle(st)
	})
	t.fontSize.SetSelected(strconv.FormatFloat(board.Style().FontSize, 'f', -1, 64))

	t.undo = widget.NewButtonWithIcon("", theme.ContentUndoIcon(), ws.Undo)
	t.redo = widget.NewButtonWithIcon("", theme.ContentRedoIcon(), ws.Redo)

	actions := widget.NewToolbar(
		widget.NewToolbarAction(theme.ZoomInIcon(), ws.ZoomIn),
		widget.NewToolbarAction(theme.ZoomOutIcon(), ws.ZoomOut),
		widget.NewToolbarAction(theme.ZoomFitIcon(), board.ResetView),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), ws.ExportPNG),
		widget.NewToolbarAction(theme.DocumentPrintIcon(), ws.ExportPDF),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DeleteIcon(), board.RequestClear),
		widget.NewToolbarAction(theme.GridIcon(), ws.ToggleCalculator),
	)

	t.content = container.NewHBox(
		toolBox,
		widget.NewSeparator(),
		colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sliderContainer,
		t.fontSize,
		widget.NewSeparator(),
		t.undo,
		t.redo,
		actions,
		layout.NewSpacer(),
	)
	t.Sync()
	return t
}

func (t *Toolbar) Content() fyne.CanvasObject { return t.content }

// Sync updates the controls from the board: the active tool and color are
// highlighted, and undo and redo are only enabled when possible.
func (t *Toolbar) Sync() {
	board := t.ws.Board
	active := board.Tool()
	for tool, btn := range t.tools {
		if tool == active {
			btn.Importance = widget.HighImportance
		} else {
			btn.Importance = widget.MediumImportance
		}
		btn.Refresh()
	}

	current := board.Style().Color
	for _, sw := range t.swatches {
		sw.setSelected(sw.Color == current)
	}

	setEnabled(t.undo, board.CanUndo())
	setEnabled(t.redo, board.CanRedo())
}

func setEnabled(b *widget.Button, on bool) {
	if on {
		b.Enable()
	} else {
		b.Disable()
	}
}
