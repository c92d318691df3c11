package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"MathBoard/internal/calc"
)

var calcKeys = []string{
	"7", "8", "9", "÷",
	"4", "5", "6", "×",
	"1", "2", "3", "-",
	"0", ".", "=", "+",
}

// CalcOverlay is a floating calculator that can be dragged by its title bar.
type CalcOverlay struct {
	widget.BaseWidget
	calc    *calc.Calculator
	display *widget.Label
	pending *widget.Label
	buttons map[string]*widget.Button

	// bounds is the area the overlay must stay within.
	bounds func() fyne.Size
}

func NewCalcOverlay(bounds func() fyne.Size) *CalcOverlay {
	c := &CalcOverlay{
		calc:    calc.New(),
		display: widget.NewLabelWithStyle("0", fyne.TextAlignTrailing, fyne.TextStyle{Monospace: true, Bold: true}),
		pending: widget.NewLabel(""),
		buttons: make(map[string]*widget.Button),
		bounds:  bounds,
	}
	for _, k := range append(append([]string{}, calcKeys...), "C", "⌫") {
		key := k
		c.buttons[key] = widget.NewButton(key, func() { c.Press(key) })
	}
	c.ExtendBaseWidget(c)
	return c
}

// Press sends a key to the calculator and updates the display.
func (c *CalcOverlay) Press(key string) {
	if !c.calc.Press(key) {
		return
	}
	c.display.SetText(c.calc.Display())
	c.pending.SetText(c.calc.Pending().String())
}

func (c *CalcOverlay) Display() string { return c.display.Text }

// Dragged moves the overlay, keeping it inside its bounds.
func (c *CalcOverlay) Dragged(e *fyne.DragEvent) {
	c.Move(c.clamp(c.Position().Add(e.Dragged)))
}

func (c *CalcOverlay) DragEnd() {}

func (c *CalcOverlay) clamp(p fyne.Position) fyne.Position {
	if c.bounds == nil {
		return p
	}
	area, size := c.bounds(), c.Size()
	maxX, maxY := area.Width-size.Width, area.Height-size.Height
	if p.X > maxX {
		p.X = maxX
	}
	if p.Y > maxY {
		p.Y = maxY
	}
	if p.X < 0 {
		p.X = 0
	}
	if p.Y < 0 {
		p.Y = 0
	}
	return p
}

func (c *CalcOverlay) CreateRenderer() fyne.WidgetRenderer {
	grid := container.NewGridWithColumns(4)
	for _, k := range calcKeys {
		grid.Add(c.buttons[k])
	}
	bottom := container.NewGridWithColumns(2, c.buttons["C"], c.buttons["⌫"])

	title := widget.NewLabelWithStyle("Calculator", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	header := container.NewBorder(nil, nil, title, c.pending)
	screen := container.NewStack(canvas.NewRectangle(theme.Color(theme.ColorNameInputBackground)), c.display)

	bg := canvas.NewRectangle(theme.Color(theme.ColorNameOverlayBackground))
	bg.StrokeColor = color.Gray{Y: 160}
	bg.StrokeWidth = 1
	bg.CornerRadius = theme.Padding() * 2

	body := container.NewVBox(header, screen, grid, bottom)
	return widget.NewSimpleRenderer(container.NewStack(bg, container.NewPadded(body)))
}
