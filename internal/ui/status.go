package ui

import (
	"fmt"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"MathBoard/internal/whiteboard"
)

// StatusBar shows the tool, the zoom level, the last action and, when
// sharing, where viewers can watch.
type StatusBar struct {
	view   *widget.Label
	action *widget.Label
	share  *widget.Label

	shareURL string
	viewers  int
}

func newStatusBar() *StatusBar {
	return &StatusBar{
		view:   widget.NewLabel(""),
		action: widget.NewLabel("Ready"),
		share:  widget.NewLabel(""),
	}
}

func (s *StatusBar) Content() fyne.CanvasObject {
	return container.NewHBox(s.view, widget.NewSeparator(), s.action, layout.NewSpacer(), s.share)
}

func (s *StatusBar) Update(tool whiteboard.Tool, scale float64) {
	s.view.SetText(fmt.Sprintf("Tool: %s   Zoom: %d%%", tool, int(math.Round(scale*100))))
}

func (s *StatusBar) SetAction(text string) { s.action.SetText(text) }

func (s *StatusBar) Action() string { return s.action.Text }

// SetShareURL and SetViewers must be called on the UI goroutine.
func (s *StatusBar) SetShareURL(url string) {
	s.shareURL = url
	s.refreshShare()
}

func (s *StatusBar) SetViewers(n int) {
	s.viewers = n
	s.refreshShare()
}

func (s *StatusBar) refreshShare() {
	switch {
	case s.shareURL == "":
		s.share.SetText("")
	case s.viewers == 1:
		s.share.SetText("Sharing at " + s.shareURL + " (1 viewer)")
	default:
		s.share.SetText(fmt.Sprintf("Sharing at %s (%d viewers)", s.shareURL, s.viewers))
	}
}
