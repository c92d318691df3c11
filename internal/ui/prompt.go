package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// textEntry is a single-line entry that reports Escape.
type textEntry struct {
	widget.Entry
	onCancel func()
}

func newTextEntry() *textEntry {
	e := &textEntry{}
	e.ExtendBaseWidget(e)
	return e
}

func (e *textEntry) TypedKey(key *fyne.KeyEvent) {
	if key.Name == fyne.KeyEscape {
		if e.onCancel != nil {
			e.onCancel()
		}
		return
	}
	e.Entry.TypedKey(key)
}

// textPrompt asks for a label's text in a small modal pop-up. Enter
// confirms and Escape cancels.
type textPrompt struct {
	entry *textEntry
	popup *widget.PopUp

	onSubmit func(string)
	onCancel func()
}

func newTextPrompt(c fyne.Canvas, onSubmit func(string), onCancel func()) *textPrompt {
	p := &textPrompt{entry: newTextEntry(), onSubmit: onSubmit, onCancel: onCancel}
	p.entry.SetPlaceHolder("Label, Enter to place")
	p.entry.OnSubmitted = func(text string) {
		p.close()
		p.onSubmit(text)
	}
	p.entry.onCancel = func() {
		p.close()
		p.onCancel()
	}

	box := container.NewGridWrap(fyne.NewSize(220, p.entry.MinSize().Height), p.entry)
	p.popup = widget.NewModalPopUp(box, c)
	return p
}

// Show opens the prompt with an empty entry and focuses it.
func (p *textPrompt) Show() {
	p.entry.SetText("")
	p.popup.Show()
	p.popup.Canvas.Focus(p.entry)
}

func (p *textPrompt) Visible() bool { return p.popup.Visible() }

func (p *textPrompt) close() {
	p.popup.Hide()
}
