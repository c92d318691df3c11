package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"MathBoard/internal/config"
)

// RunApp opens the main window and blocks until it is closed.
func RunApp(cfg *config.Config) {
	myApp := app.New()
	title := "MathBoard"
	if cfg.ProblemID != "" {
		title += " - " + cfg.ProblemID
	}
	myWindow := myApp.NewWindow(title)
	myWindow.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))

	ws := NewWorkspace(myWindow, cfg)

	if cfg.Share.Enabled {
		sh, err := startSharing(cfg, ws)
		if err != nil {
			log.Printf("[SHARE] Sharing disabled: %v", err)
			ws.Status.SetAction("Sharing unavailable")
		} else {
			defer sh.stop()
		}
	}

	myWindow.SetContent(ws.Content())
	myWindow.ShowAndRun()
}
