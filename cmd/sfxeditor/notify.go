// Native message boxes for the SFX editor.
package main

import (
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"
)

// showInfoBox shows a blocking information message box.
func (app *App) showInfoBox(title, msg string) {
	app.messageBox(sdl.MESSAGEBOX_INFORMATION, title, msg)
}

// showErrorBox shows a blocking error message box.
func (app *App) showErrorBox(title, msg string) {
	app.messageBox(sdl.MESSAGEBOX_ERROR, title, msg)
}

func (app *App) messageBox(flags uint32, title, msg string) {
	// Automated runs must not block on a modal box.
	if app.cfg.Automation.Enabled {
		return
	}
	if err := sdl.ShowSimpleMessageBox(flags, title, msg, nil); err != nil {
		app.log.Warn("message box failed", zap.String("title", title), zap.Error(err))
	}
}
