// SFX Editor - A graphical tool for recolouring Battalion Wars particle effects.
package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/sfx-editor/internal/audio"
	"github.com/Faultbox/sfx-editor/internal/config"
	"github.com/Faultbox/sfx-editor/internal/editor"
	"github.com/Faultbox/sfx-editor/internal/logger"
	"github.com/Faultbox/sfx-editor/pkg/sfx"
)

func main() {
	runtime.LockOSThread()

	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	app, err := NewApp(cfg, logger.Named("sfxeditor"))
	if err != nil {
		logger.Log.Fatal("failed to start editor", zap.Error(err))
	}
	defer app.Close()

	app.openInitialFile()
	app.Run()
}

// App represents the SFX editor application state.
type App struct {
	backend backend.Backend[sdlbackend.SDLWindowFlags]
	cfg     *config.Config
	log     *zap.Logger

	// Editing state
	session *editor.Session
	presets []editor.Preset
	cues    *audio.Player // nil when sound cues are disabled

	// Viewer cache, rebuilt when the document changes
	viewerDoc   string
	viewerLines []viewerLine

	// Colour controls
	hexInput    string
	pickerColor [3]float32

	// Status bar
	statusMsg string
	statusErr bool

	// Notification overlay and automation
	notifyMsg           string
	showNotify          bool
	notifyTime          time.Time
	screenshotRequested bool

	// File dialog result, written by the dialog goroutine and consumed in render
	pendingMu   sync.Mutex
	pendingPath string
}

// NewApp creates a new application instance.
func NewApp(cfg *config.Config, log *zap.Logger) (*App, error) {
	presets, err := cfg.Editor.EditorPresets()
	if err != nil {
		return nil, err
	}

	app := &App{
		cfg:       cfg,
		log:       log,
		session:   editor.NewSession(cfg.Editor.DefaultColor.Color(), log.Named("session")),
		presets:   presets,
		statusMsg: "No file loaded",
	}
	app.hexInput = editor.Hex(app.session.Channels().Color())
	app.session.Channels().Subscribe(app.onChannelChange)

	if cfg.Audio.Cues {
		app.cues = audio.New(cfg.Audio.Volume)
		if err := app.cues.Init(); err != nil {
			log.Warn("sound cues disabled", zap.Error(err))
			app.cues = nil
		}
	}

	if cfg.Automation.Enabled {
		if err := os.MkdirAll(cfg.Automation.Dir, 0755); err != nil {
			log.Warn("could not create automation dir", zap.String("dir", cfg.Automation.Dir), zap.Error(err))
		}
	}

	app.backend, err = backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("failed to create backend: %w", err)
	}

	bg := BackgroundColor
	app.backend.SetBgColor(imgui.NewVec4(bg[0], bg[1], bg[2], bg[3]))
	app.backend.CreateWindow(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height)

	// OpenGL function pointers are only needed for screenshot capture
	if err := gl.Init(); err != nil {
		log.Warn("OpenGL init failed, screenshots disabled", zap.Error(err))
	}

	return app, nil
}

// Close cleans up resources. Unapplied edits are discarded.
func (app *App) Close() {
	if app.cues != nil {
		app.cues.Close()
	}
}

// Run starts the main application loop.
func (app *App) Run() {
	app.backend.Run(app.render)
}

// openInitialFile loads the file named on the command line, or the last
// remembered file.
func (app *App) openInitialFile() {
	path := app.cfg.Editor.OpenFile
	if path == "" && app.cfg.Editor.RememberLastFile {
		path = app.cfg.Editor.LastFile
		if _, err := os.Stat(path); err != nil {
			return
		}
	}
	if path != "" {
		app.OpenFile(path)
	}
}

// openFileDialog shows a native file dialog to select a particle file.
func (app *App) openFileDialog() {
	// The dialog blocks, so it runs off the render thread and hands the
	// result back through pendingPath.
	go func() {
		filename, err := dialog.File().
			Filter(TextFilesFilter, "txt").
			Filter(AllFilesFilter, "*").
			Title("Open Particle Effect File").
			Load()

		if err != nil {
			if !errors.Is(err, dialog.ErrCancelled) {
				app.log.Error("file dialog failed", zap.Error(err))
			}
			return
		}

		app.pendingMu.Lock()
		app.pendingPath = filename
		app.pendingMu.Unlock()
	}()
}

func (app *App) takePendingPath() string {
	app.pendingMu.Lock()
	defer app.pendingMu.Unlock()
	path := app.pendingPath
	app.pendingPath = ""
	return path
}

// OpenFile loads a particle file into the session.
func (app *App) OpenFile(path string) bool {
	if err := app.session.Load(path); err != nil {
		app.setStatus(fmt.Sprintf("Failed to load file: %v", err), true)
		app.playCue(audio.CueError)
		app.showErrorBox("Error", fmt.Sprintf("Failed to load file: %v", err))
		return false
	}

	app.hexInput = editor.Hex(app.session.Channels().Color())
	app.setStatus(fmt.Sprintf("Loaded: %s", app.session.Name()), false)
	app.backend.SetWindowTitle(fmt.Sprintf("%s - %s", app.cfg.Window.Title, app.session.Name()))
	app.playCue(audio.CueLoaded)

	if saved, err := app.cfg.RememberFile(path); err != nil {
		app.log.Warn("could not save last file", zap.Error(err))
	} else if saved {
		app.log.Debug("remembered last file", zap.String("path", path))
	}
	return true
}

// ApplyChanges writes the slider values into the loaded file.
func (app *App) ApplyChanges() bool {
	if err := app.session.Apply(); err != nil {
		if errors.Is(err, editor.ErrNoFileLoaded) {
			app.setStatus("No file loaded", true)
			app.showErrorBox("Error", "No file loaded")
			return false
		}
		app.setStatus(fmt.Sprintf("Failed to apply changes: %v", err), true)
		app.playCue(audio.CueError)
		app.showErrorBox("Error", fmt.Sprintf("Failed to apply changes: %v", err))
		return false
	}

	app.hexInput = editor.Hex(app.session.Channels().Color())
	app.setStatus(fmt.Sprintf("Applied changes to %s", app.session.Name()), false)
	app.playCue(audio.CueApplied)
	if app.cfg.Editor.ConfirmApply {
		app.showInfoBox("Success", "Changes applied successfully!")
	}
	return true
}

// onChannelChange keeps the hex field in step with the sliders.
func (app *App) onChannelChange(_ sfx.Channel, _ float64) {
	app.hexInput = editor.Hex(app.session.Channels().Color())
}

func (app *App) playCue(c audio.Cue) {
	if app.cues == nil {
		return
	}
	if err := app.cues.Play(c); err != nil {
		app.log.Debug("cue not played", zap.Stringer("cue", c), zap.Error(err))
	}
}

func (app *App) setStatus(msg string, isErr bool) {
	app.statusMsg = msg
	app.statusErr = isErr
}

// render is called each frame to draw the UI.
func (app *App) render() {
	// Capture at start of frame to get previous frame's rendered content
	if app.screenshotRequested {
		app.screenshotRequested = false
		app.captureScreenshot()
	}

	if app.cfg.Automation.Enabled {
		app.checkAndExecuteCommand()
	}

	// Process pending file dialog result
	if path := app.takePendingPath(); path != "" {
		app.OpenFile(path)
	}

	app.handleShortcuts()

	// Main menu bar
	if imgui.BeginMainMenuBar() {
		if imgui.BeginMenu("File") {
			if imgui.MenuItemBool("Open...") {
				app.openFileDialog()
			}
			if imgui.MenuItemBool("Apply Changes") {
				app.ApplyChanges()
			}
			imgui.Separator()
			if imgui.MenuItemBool("Exit") {
				app.Close()
				// os.Exit skips main's deferred Sync.
				logger.Sync()
				os.Exit(0)
			}
			imgui.EndMenu()
		}
		imgui.EndMainMenuBar()
	}

	// Get viewport work area (excludes menu bar)
	viewport := imgui.MainViewport()
	workPos := viewport.WorkPos()
	workSize := viewport.WorkSize()

	contentHeight := workSize.Y - StatusBarHeight
	viewerWidth := workSize.X - ControlsPanelWidth

	// Window flags for fixed panels
	flags := imgui.WindowFlagsNoMove | imgui.WindowFlagsNoResize | imgui.WindowFlagsNoCollapse

	// Left panel - File viewer
	imgui.SetNextWindowPos(workPos)
	imgui.SetNextWindowSize(imgui.NewVec2(viewerWidth, contentHeight))
	if imgui.BeginV("File", nil, flags) {
		app.renderViewer()
	}
	imgui.End()

	// Right panel - Colour controls
	imgui.SetNextWindowPos(imgui.NewVec2(workPos.X+viewerWidth, workPos.Y))
	imgui.SetNextWindowSize(imgui.NewVec2(ControlsPanelWidth, contentHeight))
	if imgui.BeginV("Controls", nil, flags) {
		app.renderValuesGrid()
		imgui.Separator()
		app.renderSliders()
		imgui.Separator()
		app.renderColorPreview()
		imgui.Separator()
		app.renderPresets()
		imgui.Separator()
		app.renderApply()
	}
	imgui.End()

	// Status bar at bottom
	imgui.SetNextWindowPos(imgui.NewVec2(workPos.X, workPos.Y+contentHeight))
	imgui.SetNextWindowSize(imgui.NewVec2(workSize.X, StatusBarHeight))
	statusFlags := flags | imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoScrollbar
	if imgui.BeginV("##StatusBar", nil, statusFlags) {
		app.renderStatusBar()
	}
	imgui.End()

	// Notification overlay
	if app.showNotify && time.Since(app.notifyTime) < NotificationDuration {
		notifyFlags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
			imgui.WindowFlagsNoMove | imgui.WindowFlagsNoScrollbar |
			imgui.WindowFlagsAlwaysAutoResize | imgui.WindowFlagsNoFocusOnAppearing
		imgui.SetNextWindowPos(imgui.NewVec2(workPos.X+10, workPos.Y+10))
		imgui.SetNextWindowBgAlpha(0.85)
		if imgui.BeginV("##Notify", nil, notifyFlags) {
			imgui.TextUnformatted(app.notifyMsg)
		}
		imgui.End()
	} else if app.showNotify {
		app.showNotify = false
	}
}

// handleShortcuts processes global keyboard shortcuts.
func (app *App) handleShortcuts() {
	// F12 = request screenshot (captured next frame to get rendered content)
	if imgui.IsKeyChordPressed(imgui.KeyChord(imgui.KeyF12)) {
		app.screenshotRequested = true
	}

	ctrlD := imgui.KeyChord(imgui.ModCtrl) | imgui.KeyChord(imgui.KeyD)
	if imgui.IsKeyChordPressed(ctrlD) {
		app.dumpState()
	}

	ctrlO := imgui.KeyChord(imgui.ModCtrl) | imgui.KeyChord(imgui.KeyO)
	if imgui.IsKeyChordPressed(ctrlO) {
		app.openFileDialog()
	}

	ctrlS := imgui.KeyChord(imgui.ModCtrl) | imgui.KeyChord(imgui.KeyS)
	if imgui.IsKeyChordPressed(ctrlS) {
		app.ApplyChanges()
	}
}

// renderStatusBar renders the status bar at the bottom.
func (app *App) renderStatusBar() {
	switch {
	case app.statusErr:
		imgui.PushStyleColorVec4(imgui.ColText, StatusErrorColor)
	case app.session.State() == editor.StateApplied:
		imgui.PushStyleColorVec4(imgui.ColText, StatusOKColor)
	default:
		imgui.PushStyleColorVec4(imgui.ColText, MutedTextColor)
	}
	imgui.TextUnformatted(app.statusMsg)
	imgui.PopStyleColor()

	if app.session.PendingChanges() {
		imgui.SameLine()
		imgui.TextColored(StatusPendingColor, "| Unapplied changes")
	}
}

// showNotification displays a brief overlay notification message.
func (app *App) showNotification(msg string) {
	app.notifyMsg = msg
	app.showNotify = true
	app.notifyTime = time.Now()
}
