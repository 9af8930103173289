// Command and screenshot handling for the SFX editor automation interface.
package main

import (
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/sfx-editor/internal/editor"
	"github.com/Faultbox/sfx-editor/pkg/sfx"
)

// GUIState represents the current editor state for JSON export.
type GUIState struct {
	Timestamp string             `json:"timestamp"`
	Path      string             `json:"path"`
	State     string             `json:"state"`
	Pending   bool               `json:"pendingChanges"`
	Hex       string             `json:"hex"`
	Sliders   map[string]float64 `json:"sliders"`
	Values    map[string]float64 `json:"values"`
	Stats     struct {
		Fields      int `json:"fields"`
		Occurrences int `json:"occurrences"`
	} `json:"stats"`
}

// Command represents a remote command for GUI automation.
type Command struct {
	Action  string `json:"action"`
	Path    string `json:"path,omitempty"`
	Channel string `json:"channel,omitempty"`
	Value   string `json:"value,omitempty"`
}

// buildState snapshots the session for export.
func buildState(s *editor.Session, now time.Time) GUIState {
	state := GUIState{
		Timestamp: now.Format(time.RFC3339),
		Path:      s.Path(),
		State:     s.State().String(),
		Pending:   s.PendingChanges(),
		Hex:       editor.Hex(s.Channels().Color()),
		Sliders:   make(map[string]float64, sfx.NumChannels),
		Values:    make(map[string]float64, len(s.Values())),
	}
	for _, ch := range sfx.Channels {
		state.Sliders[ch.String()] = s.Channels().Get(ch)
	}
	for key, v := range s.Values() {
		state.Values[key.String()] = v
	}
	state.Stats.Fields = len(s.Values())
	state.Stats.Occurrences = len(s.Occurrences())
	return state
}

// runEditCommand executes the commands that only touch the slider state.
// It reports false for actions it does not handle.
func runEditCommand(channels *editor.Channels, presets []editor.Preset, cmd Command) (msg string, handled bool, err error) {
	switch cmd.Action {
	case "set_channel":
		ch, err := sfx.ParseChannel(cmd.Channel)
		if err != nil {
			return "", true, err
		}
		v, err := strconv.ParseFloat(cmd.Value, 64)
		if err != nil {
			return "", true, fmt.Errorf("invalid value %q: %w", cmd.Value, err)
		}
		channels.Set(ch, v)
		return fmt.Sprintf("%s: %s", ch, sfx.FormatDisplay(v)), true, nil

	case "set_color":
		r, g, b, err := editor.ParseHex(cmd.Value)
		if err != nil {
			return "", true, err
		}
		channels.SetRGB(r, g, b)
		return fmt.Sprintf("Color: %s", editor.Hex(channels.Color())), true, nil

	case "preset":
		p, ok := editor.FindPreset(presets, cmd.Value)
		if !ok {
			return "", true, fmt.Errorf("unknown preset %q", cmd.Value)
		}
		p.ApplyTo(channels)
		return fmt.Sprintf("Preset: %s", p.Name), true, nil
	}
	return "", false, nil
}

// captureScreenshot captures the current frame to a PNG file.
func (app *App) captureScreenshot() {
	// DisplaySize is logical pixels, DisplayFramebufferScale is the multiplier
	io := imgui.CurrentIO()
	displaySize := io.DisplaySize()
	fbScale := io.DisplayFramebufferScale()
	width := int(displaySize.X * fbScale.X)
	height := int(displaySize.Y * fbScale.Y)

	if width <= 0 || height <= 0 {
		app.showNotification("Screenshot failed: invalid viewport")
		return
	}

	// Read from front buffer since we capture at frame start
	gl.ReadBuffer(gl.FRONT)
	pixels := make([]byte, width*height*4)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	gl.ReadBuffer(gl.BACK)

	img := flipRows(pixels, width, height)

	filename := fmt.Sprintf("screenshot-%s.png", time.Now().Format("20060102-150405"))
	savePath := filepath.Join(app.cfg.Automation.Dir, filename)

	if err := writePNG(savePath, img); err != nil {
		app.showNotification(fmt.Sprintf("Screenshot failed: %v", err))
		app.log.Error("screenshot failed", zap.Error(err))
		return
	}

	// Also save as "latest.png" for easy access by automation
	if err := writePNG(filepath.Join(app.cfg.Automation.Dir, "latest.png"), img); err != nil {
		app.log.Warn("could not write latest.png", zap.Error(err))
	}

	app.showNotification(fmt.Sprintf("Saved: %s", filename))
	app.log.Info("screenshot saved", zap.String("path", savePath))
}

// flipRows converts bottom-up RGBA rows (OpenGL origin) into an image.
func flipRows(pixels []byte, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	stride := width * 4
	for y := 0; y < height; y++ {
		src := pixels[(height-1-y)*stride : (height-y)*stride]
		copy(img.Pix[y*img.Stride:y*img.Stride+stride], src)
	}
	return img
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// dumpState exports the current editor state as JSON (Ctrl+D).
func (app *App) dumpState() {
	state := buildState(app.session, time.Now())

	jsonData, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		app.showNotification(fmt.Sprintf("State dump failed: %v", err))
		return
	}

	statePath := filepath.Join(app.cfg.Automation.Dir, "state.json")
	if err := os.WriteFile(statePath, jsonData, 0644); err != nil {
		app.showNotification(fmt.Sprintf("State dump failed: %v", err))
		return
	}

	app.showNotification("State saved: state.json")
	app.log.Info("state saved", zap.String("path", statePath))
}

// checkAndExecuteCommand polls for command file and executes if found.
// Called each frame from render(). Commands are single-shot (file deleted after execution).
func (app *App) checkAndExecuteCommand() {
	cmdPath := filepath.Join(app.cfg.Automation.Dir, "command.json")

	data, err := os.ReadFile(cmdPath)
	if err != nil {
		return // No command file, normal case
	}

	// Delete file immediately to prevent re-execution
	_ = os.Remove(cmdPath)

	var cmd Command
	if err := json.Unmarshal(data, &cmd); err != nil {
		app.log.Warn("invalid command", zap.Error(err))
		return
	}

	app.executeCommand(cmd)
}

// executeCommand executes a single command.
func (app *App) executeCommand(cmd Command) {
	var msg string

	switch cmd.Action {
	case "load_file":
		if app.OpenFile(cmd.Path) {
			msg = fmt.Sprintf("Loaded: %s", app.session.Name())
		} else {
			msg = app.statusMsg
		}

	case "apply":
		if app.ApplyChanges() {
			msg = "Changes applied"
		} else {
			msg = app.statusMsg
		}

	case "screenshot":
		app.screenshotRequested = true
		return // Skip notification, screenshot will show its own

	case "dump_state":
		app.dumpState()
		return // Skip notification, dumpState shows its own

	default:
		var handled bool
		var err error
		msg, handled, err = runEditCommand(app.session.Channels(), app.presets, cmd)
		switch {
		case !handled:
			msg = fmt.Sprintf("Unknown command: %s", cmd.Action)
		case err != nil:
			msg = fmt.Sprintf("%s failed: %v", cmd.Action, err)
		}
	}

	app.showNotification(msg)
	app.log.Info("command executed", zap.String("action", cmd.Action), zap.String("result", msg))
}
