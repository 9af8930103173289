package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Faultbox/sfx-editor/internal/editor"
	"github.com/Faultbox/sfx-editor/pkg/sfx"
)

func TestRunEditCommand(t *testing.T) {
	tests := []struct {
		name    string
		cmd     Command
		wantErr bool
		check   func(t *testing.T, c *editor.Channels)
	}{
		{
			name: "set channel",
			cmd:  Command{Action: "set_channel", Channel: "green", Value: "0.25"},
			check: func(t *testing.T, c *editor.Channels) {
				if got := c.Get(sfx.Green); got != 0.25 {
					t.Errorf("expected green 0.25, got %v", got)
				}
			},
		},
		{
			name: "set color",
			cmd:  Command{Action: "set_color", Value: "#FF0000"},
			check: func(t *testing.T, c *editor.Channels) {
				if got := editor.Hex(c.Color()); got != "#FF0000" {
					t.Errorf("expected #FF0000, got %s", got)
				}
				if got := c.Get(sfx.Alpha); got != 1.0 {
					t.Errorf("expected alpha untouched, got %v", got)
				}
			},
		},
		{
			name: "preset",
			cmd:  Command{Action: "preset", Value: "Blue"},
			check: func(t *testing.T, c *editor.Channels) {
				if got := c.Get(sfx.Blue); got != 0.8 {
					t.Errorf("expected blue 0.8, got %v", got)
				}
			},
		},
		{name: "bad channel", cmd: Command{Action: "set_channel", Channel: "purple", Value: "1"}, wantErr: true},
		{name: "bad value", cmd: Command{Action: "set_channel", Channel: "red", Value: "high"}, wantErr: true},
		{name: "bad hex", cmd: Command{Action: "set_color", Value: "#GGGGGG"}, wantErr: true},
		{name: "unknown preset", cmd: Command{Action: "preset", Value: "Mauve"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := editor.NewChannels(editor.DefaultColor)
			msg, handled, err := runEditCommand(c, editor.DefaultPresets, tt.cmd)
			if !handled {
				t.Fatalf("expected %s to be handled", tt.cmd.Action)
			}
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if c.Color() != editor.DefaultColor {
					t.Error("failed command should not change channels")
				}
				return
			}
			if msg == "" {
				t.Error("expected a result message")
			}
			tt.check(t, c)
		})
	}
}

func TestRunEditCommand_Unhandled(t *testing.T) {
	c := editor.NewChannels(editor.DefaultColor)
	for _, action := range []string{"apply", "load_file", "screenshot", "bogus"} {
		if _, handled, _ := runEditCommand(c, editor.DefaultPresets, Command{Action: action}); handled {
			t.Errorf("%s should not be handled by runEditCommand", action)
		}
	}
}

func TestBuildState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flame.txt")
	doc := "Start_Red NUMBER_VERSION_2\n****1: 0.100000\nEnd_Red NUMBER_VERSION_2\n****1: 0.200000\n"
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	s := editor.NewSession(editor.DefaultColor, nil)
	if err := s.Load(path); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	state := buildState(s, now)

	if state.Timestamp != "2024-05-01T12:00:00Z" {
		t.Errorf("unexpected timestamp %s", state.Timestamp)
	}
	if state.Path != path {
		t.Errorf("expected path %s, got %s", path, state.Path)
	}
	if state.State != "loaded" {
		t.Errorf("expected state loaded, got %s", state.State)
	}
	if state.Sliders["Red"] != 0.1 {
		t.Errorf("expected Red slider 0.1, got %v", state.Sliders["Red"])
	}
	if state.Values["End_Red"] != 0.2 {
		t.Errorf("expected End_Red 0.2, got %v", state.Values["End_Red"])
	}
	if state.Stats.Fields != 2 || state.Stats.Occurrences != 2 {
		t.Errorf("unexpected stats %+v", state.Stats)
	}
	if !state.Pending {
		t.Error("expected pending changes since End_Red differs from the slider")
	}

	if _, err := json.Marshal(state); err != nil {
		t.Errorf("state should marshal: %v", err)
	}
}

func TestFlipRows(t *testing.T) {
	// 1x2 image: bottom row red, top row blue in OpenGL order
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	img := flipRows(pixels, 1, 2)

	top := img.RGBAAt(0, 0)
	if top.B != 255 || top.R != 0 {
		t.Errorf("expected top row blue, got %+v", top)
	}
	bottom := img.RGBAAt(0, 1)
	if bottom.R != 255 || bottom.B != 0 {
		t.Errorf("expected bottom row red, got %+v", bottom)
	}
}
