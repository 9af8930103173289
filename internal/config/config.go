// Package config handles editor configuration loading and management.
package config

import (
	"fmt"

	"github.com/Faultbox/sfx-editor/internal/editor"
	"github.com/Faultbox/sfx-editor/pkg/sfx"
)

// Config holds all editor settings.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Editor     EditorConfig     `yaml:"editor"`
	Audio      AudioConfig      `yaml:"audio"`
	Automation AutomationConfig `yaml:"automation"`
	Logging    LoggingConfig    `yaml:"logging"`

	// source is the file the config was read from, "" when none was found.
	source string
}

// WindowConfig holds main window settings.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// EditorConfig holds editing defaults.
type EditorConfig struct {
	DefaultColor     ColorConfig    `yaml:"default_color"`    // Slider values before a file is loaded
	Presets          []PresetConfig `yaml:"presets"`          // Quick colour buttons
	OpenFile         string         `yaml:"-"`                // File to open at startup (flag only)
	LastFile         string         `yaml:"last_file"`        // Most recently loaded file
	RememberLastFile bool           `yaml:"remember_last_file"`
	ConfirmApply     bool           `yaml:"confirm_apply"` // Show a message box after apply
}

// ColorConfig is an RGBA colour with 0-1 channels.
type ColorConfig struct {
	Red   float64 `yaml:"red"`
	Green float64 `yaml:"green"`
	Blue  float64 `yaml:"blue"`
	Alpha float64 `yaml:"alpha"`
}

// PresetConfig describes a quick colour either by hex or by channels.
type PresetConfig struct {
	Name  string  `yaml:"name"`
	Hex   string  `yaml:"hex,omitempty"`
	Red   float64 `yaml:"red,omitempty"`
	Green float64 `yaml:"green,omitempty"`
	Blue  float64 `yaml:"blue,omitempty"`
}

// AudioConfig holds feedback sound settings.
type AudioConfig struct {
	Cues   bool    `yaml:"cues"`
	Volume float64 `yaml:"volume"`
}

// AutomationConfig holds GUI automation settings (command file, screenshots).
type AutomationConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	presets := make([]PresetConfig, 0, len(editor.DefaultPresets))
	for _, p := range editor.DefaultPresets {
		presets = append(presets, PresetConfig{Name: p.Name, Red: p.Red, Green: p.Green, Blue: p.Blue})
	}

	return &Config{
		Window: WindowConfig{
			Width:  1100,
			Height: 850,
			Title:  "Battalion Wars SFX Editor",
		},
		Editor: EditorConfig{
			DefaultColor: ColorConfig{
				Red:   editor.DefaultColor[sfx.Red],
				Green: editor.DefaultColor[sfx.Green],
				Blue:  editor.DefaultColor[sfx.Blue],
				Alpha: editor.DefaultColor[sfx.Alpha],
			},
			Presets:          presets,
			RememberLastFile: true,
			ConfirmApply:     true,
		},
		Audio: AudioConfig{
			Cues:   true,
			Volume: 0.5,
		},
		Automation: AutomationConfig{
			Enabled: false,
			Dir:     "/tmp/sfxeditor",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Color converts the colour to channel values.
func (c ColorConfig) Color() sfx.Color {
	return sfx.Color{c.Red, c.Green, c.Blue, c.Alpha}
}

// EditorPresets converts the configured presets. Hex takes priority over
// channel values.
func (e EditorConfig) EditorPresets() ([]editor.Preset, error) {
	out := make([]editor.Preset, 0, len(e.Presets))
	for _, p := range e.Presets {
		if p.Hex != "" {
			preset, err := editor.PresetFromHex(p.Name, p.Hex)
			if err != nil {
				return nil, fmt.Errorf("preset %q: %w", p.Name, err)
			}
			out = append(out, preset)
			continue
		}
		out = append(out, editor.Preset{Name: p.Name, Red: p.Red, Green: p.Green, Blue: p.Blue})
	}
	return out, nil
}
