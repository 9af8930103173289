package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "SFXEDIT_"

// Load loads configuration with priority: defaults < file < environment < flags.
// A .env file in the working directory is merged into the environment first.
func Load() (*Config, error) {
	// Start with defaults
	cfg := Default()

	// Try to load from file (explicit path takes priority)
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
		cfg.source = configPath
	}

	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}
	if err := applyEnv(cfg, os.Getenv); err != nil {
		return nil, err
	}

	// Apply CLI flags (highest priority)
	applyFlags(cfg)

	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./sfxeditor.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "SFXEditor")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "SFXEditor")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "sfx-editor")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "sfx-editor")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// loadDotEnv merges a .env file into the process environment. A missing
// file is not an error; variables already set are not overwritten.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// applyEnv applies SFXEDIT_* overrides read through getenv.
func applyEnv(cfg *Config, getenv func(string) string) error {
	if v := getenv(EnvPrefix + "LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := getenv(EnvPrefix + "LOG_FILE"); v != "" {
		cfg.Logging.LogFile = v
	}
	if v := getenv(EnvPrefix + "FILE"); v != "" {
		cfg.Editor.OpenFile = v
	}
	if v := getenv(EnvPrefix + "AUTOMATION_DIR"); v != "" {
		cfg.Automation.Dir = v
	}

	bools := []struct {
		name string
		dst  *bool
	}{
		{"AUTOMATION", &cfg.Automation.Enabled},
		{"AUDIO_CUES", &cfg.Audio.Cues},
		{"CONFIRM_APPLY", &cfg.Editor.ConfirmApply},
	}
	for _, b := range bools {
		v := getenv(EnvPrefix + b.name)
		if v == "" {
			continue
		}
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, b.name, err)
		}
		*b.dst = parsed
	}
	return nil
}
