package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Save writes the config to Path.
func (c *Config) Save() error {
	return c.SaveTo(c.Path())
}

// SaveTo writes the config to a specific path.
func (c *Config) SaveTo(path string) error {
	// Create parent directory if needed
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Path returns the file Save writes to: the file the config was loaded
// from, or config.yaml in the user's config directory.
func (c *Config) Path() string {
	if c.source != "" {
		return c.source
	}
	return filepath.Join(ConfigDir(), "config.yaml")
}

// RememberFile records path as the last opened file when remembering is
// enabled. Only editor.last_file is persisted: the file on disk is re-read
// and rewritten, so environment and flag overrides never reach it. It
// reports whether anything was saved.
func (c *Config) RememberFile(path string) (bool, error) {
	if !c.Editor.RememberLastFile || c.Editor.LastFile == path {
		return false, nil
	}
	c.Editor.LastFile = path

	target := c.Path()
	onDisk := Default()
	if err := loadFromFile(onDisk, target); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("reading %s: %w", target, err)
	}
	onDisk.Editor.LastFile = path
	if err := onDisk.SaveTo(target); err != nil {
		return false, err
	}
	return true, nil
}
