package sfx

import (
	"errors"
	"fmt"
	"os"
)

// ErrEmptyPath is returned when a load or save is attempted without a path.
var ErrEmptyPath = errors.New("empty file path")

// LoadFile reads a document from disk.
func LoadFile(path string) (string, error) {
	if path == "" {
		return "", ErrEmptyPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// SaveFile overwrites path with doc. There is no backup and no atomic
// rename: a failed write may leave the file truncated.
func SaveFile(path, doc string) error {
	if path == "" {
		return ErrEmptyPath
	}
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
