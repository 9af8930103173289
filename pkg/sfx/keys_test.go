package sfx

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestAllKeys(t *testing.T) {
	keys := AllKeys()

	if len(keys) != 12 {
		t.Fatalf("expected 12 keys, got %d", len(keys))
	}

	seen := make(map[string]bool)
	for _, k := range keys {
		name := k.String()
		if seen[name] {
			t.Errorf("duplicate key %s", name)
		}
		seen[name] = true

		parsed, err := ParseKey(name)
		if err != nil {
			t.Errorf("ParseKey(%q) failed: %v", name, err)
		}
		if parsed != k {
			t.Errorf("ParseKey(%q): expected %v, got %v", name, k, parsed)
		}
	}

	for _, name := range []string{"Start_Red", "End_Green", "Transition_Blue", "Transition_Alpha"} {
		if !seen[name] {
			t.Errorf("missing key %s", name)
		}
	}
}

func TestParseKey_Unknown(t *testing.T) {
	if _, err := ParseKey("Middle_Red"); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestParseChannel(t *testing.T) {
	tests := []struct {
		in   string
		want Channel
	}{
		{"Red", Red},
		{"g", Green},
		{"blue", Blue},
		{"opacity", Alpha},
		{"A", Alpha},
	}
	for _, tt := range tests {
		got, err := ParseChannel(tt.in)
		if err != nil {
			t.Errorf("ParseChannel(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseChannel(%q): expected %s, got %s", tt.in, tt.want, got)
		}
	}

	if _, err := ParseChannel("purple"); err == nil {
		t.Error("expected error for unknown channel")
	}
}

func TestLoadSaveFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "effect.txt")
	doc := field("Start_Red", "0.700") + "rest\n"

	if err := SaveFile(path, doc); err != nil {
		t.Fatalf("SaveFile failed: %v", err)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if loaded != doc {
		t.Errorf("expected %q, got %q", doc, loaded)
	}

	// Saving overwrites, it does not append.
	if err := SaveFile(path, "short"); err != nil {
		t.Fatalf("SaveFile failed: %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "short" {
		t.Errorf("expected overwrite, got %q", data)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	if _, err := LoadFile(""); !errors.Is(err, ErrEmptyPath) {
		t.Errorf("expected ErrEmptyPath, got %v", err)
	}

	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestSaveFile_Errors(t *testing.T) {
	if err := SaveFile("", "x"); !errors.Is(err, ErrEmptyPath) {
		t.Errorf("expected ErrEmptyPath, got %v", err)
	}

	path := filepath.Join(t.TempDir(), "no", "such", "dir", "effect.txt")
	if err := SaveFile(path, "x"); err == nil {
		t.Error("expected error writing into missing directory")
	}
}
