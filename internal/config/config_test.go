package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v, missing file should not be an error", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if cfg.Theme != "default" {
		t.Errorf("theme = %q, want default", cfg.Theme)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	content := `
compiler = "/opt/tsc/bin/tsc"
theme = "monokai"
timeout_seconds = 5
`
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Compiler != "/opt/tsc/bin/tsc" {
		t.Errorf("compiler = %q", cfg.Compiler)
	}
	if cfg.Theme != "monokai" {
		t.Errorf("theme = %q, want monokai", cfg.Theme)
	}
	if cfg.Timeout() != 5*time.Second {
		t.Errorf("Timeout() = %v, want 5s", cfg.Timeout())
	}
	// Unset fields keep their defaults.
	if cfg.LogLevel != "info" {
		t.Errorf("log level = %q, want default info", cfg.LogLevel)
	}
	if cfg.Debounce() != 250*time.Millisecond {
		t.Errorf("Debounce() = %v, want default 250ms", cfg.Debounce())
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("theme = [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Load() error = %v, want *ParseError", err)
	}
	if parseErr.Path != path {
		t.Errorf("ParseError.Path = %q, want %q", parseErr.Path, path)
	}
}

func TestDurationHelpers(t *testing.T) {
	cfg := Config{TimeoutSeconds: -1, DebounceMS: 0}
	if cfg.Timeout() != 0 {
		t.Errorf("Timeout() = %v, want 0 for non-positive seconds", cfg.Timeout())
	}
	if cfg.Debounce() != 0 {
		t.Errorf("Debounce() = %v, want 0 for non-positive ms", cfg.Debounce())
	}
}
