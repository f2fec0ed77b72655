// Package config loads tscview's own configuration from a TOML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config holds user-adjustable settings.
type Config struct {
	// Compiler overrides binary location entirely when set; the locator's
	// local/global fallback is skipped.
	Compiler string `toml:"compiler"`

	// TimeoutSeconds bounds a single resolution subprocess.
	TimeoutSeconds int `toml:"timeout_seconds"`

	// Theme names a built-in color theme.
	Theme string `toml:"theme"`

	// ThemeFile points at a Lua theme script; takes precedence over Theme.
	ThemeFile string `toml:"theme_file"`

	// LogFile is the diagnostic log destination. Empty disables file logging.
	LogFile string `toml:"log_file"`

	// LogLevel is the minimum diagnostic level (debug, info, warn, error).
	LogLevel string `toml:"log_level"`

	// DebounceMS coalesces rapid file saves into one refresh.
	DebounceMS int `toml:"debounce_ms"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TimeoutSeconds: 30,
		Theme:          "default",
		LogLevel:       "info",
		DebounceMS:     250,
	}
}

// DefaultPath returns the conventional config file location, or the empty
// string when the user config directory cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "tscview", "config.toml")
}

// Load reads configuration from path, layered over the defaults.
// A missing file is not an error; the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), &ParseError{Path: path, Message: err.Error(), Err: err}
	}
	return cfg, nil
}

// Timeout returns the resolution timeout as a duration.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Debounce returns the save-event debounce window as a duration.
func (c Config) Debounce() time.Duration {
	if c.DebounceMS <= 0 {
		return 0
	}
	return time.Duration(c.DebounceMS) * time.Millisecond
}

// ParseError describes a malformed configuration file.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse config %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
