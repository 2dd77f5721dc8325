// Package config loads the clefd daemon configuration and the user's
// keybindings.
//
// Two files live in the config directory ($XDG_CONFIG_HOME/clefd,
// falling back to ~/.config/clefd):
//
//   - clefd.yml: daemon settings (YAML, every field optional)
//   - clefrc:    chord-to-command bindings in a plain line format,
//     watched for changes while the dispatcher runs
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/nshan651/clefd/internal/chord"
)

// ConfigFileName is the daemon settings file inside the config dir.
const ConfigFileName = "clefd.yml"

// BindingsFileName is the keybindings file inside the config dir.
const BindingsFileName = "clefrc"

// DefaultFIFOPath is where chord lines are delivered unless overridden.
const DefaultFIFOPath = "/tmp/clefd.fifo"

// Config holds the daemon settings from clefd.yml.
type Config struct {
	// FIFOPath is the named pipe chord lines are written to.
	FIFOPath string `yaml:"fifo_path"`

	// BindingsPath is the clefrc file the dispatcher reads.
	// Defaults to clefrc in the config directory.
	BindingsPath string `yaml:"bindings_path"`

	// MaxPressedKeys bounds the engine's pressed-key set.
	MaxPressedKeys int `yaml:"max_pressed_keys"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration for a given config dir.
func Default(dir string) Config {
	return Config{
		FIFOPath:       DefaultFIFOPath,
		BindingsPath:   filepath.Join(dir, BindingsFileName),
		MaxPressedKeys: chord.DefaultMaxPressedKeys,
		LogLevel:       "info",
	}
}

// Load reads clefd.yml from dir and fills absent fields with defaults.
// A missing file is not an error: the daemon runs fine on defaults
// alone. A malformed file is an error - silently ignoring a typo'd
// config is worse than refusing to start.
func Load(dir string) (Config, error) {
	cfg := Default(dir)

	data, err := os.ReadFile(filepath.Join(dir, ConfigFileName))
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read %s: %w", ConfigFileName, err)
	}

	var loaded Config
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", ConfigFileName, err)
	}

	if loaded.FIFOPath != "" {
		cfg.FIFOPath = loaded.FIFOPath
	}
	if loaded.BindingsPath != "" {
		cfg.BindingsPath = loaded.BindingsPath
	}
	if loaded.MaxPressedKeys > 0 {
		cfg.MaxPressedKeys = loaded.MaxPressedKeys
	}
	if loaded.LogLevel != "" {
		cfg.LogLevel = loaded.LogLevel
	}

	return cfg, nil
}

// Dir resolves the clefd config directory: $XDG_CONFIG_HOME/clefd when
// set, otherwise ~/.config/clefd.
func Dir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "clefd"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "clefd"), nil
}

// Level maps the configured log level onto slog. Unknown values fall
// back to Info rather than failing startup.
func (c Config) Level() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
