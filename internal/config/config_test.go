package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, dir, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644)
	require.NoError(t, err)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, DefaultFIFOPath, cfg.FIFOPath)
	assert.Equal(t, filepath.Join(dir, BindingsFileName), cfg.BindingsPath)
	assert.Equal(t, 16, cfg.MaxPressedKeys)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadPartialConfigFillsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "fifo_path: /run/user/1000/clefd.fifo\n")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "/run/user/1000/clefd.fifo", cfg.FIFOPath)
	assert.Equal(t, filepath.Join(dir, BindingsFileName), cfg.BindingsPath)
	assert.Equal(t, 16, cfg.MaxPressedKeys)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFullConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, `
fifo_path: /tmp/other.fifo
bindings_path: /etc/clefd/clefrc
max_pressed_keys: 4
log_level: debug
`)

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/other.fifo", cfg.FIFOPath)
	assert.Equal(t, "/etc/clefd/clefrc", cfg.BindingsPath)
	assert.Equal(t, 4, cfg.MaxPressedKeys)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadMalformedConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "fifo_path: [unclosed\n")

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ConfigFileName)
}

func TestLoadIgnoresNonPositiveMaxPressedKeys(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "max_pressed_keys: 0\n")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.MaxPressedKeys)
}

func TestDirPrefersXDGConfigHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	dir, err := Dir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg", "clefd"), dir)
}

func TestDirFallsBackToHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir, err := Dir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "clefd"), dir)
}

func TestLevel(t *testing.T) {
	cases := []struct {
		name  string
		level string
		want  slog.Level
	}{
		{name: "debug", level: "debug", want: slog.LevelDebug},
		{name: "info", level: "info", want: slog.LevelInfo},
		{name: "warn", level: "warn", want: slog.LevelWarn},
		{name: "error", level: "error", want: slog.LevelError},
		{name: "empty falls back to info", level: "", want: slog.LevelInfo},
		{name: "unknown falls back to info", level: "verbose", want: slog.LevelInfo},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Config{LogLevel: tc.level}
			assert.Equal(t, tc.want, cfg.Level())
		})
	}
}
