package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDefaultsCreatesFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "clefd")

	created, err := WriteDefaults(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{ConfigFileName, BindingsFileName}, created)

	cfg, err := os.ReadFile(filepath.Join(dir, ConfigFileName))
	require.NoError(t, err)
	assert.Contains(t, string(cfg), "fifo_path")

	rc, err := os.ReadFile(filepath.Join(dir, BindingsFileName))
	require.NoError(t, err)
	assert.Contains(t, string(rc), "clefd keybindings")
}

func TestWriteDefaultsSkipsExisting(t *testing.T) {
	dir := t.TempDir()
	custom := "Super_L + w : firefox\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, BindingsFileName), []byte(custom), 0o644))

	created, err := WriteDefaults(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{ConfigFileName}, created)

	rc, err := os.ReadFile(filepath.Join(dir, BindingsFileName))
	require.NoError(t, err)
	assert.Equal(t, custom, string(rc))
}

func TestWriteDefaultsIdempotent(t *testing.T) {
	dir := t.TempDir()

	_, err := WriteDefaults(dir)
	require.NoError(t, err)

	created, err := WriteDefaults(dir)
	require.NoError(t, err)
	assert.Empty(t, created)
}
