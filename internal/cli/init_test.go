package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runInitCommand(t *testing.T, args ...string) (*bytes.Buffer, error) {
	t.Helper()
	cmd := NewRootCommand()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"init"}, args...))
	return buf, cmd.Execute()
}

func TestInitCommandCreatesConfigFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "clefd")

	out, err := runInitCommand(t, "--config-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "created")

	_, err = os.Stat(filepath.Join(dir, "clefd.yml"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "clefrc"))
	require.NoError(t, err)
}

func TestInitCommandSecondRunKeepsFiles(t *testing.T) {
	dir := t.TempDir()

	_, err := runInitCommand(t, "--config-dir", dir)
	require.NoError(t, err)

	out, err := runInitCommand(t, "--config-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "already present")
}

func TestInitCommandJSON(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "clefd")

	out, err := runInitCommand(t, "--config-dir", dir, "--format", "json")
	require.NoError(t, err)

	var resp struct {
		Status string     `json:"status"`
		Data   initResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, dir, resp.Data.Dir)
	assert.Equal(t, []string{"clefd.yml", "clefrc"}, resp.Data.Created)
}
