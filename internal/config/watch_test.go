package config

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func startWatch(t *testing.T, path string, b *Bindings) (cancel func(), done <-chan error) {
	t.Helper()

	ctx, stop := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() {
		errc <- Watch(ctx, path, b, quietLogger())
	}()
	t.Cleanup(stop)
	return stop, errc
}

func TestWatchReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, BindingsFileName)
	require.NoError(t, os.WriteFile(path, []byte("Super_L + w : firefox\n"), 0o644))

	b := NewBindings()
	cancel, done := startWatch(t, path, b)

	// Give the watcher a moment to register before the write lands.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("Super_L + w : chromium\n"), 0o644))

	require.Eventually(t, func() bool {
		cmd, ok := b.Lookup("Super_L w")
		return ok && cmd == "chromium"
	}, 3*time.Second, 20*time.Millisecond)

	cancel()
	err := <-done
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWatchKeepsPreviousOnParseFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, BindingsFileName)
	require.NoError(t, os.WriteFile(path, []byte("Super_L + w : firefox\n"), 0o644))

	b := NewBindings()
	b.Replace(map[string]string{"Super_L w": "firefox"})
	_, _ = startWatch(t, path, b)

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("broken line without separator\n"), 0o644))
	time.Sleep(200 * time.Millisecond)

	cmd, ok := b.Lookup("Super_L w")
	require.True(t, ok)
	assert.Equal(t, "firefox", cmd)

	// A later valid write still goes through.
	require.NoError(t, os.WriteFile(path, []byte("Super_L + d : dmenu_run\n"), 0o644))
	require.Eventually(t, func() bool {
		_, ok := b.Lookup("Super_L d")
		return ok
	}, 3*time.Second, 20*time.Millisecond)
}

func TestWatchIgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, BindingsFileName)
	require.NoError(t, os.WriteFile(path, []byte("Super_L + w : firefox\n"), 0o644))

	b := NewBindings()
	_, _ = startWatch(t, path, b)

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("unrelated\n"), 0o644))
	time.Sleep(200 * time.Millisecond)

	assert.Equal(t, 0, b.Len())
}

func TestWatchStopsOnCancel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, BindingsFileName)
	require.NoError(t, os.WriteFile(path, []byte("Super_L + w : firefox\n"), 0o644))

	cancel, done := startWatch(t, path, NewBindings())
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}
