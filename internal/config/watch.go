package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const (
	// reloadDebounce ignores events landing within this window of the
	// previous reload. Editors fire several writes per save.
	reloadDebounce = 50 * time.Millisecond

	// reloadSettle waits out the tail of a save before reading, so a
	// half-written file is not parsed.
	reloadSettle = 20 * time.Millisecond
)

// Watch reloads the bindings table whenever the clefrc file at path
// changes, until ctx is cancelled. It watches the parent directory
// rather than the file itself so editors that save via rename-and-swap
// still trigger a reload.
//
// A reload that fails to parse keeps the previous table and logs the
// error.
func Watch(ctx context.Context, path string, bindings *Bindings, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	logger.Debug("watching bindings", "path", path)

	var lastReload time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != filepath.Clean(path) {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if time.Since(lastReload) < reloadDebounce {
				continue
			}
			time.Sleep(reloadSettle)
			lastReload = time.Now()

			m, err := LoadBindings(path)
			if err != nil {
				logger.Error("bindings reload failed, keeping previous", "error", err)
				continue
			}
			bindings.Replace(m)
			logger.Info("bindings reloaded", "path", path, "count", bindings.Len())

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("bindings watcher error", "error", err)
		}
	}
}
