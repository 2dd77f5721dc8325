package config

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed defaults/clefd.yml defaults/clefrc
var defaultsFS embed.FS

// WriteDefaults creates the config directory and drops the default
// clefd.yml and clefrc into it. Files that already exist are left
// alone. It returns the names of the files it created.
func WriteDefaults(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create config dir: %w", err)
	}

	entries, err := defaultsFS.ReadDir("defaults")
	if err != nil {
		return nil, fmt.Errorf("read embedded defaults: %w", err)
	}

	var created []string
	for _, entry := range entries {
		dst := filepath.Join(dir, entry.Name())
		if _, err := os.Stat(dst); err == nil {
			continue
		} else if !errors.Is(err, fs.ErrNotExist) {
			return created, fmt.Errorf("stat %s: %w", dst, err)
		}

		data, err := defaultsFS.ReadFile(filepath.Join("defaults", entry.Name()))
		if err != nil {
			return created, fmt.Errorf("read embedded %s: %w", entry.Name(), err)
		}
		if err := os.WriteFile(dst, data, 0o644); err != nil {
			return created, fmt.Errorf("write %s: %w", dst, err)
		}
		created = append(created, entry.Name())
	}

	return created, nil
}
