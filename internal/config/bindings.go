package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"unicode"
)

// Bindings is a chord-to-command table safe for concurrent reads while
// a watcher swaps the contents underneath.
type Bindings struct {
	mu      sync.RWMutex
	byChord map[string]string
}

// NewBindings returns an empty table.
func NewBindings() *Bindings {
	return &Bindings{byChord: make(map[string]string)}
}

// Lookup returns the command bound to a chord string.
func (b *Bindings) Lookup(chord string) (string, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	cmd, ok := b.byChord[chord]
	return cmd, ok
}

// Replace swaps the whole table atomically.
func (b *Bindings) Replace(m map[string]string) {
	next := make(map[string]string, len(m))
	for k, v := range m {
		next[k] = v
	}
	b.mu.Lock()
	b.byChord = next
	b.mu.Unlock()
}

// Len reports the number of bound chords.
func (b *Bindings) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.byChord)
}

// Chords returns the bound chord strings in sorted order.
func (b *Bindings) Chords() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]string, 0, len(b.byChord))
	for k := range b.byChord {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// ParseBindings reads the clefrc line format:
//
//	<chord> : <command>
//
// Blank lines and lines starting with '#' are skipped. The chord part
// is stripped of whitespace and '+' separators become single spaces,
// so "Control_L+Shift_L + n" keys the same entry as the canonical
// chord "Control_L Shift_L n". Everything after the first colon is the
// command, trimmed. A later binding for the same chord wins.
func ParseBindings(r io.Reader) (map[string]string, error) {
	out := make(map[string]string)

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		raw := strings.TrimSpace(sc.Text())
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}

		key, cmd, found := strings.Cut(raw, ":")
		if !found {
			return nil, fmt.Errorf("line %d: missing ':' separator in %q", line, raw)
		}

		key = canonicalChord(key)
		cmd = strings.TrimSpace(cmd)
		if key == "" || cmd == "" {
			return nil, fmt.Errorf("line %d: incomplete binding %q", line, raw)
		}

		out[key] = cmd
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read bindings: %w", err)
	}

	return out, nil
}

// LoadBindings parses the clefrc file at path.
func LoadBindings(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := ParseBindings(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// canonicalChord normalizes the left-hand side of a binding into the
// space-joined form the engine emits. Whitespace is insignificant:
// "Super_L + w" and "Super_L+w" key the same entry.
func canonicalChord(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == '+':
			b.WriteByte(' ')
		case unicode.IsSpace(r):
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
