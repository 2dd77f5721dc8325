// Package keysym maps keycodes to X11 keysym names for the standard US
// layout. It is the production implementation of chord.Resolver.
//
// The original daemon delegated this to xkbcommon, which compiles the
// system keymap at startup. A compiled keymap buys layout awareness at
// the cost of a C dependency; a chord daemon only needs stable,
// human-readable names, so a fixed table keyed by evdev code serves.
// Names follow the xkbcommon spelling exactly ("Control_L", "period",
// "Prior", "XF86AudioMute") so chords stay portable between the two
// resolvers. Keypad keys use their NumLock-off level, matching what a
// freshly compiled keymap reports.
package keysym

import (
	evdev "github.com/holoplot/go-evdev"

	"github.com/nshan651/clefd/internal/chord"
)

// Table resolves keycodes against the built-in US layout.
//
// Table is immutable after construction and safe for concurrent use.
type Table struct {
	names map[evdev.EvCode]string
	codes map[string]chord.Keycode
}

var defaultTable = newTable()

// Default returns the shared US-layout table.
func Default() *Table {
	return defaultTable
}

func newTable() *Table {
	t := &Table{
		names: keysymNames,
		codes: make(map[string]chord.Keycode, len(keysymNames)),
	}
	// keysymNames holds no duplicate names, so the reverse mapping is
	// well-defined regardless of map iteration order.
	for code, name := range keysymNames {
		t.codes[name] = chord.FromEvdev(uint16(code))
	}
	return t
}

// Resolve implements chord.Resolver. Unknown keycodes report ok=false.
func (t *Table) Resolve(code chord.Keycode) (chord.Info, bool) {
	name, ok := t.names[evdev.EvCode(code.Evdev())]
	if !ok {
		return chord.Info{}, false
	}
	return chord.Info{Name: name, Modifier: chord.IsModifierName(name)}, true
}

// CodeForName returns the keycode that resolves to the given keysym name.
// Used to drive the engine by name in scenarios and to plan synthetic
// input for the simulator.
func (t *Table) CodeForName(name string) (chord.Keycode, bool) {
	code, ok := t.codes[name]
	return code, ok
}

// Len returns the number of mapped keys.
func (t *Table) Len() int {
	return len(t.names)
}
