package engine

import "github.com/nshan651/clefd/internal/chord"

// KeyEvent is a single key state transition from the device source.
//
// Pressed covers both the initial press and hardware autorepeat; the
// engine does not distinguish them, so a repeat of a held non-modifier
// re-renders the chord. Release events only ever remove state.
type KeyEvent struct {
	Code    chord.Keycode
	Pressed bool
}
