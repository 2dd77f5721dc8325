package chord

import (
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Chord is the derived value rendered from a snapshot of held keys:
// zero or more modifier names plus exactly one non-modifier key name.
// Chords are built by Render and are never stored between events.
type Chord struct {
	Modifiers []string
	Key       string
}

// String returns the canonical chord text.
//
// Canonical form rules:
//  1. Modifier names sorted lexicographically by byte value
//  2. The single non-modifier name last
//  3. Parts joined by a single space, no framing
//
// Example: "Control_L Shift_L a".
func (c Chord) String() string {
	if len(c.Modifiers) == 0 {
		return c.Key
	}
	return strings.Join(c.Modifiers, " ") + " " + c.Key
}

// Render resolves a snapshot of held keys into a Chord.
//
// Every keycode is resolved to a name (unresolvable codes become
// UnknownKeyName) and partitioned by classification. The snapshot forms
// a valid chord only when exactly one non-modifier is held; any other
// shape - bare modifiers, multiple non-modifiers, an empty snapshot -
// returns ok=false and no output is produced.
//
// Names are NFC-normalized at this boundary so that chord identity is
// stable regardless of how a resolver spells its names. The result is
// invariant under permutation of held: modifiers are sorted by byte
// value, which for the ASCII keysym names is plain alphabetical order.
func Render(held []Keycode, r Resolver) (Chord, bool) {
	var modifiers []string
	var keys []string

	for _, code := range held {
		info := resolve(r, code)
		name := norm.NFC.String(info.Name)
		if info.Modifier {
			modifiers = append(modifiers, name)
		} else {
			keys = append(keys, name)
		}
	}

	// A valid chord always has exactly one non-modifier key.
	if len(keys) != 1 {
		return Chord{}, false
	}

	sort.Strings(modifiers)

	return Chord{Modifiers: modifiers, Key: keys[0]}, true
}
