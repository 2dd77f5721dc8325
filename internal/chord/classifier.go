package chord

// modifierNames is the fixed set of keysym names treated as modifiers.
// Left/right variants are distinct on purpose: "Control_L x" and
// "Control_R x" are different chords.
var modifierNames = map[string]struct{}{
	"Shift_L":     {},
	"Shift_R":     {},
	"Control_L":   {},
	"Control_R":   {},
	"Alt_L":       {},
	"Alt_R":       {},
	"Super_L":     {},
	"Super_R":     {},
	"Meta_L":      {},
	"Meta_R":      {},
	"Hyper_L":     {},
	"Hyper_R":     {},
	"Caps_Lock":   {},
	"Num_Lock":    {},
	"Scroll_Lock": {},
}

// IsModifierName reports whether a keysym name is a modifier.
//
// The test is total: any name outside the fixed set, including unknown
// or placeholder names, classifies as a non-modifier. Lock keys
// (Caps_Lock, Num_Lock, Scroll_Lock) count as modifiers so that a held
// lock key never becomes the trigger of a chord.
func IsModifierName(name string) bool {
	_, ok := modifierNames[name]
	return ok
}
