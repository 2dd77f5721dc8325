// Package simulate turns a chord string back into the key sequence
// that would produce it, for injection through a virtual keyboard.
package simulate

import (
	"fmt"
	"strings"

	"github.com/nshan651/clefd/internal/chord"
	"github.com/nshan651/clefd/internal/keysym"
)

// Op is a single virtual-keyboard action.
type Op uint8

const (
	// OpDown holds a key.
	OpDown Op = iota
	// OpTap presses and immediately releases a key.
	OpTap
	// OpUp releases a held key.
	OpUp
)

// String returns the op name used in logs and errors.
func (o Op) String() string {
	switch o {
	case OpDown:
		return "down"
	case OpTap:
		return "tap"
	case OpUp:
		return "up"
	default:
		return fmt.Sprintf("op(%d)", uint8(o))
	}
}

// Step is one keyboard action of a simulation plan. Key carries the
// evdev keycode the virtual keyboard expects.
type Step struct {
	Name string
	Key  int
	Op   Op
}

// Plan resolves a space-separated chord into the sequence that types
// it: modifiers held in the order given, the trigger key tapped, then
// the modifiers released in reverse. The chord must contain exactly
// one non-modifier key, though it may appear anywhere in the string.
func Plan(chordLine string, table *keysym.Table) ([]Step, error) {
	names := strings.Fields(chordLine)
	if len(names) == 0 {
		return nil, fmt.Errorf("empty chord")
	}

	var (
		modifiers []Step
		triggers  []Step
	)
	for _, name := range names {
		code, ok := table.CodeForName(name)
		if !ok {
			return nil, fmt.Errorf("unknown key name %q", name)
		}
		step := Step{Name: name, Key: int(code.Evdev())}
		if chord.IsModifierName(name) {
			step.Op = OpDown
			modifiers = append(modifiers, step)
		} else {
			step.Op = OpTap
			triggers = append(triggers, step)
		}
	}

	if len(triggers) == 0 {
		return nil, fmt.Errorf("chord %q has no non-modifier key", chordLine)
	}
	if len(triggers) > 1 {
		return nil, fmt.Errorf("chord %q has more than one non-modifier key", chordLine)
	}

	plan := make([]Step, 0, 2*len(modifiers)+1)
	plan = append(plan, modifiers...)
	plan = append(plan, triggers[0])
	for i := len(modifiers) - 1; i >= 0; i-- {
		up := modifiers[i]
		up.Op = OpUp
		plan = append(plan, up)
	}

	return plan, nil
}
