package chord

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsModifierName_Modifiers(t *testing.T) {
	modifiers := []string{
		"Shift_L", "Shift_R",
		"Control_L", "Control_R",
		"Alt_L", "Alt_R",
		"Super_L", "Super_R",
		"Meta_L", "Meta_R",
		"Hyper_L", "Hyper_R",
		"Caps_Lock", "Num_Lock", "Scroll_Lock",
	}

	for _, name := range modifiers {
		t.Run(name, func(t *testing.T) {
			assert.True(t, IsModifierName(name))
		})
	}
}

func TestIsModifierName_NonModifiers(t *testing.T) {
	names := []string{"a", "w", "Return", "space", "F5", "NoSymbol", ""}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			assert.False(t, IsModifierName(name))
		})
	}
}

func TestIsModifierName_CaseSensitive(t *testing.T) {
	// Keysym names are exact; lowercase variants are ordinary keys.
	assert.False(t, IsModifierName("control_l"))
	assert.False(t, IsModifierName("SHIFT_L"))
}
