package keysym

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nshan651/clefd/internal/chord"
)

func TestDefault_ReturnsSharedTable(t *testing.T) {
	tbl := Default()

	require.NotNil(t, tbl)
	assert.Same(t, tbl, Default())
}

func TestTable_Resolve(t *testing.T) {
	tests := []struct {
		name     string
		code     chord.Keycode
		wantName string
		wantMod  bool
	}{
		{name: "letter", code: 38, wantName: "a", wantMod: false},
		{name: "left control", code: 37, wantName: "Control_L", wantMod: true},
		{name: "left shift", code: 50, wantName: "Shift_L", wantMod: true},
		{name: "space", code: 65, wantName: "space", wantMod: false},
		{name: "return", code: 36, wantName: "Return", wantMod: false},
		{name: "function key", code: 71, wantName: "F5", wantMod: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, ok := Default().Resolve(tt.code)

			require.True(t, ok)
			assert.Equal(t, tt.wantName, info.Name)
			assert.Equal(t, tt.wantMod, info.Modifier)
		})
	}
}

func TestTable_Resolve_UnknownCode(t *testing.T) {
	info, ok := Default().Resolve(chord.FromEvdev(255))

	assert.False(t, ok)
	assert.Zero(t, info)
}

func TestTable_CodeForName(t *testing.T) {
	code, ok := Default().CodeForName("w")

	require.True(t, ok)
	assert.Equal(t, chord.FromEvdev(17), code)

	info, ok := Default().Resolve(code)
	require.True(t, ok)
	assert.Equal(t, "w", info.Name)
}

func TestTable_CodeForName_UnknownName(t *testing.T) {
	for _, name := range []string{"NoSymbol", "A", "hyper", ""} {
		_, ok := Default().CodeForName(name)
		assert.False(t, ok, "name %q should not resolve", name)
	}
}

func TestTable_ModifierKeysClassified(t *testing.T) {
	for _, name := range []string{"Shift_R", "Control_R", "Alt_R", "Super_L", "Caps_Lock", "Num_Lock", "Scroll_Lock"} {
		t.Run(name, func(t *testing.T) {
			code, ok := Default().CodeForName(name)
			require.True(t, ok)

			info, ok := Default().Resolve(code)
			require.True(t, ok)
			assert.True(t, info.Modifier)
		})
	}
}

func TestTable_NamesAreUnique(t *testing.T) {
	seen := make(map[string]struct{}, len(keysymNames))
	for _, name := range keysymNames {
		_, dup := seen[name]
		require.False(t, dup, "duplicate keysym name %q", name)
		seen[name] = struct{}{}
	}

	assert.Equal(t, len(keysymNames), Default().Len())
}
