package chord

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPressedKeys_StartsEmpty(t *testing.T) {
	p := NewPressedKeys(0)

	assert.Equal(t, 0, p.Len())
	assert.Empty(t, p.Snapshot())
	assert.Equal(t, DefaultMaxPressedKeys, p.Capacity())
}

func TestPressedKeys_Add(t *testing.T) {
	p := NewPressedKeys(0)

	require.NoError(t, p.Add(38))

	assert.True(t, p.Held(38))
	assert.Equal(t, 1, p.Len())
}

func TestPressedKeys_AddIgnoresDuplicates(t *testing.T) {
	p := NewPressedKeys(0)

	require.NoError(t, p.Add(38))
	require.NoError(t, p.Add(38))

	assert.Equal(t, 1, p.Len())
}

func TestPressedKeys_AddAtCapacity(t *testing.T) {
	p := NewPressedKeys(0)

	for i := 0; i < DefaultMaxPressedKeys; i++ {
		require.NoError(t, p.Add(Keycode(10+i)))
	}
	require.Equal(t, DefaultMaxPressedKeys, p.Len())

	extra := Keycode(10 + DefaultMaxPressedKeys)
	err := p.Add(extra)

	var capErr *CapacityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, extra, capErr.Key)
	assert.Equal(t, DefaultMaxPressedKeys, capErr.Capacity)

	// The extra key was dropped; the set is unchanged.
	assert.Equal(t, DefaultMaxPressedKeys, p.Len())
	assert.False(t, p.Held(extra))
}

func TestPressedKeys_DuplicateAtCapacityIsNoOp(t *testing.T) {
	p := NewPressedKeys(2)

	require.NoError(t, p.Add(10))
	require.NoError(t, p.Add(11))

	// Repeat press of a held key succeeds even with the set full.
	assert.NoError(t, p.Add(10))
	assert.Equal(t, 2, p.Len())
}

func TestPressedKeys_Remove(t *testing.T) {
	p := NewPressedKeys(0)

	require.NoError(t, p.Add(38))
	removed := p.Remove(38)

	assert.True(t, removed)
	assert.False(t, p.Held(38))
	assert.Equal(t, 0, p.Len())
}

func TestPressedKeys_RemoveAbsentIsNoOp(t *testing.T) {
	p := NewPressedKeys(0)

	require.NoError(t, p.Add(38))
	removed := p.Remove(99)

	assert.False(t, removed)
	assert.Equal(t, 1, p.Len())
}

func TestPressedKeys_RemovePreservesOrder(t *testing.T) {
	p := NewPressedKeys(0)

	require.NoError(t, p.Add(10))
	require.NoError(t, p.Add(11))
	require.NoError(t, p.Add(12))

	p.Remove(11)

	assert.Equal(t, []Keycode{10, 12}, p.Snapshot())
}

func TestPressedKeys_SnapshotIsInsertionOrdered(t *testing.T) {
	p := NewPressedKeys(0)

	codes := []Keycode{50, 37, 38}
	for _, c := range codes {
		require.NoError(t, p.Add(c))
	}

	assert.Equal(t, codes, p.Snapshot())
}

func TestPressedKeys_SnapshotIsACopy(t *testing.T) {
	p := NewPressedKeys(0)
	require.NoError(t, p.Add(10))

	snap := p.Snapshot()
	p.Remove(10)

	assert.Equal(t, []Keycode{10}, snap)
}

func TestPressedKeys_CustomCapacity(t *testing.T) {
	p := NewPressedKeys(4)

	for i := 0; i < 4; i++ {
		require.NoError(t, p.Add(Keycode(10+i)))
	}

	err := p.Add(99)
	assert.True(t, IsCapacityError(err))
	assert.Equal(t, 4, p.Len())
}

func TestIsCapacityError(t *testing.T) {
	err := &CapacityError{Key: 99, Capacity: 16}

	assert.True(t, IsCapacityError(err))
	assert.True(t, IsCapacityError(fmt.Errorf("press dropped: %w", err)))
	assert.False(t, IsCapacityError(fmt.Errorf("unrelated")))
	assert.False(t, IsCapacityError(nil))
}
