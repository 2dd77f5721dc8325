package simulate

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nshan651/clefd/internal/keysym"
)

// evdev keycodes for the keys the tests press.
const (
	evControlL = 29
	evShiftL   = 42
	evA        = 30
)

func TestPlanSingleKey(t *testing.T) {
	plan, err := Plan("a", keysym.Default())
	require.NoError(t, err)

	assert.Equal(t, []Step{
		{Name: "a", Key: evA, Op: OpTap},
	}, plan)
}

func TestPlanModifiersWrapTrigger(t *testing.T) {
	plan, err := Plan("Control_L Shift_L a", keysym.Default())
	require.NoError(t, err)

	assert.Equal(t, []Step{
		{Name: "Control_L", Key: evControlL, Op: OpDown},
		{Name: "Shift_L", Key: evShiftL, Op: OpDown},
		{Name: "a", Key: evA, Op: OpTap},
		{Name: "Shift_L", Key: evShiftL, Op: OpUp},
		{Name: "Control_L", Key: evControlL, Op: OpUp},
	}, plan)
}

func TestPlanTriggerPositionDoesNotMatter(t *testing.T) {
	plan, err := Plan("a Control_L", keysym.Default())
	require.NoError(t, err)

	assert.Equal(t, []Step{
		{Name: "Control_L", Key: evControlL, Op: OpDown},
		{Name: "a", Key: evA, Op: OpTap},
		{Name: "Control_L", Key: evControlL, Op: OpUp},
	}, plan)
}

func TestPlanErrors(t *testing.T) {
	cases := []struct {
		name    string
		chord   string
		wantErr string
	}{
		{name: "empty", chord: "", wantErr: "empty chord"},
		{name: "whitespace only", chord: "   ", wantErr: "empty chord"},
		{name: "unknown name", chord: "Control_L missingkey", wantErr: "missingkey"},
		{name: "modifiers only", chord: "Control_L Shift_L", wantErr: "no non-modifier"},
		{name: "two triggers", chord: "a b", wantErr: "more than one"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Plan(tc.chord, keysym.Default())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

// recordingKeyboard captures the injected sequence.
type recordingKeyboard struct {
	ops     []string
	failOn  string
	failErr error
}

func (k *recordingKeyboard) record(op string, key int) error {
	entry := fmt.Sprintf("%s:%d", op, key)
	if k.failOn == entry {
		return k.failErr
	}
	k.ops = append(k.ops, entry)
	return nil
}

func (k *recordingKeyboard) KeyDown(key int) error  { return k.record("down", key) }
func (k *recordingKeyboard) KeyPress(key int) error { return k.record("press", key) }
func (k *recordingKeyboard) KeyUp(key int) error    { return k.record("up", key) }

func TestInjectDrivesKeyboardInOrder(t *testing.T) {
	plan, err := Plan("Control_L a", keysym.Default())
	require.NoError(t, err)

	kbd := &recordingKeyboard{}
	require.NoError(t, Inject(kbd, plan))

	assert.Equal(t, []string{
		fmt.Sprintf("down:%d", evControlL),
		fmt.Sprintf("press:%d", evA),
		fmt.Sprintf("up:%d", evControlL),
	}, kbd.ops)
}

func TestInjectPropagatesKeyboardError(t *testing.T) {
	plan, err := Plan("Control_L a", keysym.Default())
	require.NoError(t, err)

	boom := errors.New("device gone")
	kbd := &recordingKeyboard{
		failOn:  fmt.Sprintf("press:%d", evA),
		failErr: boom,
	}

	err = Inject(kbd, plan)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "tap a")
}
