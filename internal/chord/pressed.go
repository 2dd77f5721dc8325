package chord

// DefaultMaxPressedKeys bounds the pressed-key set. Sixteen simultaneous
// keys is beyond what hands produce; hitting the bound in practice means
// release events are being lost upstream.
const DefaultMaxPressedKeys = 16

// PressedKeys is a bounded set of currently held keycodes.
//
// The set preserves insertion order, holds no duplicates, and never grows
// past its capacity. It is not safe for concurrent use; the engine owns
// one instance and mutates it from a single goroutine.
type PressedKeys struct {
	keys     []Keycode
	capacity int
}

// NewPressedKeys creates an empty set with the given capacity.
// A capacity of zero or less selects DefaultMaxPressedKeys.
func NewPressedKeys(capacity int) *PressedKeys {
	if capacity <= 0 {
		capacity = DefaultMaxPressedKeys
	}
	return &PressedKeys{
		keys:     make([]Keycode, 0, capacity),
		capacity: capacity,
	}
}

// Add records a key press.
//
// A press of an already-held key is a no-op and succeeds; repeated press
// events must not disturb the set. A new key only fits while the set is
// below capacity - otherwise the key is dropped and a *CapacityError is
// returned with the set unchanged.
func (p *PressedKeys) Add(code Keycode) error {
	for _, k := range p.keys {
		if k == code {
			return nil
		}
	}
	if len(p.keys) >= p.capacity {
		return &CapacityError{Key: code, Capacity: p.capacity}
	}
	p.keys = append(p.keys, code)
	return nil
}

// Remove records a key release, preserving the relative order of the
// remaining keys. Releasing a key that is not held is a no-op.
// Returns true if the key was present.
func (p *PressedKeys) Remove(code Keycode) bool {
	for i, k := range p.keys {
		if k == code {
			p.keys = append(p.keys[:i], p.keys[i+1:]...)
			return true
		}
	}
	return false
}

// Held reports whether a key is currently in the set.
func (p *PressedKeys) Held(code Keycode) bool {
	for _, k := range p.keys {
		if k == code {
			return true
		}
	}
	return false
}

// Snapshot returns a copy of the held keys in insertion order.
// The copy is safe to retain; later mutations do not affect it.
func (p *PressedKeys) Snapshot() []Keycode {
	out := make([]Keycode, len(p.keys))
	copy(out, p.keys)
	return out
}

// Len returns the number of held keys.
func (p *PressedKeys) Len() int {
	return len(p.keys)
}

// Capacity returns the configured maximum number of held keys.
func (p *PressedKeys) Capacity() int {
	return p.capacity
}
