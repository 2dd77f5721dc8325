package chord

// Keycode identifies a physical key. Codes use the XKB numbering scheme,
// which is offset by 8 from the raw evdev codes reported by the kernel.
// The offset is applied exactly once, at the device boundary, so that
// logged keycodes line up with what X11 tools such as xev report.
type Keycode uint32

// evdevOffset is the fixed distance between evdev and XKB keycodes.
const evdevOffset = 8

// FromEvdev converts a raw evdev key code to a Keycode.
func FromEvdev(code uint16) Keycode {
	return Keycode(code) + evdevOffset
}

// Evdev converts the Keycode back to its raw evdev code.
// Used when synthesizing input events, which speak evdev numbering.
func (k Keycode) Evdev() uint16 {
	return uint16(k - evdevOffset)
}
