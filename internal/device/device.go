// Package device discovers keyboards under /dev/input and converts
// their raw evdev events into engine key events.
//
// Access to /dev/input/event* requires membership in the input group
// (or root); discovery failures at startup are fatal to the daemon,
// while a device that errors mid-stream only ends its own reader.
package device

import (
	"fmt"

	evdev "github.com/holoplot/go-evdev"
)

// FindKeyboards enumerates /dev/input and returns the devices that
// look like physical keyboards: anything with both KEY_A and KEY_ENTER
// capabilities. Devices that cannot be opened are skipped silently
// (power buttons, lid switches and the like often deny access).
//
// The caller owns the returned devices and must Close them; Monitor
// takes over that responsibility when used.
func FindKeyboards() ([]*evdev.InputDevice, error) {
	paths, err := evdev.ListDevicePaths()
	if err != nil {
		return nil, fmt.Errorf("list input devices: %w", err)
	}

	var kbds []*evdev.InputDevice
	for _, p := range paths {
		dev, err := evdev.Open(p.Path)
		if err != nil {
			continue
		}

		if isKeyboard(dev) {
			kbds = append(kbds, dev)
		} else {
			dev.Close()
		}
	}

	return kbds, nil
}

func isKeyboard(dev *evdev.InputDevice) bool {
	hasA := false
	hasEnter := false
	for _, c := range dev.CapableEvents(evdev.EV_KEY) {
		if c == evdev.KEY_A {
			hasA = true
		}
		if c == evdev.KEY_ENTER {
			hasEnter = true
		}
	}
	return hasA && hasEnter
}

// DeviceName returns the human-readable name of a device, or a
// placeholder when the name ioctl fails.
func DeviceName(dev *evdev.InputDevice) string {
	name, err := dev.Name()
	if err != nil || name == "" {
		return "unknown device"
	}
	return name
}
