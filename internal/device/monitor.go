package device

import (
	"context"
	"log/slog"
	"sync"

	evdev "github.com/holoplot/go-evdev"

	"github.com/nshan651/clefd/internal/chord"
	"github.com/nshan651/clefd/internal/engine"
)

// eventBuffer absorbs bursts from fast typists and key rollover without
// stalling the device readers.
const eventBuffer = 64

// Monitor funnels key transitions from one or more keyboards into a
// single event channel for the engine.
//
// Each device gets its own reader goroutine. The evdev value encodes
// the transition: 0 is a release, 1 a press, 2 hardware autorepeat -
// repeats are forwarded as presses, which is what makes a held
// non-modifier re-render its chord.
//
// Lifecycle: Start spawns the readers and takes ownership of the
// devices. Cancelling the context closes them, which unblocks any
// pending reads; the event channel closes once every reader has
// exited. A device that errors mid-stream (e.g. unplugged) only ends
// its own reader; losing the last one closes the channel and thereby
// ends the engine's run loop.
type Monitor struct {
	devices []*evdev.InputDevice
	events  chan engine.KeyEvent
	logger  *slog.Logger
	wg      sync.WaitGroup
}

// NewMonitor creates a monitor over the given keyboards.
// A nil logger selects slog.Default().
func NewMonitor(devices []*evdev.InputDevice, logger *slog.Logger) *Monitor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Monitor{
		devices: devices,
		events:  make(chan engine.KeyEvent, eventBuffer),
		logger:  logger,
	}
}

// Events returns the channel the readers feed. It closes when all
// readers have exited, signalling upstream shutdown to the engine.
func (m *Monitor) Events() <-chan engine.KeyEvent {
	return m.events
}

// Start spawns one reader goroutine per device plus a supervisor that
// closes the devices on cancellation and the event channel once the
// readers are done. Safe to call once.
func (m *Monitor) Start(ctx context.Context) {
	for _, dev := range m.devices {
		m.wg.Add(1)
		go m.readDevice(ctx, dev)
	}

	go func() {
		done := make(chan struct{})
		go func() {
			m.wg.Wait()
			close(done)
		}()

		select {
		case <-ctx.Done():
			// Closing a device fails its pending ReadOne, which is how
			// a blocked reader learns about shutdown.
			m.closeDevices()
			<-done
		case <-done:
			m.closeDevices()
		}

		close(m.events)
	}()
}

func (m *Monitor) readDevice(ctx context.Context, dev *evdev.InputDevice) {
	defer m.wg.Done()

	name := DeviceName(dev)
	m.logger.Debug("monitoring keyboard", "device", name)

	for {
		ev, err := dev.ReadOne()
		if err != nil {
			// Expected on shutdown (device closed) and on unplug.
			m.logger.Info("keyboard reader stopped", "device", name, "error", err)
			return
		}

		kev, ok := toKeyEvent(ev)
		if !ok {
			continue
		}

		select {
		case m.events <- kev:
		case <-ctx.Done():
			return
		}
	}
}

// toKeyEvent converts a raw evdev event into an engine key event.
// Non-key events (EV_SYN frames, EV_MSC scancodes, LEDs) report ok=false.
func toKeyEvent(ev *evdev.InputEvent) (engine.KeyEvent, bool) {
	if ev.Type != evdev.EV_KEY {
		return engine.KeyEvent{}, false
	}
	return engine.KeyEvent{
		Code:    chord.FromEvdev(uint16(ev.Code)),
		Pressed: ev.Value != 0,
	}, true
}

func (m *Monitor) closeDevices() {
	for _, dev := range m.devices {
		dev.Close()
	}
}
