package engine

import (
	"context"
	"errors"
	"log/slog"

	"github.com/nshan651/clefd/internal/chord"
)

// Engine is the single-consumer chord recognition loop.
//
// The engine owns its pressed-key set exclusively; all mutation happens
// inside HandleEvent, which Run calls from one goroutine. There is no
// ambient global state, so independent engines can run side by side in
// one process (the tests do exactly that).
//
// INVARIANTS:
//   - The pressed-key set never exceeds its capacity or holds duplicates
//   - Only a non-modifier press event triggers rendering
//   - Releases and bare modifier presses never emit
type Engine struct {
	pressed  *chord.PressedKeys
	resolver chord.Resolver
	sink     Sink
	logger   *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithCapacity overrides the pressed-key capacity.
//
// Default: chord.DefaultMaxPressedKeys (16).
// Use small values to exercise the capacity-exceeded path in tests.
func WithCapacity(n int) Option {
	return func(e *Engine) {
		e.pressed = chord.NewPressedKeys(n)
	}
}

// WithLogger sets the engine's logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// New creates an Engine that resolves keys through r and delivers
// canonical chord lines to sink.
func New(r chord.Resolver, sink Sink, opts ...Option) *Engine {
	e := &Engine{
		pressed:  chord.NewPressedKeys(chord.DefaultMaxPressedKeys),
		resolver: r,
		sink:     sink,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Run consumes events until the context is cancelled or the event
// channel closes.
//
// Must be called from exactly one goroutine; the only suspension point
// is the wait for the next event, so cancellation always lands between
// transitions, never mid-transition. Returns ctx.Err() on cancellation
// and nil when the source closes the channel (upstream shutdown).
func (e *Engine) Run(ctx context.Context, events <-chan KeyEvent) error {
	e.logger.Info("engine started", "capacity", e.pressed.Capacity())

	for {
		select {
		case <-ctx.Done():
			e.logger.Info("engine stopping: context cancelled")
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				e.logger.Info("engine stopping: event source closed")
				return nil
			}
			e.HandleEvent(ev)
		}
	}
}

// HandleEvent applies a single key transition.
//
// Press: the key joins the held set (idempotently; a full set drops the
// key with a warning) and, when the pressed key itself resolves to a
// non-modifier, the held set is rendered and any valid chord is emitted.
// The render gate is the triggering key's classification, not whether
// Add changed anything - a repeat press of a held non-modifier renders
// again, and a press dropped for capacity still triggers rendering of
// the keys that are tracked.
//
// Release: the key leaves the held set. Releases never render, and
// releasing an untracked key is a no-op so that a press lost before
// startup cannot wedge the state.
func (e *Engine) HandleEvent(ev KeyEvent) {
	if !ev.Pressed {
		e.handleRelease(ev.Code)
		return
	}
	e.handlePress(ev.Code)
}

// HeldCount returns the number of currently tracked keys.
// Useful for diagnostics and testing.
func (e *Engine) HeldCount() int {
	return e.pressed.Len()
}

func (e *Engine) handlePress(code chord.Keycode) {
	if err := e.pressed.Add(code); err != nil {
		var capErr *chord.CapacityError
		if errors.As(err, &capErr) {
			e.logger.Warn("pressed-key capacity exceeded, key dropped",
				"keycode", code,
				"capacity", capErr.Capacity,
			)
		}
		// Non-fatal: the snapshot simply lacks this key.
	}

	info, ok := e.resolver.Resolve(code)
	if !ok {
		// Unresolvable keys act as non-modifiers with a placeholder
		// name rather than aborting the stream.
		e.logger.Warn("unresolvable keycode", "keycode", code)
		info = chord.Info{Name: chord.UnknownKeyName}
	}

	e.logger.Debug("key pressed",
		"keycode", code,
		"name", info.Name,
		"modifier", info.Modifier,
		"held", e.pressed.Len(),
	)

	// A modifier press never completes a chord by itself.
	if info.Modifier {
		return
	}

	c, ok := chord.Render(e.pressed.Snapshot(), e.resolver)
	if !ok {
		// Zero or multiple non-modifiers held: the defined no-emission
		// outcome, not an error.
		return
	}

	line := c.String()
	if err := e.sink.Emit(line); err != nil {
		e.logger.Error("chord delivery failed", "chord", line, "error", err)
		return
	}

	e.logger.Info("chord dispatched", "chord", line)
}

func (e *Engine) handleRelease(code chord.Keycode) {
	removed := e.pressed.Remove(code)

	e.logger.Debug("key released",
		"keycode", code,
		"tracked", removed,
		"held", e.pressed.Len(),
	)
}
