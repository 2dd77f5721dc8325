// Package engine implements the chord recognition loop.
//
// The engine is the heart of clefd - it consumes key state transitions
// from the device source, tracks which keys are held, and emits a
// canonical chord line whenever a non-modifier press completes a valid
// chord.
//
// ARCHITECTURE:
//
// Single-Consumer Event Loop:
// One engine instance processes one stream of events in a single
// goroutine. This ensures:
//   - No concurrent mutation of the pressed-key set
//   - Deterministic emission order for a given event sequence
//   - Simple reasoning about what was held when a chord fired
//
// Event Processing Flow:
//  1. Device readers funnel key transitions into a channel
//  2. Engine.Run() consumes them one at a time
//  3. A press adds the key; a release removes it
//  4. When the pressed key resolves to a non-modifier, the held set is
//     rendered and any valid chord goes to the sink
//
// The engine never blocks inside a transition: rendering and
// classification are in-memory, and the only suspension point is the
// wait for the next event. Per-event failures (capacity, unresolvable
// keycodes, sink write errors) are logged and processing continues;
// only upstream source termination ends the loop.
package engine
