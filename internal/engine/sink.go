package engine

// Sink receives finished canonical chord strings, one per Emit call.
// The sink owns the framing (the FIFO appends a trailing newline).
//
// Emit errors are reported by the engine and never halt event
// processing; delivery is best-effort with no retry.
//
// Implemented by transport.FIFO, transport.Writer, and test recorders.
type Sink interface {
	Emit(line string) error
}
