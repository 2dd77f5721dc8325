package transport

import (
	"fmt"
	"io"
)

// Writer is a chord sink over an arbitrary io.Writer.
// Used for print mode and tests; there is no connection handshake.
type Writer struct {
	w io.Writer
}

// NewWriter wraps w as a line-per-chord sink.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Emit writes one chord line, appending the newline framing.
func (w *Writer) Emit(line string) error {
	if _, err := fmt.Fprintf(w.w, "%s\n", line); err != nil {
		return fmt.Errorf("write chord: %w", err)
	}
	return nil
}
