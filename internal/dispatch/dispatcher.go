package dispatch

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
)

// Dispatcher reads chord lines from a stream and feeds them to a
// Runner.
type Dispatcher struct {
	runner *Runner
	logger *slog.Logger
}

// NewDispatcher builds a Dispatcher. A nil logger falls back to
// slog.Default().
func NewDispatcher(runner *Runner, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{runner: runner, logger: logger}
}

// Run dispatches one chord per line until the stream ends or ctx is
// cancelled. Closing the underlying reader is the usual way to stop a
// dispatcher blocked on a quiet FIFO; that close surfaces here as a
// clean return, not an error.
func (d *Dispatcher) Run(ctx context.Context, r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		d.logger.Debug("chord received", "chord", sc.Text())
		d.runner.Dispatch(sc.Text())
	}

	if err := sc.Err(); err != nil && !errors.Is(err, fs.ErrClosed) {
		return fmt.Errorf("read chord stream: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return nil
}
