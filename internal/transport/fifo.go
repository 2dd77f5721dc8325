// Package transport delivers canonical chord lines to downstream consumers.
//
// The production sink is a named pipe (FIFO): the daemon creates it, blocks
// until a consumer opens the read side, and writes one chord per line. The
// blocking handshake on both sides is made cancellable so shutdown works
// while no peer is attached.
package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// FIFO is the named-pipe chord sink.
//
// The daemon owns the pipe's lifecycle: OpenFIFO creates it and Close
// unlinks it. Consumers connect with OpenReader and never remove the path.
type FIFO struct {
	path string
	f    *os.File
}

type openResult struct {
	f   *os.File
	err error
}

// OpenFIFO creates the pipe at path (mode 0666, existing pipes are reused)
// and opens it for writing.
//
// Opening a FIFO for writing blocks until a reader connects. The open runs
// in a goroutine so cancellation can unblock it: on ctx.Done the pending
// open is released by briefly attaching a reader, the pipe is unlinked, and
// ctx.Err() is returned.
func OpenFIFO(ctx context.Context, path string) (*FIFO, error) {
	if err := ensureFIFO(path); err != nil {
		return nil, err
	}

	res := make(chan openResult, 1)
	go func() {
		f, err := os.OpenFile(path, os.O_WRONLY, 0)
		res <- openResult{f: f, err: err}
	}()

	select {
	case r := <-res:
		if r.err != nil {
			return nil, fmt.Errorf("open fifo %s for writing: %w", path, r.err)
		}
		return &FIFO{path: path, f: r.f}, nil

	case <-ctx.Done():
		unblockOpen(path, os.O_RDONLY, res)
		os.Remove(path)
		return nil, ctx.Err()
	}
}

// Emit writes one chord line to the pipe, appending the newline framing.
// A consumer that went away surfaces as EPIPE here; the caller logs and
// keeps processing.
func (f *FIFO) Emit(line string) error {
	if _, err := fmt.Fprintf(f.f, "%s\n", line); err != nil {
		return fmt.Errorf("write chord to fifo: %w", err)
	}
	return nil
}

// Close closes the write end and removes the pipe from the filesystem.
func (f *FIFO) Close() error {
	cerr := f.f.Close()
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("unlink fifo %s: %w", f.path, err)
	}
	return cerr
}

// Path returns the pipe's filesystem path.
func (f *FIFO) Path() string {
	return f.path
}

// OpenReader connects to the pipe at path for consuming chord lines.
// Creates the pipe when it does not exist yet, so the consumer may start
// before the daemon.
//
// Opening a FIFO for reading blocks until a writer connects; cancellation
// unblocks it the same way as OpenFIFO. The returned reader delivers EOF
// once the daemon closes its end. Closing it does not unlink the pipe.
func OpenReader(ctx context.Context, path string) (io.ReadCloser, error) {
	if err := ensureFIFO(path); err != nil {
		return nil, err
	}

	res := make(chan openResult, 1)
	go func() {
		f, err := os.OpenFile(path, os.O_RDONLY, 0)
		res <- openResult{f: f, err: err}
	}()

	select {
	case r := <-res:
		if r.err != nil {
			return nil, fmt.Errorf("open fifo %s for reading: %w", path, r.err)
		}
		return r.f, nil

	case <-ctx.Done():
		unblockOpen(path, os.O_WRONLY, res)
		return nil, ctx.Err()
	}
}

// ensureFIFO creates the pipe if needed and verifies that whatever sits at
// path really is one.
func ensureFIFO(path string) error {
	if err := unix.Mkfifo(path, 0o666); err != nil && !errors.Is(err, unix.EEXIST) {
		return fmt.Errorf("mkfifo %s: %w", path, err)
	}

	fi, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if fi.Mode()&os.ModeNamedPipe == 0 {
		return fmt.Errorf("%s exists and is not a named pipe", path)
	}
	return nil
}

// unblockOpen releases a pending blocking open by attaching the opposite
// end of the pipe non-blocking, then collects and closes whatever the
// pending open produced.
//
// A pending read-open already counts as a reader (and vice versa), so the
// non-blocking peer open succeeds immediately and wakes it. The peer end is
// held open until the pending open's result arrives, which closes the race
// between waking the open and detaching again.
func unblockOpen(path string, flag int, res <-chan openResult) {
	peer, err := os.OpenFile(path, flag|unix.O_NONBLOCK, 0)
	if err != nil {
		// Could not attach (e.g. the pipe vanished); the pending open is
		// abandoned and cleaned up whenever it completes.
		go func() {
			if r := <-res; r.err == nil {
				r.f.Close()
			}
		}()
		return
	}

	if r := <-res; r.err == nil {
		r.f.Close()
	}
	peer.Close()
}
