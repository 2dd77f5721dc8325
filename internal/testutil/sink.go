// Package testutil provides deterministic test doubles shared across
// the clefd packages.
package testutil

import "sync"

// Recorder is a chord sink that captures every emitted line.
//
// It satisfies engine.Sink without importing the engine package, so any
// internal package can use it in tests.
//
// Thread-safety: all methods are safe for concurrent use via internal
// mutex, which lets tests read the transcript while an engine goroutine
// is still running.
type Recorder struct {
	mu    sync.Mutex
	lines []string
}

// Emit records one chord line. Never fails.
func (r *Recorder) Emit(line string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, line)
	return nil
}

// Lines returns a copy of everything emitted so far, in order.
func (r *Recorder) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.lines))
	copy(out, r.lines)
	return out
}

// Len returns the number of emitted lines.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.lines)
}

// Reset discards the recorded transcript.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = nil
}

// FailingSink is a chord sink whose Emit always returns Err.
// Used to exercise the transport-failure path: the engine must log the
// failure and keep processing.
type FailingSink struct {
	Err error

	mu       sync.Mutex
	attempts int
}

// Emit fails with the configured error and counts the attempt.
func (s *FailingSink) Emit(string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempts++
	return s.Err
}

// Attempts returns how many times Emit was called.
func (s *FailingSink) Attempts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attempts
}
