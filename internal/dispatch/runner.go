// Package dispatch consumes chord lines and launches the commands
// bound to them.
package dispatch

import (
	"log/slog"
	"os/exec"
	"strings"
	"sync"

	"github.com/nshan651/clefd/internal/config"
)

// Runner executes the command bound to a chord. Commands are split on
// whitespace, started with stdin, stdout and stderr discarded, and
// handed to a reaper goroutine so every exit is waited on. A started
// command is not tied to the runner's lifetime: clefd launches
// applications, it does not supervise them.
type Runner struct {
	bindings *config.Bindings
	ids      IDGenerator
	logger   *slog.Logger
	wg       sync.WaitGroup
}

// Option configures a Runner.
type Option func(*Runner)

// WithIDGenerator overrides the execution ID source.
func WithIDGenerator(g IDGenerator) Option {
	return func(r *Runner) {
		r.ids = g
	}
}

// WithLogger sets the runner's logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = l
	}
}

// NewRunner builds a Runner over a bindings table.
func NewRunner(bindings *config.Bindings, opts ...Option) *Runner {
	r := &Runner{
		bindings: bindings,
		ids:      UUIDv7Generator{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Dispatch looks up the chord and launches its command. An unbound
// chord is a no-op; most chords a user types have no binding.
func (r *Runner) Dispatch(chordLine string) {
	chordLine = strings.TrimSpace(chordLine)
	if chordLine == "" {
		return
	}

	command, ok := r.bindings.Lookup(chordLine)
	if !ok {
		r.logger.Debug("no binding for chord", "chord", chordLine)
		return
	}

	argv := strings.Fields(command)
	if len(argv) == 0 {
		r.logger.Debug("empty command for chord", "chord", chordLine)
		return
	}

	id := r.ids.Generate()
	cmd := exec.Command(argv[0], argv[1:]...)

	if err := cmd.Start(); err != nil {
		r.logger.Error("command failed to start",
			"exec_id", id,
			"chord", chordLine,
			"command", command,
			"error", err)
		return
	}

	r.logger.Info("command started",
		"exec_id", id,
		"chord", chordLine,
		"command", command,
		"pid", cmd.Process.Pid)

	r.wg.Add(1)
	go r.reap(id, cmd)
}

// reap waits on a launched command so it never lingers as a zombie.
func (r *Runner) reap(id string, cmd *exec.Cmd) {
	defer r.wg.Done()

	if err := cmd.Wait(); err != nil {
		r.logger.Warn("command exited with error", "exec_id", id, "error", err)
		return
	}
	r.logger.Debug("command exited", "exec_id", id)
}

// Wait blocks until every launched command has been reaped.
func (r *Runner) Wait() {
	r.wg.Wait()
}
