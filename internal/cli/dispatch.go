package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nshan651/clefd/internal/config"
	"github.com/nshan651/clefd/internal/dispatch"
	"github.com/nshan651/clefd/internal/transport"
)

// DispatchOptions holds flags for the dispatch command.
type DispatchOptions struct {
	*RootOptions
	ConfigDir string
	Bindings  string
	FIFOPath  string
}

// NewDispatchCommand creates the dispatch command.
func NewDispatchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DispatchOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "dispatch",
		Short: "Launch commands bound to chords",
		Long: `Consume chord lines from the daemon's pipe and launch the commands
bound to them in the clefrc file.

The bindings file is reloaded automatically whenever it changes. The
dispatcher blocks until "clefd run" opens the write side of the pipe.

Example:
  clefd dispatch
  clefd dispatch --bindings ./clefrc --verbose`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDispatch(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigDir, "config-dir", "", "config directory (default $XDG_CONFIG_HOME/clefd)")
	cmd.Flags().StringVar(&opts.Bindings, "bindings", "", "bindings file (overrides config)")
	cmd.Flags().StringVar(&opts.FIFOPath, "fifo", "", "chord input pipe (overrides config)")

	return cmd
}

func runDispatch(opts *DispatchOptions, cmd *cobra.Command) error {
	dir, err := resolveConfigDir(opts.ConfigDir)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to resolve config directory", err)
	}
	cfg, err := config.Load(dir)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load config", err)
	}
	if opts.Bindings != "" {
		cfg.BindingsPath = opts.Bindings
	}
	if opts.FIFOPath != "" {
		cfg.FIFOPath = opts.FIFOPath
	}

	logger := configureLogging(cfg.Level(), opts.Verbose)

	parentCtx := cmd.Context()
	if parentCtx == nil {
		parentCtx = context.Background()
	}
	ctx, cancel := context.WithCancel(parentCtx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case sig := <-sigChan:
			slog.Info("received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	// A missing bindings file is tolerated: the watcher picks it up the
	// moment it appears. A malformed one fails startup.
	bindings := config.NewBindings()
	m, err := config.LoadBindings(cfg.BindingsPath)
	switch {
	case err == nil:
		bindings.Replace(m)
		slog.Info("bindings loaded", "path", cfg.BindingsPath, "count", bindings.Len())
	case errors.Is(err, fs.ErrNotExist):
		slog.Warn("bindings file not found, starting empty", "path", cfg.BindingsPath)
	default:
		return WrapExitError(ExitCommandError, "failed to load bindings", err)
	}

	go func() {
		if err := config.Watch(ctx, cfg.BindingsPath, bindings, logger); err != nil && !errors.Is(err, context.Canceled) {
			slog.Error("bindings watcher stopped", "error", err)
		}
	}()

	slog.Info("waiting for chord daemon", "fifo", cfg.FIFOPath)
	rd, err := transport.OpenReader(ctx, cfg.FIFOPath)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return WrapExitError(ExitCommandError, "failed to open fifo", err)
	}
	defer rd.Close()

	// The scanner blocks in a pipe read between chords; closing the
	// read end on cancellation is what unblocks it.
	go func() {
		<-ctx.Done()
		rd.Close()
	}()

	runner := dispatch.NewRunner(bindings, dispatch.WithLogger(logger))
	dispatcher := dispatch.NewDispatcher(runner, logger)

	fmt.Fprintln(cmd.OutOrStdout(), "clefd dispatcher started. Waiting for chords...")
	fmt.Fprintln(cmd.OutOrStdout(), "Press Ctrl-C to stop.")

	if err := dispatcher.Run(ctx, rd); err != nil && !errors.Is(err, context.Canceled) {
		return WrapExitError(ExitFailure, "dispatcher error", err)
	}

	slog.Info("dispatcher stopped gracefully")
	return nil
}
