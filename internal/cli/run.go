package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nshan651/clefd/internal/config"
	"github.com/nshan651/clefd/internal/device"
	"github.com/nshan651/clefd/internal/engine"
	"github.com/nshan651/clefd/internal/keysym"
	"github.com/nshan651/clefd/internal/transport"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	ConfigDir string
	FIFOPath  string
	Print     bool
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start the chord daemon",
		Long: `Start the clefd chord daemon.

The daemon discovers keyboard devices under /dev/input, tracks held
keys, and writes each recognized chord as one line to a named pipe.
Opening the pipe blocks until a consumer such as "clefd dispatch"
attaches; --print sends chords to stdout instead and skips that
handshake.

Example:
  clefd run
  clefd run --print
  clefd run --fifo /run/user/1000/clefd.fifo --verbose`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDaemon(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigDir, "config-dir", "", "config directory (default $XDG_CONFIG_HOME/clefd)")
	cmd.Flags().StringVar(&opts.FIFOPath, "fifo", "", "chord output pipe (overrides config)")
	cmd.Flags().BoolVar(&opts.Print, "print", false, "write chords to stdout instead of the pipe")

	return cmd
}

func runDaemon(opts *RunOptions, cmd *cobra.Command) error {
	dir, err := resolveConfigDir(opts.ConfigDir)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to resolve config directory", err)
	}
	cfg, err := config.Load(dir)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load config", err)
	}
	if opts.FIFOPath != "" {
		cfg.FIFOPath = opts.FIFOPath
	}

	logger := configureLogging(cfg.Level(), opts.Verbose)

	// Setup signal handling for graceful shutdown
	// Use command's context if available (for testing), otherwise create one
	parentCtx := cmd.Context()
	if parentCtx == nil {
		parentCtx = context.Background()
	}
	ctx, cancel := context.WithCancel(parentCtx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan) // Prevent signal handler leak

	go func() {
		select {
		case sig := <-sigChan:
			slog.Info("received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
			// Parent context cancelled (e.g., from test)
		}
	}()

	// Chord sink: stdout in --print mode, otherwise the FIFO. The FIFO
	// open blocks until a reader attaches, so it sits under the signal
	// handler and unwinds cleanly on Ctrl-C.
	var sink engine.Sink
	if opts.Print {
		sink = transport.NewWriter(cmd.OutOrStdout())
	} else {
		slog.Info("waiting for chord consumer", "fifo", cfg.FIFOPath)
		fifo, err := transport.OpenFIFO(ctx, cfg.FIFOPath)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return WrapExitError(ExitCommandError, "failed to open fifo", err)
		}
		defer func() {
			if closeErr := fifo.Close(); closeErr != nil {
				slog.Error("error closing fifo", "error", closeErr)
			}
		}()
		sink = fifo
	}

	// Discover keyboards
	devices, err := device.FindKeyboards()
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to scan input devices", err)
	}
	if len(devices) == 0 {
		return NewExitError(ExitCommandError, "no keyboard devices found (is this user in the input group?)")
	}
	for _, dev := range devices {
		slog.Info("monitoring keyboard", "device", device.DeviceName(dev))
	}

	eng := engine.New(keysym.Default(), sink,
		engine.WithCapacity(cfg.MaxPressedKeys),
		engine.WithLogger(logger))
	mon := device.NewMonitor(devices, logger)
	mon.Start(ctx)

	// In --print mode stdout carries chord lines, so the banner moves
	// to stderr.
	banner := io.Writer(cmd.OutOrStdout())
	if opts.Print {
		banner = cmd.ErrOrStderr()
	}
	fmt.Fprintln(banner, "clefd started. Watching for chords...")
	fmt.Fprintln(banner, "Press Ctrl-C to stop.")

	err = eng.Run(ctx, mon.Events())
	if err != nil && err != context.Canceled && err != context.DeadlineExceeded {
		return WrapExitError(ExitFailure, "engine error", err)
	}
	if err == nil && ctx.Err() == nil {
		// The event channel closed with no shutdown requested: every
		// device reader has died (unplugged or read failures).
		return NewExitError(ExitFailure, "all input devices lost")
	}

	slog.Info("daemon stopped gracefully")
	return nil
}
