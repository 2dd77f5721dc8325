package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nshan651/clefd/internal/chord"
	"github.com/nshan651/clefd/internal/device"
	"github.com/nshan651/clefd/internal/keysym"
)

// KeysOptions holds flags for the keys command.
type KeysOptions struct {
	*RootOptions
}

// keyEcho is one observed key transition.
type keyEcho struct {
	Action   string `json:"action"` // "press" or "release"
	Key      string `json:"key"`
	Keycode  uint32 `json:"keycode"`
	Modifier bool   `json:"modifier"`
}

// NewKeysCommand creates the keys command.
func NewKeysCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &KeysOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Echo resolved key events",
		Long: `Print every key press and release as it happens, with the resolved
key name and keycode. A diagnostic for checking that input devices are
readable and that keycodes resolve to the names clefrc expects.

Example:
  clefd keys
  clefd keys --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeys(opts, cmd)
		},
	}

	return cmd
}

func runKeys(opts *KeysOptions, cmd *cobra.Command) error {
	// The echo itself is the output; keep the log handler quiet unless
	// --verbose asks for it.
	logger := configureLogging(slog.LevelWarn, opts.Verbose)

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
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	devices, err := device.FindKeyboards()
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to scan input devices", err)
	}
	if len(devices) == 0 {
		return NewExitError(ExitCommandError, "no keyboard devices found (is this user in the input group?)")
	}

	mon := device.NewMonitor(devices, logger)
	mon.Start(ctx)

	table := keysym.Default()
	out := cmd.OutOrStdout()
	enc := json.NewEncoder(out)

	fmt.Fprintln(cmd.ErrOrStderr(), "Echoing key events. Press Ctrl-C to stop.")

	for ev := range mon.Events() {
		info, ok := table.Resolve(ev.Code)
		if !ok {
			info = chord.Info{Name: chord.UnknownKeyName}
		}

		action := "release"
		if ev.Pressed {
			action = "press"
		}
		echo := keyEcho{
			Action:   action,
			Key:      info.Name,
			Keycode:  uint32(ev.Code),
			Modifier: info.Modifier,
		}

		if opts.Format == "json" {
			if err := enc.Encode(echo); err != nil {
				return WrapExitError(ExitFailure, "failed to encode event", err)
			}
			continue
		}
		fmt.Fprintf(out, "%-7s %-16s keycode=%d modifier=%v\n",
			echo.Action, echo.Key, echo.Keycode, echo.Modifier)
	}

	return nil
}
