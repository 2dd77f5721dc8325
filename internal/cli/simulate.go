package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/bendahl/uinput"
	"github.com/spf13/cobra"

	"github.com/nshan651/clefd/internal/keysym"
	"github.com/nshan651/clefd/internal/simulate"
)

// SimulateOptions holds flags for the simulate command.
type SimulateOptions struct {
	*RootOptions
	Device string
}

// simulateResult is the JSON payload for a successful injection.
type simulateResult struct {
	Chord string `json:"chord"`
	Steps int    `json:"steps"`
}

// uinputSettle gives the display server time to pick up the freshly
// created virtual keyboard before events flow through it.
const uinputSettle = 500 * time.Millisecond

// NewSimulateCommand creates the simulate command.
func NewSimulateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SimulateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "simulate <key>...",
		Short: "Type a chord through a virtual keyboard",
		Long: `Inject a chord via a virtual uinput keyboard.

The chord is given as space-separated key names. Modifiers are held,
the final key is tapped, and the modifiers are released in reverse
order. Requires write access to /dev/uinput.

Example:
  clefd simulate Control_L Shift_L a
  clefd simulate Super_L w`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(opts, strings.Join(args, " "), cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Device, "device", "/dev/uinput", "uinput device node")

	return cmd
}

func runSimulate(opts *SimulateOptions, chordLine string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	plan, err := simulate.Plan(chordLine, keysym.Default())
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid chord", err)
	}
	formatter.VerboseLog("plan: %d step(s) for %q", len(plan), chordLine)

	kbd, err := uinput.CreateKeyboard(opts.Device, []byte("clefd"))
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to create virtual keyboard", err)
	}
	defer kbd.Close()
	time.Sleep(uinputSettle)

	if err := simulate.Inject(kbd, plan); err != nil {
		return WrapExitError(ExitFailure, "injection failed", err)
	}

	if opts.Format == "json" {
		return formatter.Success(simulateResult{Chord: chordLine, Steps: len(plan)})
	}
	fmt.Fprintf(formatter.Writer, "✓ injected %q (%d steps)\n", chordLine, len(plan))
	return nil
}
