package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nshan651/clefd/internal/chord"
	"github.com/nshan651/clefd/internal/config"
	"github.com/nshan651/clefd/internal/keysym"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	ConfigDir string
	Bindings  string
}

// CheckResult holds bindings check results.
type CheckResult struct {
	Path     string   `json:"path"`
	Bindings int      `json:"bindings"`
	Warnings []string `json:"warnings,omitempty"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the bindings file",
		Long: `Parse the clefrc bindings file and report problems.

Malformed lines fail the check. Warnings flag bindings that parse but
can never fire: chords with unknown key names, without exactly one
non-modifier key, or with keys out of canonical order.

Example:
  clefd check
  clefd check --bindings ./clefrc --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigDir, "config-dir", "", "config directory (default $XDG_CONFIG_HOME/clefd)")
	cmd.Flags().StringVar(&opts.Bindings, "bindings", "", "bindings file (overrides config)")

	return cmd
}

func runCheck(opts *CheckOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	path := opts.Bindings
	if path == "" {
		dir, err := resolveConfigDir(opts.ConfigDir)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to resolve config directory", err)
		}
		cfg, err := config.Load(dir)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to load config", err)
		}
		path = cfg.BindingsPath
	}
	formatter.VerboseLog("checking %s", path)

	m, err := config.LoadBindings(path)
	if errors.Is(err, fs.ErrNotExist) {
		_ = formatter.Error("bindings", "bindings file not found: "+path, nil)
		return NewExitError(ExitCommandError, "bindings file not found")
	}
	if err != nil {
		_ = formatter.Error("parse", err.Error(), nil)
		return NewExitError(ExitFailure, "bindings check failed")
	}

	result := CheckResult{
		Path:     path,
		Bindings: len(m),
		Warnings: lintBindings(m, keysym.Default()),
	}

	if opts.Format == "json" {
		return formatter.Success(result)
	}

	fmt.Fprintf(formatter.Writer, "✓ %d binding(s) OK\n", result.Bindings)
	for _, w := range result.Warnings {
		fmt.Fprintf(formatter.Writer, "warning: %s\n", w)
	}
	return nil
}

// lintBindings flags chords the daemon can never emit. Keys are checked
// against the default table, the chord shape must carry exactly one
// non-modifier, and the binding must be written in the canonical order
// the engine emits.
func lintBindings(m map[string]string, table *keysym.Table) []string {
	chords := make([]string, 0, len(m))
	for k := range m {
		chords = append(chords, k)
	}
	sort.Strings(chords)

	var warnings []string
	for _, chordLine := range chords {
		names := strings.Fields(chordLine)
		nonModifiers := 0
		unknown := false
		for _, name := range names {
			if _, ok := table.CodeForName(name); !ok {
				warnings = append(warnings, fmt.Sprintf("chord %q: unknown key name %q", chordLine, name))
				unknown = true
			}
			if !chord.IsModifierName(name) {
				nonModifiers++
			}
		}
		if nonModifiers != 1 {
			warnings = append(warnings, fmt.Sprintf("chord %q: a chord fires on exactly one non-modifier key, this one has %d", chordLine, nonModifiers))
			continue
		}
		if unknown {
			continue
		}
		if canon := canonicalForm(names); canon != chordLine {
			warnings = append(warnings, fmt.Sprintf("chord %q: will never fire, the daemon emits it as %q", chordLine, canon))
		}
	}
	return warnings
}

// canonicalForm renders key names the way the engine emits them:
// modifiers sorted, the single non-modifier last.
func canonicalForm(names []string) string {
	var c chord.Chord
	for _, name := range names {
		if chord.IsModifierName(name) {
			c.Modifiers = append(c.Modifiers, name)
		} else {
			c.Key = name
		}
	}
	sort.Strings(c.Modifiers)
	return c.String()
}
