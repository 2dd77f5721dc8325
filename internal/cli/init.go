package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nshan651/clefd/internal/config"
)

// InitOptions holds flags for the init command.
type InitOptions struct {
	*RootOptions
	ConfigDir string
}

// initResult is the JSON payload for init.
type initResult struct {
	Dir     string   `json:"dir"`
	Created []string `json:"created"`
}

// NewInitCommand creates the init command.
func NewInitCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &InitOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write default config files",
		Long: `Create the clefd config directory with a default clefd.yml and
clefrc. Files that already exist are never overwritten.

Example:
  clefd init
  clefd init --config-dir ./clefd-config`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigDir, "config-dir", "", "config directory (default $XDG_CONFIG_HOME/clefd)")

	return cmd
}

func runInit(opts *InitOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	dir, err := resolveConfigDir(opts.ConfigDir)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to resolve config directory", err)
	}

	created, err := config.WriteDefaults(dir)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to write defaults", err)
	}

	if opts.Format == "json" {
		return formatter.Success(initResult{Dir: dir, Created: created})
	}

	if len(created) == 0 {
		fmt.Fprintf(formatter.Writer, "config files already present in %s\n", dir)
		return nil
	}
	for _, name := range created {
		fmt.Fprintf(formatter.Writer, "created %s\n", filepath.Join(dir, name))
	}
	return nil
}
