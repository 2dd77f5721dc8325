package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the clefd version, stamped at build time via -ldflags.
var Version = "dev"

// versionInfo is the JSON payload for version.
type versionInfo struct {
	Version string `json:"version"`
}

// NewVersionCommand creates the version command.
func NewVersionCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the clefd version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if rootOpts.Format == "json" {
				formatter := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())
				return formatter.Success(versionInfo{Version: Version})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "clefd %s\n", Version)
			return nil
		},
	}

	return cmd
}
