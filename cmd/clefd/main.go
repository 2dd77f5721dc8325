package main

import (
	"fmt"
	"os"

	"github.com/nshan651/clefd/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		// Subcommands silence cobra's own reporting, so the error is
		// printed exactly once here.
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
