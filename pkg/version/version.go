// Package version provides the version subcommand and build metadata.
package version

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Build metadata, injected at link time via -ldflags.
var (
	Version   = "unknown"
	CommitSHA = "unknown"
	BuildDate = "unknown"
)

// Command returns the version subcommand.
func Command() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number and build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "tunepeek version %s\n", Version)
			fmt.Fprintf(out, "commit: %s\n", CommitSHA)
			fmt.Fprintf(out, "built: %s\n", BuildDate)
			fmt.Fprintf(out, "go: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
			return nil
		},
	}
}
