// Package man generates manual pages for the CLI.
package man

import (
	"fmt"

	mcobra "github.com/muesli/mango-cobra"
	"github.com/muesli/roff"
	"github.com/spf13/cobra"
)

// NewManCmd returns a hidden subcommand that writes a roff-formatted manual
// page for the whole command tree to stdout.
func NewManCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "man",
		Short:                 "Generate manual pages",
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
		Hidden:                true,
		Args:                  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			manPage, err := mcobra.NewManPage(1, cmd.Root())
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), manPage.Build(roff.NewDocument()))
			return err
		},
	}
}
