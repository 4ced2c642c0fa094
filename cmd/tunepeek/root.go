// Package cmd provides the command-line interface for tunepeek.
//
// It wires the catalog client, preview resolver, playback coordinator and
// search pager into cobra subcommands, and handles configuration loading
// and logging setup.
package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tunepeek/tunepeek/internal/catalog"
	"github.com/tunepeek/tunepeek/internal/preview"
	"github.com/tunepeek/tunepeek/internal/types"
	"github.com/tunepeek/tunepeek/pkg/config"
	"github.com/tunepeek/tunepeek/pkg/man"
	"github.com/tunepeek/tunepeek/pkg/version"
)

var (
	// conf holds the application configuration loaded from environment
	// variables and an optional .env file.
	conf config.Config
	// debug enables debug-level logging across all subcommands.
	debug bool
)

var rootCmd = &cobra.Command{
	Use:              "tunepeek",
	Short:            "Browse the music catalog and play 30-second previews",
	Long:             `tunepeek is a command-line music discovery tool. It searches the Spotify catalog across tracks, artists, albums and playlists, browses new releases and categories, and resolves 30-second preview clips, falling back to a companion resolver backend when the catalog has none.`,
	Args:             cobra.ExactArgs(0),
	PersistentPreRun: rootCmdPreRun,
	Run:              rootCmdRun,
}

func rootCmdRun(cmd *cobra.Command, args []string) {
	log.Info("Use 'tunepeek search <query>' to search the catalog")
	log.Info("Use 'tunepeek browse releases' to list new releases")
	log.Info("Use 'tunepeek play track <id>' to preview a track")
}

func rootCmdPreRun(cmd *cobra.Command, args []string) {
	// Load configuration
	conf = config.GetEnvVars()
	if debug {
		log.SetLevel(log.DebugLevel)
	}
}

// Execute starts command-line processing. On failure the error is printed
// and the process exits non-zero.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

// newCatalogClient builds the catalog client from the loaded configuration.
func newCatalogClient() (types.Catalog, error) {
	return catalog.NewClient(conf.Spotify, log.StandardLogger())
}

// newResolver builds the preview resolver backed by the companion service.
func newResolver() *preview.Resolver {
	finder := preview.NewClient(conf.Backend)
	return preview.NewResolver(finder, log.StandardLogger())
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug-level logging")

	// add sub-commands
	rootCmd.AddCommand(
		newSearchCmd(),
		newBrowseCmd(),
		newPreviewCmd(),
		newPlayCmd(),
		man.NewManCmd(),
		version.Command(),
	)
}
