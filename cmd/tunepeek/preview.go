package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tunepeek/tunepeek/internal/preview"
)

// newPreviewCmd creates the preview command, a direct round trip through
// the preview resolver and its cache.
func newPreviewCmd() *cobra.Command {
	var verify bool

	cmd := &cobra.Command{
		Use:   "preview [track] [artist]",
		Short: "Resolve a preview URL for a track by name",
		Long: `Resolve a 30-second preview URL through the companion resolver backend.
Results are cached for the lifetime of the process, including confirmed
misses, so repeating a lookup never fires a second request.`,
		Args: cobra.RangeArgs(1, 2),
		Run: func(cmd *cobra.Command, args []string) {
			artist := ""
			if len(args) > 1 {
				artist = args[1]
			}
			runPreview(args[0], artist, verify)
		},
	}

	cmd.Flags().BoolVar(&verify, "verify", false, "Check resolver backend health before looking up")

	return cmd
}

// runPreview executes the preview command.
func runPreview(trackName, artistName string, verify bool) {
	trackName = strings.TrimSpace(trackName)
	if trackName == "" {
		log.Error("Track name cannot be empty")
		return
	}

	ctx := context.Background()
	finder := preview.NewClient(conf.Backend)

	if verify {
		if err := finder.Health(ctx); err != nil {
			log.WithError(err).Fatal("Resolver backend is not available")
			return
		}
		log.Info("Resolver backend is healthy")
	}

	resolver := preview.NewResolver(finder, log.StandardLogger())

	url := resolver.Resolve(ctx, trackName, artistName)
	if url == "" {
		log.WithFields(log.Fields{
			"track":  trackName,
			"artist": artistName,
		}).Warn("No preview available")
		return
	}

	fmt.Println()
	color.New(color.FgGreen, color.Bold).Println("● Preview found")
	fmt.Printf("  %s\n", url)

	stats := resolver.CacheStats()
	log.WithField("cache_size", stats.Size).Debug("Preview cache state")
}
