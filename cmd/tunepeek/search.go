// Package cmd provides the search command implementation for tunepeek.
package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tunepeek/tunepeek/internal/search"
)

// newSearchCmd creates the search command.
func newSearchCmd() *cobra.Command {
	var searchType string
	var pages int

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search the catalog for tracks, artists, albums and playlists",
		Long: `Search the catalog across one or more categories. Results arrive a page
at a time; use --pages to pull further pages the way infinite scroll would.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runSearch(args[0], searchType, pages)
		},
	}

	cmd.Flags().StringVarP(&searchType, "type", "t", "all", "Categories to search: all, or a comma-separated list of track, artist, album, playlist")
	cmd.Flags().IntVarP(&pages, "pages", "p", 1, "Number of result pages to fetch")

	return cmd
}

// runSearch executes the search command.
func runSearch(query, searchType string, pages int) {
	query = strings.TrimSpace(query)
	if query == "" {
		log.Error("Search query cannot be empty")
		return
	}

	catalogClient, err := newCatalogClient()
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize catalog client")
		return
	}

	log.WithFields(log.Fields{
		"query": query,
		"type":  searchType,
		"pages": pages,
	}).Debug("Starting catalog search")

	ctx := context.Background()
	pager := search.NewPager(catalogClient, log.StandardLogger())
	if searchType != "" && searchType != "all" {
		pager.OnSearchTypeChange(ctx, searchType)
	}

	pager.SearchNow(ctx, query)
	for i := 1; i < pages; i++ {
		if !pager.LoadMore(ctx) {
			break
		}
	}

	snap := pager.Snapshot()
	if snap.LoadedResults == 0 {
		log.WithField("query", query).Warn("No results found")
		return
	}

	printTracksTable(snap.Tracks)
	printArtistsTable(snap.Artists)
	printAlbumsTable(snap.Albums)
	printPlaylistsTable(snap.Playlists)

	fmt.Println()
	green := color.New(color.FgGreen, color.Bold)
	green.Printf("Showing %d of %d results", snap.LoadedResults, snap.TotalResults)
	if snap.HasMore {
		fmt.Print(color.HiBlackString("  (more available, raise --pages)"))
	}
	fmt.Println()
}
