package cmd

import (
	"context"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// newBrowseCmd creates the browse command and its subcommands for the
// dashboard-style views: new releases, featured playlists and categories.
func newBrowseCmd() *cobra.Command {
	var limit int
	var offset int

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse new releases, featured playlists and categories",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			log.Info("Use 'tunepeek browse releases|featured|categories|category <id>'")
		},
	}

	cmd.PersistentFlags().IntVarP(&limit, "limit", "l", 20, "Number of items to fetch")
	cmd.PersistentFlags().IntVarP(&offset, "offset", "o", 0, "Offset to start fetching from")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "releases",
			Short: "List newly released albums",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				runBrowseReleases(limit, offset)
			},
		},
		&cobra.Command{
			Use:   "featured",
			Short: "List editorially featured playlists",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				runBrowseFeatured(limit, offset)
			},
		},
		&cobra.Command{
			Use:   "categories",
			Short: "List browse categories",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				runBrowseCategories(limit, offset)
			},
		},
		&cobra.Command{
			Use:   "category [id]",
			Short: "List playlists for a category",
			Args:  cobra.ExactArgs(1),
			Run: func(cmd *cobra.Command, args []string) {
				runBrowseCategory(args[0], limit, offset)
			},
		},
	)

	return cmd
}

func runBrowseReleases(limit, offset int) {
	catalogClient, err := newCatalogClient()
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize catalog client")
		return
	}

	page, err := catalogClient.GetNewReleases(context.Background(), limit, offset)
	if err != nil {
		log.WithError(err).Fatal("Failed to fetch new releases")
		return
	}

	if len(page.Items) == 0 {
		log.Warn("No new releases found")
		return
	}
	printAlbumsTable(page.Items)
}

func runBrowseFeatured(limit, offset int) {
	catalogClient, err := newCatalogClient()
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize catalog client")
		return
	}

	page, err := catalogClient.GetFeaturedPlaylists(context.Background(), limit, offset)
	if err != nil {
		log.WithError(err).Fatal("Failed to fetch featured playlists")
		return
	}

	if len(page.Items) == 0 {
		log.Warn("No featured playlists found")
		return
	}
	printPlaylistsTable(page.Items)
}

func runBrowseCategories(limit, offset int) {
	catalogClient, err := newCatalogClient()
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize catalog client")
		return
	}

	page, err := catalogClient.GetCategories(context.Background(), limit, offset)
	if err != nil {
		log.WithError(err).Fatal("Failed to fetch categories")
		return
	}

	if len(page.Items) == 0 {
		log.Warn("No categories found")
		return
	}
	printCategoriesTable(page.Items)
}

func runBrowseCategory(categoryID string, limit, offset int) {
	catalogClient, err := newCatalogClient()
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize catalog client")
		return
	}

	ctx := context.Background()
	if category, err := catalogClient.GetCategory(ctx, categoryID); err == nil {
		log.WithFields(log.Fields{
			"category_id": category.ID,
			"name":        category.Name,
		}).Debug("Resolved category")
	}

	page, err := catalogClient.GetPlaylistsByCategory(ctx, categoryID, limit, offset)
	if err != nil {
		log.WithError(err).Fatal("Failed to fetch category playlists")
		return
	}

	if len(page.Items) == 0 {
		log.WithField("category_id", categoryID).Warn("No playlists found for category")
		return
	}
	printPlaylistsTable(page.Items)
}
