package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tunepeek/tunepeek/internal/player"
	"github.com/tunepeek/tunepeek/internal/types"
)

// newPlayCmd creates the play command group. Each subcommand builds a queue
// through the playback coordinator and prints the state transitions it
// publishes; actual audio output is the embedding surface's job.
func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Queue a track, album or playlist through the playback coordinator",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			log.Info("Use 'tunepeek play track|album|playlist <id>'")
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "track [id]",
			Short: "Play a single track by id",
			Args:  cobra.ExactArgs(1),
			Run: func(cmd *cobra.Command, args []string) {
				runPlayTrack(args[0])
			},
		},
		&cobra.Command{
			Use:   "album [id]",
			Short: "Queue an album's tracks",
			Args:  cobra.ExactArgs(1),
			Run: func(cmd *cobra.Command, args []string) {
				runPlayAlbum(args[0])
			},
		},
		&cobra.Command{
			Use:   "playlist [id]",
			Short: "Queue a playlist's tracks",
			Args:  cobra.ExactArgs(1),
			Run: func(cmd *cobra.Command, args []string) {
				runPlayPlaylist(args[0])
			},
		},
	)

	return cmd
}

// newCoordinator wires the coordinator with the resolver and a subscriber
// that prints every published state.
func newCoordinator() *player.Coordinator {
	coordinator := player.NewCoordinator(newResolver(), player.NewTracker(), log.StandardLogger())
	coordinator.Subscribe(printNowPlaying)
	return coordinator
}

func printNowPlaying(state player.State) {
	if state.CurrentTrack == nil || !state.IsPlaying {
		return
	}

	track := state.CurrentTrack
	fmt.Println()
	color.New(color.FgGreen, color.Bold).Println("▶ Now playing")
	fmt.Printf("  %s — %s (%s)\n",
		color.New(color.Bold).Sprint(track.Name),
		types.ArtistNames(track.Artists),
		types.FormatDuration(track.DurationMS),
	)
	if track.HasPreview() {
		fmt.Printf("  %s\n", color.HiBlackString(track.PreviewURL))
	} else {
		fmt.Printf("  %s\n", color.YellowString("no preview available"))
	}
}

func runPlayTrack(trackID string) {
	catalogClient, err := newCatalogClient()
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize catalog client")
		return
	}

	ctx := context.Background()
	tracks, err := catalogClient.GetTracks(ctx, []string{trackID})
	if err != nil {
		log.WithError(err).Fatal("Failed to fetch track")
		return
	}
	if len(tracks) == 0 {
		log.WithField("track_id", trackID).Warn("Track not found")
		return
	}

	newCoordinator().PlayTrack(ctx, tracks[0], nil)
}

func runPlayAlbum(albumID string) {
	catalogClient, err := newCatalogClient()
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize catalog client")
		return
	}

	ctx := context.Background()
	albums, err := catalogClient.GetAlbums(ctx, []string{albumID})
	if err != nil {
		log.WithError(err).Fatal("Failed to fetch album")
		return
	}
	if len(albums) == 0 {
		log.WithField("album_id", albumID).Warn("Album not found")
		return
	}
	album := albums[0]

	page, err := catalogClient.GetAlbumTracks(ctx, albumID, 50, 0)
	if err != nil {
		log.WithError(err).Fatal("Failed to fetch album tracks")
		return
	}
	if len(page.Items) == 0 {
		log.WithField("album_id", albumID).Warn("Album has no tracks")
		return
	}

	log.WithFields(log.Fields{
		"album":  album.Name,
		"tracks": len(page.Items),
	}).Info("Queueing album")

	newCoordinator().PlayQueue(ctx, page.Items, 0, &player.ContextInfo{Album: &album})
}

func runPlayPlaylist(playlistID string) {
	catalogClient, err := newCatalogClient()
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize catalog client")
		return
	}

	ctx := context.Background()
	playlist, err := catalogClient.GetPlaylist(ctx, playlistID)
	if err != nil {
		log.WithError(err).Fatal("Failed to fetch playlist")
		return
	}

	page, err := catalogClient.GetPlaylistTracks(ctx, playlistID, 50, 0)
	if err != nil {
		log.WithError(err).Fatal("Failed to fetch playlist tracks")
		return
	}
	if len(page.Items) == 0 {
		log.WithField("playlist_id", playlistID).Warn("Playlist has no tracks")
		return
	}

	log.WithFields(log.Fields{
		"playlist": playlist.Name,
		"owner":    playlist.Owner.DisplayName,
		"tracks":   len(page.Items),
	}).Info("Queueing playlist")

	newCoordinator().PlayQueue(ctx, page.Items, 0, &player.ContextInfo{Playlist: playlist})
}
