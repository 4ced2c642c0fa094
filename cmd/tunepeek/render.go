package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/tunepeek/tunepeek/internal/types"
)

// Table rendering for search and browse results.

func printTracksTable(tracks []types.Track) {
	if len(tracks) == 0 {
		return
	}

	cyan := color.New(color.FgCyan)
	fmt.Println()
	cyan.Println("🎵 Tracks")

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"#", "Title", "Artist", "Album", "Duration", "Pop", "Preview"})

	for i, track := range tracks {
		previewMark := color.HiBlackString("—")
		if track.HasPreview() {
			previewMark = color.GreenString("●")
		}
		t.AppendRow(table.Row{
			i + 1,
			color.New(color.Bold).Sprint(track.Name),
			types.ArtistNames(track.Artists),
			track.Album.Name,
			types.FormatDuration(track.DurationMS),
			track.Popularity,
			previewMark,
		})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()
}

func printArtistsTable(artists []types.Artist) {
	if len(artists) == 0 {
		return
	}

	cyan := color.New(color.FgCyan)
	fmt.Println()
	cyan.Println("🎤 Artists")

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"#", "Name", "Followers", "Genres"})

	for i, artist := range artists {
		t.AppendRow(table.Row{
			i + 1,
			color.New(color.Bold).Sprint(artist.Name),
			types.FormatCount(artist.Followers),
			strings.Join(artist.Genres, ", "),
		})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()
}

func printAlbumsTable(albums []types.Album) {
	if len(albums) == 0 {
		return
	}

	cyan := color.New(color.FgCyan)
	fmt.Println()
	cyan.Println("💿 Albums")

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"#", "Name", "Artist", "Released", "Tracks"})

	for i, album := range albums {
		t.AppendRow(table.Row{
			i + 1,
			color.New(color.Bold).Sprint(album.Name),
			types.ArtistNames(album.Artists),
			album.ReleaseDate,
			album.TotalTracks,
		})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()
}

func printPlaylistsTable(playlists []types.Playlist) {
	if len(playlists) == 0 {
		return
	}

	cyan := color.New(color.FgCyan)
	fmt.Println()
	cyan.Println("📋 Playlists")

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"#", "Name", "Owner", "Tracks", "ID"})

	for i, playlist := range playlists {
		t.AppendRow(table.Row{
			i + 1,
			color.New(color.Bold).Sprint(playlist.Name),
			playlist.Owner.DisplayName,
			playlist.TrackCount,
			color.HiBlackString(playlist.ID),
		})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()
}

func printCategoriesTable(categories []types.Category) {
	if len(categories) == 0 {
		return
	}

	cyan := color.New(color.FgCyan)
	fmt.Println()
	cyan.Println("🗂  Categories")

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"#", "Name", "ID"})

	for i, category := range categories {
		t.AppendRow(table.Row{
			i + 1,
			color.New(color.Bold).Sprint(category.Name),
			color.HiBlackString(category.ID),
		})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()
}
