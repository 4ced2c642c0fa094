package catalog

import (
	"github.com/zmb3/spotify/v2"

	"github.com/tunepeek/tunepeek/internal/types"
)

// Conversions from the raw API library types into the view models the rest
// of the application consumes. Numeric fields are cast defensively since
// the library mixes int-backed and uint-backed counters across versions.

func mapImages(images []spotify.Image) []types.Image {
	if len(images) == 0 {
		return nil
	}
	out := make([]types.Image, 0, len(images))
	for _, img := range images {
		out = append(out, types.Image{
			URL:    img.URL,
			Height: int(img.Height),
			Width:  int(img.Width),
		})
	}
	return out
}

func mapArtistRefs(artists []spotify.SimpleArtist) []types.ArtistRef {
	if len(artists) == 0 {
		return nil
	}
	out := make([]types.ArtistRef, 0, len(artists))
	for _, a := range artists {
		out = append(out, types.ArtistRef{
			ID:   string(a.ID),
			Name: a.Name,
		})
	}
	return out
}

func mapAlbumRef(album spotify.SimpleAlbum) types.AlbumRef {
	return types.AlbumRef{
		ID:     string(album.ID),
		Name:   album.Name,
		Images: mapImages(album.Images),
	}
}

func mapFullTrack(track spotify.FullTrack) types.Track {
	return types.Track{
		ID:          string(track.ID),
		Name:        track.Name,
		URI:         string(track.URI),
		Artists:     mapArtistRefs(track.Artists),
		Album:       mapAlbumRef(track.Album),
		PreviewURL:  track.PreviewURL,
		DurationMS:  int(track.Duration),
		Popularity:  int(track.Popularity),
		ExternalURL: track.ExternalURLs["spotify"],
	}
}

func mapFullTracks(tracks []spotify.FullTrack) []types.Track {
	if len(tracks) == 0 {
		return nil
	}
	out := make([]types.Track, 0, len(tracks))
	for _, t := range tracks {
		out = append(out, mapFullTrack(t))
	}
	return out
}

func mapSimpleTrack(track spotify.SimpleTrack, album spotify.SimpleAlbum) types.Track {
	return types.Track{
		ID:          string(track.ID),
		Name:        track.Name,
		URI:         string(track.URI),
		Artists:     mapArtistRefs(track.Artists),
		Album:       mapAlbumRef(album),
		PreviewURL:  track.PreviewURL,
		DurationMS:  int(track.Duration),
		ExternalURL: track.ExternalURLs["spotify"],
	}
}

func mapFullArtist(artist spotify.FullArtist) types.Artist {
	return types.Artist{
		ID:          string(artist.ID),
		Name:        artist.Name,
		Genres:      artist.Genres,
		Popularity:  int(artist.Popularity),
		Followers:   int(artist.Followers.Count),
		Images:      mapImages(artist.Images),
		ExternalURL: artist.ExternalURLs["spotify"],
	}
}

func mapFullArtists(artists []spotify.FullArtist) []types.Artist {
	if len(artists) == 0 {
		return nil
	}
	out := make([]types.Artist, 0, len(artists))
	for _, a := range artists {
		out = append(out, mapFullArtist(a))
	}
	return out
}

func mapSimpleAlbum(album spotify.SimpleAlbum) types.Album {
	return types.Album{
		ID:          string(album.ID),
		Name:        album.Name,
		AlbumType:   album.AlbumType,
		ReleaseDate: album.ReleaseDate,
		TotalTracks: int(album.TotalTracks),
		Artists:     mapArtistRefs(album.Artists),
		Images:      mapImages(album.Images),
		ExternalURL: album.ExternalURLs["spotify"],
	}
}

func mapSimpleAlbums(albums []spotify.SimpleAlbum) []types.Album {
	if len(albums) == 0 {
		return nil
	}
	out := make([]types.Album, 0, len(albums))
	for _, a := range albums {
		out = append(out, mapSimpleAlbum(a))
	}
	return out
}

func mapFullAlbum(album *spotify.FullAlbum) types.Album {
	if album == nil {
		return types.Album{}
	}
	mapped := mapSimpleAlbum(album.SimpleAlbum)
	if mapped.TotalTracks == 0 {
		mapped.TotalTracks = int(album.Tracks.Total)
	}
	return mapped
}

func mapSimplePlaylist(playlist spotify.SimplePlaylist) types.Playlist {
	return types.Playlist{
		ID:          string(playlist.ID),
		Name:        playlist.Name,
		Description: playlist.Description,
		Owner: types.Owner{
			ID:          playlist.Owner.ID,
			DisplayName: playlist.Owner.DisplayName,
		},
		Images:      mapImages(playlist.Images),
		TrackCount:  int(playlist.Tracks.Total),
		ExternalURL: playlist.ExternalURLs["spotify"],
	}
}

func mapSimplePlaylists(playlists []spotify.SimplePlaylist) []types.Playlist {
	if len(playlists) == 0 {
		return nil
	}
	out := make([]types.Playlist, 0, len(playlists))
	for _, p := range playlists {
		out = append(out, mapSimplePlaylist(p))
	}
	return out
}

func mapFullPlaylist(playlist *spotify.FullPlaylist) *types.Playlist {
	if playlist == nil {
		return nil
	}
	mapped := mapSimplePlaylist(playlist.SimplePlaylist)
	mapped.Description = playlist.Description
	mapped.TrackCount = int(playlist.Tracks.Total)
	return &mapped
}

func mapCategory(category spotify.Category) types.Category {
	return types.Category{
		ID:    category.ID,
		Name:  category.Name,
		Icons: mapImages(category.Icons),
	}
}

func mapTrackPage(page *spotify.FullTrackPage) *types.TrackPage {
	if page == nil {
		return nil
	}
	return &types.TrackPage{
		Items:    mapFullTracks(page.Tracks),
		Total:    int(page.Total),
		Limit:    int(page.Limit),
		Offset:   int(page.Offset),
		Next:     page.Next,
		Previous: page.Previous,
	}
}

func mapArtistPage(page *spotify.FullArtistPage) *types.ArtistPage {
	if page == nil {
		return nil
	}
	return &types.ArtistPage{
		Items:    mapFullArtists(page.Artists),
		Total:    int(page.Total),
		Limit:    int(page.Limit),
		Offset:   int(page.Offset),
		Next:     page.Next,
		Previous: page.Previous,
	}
}

func mapAlbumPage(page *spotify.SimpleAlbumPage) *types.AlbumPage {
	if page == nil {
		return nil
	}
	return &types.AlbumPage{
		Items:    mapSimpleAlbums(page.Albums),
		Total:    int(page.Total),
		Limit:    int(page.Limit),
		Offset:   int(page.Offset),
		Next:     page.Next,
		Previous: page.Previous,
	}
}

func mapPlaylistPage(page *spotify.SimplePlaylistPage) *types.PlaylistPage {
	if page == nil {
		return nil
	}
	return &types.PlaylistPage{
		Items:    mapSimplePlaylists(page.Playlists),
		Total:    int(page.Total),
		Limit:    int(page.Limit),
		Offset:   int(page.Offset),
		Next:     page.Next,
		Previous: page.Previous,
	}
}

func mapCategoryPage(page *spotify.CategoryPage) *types.CategoryPage {
	if page == nil {
		return nil
	}
	items := make([]types.Category, 0, len(page.Categories))
	for _, c := range page.Categories {
		items = append(items, mapCategory(c))
	}
	return &types.CategoryPage{
		Items:    items,
		Total:    int(page.Total),
		Limit:    int(page.Limit),
		Offset:   int(page.Offset),
		Next:     page.Next,
		Previous: page.Previous,
	}
}

func mapSearchResults(result *spotify.SearchResult) *types.SearchResults {
	if result == nil {
		return nil
	}
	return &types.SearchResults{
		Tracks:    mapTrackPage(result.Tracks),
		Artists:   mapArtistPage(result.Artists),
		Albums:    mapAlbumPage(result.Albums),
		Playlists: mapPlaylistPage(result.Playlists),
	}
}
