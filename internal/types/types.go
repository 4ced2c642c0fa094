package types

import (
	"context"
	"fmt"
	"strings"
)

// Catalog defines the interface for Spotify catalog operations. Implementations
// authenticate with client-credentials and return view models mapped from the
// raw API responses.
type Catalog interface {
	Search(ctx context.Context, query, searchType string, limit, offset int) (*SearchResults, error)
	SearchAll(ctx context.Context, query string, limit, offset int) (*SearchResults, error)
	GetTracks(ctx context.Context, ids []string) ([]Track, error)
	GetArtists(ctx context.Context, ids []string) ([]Artist, error)
	GetArtistTopTracks(ctx context.Context, artistID string) ([]Track, error)
	GetArtistAlbums(ctx context.Context, artistID string, limit, offset int) (*AlbumPage, error)
	GetRelatedArtists(ctx context.Context, artistID string) ([]Artist, error)
	GetAlbums(ctx context.Context, ids []string) ([]Album, error)
	GetAlbumTracks(ctx context.Context, albumID string, limit, offset int) (*TrackPage, error)
	GetNewReleases(ctx context.Context, limit, offset int) (*AlbumPage, error)
	GetFeaturedPlaylists(ctx context.Context, limit, offset int) (*PlaylistPage, error)
	GetCategories(ctx context.Context, limit, offset int) (*CategoryPage, error)
	GetCategory(ctx context.Context, categoryID string) (*Category, error)
	GetPlaylistsByCategory(ctx context.Context, categoryID string, limit, offset int) (*PlaylistPage, error)
	GetRecommendations(ctx context.Context, seeds Seeds, limit int) ([]Track, error)
	GetPlaylist(ctx context.Context, playlistID string) (*Playlist, error)
	GetPlaylistTracks(ctx context.Context, playlistID string, limit, offset int) (*TrackPage, error)
}

// PreviewFinder defines the interface for best-effort preview URL lookup
// against the companion backend. An empty URL with a nil error is a
// legitimate miss, not a failure.
type PreviewFinder interface {
	FindPreview(ctx context.Context, trackName, artistName string) (string, error)
	Health(ctx context.Context) error
}

// Seeds holds recommendation seed identifiers. At least one field should be
// non-empty when requesting recommendations.
type Seeds struct {
	Tracks  []string `json:"tracks"`
	Artists []string `json:"artists"`
	Genres  []string `json:"genres"`
}

// Core data models

// Image represents artwork at a particular resolution.
type Image struct {
	URL    string `json:"url"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}

// ArtistRef is the minimal artist attribution carried on tracks and albums.
type ArtistRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Artist represents a full artist object.
type Artist struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	URI         string   `json:"uri"`
	Genres      []string `json:"genres"`
	Popularity  int      `json:"popularity"`
	Followers   int      `json:"followers"`
	Images      []Image  `json:"images"`
	ExternalURL string   `json:"external_url"`
}

// AlbumRef is the album attribution carried on a track. The playback layer
// may override Name and Images with playlist or album context artwork while
// the track identity stays untouched.
type AlbumRef struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Images []Image `json:"images"`
}

// Album represents a full or simplified album object.
type Album struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	AlbumType   string      `json:"album_type"`
	ReleaseDate string      `json:"release_date"`
	TotalTracks int         `json:"total_tracks"`
	Artists     []ArtistRef `json:"artists"`
	Images      []Image     `json:"images"`
	ExternalURL string      `json:"external_url"`
}

// Owner identifies the account a playlist belongs to.
type Owner struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// Playlist represents a playlist object.
type Playlist struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Owner       Owner   `json:"owner"`
	Images      []Image `json:"images"`
	TrackCount  int     `json:"track_count"`
	ExternalURL string  `json:"external_url"`
}

// Category represents a browse category used to tag playlists.
type Category struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Icons []Image `json:"icons"`
}

// Track is an immutable snapshot of a catalog track, optionally enriched
// with a resolved preview URL. An empty PreviewURL means no preview is known;
// the preview resolver may still find one out-of-band.
type Track struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	URI         string      `json:"uri"`
	Artists     []ArtistRef `json:"artists"`
	Album       AlbumRef    `json:"album"`
	PreviewURL  string      `json:"preview_url"`
	DurationMS  int         `json:"duration_ms"`
	Popularity  int         `json:"popularity"`
	ExternalURL string      `json:"external_url"`
}

// HasPreview reports whether the track carries a usable preview URL.
func (t Track) HasPreview() bool {
	return strings.TrimSpace(t.PreviewURL) != ""
}

// FirstArtistName returns the primary artist name, or empty when unknown.
func (t Track) FirstArtistName() string {
	if len(t.Artists) == 0 {
		return ""
	}
	return t.Artists[0].Name
}

// Page envelopes. Each mirrors the API's paging wrapper so callers can
// accumulate results across offsets.

// TrackPage is a paginated envelope of tracks.
type TrackPage struct {
	Items    []Track `json:"items"`
	Total    int     `json:"total"`
	Limit    int     `json:"limit"`
	Offset   int     `json:"offset"`
	Next     string  `json:"next"`
	Previous string  `json:"previous"`
}

// ArtistPage is a paginated envelope of artists.
type ArtistPage struct {
	Items    []Artist `json:"items"`
	Total    int      `json:"total"`
	Limit    int      `json:"limit"`
	Offset   int      `json:"offset"`
	Next     string   `json:"next"`
	Previous string   `json:"previous"`
}

// AlbumPage is a paginated envelope of albums.
type AlbumPage struct {
	Items    []Album `json:"items"`
	Total    int     `json:"total"`
	Limit    int     `json:"limit"`
	Offset   int     `json:"offset"`
	Next     string  `json:"next"`
	Previous string  `json:"previous"`
}

// PlaylistPage is a paginated envelope of playlists.
type PlaylistPage struct {
	Items    []Playlist `json:"items"`
	Total    int        `json:"total"`
	Limit    int        `json:"limit"`
	Offset   int        `json:"offset"`
	Next     string     `json:"next"`
	Previous string     `json:"previous"`
}

// CategoryPage is a paginated envelope of browse categories.
type CategoryPage struct {
	Items    []Category `json:"items"`
	Total    int        `json:"total"`
	Limit    int        `json:"limit"`
	Offset   int        `json:"offset"`
	Next     string     `json:"next"`
	Previous string     `json:"previous"`
}

// SearchResults bundles the per-category pages a search can return. Nil
// pages mean the category was not requested.
type SearchResults struct {
	Tracks    *TrackPage    `json:"tracks,omitempty"`
	Artists   *ArtistPage   `json:"artists,omitempty"`
	Albums    *AlbumPage    `json:"albums,omitempty"`
	Playlists *PlaylistPage `json:"playlists,omitempty"`
}

// Display helpers shared by the CLI and any other rendering surface.

// PlaceholderImageURL is rendered when an entity carries no artwork.
const PlaceholderImageURL = "assets/placeholder-album.png"

// FormatDuration renders a millisecond duration as m:ss.
func FormatDuration(ms int) string {
	if ms <= 0 {
		return "0:00"
	}
	minutes := ms / 60000
	seconds := (ms % 60000) / 1000
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// FormatCount renders large counts with K/M suffixes.
func FormatCount(n int) string {
	switch {
	case n >= 1000000:
		return fmt.Sprintf("%.1fM", float64(n)/1000000)
	case n >= 1000:
		return fmt.Sprintf("%.1fK", float64(n)/1000)
	case n > 0:
		return fmt.Sprintf("%d", n)
	default:
		return "0"
	}
}

// ArtistNames joins artist names with commas, substituting a fallback for
// missing data.
func ArtistNames(artists []ArtistRef) string {
	if len(artists) == 0 {
		return "Unknown Artist"
	}
	names := make([]string, len(artists))
	for i, artist := range artists {
		if artist.Name == "" {
			names[i] = "Unknown"
			continue
		}
		names[i] = artist.Name
	}
	return strings.Join(names, ", ")
}

// ImageURL returns the first image URL or a placeholder when none exist.
func ImageURL(images []Image) string {
	if len(images) > 0 && images[0].URL != "" {
		return images[0].URL
	}
	return PlaceholderImageURL
}
