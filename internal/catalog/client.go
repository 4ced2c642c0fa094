// Package catalog implements the Spotify catalog client the rest of the
// application talks to. It authenticates with the client-credentials flow
// and maps raw API responses into the view models in internal/types.
package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/tunepeek/tunepeek/internal/types"
	"github.com/tunepeek/tunepeek/pkg/config"
)

// Client wraps the Spotify Web API with client-credentials authentication.
// The access token is fetched lazily on the first request and reused until
// expiry; concurrent first requests share a single acquisition through the
// oauth2 transport.
type Client struct {
	client *spotify.Client
	market string
	locale string
	logger *logrus.Entry
}

var _ types.Catalog = (*Client)(nil)

// NewClient creates a catalog client from Spotify credentials. No network
// call happens here; authentication is deferred to the first request.
func NewClient(cfg config.SpotifyConfig, logger *logrus.Logger) (*Client, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, fmt.Errorf("spotify client ID and secret are required")
	}

	creds := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     spotifyauth.TokenURL,
	}
	httpClient := creds.Client(context.Background())

	entry := logger.WithFields(logrus.Fields{
		"component": "catalog_client",
		"market":    cfg.Market,
	})
	entry.Debug("Catalog client initialized")

	return &Client{
		client: spotify.New(httpClient),
		market: cfg.Market,
		locale: cfg.Locale,
		logger: entry,
	}, nil
}

// parseSearchTypes turns a comma-separated type list ("track,artist") into
// the library's search type bitmask.
func parseSearchTypes(searchType string) (spotify.SearchType, error) {
	var mask spotify.SearchType
	for _, part := range strings.Split(searchType, ",") {
		switch strings.TrimSpace(strings.ToLower(part)) {
		case "track":
			mask |= spotify.SearchTypeTrack
		case "artist":
			mask |= spotify.SearchTypeArtist
		case "album":
			mask |= spotify.SearchTypeAlbum
		case "playlist":
			mask |= spotify.SearchTypePlaylist
		case "":
		default:
			return 0, fmt.Errorf("unsupported search type %q", part)
		}
	}
	if mask == 0 {
		return 0, fmt.Errorf("no search types in %q", searchType)
	}
	return mask, nil
}

func pageOpts(limit, offset int) []spotify.RequestOption {
	return []spotify.RequestOption{spotify.Limit(limit), spotify.Offset(offset)}
}

// Search runs a query against the given categories. searchType is a
// comma-separated subset of track, artist, album and playlist.
func (c *Client) Search(ctx context.Context, query, searchType string, limit, offset int) (*types.SearchResults, error) {
	mask, err := parseSearchTypes(searchType)
	if err != nil {
		return nil, err
	}

	c.logger.WithFields(logrus.Fields{
		"operation":   "search",
		"query":       query,
		"search_type": searchType,
		"limit":       limit,
		"offset":      offset,
	}).Debug("Searching catalog")

	opts := append(pageOpts(limit, offset), spotify.Market(c.market))
	result, err := c.client.Search(ctx, query, mask, opts...)
	if err != nil {
		return nil, fmt.Errorf("searching for %q: %w", query, err)
	}
	return mapSearchResults(result), nil
}

// SearchAll searches all four categories at once.
func (c *Client) SearchAll(ctx context.Context, query string, limit, offset int) (*types.SearchResults, error) {
	return c.Search(ctx, query, "track,artist,album,playlist", limit, offset)
}

// GetTracks fetches full track objects by id.
func (c *Client) GetTracks(ctx context.Context, ids []string) ([]types.Track, error) {
	tracks, err := c.client.GetTracks(ctx, spotifyIDs(ids), spotify.Market(c.market))
	if err != nil {
		return nil, fmt.Errorf("fetching tracks: %w", err)
	}

	out := make([]types.Track, 0, len(tracks))
	for _, t := range tracks {
		if t != nil {
			out = append(out, mapFullTrack(*t))
		}
	}
	return out, nil
}

// GetArtists fetches full artist objects by id.
func (c *Client) GetArtists(ctx context.Context, ids []string) ([]types.Artist, error) {
	artists, err := c.client.GetArtists(ctx, spotifyIDs(ids)...)
	if err != nil {
		return nil, fmt.Errorf("fetching artists: %w", err)
	}

	out := make([]types.Artist, 0, len(artists))
	for _, a := range artists {
		if a != nil {
			out = append(out, mapFullArtist(*a))
		}
	}
	return out, nil
}

// GetArtistTopTracks returns an artist's top tracks in the configured
// market.
func (c *Client) GetArtistTopTracks(ctx context.Context, artistID string) ([]types.Track, error) {
	tracks, err := c.client.GetArtistsTopTracks(ctx, spotify.ID(artistID), c.market)
	if err != nil {
		return nil, fmt.Errorf("fetching top tracks for artist %s: %w", artistID, err)
	}
	return mapFullTracks(tracks), nil
}

// GetArtistAlbums pages through an artist's albums and singles.
func (c *Client) GetArtistAlbums(ctx context.Context, artistID string, limit, offset int) (*types.AlbumPage, error) {
	albumTypes := []spotify.AlbumType{spotify.AlbumTypeAlbum, spotify.AlbumTypeSingle}
	opts := append(pageOpts(limit, offset), spotify.Market(c.market))

	page, err := c.client.GetArtistAlbums(ctx, spotify.ID(artistID), albumTypes, opts...)
	if err != nil {
		return nil, fmt.Errorf("fetching albums for artist %s: %w", artistID, err)
	}
	return mapAlbumPage(page), nil
}

// GetRelatedArtists returns artists similar to the given one.
func (c *Client) GetRelatedArtists(ctx context.Context, artistID string) ([]types.Artist, error) {
	artists, err := c.client.GetRelatedArtists(ctx, spotify.ID(artistID))
	if err != nil {
		return nil, fmt.Errorf("fetching related artists for %s: %w", artistID, err)
	}
	return mapFullArtists(artists), nil
}

// GetAlbums fetches full album objects by id.
func (c *Client) GetAlbums(ctx context.Context, ids []string) ([]types.Album, error) {
	albums, err := c.client.GetAlbums(ctx, spotifyIDs(ids), spotify.Market(c.market))
	if err != nil {
		return nil, fmt.Errorf("fetching albums: %w", err)
	}

	out := make([]types.Album, 0, len(albums))
	for _, a := range albums {
		if a != nil {
			out = append(out, mapFullAlbum(a))
		}
	}
	return out, nil
}

// GetAlbumTracks pages through an album's track listing.
func (c *Client) GetAlbumTracks(ctx context.Context, albumID string, limit, offset int) (*types.TrackPage, error) {
	opts := append(pageOpts(limit, offset), spotify.Market(c.market))
	page, err := c.client.GetAlbumTracks(ctx, spotify.ID(albumID), opts...)
	if err != nil {
		return nil, fmt.Errorf("fetching tracks for album %s: %w", albumID, err)
	}

	items := make([]types.Track, 0, len(page.Tracks))
	for _, t := range page.Tracks {
		items = append(items, mapSimpleTrack(t, t.Album))
	}
	return &types.TrackPage{
		Items:    items,
		Total:    int(page.Total),
		Limit:    int(page.Limit),
		Offset:   int(page.Offset),
		Next:     page.Next,
		Previous: page.Previous,
	}, nil
}

// GetNewReleases returns newly released albums for the configured market.
func (c *Client) GetNewReleases(ctx context.Context, limit, offset int) (*types.AlbumPage, error) {
	opts := append(pageOpts(limit, offset), spotify.Country(c.market))
	page, err := c.client.NewReleases(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("fetching new releases: %w", err)
	}
	return mapAlbumPage(page), nil
}

// GetFeaturedPlaylists returns the editorially featured playlists. The
// accompanying message is logged, not surfaced.
func (c *Client) GetFeaturedPlaylists(ctx context.Context, limit, offset int) (*types.PlaylistPage, error) {
	opts := append(pageOpts(limit, offset), spotify.Country(c.market), spotify.Locale(c.locale))
	message, page, err := c.client.FeaturedPlaylists(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("fetching featured playlists: %w", err)
	}

	c.logger.WithFields(logrus.Fields{
		"operation": "get_featured_playlists",
		"message":   message,
	}).Debug("Fetched featured playlists")

	return mapPlaylistPage(page), nil
}

// GetCategories returns the browse categories for the configured market.
func (c *Client) GetCategories(ctx context.Context, limit, offset int) (*types.CategoryPage, error) {
	opts := append(pageOpts(limit, offset), spotify.Country(c.market), spotify.Locale(c.locale))
	page, err := c.client.GetCategories(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("fetching categories: %w", err)
	}
	return mapCategoryPage(page), nil
}

// GetCategory returns a single browse category.
func (c *Client) GetCategory(ctx context.Context, categoryID string) (*types.Category, error) {
	category, err := c.client.GetCategory(ctx, categoryID, spotify.Country(c.market), spotify.Locale(c.locale))
	if err != nil {
		return nil, fmt.Errorf("fetching category %s: %w", categoryID, err)
	}
	mapped := mapCategory(category)
	return &mapped, nil
}

// GetPlaylistsByCategory finds playlists for a category by searching with a
// phrase derived from the id. The dedicated category-playlists endpoint
// returns thin, often stale results, so the search path is deliberate.
func (c *Client) GetPlaylistsByCategory(ctx context.Context, categoryID string, limit, offset int) (*types.PlaylistPage, error) {
	terms := CategorySearchTerms(categoryID)

	c.logger.WithFields(logrus.Fields{
		"operation":    "get_playlists_by_category",
		"category_id":  categoryID,
		"search_terms": terms,
	}).Debug("Resolving category to playlist search")

	results, err := c.Search(ctx, terms, "playlist", limit, offset)
	if err != nil {
		return nil, fmt.Errorf("fetching playlists for category %s: %w", categoryID, err)
	}
	if results.Playlists == nil {
		return &types.PlaylistPage{}, nil
	}
	return results.Playlists, nil
}

// GetRecommendations returns tracks recommended from the given seeds. At
// least one seed track, artist or genre is required.
func (c *Client) GetRecommendations(ctx context.Context, seeds types.Seeds, limit int) ([]types.Track, error) {
	if len(seeds.Tracks) == 0 && len(seeds.Artists) == 0 && len(seeds.Genres) == 0 {
		return nil, fmt.Errorf("at least one recommendation seed is required")
	}

	apiSeeds := spotify.Seeds{
		Tracks:  spotifyIDs(seeds.Tracks),
		Artists: spotifyIDs(seeds.Artists),
		Genres:  seeds.Genres,
	}

	recs, err := c.client.GetRecommendations(ctx, apiSeeds, nil, spotify.Limit(limit), spotify.Market(c.market))
	if err != nil {
		return nil, fmt.Errorf("fetching recommendations: %w", err)
	}

	out := make([]types.Track, 0, len(recs.Tracks))
	for _, t := range recs.Tracks {
		out = append(out, mapSimpleTrack(t, t.Album))
	}
	return out, nil
}

// GetPlaylist fetches a single playlist's metadata.
func (c *Client) GetPlaylist(ctx context.Context, playlistID string) (*types.Playlist, error) {
	playlist, err := c.client.GetPlaylist(ctx, spotify.ID(playlistID), spotify.Market(c.market))
	if err != nil {
		return nil, fmt.Errorf("fetching playlist %s: %w", playlistID, err)
	}
	return mapFullPlaylist(playlist), nil
}

// GetPlaylistTracks pages through a playlist's tracks. Episode entries and
// removed tracks come back as nil items and are skipped.
func (c *Client) GetPlaylistTracks(ctx context.Context, playlistID string, limit, offset int) (*types.TrackPage, error) {
	opts := append(pageOpts(limit, offset), spotify.Market(c.market))
	page, err := c.client.GetPlaylistItems(ctx, spotify.ID(playlistID), opts...)
	if err != nil {
		return nil, fmt.Errorf("fetching tracks for playlist %s: %w", playlistID, err)
	}

	items := make([]types.Track, 0, len(page.Items))
	for _, item := range page.Items {
		if item.Track.Track == nil {
			continue
		}
		items = append(items, mapFullTrack(*item.Track.Track))
	}
	return &types.TrackPage{
		Items:    items,
		Total:    int(page.Total),
		Limit:    int(page.Limit),
		Offset:   int(page.Offset),
		Next:     page.Next,
		Previous: page.Previous,
	}, nil
}

func spotifyIDs(ids []string) []spotify.ID {
	out := make([]spotify.ID, 0, len(ids))
	for _, id := range ids {
		out = append(out, spotify.ID(id))
	}
	return out
}
