// Package search drives paginated multi-category catalog search: debounced
// query input, offset accumulation across pages, and scroll-triggered
// loading of further pages.
package search

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tunepeek/tunepeek/internal/types"
)

// PageSize is the fixed number of items requested per category per page.
const PageSize = 20

// DefaultDebounce is the quiet window applied to query input before a
// search fires.
const DefaultDebounce = 500 * time.Millisecond

// scrollThreshold is how close to the bottom of the content, in pixels, the
// viewport must be before the next page is requested.
const scrollThreshold = 200.0

// LoadingState describes what the pager is currently doing.
type LoadingState string

// Loading states.
const (
	LoadingIdle      LoadingState = "idle"
	LoadingSearching LoadingState = "searching"
	LoadingMore      LoadingState = "loading-more"
)

// Snapshot is the synchronous read model rendering surfaces consume.
type Snapshot struct {
	Query         string
	SearchType    string
	Tracks        []types.Track
	Artists       []types.Artist
	Albums        []types.Album
	Playlists     []types.Playlist
	Offset        int
	TotalResults  int
	LoadedResults int
	HasMore       bool
	Loading       LoadingState
}

// Pager accumulates four-category search results page by page. Requests are
// serialized: a search or load-more in flight blocks the next trigger
// instead of racing it.
type Pager struct {
	catalog  types.Catalog
	logger   *logrus.Logger
	debounce time.Duration

	mu         sync.Mutex
	query      string
	searchType string
	tracks     []types.Track
	artists    []types.Artist
	albums     []types.Album
	playlists  []types.Playlist
	offset     int
	total      int
	loaded     int
	hasMore    bool
	loading    LoadingState

	timerMu   sync.Mutex
	timer     *time.Timer
	lastFired string
}

// NewPager creates a pager searching all categories with the default
// debounce window.
func NewPager(catalog types.Catalog, logger *logrus.Logger) *Pager {
	return &Pager{
		catalog:    catalog,
		logger:     logger,
		debounce:   DefaultDebounce,
		searchType: "all",
		loading:    LoadingIdle,
	}
}

// SetDebounce overrides the quiet window. Intended for tests and
// non-interactive callers.
func (p *Pager) SetDebounce(d time.Duration) {
	p.timerMu.Lock()
	defer p.timerMu.Unlock()
	p.debounce = d
}

// OnSearchInput handles raw query input. An empty or whitespace query
// resets all result sets immediately without firing a request. Anything
// else schedules a debounced search: only the most recent value within the
// quiet window fires, and a value identical to the last fired query is
// suppressed.
func (p *Pager) OnSearchInput(ctx context.Context, raw string) {
	trimmed := strings.TrimSpace(raw)

	p.timerMu.Lock()
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}

	if trimmed == "" {
		p.lastFired = ""
		p.timerMu.Unlock()
		p.Reset()
		return
	}

	if trimmed == p.lastFired {
		p.timerMu.Unlock()
		return
	}

	p.timer = time.AfterFunc(p.debounce, func() {
		p.timerMu.Lock()
		if trimmed == p.lastFired {
			p.timerMu.Unlock()
			return
		}
		p.lastFired = trimmed
		p.timerMu.Unlock()

		p.SearchNow(ctx, trimmed)
	})
	p.timerMu.Unlock()
}

// SearchNow bypasses the debounce window: it resets accumulated results and
// searches for the query from offset zero. Used by the debounce callback
// and by callers that manage their own input pacing.
func (p *Pager) SearchNow(ctx context.Context, query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		p.Reset()
		return
	}

	p.mu.Lock()
	p.query = query
	p.resetResultsLocked()
	p.mu.Unlock()

	p.search(ctx)
}

// OnSearchTypeChange switches the category filter ("all", "track",
// "artist", "album" or "playlist") and re-runs the current query from the
// first page.
func (p *Pager) OnSearchTypeChange(ctx context.Context, searchType string) {
	p.mu.Lock()
	p.searchType = searchType
	hasQuery := p.query != ""
	p.resetResultsLocked()
	p.mu.Unlock()

	if hasQuery {
		p.search(ctx)
	}
}

// LoadMore requests the next page. No-op returning false when a load is
// already in flight or no further pages are available.
func (p *Pager) LoadMore(ctx context.Context) bool {
	p.mu.Lock()
	if p.loading != LoadingIdle || !p.hasMore || p.query == "" {
		p.mu.Unlock()
		return false
	}
	p.offset += PageSize
	p.mu.Unlock()

	p.search(ctx)
	return true
}

// OnScroll fires LoadMore when the viewport is within the threshold of the
// content bottom, more results are available, nothing is in flight, and at
// least one result has already landed. Returns whether a load was
// triggered.
func (p *Pager) OnScroll(ctx context.Context, position, viewportHeight, contentHeight float64) bool {
	p.mu.Lock()
	nearBottom := position+viewportHeight >= contentHeight-scrollThreshold
	ready := nearBottom && p.hasMore && p.loading == LoadingIdle && p.loaded > 0
	p.mu.Unlock()

	if !ready {
		return false
	}
	return p.LoadMore(ctx)
}

// Reset clears the query and all accumulated results.
func (p *Pager) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.query = ""
	p.resetResultsLocked()
}

// Snapshot returns a copy of the pager's read model.
func (p *Pager) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	return Snapshot{
		Query:         p.query,
		SearchType:    p.searchType,
		Tracks:        append([]types.Track(nil), p.tracks...),
		Artists:       append([]types.Artist(nil), p.artists...),
		Albums:        append([]types.Album(nil), p.albums...),
		Playlists:     append([]types.Playlist(nil), p.playlists...),
		Offset:        p.offset,
		TotalResults:  p.total,
		LoadedResults: p.loaded,
		HasMore:       p.hasMore,
		Loading:       p.loading,
	}
}

func (p *Pager) resetResultsLocked() {
	p.tracks = nil
	p.artists = nil
	p.albums = nil
	p.playlists = nil
	p.offset = 0
	p.total = 0
	p.loaded = 0
	p.hasMore = false
	p.loading = LoadingIdle
}

// search dispatches one catalog request for the current query and offset
// and folds the response into the accumulated state. Catalog failures are
// logged and degrade to an empty page.
func (p *Pager) search(ctx context.Context) {
	p.mu.Lock()
	if p.query == "" {
		p.mu.Unlock()
		return
	}
	if p.offset == 0 {
		p.loading = LoadingSearching
	} else {
		p.loading = LoadingMore
	}
	query := p.query
	searchType := p.searchType
	offset := p.offset
	p.mu.Unlock()

	var (
		results *types.SearchResults
		err     error
	)
	if searchType == "" || searchType == "all" {
		results, err = p.catalog.SearchAll(ctx, query, PageSize, offset)
	} else {
		results, err = p.catalog.Search(ctx, query, searchType, PageSize, offset)
	}

	if err != nil {
		p.logger.WithFields(logrus.Fields{
			"component": "search_pager",
			"operation": "search",
			"query":     query,
			"offset":    offset,
		}).WithError(err).Error("Search request failed")

		p.mu.Lock()
		p.loading = LoadingIdle
		p.hasMore = false
		p.mu.Unlock()
		return
	}

	p.handleResults(results)
}

func (p *Pager) handleResults(results *types.SearchResults) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if results == nil {
		p.loading = LoadingIdle
		p.hasMore = false
		return
	}

	var newTracks []types.Track
	var newArtists []types.Artist
	var newAlbums []types.Album
	var newPlaylists []types.Playlist
	total := 0
	hasNext := false

	if results.Tracks != nil {
		newTracks = results.Tracks.Items
		total += results.Tracks.Total
		hasNext = hasNext || results.Tracks.Next != ""
	}
	if results.Artists != nil {
		newArtists = results.Artists.Items
		total += results.Artists.Total
		hasNext = hasNext || results.Artists.Next != ""
	}
	if results.Albums != nil {
		newAlbums = results.Albums.Items
		total += results.Albums.Total
		hasNext = hasNext || results.Albums.Next != ""
	}
	if results.Playlists != nil {
		newPlaylists = ValidPlaylists(results.Playlists.Items)
		total += results.Playlists.Total
		hasNext = hasNext || results.Playlists.Next != ""
	}

	newItems := len(newTracks) + len(newArtists) + len(newAlbums) + len(newPlaylists)

	if p.offset == 0 {
		p.tracks = newTracks
		p.artists = newArtists
		p.albums = newAlbums
		p.playlists = newPlaylists
		p.total = total
		p.loaded = newItems
	} else {
		p.tracks = append(p.tracks, newTracks...)
		p.artists = append(p.artists, newArtists...)
		p.albums = append(p.albums, newAlbums...)
		p.playlists = append(p.playlists, newPlaylists...)
		p.loaded += newItems
	}

	// hasMore needs all three: the response must claim a further page, this
	// page must have actually added items (first page exempt), and the
	// running total must not be exhausted. A response that advertises next
	// links but returns nothing would otherwise loop the scroll trigger
	// forever.
	p.hasMore = hasNext && (p.offset == 0 || newItems > 0) && p.loaded < p.total
	p.loading = LoadingIdle
}
