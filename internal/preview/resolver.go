package preview

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/tunepeek/tunepeek/internal/types"
)

// Resolver performs cache-through preview lookups. Backend failures are
// logged and cached as misses so the same pair is never retried within a
// session; callers only ever see "preview" or "no preview".
type Resolver struct {
	finder types.PreviewFinder
	cache  *Cache
	logger *logrus.Logger
}

// NewResolver creates a resolver over the given finder.
func NewResolver(finder types.PreviewFinder, logger *logrus.Logger) *Resolver {
	return &Resolver{
		finder: finder,
		cache:  NewCache(),
		logger: logger,
	}
}

// Resolve returns the preview URL for a track/artist pair, consulting the
// cache first. An empty return means no preview is available.
func (r *Resolver) Resolve(ctx context.Context, trackName, artistName string) string {
	if url, cached := r.cache.Lookup(trackName, artistName); cached {
		r.logger.WithFields(logrus.Fields{
			"component":  "preview_resolver",
			"track_name": trackName,
			"hit":        url != "",
		}).Debug("Using cached preview lookup result")
		return url
	}

	url, err := r.finder.FindPreview(ctx, trackName, artistName)
	if err != nil {
		// Cache the failure as a miss; a transient backend error should not
		// produce repeated lookups for the same pair this session.
		r.logger.WithFields(logrus.Fields{
			"component":   "preview_resolver",
			"track_name":  trackName,
			"artist_name": artistName,
		}).WithError(err).Warn("Preview lookup failed")
		r.cache.Store(trackName, artistName, "")
		return ""
	}

	r.cache.Store(trackName, artistName, url)
	return url
}

// EnhanceTrack returns a copy of the track with PreviewURL filled in when it
// was missing. Tracks that already carry a preview are returned unchanged
// without touching the backend. Unlike Resolve, a backend failure is
// reported to the caller; it is still cached as a miss so the pair is not
// retried this session.
func (r *Resolver) EnhanceTrack(ctx context.Context, track types.Track) (types.Track, error) {
	if track.HasPreview() {
		return track, nil
	}

	trackName, artistName := track.Name, track.FirstArtistName()
	if url, cached := r.cache.Lookup(trackName, artistName); cached {
		track.PreviewURL = url
		return track, nil
	}

	url, err := r.finder.FindPreview(ctx, trackName, artistName)
	if err != nil {
		r.cache.Store(trackName, artistName, "")
		return track, err
	}

	r.cache.Store(trackName, artistName, url)
	track.PreviewURL = url
	return track, nil
}

// ClearCache drops all memoized lookup results.
func (r *Resolver) ClearCache() {
	r.cache.Clear()
}

// CacheStats exposes the cache contents for diagnostics.
func (r *Resolver) CacheStats() CacheStats {
	return r.cache.Stats()
}
