package player

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/tunepeek/tunepeek/internal/types"
)

// RepeatMode controls what happens when a track reaches its natural end.
type RepeatMode string

// Repeat modes.
const (
	RepeatNone RepeatMode = "none"
	RepeatOne  RepeatMode = "one"
	RepeatAll  RepeatMode = "all"
)

// ContextInfo carries the album or playlist a track is being played from.
// It only overrides the artwork and album name shown while playing; the
// track's preview URL and identity stay its own.
type ContextInfo struct {
	Album    *types.Album
	Playlist *types.Playlist
}

// State is the observable playback state. CurrentTime and Duration are in
// seconds, fed back by the rendering layer's audio element.
type State struct {
	CurrentTrack *types.Track `json:"current_track"`
	IsPlaying    bool         `json:"is_playing"`
	CurrentTime  float64      `json:"current_time"`
	Duration     float64      `json:"duration"`
	Volume       float64      `json:"volume"`
	Muted        bool         `json:"muted"`
	Shuffled     bool         `json:"shuffled"`
	Repeat       RepeatMode   `json:"repeat"`
}

// PreviewEnhancer fills in a track's preview URL when it is missing.
type PreviewEnhancer interface {
	EnhanceTrack(ctx context.Context, track types.Track) (types.Track, error)
}

// Coordinator is the single source of truth for what is playing. All
// playback transitions go through it; any number of listeners observe state
// changes synchronously.
//
// Concurrent PlayTrack calls are not serialized against each other: if two
// calls race through preview resolution, whichever finishes last determines
// the current track. Known limitation, kept rather than papered over.
type Coordinator struct {
	enhancer PreviewEnhancer
	tracker  *Tracker
	logger   *logrus.Logger

	mu           sync.Mutex
	state        State
	queue        []types.Track
	queueIndex   int
	queueContext *ContextInfo

	listenersMu sync.Mutex
	listeners   map[int]func(State)
	nextID      int
}

// NewCoordinator creates a coordinator with default transport settings.
func NewCoordinator(enhancer PreviewEnhancer, tracker *Tracker, logger *logrus.Logger) *Coordinator {
	return &Coordinator{
		enhancer: enhancer,
		tracker:  tracker,
		logger:   logger,
		state: State{
			Volume: 0.7,
			Repeat: RepeatNone,
		},
		queueIndex: -1,
		listeners:  make(map[int]func(State)),
	}
}

// Tracker returns the per-track state tracker rows render from.
func (c *Coordinator) Tracker() *Tracker {
	return c.tracker
}

// Subscribe registers a listener notified synchronously with a state
// snapshot after every mutation. The returned function cancels the
// subscription.
func (c *Coordinator) Subscribe(fn func(State)) (cancel func()) {
	c.listenersMu.Lock()
	defer c.listenersMu.Unlock()

	id := c.nextID
	c.nextID++
	c.listeners[id] = fn

	return func() {
		c.listenersMu.Lock()
		defer c.listenersMu.Unlock()
		delete(c.listeners, id)
	}
}

// Snapshot returns the current playback state.
func (c *Coordinator) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// PlayTrack loads and plays a track, resolving its preview URL through the
// enhancer when missing. Resolution failure leaves the previous track
// untouched: it is logged, the row state is cleared, and nothing is
// published.
func (c *Coordinator) PlayTrack(ctx context.Context, track types.Track, info *ContextInfo) {
	// Only one row may show as active, so every play attempt starts from a
	// clean slate.
	c.tracker.ClearAll()
	c.tracker.SetState(track.ID, TrackState{
		CurrentTrackID:     track.ID,
		IsSearchingPreview: true,
	})

	enhanced := applyContext(track, info)

	if !enhanced.HasPreview() {
		resolved, err := c.enhancer.EnhanceTrack(ctx, enhanced)
		if err != nil {
			c.logger.WithFields(logrus.Fields{
				"component":  "playback_coordinator",
				"operation":  "play_track",
				"track_id":   track.ID,
				"track_name": track.Name,
			}).WithError(err).Error("Failed to resolve preview, keeping previous playback state")
			c.tracker.SetState(track.ID, TrackState{})
			return
		}
		enhanced = resolved
	}

	c.mu.Lock()
	c.state.CurrentTrack = &enhanced
	c.state.IsPlaying = true
	c.state.CurrentTime = 0
	c.state.Duration = 0
	snapshot := c.state
	c.mu.Unlock()

	c.tracker.SetState(track.ID, TrackState{
		IsPlaying:      true,
		CurrentTrackID: track.ID,
	})

	c.logger.WithFields(logrus.Fields{
		"component":   "playback_coordinator",
		"operation":   "play_track",
		"track_id":    enhanced.ID,
		"track_name":  enhanced.Name,
		"has_preview": enhanced.HasPreview(),
	}).Info("Now playing")

	c.notify(snapshot)
}

// PlayQueue replaces the queue with the given tracks and plays the one at
// startIndex. Returns false without side effects when the queue would be
// empty or the index is out of bounds.
func (c *Coordinator) PlayQueue(ctx context.Context, tracks []types.Track, startIndex int, info *ContextInfo) bool {
	if len(tracks) == 0 || startIndex < 0 || startIndex >= len(tracks) {
		return false
	}

	c.mu.Lock()
	c.queue = make([]types.Track, len(tracks))
	copy(c.queue, tracks)
	c.queueIndex = startIndex
	c.queueContext = info
	track := c.queue[startIndex]
	c.mu.Unlock()

	c.PlayTrack(ctx, track, info)
	return true
}

// PlayNext advances to the next queued track. No-op returning false at the
// end of the queue; no wraparound.
func (c *Coordinator) PlayNext(ctx context.Context) bool {
	c.mu.Lock()
	if c.queueIndex < 0 || c.queueIndex+1 >= len(c.queue) {
		c.mu.Unlock()
		return false
	}
	c.queueIndex++
	track := c.queue[c.queueIndex]
	info := c.queueContext
	c.mu.Unlock()

	c.PlayTrack(ctx, track, info)
	return true
}

// PlayPrevious moves back to the previous queued track. No-op returning
// false at the start of the queue.
func (c *Coordinator) PlayPrevious(ctx context.Context) bool {
	c.mu.Lock()
	if c.queueIndex <= 0 || len(c.queue) == 0 {
		c.mu.Unlock()
		return false
	}
	c.queueIndex--
	track := c.queue[c.queueIndex]
	info := c.queueContext
	c.mu.Unlock()

	c.PlayTrack(ctx, track, info)
	return true
}

// Queue returns a copy of the queued tracks and the current index (-1 when
// the queue is inactive).
func (c *Coordinator) Queue() ([]types.Track, int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	tracks := make([]types.Track, len(c.queue))
	copy(tracks, c.queue)
	return tracks, c.queueIndex
}

// HandleTrackEnd applies the repeat mode when a track finishes naturally:
// repeat-one restarts the same track, repeat-all advances through the queue
// and stops at its end, and no-repeat stops after the current track.
func (c *Coordinator) HandleTrackEnd(ctx context.Context) {
	c.mu.Lock()
	mode := c.state.Repeat
	c.mu.Unlock()

	switch mode {
	case RepeatOne:
		c.mu.Lock()
		c.state.CurrentTime = 0
		c.state.IsPlaying = c.state.CurrentTrack != nil
		snapshot := c.state
		c.mu.Unlock()
		c.notify(snapshot)
	case RepeatAll:
		if !c.PlayNext(ctx) {
			c.Stop()
		}
	default:
		c.Stop()
	}
}

// TogglePlayPause pauses when playing and resumes when paused. It never
// changes the current track, and is a no-op when nothing is loaded.
func (c *Coordinator) TogglePlayPause() {
	c.mu.Lock()
	if c.state.CurrentTrack == nil {
		c.mu.Unlock()
		return
	}
	c.state.IsPlaying = !c.state.IsPlaying
	snapshot := c.state
	c.mu.Unlock()

	if snapshot.CurrentTrack != nil {
		c.tracker.SetState(snapshot.CurrentTrack.ID, TrackState{
			IsPlaying:      snapshot.IsPlaying,
			CurrentTrackID: snapshot.CurrentTrack.ID,
		})
	}

	c.notify(snapshot)
}

// Stop halts playback and rewinds to the start. The current track stays
// loaded.
func (c *Coordinator) Stop() {
	c.mu.Lock()
	c.state.IsPlaying = false
	c.state.CurrentTime = 0
	snapshot := c.state
	c.mu.Unlock()

	if snapshot.CurrentTrack != nil {
		c.tracker.SetState(snapshot.CurrentTrack.ID, TrackState{
			CurrentTrackID: snapshot.CurrentTrack.ID,
		})
	}

	c.notify(snapshot)
}

// SetVolume sets the playback volume, clamped to [0, 1].
func (c *Coordinator) SetVolume(volume float64) {
	c.mu.Lock()
	c.state.Volume = clamp(volume, 0, 1)
	snapshot := c.state
	c.mu.Unlock()
	c.notify(snapshot)
}

// ToggleMute flips the mute flag without touching the volume level.
func (c *Coordinator) ToggleMute() {
	c.mu.Lock()
	c.state.Muted = !c.state.Muted
	snapshot := c.state
	c.mu.Unlock()
	c.notify(snapshot)
}

// ToggleShuffle flips the shuffle flag.
func (c *Coordinator) ToggleShuffle() {
	c.mu.Lock()
	c.state.Shuffled = !c.state.Shuffled
	snapshot := c.state
	c.mu.Unlock()
	c.notify(snapshot)
}

// SetRepeatMode sets the repeat mode directly.
func (c *Coordinator) SetRepeatMode(mode RepeatMode) {
	c.mu.Lock()
	c.state.Repeat = mode
	snapshot := c.state
	c.mu.Unlock()
	c.notify(snapshot)
}

// CycleRepeat advances the repeat mode: none → all → one → none.
func (c *Coordinator) CycleRepeat() RepeatMode {
	c.mu.Lock()
	switch c.state.Repeat {
	case RepeatNone:
		c.state.Repeat = RepeatAll
	case RepeatAll:
		c.state.Repeat = RepeatOne
	default:
		c.state.Repeat = RepeatNone
	}
	mode := c.state.Repeat
	snapshot := c.state
	c.mu.Unlock()

	c.notify(snapshot)
	return mode
}

// Seek moves the playhead, clamped to [0, duration].
func (c *Coordinator) Seek(seconds float64) {
	c.mu.Lock()
	c.state.CurrentTime = clamp(seconds, 0, c.state.Duration)
	snapshot := c.state
	c.mu.Unlock()
	c.notify(snapshot)
}

// UpdateCurrentTime records playhead progress reported by the audio layer.
func (c *Coordinator) UpdateCurrentTime(seconds float64) {
	c.mu.Lock()
	upper := c.state.Duration
	if upper <= 0 {
		// Duration not yet known; accept any non-negative position.
		upper = seconds
	}
	c.state.CurrentTime = clamp(seconds, 0, upper)
	snapshot := c.state
	c.mu.Unlock()
	c.notify(snapshot)
}

// UpdateDuration records the clip duration reported by the audio layer.
func (c *Coordinator) UpdateDuration(seconds float64) {
	c.mu.Lock()
	if seconds < 0 {
		seconds = 0
	}
	c.state.Duration = seconds
	if c.state.CurrentTime > seconds && seconds > 0 {
		c.state.CurrentTime = seconds
	}
	snapshot := c.state
	c.mu.Unlock()
	c.notify(snapshot)
}

func (c *Coordinator) notify(snapshot State) {
	c.listenersMu.Lock()
	fns := make([]func(State), 0, len(c.listeners))
	for _, fn := range c.listeners {
		fns = append(fns, fn)
	}
	c.listenersMu.Unlock()

	for _, fn := range fns {
		fn(snapshot)
	}
}

// applyContext overrides the displayed album art and name with the playlist
// or album the track is played from. Album context applies first, playlist
// second, so a playlist override wins when both are present.
func applyContext(track types.Track, info *ContextInfo) types.Track {
	if info == nil {
		return track
	}

	if info.Album != nil {
		if len(info.Album.Images) > 0 {
			track.Album.Images = info.Album.Images
		}
		if info.Album.Name != "" {
			track.Album.Name = info.Album.Name
		}
	}

	if info.Playlist != nil {
		if len(info.Playlist.Images) > 0 {
			track.Album.Images = info.Playlist.Images
		}
		if info.Playlist.Name != "" {
			track.Album.Name = info.Playlist.Name
		}
	}

	return track
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
