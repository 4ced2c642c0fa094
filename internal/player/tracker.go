// Package player owns playback state: what track is loaded, whether it is
// playing, transport settings, the play queue, and per-track row state for
// list rendering. It holds no audio pipeline; a rendering layer subscribes
// to coordinator state and drives the actual audio element.
package player

import "sync"

// TrackState is the per-track row state a track list needs to render a
// spinner or playing indicator for each row independently.
type TrackState struct {
	IsPlaying          bool   `json:"is_playing"`
	CurrentTrackID     string `json:"current_track_id"`
	IsSearchingPreview bool   `json:"is_searching_preview"`
}

// Tracker keeps TrackState per track id. At most one entry has
// IsPlaying=true at a time; the coordinator enforces this by clearing all
// entries before activating one.
type Tracker struct {
	mu     sync.RWMutex
	states map[string]TrackState
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{states: make(map[string]TrackState)}
}

// IsTrackPlaying reports whether the given track id is marked playing.
// Unknown ids are not playing.
func (t *Tracker) IsTrackPlaying(trackID string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.states[trackID].IsPlaying
}

// IsTrackSearchingPreview reports whether a preview lookup is in flight for
// the given track id.
func (t *Tracker) IsTrackSearchingPreview(trackID string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.states[trackID].IsSearchingPreview
}

// State returns the full state for a track id, zero-valued when unknown.
func (t *Tracker) State(trackID string) TrackState {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.states[trackID]
}

// SetState records the state for a track id.
func (t *Tracker) SetState(trackID string, state TrackState) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.states[trackID] = state
}

// ClearState removes the entry for a track id.
func (t *Tracker) ClearState(trackID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.states, trackID)
}

// ClearAll removes every entry. Called at the start of each play attempt so
// only one row ever shows as active.
func (t *Tracker) ClearAll() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.states = make(map[string]TrackState)
}

// playingCount returns how many entries are marked playing. Test helper for
// the at-most-one invariant.
func (t *Tracker) playingCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	count := 0
	for _, state := range t.states {
		if state.IsPlaying {
			count++
		}
	}
	return count
}
