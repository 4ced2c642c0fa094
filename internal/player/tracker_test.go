package player

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTracker_SetAndQueryState(t *testing.T) {
	tests := []struct {
		name            string
		state           TrackState
		expectPlaying   bool
		expectSearching bool
	}{
		{
			name:            "playing track",
			state:           TrackState{IsPlaying: true, CurrentTrackID: "track1"},
			expectPlaying:   true,
			expectSearching: false,
		},
		{
			name:            "searching for preview",
			state:           TrackState{CurrentTrackID: "track1", IsSearchingPreview: true},
			expectPlaying:   false,
			expectSearching: true,
		},
		{
			name:            "cleared state",
			state:           TrackState{},
			expectPlaying:   false,
			expectSearching: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker := NewTracker()
			tracker.SetState("track1", tt.state)

			assert.Equal(t, tt.expectPlaying, tracker.IsTrackPlaying("track1"))
			assert.Equal(t, tt.expectSearching, tracker.IsTrackSearchingPreview("track1"))
		})
	}
}

func TestTracker_UnknownTrackIsIdle(t *testing.T) {
	tracker := NewTracker()

	assert.False(t, tracker.IsTrackPlaying("missing"))
	assert.False(t, tracker.IsTrackSearchingPreview("missing"))
	assert.Equal(t, TrackState{}, tracker.State("missing"))
}

func TestTracker_ClearState(t *testing.T) {
	tracker := NewTracker()
	tracker.SetState("track1", TrackState{IsPlaying: true, CurrentTrackID: "track1"})
	tracker.SetState("track2", TrackState{IsPlaying: true, CurrentTrackID: "track2"})

	tracker.ClearState("track1")

	assert.False(t, tracker.IsTrackPlaying("track1"))
	assert.True(t, tracker.IsTrackPlaying("track2"))

	tracker.ClearAll()

	assert.False(t, tracker.IsTrackPlaying("track2"))
	assert.Equal(t, 0, tracker.playingCount())
}

func TestTracker_ConcurrentAccess(t *testing.T) {
	tracker := NewTracker()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			tracker.SetState("track1", TrackState{IsPlaying: true, CurrentTrackID: "track1"})
		}()
		go func() {
			defer wg.Done()
			tracker.IsTrackPlaying("track1")
		}()
	}
	wg.Wait()

	assert.True(t, tracker.IsTrackPlaying("track1"))
}
