package player

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tunepeek/tunepeek/internal/types"
)

type fakeEnhancer struct {
	previewURL string
	err        error
	calls      int
}

func (f *fakeEnhancer) EnhanceTrack(_ context.Context, track types.Track) (types.Track, error) {
	f.calls++
	if f.err != nil {
		return track, f.err
	}
	track.PreviewURL = f.previewURL
	return track, nil
}

func newTestCoordinator(enhancer *fakeEnhancer) *Coordinator {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewCoordinator(enhancer, NewTracker(), logger)
}

func testTrack(id, name, previewURL string) types.Track {
	return types.Track{
		ID:         id,
		Name:       name,
		URI:        "spotify:track:" + id,
		PreviewURL: previewURL,
		Artists:    []types.ArtistRef{{ID: "artist1", Name: "Test Artist"}},
		Album:      types.AlbumRef{ID: "album1", Name: "Test Album"},
	}
}

func TestCoordinator_PlayTrackWithPreview(t *testing.T) {
	enhancer := &fakeEnhancer{}
	c := newTestCoordinator(enhancer)

	c.PlayTrack(context.Background(), testTrack("t1", "Song One", "https://cdn.example.com/p1.mp3"), nil)

	state := c.Snapshot()
	require.NotNil(t, state.CurrentTrack)
	assert.Equal(t, "t1", state.CurrentTrack.ID)
	assert.True(t, state.IsPlaying)
	assert.Equal(t, float64(0), state.CurrentTime)
	assert.Equal(t, 0, enhancer.calls, "tracks with a preview skip resolution")
	assert.True(t, c.Tracker().IsTrackPlaying("t1"))
}

func TestCoordinator_PlayTrackResolvesMissingPreview(t *testing.T) {
	enhancer := &fakeEnhancer{previewURL: "https://cdn.example.com/resolved.mp3"}
	c := newTestCoordinator(enhancer)

	c.PlayTrack(context.Background(), testTrack("t1", "Song One", ""), nil)

	state := c.Snapshot()
	require.NotNil(t, state.CurrentTrack)
	assert.Equal(t, "https://cdn.example.com/resolved.mp3", state.CurrentTrack.PreviewURL)
	assert.Equal(t, 1, enhancer.calls)
	assert.True(t, state.IsPlaying)
}

func TestCoordinator_PlayTrackFailureKeepsPreviousTrack(t *testing.T) {
	c := newTestCoordinator(&fakeEnhancer{})
	c.PlayTrack(context.Background(), testTrack("t1", "Song One", "https://cdn.example.com/p1.mp3"), nil)

	c.enhancer = &fakeEnhancer{err: errors.New("resolver unavailable")}
	c.PlayTrack(context.Background(), testTrack("t2", "Song Two", ""), nil)

	state := c.Snapshot()
	require.NotNil(t, state.CurrentTrack)
	assert.Equal(t, "t1", state.CurrentTrack.ID, "failed play must not replace the current track")
	assert.False(t, c.Tracker().IsTrackSearchingPreview("t2"))
	assert.False(t, c.Tracker().IsTrackPlaying("t2"))
}

func TestCoordinator_AtMostOneTrackPlaying(t *testing.T) {
	c := newTestCoordinator(&fakeEnhancer{})

	c.PlayTrack(context.Background(), testTrack("t1", "Song One", "https://cdn.example.com/p1.mp3"), nil)
	c.PlayTrack(context.Background(), testTrack("t2", "Song Two", "https://cdn.example.com/p2.mp3"), nil)

	assert.False(t, c.Tracker().IsTrackPlaying("t1"))
	assert.True(t, c.Tracker().IsTrackPlaying("t2"))
	assert.Equal(t, 1, c.Tracker().playingCount())
}

func TestCoordinator_ContextOverrides(t *testing.T) {
	albumImages := []types.Image{{URL: "https://img.example.com/album.jpg"}}
	playlistImages := []types.Image{{URL: "https://img.example.com/playlist.jpg"}}

	tests := []struct {
		name       string
		info       *ContextInfo
		wantAlbum  string
		wantImages []types.Image
	}{
		{
			name:       "no context keeps track album",
			info:       nil,
			wantAlbum:  "Test Album",
			wantImages: nil,
		},
		{
			name:       "album context overrides",
			info:       &ContextInfo{Album: &types.Album{Name: "Context Album", Images: albumImages}},
			wantAlbum:  "Context Album",
			wantImages: albumImages,
		},
		{
			name: "playlist wins over album",
			info: &ContextInfo{
				Album:    &types.Album{Name: "Context Album", Images: albumImages},
				Playlist: &types.Playlist{Name: "Context Playlist", Images: playlistImages},
			},
			wantAlbum:  "Context Playlist",
			wantImages: playlistImages,
		},
		{
			name:       "empty context fields leave track untouched",
			info:       &ContextInfo{Album: &types.Album{}},
			wantAlbum:  "Test Album",
			wantImages: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCoordinator(&fakeEnhancer{})
			c.PlayTrack(context.Background(), testTrack("t1", "Song One", "https://cdn.example.com/p1.mp3"), tt.info)

			state := c.Snapshot()
			require.NotNil(t, state.CurrentTrack)
			assert.Equal(t, tt.wantAlbum, state.CurrentTrack.Album.Name)
			assert.Equal(t, tt.wantImages, state.CurrentTrack.Album.Images)
		})
	}
}

func TestCoordinator_TogglePlayPause(t *testing.T) {
	c := newTestCoordinator(&fakeEnhancer{})

	// No track loaded, toggling must stay stopped.
	c.TogglePlayPause()
	assert.False(t, c.Snapshot().IsPlaying)

	c.PlayTrack(context.Background(), testTrack("t1", "Song One", "https://cdn.example.com/p1.mp3"), nil)

	c.TogglePlayPause()
	state := c.Snapshot()
	assert.False(t, state.IsPlaying)
	assert.Equal(t, "t1", state.CurrentTrack.ID)
	assert.False(t, c.Tracker().IsTrackPlaying("t1"))

	c.TogglePlayPause()
	assert.True(t, c.Snapshot().IsPlaying)
	assert.True(t, c.Tracker().IsTrackPlaying("t1"))
}

func TestCoordinator_StopRewindsButKeepsTrack(t *testing.T) {
	c := newTestCoordinator(&fakeEnhancer{})
	c.PlayTrack(context.Background(), testTrack("t1", "Song One", "https://cdn.example.com/p1.mp3"), nil)
	c.UpdateDuration(30)
	c.UpdateCurrentTime(12.5)

	c.Stop()

	state := c.Snapshot()
	assert.False(t, state.IsPlaying)
	assert.Equal(t, float64(0), state.CurrentTime)
	require.NotNil(t, state.CurrentTrack)
	assert.Equal(t, "t1", state.CurrentTrack.ID)
}

func TestCoordinator_VolumeAndSeekClamping(t *testing.T) {
	tests := []struct {
		name       string
		volume     float64
		wantVolume float64
	}{
		{name: "in range", volume: 0.5, wantVolume: 0.5},
		{name: "below range", volume: -0.5, wantVolume: 0},
		{name: "above range", volume: 1.7, wantVolume: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCoordinator(&fakeEnhancer{})
			c.SetVolume(tt.volume)
			assert.Equal(t, tt.wantVolume, c.Snapshot().Volume)
		})
	}

	c := newTestCoordinator(&fakeEnhancer{})
	c.UpdateDuration(30)

	c.Seek(45)
	assert.Equal(t, float64(30), c.Snapshot().CurrentTime)

	c.Seek(-5)
	assert.Equal(t, float64(0), c.Snapshot().CurrentTime)
}

func TestCoordinator_CycleRepeat(t *testing.T) {
	c := newTestCoordinator(&fakeEnhancer{})

	assert.Equal(t, RepeatNone, c.Snapshot().Repeat)
	assert.Equal(t, RepeatAll, c.CycleRepeat())
	assert.Equal(t, RepeatOne, c.CycleRepeat())
	assert.Equal(t, RepeatNone, c.CycleRepeat())
}

func TestCoordinator_QueueNavigation(t *testing.T) {
	c := newTestCoordinator(&fakeEnhancer{})
	tracks := []types.Track{
		testTrack("t1", "Song One", "https://cdn.example.com/p1.mp3"),
		testTrack("t2", "Song Two", "https://cdn.example.com/p2.mp3"),
		testTrack("t3", "Song Three", "https://cdn.example.com/p3.mp3"),
	}

	assert.False(t, c.PlayQueue(context.Background(), nil, 0, nil))
	assert.False(t, c.PlayQueue(context.Background(), tracks, 3, nil))
	assert.False(t, c.PlayQueue(context.Background(), tracks, -1, nil))

	require.True(t, c.PlayQueue(context.Background(), tracks, 0, nil))
	assert.Equal(t, "t1", c.Snapshot().CurrentTrack.ID)

	assert.False(t, c.PlayPrevious(context.Background()), "no wraparound at queue start")

	require.True(t, c.PlayNext(context.Background()))
	assert.Equal(t, "t2", c.Snapshot().CurrentTrack.ID)

	require.True(t, c.PlayNext(context.Background()))
	assert.Equal(t, "t3", c.Snapshot().CurrentTrack.ID)

	assert.False(t, c.PlayNext(context.Background()), "no wraparound at queue end")

	require.True(t, c.PlayPrevious(context.Background()))
	assert.Equal(t, "t2", c.Snapshot().CurrentTrack.ID)

	queued, index := c.Queue()
	assert.Len(t, queued, 3)
	assert.Equal(t, 1, index)
}

func TestCoordinator_HandleTrackEnd(t *testing.T) {
	tracks := []types.Track{
		testTrack("t1", "Song One", "https://cdn.example.com/p1.mp3"),
		testTrack("t2", "Song Two", "https://cdn.example.com/p2.mp3"),
	}

	t.Run("repeat one restarts the same track", func(t *testing.T) {
		c := newTestCoordinator(&fakeEnhancer{})
		require.True(t, c.PlayQueue(context.Background(), tracks, 0, nil))
		c.SetRepeatMode(RepeatOne)
		c.UpdateDuration(30)
		c.UpdateCurrentTime(30)

		c.HandleTrackEnd(context.Background())

		state := c.Snapshot()
		assert.Equal(t, "t1", state.CurrentTrack.ID)
		assert.True(t, state.IsPlaying)
		assert.Equal(t, float64(0), state.CurrentTime)
	})

	t.Run("repeat all advances then stops at queue end", func(t *testing.T) {
		c := newTestCoordinator(&fakeEnhancer{})
		require.True(t, c.PlayQueue(context.Background(), tracks, 0, nil))
		c.SetRepeatMode(RepeatAll)

		c.HandleTrackEnd(context.Background())
		state := c.Snapshot()
		assert.Equal(t, "t2", state.CurrentTrack.ID)
		assert.True(t, state.IsPlaying)

		c.HandleTrackEnd(context.Background())
		state = c.Snapshot()
		assert.Equal(t, "t2", state.CurrentTrack.ID)
		assert.False(t, state.IsPlaying)
	})

	t.Run("no repeat stops playback", func(t *testing.T) {
		c := newTestCoordinator(&fakeEnhancer{})
		require.True(t, c.PlayQueue(context.Background(), tracks, 0, nil))

		c.HandleTrackEnd(context.Background())

		state := c.Snapshot()
		assert.False(t, state.IsPlaying)
		assert.Equal(t, "t1", state.CurrentTrack.ID)
	})
}

func TestCoordinator_SubscribeAndCancel(t *testing.T) {
	c := newTestCoordinator(&fakeEnhancer{})

	var got []State
	cancel := c.Subscribe(func(s State) {
		got = append(got, s)
	})

	c.SetVolume(0.3)
	require.Len(t, got, 1)
	assert.Equal(t, 0.3, got[0].Volume)

	c.PlayTrack(context.Background(), testTrack("t1", "Song One", "https://cdn.example.com/p1.mp3"), nil)
	require.Len(t, got, 2)
	assert.True(t, got[1].IsPlaying)

	cancel()
	c.SetVolume(0.9)
	assert.Len(t, got, 2, "cancelled subscribers receive no further updates")
}

func TestCoordinator_UpdateDurationClampsTime(t *testing.T) {
	c := newTestCoordinator(&fakeEnhancer{})
	c.UpdateCurrentTime(25)
	c.UpdateDuration(20)

	state := c.Snapshot()
	assert.Equal(t, float64(20), state.Duration)
	assert.Equal(t, float64(20), state.CurrentTime)
}
