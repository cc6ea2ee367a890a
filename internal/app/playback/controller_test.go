package playback

import (
	"fmt"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa030/mediadeck/internal/domain/playlist"
)

// fakeEngine records commands and lets tests inject failures.
type fakeEngine struct {
	calls    []string
	state    EngineState
	volume   float64
	loadErr  error
	playErr  error
	pauseErr error
	notifyCh chan EngineNotification
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{
		volume:   1,
		notifyCh: make(chan EngineNotification, 8),
	}
}

func (f *fakeEngine) Load(path string) error {
	f.calls = append(f.calls, "load:"+path)
	if f.loadErr != nil {
		return f.loadErr
	}
	f.state = EngineStopped
	return nil
}

func (f *fakeEngine) Play() error {
	f.calls = append(f.calls, "play")
	if f.playErr != nil {
		return f.playErr
	}
	f.state = EnginePlaying
	return nil
}

func (f *fakeEngine) Pause() error {
	f.calls = append(f.calls, "pause")
	if f.pauseErr != nil {
		return f.pauseErr
	}
	f.state = EnginePaused
	return nil
}

func (f *fakeEngine) State() EngineState { return f.state }

func (f *fakeEngine) SetVolume(level float64) error {
	f.calls = append(f.calls, fmt.Sprintf("volume:%.1f", level))
	f.volume = level
	return nil
}

func (f *fakeEngine) Notifications() <-chan EngineNotification { return f.notifyCh }

func (f *fakeEngine) Close() error { return nil }

func (f *fakeEngine) reset() { f.calls = nil }

func (f *fakeEngine) loads() int {
	n := 0
	for _, c := range f.calls {
		if len(c) > 5 && c[:5] == "load:" {
			n++
		}
	}
	return n
}

func newTestController(t *testing.T, paths ...string) (*Controller, *fakeEngine) {
	t.Helper()
	eng := newFakeEngine()
	c := NewController(eng, Config{Loop: true, MuteOnLoad: true, Volume: 1, EventQueue: 256})
	t.Cleanup(c.Close)
	for _, p := range paths {
		c.Append(p)
	}
	return c, eng
}

// playing loads index and completes the load so the entry is playing.
func playing(t *testing.T, c *Controller, index int) {
	t.Helper()
	require.NoError(t, c.RequestPlay(index))
	snap := c.Snapshot()
	c.HandleLoaded(snap.Entries[index].Path, 0)
	require.Equal(t, StatePlaying, c.GetState())
}

func TestController_RequestPlay_LoadsNewEntry(t *testing.T) {
	c, eng := newTestController(t, "a.wav", "b.wav", "c.wav")

	require.NoError(t, c.RequestPlay(1))

	snap := c.Snapshot()
	assert.Equal(t, 1, snap.ActiveIndex)
	assert.Equal(t, StateLoading, snap.State)
	assert.Equal(t, playlist.StatusLoading, snap.Entries[1].Status)
	assert.Equal(t, []string{"load:b.wav"}, eng.calls)
}

func TestController_RequestPlay_EmptyPlaylist(t *testing.T) {
	c, eng := newTestController(t)

	err := c.RequestPlay(0)
	assert.True(t, errors.Is(err, ErrEmptyPlaylist))
	assert.Equal(t, StateIdle, c.GetState())
	assert.Empty(t, eng.calls)
}

func TestController_RequestPlay_InvalidIndex(t *testing.T) {
	c, eng := newTestController(t, "a.wav")

	err := c.RequestPlay(3)
	assert.True(t, errors.Is(err, playlist.ErrIndexOutOfRange))
	assert.Equal(t, StateIdle, c.GetState())
	assert.Empty(t, eng.calls)
}

func TestController_RequestPlay_TogglesActiveEntry(t *testing.T) {
	c, eng := newTestController(t, "a.wav", "b.wav")
	playing(t, c, 0)
	eng.reset()

	require.NoError(t, c.RequestPlay(0))
	assert.Equal(t, StatePaused, c.GetState())
	assert.Equal(t, playlist.StatusPaused, c.Snapshot().Entries[0].Status)

	require.NoError(t, c.RequestPlay(0))
	assert.Equal(t, StatePlaying, c.GetState())
	assert.Equal(t, playlist.StatusPlaying, c.Snapshot().Entries[0].Status)

	assert.Equal(t, []string{"pause", "play"}, eng.calls)
	assert.Zero(t, eng.loads())
}

func TestController_RequestPlay_PauseFailureKeepsPlaying(t *testing.T) {
	c, eng := newTestController(t, "a.wav")
	playing(t, c, 0)
	eng.pauseErr = errors.New("device busy")

	err := c.RequestPlay(0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEnginePauseFailed))
	assert.Equal(t, StatePlaying, c.GetState())
	assert.Equal(t, playlist.StatusPlaying, c.Snapshot().Entries[0].Status)
}

func TestController_RequestPlay_ResumeFailureIsError(t *testing.T) {
	c, eng := newTestController(t, "a.wav")
	playing(t, c, 0)
	require.NoError(t, c.RequestPlay(0)) // pause
	eng.playErr = errors.New("device gone")

	err := c.RequestPlay(0)
	assert.True(t, errors.Is(err, ErrEnginePlayFailed))
	assert.Equal(t, StateError, c.GetState())
	assert.Equal(t, playlist.StatusError, c.Snapshot().Entries[0].Status)
}

func TestController_RequestPlay_ResumesFinishedEntry(t *testing.T) {
	c, eng := newTestController(t, "a.wav")
	c.SetLoop(false)
	playing(t, c, 0)
	c.HandleFinished("a.wav")
	require.Equal(t, StateFinished, c.GetState())
	eng.reset()

	require.NoError(t, c.RequestPlay(0))
	assert.Equal(t, StatePlaying, c.GetState())
	assert.Equal(t, []string{"play"}, eng.calls)
}

func TestController_RequestPlay_SwitchResetsPreviousStatus(t *testing.T) {
	c, _ := newTestController(t, "a.wav", "b.wav")
	playing(t, c, 0)

	require.NoError(t, c.RequestPlay(1))

	snap := c.Snapshot()
	assert.Equal(t, playlist.StatusUnstarted, snap.Entries[0].Status)
	assert.Equal(t, playlist.StatusLoading, snap.Entries[1].Status)
}

func TestController_RequestPlay_DuplicatePathReloads(t *testing.T) {
	c, eng := newTestController(t, "a.wav", "a.wav")
	playing(t, c, 0)
	eng.reset()

	require.NoError(t, c.RequestPlay(1))

	assert.Equal(t, []string{"load:a.wav"}, eng.calls)
	assert.Equal(t, 1, c.Snapshot().ActiveIndex)
}

func TestController_RequestPlay_SynchronousLoadFailure(t *testing.T) {
	c, eng := newTestController(t, "a.wav")
	eng.loadErr = errors.New("no such file")

	err := c.RequestPlay(0)
	assert.True(t, errors.Is(err, ErrEngineLoadFailed))
	assert.Equal(t, StateError, c.GetState())
	assert.Equal(t, playlist.StatusError, c.Snapshot().Entries[0].Status)
}

func TestController_RequestPlayCurrent(t *testing.T) {
	t.Run("empty playlist", func(t *testing.T) {
		c, eng := newTestController(t)
		err := c.RequestPlayCurrent()
		assert.True(t, errors.Is(err, ErrEmptyPlaylist))
		assert.Equal(t, StateIdle, c.GetState())
		assert.Empty(t, eng.calls)
	})

	t.Run("nothing active plays first entry", func(t *testing.T) {
		c, eng := newTestController(t, "a.wav", "b.wav")
		require.NoError(t, c.RequestPlayCurrent())
		assert.Equal(t, 0, c.Snapshot().ActiveIndex)
		assert.Equal(t, []string{"load:a.wav"}, eng.calls)
	})

	t.Run("active entry toggles", func(t *testing.T) {
		c, eng := newTestController(t, "a.wav", "b.wav")
		playing(t, c, 1)
		eng.reset()
		require.NoError(t, c.RequestPlayCurrent())
		assert.Equal(t, StatePaused, c.GetState())
		assert.Equal(t, []string{"pause"}, eng.calls)
	})

	t.Run("selection plays selected entry", func(t *testing.T) {
		c, eng := newTestController(t, "a.wav", "b.wav", "c.wav")
		playing(t, c, 0)
		eng.reset()
		require.NoError(t, c.Select(2))
		require.NoError(t, c.RequestPlayCurrent())
		assert.Equal(t, 2, c.Snapshot().ActiveIndex)
		assert.Equal(t, -1, c.Snapshot().Pending)
		assert.Equal(t, []string{"load:c.wav"}, eng.calls)
	})

	t.Run("selection of same file loads the selected index", func(t *testing.T) {
		c, eng := newTestController(t, "a.wav", "b.wav", "a.wav")
		playing(t, c, 0)
		eng.reset()
		require.NoError(t, c.Select(2))
		require.NoError(t, c.RequestPlayCurrent())
		assert.Equal(t, 2, c.Snapshot().ActiveIndex)
		assert.Equal(t, StateLoading, c.GetState())
		assert.Equal(t, []string{"load:a.wav"}, eng.calls)
	})
}

func TestController_Open(t *testing.T) {
	t.Run("new file loads", func(t *testing.T) {
		c, eng := newTestController(t, "a.wav")
		playing(t, c, 0)
		eng.reset()

		idx, err := c.Open("b.wav")
		require.NoError(t, err)
		assert.Equal(t, 1, idx)
		assert.Equal(t, 1, c.Snapshot().ActiveIndex)
		assert.Equal(t, []string{"load:b.wav"}, eng.calls)
	})

	t.Run("active file toggles", func(t *testing.T) {
		c, eng := newTestController(t, "a.wav")
		playing(t, c, 0)
		eng.reset()

		idx, err := c.Open("a.wav")
		require.NoError(t, err)
		snap := c.Snapshot()
		assert.Equal(t, 1, idx)
		assert.Len(t, snap.Entries, 2)
		assert.Equal(t, 0, snap.ActiveIndex)
		assert.Equal(t, StatePaused, snap.State)
		assert.Equal(t, []string{"pause"}, eng.calls)
	})

	t.Run("pending selection loads the new entry", func(t *testing.T) {
		c, eng := newTestController(t, "a.wav", "b.wav")
		playing(t, c, 0)
		require.NoError(t, c.Select(1))
		eng.reset()

		idx, err := c.Open("a.wav")
		require.NoError(t, err)
		assert.Equal(t, 2, c.Snapshot().ActiveIndex)
		assert.Equal(t, 2, idx)
		assert.Equal(t, []string{"load:a.wav"}, eng.calls)
	})
}

func TestController_Next_Scenario(t *testing.T) {
	c, eng := newTestController(t, "A", "B", "C")
	playing(t, c, 0)
	eng.reset()

	require.NoError(t, c.RequestNext())
	snap := c.Snapshot()
	assert.Equal(t, 1, snap.ActiveIndex)
	assert.Equal(t, StateLoading, snap.State)
	assert.Equal(t, []string{"load:B"}, eng.calls)

	c.HandleLoaded("B", 0)
	snap = c.Snapshot()
	assert.Equal(t, StatePlaying, snap.State)
	assert.Equal(t, playlist.StatusPlaying, snap.Entries[1].Status)
}

func TestController_NextCyclic(t *testing.T) {
	for n := 1; n <= 5; n++ {
		for start := 0; start < n; start++ {
			t.Run(fmt.Sprintf("n=%d/start=%d", n, start), func(t *testing.T) {
				paths := make([]string, n)
				for i := range paths {
					paths[i] = fmt.Sprintf("track-%d", i)
				}
				c, _ := newTestController(t, paths...)
				require.NoError(t, c.RequestPlay(start))

				for i := 0; i < n; i++ {
					require.NoError(t, c.RequestNext())
				}
				assert.Equal(t, start, c.Snapshot().ActiveIndex)
			})
		}
	}
}

func TestController_PrevInvertsNext(t *testing.T) {
	for n := 1; n <= 5; n++ {
		for start := 0; start < n; start++ {
			t.Run(fmt.Sprintf("n=%d/start=%d", n, start), func(t *testing.T) {
				paths := make([]string, n)
				for i := range paths {
					paths[i] = fmt.Sprintf("track-%d", i)
				}
				c, _ := newTestController(t, paths...)
				require.NoError(t, c.RequestPlay(start))

				require.NoError(t, c.RequestNext())
				require.NoError(t, c.RequestPrev())
				assert.Equal(t, start, c.Snapshot().ActiveIndex)

				require.NoError(t, c.RequestPrev())
				require.NoError(t, c.RequestNext())
				assert.Equal(t, start, c.Snapshot().ActiveIndex)
			})
		}
	}
}

func TestController_SingleEntryNavigationIsNoop(t *testing.T) {
	c, eng := newTestController(t, "only.wav")
	playing(t, c, 0)
	eng.reset()

	require.NoError(t, c.RequestNext())
	require.NoError(t, c.RequestPrev())

	assert.Empty(t, eng.calls)
	assert.Equal(t, StatePlaying, c.GetState())
}

func TestController_NavigationWithoutActive(t *testing.T) {
	t.Run("next starts at first entry", func(t *testing.T) {
		c, eng := newTestController(t, "a", "b", "c")
		require.NoError(t, c.RequestNext())
		assert.Equal(t, 0, c.Snapshot().ActiveIndex)
		assert.Equal(t, []string{"load:a"}, eng.calls)
	})

	t.Run("prev starts at last entry", func(t *testing.T) {
		c, eng := newTestController(t, "a", "b", "c")
		require.NoError(t, c.RequestPrev())
		assert.Equal(t, 2, c.Snapshot().ActiveIndex)
		assert.Equal(t, []string{"load:c"}, eng.calls)
	})

	t.Run("empty playlist", func(t *testing.T) {
		c, _ := newTestController(t)
		assert.True(t, errors.Is(c.RequestNext(), ErrEmptyPlaylist))
		assert.True(t, errors.Is(c.RequestPrev(), ErrEmptyPlaylist))
	})
}

func TestController_NavigationFromSelection(t *testing.T) {
	c, eng := newTestController(t, "a", "b", "c", "d")
	playing(t, c, 0)
	eng.reset()

	require.NoError(t, c.Select(2))
	require.NoError(t, c.RequestNext())
	assert.Equal(t, 3, c.Snapshot().ActiveIndex)
	assert.Equal(t, -1, c.Snapshot().Pending)

	// Selection consumed: next advances from the active entry and wraps.
	require.NoError(t, c.RequestNext())
	assert.Equal(t, 0, c.Snapshot().ActiveIndex)

	require.NoError(t, c.Select(0))
	require.NoError(t, c.RequestPrev())
	assert.Equal(t, 3, c.Snapshot().ActiveIndex)
}

func TestController_SelectionOfActiveNeighbourIsNoop(t *testing.T) {
	c, eng := newTestController(t, "a", "b", "c")
	playing(t, c, 1)
	eng.reset()

	require.NoError(t, c.Select(0))
	require.NoError(t, c.RequestNext())

	assert.Empty(t, eng.calls)
	assert.Equal(t, -1, c.Snapshot().Pending)
}

func TestController_HandleLoaded_MutesAndPlays(t *testing.T) {
	c, eng := newTestController(t, "a.wav")
	require.NoError(t, c.RequestPlay(0))
	eng.reset()

	c.HandleLoaded("a.wav", 42*time.Second)

	assert.Equal(t, []string{"play", "volume:0.0"}, eng.calls)
	snap := c.Snapshot()
	assert.Equal(t, StatePlaying, snap.State)
	assert.Equal(t, 42*time.Second, snap.Entries[0].Length)
}

func TestController_HandleLoaded_UsesVolumeWhenNotMuted(t *testing.T) {
	eng := newFakeEngine()
	c := NewController(eng, Config{Loop: true, Volume: 0.5})
	defer c.Close()
	c.Append("a.wav")
	require.NoError(t, c.RequestPlay(0))

	c.HandleLoaded("a.wav", 0)

	assert.InDelta(t, 0.5, eng.volume, 0.0001)
}

func TestController_HandleLoaded_PlayFailure(t *testing.T) {
	c, eng := newTestController(t, "a.wav")
	require.NoError(t, c.RequestPlay(0))
	eng.playErr = errors.New("codec")

	c.HandleLoaded("a.wav", 0)

	snap := c.Snapshot()
	assert.Equal(t, StateError, snap.State)
	assert.Equal(t, playlist.StatusError, snap.Entries[0].Status)
}

func TestController_HandleLoaded_IgnoresStale(t *testing.T) {
	c, eng := newTestController(t, "a.wav", "b.wav")
	require.NoError(t, c.RequestPlay(0))
	require.NoError(t, c.RequestPlay(1)) // re-target while loading
	eng.reset()

	c.HandleLoaded("a.wav", 0)
	assert.Equal(t, StateLoading, c.GetState())
	assert.Empty(t, eng.calls)

	c.HandleLoaded("b.wav", 0)
	assert.Equal(t, StatePlaying, c.GetState())

	// A second completion for the same path is ignored once playing.
	eng.reset()
	c.HandleLoaded("b.wav", 0)
	assert.Empty(t, eng.calls)
}

func TestController_HandleFinished_Loops(t *testing.T) {
	c, eng := newTestController(t, "A")
	playing(t, c, 0)
	eng.reset()

	c.HandleFinished("A")

	snap := c.Snapshot()
	assert.Equal(t, []string{"play"}, eng.calls)
	assert.Equal(t, 1, snap.LoopCount)
	assert.Equal(t, StatePlaying, snap.State)
}

func TestController_LoopCountSpansEntries(t *testing.T) {
	c, _ := newTestController(t, "A", "B")
	playing(t, c, 0)
	c.HandleFinished("A")
	require.Equal(t, 1, c.Snapshot().LoopCount)

	require.NoError(t, c.RequestNext())
	assert.Equal(t, 1, c.Snapshot().LoopCount)
	c.HandleLoaded("B", 0)
	c.HandleFinished("B")

	snap := c.Snapshot()
	assert.Equal(t, 1, snap.ActiveIndex)
	assert.Equal(t, 2, snap.LoopCount)
}

func TestController_HandleFinished_LoopFailure(t *testing.T) {
	c, eng := newTestController(t, "A")
	playing(t, c, 0)
	eng.playErr = errors.New("device gone")

	c.HandleFinished("A")

	snap := c.Snapshot()
	assert.Equal(t, StateError, snap.State)
	assert.Equal(t, 0, snap.LoopCount)
	assert.Equal(t, playlist.StatusError, snap.Entries[0].Status)
}

func TestController_HandleFinished_NoLoop(t *testing.T) {
	c, eng := newTestController(t, "A", "B")
	c.SetLoop(false)
	playing(t, c, 0)
	eng.reset()

	c.HandleFinished("A")

	snap := c.Snapshot()
	assert.Empty(t, eng.calls)
	assert.Equal(t, StateFinished, snap.State)
	assert.Equal(t, playlist.StatusFinished, snap.Entries[0].Status)
	assert.Equal(t, 0, snap.ActiveIndex) // no auto-advance
}

func TestController_HandleFinished_IgnoresStale(t *testing.T) {
	c, eng := newTestController(t, "A", "B")
	playing(t, c, 0)
	require.NoError(t, c.RequestPlay(1))
	eng.reset()

	c.HandleFinished("A")

	assert.Empty(t, eng.calls)
	assert.Equal(t, StateLoading, c.GetState())
}

func TestController_LoadFailureThenRetry(t *testing.T) {
	c, eng := newTestController(t, "a", "b", "c")
	require.NoError(t, c.RequestPlay(2))

	c.HandleFailed("c", errors.New("unsupported format"))

	snap := c.Snapshot()
	assert.Equal(t, StateError, snap.State)
	assert.Equal(t, playlist.StatusError, snap.Entries[2].Status)

	eng.reset()
	require.NoError(t, c.RequestPlay(2))
	assert.Equal(t, []string{"load:c"}, eng.calls)
	assert.Equal(t, StateLoading, c.GetState())

	c.HandleLoaded("c", 0)
	snap = c.Snapshot()
	assert.Equal(t, StatePlaying, snap.State)
	assert.Equal(t, playlist.StatusPlaying, snap.Entries[2].Status)
}

func TestController_HandleFailed_IgnoresInactivePath(t *testing.T) {
	c, _ := newTestController(t, "a", "b")
	require.NoError(t, c.RequestPlay(1))

	c.HandleFailed("a", errors.New("late failure"))

	assert.Equal(t, StateLoading, c.GetState())
}

func TestController_ExternalPauseAndPlay(t *testing.T) {
	c, eng := newTestController(t, "a")
	playing(t, c, 0)

	eng.state = EnginePaused
	c.HandleEngine(EngineNotification{Type: NotifyPaused, Path: "a"})
	assert.Equal(t, StatePaused, c.GetState())
	assert.Equal(t, playlist.StatusPaused, c.Snapshot().Entries[0].Status)

	eng.state = EnginePlaying
	c.HandleEngine(EngineNotification{Type: NotifyPlayStarted, Path: "a"})
	assert.Equal(t, StatePlaying, c.GetState())
}

func TestController_IgnoresEchoOfOwnCommands(t *testing.T) {
	c, _ := newTestController(t, "a")
	playing(t, c, 0)

	// Pause then resume; the engine echoes both after the fact.
	require.NoError(t, c.RequestPlay(0))
	require.NoError(t, c.RequestPlay(0))
	require.Equal(t, StatePlaying, c.GetState())

	c.HandleEngine(EngineNotification{Type: NotifyPaused, Path: "a"})
	assert.Equal(t, StatePlaying, c.GetState())
	c.HandleEngine(EngineNotification{Type: NotifyPlayStarted, Path: "a"})
	assert.Equal(t, StatePlaying, c.GetState())
	assert.Equal(t, playlist.StatusPlaying, c.Snapshot().Entries[0].Status)
}

func TestController_ErrorEventsCarryCode(t *testing.T) {
	c, eng := newTestController(t, "a")
	eng.loadErr = errors.New("missing")

	_ = c.RequestPlay(0)

	var found *Event
	for len(c.Events()) > 0 {
		ev := <-c.Events()
		if ev.Type == EventError {
			found = &ev
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, CodeLoadFailed, Code(found.Err))
	require.NotNil(t, found.Entry)
	assert.Equal(t, "a", found.Entry.Path)
}

func TestController_ClosedRejectsRequests(t *testing.T) {
	eng := newFakeEngine()
	c := NewController(eng, DefaultConfig())
	c.Append("a")
	c.Close()
	c.Close() // idempotent

	assert.True(t, errors.Is(c.RequestPlay(0), ErrClosed))
	assert.True(t, errors.Is(c.RequestNext(), ErrClosed))
	assert.Empty(t, eng.calls)
}

func TestCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"empty", ErrEmptyPlaylist, CodeEmptyPlaylist},
		{"index", errors.Wrap(playlist.ErrIndexOutOfRange, "x"), CodeIndexOutOfRange},
		{"load", engineError(errors.New("x"), ErrEngineLoadFailed, "load"), CodeLoadFailed},
		{"play", engineError(nil, ErrEnginePlayFailed, "play"), CodePlayFailed},
		{"pause", engineError(nil, ErrEnginePauseFailed, "pause"), CodePauseFailed},
		{"loop", errors.Mark(engineError(nil, ErrEnginePlayFailed, "loop"), loopFailure), CodeLoopFailed},
		{"other", errors.New("boom"), CodeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Code(tt.err))
		})
	}
}
