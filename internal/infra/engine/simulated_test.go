package engine

import (
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa030/mediadeck/internal/app/playback"
)

func newTestSimulated(t *testing.T, cfg SimulatedConfig) *Simulated {
	t.Helper()
	if cfg.LoadDelayMs == 0 {
		cfg.LoadDelayMs = 1
	}
	if cfg.DurationMs == 0 {
		cfg.DurationMs = 5000
	}
	s := NewSimulated(cfg)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func nextNotification(t *testing.T, s *Simulated) playback.EngineNotification {
	t.Helper()
	select {
	case n := <-s.Notifications():
		return n
	case <-time.After(time.Second):
		t.Fatal("no notification received")
		return playback.EngineNotification{}
	}
}

func TestSimulated_LoadNotifiesLoaded(t *testing.T) {
	s := newTestSimulated(t, SimulatedConfig{DurationMs: 1234})

	require.NoError(t, s.Load("a.wav"))

	n := nextNotification(t, s)
	assert.Equal(t, playback.NotifyLoaded, n.Type)
	assert.Equal(t, "a.wav", n.Path)
	assert.Equal(t, 1234*time.Millisecond, n.Length)
	assert.Equal(t, playback.EngineStopped, s.State())
}

func TestSimulated_LoadFailure(t *testing.T) {
	s := newTestSimulated(t, SimulatedConfig{FailLoad: []string{"bad.wav"}})

	require.NoError(t, s.Load("bad.wav"))

	n := nextNotification(t, s)
	assert.Equal(t, playback.NotifyFailed, n.Type)
	assert.Equal(t, "bad.wav", n.Path)
	assert.Error(t, n.Err)
	assert.True(t, errors.Is(s.Play(), ErrNothingLoaded))
}

func TestSimulated_SupersededLoadIsSilent(t *testing.T) {
	s := newTestSimulated(t, SimulatedConfig{LoadDelayMs: 20})

	require.NoError(t, s.Load("a.wav"))
	require.NoError(t, s.Load("b.wav"))

	n := nextNotification(t, s)
	assert.Equal(t, "b.wav", n.Path)

	select {
	case extra := <-s.Notifications():
		t.Fatalf("unexpected notification: %+v", extra)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSimulated_PlayPauseResume(t *testing.T) {
	s := newTestSimulated(t, SimulatedConfig{})
	require.NoError(t, s.Load("a.wav"))
	nextNotification(t, s)

	require.NoError(t, s.Play())
	assert.Equal(t, playback.EnginePlaying, s.State())
	n := nextNotification(t, s)
	assert.Equal(t, playback.NotifyPlayStarted, n.Type)
	assert.Equal(t, "a.wav", n.Path)

	require.NoError(t, s.Pause())
	assert.Equal(t, playback.EnginePaused, s.State())
	n = nextNotification(t, s)
	assert.Equal(t, playback.NotifyPaused, n.Type)
	assert.Equal(t, "a.wav", n.Path)

	require.NoError(t, s.Play())
	assert.Equal(t, playback.EnginePlaying, s.State())
	assert.Equal(t, playback.NotifyPlayStarted, nextNotification(t, s).Type)
}

func TestSimulated_RepeatedCommandsAreSilent(t *testing.T) {
	s := newTestSimulated(t, SimulatedConfig{})
	require.NoError(t, s.Load("a.wav"))
	nextNotification(t, s)

	require.NoError(t, s.Pause())
	require.NoError(t, s.Play())
	require.NoError(t, s.Play())

	assert.Equal(t, playback.NotifyPlayStarted, nextNotification(t, s).Type)
	select {
	case extra := <-s.Notifications():
		t.Fatalf("unexpected notification: %+v", extra)
	case <-time.After(30 * time.Millisecond):
	}
}

func TestSimulated_FinishesAfterDuration(t *testing.T) {
	s := newTestSimulated(t, SimulatedConfig{DurationMs: 20})
	require.NoError(t, s.Load("a.wav"))
	nextNotification(t, s)

	require.NoError(t, s.Play())
	assert.Equal(t, playback.NotifyPlayStarted, nextNotification(t, s).Type)

	n := nextNotification(t, s)
	assert.Equal(t, playback.NotifyFinished, n.Type)
	assert.Equal(t, "a.wav", n.Path)
	assert.Equal(t, playback.EngineStopped, s.State())

	// Replay after finish starts over.
	require.NoError(t, s.Play())
	assert.Equal(t, playback.NotifyPlayStarted, nextNotification(t, s).Type)
	n = nextNotification(t, s)
	assert.Equal(t, playback.NotifyFinished, n.Type)
}

func TestSimulated_PausedDoesNotFinish(t *testing.T) {
	s := newTestSimulated(t, SimulatedConfig{DurationMs: 30})
	require.NoError(t, s.Load("a.wav"))
	nextNotification(t, s)

	require.NoError(t, s.Play())
	require.NoError(t, s.Pause())
	assert.Equal(t, playback.NotifyPlayStarted, nextNotification(t, s).Type)
	assert.Equal(t, playback.NotifyPaused, nextNotification(t, s).Type)

	select {
	case n := <-s.Notifications():
		t.Fatalf("unexpected notification while paused: %+v", n)
	case <-time.After(60 * time.Millisecond):
	}
}

func TestSimulated_PlayFailure(t *testing.T) {
	s := newTestSimulated(t, SimulatedConfig{FailPlay: []string{"a.wav"}})
	require.NoError(t, s.Load("a.wav"))
	nextNotification(t, s)

	assert.Error(t, s.Play())
	assert.Equal(t, playback.EngineStopped, s.State())
}

func TestSimulated_SetVolume(t *testing.T) {
	s := newTestSimulated(t, SimulatedConfig{})

	require.NoError(t, s.SetVolume(0))
	assert.Equal(t, 0.0, s.Volume())
	require.NoError(t, s.SetVolume(0.5))
	assert.Equal(t, 0.5, s.Volume())
	assert.Error(t, s.SetVolume(1.5))
	assert.Error(t, s.SetVolume(-0.1))
}

func TestSimulated_Close(t *testing.T) {
	s := NewSimulated(SimulatedConfig{LoadDelayMs: 1, DurationMs: 10})

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	_, ok := <-s.Notifications()
	assert.False(t, ok)
	assert.True(t, errors.Is(s.Load("a.wav"), ErrEngineClosed))
	assert.True(t, errors.Is(s.Play(), ErrEngineClosed))
	assert.True(t, errors.Is(s.Pause(), ErrEngineClosed))
}

func TestSimulated_DrivesController(t *testing.T) {
	s := newTestSimulated(t, SimulatedConfig{DurationMs: 20})
	ctrl := playback.NewController(s, playback.Config{Loop: true, MuteOnLoad: true, EventQueue: 64})
	defer ctrl.Close()

	ctrl.Append("a.wav")
	require.NoError(t, ctrl.RequestPlay(0))

	// Loaded, then two rounds of started and finished.
	for i := 0; i < 5; i++ {
		ctrl.HandleEngine(nextNotification(t, s))
	}

	snap := ctrl.Snapshot()
	assert.Equal(t, playback.StatePlaying, snap.State)
	assert.Equal(t, 2, snap.LoopCount)
	assert.Equal(t, 0.0, s.Volume())
}
