package engine

import (
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/mediadeck/internal/app/playback"
)

var (
	ErrNothingLoaded = errors.New("no media loaded")
	ErrEngineClosed  = errors.New("engine is closed")
)

// SimulatedConfig configures the timer-driven engine.
type SimulatedConfig struct {
	LoadDelayMs int      `yaml:"load_delay_ms" mapstructure:"load_delay_ms" default:"50" validate:"gte=0"`
	DurationMs  int      `yaml:"duration_ms" mapstructure:"duration_ms" default:"3000" validate:"gte=1"`
	FailLoad    []string `yaml:"fail_load" mapstructure:"fail_load"`
	FailPlay    []string `yaml:"fail_play" mapstructure:"fail_play"`
}

// Simulated is an engine without audio output. Loads complete after a delay
// and every media item "plays" for a fixed duration.
type Simulated struct {
	mu sync.Mutex

	loadDelay time.Duration
	duration  time.Duration
	failLoad  map[string]bool
	failPlay  map[string]bool

	loaded  string
	state   playback.EngineState
	volume  float64
	elapsed time.Duration // position at the last pause
	started time.Time     // when the current play span started

	loadGen  uint64
	playGen  uint64
	timer    *time.Timer
	notifyCh chan playback.EngineNotification
	closed   bool
}

// NewSimulated creates a simulated engine.
func NewSimulated(cfg SimulatedConfig) *Simulated {
	s := &Simulated{
		loadDelay: time.Duration(cfg.LoadDelayMs) * time.Millisecond,
		duration:  time.Duration(cfg.DurationMs) * time.Millisecond,
		failLoad:  make(map[string]bool),
		failPlay:  make(map[string]bool),
		volume:    1.0,
		notifyCh:  make(chan playback.EngineNotification, 16),
	}
	for _, p := range cfg.FailLoad {
		s.failLoad[p] = true
	}
	for _, p := range cfg.FailPlay {
		s.failPlay[p] = true
	}
	return s
}

// Load starts loading path. The outcome is notified after the load delay.
func (s *Simulated) Load(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrEngineClosed
	}

	s.stopLocked()
	s.loaded = ""
	s.loadGen++
	gen := s.loadGen

	time.AfterFunc(s.loadDelay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		if s.closed || gen != s.loadGen {
			return
		}
		if s.failLoad[path] {
			s.notifyLocked(playback.EngineNotification{
				Type: playback.NotifyFailed,
				Path: path,
				Err:  errors.Newf("cannot decode %s", path),
			})
			return
		}
		s.loaded = path
		s.notifyLocked(playback.EngineNotification{
			Type:   playback.NotifyLoaded,
			Path:   path,
			Length: s.duration,
		})
	})
	return nil
}

// Play starts or resumes the loaded media.
func (s *Simulated) Play() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrEngineClosed
	}
	if s.loaded == "" {
		return ErrNothingLoaded
	}
	if s.failPlay[s.loaded] {
		return errors.Newf("cannot play %s", s.loaded)
	}
	if s.state == playback.EnginePlaying {
		return nil
	}

	s.state = playback.EnginePlaying
	s.started = time.Now()
	s.playGen++
	gen := s.playGen
	path := s.loaded

	s.timer = time.AfterFunc(s.duration-s.elapsed, func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		if s.closed || gen != s.playGen {
			return
		}
		s.state = playback.EngineStopped
		s.elapsed = 0
		s.timer = nil
		s.notifyLocked(playback.EngineNotification{
			Type: playback.NotifyFinished,
			Path: path,
		})
	})
	s.notifyLocked(playback.EngineNotification{Type: playback.NotifyPlayStarted, Path: path})
	return nil
}

// Pause pauses playback, keeping the position.
func (s *Simulated) Pause() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrEngineClosed
	}
	if s.loaded == "" {
		return ErrNothingLoaded
	}
	if s.state != playback.EnginePlaying {
		return nil
	}

	s.elapsed += time.Since(s.started)
	if s.elapsed >= s.duration {
		s.elapsed = s.duration - time.Millisecond
	}
	s.cancelTimerLocked()
	s.state = playback.EnginePaused
	s.notifyLocked(playback.EngineNotification{Type: playback.NotifyPaused, Path: s.loaded})
	return nil
}

// State returns the engine state.
func (s *Simulated) State() playback.EngineState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SetVolume sets the output level.
func (s *Simulated) SetVolume(level float64) error {
	if level < 0 || level > 1 {
		return errors.Newf("volume %.2f out of range", level)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.volume = level
	return nil
}

// Volume returns the last level set.
func (s *Simulated) Volume() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.volume
}

// Notifications returns the notification channel.
func (s *Simulated) Notifications() <-chan playback.EngineNotification {
	return s.notifyCh
}

// Close stops the engine and closes the notification channel.
func (s *Simulated) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	s.stopLocked()
	close(s.notifyCh)
	return nil
}

func (s *Simulated) stopLocked() {
	s.cancelTimerLocked()
	s.state = playback.EngineStopped
	s.elapsed = 0
}

func (s *Simulated) cancelTimerLocked() {
	s.playGen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// notifyLocked sends n without blocking.
// Must be called with lock held.
func (s *Simulated) notifyLocked(n playback.EngineNotification) {
	select {
	case s.notifyCh <- n:
	default:
		zlog.Warn().Msgf("engine: notification queue full, dropping %s for %s", n.Type, n.Path)
	}
}
