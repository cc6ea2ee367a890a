package engine

import (
	"math"
	"os"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/mediadeck/internal/app/playback"
)

// BeepConfig configures the audio engine.
type BeepConfig struct {
	SampleRate      int `yaml:"sample_rate" mapstructure:"sample_rate" default:"44100" validate:"gte=8000,lte=192000"`
	BufferMs        int `yaml:"buffer_ms" mapstructure:"buffer_ms" default:"100" validate:"gte=10,lte=1000"`
	ResampleQuality int `yaml:"resample_quality" mapstructure:"resample_quality" default:"4" validate:"gte=1,lte=64"`
}

// The speaker is process-wide; every Beep engine mixes into it.
var (
	speakerOnce sync.Once
	speakerErr  error
	speakerRate beep.SampleRate
)

func initSpeaker(cfg BeepConfig) (beep.SampleRate, error) {
	speakerOnce.Do(func() {
		speakerRate = beep.SampleRate(cfg.SampleRate)
		speakerErr = speaker.Init(speakerRate, speakerRate.N(time.Duration(cfg.BufferMs)*time.Millisecond))
		if speakerErr == nil {
			zlog.Info().Msgf("speaker initialized: rate=%d buffer=%dms", cfg.SampleRate, cfg.BufferMs)
		}
	})
	return speakerRate, speakerErr
}

// beepTrack is one decoded media item and its live control handles.
type beepTrack struct {
	path     string
	source   beep.StreamSeekCloser
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	length   time.Duration
	queued   bool // attached to the speaker mixer
	finished bool
	dropped  bool
}

// Beep plays WAV files through the shared speaker.
type Beep struct {
	mu sync.Mutex

	rate    beep.SampleRate
	quality int

	track    *beepTrack
	state    playback.EngineState
	level    float64
	loadGen  uint64
	notifyCh chan playback.EngineNotification
	closed   bool
}

// NewBeep creates an audio engine, initializing the speaker on first use.
func NewBeep(cfg BeepConfig) (*Beep, error) {
	rate, err := initSpeaker(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize speaker")
	}
	return &Beep{
		rate:     rate,
		quality:  cfg.ResampleQuality,
		level:    1.0,
		notifyCh: make(chan playback.EngineNotification, 16),
	}, nil
}

// Load decodes path in the background and notifies the outcome.
func (b *Beep) Load(path string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrEngineClosed
	}

	b.dropLocked()
	b.loadGen++
	gen := b.loadGen

	go b.decode(gen, path)
	return nil
}

func (b *Beep) decode(gen uint64, path string) {
	source, stream, length, err := openWAV(path, b.rate, b.quality)

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed || gen != b.loadGen {
		if source != nil {
			_ = source.Close()
		}
		return
	}
	if err != nil {
		b.notifyLocked(playback.EngineNotification{Type: playback.NotifyFailed, Path: path, Err: err})
		return
	}

	vol := &effects.Volume{Streamer: stream, Base: 2}
	applyLevel(vol, b.level)
	b.track = &beepTrack{
		path:   path,
		source: source,
		ctrl:   &beep.Ctrl{Streamer: vol, Paused: true},
		volume: vol,
		length: length,
	}
	b.notifyLocked(playback.EngineNotification{Type: playback.NotifyLoaded, Path: path, Length: length})
}

// openWAV decodes path and resamples it to rate when needed.
func openWAV(path string, rate beep.SampleRate, quality int) (beep.StreamSeekCloser, beep.Streamer, time.Duration, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, 0, errors.Wrapf(err, "failed to open %s", path)
	}
	source, format, err := wav.Decode(f)
	if err != nil {
		_ = f.Close()
		return nil, nil, 0, errors.Wrapf(err, "failed to decode %s", path)
	}

	length := format.SampleRate.D(source.Len())
	var stream beep.Streamer = source
	if format.SampleRate != rate {
		stream = beep.Resample(quality, format.SampleRate, rate, source)
	}
	return source, stream, length, nil
}

// Play starts, resumes, or replays the loaded track.
func (b *Beep) Play() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrEngineClosed
	}
	t := b.track
	if t == nil {
		return ErrNothingLoaded
	}

	if !t.queued {
		if t.finished {
			speaker.Lock()
			err := t.source.Seek(0)
			speaker.Unlock()
			if err != nil {
				return errors.Wrapf(err, "failed to rewind %s", t.path)
			}
			t.finished = false
		}
		t.ctrl.Paused = false
		t.queued = true
		speaker.Play(beep.Seq(t.ctrl, beep.Callback(func() {
			// Runs on the speaker goroutine with the speaker locked.
			go b.onFinished(t)
		})))
	} else {
		speaker.Lock()
		t.ctrl.Paused = false
		speaker.Unlock()
	}

	b.state = playback.EnginePlaying
	b.notifyLocked(playback.EngineNotification{Type: playback.NotifyPlayStarted, Path: t.path})
	return nil
}

// Pause pauses the loaded track.
func (b *Beep) Pause() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrEngineClosed
	}
	t := b.track
	if t == nil {
		return ErrNothingLoaded
	}

	speaker.Lock()
	t.ctrl.Paused = true
	speaker.Unlock()
	b.state = playback.EnginePaused
	b.notifyLocked(playback.EngineNotification{Type: playback.NotifyPaused, Path: t.path})
	return nil
}

func (b *Beep) onFinished(t *beepTrack) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed || t.dropped || b.track != t {
		return
	}
	t.queued = false
	t.finished = true
	b.state = playback.EngineStopped
	b.notifyLocked(playback.EngineNotification{Type: playback.NotifyFinished, Path: t.path})
}

// State returns the engine state.
func (b *Beep) State() playback.EngineState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// SetVolume sets the output level in the range 0..1.
func (b *Beep) SetVolume(level float64) error {
	if level < 0 || level > 1 {
		return errors.Newf("volume %.2f out of range", level)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.level = level
	if b.track != nil {
		speaker.Lock()
		applyLevel(b.track.volume, level)
		speaker.Unlock()
	}
	return nil
}

// applyLevel maps a linear 0..1 level onto a base-2 volume effect.
func applyLevel(vol *effects.Volume, level float64) {
	if level <= 0 {
		vol.Silent = true
		vol.Volume = 0
		return
	}
	vol.Silent = false
	vol.Volume = math.Log2(level)
}

// Notifications returns the notification channel.
func (b *Beep) Notifications() <-chan playback.EngineNotification {
	return b.notifyCh
}

// Close stops playback and releases the decoded track.
func (b *Beep) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	b.dropLocked()
	close(b.notifyCh)
	return nil
}

// dropLocked detaches the current track from the mixer and closes it.
// Must be called with lock held.
func (b *Beep) dropLocked() {
	t := b.track
	b.track = nil
	b.state = playback.EngineStopped
	if t == nil {
		return
	}

	t.dropped = true
	speaker.Lock()
	// A nil streamer makes the mixer discard the sequence.
	t.ctrl.Streamer = nil
	speaker.Unlock()
	if err := t.source.Close(); err != nil {
		zlog.Warn().Err(err).Msgf("failed to close %s", t.path)
	}
}

// notifyLocked sends n without blocking.
// Must be called with lock held.
func (b *Beep) notifyLocked(n playback.EngineNotification) {
	select {
	case b.notifyCh <- n:
	default:
		zlog.Warn().Msgf("engine: notification queue full, dropping %s for %s", n.Type, n.Path)
	}
}
