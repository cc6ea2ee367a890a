package playback

import (
	"context"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/mediadeck/internal/domain/playlist"
)

const noIndex = -1

// Config holds controller configuration.
type Config struct {
	Loop       bool    // Replay the active entry when it finishes
	MuteOnLoad bool    // Force volume to 0 once a load has started playing
	Volume     float64 // Volume applied after load when MuteOnLoad is false
	EventQueue int     // Event channel buffer size
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{
		Loop:       true,
		MuteOnLoad: true,
		Volume:     1.0,
		EventQueue: 32,
	}
}

// Snapshot is a read-only copy of the controller state.
type Snapshot struct {
	Entries     []playlist.Entry
	ActiveIndex int // -1 when nothing is active
	Pending     int // -1 when nothing is pre-selected
	State       State
	LoopEnabled bool
	LoopCount   int
}

// Active returns the active entry, if any.
func (s Snapshot) Active() (playlist.Entry, bool) {
	if s.ActiveIndex < 0 || s.ActiveIndex >= len(s.Entries) {
		return playlist.Entry{}, false
	}
	return s.Entries[s.ActiveIndex], true
}

// Controller owns one session's playlist and decides, for every user intent
// and engine callback, which entry is active and what the engine must do.
type Controller struct {
	mu sync.Mutex

	playlist *playlist.Playlist
	engine   Engine

	active  int // index of the loaded entry
	pending int // pre-selected index, consumed by the next navigation
	state   State

	loop      bool
	loopCount int // replays since the session opened

	config Config

	// Events
	eventCh chan Event

	// Context
	ctx    context.Context
	cancel context.CancelFunc
	closed bool
}

// NewController creates a controller driving engine.
func NewController(engine Engine, config Config) *Controller {
	if config.EventQueue <= 0 {
		config.EventQueue = DefaultConfig().EventQueue
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Controller{
		playlist: playlist.New(),
		engine:   engine,
		active:   noIndex,
		pending:  noIndex,
		state:    StateIdle,
		loop:     config.Loop,
		config:   config,
		eventCh:  make(chan Event, config.EventQueue),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Events returns the event channel.
func (c *Controller) Events() <-chan Event {
	return c.eventCh
}

// Append adds path to the playlist and returns its index.
func (c *Controller) Append(path string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.playlist.Append(path)
	c.sendEntryEventLocked(EventEntryAdded, idx)
	return idx
}

// Open appends path and starts playing the new entry.
// Opening the file that is already active, with nothing pre-selected,
// toggles it instead of loading the new copy.
func (c *Controller) Open(path string) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return noIndex, ErrClosed
	}

	sameFile := c.pending == noIndex && c.isActivePathLocked(path)

	idx := c.playlist.Append(path)
	c.sendEntryEventLocked(EventEntryAdded, idx)
	if sameFile {
		switch c.state {
		case StatePlaying, StatePaused, StateFinished:
			return idx, c.toggleLocked()
		}
	}
	return idx, c.requestPlayLocked(idx)
}

// Select pre-selects index without playing it.
// The next navigation request starts from the selection.
func (c *Controller) Select(index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.playlist.Get(index); err != nil {
		return err
	}
	c.pending = index
	return nil
}

// RequestPlay plays the entry at target. Re-requesting the active entry
// toggles between playing and paused instead of reloading it.
func (c *Controller) RequestPlay(target int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	return c.requestPlayLocked(target)
}

// RequestPlayCurrent handles a play request without an explicit target.
// The target is the pending selection, else the active entry, else the first entry.
func (c *Controller) RequestPlayCurrent() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	if c.playlist.Count() == 0 {
		return ErrEmptyPlaylist
	}

	target := c.pending
	if target == noIndex {
		target = c.active
	}
	if target == noIndex {
		target = 0
	}

	return c.requestPlayLocked(target)
}

// RequestNext plays the entry after the selection (or the active entry), wrapping around.
func (c *Controller) RequestNext() error {
	return c.step(1)
}

// RequestPrev plays the entry before the selection (or the active entry), wrapping around.
func (c *Controller) RequestPrev() error {
	return c.step(-1)
}

func (c *Controller) step(delta int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}

	count := c.playlist.Count()
	if count == 0 {
		return ErrEmptyPlaylist
	}

	base := c.pending
	c.pending = noIndex
	if base == noIndex {
		base = c.active
	}

	var target int
	switch {
	case base != noIndex:
		target = ((base+delta)%count + count) % count
	case delta > 0:
		target = 0
	default:
		target = count - 1
	}

	if target == c.active {
		zlog.Debug().Msgf("playback: navigation target %d already active, nothing to do", target)
		return nil
	}

	return c.requestPlayLocked(target)
}

// SetLoop enables or disables replaying the active entry when it finishes.
func (c *Controller) SetLoop(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loop = enabled
}

// GetState returns the current playback state.
func (c *Controller) GetState() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Snapshot returns a copy of the controller state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Snapshot{
		Entries:     c.playlist.Entries(),
		ActiveIndex: c.active,
		Pending:     c.pending,
		State:       c.state,
		LoopEnabled: c.loop,
		LoopCount:   c.loopCount,
	}
}

// Paths returns the playlist paths in order.
func (c *Controller) Paths() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.playlist.Paths()
}

// HandleEngine dispatches an engine notification to the matching handler.
func (c *Controller) HandleEngine(n EngineNotification) {
	switch n.Type {
	case NotifyLoaded:
		c.HandleLoaded(n.Path, n.Length)
	case NotifyPlayStarted:
		c.HandlePlayStarted(n.Path)
	case NotifyPaused:
		c.HandlePaused(n.Path)
	case NotifyFinished:
		c.HandleFinished(n.Path)
	case NotifyFailed:
		c.HandleFailed(n.Path, n.Err)
	}
}

// HandleLoaded is called when the engine finished loading path.
func (c *Controller) HandleLoaded(path string, length time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateLoading || !c.isActivePathLocked(path) {
		zlog.Debug().Msgf("playback: ignoring stale load completion: path=%s state=%s", path, c.state)
		return
	}

	if length > 0 {
		_ = c.playlist.SetLength(c.active, length)
	}

	if err := c.engine.Play(); err != nil {
		c.failLocked(engineError(err, ErrEnginePlayFailed, "play after load"))
		return
	}

	level := c.config.Volume
	if c.config.MuteOnLoad {
		level = 0
	}
	if err := c.engine.SetVolume(level); err != nil {
		zlog.Warn().Msgf("playback: failed to set volume: level=%.2f err=%v", level, err)
	}

	c.setActiveStatusLocked(StatePlaying, playlist.StatusPlaying)
}

// HandleFinished is called when the engine reached the end of path.
func (c *Controller) HandleFinished(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StatePlaying || !c.isActivePathLocked(path) {
		zlog.Debug().Msgf("playback: ignoring stale finish: path=%s state=%s", path, c.state)
		return
	}

	if !c.loop {
		c.setActiveStatusLocked(StateFinished, playlist.StatusFinished)
		return
	}

	if err := c.engine.Play(); err != nil {
		c.failLocked(errors.Mark(engineError(err, ErrEnginePlayFailed, "loop replay"), loopFailure))
		return
	}

	c.loopCount++
	zlog.Debug().Msgf("playback: looped: path=%s count=%d", path, c.loopCount)
	c.sendEntryEventLocked(EventLooped, c.active)
}

// HandleFailed is called when the engine failed to load or play path.
func (c *Controller) HandleFailed(path string, cause error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.isActivePathLocked(path) {
		zlog.Debug().Msgf("playback: ignoring failure for inactive media: path=%s err=%v", path, cause)
		return
	}

	kind, msg := ErrEnginePlayFailed, "playback"
	if c.state == StateLoading {
		kind, msg = ErrEngineLoadFailed, "load"
	}
	c.failLocked(engineError(cause, kind, msg))
}

// HandlePlayStarted is called when the engine reports playback (re)started.
func (c *Controller) HandlePlayStarted(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// The engine also reports our own Play calls; only a state it still holds counts.
	if c.state != StatePaused || !c.isActivePathLocked(path) || c.engine.State() != EnginePlaying {
		return
	}
	c.setActiveStatusLocked(StatePlaying, playlist.StatusPlaying)
}

// HandlePaused is called when the engine reports playback paused.
func (c *Controller) HandlePaused(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StatePlaying || !c.isActivePathLocked(path) || c.engine.State() != EnginePaused {
		return
	}
	c.setActiveStatusLocked(StatePaused, playlist.StatusPaused)
}

// Close closes the controller and releases resources.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	c.cancel()
	close(c.eventCh)
}

// requestPlayLocked implements RequestPlay.
// Must be called with lock held.
func (c *Controller) requestPlayLocked(target int) error {
	if c.playlist.Count() == 0 {
		return ErrEmptyPlaylist
	}
	if _, err := c.playlist.Get(target); err != nil {
		return err
	}

	c.pending = noIndex

	if target == c.active {
		switch c.state {
		case StatePlaying, StatePaused, StateFinished:
			return c.toggleLocked()
		}
		// Loading or Error: reload below
	}

	return c.loadLocked(target)
}

// toggleLocked pauses a playing active entry or resumes a paused/finished one.
// Must be called with lock held.
func (c *Controller) toggleLocked() error {
	switch c.state {
	case StatePlaying:
		if err := c.engine.Pause(); err != nil {
			err = engineError(err, ErrEnginePauseFailed, "pause")
			c.reportLocked(err)
			return err
		}
		c.setActiveStatusLocked(StatePaused, playlist.StatusPaused)
		return nil

	case StatePaused, StateFinished:
		if err := c.engine.Play(); err != nil {
			err = engineError(err, ErrEnginePlayFailed, "resume")
			c.failLocked(err)
			return err
		}
		c.setActiveStatusLocked(StatePlaying, playlist.StatusPlaying)
		return nil

	default:
		return c.loadLocked(c.active)
	}
}

// loadLocked makes target the active entry and asks the engine to load it.
// Must be called with lock held.
func (c *Controller) loadLocked(target int) error {
	if c.active != noIndex && c.active != target {
		_ = c.playlist.SetStatus(c.active, playlist.StatusUnstarted)
		c.sendEntryEventLocked(EventStateChanged, c.active)
	}

	entry, _ := c.playlist.Get(target)
	changed := c.active != target
	c.active = target
	if changed {
		c.sendEntryEventLocked(EventActiveChanged, target)
	}

	c.setActiveStatusLocked(StateLoading, playlist.StatusLoading)
	zlog.Debug().Msgf("playback: loading: index=%d path=%s", target, entry.Path)

	if err := c.engine.Load(entry.Path); err != nil {
		err = engineError(err, ErrEngineLoadFailed, "load")
		c.failLocked(err)
		return err
	}
	return nil
}

// failLocked moves the active entry to the error state and reports err.
// Must be called with lock held.
func (c *Controller) failLocked(err error) {
	c.setActiveStatusLocked(StateError, playlist.StatusError)
	c.reportLocked(err)
}

// reportLocked emits a user-facing error event.
// Must be called with lock held.
func (c *Controller) reportLocked(err error) {
	zlog.Warn().Msgf("playback: %v", err)

	ev := Event{
		Type:      EventError,
		State:     c.state,
		LoopCount: c.loopCount,
		Err:       err,
	}
	if e, gerr := c.playlist.Get(c.active); gerr == nil {
		ev.Entry = &e
	}
	c.sendEventLocked(ev)
}

// setActiveStatusLocked updates both the session state and the active entry status.
// Must be called with lock held.
func (c *Controller) setActiveStatusLocked(state State, status playlist.Status) {
	c.state = state
	if c.active != noIndex {
		_ = c.playlist.SetStatus(c.active, status)
	}
	c.sendEntryEventLocked(EventStateChanged, c.active)
}

func (c *Controller) isActivePathLocked(path string) bool {
	if c.active == noIndex {
		return false
	}
	e, err := c.playlist.Get(c.active)
	return err == nil && e.Path == path
}

// sendEntryEventLocked sends an event carrying a copy of the entry at index.
// Must be called with lock held.
func (c *Controller) sendEntryEventLocked(t EventType, index int) {
	ev := Event{
		Type:      t,
		State:     c.state,
		LoopCount: c.loopCount,
	}
	if e, err := c.playlist.Get(index); err == nil {
		ev.Entry = &e
	}
	c.sendEventLocked(ev)
}

// sendEventLocked sends an event without blocking.
// Must be called with lock held.
func (c *Controller) sendEventLocked(e Event) {
	if c.closed {
		return
	}
	select {
	case c.eventCh <- e:
	case <-c.ctx.Done():
	default:
		zlog.Debug().Msgf("playback: event queue full, dropping %s", e.Type)
	}
}
