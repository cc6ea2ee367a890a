// Package session provides the session manager that hosts playback sessions.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/mediadeck/internal/app/notification"
	"github.com/osa030/mediadeck/internal/app/playback"
	"github.com/osa030/mediadeck/internal/app/session/registry"
	mediadeckv1 "github.com/osa030/mediadeck/internal/gen/mediadeck/v1"
	"github.com/osa030/mediadeck/internal/infra/config"
)

var ErrManagerClosed = errors.New("session manager is closed")

// EngineFactory creates a fresh engine for a new session.
type EngineFactory func() (playback.Engine, error)

// PlaylistStore persists the first session's playlist across restarts.
type PlaylistStore interface {
	Load() ([]string, error)
	Save(paths []string) error
}

// Info describes a live session.
type Info struct {
	Handle    string
	CreatedAt time.Time
	Snapshot  playback.Snapshot
}

// Manager owns every playback session and routes host intents to them.
type Manager struct {
	mu sync.Mutex

	// Configuration
	config *config.Config

	// Components
	sessions     *registry.SessionRegistry
	newEngine    EngineFactory
	store        PlaylistStore
	notification *notification.Manager

	// Lifecycle
	ctx       context.Context
	cancel    context.CancelFunc
	done      chan struct{}
	closed    bool
	closeOnce sync.Once
}

// NewManager creates a new session manager.
func NewManager(cfg *config.Config, newEngine EngineFactory, store PlaylistStore) *Manager {
	ctx, cancel := context.WithCancel(context.Background())
	return &Manager{
		config:       cfg,
		sessions:     registry.NewSessionRegistry(),
		newEngine:    newEngine,
		store:        store,
		notification: notification.NewManager(),
		ctx:          ctx,
		cancel:       cancel,
		done:         make(chan struct{}),
	}
}

// Start creates the initial session, restores the saved playlist into it,
// appends args and, when any args were given, advances to the first entry.
// The manager closes itself when ctx is cancelled.
func (m *Manager) Start(ctx context.Context, args []string) error {
	handle, err := m.OpenSession()
	if err != nil {
		return errors.Wrap(err, "failed to create initial session")
	}
	s, err := m.sessions.Get(handle)
	if err != nil {
		return err
	}

	if m.config.RestorePlaylist() && m.store != nil {
		paths, err := m.store.Load()
		if err != nil {
			zlog.Warn().Err(err).Msg("failed to restore playlist")
		}
		for _, p := range paths {
			s.Controller.Append(p)
		}
		zlog.Info().Msgf("restored %d playlist entries", len(paths))
	}

	for _, arg := range args {
		s.Controller.Append(arg)
	}
	if len(args) > 0 {
		if err := s.Controller.RequestNext(); err != nil {
			zlog.Warn().Err(err).Msg("failed to start initial playback")
		}
	}

	go func() {
		select {
		case <-ctx.Done():
			m.Close()
		case <-m.done:
		}
	}()

	return nil
}

// Done returns a channel closed once the manager has shut down.
func (m *Manager) Done() <-chan struct{} {
	return m.done
}

// GetNotificationManager returns the notification manager.
func (m *Manager) GetNotificationManager() *notification.Manager {
	return m.notification
}

// OpenSession creates a new session with its own engine and returns its handle.
func (m *Manager) OpenSession() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return "", ErrManagerClosed
	}

	engine, err := m.newEngine()
	if err != nil {
		return "", errors.Wrap(err, "failed to create engine")
	}

	ctrl := playback.NewController(engine, playback.Config{
		Loop:       m.config.LoopEnabled(),
		MuteOnLoad: m.config.MuteOnLoad(),
		Volume:     m.config.PlaybackVolume(),
		EventQueue: m.config.Playback.EventQueue,
	})
	s := m.sessions.Add(ctrl, engine)

	ctx, cancel := context.WithCancel(m.ctx)
	loopDone := make(chan struct{})
	s.Stop = func() {
		cancel()
		<-loopDone
	}
	go m.runDispatch(ctx, s, loopDone)

	zlog.Info().Msgf("session opened: %s (sessions=%d)", s.Handle, m.sessions.Count())
	m.notification.Broadcast(&mediadeckv1.Notice{
		Session: s.Handle,
		Type:    mediadeckv1.NoticeType_NOTICE_TYPE_SESSION_OPENED,
		Index:   -1,
	})
	return s.Handle, nil
}

// CloseSession closes one session. The last session cannot be closed.
func (m *Manager) CloseSession(handle string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrManagerClosed
	}

	s, err := m.sessions.Remove(handle)
	if err != nil {
		return err
	}
	closeSession(s)

	zlog.Info().Msgf("session closed: %s (sessions=%d)", handle, m.sessions.Count())
	m.notification.Broadcast(&mediadeckv1.Notice{
		Session: handle,
		Type:    mediadeckv1.NoticeType_NOTICE_TYPE_SESSION_CLOSED,
		Index:   -1,
	})
	return nil
}

// List returns every live session in creation order.
func (m *Manager) List() []Info {
	all := m.sessions.All()
	result := make([]Info, 0, len(all))
	for _, s := range all {
		result = append(result, infoOf(s))
	}
	return result
}

// Snapshot returns the state of one session.
func (m *Manager) Snapshot(handle string) (Info, error) {
	s, err := m.resolve(handle)
	if err != nil {
		return Info{}, err
	}
	return infoOf(s), nil
}

// Append adds path to a session's playlist.
func (m *Manager) Append(handle, path string) (int, error) {
	s, err := m.resolve(handle)
	if err != nil {
		return -1, err
	}
	return s.Controller.Append(path), nil
}

// Open adds path to a session's playlist and plays it.
func (m *Manager) Open(handle, path string) (int, error) {
	s, err := m.resolve(handle)
	if err != nil {
		return -1, err
	}
	return s.Controller.Open(path)
}

// Select pre-selects an entry for the next navigation request.
func (m *Manager) Select(handle string, index int) error {
	s, err := m.resolve(handle)
	if err != nil {
		return err
	}
	return s.Controller.Select(index)
}

// Play plays the entry at index, or the current target when index is nil.
func (m *Manager) Play(handle string, index *int) error {
	s, err := m.resolve(handle)
	if err != nil {
		return err
	}
	if index == nil {
		return s.Controller.RequestPlayCurrent()
	}
	return s.Controller.RequestPlay(*index)
}

// Next advances a session to the following entry.
func (m *Manager) Next(handle string) error {
	s, err := m.resolve(handle)
	if err != nil {
		return err
	}
	return s.Controller.RequestNext()
}

// Prev moves a session to the preceding entry.
func (m *Manager) Prev(handle string) error {
	s, err := m.resolve(handle)
	if err != nil {
		return err
	}
	return s.Controller.RequestPrev()
}

// SetLoop enables or disables looping for a session.
func (m *Manager) SetLoop(handle string, enabled bool) error {
	s, err := m.resolve(handle)
	if err != nil {
		return err
	}
	s.Controller.SetLoop(enabled)
	return nil
}

// Close saves the first session's playlist and closes every session.
func (m *Manager) Close() {
	m.closeOnce.Do(func() {
		m.mu.Lock()
		m.closed = true
		m.mu.Unlock()

		if first, ok := m.sessions.First(); ok && m.store != nil {
			paths := first.Controller.Paths()
			if err := m.store.Save(paths); err != nil {
				zlog.Error().Err(err).Msg("failed to save playlist")
			} else {
				zlog.Info().Msgf("saved %d playlist entries", len(paths))
			}
		}

		for _, s := range m.sessions.Drain() {
			closeSession(s)
		}
		m.cancel()
		m.notification.Close()
		close(m.done)
	})
}

// resolve looks up a session; an empty handle means the first session.
func (m *Manager) resolve(handle string) (*registry.Session, error) {
	if handle == "" {
		s, ok := m.sessions.First()
		if !ok {
			return nil, registry.ErrUnknownSession
		}
		return s, nil
	}
	return m.sessions.Get(handle)
}

func closeSession(s *registry.Session) {
	if s.Stop != nil {
		s.Stop()
	}
	s.Controller.Close()
	if err := s.Engine.Close(); err != nil {
		zlog.Warn().Err(err).Msgf("failed to close engine for session %s", s.Handle)
	}
}

func infoOf(s *registry.Session) Info {
	return Info{
		Handle:    s.Handle,
		CreatedAt: s.CreatedAt,
		Snapshot:  s.Controller.Snapshot(),
	}
}

// runDispatch runs the dispatch loop until ctx is cancelled,
// restarting it after a panic.
func (m *Manager) runDispatch(ctx context.Context, s *registry.Session, done chan struct{}) {
	defer close(done)
	for !m.dispatch(ctx, s) {
		zlog.Info().Msgf("restarting dispatch loop for session %s", s.Handle)
	}
}

// dispatch feeds engine notifications to the controller and publishes
// controller events. It reports false when it stopped on a panic.
func (m *Manager) dispatch(ctx context.Context, s *registry.Session) (clean bool) {
	defer func() {
		if r := recover(); r != nil {
			zlog.Error().Msgf("dispatch loop panicked: %v", r)
			clean = false
		}
	}()

	notes := s.Engine.Notifications()
	events := s.Controller.Events()
	for {
		select {
		case <-ctx.Done():
			return true
		case n, ok := <-notes:
			if !ok {
				notes = nil
				continue
			}
			zlog.Debug().Msgf("engine notification: session=%s type=%s path=%s", s.Handle, n.Type, n.Path)
			s.Controller.HandleEngine(n)
		case ev, ok := <-events:
			if !ok {
				return true
			}
			m.publish(s.Handle, ev)
		}
	}
}

// publish converts a controller event into a notice.
func (m *Manager) publish(handle string, ev playback.Event) {
	notice := &mediadeckv1.Notice{
		Session: handle,
		Index:   -1,
		State:   ProtoState(ev.State),
	}
	if ev.Entry != nil {
		notice.Index = int32(ev.Entry.Index)
		notice.Path = ev.Entry.Path
		notice.Marker = ev.Entry.Status.Marker()
	}

	switch ev.Type {
	case playback.EventEntryAdded:
		notice.Type = mediadeckv1.NoticeType_NOTICE_TYPE_ENTRY_ADDED
	case playback.EventActiveChanged:
		notice.Type = mediadeckv1.NoticeType_NOTICE_TYPE_ACTIVE_CHANGED
	case playback.EventStateChanged:
		notice.Type = mediadeckv1.NoticeType_NOTICE_TYPE_STATE_CHANGED
	case playback.EventLooped:
		notice.Type = mediadeckv1.NoticeType_NOTICE_TYPE_LOOPED
		notice.LoopCount = int32(ev.LoopCount)
	case playback.EventError:
		notice.Type = mediadeckv1.NoticeType_NOTICE_TYPE_ERROR
		notice.Code = playback.Code(ev.Err)
		notice.Message = m.config.GetMessage(notice.Code)
		zlog.Warn().Err(ev.Err).Msgf("session %s: %s", handle, notice.Message)
	default:
		return
	}

	m.notification.Broadcast(notice)
}
