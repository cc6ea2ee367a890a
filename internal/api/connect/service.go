package connect

import (
	"context"
	"sync"

	"connectrpc.com/connect"
	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/mediadeck/internal/app/playback"
	"github.com/osa030/mediadeck/internal/app/session"
	"github.com/osa030/mediadeck/internal/app/session/registry"
	"github.com/osa030/mediadeck/internal/domain/playlist"
	mediadeckv1 "github.com/osa030/mediadeck/internal/gen/mediadeck/v1"
	"github.com/osa030/mediadeck/internal/gen/mediadeck/v1/mediadeckv1connect"
	"github.com/osa030/mediadeck/internal/infra/config"
)

// DeckService implements the DeckService RPC.
type DeckService struct {
	session *session.Manager
	config  *config.Config
}

// NewDeckService creates a new DeckService.
func NewDeckService(session *session.Manager, cfg *config.Config) *DeckService {
	return &DeckService{
		session: session,
		config:  cfg,
	}
}

// Ensure DeckService implements the interface.
var _ mediadeckv1connect.DeckServiceHandler = (*DeckService)(nil)

// OpenSession creates a new session.
func (s *DeckService) OpenSession(
	ctx context.Context,
	req *connect.Request[mediadeckv1.OpenSessionRequest],
) (*connect.Response[mediadeckv1.OpenSessionResponse], error) {
	handle, err := s.session.OpenSession()
	if err != nil {
		return nil, s.toConnectError(err)
	}
	return connect.NewResponse(&mediadeckv1.OpenSessionResponse{Session: handle}), nil
}

// CloseSession closes a session. The last session cannot be closed.
func (s *DeckService) CloseSession(
	ctx context.Context,
	req *connect.Request[mediadeckv1.CloseSessionRequest],
) (*connect.Response[mediadeckv1.CloseSessionResponse], error) {
	if err := s.session.CloseSession(req.Msg.Session); err != nil {
		return nil, s.toConnectError(err)
	}
	return connect.NewResponse(&mediadeckv1.CloseSessionResponse{}), nil
}

// ListSessions returns every live session.
func (s *DeckService) ListSessions(
	ctx context.Context,
	req *connect.Request[mediadeckv1.ListSessionsRequest],
) (*connect.Response[mediadeckv1.ListSessionsResponse], error) {
	infos := s.session.List()
	resp := &mediadeckv1.ListSessionsResponse{Sessions: make([]*mediadeckv1.SessionInfo, 0, len(infos))}
	for _, info := range infos {
		resp.Sessions = append(resp.Sessions, session.BuildSessionInfo(info))
	}
	return connect.NewResponse(resp), nil
}

// GetSession returns one session with its playlist.
func (s *DeckService) GetSession(
	ctx context.Context,
	req *connect.Request[mediadeckv1.GetSessionRequest],
) (*connect.Response[mediadeckv1.GetSessionResponse], error) {
	info, err := s.session.Snapshot(req.Msg.Session)
	if err != nil {
		return nil, s.toConnectError(err)
	}
	return connect.NewResponse(&mediadeckv1.GetSessionResponse{Session: session.BuildSessionInfo(info)}), nil
}

// Append adds a media path to a playlist, optionally playing it.
func (s *DeckService) Append(
	ctx context.Context,
	req *connect.Request[mediadeckv1.AppendRequest],
) (*connect.Response[mediadeckv1.AppendResponse], error) {
	if req.Msg.Path == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("path is required"))
	}

	var (
		index int
		err   error
	)
	if req.Msg.Play {
		index, err = s.session.Open(req.Msg.Session, req.Msg.Path)
	} else {
		index, err = s.session.Append(req.Msg.Session, req.Msg.Path)
	}
	if err != nil {
		return nil, s.toConnectError(err)
	}
	return connect.NewResponse(&mediadeckv1.AppendResponse{Index: int32(index)}), nil
}

// SelectEntry pre-selects an entry.
func (s *DeckService) SelectEntry(
	ctx context.Context,
	req *connect.Request[mediadeckv1.SelectEntryRequest],
) (*connect.Response[mediadeckv1.SelectEntryResponse], error) {
	if err := s.session.Select(req.Msg.Session, int(req.Msg.Index)); err != nil {
		return nil, s.toConnectError(err)
	}
	return connect.NewResponse(&mediadeckv1.SelectEntryResponse{}), nil
}

// Play plays or toggles an entry.
func (s *DeckService) Play(
	ctx context.Context,
	req *connect.Request[mediadeckv1.PlayRequest],
) (*connect.Response[mediadeckv1.PlayResponse], error) {
	var index *int
	if req.Msg.Index != nil {
		i := int(req.Msg.GetIndex())
		index = &i
	}
	if err := s.session.Play(req.Msg.Session, index); err != nil {
		return nil, s.toConnectError(err)
	}
	return connect.NewResponse(&mediadeckv1.PlayResponse{}), nil
}

// Next advances to the following entry.
func (s *DeckService) Next(
	ctx context.Context,
	req *connect.Request[mediadeckv1.NextRequest],
) (*connect.Response[mediadeckv1.NextResponse], error) {
	if err := s.session.Next(req.Msg.Session); err != nil {
		return nil, s.toConnectError(err)
	}
	return connect.NewResponse(&mediadeckv1.NextResponse{}), nil
}

// Prev moves to the preceding entry.
func (s *DeckService) Prev(
	ctx context.Context,
	req *connect.Request[mediadeckv1.PrevRequest],
) (*connect.Response[mediadeckv1.PrevResponse], error) {
	if err := s.session.Prev(req.Msg.Session); err != nil {
		return nil, s.toConnectError(err)
	}
	return connect.NewResponse(&mediadeckv1.PrevResponse{}), nil
}

// SetLoop toggles looping of the active entry.
func (s *DeckService) SetLoop(
	ctx context.Context,
	req *connect.Request[mediadeckv1.SetLoopRequest],
) (*connect.Response[mediadeckv1.SetLoopResponse], error) {
	if err := s.session.SetLoop(req.Msg.Session, req.Msg.Enabled); err != nil {
		return nil, s.toConnectError(err)
	}
	return connect.NewResponse(&mediadeckv1.SetLoopResponse{}), nil
}

// WatchNotices streams notices until the client disconnects or the server stops.
// The stream opens with one initial state notice per matching session.
func (s *DeckService) WatchNotices(
	ctx context.Context,
	req *connect.Request[mediadeckv1.WatchNoticesRequest],
	stream *connect.ServerStream[mediadeckv1.Notice],
) error {
	notifManager := s.session.GetNotificationManager()
	adapter := &noticeStreamAdapter{stream: stream, session: req.Msg.Session}
	defer adapter.close()

	// Subscribe first so nothing between the snapshot and the live feed is lost.
	subscriptionID := notifManager.Subscribe(adapter)
	defer notifManager.Unsubscribe(subscriptionID)
	zlog.Debug().Msgf("notice watcher subscribed: id=%s subscribers=%d", subscriptionID, notifManager.SubscriberCount())

	sequenceNo := notifManager.CurrentSequenceNo()
	for _, info := range s.session.List() {
		if req.Msg.Session != "" && info.Handle != req.Msg.Session {
			continue
		}
		if err := adapter.Send(session.BuildInitialNotice(info, sequenceNo)); err != nil {
			return err
		}
	}

	select {
	case <-ctx.Done():
	case <-s.session.Done():
	}
	return nil
}

// noticeStreamAdapter adapts connect.ServerStream to notification.Stream.
// Sends are serialized and dropped once the handler has returned.
type noticeStreamAdapter struct {
	mu      sync.Mutex
	stream  *connect.ServerStream[mediadeckv1.Notice]
	session string
	closed  bool
}

func (a *noticeStreamAdapter) Send(n *mediadeckv1.Notice) error {
	if a.session != "" && n.Session != a.session {
		return nil
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return errors.New("stream closed")
	}
	return a.stream.Send(n)
}

func (a *noticeStreamAdapter) close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.closed = true
}

// messageCode maps err to the message code used for its user-facing text.
func messageCode(err error) string {
	switch {
	case errors.Is(err, registry.ErrLastSession):
		return "last_session"
	case errors.Is(err, registry.ErrUnknownSession):
		return "unknown_session"
	default:
		return playback.Code(err)
	}
}

// toConnectError converts err into a Connect error carrying the configured message.
func (s *DeckService) toConnectError(err error) error {
	var code connect.Code
	switch {
	case errors.Is(err, registry.ErrUnknownSession):
		code = connect.CodeNotFound
	case errors.Is(err, registry.ErrLastSession),
		errors.Is(err, playback.ErrEmptyPlaylist):
		code = connect.CodeFailedPrecondition
	case errors.Is(err, playlist.ErrIndexOutOfRange):
		code = connect.CodeOutOfRange
	case errors.Is(err, playback.ErrEngineLoadFailed),
		errors.Is(err, playback.ErrEnginePlayFailed),
		errors.Is(err, playback.ErrEnginePauseFailed),
		errors.Is(err, playback.ErrClosed),
		errors.Is(err, session.ErrManagerClosed):
		code = connect.CodeUnavailable
	default:
		code = connect.CodeInternal
	}

	zlog.Debug().Msgf("rpc error: code=%s err=%v", code, err)
	return connect.NewError(code, errors.New(s.config.GetMessage(messageCode(err))))
}
