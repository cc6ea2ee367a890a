package playback

import (
	"github.com/cockroachdb/errors"

	"github.com/osa030/mediadeck/internal/domain/playlist"
)

// Errors
var (
	ErrEmptyPlaylist     = errors.New("playlist is empty")
	ErrEngineLoadFailed  = errors.New("engine failed to load media")
	ErrEnginePlayFailed  = errors.New("engine failed to play media")
	ErrEnginePauseFailed = errors.New("engine failed to pause media")
	ErrClosed            = errors.New("controller is closed")
)

// Message codes used to look up user-facing texts.
const (
	CodeEmptyPlaylist   = "empty_playlist"
	CodeIndexOutOfRange = "index_out_of_range"
	CodeLoadFailed      = "load_failed"
	CodePlayFailed      = "play_failed"
	CodePauseFailed     = "pause_failed"
	CodeLoopFailed      = "loop_failed"
	CodeClosed          = "closed"
	CodeUnknown         = "default_error"
)

// loopFailure marks a replay failure so it can be reported with its own text.
var loopFailure = errors.New("loop replay failed")

// Code returns the message code for err.
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyPlaylist):
		return CodeEmptyPlaylist
	case errors.Is(err, playlist.ErrIndexOutOfRange):
		return CodeIndexOutOfRange
	case errors.Is(err, ErrEngineLoadFailed):
		return CodeLoadFailed
	case errors.Is(err, loopFailure):
		return CodeLoopFailed
	case errors.Is(err, ErrEnginePlayFailed):
		return CodePlayFailed
	case errors.Is(err, ErrEnginePauseFailed):
		return CodePauseFailed
	case errors.Is(err, ErrClosed):
		return CodeClosed
	default:
		return CodeUnknown
	}
}

// engineError attaches the engine cause to one of the sentinel errors.
func engineError(cause error, kind error, msg string) error {
	if cause == nil {
		cause = errors.New("engine reported failure")
	}
	return errors.Mark(errors.Wrap(cause, msg), kind)
}
