package playback

import "time"

// EngineState is the state reported by a playback engine.
type EngineState int

const (
	EngineStopped EngineState = iota
	EnginePlaying
	EnginePaused
)

// String returns the string representation of the engine state.
func (s EngineState) String() string {
	switch s {
	case EngineStopped:
		return "stopped"
	case EnginePlaying:
		return "playing"
	case EnginePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// NotificationType is the kind of an asynchronous engine notification.
type NotificationType int

const (
	NotifyLoaded      NotificationType = iota // Load completed
	NotifyPlayStarted                         // Playback started or resumed
	NotifyPaused                              // Playback paused
	NotifyFinished                            // Media reached its end
	NotifyFailed                              // Load or playback failed
)

// String returns the string representation of the notification type.
func (n NotificationType) String() string {
	switch n {
	case NotifyLoaded:
		return "loaded"
	case NotifyPlayStarted:
		return "play_started"
	case NotifyPaused:
		return "paused"
	case NotifyFinished:
		return "finished"
	case NotifyFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// EngineNotification is emitted by an engine on its notification channel.
type EngineNotification struct {
	Type   NotificationType
	Path   string        // Media the notification refers to
	Length time.Duration // Media length (NotifyLoaded only)
	Err    error         // Failure cause (NotifyFailed only)
}

// Engine decodes and plays one media item at a time.
// Load is asynchronous: its outcome arrives later as NotifyLoaded or NotifyFailed.
// Implementations must never call back into the controller synchronously.
type Engine interface {
	Load(path string) error
	Play() error
	Pause() error
	State() EngineState
	// SetVolume sets the output level in the range 0..1.
	SetVolume(level float64) error
	Notifications() <-chan EngineNotification
	Close() error
}
