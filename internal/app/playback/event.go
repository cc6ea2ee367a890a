package playback

import "github.com/osa030/mediadeck/internal/domain/playlist"

// EventType represents a controller event type.
type EventType int

const (
	EventEntryAdded    EventType = iota // An entry was appended
	EventActiveChanged                  // The active entry changed
	EventStateChanged                   // Playback state changed
	EventLooped                         // The active entry was replayed
	EventError                          // A recoverable error to report to the user
)

// String returns the string representation of the event type.
func (e EventType) String() string {
	switch e {
	case EventEntryAdded:
		return "entry_added"
	case EventActiveChanged:
		return "active_changed"
	case EventStateChanged:
		return "state_changed"
	case EventLooped:
		return "looped"
	case EventError:
		return "error"
	default:
		return "unknown"
	}
}

// Event represents a controller event.
type Event struct {
	Type      EventType
	Entry     *playlist.Entry // Affected entry (nil for some events)
	State     State           // State after the event
	LoopCount int             // Replays since the session opened
	Err       error           // Set for EventError
}
