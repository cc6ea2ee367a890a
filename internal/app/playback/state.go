// Package playback provides the per-session playback controller that turns
// user intents and engine callbacks into engine commands.
package playback

// State represents the playback state of a session.
type State int

const (
	StateIdle     State = iota // Nothing active yet
	StateLoading               // Load issued, waiting for the engine
	StatePlaying               // Active entry is playing
	StatePaused                // Active entry is paused
	StateFinished              // Active entry reached its end (loop disabled)
	StateError                 // Last load/play failed
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateFinished:
		return "finished"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}
