package playlist

import (
	"path/filepath"
	"strings"
	"time"
)

// Status represents the display state of a playlist entry.
type Status int

const (
	StatusUnstarted Status = iota // Not loaded yet (or no longer active)
	StatusLoading                 // Load issued, waiting for the engine
	StatusPlaying                 // Playing
	StatusPaused                  // Paused
	StatusFinished                // Reached the end with looping disabled
	StatusError                   // Load or play failed
)

// String returns the string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusUnstarted:
		return "unstarted"
	case StatusLoading:
		return "loading"
	case StatusPlaying:
		return "playing"
	case StatusPaused:
		return "paused"
	case StatusFinished:
		return "finished"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Marker returns the short marker shown in the status column of a playlist view.
func (s Status) Marker() string {
	switch s {
	case StatusUnstarted:
		return "*"
	case StatusLoading:
		return "O"
	case StatusPlaying:
		return ">"
	case StatusPaused:
		return "||"
	case StatusFinished:
		return "[]"
	case StatusError:
		return "E"
	default:
		return "?"
	}
}

// Entry represents a single playlist entry.
type Entry struct {
	Index  int           // Position in the playlist
	Path   string        // File path or URI
	Status Status        // Display state
	Length time.Duration // Media length reported by the engine (0 if unknown)
}

// Name returns the file name of the entry without directory and extension.
func (e Entry) Name() string {
	base := filepath.Base(e.Path)
	if ext := filepath.Ext(base); ext != "" && ext != base {
		return strings.TrimSuffix(base, ext)
	}
	return base
}
