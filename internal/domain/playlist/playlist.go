// Package playlist provides the append-only Playlist domain entity.
package playlist

import (
	"time"

	"github.com/cockroachdb/errors"
)

// ErrIndexOutOfRange is returned when an index does not address an entry.
var ErrIndexOutOfRange = errors.New("playlist index out of range")

// Playlist is an ordered list of entries. Entries are only ever appended,
// so indices stay contiguous from 0 to Count()-1.
type Playlist struct {
	entries []Entry
}

// New creates an empty playlist.
func New() *Playlist {
	return &Playlist{
		entries: make([]Entry, 0),
	}
}

// Append adds a new unstarted entry and returns its index.
// Duplicate paths are allowed: entries are identified by index.
func (p *Playlist) Append(path string) int {
	idx := len(p.entries)
	p.entries = append(p.entries, Entry{
		Index:  idx,
		Path:   path,
		Status: StatusUnstarted,
	})
	return idx
}

// Get returns the entry at index.
func (p *Playlist) Get(index int) (Entry, error) {
	if err := p.check(index); err != nil {
		return Entry{}, err
	}
	return p.entries[index], nil
}

// SetStatus updates the status of the entry at index.
func (p *Playlist) SetStatus(index int, status Status) error {
	if err := p.check(index); err != nil {
		return err
	}
	p.entries[index].Status = status
	return nil
}

// SetLength records the media length of the entry at index.
func (p *Playlist) SetLength(index int, length time.Duration) error {
	if err := p.check(index); err != nil {
		return err
	}
	p.entries[index].Length = length
	return nil
}

// Count returns the number of entries.
func (p *Playlist) Count() int {
	return len(p.entries)
}

// Entries returns a copy of all entries.
func (p *Playlist) Entries() []Entry {
	result := make([]Entry, len(p.entries))
	copy(result, p.entries)
	return result
}

// Paths returns the paths of all entries in order.
func (p *Playlist) Paths() []string {
	paths := make([]string, len(p.entries))
	for i, e := range p.entries {
		paths[i] = e.Path
	}
	return paths
}

func (p *Playlist) check(index int) error {
	if index < 0 || index >= len(p.entries) {
		return errors.Wrapf(ErrIndexOutOfRange, "index %d (count %d)", index, len(p.entries))
	}
	return nil
}
