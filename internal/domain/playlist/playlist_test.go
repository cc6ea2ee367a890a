package playlist

import (
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaylist_Append(t *testing.T) {
	p := New()

	assert.Equal(t, 0, p.Append("/music/a.wav"))
	assert.Equal(t, 1, p.Append("/music/b.wav"))
	assert.Equal(t, 2, p.Append("/music/a.wav")) // duplicates are allowed

	require.Equal(t, 3, p.Count())
	for i, e := range p.Entries() {
		assert.Equal(t, i, e.Index)
		assert.Equal(t, StatusUnstarted, e.Status)
	}
	assert.Equal(t, []string{"/music/a.wav", "/music/b.wav", "/music/a.wav"}, p.Paths())
}

func TestPlaylist_Get(t *testing.T) {
	p := New()
	p.Append("/music/a.wav")
	p.Append("/music/b.wav")

	tests := []struct {
		name     string
		index    int
		wantPath string
		wantErr  bool
	}{
		{name: "first", index: 0, wantPath: "/music/a.wav"},
		{name: "last", index: 1, wantPath: "/music/b.wav"},
		{name: "negative", index: -1, wantErr: true},
		{name: "past end", index: 2, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := p.Get(tt.index)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrIndexOutOfRange))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPath, e.Path)
			assert.Equal(t, tt.index, e.Index)
		})
	}
}

func TestPlaylist_SetStatus(t *testing.T) {
	p := New()
	p.Append("/music/a.wav")

	require.NoError(t, p.SetStatus(0, StatusPlaying))
	e, err := p.Get(0)
	require.NoError(t, err)
	assert.Equal(t, StatusPlaying, e.Status)

	err = p.SetStatus(5, StatusError)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
}

func TestPlaylist_SetLength(t *testing.T) {
	p := New()
	p.Append("/music/a.wav")

	require.NoError(t, p.SetLength(0, 90*time.Second))
	e, _ := p.Get(0)
	assert.Equal(t, 90*time.Second, e.Length)

	assert.Error(t, p.SetLength(1, time.Second))
}

func TestPlaylist_EntriesIsCopy(t *testing.T) {
	p := New()
	p.Append("/music/a.wav")

	entries := p.Entries()
	entries[0].Status = StatusError

	e, _ := p.Get(0)
	assert.Equal(t, StatusUnstarted, e.Status)
}

func TestStatus_Marker(t *testing.T) {
	tests := []struct {
		status Status
		marker string
		name   string
	}{
		{StatusUnstarted, "*", "unstarted"},
		{StatusLoading, "O", "loading"},
		{StatusPlaying, ">", "playing"},
		{StatusPaused, "||", "paused"},
		{StatusFinished, "[]", "finished"},
		{StatusError, "E", "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.marker, tt.status.Marker())
			assert.Equal(t, tt.name, tt.status.String())
		})
	}
}

func TestEntry_Name(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/music/song.wav", "song"},
		{"relative/clip.mp4", "clip"},
		{"noext", "noext"},
		{"/music/archive.tar.gz", "archive.tar"},
		{".hidden", ".hidden"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, Entry{Path: tt.path}.Name())
		})
	}
}
