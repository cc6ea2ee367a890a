package registry

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa030/mediadeck/internal/app/playback"
)

func newSession(r *SessionRegistry) *Session {
	ctrl := playback.NewController(nil, playback.DefaultConfig())
	return r.Add(ctrl, nil)
}

func TestSessionRegistry_Add(t *testing.T) {
	r := NewSessionRegistry()

	a := newSession(r)
	b := newSession(r)

	assert.NotEmpty(t, a.Handle)
	assert.NotEqual(t, a.Handle, b.Handle)
	assert.Equal(t, 2, r.Count())

	got, err := r.Get(b.Handle)
	require.NoError(t, err)
	assert.Same(t, b, got)
}

func TestSessionRegistry_Get_Unknown(t *testing.T) {
	r := NewSessionRegistry()

	_, err := r.Get("missing")
	assert.True(t, errors.Is(err, ErrUnknownSession))
}

func TestSessionRegistry_Remove(t *testing.T) {
	tests := []struct {
		name     string
		sessions int
		wantErr  error
	}{
		{name: "only session", sessions: 1, wantErr: ErrLastSession},
		{name: "two sessions", sessions: 2},
		{name: "three sessions", sessions: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewSessionRegistry()
			var all []*Session
			for i := 0; i < tt.sessions; i++ {
				all = append(all, newSession(r))
			}

			removed, err := r.Remove(all[0].Handle)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.Equal(t, tt.sessions, r.Count())
				return
			}

			require.NoError(t, err)
			assert.Same(t, all[0], removed)
			assert.Equal(t, tt.sessions-1, r.Count())

			first, ok := r.First()
			require.True(t, ok)
			assert.Equal(t, all[1].Handle, first.Handle)
		})
	}
}

func TestSessionRegistry_Remove_Unknown(t *testing.T) {
	r := NewSessionRegistry()
	newSession(r)
	newSession(r)

	_, err := r.Remove("missing")
	assert.True(t, errors.Is(err, ErrUnknownSession))
	assert.Equal(t, 2, r.Count())
}

func TestSessionRegistry_AllKeepsOrder(t *testing.T) {
	r := NewSessionRegistry()
	a := newSession(r)
	b := newSession(r)
	c := newSession(r)

	_, err := r.Remove(b.Handle)
	require.NoError(t, err)

	all := r.All()
	require.Len(t, all, 2)
	assert.Equal(t, a.Handle, all[0].Handle)
	assert.Equal(t, c.Handle, all[1].Handle)
}

func TestSessionRegistry_Drain(t *testing.T) {
	r := NewSessionRegistry()
	newSession(r)
	newSession(r)

	drained := r.Drain()
	assert.Len(t, drained, 2)
	assert.Equal(t, 0, r.Count())

	_, ok := r.First()
	assert.False(t, ok)
}
