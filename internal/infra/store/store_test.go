package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettings_LoadMissingFile(t *testing.T) {
	s := NewSettings(filepath.Join(t.TempDir(), "playlist.yaml"))

	paths, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestSettings_SaveAndLoad(t *testing.T) {
	s := NewSettings(filepath.Join(t.TempDir(), "nested", "playlist.yaml"))
	want := []string{"/music/a.wav", "/music/b c.wav", "yes", "0"}

	require.NoError(t, s.Save(want))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSettings_SaveOverwrites(t *testing.T) {
	s := NewSettings(filepath.Join(t.TempDir(), "playlist.yaml"))

	require.NoError(t, s.Save([]string{"a", "b", "c"}))
	require.NoError(t, s.Save([]string{"z"}))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"z"}, got)

	require.NoError(t, s.Save(nil))
	got, err = s.Load()
	require.NoError(t, err)
	assert.Empty(t, got)

	leftovers, err := filepath.Glob(filepath.Join(filepath.Dir(s.Path()), "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestSettings_FileFormat(t *testing.T) {
	s := NewSettings(filepath.Join(t.TempDir(), "playlist.yaml"))
	require.NoError(t, s.Save([]string{"a.wav", "b.wav"}))

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, "\"0\": a.wav\n\"1\": b.wav\n", string(data))
}

func TestSettings_LoadStopsAtGap(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "ordered",
			content: "\"0\": a\n\"1\": b\n",
			want:    []string{"a", "b"},
		},
		{
			name:    "unordered keys",
			content: "\"1\": b\n\"0\": a\n",
			want:    []string{"a", "b"},
		},
		{
			name:    "gap",
			content: "\"0\": a\n\"2\": c\n",
			want:    []string{"a"},
		},
		{
			name:    "no first key",
			content: "\"1\": b\n",
			want:    []string{},
		},
		{
			name:    "empty",
			content: "",
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "playlist.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			got, err := NewSettings(path).Load()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSettings_LoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "playlist.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- not\n- a map\n"), 0o644))

	_, err := NewSettings(path).Load()
	assert.ErrorContains(t, err, "failed to parse playlist file")
}
