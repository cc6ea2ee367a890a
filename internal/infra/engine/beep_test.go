package engine

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSilence(t *testing.T, rate beep.SampleRate, d time.Duration) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "silence.wav")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	require.NoError(t, wav.Encode(f, beep.Silence(rate.N(d)), format))
	return path
}

func TestOpenWAV(t *testing.T) {
	tests := []struct {
		name string
		rate beep.SampleRate
	}{
		{"native rate", 44100},
		{"resampled", 22050},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSilence(t, tt.rate, time.Second)

			source, stream, length, err := openWAV(path, 44100, 4)
			require.NoError(t, err)
			defer source.Close()

			assert.Equal(t, time.Second, length)
			require.NotNil(t, stream)

			buf := make([][2]float64, 512)
			n, ok := stream.Stream(buf)
			assert.True(t, ok)
			assert.Positive(t, n)
		})
	}
}

func TestOpenWAV_Errors(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.wav")
	require.NoError(t, os.WriteFile(garbage, []byte("not a wav file"), 0o644))

	_, _, _, err := openWAV(filepath.Join(dir, "missing.wav"), 44100, 4)
	assert.ErrorContains(t, err, "failed to open")

	_, _, _, err = openWAV(garbage, 44100, 4)
	assert.ErrorContains(t, err, "failed to decode")
}

func TestApplyLevel(t *testing.T) {
	tests := []struct {
		level      float64
		wantSilent bool
		wantVolume float64
	}{
		{0, true, 0},
		{1, false, 0},
		{0.5, false, -1},
		{0.25, false, -2},
	}

	for _, tt := range tests {
		vol := &effects.Volume{Base: 2}
		applyLevel(vol, tt.level)
		assert.Equal(t, tt.wantSilent, vol.Silent, "level %v", tt.level)
		assert.InDelta(t, tt.wantVolume, vol.Volume, 1e-9, "level %v", tt.level)
	}

	vol := &effects.Volume{Base: 2, Silent: true}
	applyLevel(vol, 0.5)
	assert.False(t, vol.Silent)
	assert.False(t, math.IsInf(vol.Volume, 0))
}
