package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"", zerolog.InfoLevel},
		{"debug", zerolog.DebugLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"trace", zerolog.TraceLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"verbose", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.in))
		})
	}
}

func TestNew_FileOutputIsJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.log")

	logger, closer, err := New(Config{Output: path, Level: "info"})
	require.NoError(t, err)

	logger.Debug().Msg("hidden")
	logger.Info().Str("session", "abc").Msg("session opened")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "info", rec["level"])
	assert.Equal(t, "session opened", rec["message"])
	assert.Equal(t, "abc", rec["session"])
	assert.Contains(t, rec, "time")
	assert.NotContains(t, rec, "caller")
}

func TestNew_DebugAddsCaller(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.log")

	logger, closer, err := New(Config{Output: path, Level: "debug"})
	require.NoError(t, err)
	logger.Debug().Msg("visible")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(string(data))), &rec))
	assert.Equal(t, "debug", rec["level"])
	assert.Contains(t, rec["caller"], "logger/logger_test.go:")
}

func TestNew_BadFile(t *testing.T) {
	_, _, err := New(Config{Output: filepath.Join(t.TempDir(), "missing", "deck.log")})
	assert.ErrorContains(t, err, "failed to open log file")
}

func TestShortCaller(t *testing.T) {
	assert.Equal(t, filepath.Join("session", "manager.go")+":42",
		shortCaller(0, filepath.Join("/src", "internal", "app", "session", "manager.go"), 42))
	assert.Equal(t, "main.go:7", shortCaller(0, "main.go", 7))
}
