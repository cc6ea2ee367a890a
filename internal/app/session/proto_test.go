package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa030/mediadeck/internal/app/playback"
	"github.com/osa030/mediadeck/internal/domain/playlist"
	mediadeckv1 "github.com/osa030/mediadeck/internal/gen/mediadeck/v1"
)

func TestBuildSessionInfo(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	info := Info{
		Handle:    "h1",
		CreatedAt: created,
		Snapshot: playback.Snapshot{
			Entries: []playlist.Entry{
				{Index: 0, Path: "/media/a.wav", Status: playlist.StatusPaused, Length: 90 * time.Second},
				{Index: 1, Path: "/media/b.wav", Status: playlist.StatusUnstarted},
			},
			ActiveIndex: 0,
			Pending:     1,
			State:       playback.StatePaused,
			LoopEnabled: true,
			LoopCount:   3,
		},
	}

	got := BuildSessionInfo(info)

	assert.Equal(t, "h1", got.Session)
	assert.True(t, created.Equal(got.CreatedAt.AsTime()))
	assert.Equal(t, mediadeckv1.PlaybackState_PLAYBACK_STATE_PAUSED, got.State)
	assert.Equal(t, int32(0), got.ActiveIndex)
	assert.Equal(t, int32(1), got.PendingIndex)
	assert.True(t, got.LoopEnabled)
	assert.Equal(t, int32(3), got.LoopCount)
	require.Len(t, got.Entries, 2)
	assert.Equal(t, "a", got.Entries[0].Name)
	assert.Equal(t, "||", got.Entries[0].Marker)
	assert.Equal(t, mediadeckv1.EntryStatus_ENTRY_STATUS_PAUSED, got.Entries[0].Status)
	assert.Equal(t, int64(90000), got.Entries[0].LengthMs)
	assert.Equal(t, mediadeckv1.EntryStatus_ENTRY_STATUS_UNSTARTED, got.Entries[1].Status)
}

func TestBuildInitialNotice(t *testing.T) {
	idle := BuildInitialNotice(Info{Handle: "h1", Snapshot: playback.Snapshot{ActiveIndex: -1, Pending: -1}}, 7)
	assert.Equal(t, mediadeckv1.NoticeType_NOTICE_TYPE_INITIAL_STATE, idle.Type)
	assert.Equal(t, uint64(7), idle.SequenceNo)
	assert.Equal(t, int32(-1), idle.Index)
	assert.Empty(t, idle.Path)
	assert.Equal(t, mediadeckv1.PlaybackState_PLAYBACK_STATE_IDLE, idle.State)

	playing := BuildInitialNotice(Info{Handle: "h1", Snapshot: playback.Snapshot{
		Entries:     []playlist.Entry{{Index: 0, Path: "a.wav", Status: playlist.StatusPlaying}},
		ActiveIndex: 0,
		State:       playback.StatePlaying,
	}}, 7)
	assert.Equal(t, "a.wav", playing.Path)
	assert.Equal(t, ">", playing.Marker)
}

func TestProtoState(t *testing.T) {
	tests := []struct {
		state playback.State
		want  mediadeckv1.PlaybackState
	}{
		{playback.StateIdle, mediadeckv1.PlaybackState_PLAYBACK_STATE_IDLE},
		{playback.StateLoading, mediadeckv1.PlaybackState_PLAYBACK_STATE_LOADING},
		{playback.StatePlaying, mediadeckv1.PlaybackState_PLAYBACK_STATE_PLAYING},
		{playback.StatePaused, mediadeckv1.PlaybackState_PLAYBACK_STATE_PAUSED},
		{playback.StateFinished, mediadeckv1.PlaybackState_PLAYBACK_STATE_FINISHED},
		{playback.StateError, mediadeckv1.PlaybackState_PLAYBACK_STATE_ERROR},
		{playback.State(99), mediadeckv1.PlaybackState_PLAYBACK_STATE_UNSPECIFIED},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, ProtoState(tt.state))
		})
	}
}
