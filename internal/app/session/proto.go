package session

import (
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/osa030/mediadeck/internal/app/playback"
	"github.com/osa030/mediadeck/internal/domain/playlist"
	mediadeckv1 "github.com/osa030/mediadeck/internal/gen/mediadeck/v1"
)

// BuildSessionInfo converts a session description into its wire form.
func BuildSessionInfo(info Info) *mediadeckv1.SessionInfo {
	snap := info.Snapshot
	out := &mediadeckv1.SessionInfo{
		Session:      info.Handle,
		CreatedAt:    timestamppb.New(info.CreatedAt),
		State:        ProtoState(snap.State),
		ActiveIndex:  int32(snap.ActiveIndex),
		PendingIndex: int32(snap.Pending),
		LoopEnabled:  snap.LoopEnabled,
		LoopCount:    int32(snap.LoopCount),
		Entries:      make([]*mediadeckv1.Entry, 0, len(snap.Entries)),
	}
	for _, e := range snap.Entries {
		out.Entries = append(out.Entries, &mediadeckv1.Entry{
			Index:    int32(e.Index),
			Path:     e.Path,
			Name:     e.Name(),
			Status:   protoStatus(e.Status),
			Marker:   e.Status.Marker(),
			LengthMs: e.Length.Milliseconds(),
		})
	}
	return out
}

// BuildInitialNotice describes the state a session was in before a watcher
// subscribed. It carries no sequence number of its own.
func BuildInitialNotice(info Info, sequenceNo uint64) *mediadeckv1.Notice {
	snap := info.Snapshot
	notice := &mediadeckv1.Notice{
		SequenceNo: sequenceNo,
		Session:    info.Handle,
		Type:       mediadeckv1.NoticeType_NOTICE_TYPE_INITIAL_STATE,
		Index:      int32(snap.ActiveIndex),
		State:      ProtoState(snap.State),
		LoopCount:  int32(snap.LoopCount),
		Time:       timestamppb.Now(),
	}
	if e, ok := snap.Active(); ok {
		notice.Path = e.Path
		notice.Marker = e.Status.Marker()
	}
	return notice
}

// ProtoState maps a controller state to its wire enum.
func ProtoState(s playback.State) mediadeckv1.PlaybackState {
	switch s {
	case playback.StateIdle:
		return mediadeckv1.PlaybackState_PLAYBACK_STATE_IDLE
	case playback.StateLoading:
		return mediadeckv1.PlaybackState_PLAYBACK_STATE_LOADING
	case playback.StatePlaying:
		return mediadeckv1.PlaybackState_PLAYBACK_STATE_PLAYING
	case playback.StatePaused:
		return mediadeckv1.PlaybackState_PLAYBACK_STATE_PAUSED
	case playback.StateFinished:
		return mediadeckv1.PlaybackState_PLAYBACK_STATE_FINISHED
	case playback.StateError:
		return mediadeckv1.PlaybackState_PLAYBACK_STATE_ERROR
	default:
		return mediadeckv1.PlaybackState_PLAYBACK_STATE_UNSPECIFIED
	}
}

func protoStatus(s playlist.Status) mediadeckv1.EntryStatus {
	switch s {
	case playlist.StatusUnstarted:
		return mediadeckv1.EntryStatus_ENTRY_STATUS_UNSTARTED
	case playlist.StatusLoading:
		return mediadeckv1.EntryStatus_ENTRY_STATUS_LOADING
	case playlist.StatusPlaying:
		return mediadeckv1.EntryStatus_ENTRY_STATUS_PLAYING
	case playlist.StatusPaused:
		return mediadeckv1.EntryStatus_ENTRY_STATUS_PAUSED
	case playlist.StatusFinished:
		return mediadeckv1.EntryStatus_ENTRY_STATUS_FINISHED
	case playlist.StatusError:
		return mediadeckv1.EntryStatus_ENTRY_STATUS_ERROR
	default:
		return mediadeckv1.EntryStatus_ENTRY_STATUS_UNSPECIFIED
	}
}
