package notification

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mediadeckv1 "github.com/osa030/mediadeck/internal/gen/mediadeck/v1"
)

type recordingStream struct {
	mu      sync.Mutex
	notices []*mediadeckv1.Notice
	err     error
	block   chan struct{}
}

func (r *recordingStream) Send(n *mediadeckv1.Notice) error {
	if r.block != nil {
		<-r.block
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, n)
	return r.err
}

func (r *recordingStream) received() []*mediadeckv1.Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*mediadeckv1.Notice, len(r.notices))
	copy(out, r.notices)
	return out
}

func TestManager_BroadcastSequence(t *testing.T) {
	m := NewManager()
	a := &recordingStream{}
	b := &recordingStream{}
	m.Subscribe(a)
	m.Subscribe(b)

	m.Broadcast(&mediadeckv1.Notice{Session: "s1", Type: mediadeckv1.NoticeType_NOTICE_TYPE_ENTRY_ADDED, Path: "a.wav"})
	m.Broadcast(&mediadeckv1.Notice{Session: "s1", Type: mediadeckv1.NoticeType_NOTICE_TYPE_STATE_CHANGED, State: mediadeckv1.PlaybackState_PLAYBACK_STATE_LOADING})

	for _, s := range []*recordingStream{a, b} {
		got := s.received()
		require.Len(t, got, 2)
		assert.Equal(t, uint64(1), got[0].SequenceNo)
		assert.Equal(t, uint64(2), got[1].SequenceNo)
		assert.Equal(t, mediadeckv1.NoticeType_NOTICE_TYPE_ENTRY_ADDED, got[0].Type)
		assert.NotNil(t, got[0].Time)
	}
	assert.Equal(t, uint64(2), m.CurrentSequenceNo())
}

func TestManager_Unsubscribe(t *testing.T) {
	m := NewManager()
	a := &recordingStream{}
	id := m.Subscribe(a)
	assert.Equal(t, 1, m.SubscriberCount())

	m.Unsubscribe(id)
	m.Broadcast(&mediadeckv1.Notice{Type: mediadeckv1.NoticeType_NOTICE_TYPE_LOOPED})

	assert.Equal(t, 0, m.SubscriberCount())
	assert.Empty(t, a.received())
}

func TestManager_FailingStreamDoesNotAffectOthers(t *testing.T) {
	m := NewManager()
	bad := &recordingStream{err: errors.New("closed")}
	good := &recordingStream{}
	m.Subscribe(bad)
	m.Subscribe(good)

	m.Broadcast(&mediadeckv1.Notice{Type: mediadeckv1.NoticeType_NOTICE_TYPE_ERROR, Code: "load_failed"})

	assert.Len(t, good.received(), 1)
}

func TestManager_SlowStreamTimesOut(t *testing.T) {
	m := NewManager()
	m.sendTimeout = 20 * time.Millisecond
	slow := &recordingStream{block: make(chan struct{})}
	defer close(slow.block)
	m.Subscribe(slow)

	start := time.Now()
	m.Broadcast(&mediadeckv1.Notice{Type: mediadeckv1.NoticeType_NOTICE_TYPE_STATE_CHANGED})

	assert.Less(t, time.Since(start), time.Second)
}

func TestManager_Close(t *testing.T) {
	m := NewManager()
	m.Subscribe(&recordingStream{})
	m.Subscribe(&recordingStream{})

	m.Close()
	assert.Equal(t, 0, m.SubscriberCount())
}
