package sessionmanager

import (
	"bytes"
	"net"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/streamforge/mediacore/pkg/bufferpool"
	"github.com/streamforge/mediacore/pkg/portalloc"
	"github.com/streamforge/mediacore/pkg/rtpsession"
	"github.com/streamforge/mediacore/pkg/sessionlog"
	"github.com/streamforge/mediacore/pkg/tracksel"
	"github.com/streamforge/mediacore/pkg/transport"
)

type fakeSocket struct {
	typ  transport.SockType
	port int
}

func (f *fakeSocket) Write(buf []byte, _ net.Addr) (int, error)   { return len(buf), nil }
func (f *fakeSocket) Read(buf []byte) (int, net.Addr, error)      { return 0, nil, nil }
func (f *fakeSocket) Close() error                                { return nil }
func (f *fakeSocket) LocalPort() int                              { return f.port }
func (f *fakeSocket) Type() transport.SockType                    { return f.typ }

type fakeTrack struct{}

func (fakeTrack) PayloadType() uint8 { return 0 }
func (fakeTrack) ClockRate() uint32  { return 8000 }

type fakeSelector struct{}

func (fakeSelector) SelectedTrack() tracksel.Track { return fakeTrack{} }
func (fakeSelector) CloseTracks()                  {}

type fakeAllocator struct{}

func (fakeAllocator) ReleasePortPair(portalloc.Pair) {}

func newFakeSession(t *testing.T) *rtpsession.Session {
	t.Helper()
	trans := &transport.Transport{
		RTP:  &fakeSocket{typ: transport.UDP, port: 9000},
		RTCP: &fakeSocket{typ: transport.UDP, port: 9001},
	}
	sess, err := rtpsession.New(
		trans,
		bufferpool.NewMemoryPool(2),
		fakeSelector{},
		fakeAllocator{},
		sessionlog.New(&bytes.Buffer{}, "fake"),
		func(tracksel.Selector) rtpsession.EventStatus { return rtpsession.EventOK },
	)
	require.NoError(t, err)
	return sess
}

func TestAddGetRemove(t *testing.T) {
	m := New()
	sess := newFakeSession(t)

	id := m.Add(sess)
	require.Equal(t, 1, m.Len())

	got, ok := m.Get(id)
	require.True(t, ok)
	require.Same(t, sess, got)

	m.Remove(id)
	require.Equal(t, 0, m.Len())
	require.Equal(t, rtpsession.StateClosed, sess.State())

	_, ok = m.Get(id)
	require.False(t, ok)
}

func TestRemoveUnknownIDIsNoop(t *testing.T) {
	m := New()
	m.Remove(uuid.New())
	require.Equal(t, 0, m.Len())
}

func TestEachVisitsAllSessions(t *testing.T) {
	m := New()
	m.Add(newFakeSession(t))
	m.Add(newFakeSession(t))

	seen := 0
	m.Each(func(id uuid.UUID, sess *rtpsession.Session) {
		seen++
	})
	require.Equal(t, 2, seen)
}
