package description

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestResourceAccessorsAbsent(t *testing.T) {
	r := NewResource("", "", "", "", "", time.Time{}, 0, "", "", nil, nil)

	_, ok := r.Name()
	require.False(t, ok)
	_, ok = r.Mrl()
	require.False(t, ok)
	_, ok = r.DescriptionURI()
	require.False(t, ok)
	_, ok = r.Email()
	require.False(t, ok)
	_, ok = r.Phone()
	require.False(t, ok)
	_, ok = r.Multicast()
	require.False(t, ok)
	_, ok = r.TTL()
	require.False(t, ok)

	require.True(t, r.LastChange().IsZero())
	require.Equal(t, float64(0), r.Duration())
	require.Empty(t, r.PrivateFields())
	require.NotNil(t, r.MediaGroups())
	require.Empty(t, r.MediaGroups())
}

func TestResourceAccessorsPresent(t *testing.T) {
	lastChange := time.Unix(1000000000, 0).UTC()
	group := NewMediaGroup(&Media{Kind: KindVideo, Name: "video0", RTPPayloadType: 96, ClockRate: 90000})

	r := NewResource("clip", "rtsp://srv.example/clip.mp4", "http://example.com/clip", "a@b.com", "+1-555", lastChange, 60,
		"239.0.0.1", "16", []SDPField{{Kind: FieldEmpty, Value: "a=custom:1"}}, []*MediaGroup{group})

	name, ok := r.Name()
	require.True(t, ok)
	require.Equal(t, "clip", name)

	mrl, ok := r.Mrl()
	require.True(t, ok)
	require.Equal(t, "rtsp://srv.example/clip.mp4", mrl)

	uri, ok := r.DescriptionURI()
	require.True(t, ok)
	require.Equal(t, "http://example.com/clip", uri)

	email, ok := r.Email()
	require.True(t, ok)
	require.Equal(t, "a@b.com", email)

	phone, ok := r.Phone()
	require.True(t, ok)
	require.Equal(t, "+1-555", phone)

	mc, ok := r.Multicast()
	require.True(t, ok)
	require.Equal(t, "239.0.0.1", mc)

	ttl, ok := r.TTL()
	require.True(t, ok)
	require.Equal(t, "16", ttl)

	require.Equal(t, lastChange, r.LastChange())
	require.Equal(t, float64(60), r.Duration())
	require.Len(t, r.PrivateFields(), 1)
	require.Len(t, r.MediaGroups(), 1)
	require.Equal(t, group, r.MediaGroups()[0])
}

func TestResourceMediaGroupsNeverNil(t *testing.T) {
	r := NewResource("", "", "", "", "", time.Time{}, 0, "", "", nil, nil)
	require.NotNil(t, r.MediaGroups())
}
