// Package description contains the read-only projection of a media
// resource and its tracks that the SDP builder and the RTP session
// read from.
package description

// Kind is the media type of a Media.
type Kind string

// Media kinds.
const (
	KindAudio       Kind = "audio"
	KindVideo       Kind = "video"
	KindApplication Kind = "application"
	KindData        Kind = "data"
	KindControl     Kind = "control"
)

// PrivateFieldKind classifies a SDPField for media-level private fields.
type PrivateFieldKind int

// Private field kinds.
const (
	// FieldEmpty is emitted verbatim, CRLF-terminated.
	FieldEmpty PrivateFieldKind = iota
	// FieldFmtp is emitted as "a=fmtp:<pt> <field>".
	FieldFmtp
	// FieldRtpmap is emitted as "a=rtpmap:<pt> <field>".
	FieldRtpmap
	// FieldOther is skipped by the builder.
	FieldOther
)

// SDPField is one SDP extension line, tagged with how the builder
// must emit it.
type SDPField struct {
	Kind  PrivateFieldKind
	Value string
}

func emptyToAbsent(s string) (string, bool) {
	if s == "" {
		return "", false
	}
	return s, true
}

// Media describes a single elementary stream within a MediaGroup.
//
// ClockRate is always > 0. RTPPayloadType is unique within the
// MediaGroup it belongs to.
type Media struct {
	Kind Kind

	// Name is the track identifier; emitted as TrackID, percent-encoded.
	Name string

	RTPPayloadType uint8
	RTPPort        uint16
	ClockRate      uint32
	EncodingName   string

	// FrameRate is only emitted when Kind == KindVideo and > 0.
	FrameRate float64

	CommonsDeed string
	RDFPage     string
	Title       string
	Author      string

	PrivateFields []SDPField
}

// CommonsDeedOK returns CommonsDeed and whether it is present.
func (m *Media) CommonsDeedOK() (string, bool) { return emptyToAbsent(m.CommonsDeed) }

// RDFPageOK returns RDFPage and whether it is present.
func (m *Media) RDFPageOK() (string, bool) { return emptyToAbsent(m.RDFPage) }

// TitleOK returns Title and whether it is present.
func (m *Media) TitleOK() (string, bool) { return emptyToAbsent(m.Title) }

// AuthorOK returns Author and whether it is present.
func (m *Media) AuthorOK() (string, bool) { return emptyToAbsent(m.Author) }

// MediaGroup is a non-empty ordered sequence of Media sharing a
// transport/port. The first element supplies the group's shared
// attributes; every element contributes a payload-type number to the
// m= line.
type MediaGroup struct {
	Members []*Media
}

// NewMediaGroup builds a MediaGroup from at least one Media.
//
// It panics if members is empty: a MediaGroup with no members can't
// supply the shared attributes the builder needs, and nothing in this
// module constructs one on purpose.
func NewMediaGroup(members ...*Media) *MediaGroup {
	if len(members) == 0 {
		panic("description: MediaGroup requires at least one member")
	}
	return &MediaGroup{Members: members}
}

// First returns the group's shared-attribute member.
func (g *MediaGroup) First() *Media {
	return g.Members[0]
}

// PayloadTypes returns the payload types of every member, in order.
func (g *MediaGroup) PayloadTypes() []uint8 {
	out := make([]uint8, len(g.Members))
	for i, m := range g.Members {
		out[i] = m.RTPPayloadType
	}
	return out
}
