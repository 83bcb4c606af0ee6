// Package sdp builds Session Description Protocol (RFC 4566) documents
// from a resource description. Apart from the o= line's session id,
// which is taken from Now, the output depends only on the (resource,
// request URL, server identity) snapshot: with Now fixed, the same
// snapshot always produces byte-identical output.
package sdp

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/streamforge/mediacore/pkg/base"
	"github.com/streamforge/mediacore/pkg/description"
	"github.com/streamforge/mediacore/pkg/ntp"
)

// ErrNotFound is returned when the resource could not be resolved.
var ErrNotFound = errors.New("sdp: resource not found")

// Now returns the current time used to compute the o= line's session
// id. Tests override it to get deterministic output.
var Now = time.Now

// ServerIdentity names the server advertised in the a=tool: line.
type ServerIdentity struct {
	Package string
	Version string
}

const defaultTTL = "32"

const crlf = "\r\n"

// Build renders resource as a SDP document. A nil resource means the
// RSTP-layer lookup that should have produced it failed, and Build
// returns ErrNotFound.
func Build(resource *description.Resource, requestURL *base.URL, identity ServerIdentity) (string, error) {
	if resource == nil {
		return "", ErrNotFound
	}

	var b strings.Builder

	writeLine(&b, "v=0")

	sessionID := ntp.Seconds(Now())
	sessionVersion := sessionID
	lastChange := resource.LastChange()
	if !lastChange.IsZero() {
		sessionVersion = ntp.Seconds(lastChange)
	}
	writeLine(&b, fmt.Sprintf("o=- %s %s IN IP4 %s",
		formatNTP(sessionID), formatNTP(sessionVersion), requestURL.Hostname()))

	name, ok := resource.Name()
	if !ok {
		name = "RTSP Session"
	}
	writeLine(&b, "s="+name)

	if uri, ok := resource.DescriptionURI(); ok {
		writeLine(&b, "u="+uri)
	}
	if email, ok := resource.Email(); ok {
		writeLine(&b, "e="+email)
	}
	if phone, ok := resource.Phone(); ok {
		writeLine(&b, "p="+phone)
	}

	if multicast, ok := resource.Multicast(); ok {
		ttl, ok := resource.TTL()
		if !ok {
			ttl = defaultTTL
		}
		writeLine(&b, fmt.Sprintf("c=IN IP4 %s/%s", multicast, ttl))
	} else {
		writeLine(&b, "c=IN IP4 0.0.0.0")
	}

	writeLine(&b, "t=0 0")
	writeLine(&b, "a=type:broadcast")
	writeLine(&b, fmt.Sprintf("a=tool:%s %s Streaming Server", identity.Package, identity.Version))
	writeLine(&b, "a=control:*")

	if d := resource.Duration(); d > 0 {
		writeLine(&b, fmt.Sprintf("a=range:npt=0-%s", formatReal(d)))
	}

	for _, f := range resource.PrivateFields() {
		if f.Kind == description.FieldEmpty {
			writeLine(&b, f.Value)
		}
	}

	for _, group := range resource.MediaGroups() {
		writeMediaBlock(&b, group)
	}

	return b.String(), nil
}

func writeMediaBlock(b *strings.Builder, group *description.MediaGroup) {
	first := group.First()

	pts := make([]string, len(group.PayloadTypes()))
	for i, pt := range group.PayloadTypes() {
		pts[i] = strconv.FormatUint(uint64(pt), 10)
	}
	writeLine(b, fmt.Sprintf("m=%s %d RTP/AVP %s", first.Kind, first.RTPPort, strings.Join(pts, " ")))

	writeLine(b, "a=control:TrackID="+percentEncode(first.Name))

	if first.Kind == description.KindVideo && first.FrameRate > 0 {
		writeLine(b, "a=framerate:"+formatReal(first.FrameRate))
	}

	for _, m := range group.Members {
		for _, f := range m.PrivateFields {
			switch f.Kind {
			case description.FieldEmpty:
				writeLine(b, f.Value)
			case description.FieldFmtp:
				writeLine(b, fmt.Sprintf("a=fmtp:%d %s", m.RTPPayloadType, f.Value))
			case description.FieldRtpmap:
				writeLine(b, fmt.Sprintf("a=rtpmap:%d %s", m.RTPPayloadType, f.Value))
			default: // description.FieldOther: ignored
			}
		}
	}

	if v, ok := first.CommonsDeedOK(); ok {
		writeLine(b, "a=uriLicense:"+v)
	}
	if v, ok := first.RDFPageOK(); ok {
		writeLine(b, "a=uriMetadata:"+v)
	}
	if v, ok := first.TitleOK(); ok {
		writeLine(b, "a=title:"+v)
	}
	if v, ok := first.AuthorOK(); ok {
		writeLine(b, "a=author:"+v)
	}
}

func writeLine(b *strings.Builder, line string) {
	b.WriteString(line)
	b.WriteString(crlf)
}

// formatNTP prints a NTP time with zero fractional digits, as %.0f would.
func formatNTP(v float64) string {
	return strconv.FormatFloat(v, 'f', 0, 64)
}

// formatReal prints a real number with six fractional digits, as %f would.
func formatReal(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
