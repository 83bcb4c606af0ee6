// Package rtppacket turns one buffer-pool slot into one RTP datagram.
package rtppacket

import (
	"math"

	"github.com/pion/rtp"

	"github.com/streamforge/mediacore/pkg/bufferpool"
	"github.com/streamforge/mediacore/pkg/tracksel"
)

// Packetize builds the 12-byte RTP header plus slot.Data[:slot.DataSize]
// per spec.md §4.C: version 2, no padding, no extension, no CSRCs. It
// also returns the computed RTP timestamp, useful for diagnostic
// logging without re-deriving it.
func Packetize(
	slot *bufferpool.Slot, startSeq uint16, startRTPTime uint32, ssrc uint32, track tracksel.Track,
) (buf []byte, timestamp uint32, err error) {
	rtpDelta := slot.RTPTime
	if rtpDelta == 0 {
		rtpDelta = uint32(math.Round(slot.Timestamp * float64(track.ClockRate())))
	}
	timestamp = startRTPTime + rtpDelta

	pkt := &rtp.Packet{
		Header: rtp.Header{
			Version:        2,
			Padding:        false,
			Extension:      false,
			Marker:         slot.Marker,
			PayloadType:    track.PayloadType(),
			SequenceNumber: startSeq + slot.SlotSeq - 1,
			Timestamp:      timestamp,
			SSRC:           ssrc,
		},
		Payload: slot.Data[:slot.DataSize],
	}

	buf, err = pkt.Marshal()
	return buf, timestamp, err
}
