// Package rtpsession implements the RTP session object: it owns a
// client's transport and consumer handle and drives the buffer-pool →
// packetizer → socket path, including RTCP reception and ordered
// teardown (spec.md §4.D).
package rtpsession

import (
	"crypto/rand"
	"encoding/binary"
	"sync"

	"github.com/pion/rtcp"

	"github.com/streamforge/mediacore/pkg/bufferpool"
	"github.com/streamforge/mediacore/pkg/liberrors"
	"github.com/streamforge/mediacore/pkg/portalloc"
	"github.com/streamforge/mediacore/pkg/rtppacket"
	"github.com/streamforge/mediacore/pkg/sessionlog"
	"github.com/streamforge/mediacore/pkg/tracksel"
	"github.com/streamforge/mediacore/pkg/transport"
)

// Proto identifies the protocol a socket read is performed on.
type Proto int

// Protocols recognized by RecvRTCP.
const (
	ProtoRTCP Proto = iota
	ProtoOther
)

// EventStatus is the result of the event_buffer_low hook.
type EventStatus int

// Statuses recognized by the event_buffer_low hook (spec.md §4.D).
const (
	EventOK EventStatus = iota
	EventEOF
)

// EventBufferLowFunc requests more data from the producer once a
// session has drained everything currently ready. It is supplied by
// the owner of the session, not by this package.
type EventBufferLowFunc func(sel tracksel.Selector) EventStatus

// RoleStats are the packet/octet counters kept per RTCP role.
type RoleStats struct {
	PacketsSent uint32
	OctetsSent  uint32
}

// Stats holds the per-role counters spec.md §3 calls rtcp_stats.
type Stats struct {
	Server RoleStats
	Client RoleStats
}

// State is the session's lifecycle stage (spec.md §4.D).
type State int

// Lifecycle states. Fresh precedes this package's scope (transport
// allocated, no consumer bound yet); Closed is terminal and enforced
// by the owner discarding the Session, not by this type.
const (
	StateFresh State = iota
	StateActive
	StateDraining
	StateClosed
)

// Session owns one client's per-track sending state and the transport
// it sends on. The zero value is not usable; build one with New.
type Session struct {
	mutex sync.Mutex

	ssrc         uint32
	startSeq     uint16
	startRTPTime uint32

	trackSelector tracksel.Selector
	consumer      bufferpool.Consumer
	transport     *transport.Transport
	allocator     portalloc.Allocator
	log           *sessionlog.Logger
	eventHook     EventBufferLowFunc

	stats Stats
	state State
}

// New builds a Session with random ssrc, start sequence, and start
// RTP timestamp, as required by spec.md §3. Randomness is sourced
// from crypto/rand rather than a PRNG: this package has no other
// source of entropy to seed one from.
func New(
	trans *transport.Transport,
	consumer bufferpool.Consumer,
	sel tracksel.Selector,
	allocator portalloc.Allocator,
	log *sessionlog.Logger,
	hook EventBufferLowFunc,
) (*Session, error) {
	ssrc, err := randUint32()
	if err != nil {
		return nil, err
	}
	startSeq, err := randUint16()
	if err != nil {
		return nil, err
	}
	startRTPTime, err := randUint32()
	if err != nil {
		return nil, err
	}

	return &Session{
		ssrc:          ssrc,
		startSeq:      startSeq,
		startRTPTime:  startRTPTime,
		trackSelector: sel,
		consumer:      consumer,
		transport:     trans,
		allocator:     allocator,
		log:           log,
		eventHook:     hook,
		state:         StateActive,
	}, nil
}

func randUint32() (uint32, error) {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b[:]), nil
}

func randUint16() (uint16, error) {
	var b [2]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b[:]), nil
}

// Stats returns a copy of the session's current RTCP counters.
func (s *Session) Stats() Stats {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.stats
}

// State reports the session's current lifecycle stage.
func (s *Session) State() State {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.state
}

// Drain consumes every currently ready slot from the buffer-pool
// consumer, packetizes and writes each one, then asks the producer
// for more via the event hook (spec.md §4.D).
func (s *Session) Drain() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	track := s.trackSelector.SelectedTrack()

	for {
		slot, ok := s.consumer.GetReader()
		if !ok {
			break
		}

		buf, ts, err := rtppacket.Packetize(slot, s.startSeq, s.startRTPTime, s.ssrc, track)
		if err != nil {
			s.consumer.GotReader()
			s.log.AllocError(err)
			return liberrors.ErrAlloc{}
		}
		s.log.RTPTimestamp(ts)

		if _, err := s.transport.RTP.Write(buf, s.transport.LastPeer); err != nil {
			s.log.PacketLost(err)
			s.consumer.GotReader()
			continue
		}

		s.stats.Server.PacketsSent++
		s.stats.Server.OctetsSent += uint32(slot.DataSize)
		s.consumer.GotReader()
	}

	status := s.eventHook(s.trackSelector)
	switch status {
	case EventOK:
		return nil
	case EventEOF:
		s.state = StateDraining
		s.log.EndOfStream()
		return liberrors.ErrEndOfStream{}
	default:
		s.log.Fatal(int(status))
		return liberrors.ErrFatal{Status: int(status)}
	}
}

// RecvRTCP reads one datagram off the RTCP socket. It returns
// ErrInvalidProto immediately for any protocol other than RTCP
// (spec.md §4.D). For a UDP transport the sender address is cached
// into transport.LastPeer; for any other socket type no address is
// recorded.
func (s *Session) RecvRTCP(proto Proto, buf []byte) (int, error) {
	if proto != ProtoRTCP {
		return -1, liberrors.ErrInvalidProto{}
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	n, addr, err := s.transport.RTCP.Read(buf)
	if err != nil {
		return n, err
	}
	if s.transport.RTCP.Type() == transport.UDP && addr != nil {
		s.transport.LastPeer = addr
	}

	// A SenderReport's PacketCount/OctetCount are the client's own
	// send counters; a ReceiverReport carries no such counts.
	if packets, unmarshalErr := rtcp.Unmarshal(buf[:n]); unmarshalErr == nil {
		for _, p := range packets {
			if sr, ok := p.(*rtcp.SenderReport); ok {
				s.stats.Client.PacketsSent = sr.PacketCount
				s.stats.Client.OctetsSent = sr.OctetCount
			}
		}
	}

	return n, nil
}

// Destroy releases the session's resources in the fixed order spec.md
// §4.D mandates. Every step runs even if an earlier one reported an
// error; close errors are swallowed (best-effort teardown).
func (s *Session) Destroy() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	rtpPort, rtcpPort := s.transport.LocalPorts()

	switch s.transport.RTP.Type() {
	case transport.UDP:
		s.allocator.ReleasePortPair(portalloc.Pair{RTP: rtpPort, RTCP: rtcpPort})
	default:
		// non-UDP sockets own no allocated pair; nothing to release.
	}

	s.transport.Close()
	s.trackSelector.CloseTracks()
	s.consumer.Unref()

	s.state = StateClosed
}
