// Package transport provides a thin, uniform facade over a session's
// paired RTP/RTCP sockets. The underlying socket implementation — raw
// datagram or stream I/O — lives outside this module (spec.md §1, §6);
// this package only standardizes how a session holds, addresses, and
// closes the pair it owns; it does not open sockets.
package transport

import "net"

// SockType is the read-only transport kind of a Socket, set once at
// acquisition time.
type SockType int

// Socket kinds.
const (
	UDP SockType = iota
	Local
	TCP
)

// Socket is the raw I/O primitive a Transport wraps.
type Socket interface {
	// Write sends buf, optionally to peer (nil for a connected
	// socket). It must not block past the caller's own non-blocking
	// policy — real-time media prefers drop over queueing.
	Write(buf []byte, peer net.Addr) (int, error)

	// Read fills buf. For a UDP socket it also reports the sender's
	// address; for a Local socket addr is always nil.
	Read(buf []byte) (n int, addr net.Addr, err error)

	// Close is idempotent at the OS layer: closing an already-closed
	// Socket returns an error that callers of Transport.Close ignore.
	Close() error

	// LocalPort is used by the port-allocator handshake.
	LocalPort() int

	Type() SockType
}

// Transport owns a session's paired RTP and RTCP sockets plus a
// cached address of the last peer seen on the RTCP socket.
type Transport struct {
	RTP      Socket
	RTCP     Socket
	LastPeer net.Addr
}

// Close drops both sockets. It is idempotent: closing twice is safe
// because the underlying Socket.Close contract is idempotent at the
// OS layer, and close errors here are swallowed by design (best-effort
// teardown, spec.md §4.D).
func (t *Transport) Close() {
	if t.RTP != nil {
		_ = t.RTP.Close()
	}
	if t.RTCP != nil {
		_ = t.RTCP.Close()
	}
}

// LocalPorts returns the (RTP, RTCP) local port pair.
func (t *Transport) LocalPorts() (int, int) {
	return t.RTP.LocalPort(), t.RTCP.LocalPort()
}
