// Package liberrors holds the RTP session's typed error taxonomy
// (spec.md §7). Each kind maps to a fixed handling policy in
// pkg/rtpsession; the types exist so callers can distinguish kinds
// with errors.As instead of string matching.
package liberrors

// ErrAlloc is returned when allocating a packet buffer fails during
// Drain. The current drain loop is aborted; the session remains
// usable.
type ErrAlloc struct{}

func (ErrAlloc) Error() string { return "failed to allocate packet buffer" }

// ErrEndOfStream is returned when the event_buffer_low hook signals
// EOF. It is surfaced to the caller after being logged at INFO.
type ErrEndOfStream struct{}

func (ErrEndOfStream) Error() string { return "end of stream reached" }

// ErrFatal wraps an unrecognized status returned by event_buffer_low.
// It is surfaced to the caller after being logged at FATAL.
type ErrFatal struct {
	Status int
}

func (e ErrFatal) Error() string { return "unable to emit event buffer low" }

// ErrInvalidProto is returned by RecvRTCP when called with a protocol
// other than RTCP.
type ErrInvalidProto struct{}

func (ErrInvalidProto) Error() string { return "invalid protocol for recv" }
