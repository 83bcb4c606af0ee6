// Package bufferpool defines the buffer-pool consumer contract the
// RTP session drains (spec.md §6), plus a reference single-producer/
// single-consumer implementation used by this module's own tests.
//
// The pool's producer side — how a slot's Data is filled from a
// demuxed media resource — lives outside this module; only the
// reader-side contract and a minimal in-memory pool sit here.
package bufferpool

// Slot is one producer-filled unit ready to become one RTP packet.
type Slot struct {
	Data []byte
	// DataSize is the number of meaningful bytes in Data. It may be
	// smaller than len(Data) if the producer over-allocated.
	DataSize int
	Marker   bool
	// SlotSeq is a monotonic, 16-bit wrap-around counter assigned by
	// the producer.
	SlotSeq uint16
	// Timestamp is the media time of this slot, in seconds.
	Timestamp float64
	// RTPTime is pre-computed RTP ticks; 0 means "compute from
	// Timestamp * clock rate" (spec.md design note 9: this makes an
	// explicit zero indistinguishable from absence, and that
	// ambiguity is preserved on purpose).
	RTPTime uint32
}

// Consumer is a single reader's handle into the buffer pool. A
// Consumer is safe for one reader concurrent with one producer; it is
// not safe for multiple concurrent readers.
type Consumer interface {
	// GetReader returns the next ready slot without blocking, or
	// (nil, false) if none is ready yet.
	GetReader() (*Slot, bool)

	// GotReader acknowledges and frees the slot last returned by
	// GetReader. Must be called exactly once per slot returned.
	GotReader()

	// Unref drops this reader's reference to the pool.
	Unref()
}
