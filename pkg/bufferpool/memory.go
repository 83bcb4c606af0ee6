package bufferpool

import (
	"sync"
)

// MemoryPool is a fixed-capacity, power-of-two ring of slots shared by
// one producer and one consumer. It is the reference Consumer this
// module's own tests drive the RTP session against; a real deployment
// plugs in a pool backed by the demuxer instead.
type MemoryPool struct {
	size   uint64
	mutex  sync.Mutex
	slots  []*Slot
	readAt uint64
	// writeAt is the next slot index the producer will fill.
	writeAt uint64
	refs    int
}

// NewMemoryPool allocates a MemoryPool. size must be a power of two.
func NewMemoryPool(size uint64) *MemoryPool {
	if size == 0 || (size&(size-1)) != 0 {
		panic("bufferpool: size must be a power of two")
	}
	return &MemoryPool{
		size:  size,
		slots: make([]*Slot, size),
		refs:  1,
	}
}

// Push publishes a slot for the consumer. It returns false if the
// ring is full (the producer is outrunning the consumer).
func (p *MemoryPool) Push(s *Slot) bool {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.slots[p.writeAt%p.size] != nil {
		return false
	}
	p.slots[p.writeAt%p.size] = s
	p.writeAt++
	return true
}

// GetReader implements Consumer.
func (p *MemoryPool) GetReader() (*Slot, bool) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	s := p.slots[p.readAt%p.size]
	if s == nil {
		return nil, false
	}
	return s, true
}

// GotReader implements Consumer.
func (p *MemoryPool) GotReader() {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.slots[p.readAt%p.size] = nil
	p.readAt++
}

// Unref implements Consumer.
func (p *MemoryPool) Unref() {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.refs--
}

// Refs reports the pool's current reference count, for tests.
func (p *MemoryPool) Refs() int {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.refs
}
