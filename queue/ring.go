package queue

import (
	"sync/atomic"

	"github.com/blacktek/console/core"
)

// DefaultCapacity is the buffer capacity used when none is configured.
const DefaultCapacity = 4096

// slot pairs a message with its generation counter. The counter encodes
// slot ownership: seq == pos means free for the producer claiming pos,
// seq == pos+1 means published for the consumer at pos, and the consumer
// stores pos+capacity to free the slot for its next generation.
type slot struct {
	seq atomic.Uint64
	msg core.Message
}

// Buffer is a bounded lock-free multi-producer/single-consumer queue of
// messages. Any number of goroutines may call Push concurrently; exactly
// one goroutine may call Pop.
type Buffer struct {
	slots []slot
	mask  uint64

	// head and tail sit on separate cache lines so producers hammering
	// the head CAS do not invalidate the consumer's tail line.
	head atomic.Uint64
	_    [56]byte
	tail atomic.Uint64
	_    [56]byte
}

// NewBuffer creates a buffer with the given capacity, rounded up to the
// next power of two. A capacity <= 0 selects DefaultCapacity.
func NewBuffer(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	n := uint64(1)
	for n < uint64(capacity) {
		n <<= 1
	}

	b := &Buffer{
		slots: make([]slot, n),
		mask:  n - 1,
	}
	for i := range b.slots {
		b.slots[i].seq.Store(uint64(i))
	}
	return b
}

// Cap returns the buffer's fixed capacity.
func (b *Buffer) Cap() int {
	return len(b.slots)
}

// Push appends msg to the buffer. It returns false when the buffer is
// full and never blocks; retrying is the caller's responsibility. Safe
// for concurrent use by any number of producers.
func (b *Buffer) Push(msg core.Message) bool {
	pos := b.head.Load()

	for {
		s := &b.slots[pos&b.mask]
		seq := s.seq.Load()
		diff := int64(seq) - int64(pos)

		switch {
		case diff == 0:
			// Slot is free for this position. Winning the CAS claims
			// it: no other producer can write this slot until the
			// consumer frees it a full generation later.
			if b.head.CompareAndSwap(pos, pos+1) {
				s.msg = msg
				s.seq.Store(pos + 1)
				return true
			}
			pos = b.head.Load()
		case diff < 0:
			// The consumer has not freed this slot yet.
			return false
		default:
			// Another producer advanced head past our snapshot.
			pos = b.head.Load()
		}
	}
}

// Pop removes and returns the oldest message. It returns false when the
// buffer is empty and never blocks. Only a single consumer goroutine may
// call Pop; the lifecycle guarantees this by running exactly one drain
// goroutine.
func (b *Buffer) Pop() (core.Message, bool) {
	pos := b.tail.Load()
	s := &b.slots[pos&b.mask]

	seq := s.seq.Load()
	if int64(seq)-int64(pos+1) != 0 {
		return core.Message{}, false
	}

	b.tail.Store(pos + 1)
	msg := s.msg
	s.msg = core.Message{}
	s.seq.Store(pos + uint64(len(b.slots)))
	return msg, true
}
