package async

import (
	"runtime"
	"sync/atomic"
)

type ringSlot[T any] struct {
	sequence atomic.Uint64
	value    T
}

// Ring is a lock-free MPMC bounded queue using the sequence-per-slot CAS
// protocol (Vyukov style): a slot is writable when its sequence equals the
// producer position and readable when it equals the position plus one.
type Ring[T any] struct {
	capacity uint64
	mask     uint64

	_pad0 [48]byte
	head  atomic.Uint64
	_pad1 [48]byte
	tail  atomic.Uint64
	_pad2 [48]byte

	slots []ringSlot[T]
}

// NewRing returns a ring holding at least capacity elements, rounded up to
// the next power of two (minimum 2).
func NewRing[T any](capacity uint64) *Ring[T] {
	size := uint64(2)
	for size < capacity {
		size <<= 1
	}
	slots := make([]ringSlot[T], size)
	for i := uint64(0); i < size; i++ {
		slots[i].sequence.Store(i)
	}
	return &Ring[T]{
		capacity: size,
		mask:     size - 1,
		slots:    slots,
	}
}

// Enqueue appends value, reporting false when the ring is full.
func (r *Ring[T]) Enqueue(value T) bool {
	for {
		pos := r.tail.Load()
		slot := &r.slots[pos&r.mask]
		seq := slot.sequence.Load()
		delta := int64(seq) - int64(pos)

		if delta == 0 {
			if r.tail.CompareAndSwap(pos, pos+1) {
				slot.value = value
				slot.sequence.Store(pos + 1)
				return true
			}
			continue
		}
		if delta < 0 {
			return false
		}
		runtime.Gosched()
	}
}

// Dequeue removes the oldest value, reporting false when the ring is empty.
func (r *Ring[T]) Dequeue() (T, bool) {
	var zero T
	for {
		pos := r.head.Load()
		slot := &r.slots[pos&r.mask]
		seq := slot.sequence.Load()
		delta := int64(seq) - int64(pos+1)

		if delta == 0 {
			if r.head.CompareAndSwap(pos, pos+1) {
				value := slot.value
				slot.value = zero
				slot.sequence.Store(pos + r.capacity)
				return value, true
			}
			continue
		}
		if delta < 0 {
			return zero, false
		}
		runtime.Gosched()
	}
}
