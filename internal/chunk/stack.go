// Package chunk provides a growable stack backed by fixed-size segments, so
// pushes never move existing elements and popped segments can be recycled
// through a small cache instead of going back to the allocator.
package chunk

const (
	// SegmentSlots is the element capacity of one segment. Sized so a
	// segment of word-pair elements stays near 1KB, keeping per-segment
	// allocation overhead amortized over many pushes.
	SegmentSlots = 64

	// MaxCachedSegments bounds the free-segment cache. Beyond this, emptied
	// segments are released to the allocator.
	MaxCachedSegments = 4
)

type segment[T any] struct {
	next  *segment[T]
	used  int
	slots [SegmentSlots]T
}

// Stack is a segmented LIFO. The zero value is an empty stack ready for use.
// Not safe for concurrent use.
type Stack[T any] struct {
	top    *segment[T]
	size   uint64
	cache  *segment[T]
	cached int
}

// Push appends v. Amortized O(1); allocates only on segment boundaries and
// only when the cache is empty.
func (s *Stack[T]) Push(v T) {
	if s.top == nil || s.top.used == SegmentSlots {
		s.grow()
	}
	s.top.slots[s.top.used] = v
	s.top.used++
	s.size++
}

// Pop removes and returns the most recently pushed element.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if s.size == 0 {
		return zero, false
	}
	seg := s.top
	seg.used--
	v := seg.slots[seg.used]
	seg.slots[seg.used] = zero
	s.size--
	if seg.used == 0 {
		s.top = seg.next
		s.recycle(seg)
	}
	return v, true
}

func (s *Stack[T]) Len() uint64 {
	return s.size
}

func (s *Stack[T]) IsEmpty() bool {
	return s.size == 0
}

// CachedSegments reports how many emptied segments the stack is retaining
// for reuse.
func (s *Stack[T]) CachedSegments() int {
	return s.cached
}

// FlushCache releases every cached segment to the allocator.
func (s *Stack[T]) FlushCache() {
	s.cache = nil
	s.cached = 0
}

// ForEachPtr applies fn to a mutable handle of every element, bottom segment
// last. fn must not push or pop.
func (s *Stack[T]) ForEachPtr(fn func(*T)) {
	for seg := s.top; seg != nil; seg = seg.next {
		for i := 0; i < seg.used; i++ {
			fn(&seg.slots[i])
		}
	}
}

func (s *Stack[T]) grow() {
	var seg *segment[T]
	if s.cache != nil {
		seg = s.cache
		s.cache = seg.next
		s.cached--
		seg.next = nil
	} else {
		seg = new(segment[T])
	}
	seg.next = s.top
	s.top = seg
}

func (s *Stack[T]) recycle(seg *segment[T]) {
	if s.cached >= MaxCachedSegments {
		return
	}
	var zero segment[T]
	*seg = zero
	seg.next = s.cache
	s.cache = seg
	s.cached++
}
