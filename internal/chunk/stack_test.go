package chunk

import "testing"

func TestStackPushPopAcrossSegments(t *testing.T) {
	const n = 3*SegmentSlots + 5

	var s Stack[int]
	for i := 0; i < n; i++ {
		s.Push(i)
	}
	if got := s.Len(); got != n {
		t.Fatalf("unexpected length: got=%d want=%d", got, n)
	}

	for i := n - 1; i >= 0; i-- {
		v, ok := s.Pop()
		if !ok {
			t.Fatalf("pop failed at %d", i)
		}
		if v != i {
			t.Fatalf("unexpected pop value: got=%d want=%d", v, i)
		}
	}
	if _, ok := s.Pop(); ok {
		t.Fatalf("pop should fail on empty stack")
	}
	if !s.IsEmpty() {
		t.Fatalf("stack should be empty after draining")
	}
}

func TestStackSegmentCacheBounded(t *testing.T) {
	var s Stack[int]
	const n = (MaxCachedSegments + 3) * SegmentSlots
	for i := 0; i < n; i++ {
		s.Push(i)
	}
	for i := 0; i < n; i++ {
		if _, ok := s.Pop(); !ok {
			t.Fatalf("pop failed at %d", i)
		}
	}
	if got := s.CachedSegments(); got != MaxCachedSegments {
		t.Fatalf("unexpected cache size: got=%d want=%d", got, MaxCachedSegments)
	}

	s.FlushCache()
	if got := s.CachedSegments(); got != 0 {
		t.Fatalf("cache should be empty after flush, got=%d", got)
	}
}

func TestStackReusesCachedSegments(t *testing.T) {
	var s Stack[int]
	for i := 0; i < SegmentSlots; i++ {
		s.Push(i)
	}
	for i := 0; i < SegmentSlots; i++ {
		s.Pop()
	}
	if got := s.CachedSegments(); got != 1 {
		t.Fatalf("expected one cached segment, got=%d", got)
	}

	s.Push(42)
	if got := s.CachedSegments(); got != 0 {
		t.Fatalf("push should reuse the cached segment, cache=%d", got)
	}
	if v, ok := s.Pop(); !ok || v != 42 {
		t.Fatalf("unexpected pop after reuse: got=%d ok=%v", v, ok)
	}
}

func TestStackForEachPtrMutates(t *testing.T) {
	var s Stack[int]
	const n = SegmentSlots + 10
	for i := 0; i < n; i++ {
		s.Push(i)
	}

	visited := 0
	s.ForEachPtr(func(p *int) {
		*p += 1000
		visited++
	})
	if visited != n {
		t.Fatalf("unexpected visit count: got=%d want=%d", visited, n)
	}

	for i := n - 1; i >= 0; i-- {
		v, ok := s.Pop()
		if !ok {
			t.Fatalf("pop failed at %d", i)
		}
		if v != i+1000 {
			t.Fatalf("mutation not visible: got=%d want=%d", v, i+1000)
		}
	}
}
