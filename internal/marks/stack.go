package marks

import (
	"fmt"
	"sync/atomic"

	"gcmarks/internal/chunk"
	"gcmarks/internal/heap"
)

// Stack is one worker's preserved-mark store. It is owned by exactly one
// worker for a whole preserve/adjust/restore cycle and is never accessed by
// two workers concurrently.
type Stack struct {
	entries chunk.Stack[savedMark]
}

// Push saves the given header word for obj. Losing a preserved word is a
// correctness violation, so there is no failure path.
func (s *Stack) Push(obj *heap.Object, m heap.Mark) {
	s.entries.Push(savedMark{obj: obj, mark: m})
}

// PushIfNecessary saves the word only when it carries information the
// prototype cannot reconstruct. Most objects carry the prototype, so the
// common path pushes nothing.
func (s *Stack) PushIfNecessary(obj *heap.Object, m heap.Mark) {
	if m.MustBePreserved() {
		s.Push(obj, m)
	}
}

// Size reports the number of entries currently held.
func (s *Stack) Size() uint64 {
	return s.entries.Len()
}

// Restore pops every entry and writes its saved word back into its object,
// then releases the segment cache so no capacity is retained across
// collections. Not safe to call concurrently with Push on the same stack.
func (s *Stack) Restore() {
	for {
		e, ok := s.entries.Pop()
		if !ok {
			break
		}
		e.writeBack()
	}
	s.entries.FlushCache()
	s.assertEmpty()
}

// restoreAndTally restores and adds the pre-restore size into total.
func (s *Stack) restoreAndTally(total *atomic.Uint64) {
	n := s.Size()
	s.Restore()
	// Only pay the atomic when there was anything to count.
	if n > 0 {
		total.Add(n)
	}
}

// AdjustForwarded retargets every entry whose object was relocated after it
// was preserved, without removing any entry. Needed when preservation and
// the final relocation fall in different sub-phases of a full collection.
func (s *Stack) AdjustForwarded() {
	s.entries.ForEachPtr(func(e *savedMark) {
		if obj := e.object(); obj.IsForwarded() {
			e.retarget(obj.Forwardee())
		}
	})
}

func (s *Stack) assertEmpty() {
	if !debugAsserts {
		return
	}
	if n := s.entries.Len(); n != 0 {
		panic(fmt.Sprintf("marks: stack expected to be empty, size = %d", n))
	}
	if c := s.entries.CachedSegments(); c != 0 {
		panic(fmt.Sprintf("marks: stack expected to have no cached segments, cache size = %d", c))
	}
}
