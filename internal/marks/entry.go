// Package marks saves object header words that a compacting collector is
// about to overwrite with forwarding references, and writes them back once
// the objects have stopped moving. Each collector worker owns one stack of
// saved words; restoration runs either sequentially or partitioned across a
// worker gang at whole-stack granularity.
package marks

import "gcmarks/internal/heap"

// savedMark pairs an object with the header word it held before the
// collector overwrote it. The word is written back verbatim at restore time;
// the only mutation in between is retargeting to a relocated copy.
type savedMark struct {
	obj  *heap.Object
	mark heap.Mark
}

func (e *savedMark) writeBack() {
	e.obj.SetMarkWord(e.mark)
}

func (e *savedMark) object() *heap.Object {
	return e.obj
}

func (e *savedMark) retarget(dst *heap.Object) {
	e.obj = dst
}

// preserveForwarded builds an entry for an object found still carrying a
// forwarding reference, recovering the word displaced by the forwarding
// overlay, then resets the header to the preserved sentinel so a second
// visit sees a non-forwarded object and does not double-preserve.
func preserveForwarded(obj *heap.Object) savedMark {
	e := savedMark{obj: obj, mark: obj.DisplacedMark()}
	obj.RemoveForwarding(heap.TagPreserved)
	return e
}
