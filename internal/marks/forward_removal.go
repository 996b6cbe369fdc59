package marks

import "gcmarks/internal/heap"

// ForwardingCleaner is the per-object visitor a worker applies while walking
// live objects during a non-compacting full collection. An object still
// carrying a forwarding reference left by an aborted or partial move gets
// its displaced word preserved onto the worker's stack and its header reset
// to a valid state; objects not forwarded are no-ops.
type ForwardingCleaner struct {
	stack *Stack
}

func NewForwardingCleaner(stack *Stack) *ForwardingCleaner {
	return &ForwardingCleaner{stack: stack}
}

func (c *ForwardingCleaner) VisitObject(obj *heap.Object) {
	if !obj.IsForwarded() {
		return
	}
	c.stack.entries.Push(preserveForwarded(obj))
}
