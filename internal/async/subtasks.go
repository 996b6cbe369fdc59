package async

import "sync/atomic"

// SubTasks hands out the indices 0..total-1 to a fixed number of
// participating threads, first-available-wins, and tracks a two-phase
// completion protocol: a thread first exhausts TryClaim, then signals
// MarkCompleted exactly once. Wait returns only after every participant has
// signaled, so a shared result accumulated during the claims is safe to read.
type SubTasks struct {
	total   uint64
	threads uint64

	cursor    atomic.Uint64
	completed atomic.Uint64
	done      chan struct{}
}

// NewSubTasks configures a distributor over total independent units shared
// by the given number of participating threads.
func NewSubTasks(total, threads uint) *SubTasks {
	return &SubTasks{
		total:   uint64(total),
		threads: uint64(threads),
		done:    make(chan struct{}),
	}
}

// TryClaim returns the next unclaimed unit index, or false when none remain.
// No index is ever handed out twice.
func (s *SubTasks) TryClaim() (uint, bool) {
	for {
		claimed := s.cursor.Load()
		if claimed >= s.total {
			return 0, false
		}
		if s.cursor.CompareAndSwap(claimed, claimed+1) {
			return uint(claimed), true
		}
	}
}

// MarkCompleted records that one participating thread has stopped claiming.
// The last participant releases Wait.
func (s *SubTasks) MarkCompleted() {
	if s.completed.Add(1) == s.threads {
		close(s.done)
	}
}

// Wait blocks until every participating thread has called MarkCompleted.
func (s *SubTasks) Wait() {
	<-s.done
}
