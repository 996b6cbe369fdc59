package marks

import (
	"sync/atomic"

	"gcmarks/internal/async"
)

// parRestoreTask restores the set in parallel at whole-slot granularity.
// Each gang worker repeatedly claims the next unclaimed slot index until
// none remain, so no slot is ever touched by two workers; the claim order
// across workers is undefined. The two-phase completion in SubTasks keeps
// the shared total unread until every worker has both stopped claiming and
// signaled.
type parRestoreTask struct {
	set      *Set
	subTasks *async.SubTasks
	total    *atomic.Uint64
}

func newParRestoreTask(workers uint, set *Set, total *atomic.Uint64) *parRestoreTask {
	return &parRestoreTask{
		set:      set,
		subTasks: async.NewSubTasks(set.Num(), workers),
		total:    total,
	}
}

func (t *parRestoreTask) Name() string {
	return "parallel preserved mark restoration"
}

func (t *parRestoreTask) Work(worker uint) {
	for {
		slot, ok := t.subTasks.TryClaim()
		if !ok {
			break
		}
		t.set.Get(slot).restoreAndTally(t.total)
	}
	t.subTasks.MarkCompleted()
}
