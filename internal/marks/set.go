package marks

import (
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"unsafe"

	"gcmarks/internal/async"
)

var (
	ErrZeroWorkers        = errors.New("preserved set requires at least one worker slot")
	ErrAlreadyInitialized = errors.New("preserved set already initialized")
	ErrNotInitialized     = errors.New("preserved set not initialized")
	ErrSetNotEmpty        = errors.New("preserved set still holds entries")
)

// paddedStack keeps adjacent workers' stacks on separate cache lines.
// Pushes from neighboring workers during a hot pause share nothing
// logically and must not share lines either.
type paddedStack struct {
	Stack
	_pad [CacheLineSize - int(unsafe.Sizeof(Stack{}))%CacheLineSize]byte
}

// Set owns one preserved-mark stack per participating worker. The worker
// count is only known at a collection pause, so the slot array is allocated
// by Init and torn down by Reclaim; the allocation mode is fixed once at
// construction.
type Set struct {
	heapResident bool

	slots []paddedStack
	num   uint
	pause *pauseArena
}

// NewSet fixes the allocation mode: heap-resident arrays persist across a
// whole collection cycle, pause-scoped ones are reclaimed with their arena
// at the end of a pause.
func NewSet(heapResident bool) *Set {
	return &Set{heapResident: heapResident}
}

// Init allocates the padded slot array, one stack per worker.
func (s *Set) Init(workers uint) error {
	if s.slots != nil {
		return ErrAlreadyInitialized
	}
	if workers == 0 {
		return ErrZeroWorkers
	}
	if s.heapResident {
		s.slots = make([]paddedStack, workers)
	} else {
		s.slots, s.pause = newPauseSlots(workers)
	}
	s.num = workers
	s.assertEmpty()
	return nil
}

// Num reports the worker count the set was initialized with, 0 when
// uninitialized.
func (s *Set) Num() uint {
	return s.num
}

// Get returns the stack owned by the given worker.
func (s *Set) Get(worker uint) *Stack {
	if debugAsserts && worker >= s.num {
		panic(fmt.Sprintf("marks: worker %d out of range, num = %d", worker, s.num))
	}
	return &s.slots[worker].Stack
}

// Restore writes every preserved word in the set back and returns the
// number of entries restored. With a nil gang the slots are drained
// sequentially; otherwise a restore task partitions whole slots across the
// gang's workers, first-available-wins.
func (s *Set) Restore(gang *async.Gang) (uint64, error) {
	if s.slots == nil {
		return 0, ErrNotInitialized
	}

	var sizeBefore uint64
	if debugAsserts {
		for i := uint(0); i < s.num; i++ {
			sizeBefore += s.Get(i).Size()
		}
	}

	var total atomic.Uint64
	if gang == nil {
		for i := uint(0); i < s.num; i++ {
			s.Get(i).restoreAndTally(&total)
		}
	} else {
		task := newParRestoreTask(gang.Workers(), s, &total)
		gang.Run(task)
		task.subTasks.Wait()
	}

	s.assertEmpty()
	restored := total.Load()
	if debugAsserts && restored != sizeBefore {
		panic(fmt.Sprintf("marks: restored %d entries, expected %d", restored, sizeBefore))
	}
	slog.Debug("restored preserved marks", "count", restored)
	return restored, nil
}

// AdjustForwarded runs the retargeting pass over every slot, for the serial
// full-collection path where one thread owns the whole set.
func (s *Set) AdjustForwarded() {
	for i := uint(0); i < s.num; i++ {
		s.Get(i).AdjustForwarded()
	}
}

// Reclaim tears down every slot and frees the array, returning the set to
// the uninitialized state so Init may run again with a new worker count.
// The set must be empty.
func (s *Set) Reclaim() error {
	if s.slots == nil {
		return ErrNotInitialized
	}
	for i := uint(0); i < s.num; i++ {
		if s.Get(i).Size() != 0 {
			return ErrSetNotEmpty
		}
	}
	for i := uint(0); i < s.num; i++ {
		s.Get(i).entries.FlushCache()
	}
	if s.pause != nil {
		s.pause.free()
		s.pause = nil
	}
	s.slots = nil
	s.num = 0
	return nil
}

func (s *Set) assertEmpty() {
	if !debugAsserts {
		return
	}
	for i := uint(0); i < s.num; i++ {
		s.Get(i).assertEmpty()
	}
}
