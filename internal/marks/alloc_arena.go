//go:build goexperiment.arenas

package marks

import "arena"

// pauseArena owns a pause-scoped slot array. Freeing it releases the whole
// array in one step at the end of the pause.
type pauseArena struct {
	mem *arena.Arena
}

func newPauseSlots(workers uint) ([]paddedStack, *pauseArena) {
	mem := arena.NewArena()
	slots := arena.MakeSlice[paddedStack](mem, int(workers), int(workers))
	return slots, &pauseArena{mem: mem}
}

func (a *pauseArena) free() {
	a.mem.Free()
}
