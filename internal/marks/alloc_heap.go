//go:build !goexperiment.arenas

package marks

// Fallback when arenas are unavailable: the pause-scoped array comes from
// the regular heap and is released by dropping the reference at reclaim.
type pauseArena struct{}

func newPauseSlots(workers uint) ([]paddedStack, *pauseArena) {
	return make([]paddedStack, workers), nil
}

func (a *pauseArena) free() {}
