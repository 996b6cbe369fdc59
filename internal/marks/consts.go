package marks

// Hardware and memory-layout assumptions.
const (
	CacheLineSize = 128
)
