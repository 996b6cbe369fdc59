package marks

import "unsafe"

// A worker slot must occupy exactly one cache line.
var _ [CacheLineSize - int(unsafe.Sizeof(paddedStack{}))]byte
var _ [int(unsafe.Sizeof(paddedStack{})) - CacheLineSize]byte
