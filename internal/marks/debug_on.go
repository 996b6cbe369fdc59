//go:build !marksnodebug

package marks

// debugAsserts gates the invariant checks that scan whole stacks or
// cross-check totals. Build with -tags marksnodebug to compile them out.
const debugAsserts = true
