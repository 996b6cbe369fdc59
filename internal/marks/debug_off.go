//go:build marksnodebug

package marks

const debugAsserts = false
