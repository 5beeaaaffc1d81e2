//go:build !debug

package solver

// debugAssert is a no-op in release builds; see debug_on.go.
func debugAssert(cond bool, format string, args ...interface{}) {}

const debugBuild = false
