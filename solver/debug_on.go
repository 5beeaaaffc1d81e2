//go:build debug

package solver

import "fmt"

// debugAssert panics with the message built from format and args if cond
// is false. Compiled in only under the
// "debug" build tag, per spec §7: "Internal inconsistencies ... are
// detected only in debug builds and abort. In release builds the core
// trusts its invariants."
func debugAssert(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}

const debugBuild = true
