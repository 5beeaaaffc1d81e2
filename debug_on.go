//go:build debug

package main

import "github.com/gosat/cdcl/solver"

// assertOnlyUnsat renders the source's old `assert(res = 20)` typo (spec §9
// open question) as a proper equality check, compiled in only under the
// debug build tag alongside the solver package's own invariant checks.
func assertOnlyUnsat(res solver.Status) {
	if res != solver.Unsat {
		panic("solve returned neither Sat nor Unsat")
	}
}
