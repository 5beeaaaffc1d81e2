//go:build !debug

package main

import "github.com/gosat/cdcl/solver"

// assertOnlyUnsat is a no-op in release builds; see debug_on.go.
func assertOnlyUnsat(res solver.Status) {}
