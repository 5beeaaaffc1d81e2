// Package solver implements a single-threaded CDCL SAT solver: two-watched-
// literal propagation, first-UIP conflict analysis, a VMTF decision
// heuristic, EMA-driven glue/size-based restarts and clause-database
// reduction, and trail-reuse backjumping on restart.
//
// A problem is built by parsing a DIMACS CNF stream:
//
//	pb, err := solver.ParseCNF("input.cnf", f)
//	if err != nil {
//	    // fatal: malformed input
//	}
//	s := solver.New(pb, solver.DefaultConfig())
//	switch s.Solve() {
//	case solver.Sat:
//	    model := s.Model()
//	case solver.Unsat:
//	    // the formula has no satisfying assignment
//	}
//
// The solver never preprocesses beyond the parse-time simplification in
// ParseCNF (tautology elimination, unit detection), never solves under
// assumptions, and never runs more than one search at a time.
package solver
