package solver

// Describes the basic integer-indexed types used throughout the solver: Lit,
// Var and the overall Status of a search.

// Status is the status of the overall search at a given moment.
type Status byte

const (
	// Indet means the problem is not proven SAT or UNSAT yet.
	Indet = Status(iota)
	// Sat means a satisfying assignment was found.
	Sat
	// Unsat means the empty clause was derived.
	Unsat
)

func (s Status) String() string {
	switch s {
	case Indet:
		return "INDETERMINATE"
	case Sat:
		return "SATISFIABLE"
	case Unsat:
		return "UNSATISFIABLE"
	default:
		panic("invalid status")
	}
}

// ExitCode returns the process exit code associated with a terminal status,
// as required by the DIMACS output contract (10 for SAT, 20 for UNSAT).
func (s Status) ExitCode() int {
	switch s {
	case Sat:
		return 10
	case Unsat:
		return 20
	default:
		panic("no exit code for an indeterminate status")
	}
}

// Var indexes a variable. Vars start at 0, so CNF variable 1 is encoded as
// Var 0; this keeps every per-variable table a dense, zero-based slice.
type Var int32

// noLit is the sentinel meaning "no literal" (spec's 1-based scheme uses 0
// for this; under the 0-based packed encoding below, every valid literal is
// >= 0, so -1 is used instead).
const noLit Lit = -1

// Lit packs a variable and its polarity into one dense, zero-based index so
// it can directly index watch lists and value tables: the sign is the low
// bit, the variable occupies the rest. CNF literal -3 is encoded as
// 2*(3-1)+1 = 5; CNF literal 3 is encoded as 2*(3-1) = 4.
type Lit int32

// IntToLit converts a signed, nonzero DIMACS literal into a Lit.
func IntToLit(i int32) Lit {
	if i < 0 {
		return Lit(2*(-i-1) + 1)
	}
	return Lit(2 * (i - 1))
}

// IntToVar converts a 1-based DIMACS variable index into a Var.
func IntToVar(i int32) Var {
	return Var(i - 1)
}

// Lit returns the positive literal of v.
func (v Var) Lit() Lit {
	return Lit(v * 2)
}

// SignedLit returns the literal of v, negated iff neg is true.
func (v Var) SignedLit(neg bool) Lit {
	if neg {
		return Lit(v*2) + 1
	}
	return Lit(v * 2)
}

// Var returns the variable underlying l.
func (l Lit) Var() Var {
	return Var(l / 2)
}

// Int returns the equivalent signed DIMACS literal.
func (l Lit) Int() int32 {
	v := int32(l/2 + 1)
	if l&1 == 1 {
		return -v
	}
	return v
}

// IsPositive is true iff l is the positive occurrence of its variable.
func (l Lit) IsPositive() bool {
	return l&1 == 0
}

// Negation returns ¬l: the positive version of l if l is negative, and vice
// versa. Flipping the low bit is exactly polarity flip under this encoding.
func (l Lit) Negation() Lit {
	return l ^ 1
}

// Sign returns +1 for the positive occurrence of l's variable, -1 for the
// negative one; used to save phases on assignment (spec §4.3).
func (l Lit) Sign() int8 {
	if l.IsPositive() {
		return 1
	}
	return -1
}
