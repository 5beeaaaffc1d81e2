package solver

import "fmt"

// A Clause is a variable-length record: a fixed header plus a slice over a
// contiguous literal array, per spec §3 "Clause"; literal indexing is O(1),
// and the literal array is a separate allocation from the header. The first two literal
// slots are always the watched positions (spec §4.2).
type Clause struct {
	lits []Lit

	glue     int32 // literal block distance at learn time.
	resolved int32 // conflict index when this clause last served as an antecedent.

	redundant bool // false for original (irredundant) clauses.
	garbage   bool // marked for collection by the reducer.
	reason    bool // protected because it is currently a reason (§4.8 step 1).
}

// newClause allocates a clause, per spec §4.2 "new_clause": resolved is set
// to the current conflict count, flags are cleared.
func newClause(lits []Lit, redundant bool, glue int, resolvedAt int32) *Clause {
	return &Clause{
		lits:      lits,
		glue:      int32(glue),
		resolved:  resolvedAt,
		redundant: redundant,
	}
}

// Len returns the number of literals in the clause.
func (c *Clause) Len() int { return len(c.lits) }

// Get returns the ith literal of the clause.
func (c *Clause) Get(i int) Lit { return c.lits[i] }

// Set sets the ith literal of the clause.
func (c *Clause) Set(i int, l Lit) { c.lits[i] = l }

// Swap exchanges the ith and jth literals. The propagator and analyzer may
// permute literals freely as long as the multiset of literals is preserved
// (spec §4.2).
func (c *Clause) Swap(i, j int) { c.lits[i], c.lits[j] = c.lits[j], c.lits[i] }

// First returns the clause's first (watched) literal.
func (c *Clause) First() Lit { return c.lits[0] }

// Second returns the clause's second (watched) literal.
func (c *Clause) Second() Lit { return c.lits[1] }

// Glue returns the clause's literal block distance.
func (c *Clause) Glue() int { return int(c.glue) }

// Redundant is true iff the clause is a learned clause rather than an
// original one.
func (c *Clause) Redundant() bool { return c.redundant }

// bytes approximates the clause's heap footprint, for the memory-discipline
// accounting required by spec §5.
func (c *Clause) bytes() int64 {
	const headerBytes = 24
	return headerBytes + 4*int64(len(c.lits))
}

// CNF renders the clause as a DIMACS clause line.
func (c *Clause) CNF() string {
	res := ""
	for _, l := range c.lits {
		res += fmt.Sprintf("%d ", l.Int())
	}
	return res + "0"
}
