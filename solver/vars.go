package solver

// Per-variable state (spec §3 "Variable record") and the constant-time
// literal/variable accessors of spec §4.1.

// varData is the per-variable record: tri-state value, saved phase, the
// decision level it was bound at, its reason clause, its VMTF links, its
// bump stamp, and the transient flags used only during conflict analysis.
type varData struct {
	value      int8   // -1, 0, +1: false/unassigned/true for the positive literal.
	savedPhase int8   // last assigned sign, used for phase saving; starts at -1.
	level      int32  // decision level at which the var was assigned.
	reason     *Clause
	prev, next Var // VMTF doubly linked list, by variable index.
	bumped     uint64
	seen       bool
	minimized  bool
	poison     bool
}

// vars owns every per-variable record plus the VMTF queue endpoints.
type vars struct {
	v      []varData
	first  Var    // VMTF head (least recently bumped).
	last   Var    // VMTF tail (most recently bumped).
	cursor Var    // VMTF decision cursor ("next" in spec §3).
	stamp  uint64 // monotonic bump-stamp counter.
}

func newVars(nbVars int) *vars {
	vs := &vars{v: make([]varData, nbVars)}
	for i := range vs.v {
		vs.v[i].savedPhase = -1
	}
	return vs
}

func (vs *vars) n() int { return len(vs.v) }

func (vs *vars) data(v Var) *varData { return &vs.v[v] }

// value returns the sign-adjusted value of lit: +1 if true, -1 if false, 0
// if unassigned.
func (vs *vars) value(lit Lit) int8 {
	val := vs.v[lit.Var()].value
	if lit.IsPositive() {
		return val
	}
	return -val
}

// fixed returns the value of lit if it was assigned at level 0, else 0.
func (vs *vars) fixed(lit Lit) int8 {
	vd := &vs.v[lit.Var()]
	if vd.value == 0 || vd.level != 0 {
		return 0
	}
	if lit.IsPositive() {
		return vd.value
	}
	return -vd.value
}

func (vs *vars) assigned(v Var) bool { return vs.v[v].value != 0 }
