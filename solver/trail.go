package solver

// The trail: an append-only sequence of assigned literals, partitioned into
// decision levels (spec §3 "Trail", "Levels"; §4.3).

// levelRecord is the per-level bookkeeping spec §3 describes: the literal
// that was decided to open the level (0 at level 0), and a transient
// counter used only during conflict analysis.
type levelRecord struct {
	decisionLit Lit
	seen        int
}

// trail is the append-only assignment sequence plus its level partition.
type trail struct {
	lits          []Lit
	propagateNext int // BFS cursor: entries before it were propagated.
	levels        []levelRecord
}

func newTrail(capacity int) *trail {
	t := &trail{lits: make([]Lit, 0, capacity)}
	t.levels = append(t.levels, levelRecord{decisionLit: noLit}) // level 0 always exists.
	return t
}

// level returns the current decision level (0-based, like the level
// records slice).
func (t *trail) level() int { return len(t.levels) - 1 }

// newLevel opens a fresh decision level with the given decision literal.
func (t *trail) newLevel(decisionLit Lit) {
	t.levels = append(t.levels, levelRecord{decisionLit: decisionLit})
}

// assign requires value(lit) == 0 (enforced by the caller). It stamps the
// variable with the current level, records the reason, saves the phase,
// and appends lit to the trail (spec §4.3 "assign"). It reports whether the
// assignment happened at level 0, so the caller can bump the fixed counter
// and raise the iterating flag as spec §4.3 requires.
func (t *trail) assign(vs *vars, lit Lit, reason *Clause, lvl int) (atRoot bool) {
	v := lit.Var()
	vd := vs.data(v)
	if lit.IsPositive() {
		vd.value = 1
	} else {
		vd.value = -1
	}
	vd.level = int32(lvl)
	vd.reason = reason
	vd.savedPhase = lit.Sign()
	t.lits = append(t.lits, lit)
	return lvl == 0
}

// unassign clears lit's value and, per spec §4.3, re-enables its variable
// as a VMTF decision candidate without requeueing it.
func (t *trail) unassign(vs *vars, lit Lit) {
	v := lit.Var()
	vd := vs.data(v)
	vd.value = 0
	vd.reason = nil
	vs.onUnassign(v)
}

// backtrack pops trail entries until the decision literal of level
// target+1 has been unassigned, truncates the level list to target+1,
// and clamps propagateNext to the new trail length. It is a no-op when target already equals the current
// level (spec §4.3 "backtrack").
func (t *trail) backtrack(vs *vars, target int) {
	if target >= t.level() {
		return
	}
	for t.level() > target {
		dl := t.levels[len(t.levels)-1].decisionLit
		for len(t.lits) > 0 {
			lit := t.lits[len(t.lits)-1]
			t.lits = t.lits[:len(t.lits)-1]
			t.unassign(vs, lit)
			if lit == dl {
				break
			}
		}
		t.levels = t.levels[:len(t.levels)-1]
	}
	if t.propagateNext > len(t.lits) {
		t.propagateNext = len(t.lits)
	}
}

// pending is true iff the trail holds unpropagated entries.
func (t *trail) pending() bool { return t.propagateNext < len(t.lits) }

// fullyAssigned is true iff every one of nbVars variables has a value.
func (t *trail) fullyAssigned(nbVars int) bool { return len(t.lits) == nbVars }
