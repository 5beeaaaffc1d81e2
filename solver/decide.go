package solver

// decide picks the next decision variable by advancing the VMTF cursor
// past already-assigned variables (spec §4.9), opens a new decision level,
// and assigns the chosen variable with its saved phase (default false/-1
// the first time it is ever decided).
func (s *Solver) decide() {
	v := s.vs.cursor
	for v != noVar && s.vs.assigned(v) {
		v = s.vs.v[v].prev
		s.Stats.Searched++
	}
	debugAssert(v != noVar, "decide called with no unassigned variable left")
	s.vs.cursor = v
	lvl := s.tr.level() + 1
	phase := s.vs.v[v].savedPhase
	lit := v.SignedLit(phase < 0)
	s.tr.newLevel(lit)
	s.tr.assign(s.vs, lit, nil, lvl)
	s.Stats.Decisions++
}
