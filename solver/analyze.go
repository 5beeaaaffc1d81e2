package solver

import "sort"

// analyze performs first-UIP conflict analysis (spec §4.5). It must only be
// called while s.conflict != nil. On return, conflict is cleared; either
// s.unsat is set (conflict at level 0) or the solver has backjumped to the
// learned clause's asserting level with ¬uip assigned.
func (s *Solver) analyze() {
	if s.tr.level() == 0 {
		s.unsat = true
		_ = s.proof.Empty()
		s.conflict = nil
		return
	}

	curLevel := s.tr.level()
	learned := s.scratchLits[:0]
	seenVars := s.scratchSeen[:0]
	touchedLvls := s.scratchLvls[:0]
	open := 0

	process := func(l Lit) {
		if s.vs.value(l) >= 0 {
			return
		}
		v := l.Var()
		vd := s.vs.data(v)
		if vd.seen {
			return
		}
		vd.seen = true
		seenVars = append(seenVars, v)
		if vd.level == 0 {
			return
		}
		lvl := int(vd.level)
		if s.tr.levels[lvl].seen == 0 {
			touchedLvls = append(touchedLvls, lvl)
		}
		s.tr.levels[lvl].seen++
		if lvl == curLevel {
			open++
		} else {
			learned = append(learned, l)
		}
	}

	reason := s.conflict
	s.bumpClauseResolved(reason)
	for i := 0; i < reason.Len(); i++ {
		process(reason.Get(i))
	}

	ptr := len(s.tr.lits) - 1
	var uip Lit
	for {
		for !s.vs.data(s.tr.lits[ptr].Var()).seen {
			ptr--
		}
		lit := s.tr.lits[ptr]
		ptr--
		open--
		if open == 0 {
			uip = lit
			break
		}
		r := s.vs.data(lit.Var()).reason
		s.bumpClauseResolved(r)
		for i := 0; i < r.Len(); i++ {
			process(r.Get(i))
		}
	}

	learned = append(learned, uip.Negation())
	glue := len(touchedLvls)
	for _, lvl := range touchedLvls {
		s.tr.levels[lvl].seen = 0
	}

	sort.Slice(learned, func(i, j int) bool {
		return s.vs.data(learned[i].Var()).level > s.vs.data(learned[j].Var()).level
	})

	s.glueFast.Update(float64(glue))
	s.glueSlow.Update(float64(glue))

	// Bump all seen variables in ascending-bumped order (spec §4.5's
	// "resolved-in-order bump ordering"), then clear their flags.
	sort.Slice(seenVars, func(i, j int) bool {
		return s.vs.bumpedOf(seenVars[i]) < s.vs.bumpedOf(seenVars[j])
	})
	uipVar := uip.Var()
	for _, v := range seenVars {
		s.vs.bump(v)
		s.Stats.Bumped++
		if v != uipVar {
			s.vs.rewindCursorIfPreferred(v)
		}
	}

	var jumpLevel int
	if len(learned) == 1 {
		s.Stats.UnitLearned++
		_ = s.proof.Learn([]int32{learned[0].Int()})
		jumpLevel = 0
		s.jumpEMA.Update(0)
		s.conflict = nil
		s.tr.backtrack(s.vs, jumpLevel)
		s.assignRoot(learned[0], nil)
		return
	}

	jumpLevel = int(s.vs.data(learned[1].Var()).level)
	s.jumpEMA.Update(float64(jumpLevel))

	lits := make([]Lit, len(learned))
	copy(lits, learned)
	c := newClause(lits, true, glue, int32(s.Stats.Conflicts))
	s.st.addLearned(c)
	s.w.watch(c)
	s.Stats.Learned++
	if len(lits) == 2 {
		s.Stats.BinaryLearned++
	}
	ints := make([]int32, len(lits))
	for i, l := range lits {
		ints[i] = l.Int()
	}
	_ = s.proof.Learn(ints)

	s.conflict = nil
	s.tr.backtrack(s.vs, jumpLevel)
	s.tr.assign(s.vs, lits[0], c, jumpLevel)
}

// bumpClauseResolved updates c's resolved stamp to the current conflict
// index and, for redundant clauses, feeds its size and glue into the
// resolved-size/resolved-glue EMAs (spec §4.5 "bump_clause").
func (s *Solver) bumpClauseResolved(c *Clause) {
	c.resolved = int32(s.Stats.Conflicts)
	if c.redundant {
		s.resolvedSizeEMA.Update(float64(c.Len()))
		s.resolvedGlueEMA.Update(float64(c.Glue()))
	}
}
