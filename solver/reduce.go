package solver

import "sort"

// The clause-database reducer (spec §4.8): periodically deletes half of the
// low-quality learned clauses, sweeping root-satisfied clauses from both
// pools along the way.

// maybeReduce runs a reduction pass if the reduce condition holds.
func (s *Solver) maybeReduce() bool {
	if !s.cfg.Reduce || s.Stats.Conflicts < s.reduceLimit {
		return false
	}
	s.reduce()
	return true
}

func (s *Solver) reduce() {
	s.protectReasons()
	if s.Stats.Fixed != s.reduceFixedAtLast {
		s.sweepRootSatisfied(s.st.irredundant)
		s.sweepRootSatisfied(s.st.redundant)
	}
	s.selectForDeletion()
	s.unprotectReasons()
	s.flushWatches()

	_, freed := s.st.compact()
	s.Stats.Deleted += int64(freed)
	s.Stats.Reductions++

	s.reduceLimit += s.cfg.ReduceInc
	s.reduceResolvedWatermark = s.Stats.Conflicts
	s.reduceFixedAtLast = s.Stats.Fixed
}

// protectReasons marks reason = true on every clause currently serving as
// the antecedent of an above-root assignment (spec §4.8 step 1).
func (s *Solver) protectReasons() {
	for v := 0; v < s.vs.n(); v++ {
		vd := s.vs.data(Var(v))
		if vd.level > 0 && vd.reason != nil {
			vd.reason.reason = true
		}
	}
}

// unprotectReasons clears the flags set by protectReasons (spec §4.8 step
// 4).
func (s *Solver) unprotectReasons() {
	for v := 0; v < s.vs.n(); v++ {
		vd := s.vs.data(Var(v))
		if vd.level > 0 && vd.reason != nil {
			vd.reason.reason = false
		}
	}
}

// sweepRootSatisfied marks every non-reason, non-garbage clause containing a
// root-true literal as garbage (spec §4.8 step 2).
func (s *Solver) sweepRootSatisfied(pool []*Clause) {
	for _, c := range pool {
		if c.reason || c.garbage {
			continue
		}
		for i := 0; i < c.Len(); i++ {
			if s.vs.fixed(c.Get(i)) > 0 {
				c.garbage = true
				break
			}
		}
	}
}

// selectForDeletion picks the worse half of eligible redundant clauses and
// marks them garbage (spec §4.8 step 3).
func (s *Solver) selectForDeletion() {
	var candidates []*Clause
	for _, c := range s.st.redundant {
		if c.reason || c.garbage {
			continue
		}
		if c.Glue() <= 2 || c.Len() <= 3 {
			continue
		}
		if c.resolved > int32(s.reduceResolvedWatermark) {
			continue
		}
		if s.cfg.ReduceDynamic &&
			float64(c.Glue()) < s.resolvedGlueEMA.Value() &&
			float64(c.Len()) < s.resolvedSizeEMA.Value() {
			continue
		}
		candidates = append(candidates, c)
	}
	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.resolved != b.resolved {
			return a.resolved < b.resolved
		}
		if a.Glue() != b.Glue() {
			return a.Glue() > b.Glue()
		}
		return a.Len() > b.Len()
	})
	for i := 0; i < len(candidates)/2; i++ {
		candidates[i].garbage = true
	}
}

// flushWatches clears watch lists for root-fixed variables entirely, and
// compacts the rest to drop garbage-clause entries (spec §4.8 step 5).
func (s *Solver) flushWatches() {
	for v := 0; v < s.vs.n(); v++ {
		vv := Var(v)
		pos := vv.Lit()
		neg := pos.Negation()
		vd := s.vs.data(vv)
		if vd.value != 0 && vd.level == 0 {
			s.w.clear(pos)
			s.w.clear(neg)
			continue
		}
		s.w.filterGarbage(pos)
		s.w.filterGarbage(neg)
	}
}
