package solver

// Solve runs the core CDCL loop to completion (spec §4.10): a deterministic
// priority ladder evaluated once per iteration, never dispatched in
// parallel. It returns Sat or Unsat; Solve never returns Indet.
func (s *Solver) Solve() Status {
	if s.unsat {
		s.status = Unsat
		return s.status
	}
	for {
		if s.unsat {
			s.status = Unsat
			return s.status
		}

		conflict, drained := s.pr.propagate()
		s.Stats.Propagations += int64(drained)
		if conflict != nil {
			s.conflict = conflict
			s.Stats.Conflicts++
			s.analyze()
			continue
		}

		if s.iterating {
			s.iterating = false
			s.progressReport()
			continue
		}

		if s.tr.fullyAssigned(s.nbVars) {
			s.status = Sat
			return s.status
		}

		if s.maybeRestart() {
			continue
		}
		if s.maybeReduce() {
			continue
		}
		s.decide()
	}
}
