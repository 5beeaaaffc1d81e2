package solver

// The two-watched-literal propagator (spec §3 "Watch entry", §4.4). Each
// clause of size >= 2 is watched at its first two literal slots; a watch
// entry is stored under the NEGATION of its watched literal, so that when a
// literal L is assigned true (and therefore ¬L becomes false), looking up
// the list keyed by L finds exactly the clauses that might now need a new
// watch or have become unit/conflicting. This mirrors the teacher's
// wlistBin/wlist indexing convention in gophersat's watcher.go.

// watchEntry is the (blocking-literal, cached-size, clause) triple of spec
// §3. The blocking literal is a hint only (invariant W2): its value may be
// stale and must always be rechecked.
type watchEntry struct {
	blocker Lit
	size    int32
	clause  *Clause
}

// watchLists holds, for every literal, the watch entries consulted when
// that literal is assigned true.
type watchLists struct {
	lists [][]watchEntry
}

func newWatchLists(nbVars int) *watchLists {
	return &watchLists{lists: make([][]watchEntry, nbVars*2)}
}

func (w *watchLists) of(l Lit) []watchEntry { return w.lists[l] }

// watch registers c at both of its watched positions.
func (w *watchLists) watch(c *Clause) {
	l0, l1 := c.First(), c.Second()
	sz := int32(c.Len())
	w.lists[l0.Negation()] = append(w.lists[l0.Negation()], watchEntry{blocker: l1, size: sz, clause: c})
	w.lists[l1.Negation()] = append(w.lists[l1.Negation()], watchEntry{blocker: l0, size: sz, clause: c})
}

// clear drops every watch entry for lit, e.g. when its variable is fixed
// at the root and can never be propagated into again (spec §4.8 step 5).
func (w *watchLists) clear(lit Lit) { w.lists[lit] = w.lists[lit][:0] }

// filterGarbage compacts lit's watch list, keeping only entries whose
// clause is not garbage (spec §4.8 step 5).
func (w *watchLists) filterGarbage(lit Lit) {
	lst := w.lists[lit]
	j := 0
	for _, e := range lst {
		if e.clause.garbage {
			continue
		}
		lst[j] = e
		j++
	}
	w.lists[lit] = lst[:j]
}

// propagator drives unit propagation over the trail using the two-watched-
// literal invariant (spec §4.4).
type propagator struct {
	vs *vars
	tr *trail
	w  *watchLists

	// onFixed is called whenever a propagated assignment lands at level 0,
	// so the owning solver can bump its fixed count and raise iterating
	// (spec §4.3). nil in propagator-only tests; root-level assignments
	// then skip the hook.
	onFixed func()
}

func newPropagator(vs *vars, tr *trail, w *watchLists, onFixed func()) *propagator {
	return &propagator{vs: vs, tr: tr, w: w, onFixed: onFixed}
}

// assign routes a propagated assignment through the trail and, if it
// landed at the root level, through onFixed (spec §4.3).
func (p *propagator) assign(lit Lit, reason *Clause, lvl int) {
	if p.tr.assign(p.vs, lit, reason, lvl) && p.onFixed != nil {
		p.onFixed()
	}
}

// propagate drains every pending trail literal in FIFO order, maintaining
// W1/W2, until either no pending literal remains (returns nil) or a clause
// is falsified (returns that clause). It reports the number of literals it
// drained, for the propagations counter.
func (p *propagator) propagate() (conflict *Clause, drained int) {
	for p.tr.pending() {
		lit := p.tr.lits[p.tr.propagateNext]
		p.tr.propagateNext++
		drained++
		if c := p.propagateLit(lit); c != nil {
			return c, drained
		}
	}
	return nil, drained
}

// propagateLit processes the watch list of lit (the literal that was just
// assigned true), per spec §4.4 steps 1-3.
func (p *propagator) propagateLit(lit Lit) *Clause {
	lvl := p.tr.level()
	list := p.w.lists[lit]
	i, j := 0, 0
	n := len(list)
	for i < n {
		w := list[i]
		if p.vs.value(w.blocker) > 0 {
			list[j] = w
			i++
			j++
			continue
		}
		c := w.clause
		if w.size == 2 {
			b := w.blocker
			val := p.vs.value(b)
			if val < 0 {
				// Conflict: copy remaining entries, truncate, report.
				for ; i < n; i++ {
					list[j] = list[i]
					j++
				}
				p.w.lists[lit] = list[:j]
				return c
			}
			list[j] = w
			i++
			j++
			if val == 0 {
				p.assign(b, c, lvl)
			}
			continue
		}
		// Non-binary clause: make sure literals[1] == ¬lit.
		if c.Get(1) != lit.Negation() {
			c.Swap(0, 1)
		}
		first := c.Get(0)
		u := p.vs.value(first)
		if u > 0 {
			list[j] = watchEntry{blocker: first, size: w.size, clause: c}
			i++
			j++
			continue
		}
		replaced := false
		for k := 2; k < c.Len(); k++ {
			lk := c.Get(k)
			vk := p.vs.value(lk)
			if vk < 0 {
				continue
			}
			if vk > 0 {
				list[j] = watchEntry{blocker: lk, size: w.size, clause: c}
				i++
				j++
				replaced = true
				break
			}
			// vk == 0: move lk into the watched position.
			c.Swap(1, k)
			p.w.lists[lk.Negation()] = append(p.w.lists[lk.Negation()], watchEntry{blocker: first, size: w.size, clause: c})
			i++
			replaced = true
			break
		}
		if replaced {
			continue
		}
		// Every literal from position 2 onward is false.
		if u == 0 {
			list[j] = w
			i++
			j++
			p.assign(first, c, lvl)
			continue
		}
		// u < 0: conflict.
		for ; i < n; i++ {
			list[j] = list[i]
			j++
		}
		p.w.lists[lit] = list[:j]
		return c
	}
	p.w.lists[lit] = list[:j]
	return nil
}
