package solver

// The VMTF (Variable Move-to-Front) decision heuristic: a doubly linked
// list over all variables ordered by bump stamp ascending from first to
// last, with a cursor pointing at the next decision candidate (spec §3
// "VMTF queue", §4.5's bump ordering, §4.9's decision scan).

// noVar is the VMTF/trail sentinel meaning "no variable". Variables are
// 0-based (spec's 1-based "index 0 means none" sentinel becomes -1 here).
const noVar Var = -1

// initVMTF links every variable in index order with strictly increasing
// bump stamps, and parks the cursor at the tail, per spec §3's invariant
// ("initialized in index order with strictly increasing bumped, and
// next = last").
func (vs *vars) initVMTF() {
	n := Var(len(vs.v))
	if n == 0 {
		vs.first, vs.last = noVar, noVar
		vs.cursor = noVar
		return
	}
	for i := Var(0); i < n; i++ {
		vd := &vs.v[i]
		vd.bumped = uint64(i)
		if i == 0 {
			vd.prev = noVar
		} else {
			vd.prev = i - 1
		}
		if i == n-1 {
			vd.next = noVar
		} else {
			vd.next = i + 1
		}
	}
	vs.first = 0
	vs.last = n - 1
	vs.cursor = vs.last
	vs.stamp = uint64(n)
}

// unlink removes v from the VMTF list without touching its prev/next
// fields' meaning for callers (they are overwritten by the next enqueue).
func (vs *vars) unlink(v Var) {
	vd := &vs.v[v]
	if vd.prev != noVar {
		vs.v[vd.prev].next = vd.next
	} else {
		vs.first = vd.next
	}
	if vd.next != noVar {
		vs.v[vd.next].prev = vd.prev
	} else {
		vs.last = vd.prev
	}
}

// enqueueTail appends v at the tail (the most-recently-bumped end) with a
// fresh, strictly larger bump stamp.
func (vs *vars) enqueueTail(v Var) {
	vd := &vs.v[v]
	vs.stamp++
	vd.bumped = vs.stamp
	vd.prev = vs.last
	vd.next = noVar
	if vs.last != noVar {
		vs.v[vs.last].next = v
	} else {
		vs.first = v
	}
	vs.last = v
}

// bump moves v to the tail of the VMTF list with a fresh stamp and clears
// its transient analysis flags, per spec §4.5's "dequeue from VMTF and
// enqueue at the tail with a fresh stamp; reset its transient flags".
func (vs *vars) bump(v Var) {
	vs.unlink(v)
	vs.enqueueTail(v)
	vd := &vs.v[v]
	vd.seen = false
	vd.minimized = false
	vd.poison = false
}

// bumpedOf is a small helper returning the bump stamp of v.
func (vs *vars) bumpedOf(v Var) uint64 { return vs.v[v].bumped }

// onUnassign re-enables v as a decision candidate without requeueing it,
// moving the cursor back to v when v would still be preferred over the
// current candidate (spec §4.3 "unassign").
func (vs *vars) onUnassign(v Var) {
	if vs.cursor == noVar || vs.v[v].bumped > vs.v[vs.cursor].bumped {
		vs.cursor = v
	}
}

// rewindCursorIfPreferred is used by conflict analysis: if v is not the UIP
// and is currently unassigned, the decision cursor is updated to point at
// it (spec §4.5 "If the variable is not the UIP and is currently
// unassigned, update queue.next to point at it").
func (vs *vars) rewindCursorIfPreferred(v Var) {
	if !vs.assigned(v) {
		vs.cursor = v
	}
}
