package solver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newBareSolver(t *testing.T, nbVars int) *Solver {
	pb, err := ParseCNF("<t>", strings.NewReader("p cnf 0 0\n"))
	require.NoError(t, err)
	pb.NbVars = nbVars
	s := New(pb, DefaultConfig())
	s.vs = newVars(nbVars)
	s.vs.initVMTF()
	s.tr = newTrail(nbVars)
	s.w = newWatchLists(nbVars)
	s.pr = newPropagator(s.vs, s.tr, s.w, s.onFixed)
	return s
}

func makeEligible(s *Solver, resolved int32) *Clause {
	lits := []Lit{IntToLit(1), IntToLit(2), IntToLit(3), IntToLit(4)}
	c := newClause(lits, true, 3, resolved)
	s.st.addLearned(c)
	return c
}

func TestSelectForDeletionMarksWorseHalfByResolvedOrder(t *testing.T) {
	s := newBareSolver(t, 4)
	s.reduceResolvedWatermark = 10
	c1 := makeEligible(s, 1)
	c2 := makeEligible(s, 2)
	c3 := makeEligible(s, 3)
	c4 := makeEligible(s, 4)

	s.selectForDeletion()

	require.True(t, c1.garbage)
	require.True(t, c2.garbage)
	require.False(t, c3.garbage)
	require.False(t, c4.garbage)
}

func TestSelectForDeletionSkipsReasonsAndSmallClauses(t *testing.T) {
	s := newBareSolver(t, 4)
	s.reduceResolvedWatermark = 10
	reasonClause := makeEligible(s, 1)
	reasonClause.reason = true
	small := newClause([]Lit{IntToLit(1), IntToLit(2)}, true, 3, 1)
	s.st.addLearned(small)

	s.selectForDeletion()

	require.False(t, reasonClause.garbage)
	require.False(t, small.garbage)
}

func TestSweepRootSatisfiedMarksClausesWithFixedTrueLiteral(t *testing.T) {
	s := newBareSolver(t, 2)
	s.tr.assign(s.vs, IntToLit(1), nil, 0)
	c := newClause([]Lit{IntToLit(1), IntToLit(2)}, false, 0, 0)
	s.st.addOriginal(c)

	s.sweepRootSatisfied(s.st.irredundant)

	require.True(t, c.garbage)
}

func TestSweepRootSatisfiedSkipsReasons(t *testing.T) {
	s := newBareSolver(t, 2)
	s.tr.assign(s.vs, IntToLit(1), nil, 0)
	c := newClause([]Lit{IntToLit(1), IntToLit(2)}, false, 0, 0)
	c.reason = true
	s.st.addOriginal(c)

	s.sweepRootSatisfied(s.st.irredundant)

	require.False(t, c.garbage)
}

func TestProtectAndUnprotectReasons(t *testing.T) {
	s := newBareSolver(t, 2)
	reasonC := newClause([]Lit{IntToLit(1), IntToLit(2)}, false, 0, 0)
	s.st.addOriginal(reasonC)
	s.tr.newLevel(IntToLit(2))
	s.tr.assign(s.vs, IntToLit(2), reasonC, 1)

	s.protectReasons()
	require.True(t, reasonC.reason)

	s.unprotectReasons()
	require.False(t, reasonC.reason)
}

func TestFlushWatchesClearsFixedVariablesEntirely(t *testing.T) {
	s := newBareSolver(t, 2)
	c := newClause([]Lit{IntToLit(1), IntToLit(2)}, false, 0, 0)
	s.w.watch(c)
	s.tr.assign(s.vs, IntToLit(1), nil, 0)

	s.flushWatches()

	require.Empty(t, s.w.of(IntToLit(-1)))
	require.Empty(t, s.w.of(IntToLit(1)))
}

func TestFlushWatchesCompactsUnfixedVariableLists(t *testing.T) {
	s := newBareSolver(t, 2)
	c1 := newClause([]Lit{IntToLit(1), IntToLit(2)}, false, 0, 0)
	c2 := newClause([]Lit{IntToLit(1), IntToLit(-2)}, false, 0, 0)
	s.w.watch(c1)
	s.w.watch(c2)
	c1.garbage = true

	s.flushWatches()

	for _, e := range s.w.of(IntToLit(-1)) {
		require.NotSame(t, c1, e.clause)
	}
}
