package solver

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitVMTFOrdersByIndexWithCursorAtTail(t *testing.T) {
	vs := newVars(4)
	vs.initVMTF()
	require.Equal(t, Var(0), vs.first)
	require.Equal(t, Var(3), vs.last)
	require.Equal(t, Var(3), vs.cursor)
	for i := Var(0); i < 4; i++ {
		require.Equal(t, uint64(i), vs.bumpedOf(i))
	}
}

func TestBumpMovesVariableToTail(t *testing.T) {
	vs := newVars(4)
	vs.initVMTF()
	vs.bump(0)
	require.Equal(t, Var(0), vs.last)
	require.Equal(t, Var(1), vs.first)
	require.Greater(t, vs.bumpedOf(0), vs.bumpedOf(3))
}

func TestBumpClearsTransientFlags(t *testing.T) {
	vs := newVars(2)
	vs.initVMTF()
	vs.data(0).seen = true
	vs.data(0).minimized = true
	vs.bump(0)
	require.False(t, vs.data(0).seen)
	require.False(t, vs.data(0).minimized)
}

func TestOnUnassignMovesCursorWhenMorePreferred(t *testing.T) {
	vs := newVars(3)
	vs.initVMTF()
	vs.cursor = 0 // least-bumped variable is the current candidate.
	vs.onUnassign(2)
	require.Equal(t, Var(2), vs.cursor)
}

func TestRewindCursorIfPreferredOnlyWhenUnassigned(t *testing.T) {
	vs := newVars(2)
	vs.initVMTF()
	vs.v[0].value = 1
	vs.cursor = 1
	vs.rewindCursorIfPreferred(0)
	require.Equal(t, Var(1), vs.cursor)
	vs.v[0].value = 0
	vs.rewindCursorIfPreferred(0)
	require.Equal(t, Var(0), vs.cursor)
}
