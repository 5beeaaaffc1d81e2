package solver

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClauseAccessors(t *testing.T) {
	lits := []Lit{IntToLit(1), IntToLit(-2), IntToLit(3)}
	c := newClause(lits, true, 2, 5)
	require.Equal(t, 3, c.Len())
	require.Equal(t, IntToLit(1), c.First())
	require.Equal(t, IntToLit(-2), c.Second())
	require.Equal(t, 2, c.Glue())
	require.True(t, c.Redundant())
	require.Equal(t, IntToLit(3), c.Get(2))
}

func TestClauseSwap(t *testing.T) {
	c := newClause([]Lit{IntToLit(1), IntToLit(2)}, false, 0, 0)
	c.Swap(0, 1)
	require.Equal(t, IntToLit(2), c.First())
	require.Equal(t, IntToLit(1), c.Second())
}

func TestClauseCNF(t *testing.T) {
	c := newClause([]Lit{IntToLit(1), IntToLit(-2)}, false, 0, 0)
	require.Equal(t, "1 -2 0", c.CNF())
}
