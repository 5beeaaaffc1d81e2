package solver

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStoreTracksLiveAndPeakBytes(t *testing.T) {
	st := newStore()
	c1 := newClause([]Lit{IntToLit(1), IntToLit(2)}, false, 0, 0)
	c2 := newClause([]Lit{IntToLit(1), IntToLit(2), IntToLit(3)}, true, 3, 1)
	st.addOriginal(c1)
	st.addLearned(c2)
	require.Equal(t, c1.bytes()+c2.bytes(), st.bytesLive)
	require.Equal(t, st.bytesLive, st.bytesPeak)
}

func TestCompactDropsGarbageAndShrinksBytesLive(t *testing.T) {
	st := newStore()
	c1 := newClause([]Lit{IntToLit(1), IntToLit(2)}, false, 0, 0)
	c2 := newClause([]Lit{IntToLit(3), IntToLit(4)}, true, 2, 0)
	st.addOriginal(c1)
	st.addLearned(c2)
	c2.garbage = true

	freedBytes, freedCount := st.compact()
	require.Equal(t, 1, freedCount)
	require.Equal(t, c2.bytes(), freedBytes)
	require.Equal(t, c1.bytes(), st.bytesLive)
	require.Len(t, st.redundant, 0)
	require.Len(t, st.irredundant, 1)
}
