package drat

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

type buf struct {
	bytes.Buffer
}

func (b *buf) Close() error { return nil }

func newBuf() *buf { return &buf{} }

var _ io.WriteCloser = (*buf)(nil)

func TestFileWriterLearn(t *testing.T) {
	b := newBuf()
	w := NewFileWriter(b)
	require.NoError(t, w.Learn([]int32{1, -2, 3}))
	require.NoError(t, w.Learn([]int32{-1}))
	require.Equal(t, "1 -2 3 0\n-1 0\n", b.String())
}

func TestFileWriterEmpty(t *testing.T) {
	b := newBuf()
	w := NewFileWriter(b)
	require.NoError(t, w.Empty())
	require.Equal(t, "0\n", b.String())
}

func TestFileWriterClose(t *testing.T) {
	b := newBuf()
	w := NewFileWriter(b)
	require.NoError(t, w.Learn([]int32{5, 6}))
	require.NoError(t, w.Close())
	require.Equal(t, "5 6 0\n", b.String())
}

func TestNopWriter(t *testing.T) {
	var w NopWriter
	require.NoError(t, w.Learn([]int32{1}))
	require.NoError(t, w.Empty())
	require.NoError(t, w.Close())
}
