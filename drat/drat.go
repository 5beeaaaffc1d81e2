// Package drat implements the output-only DRAT proof interface described
// in spec §6: a textual, append-only refutation trace. Spec §1 deliberately
// excludes proof serialization from the solver's core design ("specified
// only as an output interface"); this package is exactly that interface,
// generalized from the teacher's channel-based RUP certificate sink
// (gophersat solver.Solver's Certified/CertChan fields) into a synchronous
// Writer, since the core itself is strictly single-threaded (spec §5).
package drat

import (
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// Writer is the sink a solver core appends its proof trace to. Writes are
// not transactional; per spec §5, the solver never rewinds, so truncation
// on crash is an acceptable failure mode for proof semantics.
type Writer interface {
	// Learn emits a learned clause's literals, terminated by 0.
	Learn(lits []int32) error
	// Empty emits the derivation of the empty clause.
	Empty() error
	// Close flushes and releases any underlying resource.
	Close() error
}

// NopWriter discards every write. Used when no --drat flag was given.
type NopWriter struct{}

func (NopWriter) Learn([]int32) error { return nil }
func (NopWriter) Empty() error        { return nil }
func (NopWriter) Close() error        { return nil }

// FileWriter appends a text DRAT proof to an underlying io.WriteCloser,
// buffered through bufio.Writer. DRAT is a trivial line-oriented text
// format with no ecosystem serialization library in the retrieval pack, so
// stdlib buffering is the right tool here (see DESIGN.md).
type FileWriter struct {
	w   *bufio.Writer
	out io.Closer
}

// NewFileWriter wraps wc (typically an *os.File) as a DRAT sink.
func NewFileWriter(wc io.WriteCloser) *FileWriter {
	return &FileWriter{w: bufio.NewWriter(wc), out: wc}
}

// Learn writes "l1 l2 ... ln 0\n".
func (f *FileWriter) Learn(lits []int32) error {
	for _, l := range lits {
		if _, err := f.w.WriteString(strconv.FormatInt(int64(l), 10)); err != nil {
			return errors.Wrap(err, "drat: write literal")
		}
		if err := f.w.WriteByte(' '); err != nil {
			return errors.Wrap(err, "drat: write separator")
		}
	}
	_, err := f.w.WriteString("0\n")
	if err != nil {
		return errors.Wrap(err, "drat: write terminator")
	}
	return errors.Wrap(f.w.Flush(), "drat: flush")
}

// Empty writes "0\n", the derivation of the empty clause.
func (f *FileWriter) Empty() error {
	if _, err := f.w.WriteString("0\n"); err != nil {
		return errors.Wrap(err, "drat: write empty clause")
	}
	return errors.Wrap(f.w.Flush(), "drat: flush")
}

// Close flushes any buffered bytes and closes the underlying writer.
func (f *FileWriter) Close() error {
	if err := f.w.Flush(); err != nil {
		_ = f.out.Close()
		return errors.Wrap(err, "drat: flush on close")
	}
	return errors.Wrap(f.out.Close(), "drat: close")
}
