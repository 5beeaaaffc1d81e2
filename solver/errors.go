package solver

import "github.com/pkg/errors"

// ParseError reports a malformed DIMACS input, per spec §7 "Parse errors":
// fatal, with a single-line diagnostic naming the file and line number.
type ParseError struct {
	File string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return errors.Wrapf(e.Err, "%s:%d", e.File, e.Line).Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

func newParseError(file string, line int, err error) error {
	return &ParseError{File: file, Line: line, Err: err}
}

// wrapf is a thin alias over pkg/errors.Wrapf. The parser calls pkg/errors
// directly and does not go through it.
func wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}
