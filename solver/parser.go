package solver

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// DIMACS CNF parsing (spec §4.11, §6, §7), grounded on the teacher's
// byte-oriented ParseCNF/readInt/parseHeader in gophersat's parser.go, with
// file/line-tracked errors wrapped through github.com/pkg/errors instead of
// bare fmt.Errorf.

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func absInt32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// cnfParser wraps a bufio.Reader with line tracking, so every error it
// raises can report the line it occurred on (spec §7).
type cnfParser struct {
	r    *bufio.Reader
	file string
	line int
}

func (p *cnfParser) readByte() (byte, error) {
	b, err := p.r.ReadByte()
	if err == nil && b == '\n' {
		p.line++
	}
	return b, err
}

func (p *cnfParser) fail(err error) error {
	return newParseError(p.file, p.line, err)
}

// readInt reads a signed decimal integer. b holds the last byte read,
// possibly whitespace; leading whitespace is skipped. Can return io.EOF.
func (p *cnfParser) readInt(b *byte) (res int32, err error) {
	for err == nil && isSpace(*b) {
		*b, err = p.readByte()
	}
	if err == io.EOF {
		return 0, io.EOF
	}
	if err != nil {
		return 0, errors.Wrap(err, "reading digit")
	}
	neg := int32(1)
	if *b == '-' {
		neg = -1
		*b, err = p.readByte()
		if err != nil {
			return 0, errors.Wrap(err, "reading signed literal")
		}
	}
	var v int32
	for err == nil {
		if *b < '0' || *b > '9' {
			return 0, errors.Errorf("%q is not a digit", *b)
		}
		v = 10*v + int32(*b-'0')
		*b, err = p.readByte()
		if err == nil && isSpace(*b) {
			break
		}
	}
	return v * neg, err
}

func parseHeader(p *cnfParser) (nbVars, nbClauses int, err error) {
	line, err := p.r.ReadString('\n')
	p.line++
	if err != nil && err != io.EOF {
		return 0, 0, errors.Wrap(err, "reading header line")
	}
	fields := strings.Fields(line)
	if len(fields) < 3 || fields[0] != "cnf" {
		return 0, 0, errors.Errorf("malformed header %q", strings.TrimSpace(line))
	}
	nbVars, e := strconv.Atoi(fields[1])
	if e != nil {
		return 0, 0, errors.Wrapf(e, "variable count %q", fields[1])
	}
	nbClauses, e = strconv.Atoi(fields[2])
	if e != nil {
		return 0, 0, errors.Wrapf(e, "clause count %q", fields[2])
	}
	return nbVars, nbClauses, nil
}

// ParseCNF parses a DIMACS CNF stream (spec §6's input contract). name is
// used only to annotate error messages.
func ParseCNF(name string, r io.Reader) (*Problem, error) {
	p := &cnfParser{r: bufio.NewReader(r), file: name, line: 1}
	var pb *Problem
	declaredClauses := 0
	readClauses := 0

	b, err := p.readByte()
	for err == nil {
		switch {
		case b == 'c':
			for err == nil && b != '\n' {
				b, err = p.readByte()
			}
		case b == 'p':
			nbVars, nbClauses, herr := parseHeader(p)
			if herr != nil {
				return nil, p.fail(herr)
			}
			pb = newProblem(nbVars)
			pb.Clauses = make([]*Clause, 0, nbClauses)
			declaredClauses = nbClauses
		case isSpace(b):
			// Between clauses; nothing to do.
		default:
			if pb == nil {
				return nil, p.fail(errors.New("clause data before header"))
			}
			lits := make([]Lit, 0, 4)
			for {
				val, rerr := p.readInt(&b)
				if rerr == io.EOF {
					if len(lits) != 0 {
						return nil, p.fail(errors.New("unterminated clause at end of file"))
					}
					break
				}
				if rerr != nil {
					return nil, p.fail(rerr)
				}
				if val == 0 {
					pb.addClause(lits)
					readClauses++
					break
				}
				if int(absInt32(val)) > pb.NbVars {
					return nil, p.fail(errors.Errorf("literal %d exceeds declared variable count %d", val, pb.NbVars))
				}
				lits = append(lits, IntToLit(val))
			}
			continue // b already holds the byte following the clause's terminator.
		}
		b, err = p.readByte()
	}
	if err != io.EOF {
		return nil, p.fail(err)
	}
	if pb == nil {
		return nil, p.fail(errors.New("missing DIMACS header"))
	}
	if readClauses != declaredClauses {
		return nil, p.fail(errors.Errorf("header declared %d clauses, found %d", declaredClauses, readClauses))
	}
	return pb, nil
}
