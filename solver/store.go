package solver

// The clause store: two pools, irredundant (original) and redundant
// (learned), each exclusively owning the clauses it holds (spec §3
// "Ownership"). Watch entries hold non-owning references into these pools.
type store struct {
	irredundant []*Clause
	redundant   []*Clause

	bytesLive int64 // current live clause bytes.
	bytesPeak int64 // peak live clause bytes, for the memory report (spec §5).
}

func newStore() *store { return &store{} }

// addOriginal adds c to the irredundant pool.
func (s *store) addOriginal(c *Clause) {
	s.irredundant = append(s.irredundant, c)
	s.track(c)
}

// addLearned adds c to the redundant pool.
func (s *store) addLearned(c *Clause) {
	s.redundant = append(s.redundant, c)
	s.track(c)
}

func (s *store) track(c *Clause) {
	s.bytesLive += c.bytes()
	if s.bytesLive > s.bytesPeak {
		s.bytesPeak = s.bytesLive
	}
}

// deleteClause frees c's accounted bytes. The caller is responsible for
// having already removed c from both pools and from every watch list.
func (s *store) deleteClause(c *Clause) {
	s.bytesLive -= c.bytes()
}

// compact drops garbage-marked clauses from both pools, in place, and
// reflects the freed bytes in bytesLive.
func (s *store) compact() (freedBytes int64, freedCount int) {
	s.irredundant, freedBytes, freedCount = compactPool(s.irredundant)
	var b int64
	var n int
	s.redundant, b, n = compactPool(s.redundant)
	freedBytes += b
	freedCount += n
	s.bytesLive -= freedBytes
	return freedBytes, freedCount
}

func compactPool(pool []*Clause) ([]*Clause, int64, int) {
	var freedBytes int64
	freedCount := 0
	j := 0
	for i, c := range pool {
		if c.garbage {
			freedBytes += c.bytes()
			freedCount++
			continue
		}
		if i != j {
			pool[j] = c
		}
		j++
	}
	return pool[:j], freedBytes, freedCount
}
