package solver

import (
	"github.com/gosat/cdcl/drat"
	"github.com/sirupsen/logrus"
)

// A Solver is the main data structure: it owns every per-variable,
// per-clause, and per-watch structure, and mutates them only from its own
// main loop (spec §5).
type Solver struct {
	Verbose bool // Emit progress reports through logrus when true.

	cfg    Config
	nbVars int

	vs *vars
	tr *trail
	w  *watchLists
	st *store
	pr *propagator

	proof drat.Writer
	log   *logrus.Logger

	status    Status
	unsat     bool
	conflict  *Clause
	iterating bool

	// EMAs (spec §4.6, §6).
	glueFast, glueSlow EMA
	jumpEMA            EMA
	resolvedGlueEMA    EMA
	resolvedSizeEMA    EMA

	// Restart controller state (spec §4.7).
	restartLimit    int64
	restartDeferred int64

	// Reducer state (spec §4.8).
	reduceLimit             int64
	reduceResolvedWatermark int64
	reduceFixedAtLast       int64

	Stats Stats

	// Scratch buffers reused across conflicts, to avoid per-conflict
	// allocation on the hot path (mirrors the teacher's bufLits pool in
	// learn.go).
	scratchLits []Lit
	scratchSeen []Var
	scratchLvls []int
}

// New builds a Solver for the given problem (spec §6 "External interfaces",
// §4 throughout). If the problem was already found UNSAT at parse time
// (e.g. clashing units, an explicit empty clause), New returns a solver
// that immediately reports Unsat without entering the core search loop at
// all, per spec §8's boundary cases.
func New(pb *Problem, cfg Config) *Solver {
	cfg.clamp()
	s := &Solver{
		cfg:    cfg,
		nbVars: pb.NbVars,
		proof:  drat.NopWriter{},
		log:    newLogger(),
		status: pb.Status,

		glueFast:        NewEMA(cfg.EmaGlueFast),
		glueSlow:        NewEMA(cfg.EmaGlueSlow),
		jumpEMA:         NewEMA(cfg.EmaJump),
		resolvedGlueEMA: NewEMA(cfg.EmaResolved),
		resolvedSizeEMA: NewEMA(cfg.EmaResolved),

		restartLimit: cfg.RestartInt,
		reduceLimit:  cfg.ReduceInit,
	}
	if pb.Status == Unsat {
		s.unsat = true
		return s
	}
	s.vs = newVars(pb.NbVars)
	s.vs.initVMTF()
	s.tr = newTrail(pb.NbVars)
	s.w = newWatchLists(pb.NbVars)
	s.st = newStore()
	s.pr = newPropagator(s.vs, s.tr, s.w, s.onFixed)

	for _, lit := range pb.Units {
		if s.vs.value(lit) < 0 {
			s.unsat = true
			s.status = Unsat
			return s
		}
		if s.vs.value(lit) > 0 {
			continue
		}
		s.assignRoot(lit, nil)
	}
	for _, c := range pb.Clauses {
		s.attachOriginal(c)
	}
	if conflict, _ := s.pr.propagate(); conflict != nil {
		s.unsat = true
		s.status = Unsat
	}
	return s
}

// SetProof directs the solver's DRAT output to w. Must be called before
// Solve.
func (s *Solver) SetProof(w drat.Writer) { s.proof = w }

// NbVars returns the number of variables in the problem.
func (s *Solver) NbVars() int { return s.nbVars }

// attachOriginal adds an already-tautology-free, non-unit clause to the
// irredundant pool and watches it (spec §4.2).
func (s *Solver) attachOriginal(c *Clause) {
	s.st.addOriginal(c)
	s.w.watch(c)
}

// assignRoot assigns lit at level 0, bumping the fixed counter and raising
// iterating, per spec §4.3.
func (s *Solver) assignRoot(lit Lit, reason *Clause) {
	s.tr.assign(s.vs, lit, reason, 0)
	s.onFixed()
}

// onFixed bumps the fixed counter and raises iterating; it is also the
// propagator's hook for assignments it derives directly at level 0 (spec
// §4.3: "At level 0 it increments the fixed count and raises iterating").
func (s *Solver) onFixed() {
	s.Stats.Fixed++
	s.iterating = true
}

// Model returns the full assignment once the solver reports Sat. It
// panics if called before a satisfying assignment has been found.
func (s *Solver) Model() []bool {
	if s.status != Sat {
		panic("solver: Model called before a satisfying assignment was found")
	}
	res := make([]bool, s.nbVars)
	for v := 0; v < s.nbVars; v++ {
		res[v] = s.vs.v[v].value > 0
	}
	return res
}
