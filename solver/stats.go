package solver

// Stats are the aggregate counters of spec §3 "Global state of search".
// Conflicts also drives the restart and reduce limits and the clauses'
// resolved stamps, and Fixed decides whether reduce sweeps root-satisfied
// clauses; the other counters are for reporting only.
type Stats struct {
	Conflicts    int64
	Decisions    int64
	Restarts     int64
	Propagations int64
	Bumped       int64
	Searched     int64 // VMTF cursor skips over already-assigned variables.
	Reused       int64 // trail-reuse restarts.
	Delayed      int64 // restarts postponed by the delay heuristic.
	Fixed        int64 // variables assigned at level 0.

	Learned       int64
	UnitLearned   int64
	BinaryLearned int64
	Deleted       int64
	Reductions    int64

	BytesPeak int64
}
