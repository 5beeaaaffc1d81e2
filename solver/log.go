package solver

import "github.com/sirupsen/logrus"

// newLogger returns a logrus.Logger configured the way the teacher's
// verbose mode formats its periodic table (gophersat's Solve() ticker
// goroutine), but through a structured logger instead of bare Printf. It
// is only ever read from the search driver's iterating path (spec §4.3),
// never from the hot propagation loop.
func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: false,
		FullTimestamp:    true,
	})
	log.SetLevel(logrus.InfoLevel)
	return log
}

// progressReport emits one line summarizing the current search state,
// called whenever the search driver clears the iterating flag (spec §4.10
// state 3, grounded on the teacher's ticker output table).
func (s *Solver) progressReport() {
	if !s.Verbose {
		return
	}
	s.log.WithFields(logrus.Fields{
		"restarts":     s.Stats.Restarts,
		"conflicts":    s.Stats.Conflicts,
		"learned":      len(s.st.redundant),
		"deleted":      s.Stats.Deleted,
		"fixed":        s.Stats.Fixed,
		"glue_fast":    s.glueFast.Value(),
		"glue_slow":    s.glueSlow.Value(),
	}).Info("progress")
}
