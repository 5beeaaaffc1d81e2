package solver

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMaybeRestartFalseWhenDisabled(t *testing.T) {
	s := newBareSolver(t, 4)
	s.cfg.Restart = false
	s.Stats.Conflicts = 100
	require.False(t, s.maybeRestart())
}

func TestMaybeRestartFalseBeforeLimitReached(t *testing.T) {
	s := newBareSolver(t, 4)
	s.Stats.Conflicts = s.restartLimit
	require.False(t, s.maybeRestart())
}

func TestMaybeRestartRejectsWhenGlueMarginNotMet(t *testing.T) {
	s := newBareSolver(t, 4)
	s.cfg.RestartDelay = false
	s.Stats.Conflicts = s.restartLimit + 1
	s.glueFast.Update(1)
	s.glueSlow.Update(1)

	require.False(t, s.maybeRestart())
	require.Equal(t, s.Stats.Conflicts+s.cfg.RestartInt, s.restartLimit)
	require.Zero(t, s.Stats.Restarts)
}

func TestMaybeRestartFiresWhenMarginMetAndNotDelayed(t *testing.T) {
	s := newBareSolver(t, 4)
	s.cfg.RestartDelay = false
	s.cfg.ReuseTrail = false
	s.Stats.Conflicts = s.restartLimit + 1
	s.glueFast.Update(5)
	s.glueSlow.Update(1)

	require.True(t, s.maybeRestart())
	require.Equal(t, int64(1), s.Stats.Restarts)
	require.Equal(t, s.Stats.Conflicts+s.cfg.RestartInt, s.restartLimit)
}

func TestMaybeRestartDelayedWhenTrailShallow(t *testing.T) {
	s := newBareSolver(t, 4)
	s.cfg.RestartDelay = true
	s.cfg.RestartDelayLim = 0.5
	s.Stats.Conflicts = s.restartLimit + 1
	s.glueFast.Update(5)
	s.glueSlow.Update(1)
	s.jumpEMA.Update(100)

	require.False(t, s.maybeRestart())
	require.Equal(t, int64(1), s.Stats.Delayed)
	require.Zero(t, s.Stats.Restarts)
}

func TestDoRestartBacktracksToRootWhenReuseDisabled(t *testing.T) {
	s := newBareSolver(t, 4)
	s.cfg.ReuseTrail = false
	s.tr.newLevel(IntToLit(4))
	s.tr.assign(s.vs, IntToLit(4), nil, 1)
	s.tr.newLevel(IntToLit(2))
	s.tr.assign(s.vs, IntToLit(2), nil, 2)

	s.doRestart()

	require.Equal(t, 0, s.tr.level())
	require.Zero(t, s.Stats.Reused)
}

func TestDoRestartReusesTrailPrefixPreferredByCursor(t *testing.T) {
	s := newBareSolver(t, 4)
	s.cfg.ReuseTrail = true
	s.tr.newLevel(IntToLit(4)) // decides var 3, bumped = 3
	s.tr.assign(s.vs, IntToLit(4), nil, 1)
	s.tr.newLevel(IntToLit(2)) // decides var 1, bumped = 1
	s.tr.assign(s.vs, IntToLit(2), nil, 2)
	s.vs.cursor = Var(2) // bumped = 2, between the two decision levels

	s.doRestart()

	require.Equal(t, 1, s.tr.level())
	require.Equal(t, int64(1), s.Stats.Reused)
}
