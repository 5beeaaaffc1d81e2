package solver

// EMA is an exponential moving average with a smoothed warm-up schedule
// (spec §4.6). beta traces 1; 1/2, 1/2; 1/4, 1/4, 1/4, 1/4; ... down to the
// target alpha, so early noisy samples don't dominate the average while it
// still converges quickly to the desired responsiveness.
type EMA struct {
	value float64
	alpha float64 // target responsiveness.
	beta  float64 // current (possibly still warming up) responsiveness.
	wait  int64
	period int64
}

// NewEMA returns an EMA targeting the given alpha, starting fully
// unwarmed (beta = 1).
func NewEMA(alpha float64) EMA {
	return EMA{alpha: alpha, beta: 1}
}

// Value returns the current average.
func (e *EMA) Value() float64 { return e.value }

// Update folds in a new sample y and advances the warm-up schedule (spec
// §4.6 "update(y)").
func (e *EMA) Update(y float64) {
	e.value += e.beta * (y - e.value)
	if e.beta <= e.alpha {
		return
	}
	if e.wait > 0 {
		e.wait--
		return
	}
	e.period = 2*(e.period+1) - 1
	e.wait = e.period
	e.beta /= 2
	if e.beta < e.alpha {
		e.beta = e.alpha
	}
}
