package tracker

import (
	"fmt"

	ts "github.com/samuelfneumann/gobandits/timestep"
)

// Return tracks the return, or cumulative reward, of each run in an
// experiment. When a run ends its return is cached and the return of
// the next run is accumulated separately.
//
// Note: A run must finish for this Tracker to record its return.
type Return struct {
	lastTimeStep  int
	currentReturn float64
	runReturns    []float64
}

// NewReturn creates and returns a new *Return Tracker
func NewReturn() *Return {
	return &Return{}
}

// Track tracks the reward seen on a round. When a new run starts, this
// method detects it and starts accumulating the rewards for this new
// run separately from the rewards seen on previous runs.
//
// Track panics if it is called for non-sequential rounds
func (r *Return) Track(step ts.TimeStep) {
	if r.lastTimeStep+1 != step.Number {
		msg := fmt.Sprintf("track: last two rounds tracked are not "+
			"sequential: round %v --> round %v were tracked",
			r.lastTimeStep, step.Number)
		panic(msg)
	}

	r.currentReturn += step.Reward
	r.lastTimeStep = step.Number

	// The run has ended, cache its return and begin tracking the next
	if step.Last() {
		r.runReturns = append(r.runReturns, r.currentReturn)
		r.currentReturn = 0.0
		r.lastTimeStep = 0
	}
}

// Data returns the return of each finished run
func (r *Return) Data() []float64 {
	return append([]float64(nil), r.runReturns...)
}

// Name returns the name of the tracked data
func (r *Return) Name() string {
	return "Return"
}
