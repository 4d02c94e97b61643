package tracker

import (
	"fmt"

	ts "github.com/samuelfneumann/gobandits/timestep"
)

// perRound averages some value of each round across runs. The value
// of round n of every run is averaged into entry n-1 of the data.
type perRound struct {
	name  string
	value func(ts.TimeStep) float64
	means []float64
	runs  []int
}

// newPerRound returns a perRound Tracker averaging value
func newPerRound(name string, value func(ts.TimeStep) float64) *perRound {
	return &perRound{name: name, value: value}
}

// Track averages the value of the round into the mean of all rounds
// with the same number. Track panics if the round number is not
// positive.
func (p *perRound) Track(step ts.TimeStep) {
	if step.Number < 1 {
		panic(fmt.Sprintf("track: round number %d must be positive",
			step.Number))
	}

	for len(p.means) < step.Number {
		p.means = append(p.means, 0)
		p.runs = append(p.runs, 0)
	}

	i := step.Number - 1
	p.runs[i]++
	p.means[i] += (p.value(step) - p.means[i]) / float64(p.runs[i])
}

// Data returns the average value of each round
func (p *perRound) Data() []float64 {
	return append([]float64(nil), p.means...)
}

// Name returns the name of the tracked data
func (p *perRound) Name() string {
	return p.name
}

// NewAverageReward returns a Tracker of the average reward received on
// each round across runs
func NewAverageReward() Tracker {
	return newPerRound("Average reward", func(t ts.TimeStep) float64 {
		return t.Reward
	})
}

// NewOptimalAction returns a Tracker of the fraction of runs which
// took the best action on each round
func NewOptimalAction() Tracker {
	return newPerRound("% Optimal action", func(t ts.TimeStep) float64 {
		if t.Optimal {
			return 1.0
		}
		return 0.0
	})
}
