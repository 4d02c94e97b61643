package tracker

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	ts "github.com/samuelfneumann/gobandits/timestep"
)

// run builds the TimeSteps of a single run from its rewards and
// whether each action was optimal
func run(rewards []float64, optimal []bool) []ts.TimeStep {
	steps := make([]ts.TimeStep, len(rewards))
	for i := range rewards {
		n := i + 1
		steps[i] = ts.New(ts.TypeOf(n, len(rewards)), n, 0, rewards[i],
			optimal[i])
	}
	return steps
}

func trackAll(tr Tracker, runs ...[]ts.TimeStep) {
	for _, r := range runs {
		for _, step := range r {
			tr.Track(step)
		}
	}
}

func TestAverageReward(t *testing.T) {
	tr := NewAverageReward()
	trackAll(tr,
		run([]float64{1, 2, 3}, []bool{true, true, true}),
		run([]float64{3, 0, -3}, []bool{true, true, true}),
		run([]float64{2, 1, 0}, []bool{true, true, true}),
	)

	assert.InDeltaSlice(t, []float64{2, 1, 0}, tr.Data(), 1e-12)
	assert.Equal(t, "Average reward", tr.Name())
}

func TestOptimalAction(t *testing.T) {
	tr := NewOptimalAction()
	trackAll(tr,
		run([]float64{0, 0}, []bool{true, false}),
		run([]float64{0, 0}, []bool{false, false}),
		run([]float64{0, 0}, []bool{true, false}),
		run([]float64{0, 0}, []bool{true, true}),
	)

	assert.InDeltaSlice(t, []float64{0.75, 0.25}, tr.Data(), 1e-12)
}

func TestPerRoundPanics(t *testing.T) {
	tr := NewAverageReward()
	assert.Panics(t, func() { tr.Track(ts.New(ts.First, 0, 0, 1, false)) })
}

func TestReturn(t *testing.T) {
	tr := NewReturn()
	trackAll(tr,
		run([]float64{1, 2, 3}, []bool{true, true, true}),
		run([]float64{-1, 0.5, 0}, []bool{true, true, true}),
	)

	assert.InDeltaSlice(t, []float64{6, -0.5}, tr.Data(), 1e-12)

	// Out of order rounds
	assert.Panics(t, func() { tr.Track(ts.New(ts.Mid, 3, 0, 1, false)) })
}

func TestSummary(t *testing.T) {
	mean, std := Summary([]float64{100, 1, 2, 3}, 3)
	assert.InDelta(t, 2.0, mean, 1e-12)
	assert.InDelta(t, 1.0, std, 1e-12)

	mean, _ = Summary([]float64{1, 2, 3, 6}, 0)
	assert.InDelta(t, 3.0, mean, 1e-12)

	mean, std = Summary([]float64{4}, 10)
	assert.Equal(t, 4.0, mean)
	assert.Equal(t, 0.0, std)

	mean, std = Summary(nil, 10)
	assert.False(t, math.IsNaN(mean) || math.IsNaN(std))
}
