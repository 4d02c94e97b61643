package bandit

import (
	"fmt"
	"math"

	"github.com/samuelfneumann/gobandits/utils/floatutils"
)

// Strategy names an action selection method
type Strategy string

const (
	// Greedy selects the action of maximum estimated value, or with
	// probability ε a uniformly random action
	Greedy Strategy = "greedy"

	// UCB selects the action of maximum upper confidence bound
	UCB Strategy = "ucb"

	// Preference selects the action of maximum preference and learns
	// preferences by stochastic gradient ascent on the expected reward
	Preference Strategy = "preference"
)

// ucbEpsilon is added to action counts in the UCB exploration bonus so
// that unvisited actions receive a very large, finite bonus
const ucbEpsilon = 1e-5

// ParseStrategy returns the Strategy named by s. The name "prefer" is
// accepted as an alias of Preference.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case Greedy, UCB, Preference:
		return Strategy(s), nil
	case "prefer":
		return Preference, nil
	}
	return "", fmt.Errorf("%w: no such strategy %q", ErrInvalidConfig, s)
}

// Valid returns whether s is a known Strategy
func (s Strategy) Valid() bool {
	switch s {
	case Greedy, UCB, Preference:
		return true
	}
	return false
}

// learner holds the strategy-specific state of a Simulator. Each
// strategy carries only the state it uses: greedy and UCB learners
// estimate action values, the preference learner keeps preferences.
type learner interface {
	// selectAction chooses an action for a round after the first.
	// round is the number of rounds already taken and counts the
	// number of times each action was taken.
	selectAction(round int, counts []int, rng Sampler) int

	// update learns from the reward of the last action. count is the
	// number of times action has been taken including the last round
	// and averageReward is the mean of all rewards including the last.
	update(action int, reward float64, count int, averageReward float64)

	// reset restores the initial state
	reset()
}

// newLearner returns the learner for the Config's Strategy. The Config
// must already be validated.
func newLearner(c Config) learner {
	switch c.Strategy {
	case UCB:
		return &ucb{
			estimator:  newEstimator(c),
			confidence: c.Confidence,
		}

	case Preference:
		return &preference{
			preferences: make([]float64, c.K),
			probs:       make([]float64, c.K),
			stepSize:    c.StepSize,
			baseline:    c.PreferenceBaseline,
		}

	default:
		return &greedy{
			estimator: newEstimator(c),
			epsilon:   c.Epsilon,
		}
	}
}

// estimator tracks action value estimates, updated either by sample
// averages or with a constant step size
type estimator struct {
	values     []float64
	initial    float64
	stationary bool
	stepSize   float64
}

func newEstimator(c Config) estimator {
	e := estimator{
		values:     make([]float64, c.K),
		initial:    c.InitialValue,
		stationary: c.Stationary,
		stepSize:   c.StepSize,
	}
	e.reset()
	return e
}

// update performs Q(a) <- Q(a) + stepSize * (r - Q(a)), where stepSize
// is 1/N(a) for sample averages and α otherwise
func (e *estimator) update(action int, reward float64, count int, _ float64) {
	stepSize := e.stepSize
	if e.stationary {
		stepSize = 1.0 / float64(count)
	}
	e.values[action] += stepSize * (reward - e.values[action])
}

func (e *estimator) reset() {
	for i := range e.values {
		e.values[i] = e.initial
	}
}

// greedy implements ε-greedy action selection. With ε = 0 it is the
// pure greedy method.
type greedy struct {
	estimator
	epsilon float64
}

func (g *greedy) selectAction(_ int, _ []int, rng Sampler) int {
	if rng.Float64() < g.epsilon {
		return rng.Intn(len(g.values))
	}
	return floatutils.ArgMax(g.values)
}

// ucb implements upper confidence bound action selection:
//
//	A = argmax_a Q(a) + c * sqrt(ln(t) / (N(a) + 1e-5))
type ucb struct {
	estimator
	confidence float64
	bounds     []float64
}

func (u *ucb) selectAction(round int, counts []int, _ Sampler) int {
	if len(u.bounds) != len(u.values) {
		u.bounds = make([]float64, len(u.values))
	}

	logRound := math.Log(float64(round))
	for i, value := range u.values {
		bonus := math.Sqrt(logRound / (float64(counts[i]) + ucbEpsilon))
		u.bounds[i] = value + u.confidence*bonus
	}
	return floatutils.ArgMax(u.bounds)
}

// preference implements the gradient bandit algorithm. Actions are
// selected greedily with respect to the preferences; the softmax
// distribution over preferences is only used in the update.
type preference struct {
	preferences []float64
	probs       []float64
	stepSize    float64
	baseline    bool
}

func (p *preference) selectAction(_ int, _ []int, _ Sampler) int {
	return floatutils.ArgMax(p.preferences)
}

// update performs, for each action i:
//
//	H(i) <- H(i) + α * (R - baseline) * (1{i == A} - π(i))
//
// where the baseline is the average reward if enabled and 0 otherwise
func (p *preference) update(action int, reward float64, _ int,
	averageReward float64) {
	baseline := 0.0
	if p.baseline {
		baseline = averageReward
	}

	p.probs = floatutils.Softmax(p.probs, p.preferences)
	scale := p.stepSize * (reward - baseline)
	for i := range p.preferences {
		indicator := 0.0
		if i == action {
			indicator = 1.0
		}
		p.preferences[i] += scale * (indicator - p.probs[i])
	}
}

func (p *preference) reset() {
	for i := range p.preferences {
		p.preferences[i] = 0
	}
}
