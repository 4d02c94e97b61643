// Package bandit implements the k-armed bandit testbed.
//
// A Simulator hides k true action values, each drawn from a normal
// distribution with unit variance, and plays an agent against them. On
// each round the agent selects an action, receives a reward drawn from
// N(q*(a), 1), and learns from it. The agent is determined by the
// Config's Strategy:
//
//	Greedy:     ε-greedy selection on action value estimates
//	UCB:        upper confidence bound selection on action value estimates
//	Preference: gradient bandit, greedy selection on action preferences
//
// Action value estimates are sample averages when the Config is
// Stationary and use a constant step size otherwise. Optimistic initial
// values are set through the Config's InitialValue.
//
// The first round after construction or Reset() always takes a
// uniformly random action. All maxima are broken by first occurrence.
package bandit

import (
	"fmt"

	"github.com/samuelfneumann/gobandits/utils/floatutils"
)

// Simulator simulates a single agent on a k-armed bandit
type Simulator struct {
	config  Config
	rng     Sampler
	learner learner

	trueValues []float64
	bestAction int

	counts        []int
	round         int
	averageReward float64
	lastAction    int
	lastReward    float64
}

// New creates a new Simulator. All randomness is drawn from src, which
// should not be shared with other Simulators. An error wrapping
// ErrInvalidConfig is returned if the Config is not valid.
func New(c Config, src Sampler) (*Simulator, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}
	if src == nil {
		return nil, fmt.Errorf("new: %w: nil sampler", ErrInvalidConfig)
	}

	s := &Simulator{
		config:     c,
		rng:        src,
		learner:    newLearner(c),
		trueValues: make([]float64, c.K),
		counts:     make([]int, c.K),
	}
	s.Reset()

	return s, nil
}

// Reset starts a new run. All learned state is cleared and a new set
// of true action values is drawn.
func (s *Simulator) Reset() {
	s.round = 0
	s.averageReward = 0
	s.lastAction = 0
	s.lastReward = 0
	for i := range s.counts {
		s.counts[i] = 0
	}
	s.learner.reset()

	for i := range s.trueValues {
		s.trueValues[i] = s.rng.Normal(s.config.TrueRewardOffset, 1.0)
	}
	s.bestAction = floatutils.ArgMax(s.trueValues)
}

// Step takes a single round: an action is selected, its reward is
// sampled, and the agent learns from the reward
func (s *Simulator) Step() {
	var action int
	if s.round == 0 {
		action = s.rng.Intn(s.config.K)
	} else {
		action = s.learner.selectAction(s.round, s.counts, s.rng)
	}

	reward := s.rng.Normal(s.trueValues[action], 1.0)

	s.round++
	s.counts[action]++
	s.averageReward += (reward - s.averageReward) / float64(s.round)
	s.lastAction = action
	s.lastReward = reward

	s.learner.update(action, reward, s.counts[action], s.averageReward)
}

// LastActionReward returns the action and reward of the last round. If
// no round has been taken since construction or the last Reset(), an
// error wrapping ErrNoStep is returned.
func (s *Simulator) LastActionReward() (int, float64, error) {
	if s.round == 0 {
		return 0, 0, fmt.Errorf("lastActionReward: %w", ErrNoStep)
	}
	return s.lastAction, s.lastReward, nil
}

// BestAction returns the action with the highest true value
func (s *Simulator) BestAction() int {
	return s.bestAction
}

// TrueValues returns a copy of the true action values
func (s *Simulator) TrueValues() []float64 {
	return append([]float64(nil), s.trueValues...)
}

// Round returns the number of rounds taken since the last Reset()
func (s *Simulator) Round() int {
	return s.round
}

// AverageReward returns the mean reward over all rounds since the last
// Reset()
func (s *Simulator) AverageReward() float64 {
	return s.averageReward
}

// Counts returns a copy of the number of times each action was taken
func (s *Simulator) Counts() []int {
	return append([]int(nil), s.counts...)
}

// Estimates returns a copy of the action value estimates, or nil if the
// Strategy does not estimate action values
func (s *Simulator) Estimates() []float64 {
	switch l := s.learner.(type) {
	case *greedy:
		return append([]float64(nil), l.values...)
	case *ucb:
		return append([]float64(nil), l.values...)
	}
	return nil
}

// Preferences returns a copy of the action preferences, or nil if the
// Strategy does not learn preferences
func (s *Simulator) Preferences() []float64 {
	if l, ok := s.learner.(*preference); ok {
		return append([]float64(nil), l.preferences...)
	}
	return nil
}

// K returns the number of actions
func (s *Simulator) K() int {
	return s.config.K
}

// Config returns the Config the Simulator was created with
func (s *Simulator) Config() Config {
	return s.config
}

func (s *Simulator) String() string {
	str := "Simulator | %v  |  Round: %d  |  Average Reward: %.2f  |  " +
		"Best Action: %d"

	return fmt.Sprintf(str, s.config.Label(), s.round, s.averageReward,
		s.bestAction)
}
