// Package timestep implements timesteps of the agent-bandit interaction
package timestep

import (
	"fmt"
)

// StepType denotes the type of step that a TimeStep can be, either the
// first round of a run, a middle round, or the last round
type StepType int

const (
	First StepType = iota
	Mid
	Last
)

func (s StepType) String() string {
	switch s {
	case First:
		return "First"
	case Last:
		return "Last"
	default:
		return "Mid"
	}
}

// TimeStep packages together a single round of a run on a bandit
type TimeStep struct {
	StepType
	Number  int     // 1-based round number within the run
	Action  int     // Action taken on the round
	Reward  float64 // Reward received for the action
	Optimal bool    // Whether the action was the best action
}

// New returns a new TimeStep
func New(t StepType, number, action int, reward float64,
	optimal bool) TimeStep {
	return TimeStep{t, number, action, reward, optimal}
}

// TypeOf returns the StepType of round number in a run of steps rounds
func TypeOf(number, steps int) StepType {
	switch {
	case number >= steps:
		return Last
	case number <= 1:
		return First
	default:
		return Mid
	}
}

// First returns whether a TimeStep is the first in a run
func (t *TimeStep) First() bool {
	return t.StepType == First
}

// Mid returns whether a TimeStep is a middle step in a run
func (t *TimeStep) Mid() bool {
	return t.StepType == Mid
}

// Last returns whether a TimeStep is the last step in a run
func (t *TimeStep) Last() bool {
	return t.StepType == Last
}

func (t TimeStep) String() string {
	str := "TimeStep | Type: %v  |  Action: %d  |  Reward:  %.2f  |  " +
		"Optimal: %v  |  Step Number:  %v"

	return fmt.Sprintf(str, t.StepType, t.Action, t.Reward, t.Optimal,
		t.Number)
}
