// Package experiment implements functionality for running an experiment
package experiment

import (
	"context"
	"errors"
	"fmt"

	"github.com/samuelfneumann/gobandits/bandit"
	"github.com/samuelfneumann/gobandits/experiment/tracker"
	ts "github.com/samuelfneumann/gobandits/timestep"
)

// ErrInvalidConfig is returned when an experiment Config is not valid
var ErrInvalidConfig = errors.New("invalid experiment configuration")

// Interface Experiment outlines structs that can run experiments.
// Experiments send the TimeStep of each round to Trackers, which
// aggregate the data across runs. The Run() method will run all runs
// of the experiment, resetting the bandit between runs. The
// RunEpisode() method will run a single run.
type Experiment interface {
	Run(ctx context.Context) error
	RunEpisode() bool // Returns whether or not all runs have finished

	// Adds a new tracker.Tracker to the (possibly already running)
	// experiment.
	Register(t tracker.Tracker)

	// Tracks the current round by sending it to Trackers
	track(ts.TimeStep)
}

var _ Experiment = (*Online)(nil)

// Bandit is a bandit simulation that an Experiment can run. Experiments
// only ever reset the bandit, step it, and read the result of the last
// step.
type Bandit interface {
	Reset()
	Step()
	LastActionReward() (int, float64, error)
	BestAction() int
}

// Progress is notified whenever an Experiment finishes a run
type Progress interface {
	Increment()
}

// Config represents a configuration of an experiment: a number of
// independent runs, each of a number of rounds, of a single bandit
// configuration.
type Config struct {
	Runs   uint
	Steps  uint
	Seed   uint64
	Bandit bandit.Config
}

// Validate returns an error if the Config is not valid
func (c Config) Validate() error {
	if c.Runs == 0 {
		return fmt.Errorf("%w: runs must be positive", ErrInvalidConfig)
	}
	if c.Steps == 0 {
		return fmt.Errorf("%w: steps must be positive", ErrInvalidConfig)
	}
	if err := c.Bandit.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// CreateExp creates the experiment described by the Config. The bandit
// draws all its randomness from a Sampler seeded with the Config's
// seed.
func (c Config) CreateExp(t ...tracker.Tracker) (*Online, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("createExp: %w", err)
	}

	sim, err := bandit.New(c.Bandit, bandit.NewSampler(c.Seed))
	if err != nil {
		return nil, fmt.Errorf("createExp: could not create bandit: %w", err)
	}

	return NewOnline(sim, c.Runs, c.Steps, t...), nil
}
