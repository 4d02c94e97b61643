package experiment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/samuelfneumann/gobandits/experiment/tracker"
	ts "github.com/samuelfneumann/gobandits/timestep"
)

// Online is an Experiment that runs a bandit for a number of
// independent runs, one after another, resetting the bandit at the
// start of each run.
type Online struct {
	Bandit
	runs       uint
	steps      uint
	currentRun uint
	trackers   []tracker.Tracker
	progress   Progress
	logger     *slog.Logger
}

// NewOnline creates and returns a new online experiment on a given
// bandit. The runs parameter determines how many independent runs are
// performed and steps how many rounds each run takes. The t parameter
// is a slice of tracker.Tracker which determine what data is tracked.
func NewOnline(b Bandit, runs, steps uint, t ...tracker.Tracker) *Online {
	return &Online{
		Bandit:   b,
		runs:     runs,
		steps:    steps,
		trackers: t,
		logger:   slog.Default(),
	}
}

// Register registers a tracker.Tracker with an Experiment so that data
// generated during the experiment can be tracked
func (o *Online) Register(t tracker.Tracker) {
	o.trackers = append(o.trackers, t)
}

// SetProgress sets the Progress notified at the end of each run
func (o *Online) SetProgress(p Progress) {
	o.progress = p
}

// SetLogger sets the logger of the experiment
func (o *Online) SetLogger(l *slog.Logger) {
	o.logger = l
}

// RunEpisode runs a single run of the experiment
func (o *Online) RunEpisode() bool {
	if err := o.runEpisode(context.Background()); err != nil {
		panic(fmt.Sprintf("runEpisode: %v", err))
	}
	return o.Done()
}

// Done returns whether all runs have finished
func (o *Online) Done() bool {
	return o.currentRun >= o.runs
}

// runEpisode runs a single run, returning early only if ctx is done
func (o *Online) runEpisode(ctx context.Context) error {
	if o.Done() {
		return nil
	}

	o.Bandit.Reset()
	best := o.Bandit.BestAction()

	var total float64
	for n := 1; n <= int(o.steps); n++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		o.Bandit.Step()
		action, reward, err := o.Bandit.LastActionReward()
		if err != nil {
			return err
		}
		total += reward

		step := ts.New(ts.TypeOf(n, int(o.steps)), n, action, reward,
			action == best)
		o.track(step)
	}

	o.currentRun++
	o.logger.Debug("run finished",
		slog.Uint64("run", uint64(o.currentRun)),
		slog.Int("best_action", best),
		slog.Float64("average_reward", total/float64(o.steps)))

	if o.progress != nil {
		o.progress.Increment()
	}
	return nil
}

// Run runs the experiment until all runs have finished or ctx is done.
// The context is checked before every round.
func (o *Online) Run(ctx context.Context) error {
	start := time.Now()
	o.logger.Info("experiment started",
		slog.Uint64("runs", uint64(o.runs)),
		slog.Uint64("steps", uint64(o.steps)))

	for !o.Done() {
		if err := o.runEpisode(ctx); err != nil {
			o.logger.Warn("experiment stopped",
				slog.Uint64("completed_runs", uint64(o.currentRun)),
				slog.Any("error", err))
			return fmt.Errorf("run: %w", err)
		}
	}

	o.logger.Info("experiment finished",
		slog.Duration("elapsed", time.Since(start)))
	return nil
}

// track tracks the current round by caching its data in each tracker
func (o *Online) track(t ts.TimeStep) {
	for _, tr := range o.trackers {
		tr.Track(t)
	}
}
