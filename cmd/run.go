package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/samuelfneumann/gobandits/bandit"
	"github.com/samuelfneumann/gobandits/experiment"
	"github.com/samuelfneumann/gobandits/experiment/tracker"
	"github.com/samuelfneumann/gobandits/plot"
	"github.com/samuelfneumann/gobandits/utils/progressbar"
)

// progressWidth is the width of the progress bar in characters
const progressWidth = 40

// RunCommand returns the command running a single configuration
func RunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run a single bandit configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := configList()
			if err != nil {
				return err
			}
			if list.Len() != 1 {
				return fmt.Errorf("run: flags describe %d configurations, "+
					"use sweep to run more than one", list.Len())
			}
			return runAll(cmd.Context(), cmd.OutOrStdout(),
				cmd.ErrOrStderr(), list.Configs())
		},
	}
}

// SweepCommand returns the command running every combination of the
// bandit flag values
func SweepCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Run every combination of the bandit flag values",
		Example: "  gobandits sweep --epsilon 0,0.01,0.1\n" +
			"  gobandits sweep --strategy preference --alpha 0.1,0.4 " +
			"--baseline true,false --true-reward 4",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := configList()
			if err != nil {
				return err
			}
			if list.Len() == 0 {
				return fmt.Errorf("sweep: flags describe no configurations")
			}
			return runAll(cmd.Context(), cmd.OutOrStdout(),
				cmd.ErrOrStderr(), list.Configs())
		},
	}
}

// result holds the tracked data of one configuration
type result struct {
	config  bandit.Config
	reward  tracker.Tracker
	optimal tracker.Tracker
	returns tracker.Tracker
}

// runAll runs an experiment for each configuration, one after another,
// then reports the results and writes the chart if requested
func runAll(ctx context.Context, out, errOut io.Writer,
	configs []bandit.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var bar *progressbar.Live
	if !noProgress {
		bar = progressbar.NewLive(errOut, progressWidth,
			int(runs)*len(configs))
	}

	results := make([]result, 0, len(configs))
	for _, c := range configs {
		r := result{
			config:  c,
			reward:  tracker.NewAverageReward(),
			optimal: tracker.NewOptimalAction(),
			returns: tracker.NewReturn(),
		}

		expConfig := experiment.Config{
			Runs:   runs,
			Steps:  steps,
			Seed:   seed,
			Bandit: c,
		}
		e, err := expConfig.CreateExp(r.reward, r.optimal, r.returns)
		if err != nil {
			return err
		}
		e.SetLogger(slog.Default().With(
			slog.String("agent", c.Label()),
			slog.String("strategy", string(c.Strategy)),
			slog.Uint64("seed", seed)))
		if bar != nil {
			e.SetProgress(bar)
		}

		if err := e.Run(ctx); err != nil {
			return err
		}
		results = append(results, r)
	}

	report(out, results, tail, !noColor)

	if chartPath != "" {
		if err := writeChart(chartPath, results); err != nil {
			return err
		}
		slog.Info("chart written", slog.String("path", chartPath))
	}
	return nil
}

// writeChart writes the learning curves of all results
func writeChart(filename string, results []result) error {
	reward := plot.Chart{Title: "Average reward"}
	optimal := plot.Chart{Title: "% Optimal action"}

	for _, r := range results {
		name := r.config.Label()
		reward.Series = append(reward.Series,
			plot.Series{Name: name, Values: r.reward.Data()})

		percent := r.optimal.Data()
		for i := range percent {
			percent[i] *= 100
		}
		optimal.Series = append(optimal.Series,
			plot.Series{Name: name, Values: percent})
	}

	return plot.WriteFile(filename, "k-armed bandit testbed", reward,
		optimal)
}
