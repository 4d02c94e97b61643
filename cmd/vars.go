package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/samuelfneumann/gobandits/bandit"
)

var (
	k            []int
	alpha        []float64
	epsilon      []float64
	confidence   []float64
	trueReward   []float64
	initialValue []float64
	stationary   []bool
	strategy     []string
	baseline     []bool

	runs       uint
	steps      uint
	seed       uint64
	chartPath  string
	tail       int
	noProgress bool
	noColor    bool
	verbose    bool
)

// AddFlags adds the bandit and experiment flags to cmd. Bandit flags
// accept comma separated lists of values, which the sweep command
// combines into every possible configuration.
func AddFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	addBanditFlags(flags)

	flags.UintVar(&runs, "runs", 2000, "Number of independent runs")
	flags.UintVar(&steps, "steps", 1000, "Number of rounds in each run")
	flags.Uint64Var(&seed, "seed", 1, "Random seed")
	flags.StringVar(&chartPath, "chart", "", "Write learning curves to this HTML file")
	flags.IntVar(&tail, "tail", 100, "Number of final rounds summarized in the report")
	flags.BoolVar(&noProgress, "no-progress", false, "Do not display a progress bar")
	flags.BoolVar(&noColor, "no-color", false, "Do not color the report")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log debug messages")
}

// addBanditFlags adds one list flag per bandit.Config field, defaulting
// to bandit.DefaultConfig()
func addBanditFlags(flags *pflag.FlagSet) {
	d := bandit.DefaultConfig()

	flags.IntSliceVar(&k, "k", []int{d.K}, "Number of actions")
	flags.Float64SliceVar(&alpha, "alpha", []float64{d.StepSize}, "Constant step size for non-stationary value updates and preference updates")
	flags.Float64SliceVar(&epsilon, "epsilon", []float64{d.Epsilon}, "Exploration probability of the greedy strategy")
	flags.Float64SliceVar(&confidence, "confidence", []float64{d.Confidence}, "Exploration coefficient of the ucb strategy")
	flags.Float64SliceVar(&trueReward, "true-reward", []float64{d.TrueRewardOffset}, "Mean of the true action values")
	flags.Float64SliceVar(&initialValue, "initial-value", []float64{d.InitialValue}, "Initial action value estimates")
	flags.BoolSliceVar(&stationary, "stationary", []bool{d.Stationary}, "Use sample-average value updates")
	flags.StringSliceVar(&strategy, "strategy", []string{string(d.Strategy)}, "Action selection strategy: greedy, ucb or preference")
	flags.BoolSliceVar(&baseline, "baseline", []bool{d.PreferenceBaseline}, "Use the average reward as the preference update baseline")
}

// configList builds the bandit.ConfigList described by the flags
func configList() (bandit.ConfigList, error) {
	strategies := make([]bandit.Strategy, len(strategy))
	for i, name := range strategy {
		s, err := bandit.ParseStrategy(name)
		if err != nil {
			return bandit.ConfigList{}, fmt.Errorf("strategy: %w", err)
		}
		strategies[i] = s
	}

	return bandit.ConfigList{
		K:                  k,
		StepSize:           alpha,
		Epsilon:            epsilon,
		Confidence:         confidence,
		TrueRewardOffset:   trueReward,
		InitialValue:       initialValue,
		Stationary:         stationary,
		Strategy:           strategies,
		PreferenceBaseline: baseline,
	}, nil
}
