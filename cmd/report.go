package cmd

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/logrusorgru/aurora"

	"github.com/samuelfneumann/gobandits/experiment/tracker"
)

// report writes a table of the average reward and the percentage of
// optimal actions over the last tail rounds of each result, along with
// the mean return of a run. The agent with the highest average reward
// is highlighted.
func report(w io.Writer, results []result, tail int, color bool) {
	au := aurora.NewAurora(color)

	width := len("Agent")
	best := 0
	rewards := make([]float64, len(results))
	for i, r := range results {
		if n := utf8.RuneCountInString(r.config.Label()); n > width {
			width = n
		}
		rewards[i], _ = tracker.Summary(r.reward.Data(), tail)
		if rewards[i] > rewards[best] {
			best = i
		}
	}

	// Labels are padded before coloring so that escape codes do not
	// count towards column widths
	fmt.Fprintln(w, au.Bold(fmt.Sprintf("%-*s  %-16s  %-16s  %s", width,
		"Agent", "Average reward", "% Optimal action", "Return")))

	for i, r := range results {
		_, rewardStd := tracker.Summary(r.reward.Data(), tail)
		optimal, _ := tracker.Summary(r.optimal.Data(), tail)
		ret, retStd := tracker.Summary(r.returns.Data(), 0)

		label := fmt.Sprintf("%-*s", width, r.config.Label())
		colored := au.Cyan(label)
		if i == best {
			colored = au.Green(label)
		}

		reward := fmt.Sprintf("%.3f ± %.3f", rewards[i], rewardStd)
		percent := fmt.Sprintf("%.1f%%", optimal*100)
		fmt.Fprintf(w, "%v  %-16s  %-16s  %.1f ± %.1f\n", colored, reward,
			percent, ret, retStd)
	}

	if verbose {
		for _, r := range results {
			fmt.Fprintf(w, "%v\n", au.Yellow(r.config.String()))
			fmt.Fprintf(w, "  reward:  %.3f\n", tailOf(r.reward.Data(), 10))
			fmt.Fprintf(w, "  optimal: %.3f\n", tailOf(r.optimal.Data(), 10))
		}
	}
}

// tailOf returns the last n values of data
func tailOf(data []float64, n int) []float64 {
	if n < len(data) {
		return data[len(data)-n:]
	}
	return data
}
