// Package tracker implements Trackers, which track and aggregate data
// generated by an experiment
package tracker

import (
	"gonum.org/v1/gonum/stat"

	ts "github.com/samuelfneumann/gobandits/timestep"
)

// Interface Tracker keeps track of experiment data. Trackers aggregate
// data across runs as it arrives, so that they never store the history
// of any single run.
type Tracker interface {
	// Track caches the data of a single round
	Track(t ts.TimeStep)

	// Data returns the aggregated data tracked so far
	Data() []float64

	// Name returns a short description of the tracked data
	Name() string
}

// Summary returns the mean and standard deviation of the last tail
// values of data. If tail is not positive or exceeds the length of
// data, all of data is summarized.
func Summary(data []float64, tail int) (mean, std float64) {
	if tail > 0 && tail < len(data) {
		data = data[len(data)-tail:]
	}
	if len(data) == 0 {
		return 0, 0
	}
	if len(data) == 1 {
		return data[0], 0
	}
	return stat.MeanStdDev(data, nil)
}
