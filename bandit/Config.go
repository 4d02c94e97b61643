package bandit

import (
	"fmt"
	"strings"
)

// Config represents a configuration of a Simulator. A Config is fixed
// for the lifetime of the Simulator it creates.
type Config struct {
	K int // Number of actions

	// StepSize is the constant step size α. It is used for value
	// updates when Stationary is false and always for preference
	// updates.
	StepSize float64

	Epsilon          float64 // Exploration probability for Greedy
	Confidence       float64 // Exploration coefficient c for UCB
	TrueRewardOffset float64 // Mean of the true action value distribution
	InitialValue     float64 // Initial action value estimates

	// Stationary selects sample-average value updates. Otherwise value
	// estimates are updated with the constant step size.
	Stationary bool

	Strategy Strategy

	// PreferenceBaseline determines whether the average reward is used
	// as the baseline of preference updates
	PreferenceBaseline bool
}

// DefaultConfig returns the default configuration: a 10-armed greedy
// agent using sample averages
func DefaultConfig() Config {
	return Config{
		K:                  10,
		StepSize:           0.1,
		Epsilon:            0.0,
		Confidence:         1.0,
		TrueRewardOffset:   0.0,
		InitialValue:       0.0,
		Stationary:         true,
		Strategy:           Greedy,
		PreferenceBaseline: true,
	}
}

// Validate returns an error wrapping ErrInvalidConfig if the Config is
// not valid
func (c Config) Validate() error {
	if c.K <= 0 {
		return fmt.Errorf("%w: k = %d must be positive", ErrInvalidConfig,
			c.K)
	}
	if !(c.Epsilon >= 0) {
		return fmt.Errorf("%w: epsilon = %v cannot be lower than 0",
			ErrInvalidConfig, c.Epsilon)
	}
	if !(c.Confidence >= 0) {
		return fmt.Errorf("%w: confidence = %v cannot be lower than 0",
			ErrInvalidConfig, c.Confidence)
	}
	if !c.Strategy.Valid() {
		return fmt.Errorf("%w: no such strategy %q", ErrInvalidConfig,
			c.Strategy)
	}
	return nil
}

// Label returns a short description of the agent the Config describes,
// including only the parameters its Strategy uses
func (c Config) Label() string {
	var b strings.Builder

	switch c.Strategy {
	case Greedy:
		if c.Epsilon == 0 {
			b.WriteString("greedy")
		} else {
			fmt.Fprintf(&b, "ε-greedy ε=%v", c.Epsilon)
		}

	case UCB:
		fmt.Fprintf(&b, "UCB c=%v", c.Confidence)

	case Preference:
		fmt.Fprintf(&b, "gradient α=%v", c.StepSize)
		if c.PreferenceBaseline {
			b.WriteString(" with baseline")
		} else {
			b.WriteString(" without baseline")
		}
		return b.String()

	default:
		return string(c.Strategy)
	}

	if c.InitialValue != 0 {
		fmt.Fprintf(&b, " Q1=%v", c.InitialValue)
	}
	if !c.Stationary {
		fmt.Fprintf(&b, " α=%v", c.StepSize)
	}
	return b.String()
}

func (c Config) String() string {
	str := "Config | k: %d  |  Strategy: %v  |  α: %v  |  ε: %v  |  c: %v  |  " +
		"Offset: %v  |  Q1: %v  |  Stationary: %v  |  Baseline: %v"

	return fmt.Sprintf(str, c.K, c.Strategy, c.StepSize, c.Epsilon,
		c.Confidence, c.TrueRewardOffset, c.InitialValue, c.Stationary,
		c.PreferenceBaseline)
}

// ConfigList implements functionality for storing a number of Config's
// in a simple manner. Instead of storing a slice of Configs, the
// ConfigList stores each field's values and constructs the list by
// every combination of field values.
type ConfigList struct {
	K                  []int
	StepSize           []float64
	Epsilon            []float64
	Confidence         []float64
	TrueRewardOffset   []float64
	InitialValue       []float64
	Stationary         []bool
	Strategy           []Strategy
	PreferenceBaseline []bool
}

// NewConfigList returns a ConfigList holding the single Config c
func NewConfigList(c Config) ConfigList {
	return ConfigList{
		K:                  []int{c.K},
		StepSize:           []float64{c.StepSize},
		Epsilon:            []float64{c.Epsilon},
		Confidence:         []float64{c.Confidence},
		TrueRewardOffset:   []float64{c.TrueRewardOffset},
		InitialValue:       []float64{c.InitialValue},
		Stationary:         []bool{c.Stationary},
		Strategy:           []Strategy{c.Strategy},
		PreferenceBaseline: []bool{c.PreferenceBaseline},
	}
}

// lens returns the number of values of each field in declaration order
func (c ConfigList) lens() []int {
	return []int{
		len(c.K),
		len(c.StepSize),
		len(c.Epsilon),
		len(c.Confidence),
		len(c.TrueRewardOffset),
		len(c.InitialValue),
		len(c.Stationary),
		len(c.Strategy),
		len(c.PreferenceBaseline),
	}
}

// Len returns the number of Configs stored by the list
func (c ConfigList) Len() int {
	total := 1
	for _, l := range c.lens() {
		total *= l
	}
	return total
}

// At returns the Config at index i. The last field varies fastest, so
// consecutive Configs differ first in PreferenceBaseline and last in K.
func (c ConfigList) At(i int) Config {
	if i < 0 || i >= c.Len() {
		panic(fmt.Sprintf("at: index %d out of range [0, %d)", i, c.Len()))
	}

	lens := c.lens()
	idx := make([]int, len(lens))
	for j := len(lens) - 1; j >= 0; j-- {
		idx[j] = i % lens[j]
		i /= lens[j]
	}

	return Config{
		K:                  c.K[idx[0]],
		StepSize:           c.StepSize[idx[1]],
		Epsilon:            c.Epsilon[idx[2]],
		Confidence:         c.Confidence[idx[3]],
		TrueRewardOffset:   c.TrueRewardOffset[idx[4]],
		InitialValue:       c.InitialValue[idx[5]],
		Stationary:         c.Stationary[idx[6]],
		Strategy:           c.Strategy[idx[7]],
		PreferenceBaseline: c.PreferenceBaseline[idx[8]],
	}
}

// Configs returns every Config in the list
func (c ConfigList) Configs() []Config {
	configs := make([]Config, c.Len())
	for i := range configs {
		configs[i] = c.At(i)
	}
	return configs
}
