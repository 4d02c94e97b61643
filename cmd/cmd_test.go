package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuelfneumann/gobandits/bandit"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	root := RootCommand()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestRun(t *testing.T) {
	chart := filepath.Join(t.TempDir(), "testbed.html")

	out, err := execute(t, "run", "--runs", "5", "--steps", "20",
		"--epsilon", "0.1", "--no-progress", "--no-color", "--chart", chart)
	require.NoError(t, err)

	assert.Contains(t, out, "Agent")
	assert.Contains(t, out, "ε-greedy ε=0.1")
	assert.Contains(t, out, "Return")

	data, err := os.ReadFile(chart)
	require.NoError(t, err)
	assert.Contains(t, string(data), "% Optimal action")
}

func TestRunRejectsSweep(t *testing.T) {
	_, err := execute(t, "run", "--epsilon", "0,0.1", "--no-progress")
	assert.Error(t, err)
}

func TestSweep(t *testing.T) {
	out, err := execute(t, "sweep", "--runs", "3", "--steps", "10",
		"--strategy", "greedy,ucb", "--confidence", "2", "--no-progress",
		"--no-color")
	require.NoError(t, err)

	assert.Contains(t, out, "greedy")
	assert.Contains(t, out, "UCB c=2")
}

func TestSweepPreference(t *testing.T) {
	out, err := execute(t, "sweep", "--runs", "3", "--steps", "10",
		"--strategy", "prefer", "--baseline", "true,false",
		"--true-reward", "4", "--no-progress", "--no-color", "--verbose")
	require.NoError(t, err)

	assert.Contains(t, out, "gradient α=0.1 with baseline")
	assert.Contains(t, out, "gradient α=0.1 without baseline")
	assert.Contains(t, out, "Config | k: 10")
}

func TestInvalidFlags(t *testing.T) {
	_, err := execute(t, "run", "--strategy", "softmax", "--no-progress")
	assert.Error(t, err)

	_, err = execute(t, "run", "--k", "0", "--no-progress")
	assert.Error(t, err)

	_, err = execute(t, "run", "--runs", "0", "--no-progress")
	assert.Error(t, err)
}

func TestProgress(t *testing.T) {
	var out, errOut bytes.Buffer
	root := RootCommand()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs([]string{"run", "--runs", "4", "--steps", "5",
		"--no-color"})

	require.NoError(t, root.Execute())
	assert.Contains(t, errOut.String(), "100.00%")
}

func TestConfigListFromFlags(t *testing.T) {
	flags := pflag.NewFlagSet("bandit", pflag.ContinueOnError)
	addBanditFlags(flags)

	require.NoError(t, flags.Parse([]string{"--epsilon", "0,0.01,0.1",
		"--strategy", "greedy,prefer", "--k", "5"}))

	list, err := configList()
	require.NoError(t, err)
	require.Equal(t, 6, list.Len())

	first := list.At(0)
	assert.Equal(t, 5, first.K)
	assert.Equal(t, 0.0, first.Epsilon)
	assert.Equal(t, bandit.Greedy, first.Strategy)

	// Strategy varies faster than epsilon
	assert.Equal(t, bandit.Preference, list.At(1).Strategy)
	assert.Equal(t, 0.01, list.At(2).Epsilon)
}

func TestRunLogsExperiment(t *testing.T) {
	var out, errOut bytes.Buffer
	root := RootCommand()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs([]string{"run", "--runs", "2", "--steps", "5",
		"--strategy", "ucb", "--seed", "7", "--no-progress", "--no-color"})

	require.NoError(t, root.Execute())

	logs := errOut.String()
	assert.Contains(t, logs, "experiment started")
	assert.Contains(t, logs, "strategy=ucb")
	assert.Contains(t, logs, "seed=7")
	assert.Contains(t, logs, "runs=2")
	assert.Contains(t, logs, "steps=5")
}
