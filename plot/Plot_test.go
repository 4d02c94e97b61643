package plot

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCharts() []Chart {
	return []Chart{
		{
			Title: "Average reward",
			Series: []Series{
				{Name: "greedy", Values: []float64{0.1, 0.5, 0.9}},
				{Name: "ε-greedy ε=0.1", Values: []float64{0.0, 0.7}},
			},
		},
		{
			Title: "% Optimal action",
			Series: []Series{
				{Name: "greedy", Values: []float64{0.3, 0.4, 0.4}},
			},
		},
	}
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "Testbed", testCharts()...))

	html := buf.String()
	assert.Contains(t, html, "Testbed")
	assert.Contains(t, html, "Average reward")
	assert.Contains(t, html, "% Optimal action")
	assert.Contains(t, html, "greedy")
}

func TestRenderNoCharts(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Render(&buf, "Testbed"))
}

func TestWriteFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "charts", "testbed.html")
	require.NoError(t, WriteFile(filename, "Testbed", testCharts()...))

	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Average reward")
}
