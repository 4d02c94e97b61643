// Package plot renders learning curves of bandit experiments as HTML
// line charts
package plot

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// Series is a single learning curve, indexed by round
type Series struct {
	Name   string
	Values []float64
}

// Chart is a set of learning curves of the same metric
type Chart struct {
	Title  string
	Series []Series
}

// Render renders each Chart as a line chart on a single HTML page
func Render(w io.Writer, title string, c ...Chart) error {
	if len(c) == 0 {
		return fmt.Errorf("render: no charts to render")
	}

	page := components.NewPage()
	page.PageTitle = title
	for _, chart := range c {
		page.AddCharts(line(chart))
	}

	if err := page.Render(w); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// WriteFile renders each Chart to the HTML file filename, creating its
// directory if needed
func WriteFile(filename, title string, c ...Chart) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("writeFile: %w", err)
		}
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("writeFile: %w", err)
	}

	if err := Render(f, title, c...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// line builds the line chart of a Chart. The x axis spans the longest
// Series.
func line(c Chart) *charts.Line {
	l := charts.NewLine()
	l.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeInfographic,
		}),
		charts.WithTitleOpts(opts.Title{
			Title: c.Title,
		}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
	)

	numSteps := 0
	for _, s := range c.Series {
		if len(s.Values) > numSteps {
			numSteps = len(s.Values)
		}
	}

	steps := make([]string, numSteps)
	for i := range steps {
		steps[i] = fmt.Sprintf("%d", i+1)
	}
	l.SetXAxis(steps)

	for _, s := range c.Series {
		items := make([]opts.LineData, len(s.Values))
		for i, v := range s.Values {
			items[i] = opts.LineData{Value: v}
		}
		l.AddSeries(s.Name, items)
	}

	return l
}
