// Package progressbar implements functionality of printing a progress
// bar to the terminal window
package progressbar

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// ManualProgressBar implement progress bar functionality that must
// be manually managed. That is, the Display() function must be called
// whenever an updated progress bar should be printed.
//
// ManualProgressBar does not use concurrency.
type ManualProgressBar struct {
	out             io.Writer
	width           float64
	maxProgress     float64
	currentProgress float64
	startTime       time.Time
}

// NewManualProgressBar returns a new ManualProgressBar that is width
// characters wide, reaches 100% after max Increment() calls, and is
// displayed on out
func NewManualProgressBar(out io.Writer, width, max int) *ManualProgressBar {
	return &ManualProgressBar{
		out:             out,
		width:           float64(width),
		maxProgress:     float64(max),
		currentProgress: 0,
		startTime:       time.Now(),
	}
}

// Increment increments the interal progress counter. Each time an
// iteration is performed, Increment should be called.
func (p *ManualProgressBar) Increment() {
	if p.currentProgress < p.maxProgress {
		p.currentProgress++
	}
}

// Fraction returns the fraction of progress completed
func (p *ManualProgressBar) Fraction() float64 {
	if p.maxProgress <= 0 {
		return 1
	}
	return p.currentProgress / p.maxProgress
}

// String returns the progress bar as a single line
func (p *ManualProgressBar) String() string {
	var bar strings.Builder
	bar.WriteString("|")

	currentProg := p.Fraction() * p.width
	for i := 0.0; i < currentProg; i++ {
		bar.WriteString("█")
	}
	for i := currentProg; i < p.width; i++ {
		bar.WriteString(" ")
	}
	fmt.Fprintf(&bar, "| [%.2f%v | elapsed: %v]", p.Fraction()*100, "%",
		time.Since(p.startTime).Truncate(time.Second))

	return bar.String()
}

// Display displays the progress bar, overwriting the previously
// displayed line
func (p *ManualProgressBar) Display() {
	fmt.Fprintf(p.out, "\n\033[1A\033[K%v", p.String())
}
