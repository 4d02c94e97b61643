package progressbar

import (
	"fmt"
	"io"

	"github.com/gosuri/uilive"
)

// Live is a ManualProgressBar that redraws itself in place whenever it
// is incremented
type Live struct {
	*ManualProgressBar
	writer *uilive.Writer
}

// NewLive returns a new Live progress bar displayed on out
func NewLive(out io.Writer, width, max int) *Live {
	writer := uilive.New()
	writer.Out = out

	return &Live{
		ManualProgressBar: NewManualProgressBar(out, width, max),
		writer:            writer,
	}
}

// Increment increments the progress counter and redraws the bar
func (l *Live) Increment() {
	l.ManualProgressBar.Increment()
	l.Display()
}

// Display redraws the bar in place of the previous drawing
func (l *Live) Display() {
	fmt.Fprintln(l.writer, l.String())
	l.writer.Flush()
}
