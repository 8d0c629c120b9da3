package progress

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/trebuchet-org/ecdbg/internal/usecase"
)

// StageDone stops the spinner
const StageDone = "done"

// SpinnerProgressReporter implements progress reporting with a spinner on stderr
type SpinnerProgressReporter struct {
	spinner        *spinner.Spinner
	currentStage   string
	stageStartTime time.Time
}

// NewSpinnerProgressReporter creates a new spinner-based progress reporter
func NewSpinnerProgressReporter() *SpinnerProgressReporter {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.HideCursor = false

	return &SpinnerProgressReporter{
		spinner: s,
	}
}

// OnProgress handles progress events
func (r *SpinnerProgressReporter) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if event.Stage != r.currentStage {
		r.currentStage = event.Stage
		r.stageStartTime = time.Now()
	}

	if event.Stage == StageDone || !event.Spinner {
		if r.spinner.Active() {
			r.spinner.Stop()
		}
		return
	}

	if !r.spinner.Active() {
		r.spinner.Start()
	}
	r.spinner.Suffix = " " + r.display(event)
}

// display renders the spinner suffix for event
func (r *SpinnerProgressReporter) display(event usecase.ProgressEvent) string {
	message := event.Message
	if event.Total > 0 {
		message = fmt.Sprintf("%s [%d/%d]", message, event.Current, event.Total)
	}
	elapsed := time.Since(r.stageStartTime).Round(time.Second)
	if elapsed > 0 {
		message += color.New(color.Faint).Sprintf(" (%s)", elapsed)
	}
	return message
}

// Info prints an info message
func (r *SpinnerProgressReporter) Info(message string) {
	r.pause(func() {
		color.New(color.FgCyan).Fprintln(os.Stderr, message)
	})
}

// Error prints an error message
func (r *SpinnerProgressReporter) Error(message string) {
	r.pause(func() {
		color.New(color.FgRed).Fprintln(os.Stderr, message)
	})
}

// pause stops the spinner while fn prints and restarts it afterwards
func (r *SpinnerProgressReporter) pause(fn func()) {
	wasActive := false
	if r.spinner != nil && r.spinner.Active() {
		wasActive = true
		r.spinner.Stop()
	}

	fn()

	if wasActive {
		r.spinner.Start()
	}
}

// Ensure SpinnerProgressReporter implements ProgressSink
var _ usecase.ProgressSink = (*SpinnerProgressReporter)(nil)
