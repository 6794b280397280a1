package cli

import (
	"io"

	"github.com/stackgen-dev/stackgen/internal/scaffold"
	"github.com/stackgen-dev/stackgen/internal/ui"
)

// stageCount returns how many reporter stages a run can emit, for the
// step tracker denominator.
func stageCount(hasFrontend, hasBackend, hasStyling, hasFeatures, install bool) int {
	n := 1 // readme
	if hasFrontend {
		n++
	}
	if hasBackend {
		n++
	}
	if hasStyling {
		n++
	}
	if hasFeatures {
		n++
	}
	if install {
		n++
	}
	return n
}

// newReporter picks the progress surface for a run. Non-interactive runs
// get plain stage lines; interactive runs with at most two stages get an
// indeterminate spinner, longer ones the step bar. The returned finish
// func tears the surface down and is safe to call after a failure.
func newReporter(out io.Writer, theme *ui.Theme, detector *ui.HeadlessDetector, title string, total int, interactive bool) (scaffold.Reporter, func()) {
	if !interactive {
		return scaffold.NewConsoleReporter(out), func() {}
	}
	if total <= 2 {
		sp := ui.StartSpinner(theme, detector, title)
		return newSpinnerReporter(sp), sp.Stop
	}
	steps := ui.StartSteps(theme, detector, title, total)
	return newUIReporter(steps), steps.Done
}

// uiReporter adapts scaffold stage events onto the step tracker.
type uiReporter struct {
	steps ui.StepTracker
}

func newUIReporter(steps ui.StepTracker) *uiReporter {
	return &uiReporter{steps: steps}
}

func (r *uiReporter) StageStarted(stage scaffold.Stage, title string) {
	r.steps.Step(title)
}

func (r *uiReporter) StageDone(stage scaffold.Stage) {}

func (r *uiReporter) StageFailed(stage scaffold.Stage, err error) {
	r.steps.Done()
}

// spinnerReporter adapts scaffold stage events onto the spinner.
type spinnerReporter struct {
	spinner ui.Spinner
}

func newSpinnerReporter(s ui.Spinner) *spinnerReporter {
	return &spinnerReporter{spinner: s}
}

func (r *spinnerReporter) StageStarted(stage scaffold.Stage, title string) {
	r.spinner.SetTitle(title)
}

func (r *spinnerReporter) StageDone(stage scaffold.Stage) {}

func (r *spinnerReporter) StageFailed(stage scaffold.Stage, err error) {
	r.spinner.Stop()
}
