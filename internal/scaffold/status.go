// Package scaffold sequences project generation: one orchestrator per
// concern (frontend, backend, styling, features) and a coordinator that
// drives them according to the project type.
package scaffold

import (
	"fmt"
	"io"
)

// Status is the lifecycle of an orchestrator or coordinator stage.
type Status string

const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Stage names one step of the coordinator state machine.
type Stage string

const (
	StageFrontend     Stage = "frontend"
	StageBackend      Stage = "backend"
	StageStyling      Stage = "styling"
	StageFeatures     Stage = "features"
	StageDependencies Stage = "dependencies"
	StageReadme       Stage = "readme"
)

// StageError reports which stage failed and why. Orchestrator errors are
// wrapped at the stage boundary and re-raised to abort the coordinator.
type StageError struct {
	Stage Stage
	Err   error
}

// Error implements the error interface.
func (e *StageError) Error() string {
	return fmt.Sprintf("%s setup failed: %v", e.Stage, e.Err)
}

// Unwrap returns the causing error.
func (e *StageError) Unwrap() error {
	return e.Err
}

// Reporter receives stage lifecycle events for user-facing display. The
// coordinator calls it; implementations must not influence control flow.
type Reporter interface {
	StageStarted(stage Stage, title string)
	StageDone(stage Stage)
	StageFailed(stage Stage, err error)
}

// consoleReporter writes plain stage lines, for non-TTY runs and tests.
type consoleReporter struct {
	w io.Writer
}

// NewConsoleReporter creates a Reporter that writes plain text to w.
func NewConsoleReporter(w io.Writer) Reporter {
	return &consoleReporter{w: w}
}

func (r *consoleReporter) StageStarted(stage Stage, title string) {
	_, _ = fmt.Fprintf(r.w, "%s...\n", title)
}

func (r *consoleReporter) StageDone(stage Stage) {
	_, _ = fmt.Fprintf(r.w, "%s done\n", stage)
}

func (r *consoleReporter) StageFailed(stage Stage, err error) {
	_, _ = fmt.Fprintf(r.w, "%s failed: %v\n", stage, err)
}

// nopReporter discards all events.
type nopReporter struct{}

func (nopReporter) StageStarted(Stage, string) {}
func (nopReporter) StageDone(Stage)            {}
func (nopReporter) StageFailed(Stage, error)   {}
