package scaffold

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/stackgen-dev/stackgen/internal/config"
	"github.com/stackgen-dev/stackgen/internal/runner"
)

// FrontendOrchestrator delegates frontend scaffolding to the external
// tool owning the chosen framework family. The Next.js family gets its
// TypeScript and styling choices as tool flags and writes nothing
// in-process; the Vite/React family is scaffolded by create-vite and then
// styled by the in-process styling orchestrator.
type FrontendOrchestrator struct {
	rec      *config.Record
	root     string
	run      runner.Runner
	logger   *slog.Logger
	reporter Reporter
	status   Status
}

// NewFrontendOrchestrator creates the frontend orchestrator. root is the
// frontend target root (frontend/ under fullstack, the project root
// otherwise); the external tools create it themselves, so only its parent
// must exist.
func NewFrontendOrchestrator(rec *config.Record, root string, run runner.Runner, logger *slog.Logger) *FrontendOrchestrator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &FrontendOrchestrator{
		rec:      rec,
		root:     filepath.Clean(root),
		run:      run,
		logger:   logger,
		reporter: nopReporter{},
		status:   StatusPending,
	}
}

// SetReporter installs a stage event reporter for the styling sub-stage.
func (o *FrontendOrchestrator) SetReporter(r Reporter) {
	if r != nil {
		o.reporter = r
	}
}

// Status returns the orchestrator lifecycle state.
func (o *FrontendOrchestrator) Status() Status {
	return o.status
}

// Run invokes the scaffolding tool for the framework family and, for the
// Vite family only, applies styling in-process afterwards.
func (o *FrontendOrchestrator) Run(ctx context.Context) error {
	o.status = StatusRunning

	cmd := o.command()
	if _, err := o.run.Run(ctx, cmd); err != nil {
		o.status = StatusFailed
		return fmt.Errorf("scaffold frontend: %w", err)
	}

	if o.rec.Frontend.IsVite() && o.rec.Tailwind {
		o.reporter.StageStarted(StageStyling, "Configuring Tailwind")
		styling := NewStylingOrchestrator(o.root, o.run, o.logger)
		if err := styling.Run(ctx); err != nil {
			o.reporter.StageFailed(StageStyling, err)
			o.status = StatusFailed
			return err
		}
		o.reporter.StageDone(StageStyling)
	}

	o.status = StatusSucceeded
	o.logger.Info("frontend generated", "root", o.root, "framework", o.rec.Frontend)
	return nil
}

// command builds the external tool invocation for the framework family.
// The working directory is the parent of the target root; the tool
// creates the target directory itself.
func (o *FrontendOrchestrator) command() runner.Command {
	parent := filepath.Dir(o.root)
	dir := filepath.Base(o.root)

	if o.rec.Frontend.IsNext() {
		args := []string{"create-next-app@latest", dir}
		if o.rec.Frontend.IsTypeScript() {
			args = append(args, "--typescript")
		} else {
			args = append(args, "--javascript")
		}
		if o.rec.Tailwind {
			args = append(args, "--tailwind")
		} else {
			args = append(args, "--no-tailwind")
		}
		args = append(args, "--eslint", "--app", "--src-dir", "--import-alias", "@/*", "--use-npm")
		return runner.Command{Name: "npx", Args: args, Dir: parent}
	}

	tmpl := "react"
	if o.rec.Frontend.IsTypeScript() {
		tmpl = "react-ts"
	}
	return runner.Command{
		Name: "npm",
		Args: []string{"create", "vite@latest", dir, "--", "--template", tmpl},
		Dir:  parent,
	}
}
