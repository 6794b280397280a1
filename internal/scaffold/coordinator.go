package scaffold

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/stackgen-dev/stackgen/internal/config"
	"github.com/stackgen-dev/stackgen/internal/defs"
	"github.com/stackgen-dev/stackgen/internal/runner"
)

// Result summarizes a completed generation run.
type Result struct {
	ProjectRoot  string
	FrontendRoot string   // empty when no frontend was generated
	BackendRoot  string   // empty when no backend was generated
	CreatedDirs  []string // backend directories, relative to the backend root
	CreatedFiles []string // backend files plus project-level files
	Readme       string   // rendered README.md content
}

// Coordinator sequences the orchestrators for one run: frontend and
// backend in parallel, then features, then dependency installation, then
// the README. A failed stage skips everything after it.
type Coordinator struct {
	rec      *config.Record
	root     string
	run      runner.Runner
	logger   *slog.Logger
	reporter Reporter
	version  string
}

// NewCoordinator creates a Coordinator for the record rooted at the
// project directory. A nil logger discards logs.
func NewCoordinator(rec *config.Record, projectRoot string, run runner.Runner, logger *slog.Logger) *Coordinator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Coordinator{
		rec:      rec,
		root:     filepath.Clean(projectRoot),
		run:      run,
		logger:   logger,
		reporter: nopReporter{},
		version:  "dev",
	}
}

// SetReporter installs a stage event reporter.
func (c *Coordinator) SetReporter(r Reporter) {
	if r != nil {
		c.reporter = r
	}
}

// SetVersion sets the tool version stamped into the generated README.
func (c *Coordinator) SetVersion(v string) {
	if v != "" {
		c.version = v
	}
}

// FrontendRoot returns the frontend target root for the record.
func (c *Coordinator) FrontendRoot() string {
	if c.rec.ProjectType == config.TypeFullstack {
		return filepath.Join(c.root, defs.FrontendDir)
	}
	return c.root
}

// BackendRoot returns the backend target root for the record.
func (c *Coordinator) BackendRoot() string {
	if c.rec.ProjectType == config.TypeFullstack {
		return filepath.Join(c.root, defs.BackendDir)
	}
	return c.root
}

// Execute runs the full generation pipeline. The record is re-validated
// first; the coordinator never generates from an inconsistent record,
// even when the collector misbehaved.
func (c *Coordinator) Execute(ctx context.Context) (*Result, error) {
	if err := c.rec.Validate(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(c.root, defs.DirPerm); err != nil {
		return nil, fmt.Errorf("create project root %q: %w", c.root, err)
	}

	result := &Result{ProjectRoot: c.root}

	if err := c.runTargets(ctx, result); err != nil {
		return nil, err
	}

	if c.rec.WantsEnvFile() || len(c.rec.Features) > 0 {
		c.reporter.StageStarted(StageFeatures, "Applying features")
		features := NewFeaturesOrchestrator(c.rec, c.featuresRoot(), c.logger)
		if err := features.Run(ctx); err != nil {
			c.reporter.StageFailed(StageFeatures, err)
			return nil, &StageError{Stage: StageFeatures, Err: err}
		}
		if c.rec.WantsEnvFile() {
			result.CreatedFiles = append(result.CreatedFiles, defs.EnvFile)
		}
		c.reporter.StageDone(StageFeatures)
	}

	if c.rec.Install {
		if err := c.installDependencies(ctx); err != nil {
			return nil, err
		}
	}

	c.reporter.StageStarted(StageReadme, "Writing README")
	readme := BuildReadme(c.rec, c.version)
	readmePath := filepath.Join(c.root, defs.ReadmeMD)
	if err := os.WriteFile(readmePath, []byte(readme), defs.FilePerm); err != nil {
		err = fmt.Errorf("write README: %w", err)
		c.reporter.StageFailed(StageReadme, err)
		return nil, &StageError{Stage: StageReadme, Err: err}
	}
	result.Readme = readme
	result.CreatedFiles = append(result.CreatedFiles, defs.ReadmeMD)
	c.reporter.StageDone(StageReadme)

	c.logger.Info("project generated",
		"root", c.root,
		"type", c.rec.ProjectType,
		"files", len(result.CreatedFiles),
	)
	return result, nil
}

// runTargets runs the frontend and backend orchestrators. They write to
// disjoint subtrees and share only the read-only record, so they run
// concurrently under fullstack.
func (c *Coordinator) runTargets(ctx context.Context, result *Result) error {
	var frontendErr, backendErr error
	var wg sync.WaitGroup

	var backend *BackendOrchestrator

	if c.rec.HasFrontend() {
		c.reporter.StageStarted(StageFrontend, "Scaffolding frontend")
		frontend := NewFrontendOrchestrator(c.rec, c.FrontendRoot(), c.run, c.logger)
		frontend.SetReporter(c.reporter)
		wg.Add(1)
		go func() {
			defer wg.Done()
			frontendErr = frontend.Run(ctx)
		}()
	}

	if c.rec.HasBackend() {
		c.reporter.StageStarted(StageBackend, "Scaffolding backend")
		backend = NewBackendOrchestrator(c.rec, c.BackendRoot(), c.run, c.logger)
		wg.Add(1)
		go func() {
			defer wg.Done()
			backendErr = backend.Run(ctx)
		}()
	}

	wg.Wait()

	if frontendErr != nil {
		c.reporter.StageFailed(StageFrontend, frontendErr)
		return &StageError{Stage: StageFrontend, Err: frontendErr}
	}
	if c.rec.HasFrontend() {
		result.FrontendRoot = c.FrontendRoot()
		c.reporter.StageDone(StageFrontend)
	}

	if backendErr != nil {
		c.reporter.StageFailed(StageBackend, backendErr)
		return &StageError{Stage: StageBackend, Err: backendErr}
	}
	if backend != nil {
		result.BackendRoot = c.BackendRoot()
		if p := backend.Plan(); p != nil {
			result.CreatedDirs = append(result.CreatedDirs, p.Dirs...)
			for _, f := range p.Files {
				result.CreatedFiles = append(result.CreatedFiles, f.Path)
			}
		}
		c.reporter.StageDone(StageBackend)
	}

	return nil
}

// installDependencies runs the package manager once per generated target.
// Installs touch disjoint trees and run concurrently.
func (c *Coordinator) installDependencies(ctx context.Context) error {
	c.reporter.StageStarted(StageDependencies, "Installing dependencies")

	var targets []string
	if c.rec.HasFrontend() {
		targets = append(targets, c.FrontendRoot())
	}
	if c.rec.HasBackend() {
		targets = append(targets, c.BackendRoot())
	}

	errs := make([]error, len(targets))
	var wg sync.WaitGroup
	for i, dir := range targets {
		wg.Add(1)
		go func(i int, dir string) {
			defer wg.Done()
			cmd := runner.Command{Name: "npm", Args: []string{"install"}, Dir: dir}
			_, errs[i] = c.run.Run(ctx, cmd)
		}(i, dir)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			c.reporter.StageFailed(StageDependencies, err)
			return &StageError{Stage: StageDependencies, Err: err}
		}
	}

	c.reporter.StageDone(StageDependencies)
	return nil
}

// featuresRoot is where feature files land: the backend root when a
// backend exists, the project root otherwise.
func (c *Coordinator) featuresRoot() string {
	if c.rec.HasBackend() {
		return c.BackendRoot()
	}
	return c.root
}
