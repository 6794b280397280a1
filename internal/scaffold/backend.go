package scaffold

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"path/filepath"

	"github.com/stackgen-dev/stackgen/internal/config"
	"github.com/stackgen-dev/stackgen/internal/defs"
	"github.com/stackgen-dev/stackgen/internal/manifest"
	"github.com/stackgen-dev/stackgen/internal/plan"
	"github.com/stackgen-dev/stackgen/internal/runner"
	"github.com/stackgen-dev/stackgen/internal/template"
)

// BackendOrchestrator materializes the Express backend target: planned
// directories, the package.json manifest, rendered source files, and the
// TypeScript compiler configuration when applicable.
type BackendOrchestrator struct {
	rec    *config.Record
	root   string
	run    runner.Runner
	logger *slog.Logger
	status Status
	plan   *plan.Plan
}

// NewBackendOrchestrator creates the backend orchestrator. root is the
// backend target root (backend/ under fullstack, the project root
// otherwise). A nil logger discards logs.
func NewBackendOrchestrator(rec *config.Record, root string, run runner.Runner, logger *slog.Logger) *BackendOrchestrator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &BackendOrchestrator{
		rec:    rec,
		root:   filepath.Clean(root),
		run:    run,
		logger: logger,
		status: StatusPending,
	}
}

// Status returns the orchestrator lifecycle state.
func (o *BackendOrchestrator) Status() Status {
	return o.status
}

// Plan returns the executed generation plan, for summary reporting.
// Nil until Run has been called.
func (o *BackendOrchestrator) Plan() *plan.Plan {
	return o.plan
}

// Run builds and executes the backend generation plan. Directories are
// created before the manifest, and the manifest before any source file.
func (o *BackendOrchestrator) Run(ctx context.Context) error {
	o.status = StatusRunning

	p, err := o.buildPlan()
	if err != nil {
		o.status = StatusFailed
		return err
	}

	if err := p.Execute(ctx, o.run, o.logger); err != nil {
		o.status = StatusFailed
		return err
	}

	o.plan = p
	o.status = StatusSucceeded
	o.logger.Info("backend generated",
		"root", o.root,
		"dirs", len(p.Dirs),
		"files", len(p.Files),
	)
	return nil
}

// buildPlan derives the full backend plan from the record.
func (o *BackendOrchestrator) buildPlan() (*plan.Plan, error) {
	p := &plan.Plan{Root: o.root, Dirs: plan.Directories(o.rec)}

	m, err := manifest.Build(o.rec)
	if err != nil {
		return nil, fmt.Errorf("build manifest: %w", err)
	}
	manifestJSON, err := m.JSON()
	if err != nil {
		return nil, err
	}
	p.AddFile(defs.PackageJSON, manifestJSON)

	ts := o.rec.Backend.IsTypeScript()
	if ts {
		p.AddFile(defs.TSConfigJSON, template.TSConfig())
	}
	p.AddFile(defs.GitignoreFile, template.Gitignore())

	for _, gf := range backendFiles(o.rec) {
		content, err := template.Render(gf.role, o.rec)
		if err != nil {
			return nil, err
		}
		p.AddFile(gf.path, content)
	}

	if o.rec.HasFeature(config.FeatureESLint) {
		p.AddFile(defs.ESLintRC, template.ESLintRC(ts))
	}
	if o.rec.HasFeature(config.FeaturePrettier) {
		p.AddFile(defs.PrettierRC, template.PrettierRC())
	}

	return p, nil
}

// generatedFile pairs a template role with its destination path.
type generatedFile struct {
	role template.Role
	path string
}

// backendFiles lists the source files to render, in write order. Paths
// assume their parent directories are already in the plan.
func backendFiles(rec *config.Record) []generatedFile {
	ts := rec.Backend.IsTypeScript()
	ext := ".js"
	if ts {
		ext = ".ts"
	}

	rel := func(parts ...string) string {
		joined := path.Join(parts...)
		if ts {
			return path.Join(defs.SrcDir, joined)
		}
		return joined
	}

	files := []generatedFile{
		{template.RoleServerEntry, rel("server" + ext)},
	}

	if rec.Database == config.DatabaseNone || rec.Database == "" {
		return files
	}

	files = append(files,
		generatedFile{template.RoleDatabase, rel("db", "connect"+ext)},
	)
	switch rec.Database {
	case config.DatabaseMongoDB:
		files = append(files, generatedFile{template.RoleModel, rel("models", "User"+ext)})
	case config.DatabasePostgres:
		files = append(files, generatedFile{template.RoleModel, rel("queries", "userQueries"+ext)})
	}
	files = append(files,
		generatedFile{template.RoleController, rel("controllers", "userController"+ext)},
		generatedFile{template.RoleRoutes, rel("routes", "userRoutes"+ext)},
	)
	return files
}
