package scaffold

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/stackgen-dev/stackgen/internal/config"
	"github.com/stackgen-dev/stackgen/internal/defs"
)

// FeaturesOrchestrator applies the selected additional features. Today
// only the env feature has a standalone effect: it writes the environment
// template file. Choosing a database implies the same file, so the output
// is a union of base, database, and auth variable blocks with no
// duplicates. eslint and prettier configs are written with the backend
// plan, not here, because their placement depends on the backend layout.
type FeaturesOrchestrator struct {
	rec    *config.Record
	root   string
	logger *slog.Logger
	status Status
}

// NewFeaturesOrchestrator creates the features orchestrator. root is
// where the env file lands: the backend root when a backend was
// generated, the project root otherwise.
func NewFeaturesOrchestrator(rec *config.Record, root string, logger *slog.Logger) *FeaturesOrchestrator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &FeaturesOrchestrator{
		rec:    rec,
		root:   filepath.Clean(root),
		logger: logger,
		status: StatusPending,
	}
}

// Status returns the orchestrator lifecycle state.
func (o *FeaturesOrchestrator) Status() Status {
	return o.status
}

// Run applies feature effects. Features without a file effect are no-ops.
func (o *FeaturesOrchestrator) Run(ctx context.Context) error {
	o.status = StatusRunning

	if err := ctx.Err(); err != nil {
		o.status = StatusFailed
		return err
	}

	if o.rec.WantsEnvFile() {
		path := filepath.Join(o.root, defs.EnvFile)
		if err := os.WriteFile(path, []byte(EnvFileContent(o.rec)), defs.FilePerm); err != nil {
			o.status = StatusFailed
			return fmt.Errorf("write env file: %w", err)
		}
		o.logger.Info("env file written", "path", path)
	}

	o.status = StatusSucceeded
	return nil
}

// EnvFileContent builds the environment template: the union of the base
// block, the database-specific block, and the auth block, each included
// independently and exactly once.
func EnvFileContent(rec *config.Record) string {
	var b strings.Builder

	b.WriteString("PORT=5000\n")

	switch rec.Database {
	case config.DatabaseMongoDB:
		fmt.Fprintf(&b, "MONGODB_URI=mongodb://localhost:27017/%s\n", rec.ProjectName)
	case config.DatabasePostgres:
		b.WriteString("PGHOST=localhost\n")
		b.WriteString("PGPORT=5432\n")
		b.WriteString("PGUSER=postgres\n")
		b.WriteString("PGPASSWORD=postgres\n")
		fmt.Fprintf(&b, "PGDATABASE=%s\n", rec.ProjectName)
	}

	if rec.WantsAuth() {
		b.WriteString("JWT_SECRET=change-me\n")
	}

	return b.String()
}
