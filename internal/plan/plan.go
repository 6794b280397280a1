package plan

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/stackgen-dev/stackgen/internal/defs"
	"github.com/stackgen-dev/stackgen/internal/runner"
)

// File is one file to write, relative to the plan root.
type File struct {
	Path    string
	Content string
}

// Plan is the materialization order for one target. Execute runs the
// stages in fixed topological order: directories, then files, then
// external commands. Files are written in slice order, so callers list
// the manifest before anything that assumes it exists.
type Plan struct {
	Root     string
	Dirs     []string
	Files    []File
	Commands []runner.Command
}

// AddFile appends a file to the plan.
func (p *Plan) AddFile(rel, content string) {
	p.Files = append(p.Files, File{Path: rel, Content: content})
}

// AddCommand appends an external command to the plan.
func (p *Plan) AddCommand(cmd runner.Command) {
	p.Commands = append(p.Commands, cmd)
}

// Execute materializes the plan. The first error aborts; already-written
// files stay on disk.
func (p *Plan) Execute(ctx context.Context, run runner.Runner, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	root := filepath.Clean(p.Root)
	if err := os.MkdirAll(root, defs.DirPerm); err != nil {
		return fmt.Errorf("create target root %q: %w", root, err)
	}

	for _, dir := range p.Dirs {
		if err := ctx.Err(); err != nil {
			return err
		}
		abs, err := resolve(root, dir)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(abs, defs.DirPerm); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}

	for _, f := range p.Files {
		if err := ctx.Err(); err != nil {
			return err
		}
		abs, err := resolve(root, f.Path)
		if err != nil {
			return err
		}
		if err := os.WriteFile(abs, []byte(f.Content), defs.FilePerm); err != nil {
			return fmt.Errorf("write file %q: %w", f.Path, err)
		}
		logger.Debug("wrote file", "path", f.Path, "bytes", len(f.Content))
	}

	for _, cmd := range p.Commands {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := run.Run(ctx, cmd); err != nil {
			return err
		}
	}

	return nil
}

// resolve joins rel onto root, rejecting paths that would escape it.
func resolve(root, rel string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(rel))
	if filepath.IsAbs(cleaned) || cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path %q escapes target root", rel)
	}
	return filepath.Join(root, cleaned), nil
}
