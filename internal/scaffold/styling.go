package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/stackgen-dev/stackgen/internal/defs"
	"github.com/stackgen-dev/stackgen/internal/runner"
)

// tailwindImportMarker is the stylesheet line that activates Tailwind.
// Its presence is the idempotence check: rewriting a file that already
// carries the marker is a no-op.
const tailwindImportMarker = `@import "tailwindcss";`

// tailwindPluginImport is the vite config import for the Tailwind plugin.
const tailwindPluginImport = `import tailwindcss from '@tailwindcss/vite'`

// vitePluginsAnchor is where the plugin gets registered. A config without
// it cannot be rewired and is an error, not a partial rewrite.
const vitePluginsAnchor = "plugins: ["

// StylingOrchestrator installs the Tailwind toolchain into a Vite/React
// project and rewires its build configuration and stylesheet entry.
// Next.js projects never reach this path; create-next-app owns their
// styling setup.
type StylingOrchestrator struct {
	root   string
	run    runner.Runner
	logger *slog.Logger
	status Status
}

// NewStylingOrchestrator creates the styling orchestrator for the given
// Vite project root.
func NewStylingOrchestrator(root string, run runner.Runner, logger *slog.Logger) *StylingOrchestrator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &StylingOrchestrator{
		root:   filepath.Clean(root),
		run:    run,
		logger: logger,
		status: StatusPending,
	}
}

// Status returns the orchestrator lifecycle state.
func (o *StylingOrchestrator) Status() Status {
	return o.status
}

// Run installs the styling packages and rewrites the vite config and
// stylesheet entry. Running it twice yields the same files as once.
func (o *StylingOrchestrator) Run(ctx context.Context) error {
	o.status = StatusRunning

	install := runner.Command{
		Name: "npm",
		Args: []string{"install", "-D", "tailwindcss", "@tailwindcss/vite"},
		Dir:  o.root,
	}
	if _, err := o.run.Run(ctx, install); err != nil {
		o.status = StatusFailed
		return fmt.Errorf("install styling toolchain: %w", err)
	}

	if err := o.rewriteViteConfig(); err != nil {
		o.status = StatusFailed
		return err
	}
	if err := o.rewriteStylesheet(); err != nil {
		o.status = StatusFailed
		return err
	}

	o.status = StatusSucceeded
	o.logger.Info("styling configured", "root", o.root)
	return nil
}

// rewriteViteConfig adds the Tailwind plugin import and registers it in
// the plugins list. The config file name depends on the template language.
func (o *StylingOrchestrator) rewriteViteConfig() error {
	path, err := o.findViteConfig()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read vite config: %w", err)
	}
	content := string(data)

	if strings.Contains(content, "@tailwindcss/vite") {
		return nil
	}
	if !strings.Contains(content, vitePluginsAnchor) {
		return fmt.Errorf("vite config %q has no plugins list to register the tailwind plugin in", path)
	}

	content = tailwindPluginImport + "\n" + content
	content = strings.Replace(content, vitePluginsAnchor, vitePluginsAnchor+"tailwindcss(), ", 1)

	if err := os.WriteFile(path, []byte(content), defs.FilePerm); err != nil {
		return fmt.Errorf("write vite config: %w", err)
	}
	return nil
}

// findViteConfig locates vite.config.ts or vite.config.js at the root.
func (o *StylingOrchestrator) findViteConfig() (string, error) {
	for _, name := range []string{"vite.config.ts", "vite.config.js"} {
		path := filepath.Join(o.root, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no vite config found in %q", o.root)
}

// rewriteStylesheet replaces the stylesheet entry with the Tailwind
// import, keeping exactly one marker no matter what the external tool's
// template put there.
func (o *StylingOrchestrator) rewriteStylesheet() error {
	path := filepath.Join(o.root, defs.SrcDir, "index.css")

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if strings.Contains(string(data), tailwindImportMarker) {
			return nil
		}
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("read stylesheet entry: %w", err)
	}

	if err := os.WriteFile(path, []byte(tailwindImportMarker+"\n"), defs.FilePerm); err != nil {
		return fmt.Errorf("write stylesheet entry: %w", err)
	}
	return nil
}
