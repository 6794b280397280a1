package plan

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stackgen-dev/stackgen/internal/runner"
)

// fakeRunner records commands without executing anything.
type fakeRunner struct {
	mu       sync.Mutex
	commands []runner.Command
	failOn   string
}

func (f *fakeRunner) Run(ctx context.Context, cmd runner.Command) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.commands = append(f.commands, cmd)
	if f.failOn != "" && cmd.Name == f.failOn {
		return "", &runner.SubprocessError{Command: cmd.String(), ExitCode: 1, Stderr: "boom"}
	}
	return "", nil
}

func TestPlanExecute(t *testing.T) {
	t.Run("creates_dirs_then_files_then_commands", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "out")
		run := &fakeRunner{}

		p := &Plan{
			Root: root,
			Dirs: []string{"src", "src/routes"},
		}
		p.AddFile("package.json", "{}\n")
		p.AddFile("src/routes/userRoutes.ts", "export {};\n")
		p.AddCommand(runner.Command{Name: "npm", Args: []string{"install"}, Dir: root})

		if err := p.Execute(context.Background(), run, nil); err != nil {
			t.Fatalf("Execute error: %v", err)
		}

		for _, rel := range []string{"src/routes", "package.json", "src/routes/userRoutes.ts"} {
			if _, err := os.Stat(filepath.Join(root, rel)); err != nil {
				t.Errorf("missing %s: %v", rel, err)
			}
		}
		if len(run.commands) != 1 || run.commands[0].Name != "npm" {
			t.Errorf("commands = %v", run.commands)
		}
	})

	t.Run("rejects_escaping_paths", func(t *testing.T) {
		p := &Plan{Root: t.TempDir(), Dirs: []string{"../outside"}}
		if err := p.Execute(context.Background(), &fakeRunner{}, nil); err == nil {
			t.Fatal("expected error for escaping path")
		}

		p = &Plan{Root: t.TempDir()}
		p.AddFile("../evil.txt", "x")
		if err := p.Execute(context.Background(), &fakeRunner{}, nil); err == nil {
			t.Fatal("expected error for escaping file path")
		}
	})

	t.Run("command_failure_aborts", func(t *testing.T) {
		root := t.TempDir()
		run := &fakeRunner{failOn: "npm"}
		p := &Plan{Root: root}
		p.AddFile("kept.txt", "written before the failure\n")
		p.AddCommand(runner.Command{Name: "npm", Args: []string{"install"}, Dir: root})

		err := p.Execute(context.Background(), run, nil)
		var subErr *runner.SubprocessError
		if !errors.As(err, &subErr) {
			t.Fatalf("expected SubprocessError, got: %v", err)
		}

		// No rollback: earlier writes stay on disk.
		if _, statErr := os.Stat(filepath.Join(root, "kept.txt")); statErr != nil {
			t.Error("file written before failure should remain")
		}
	})

	t.Run("cancelled_context_stops_execution", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		p := &Plan{Root: t.TempDir(), Dirs: []string{"routes"}}
		if err := p.Execute(ctx, &fakeRunner{}, nil); !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got: %v", err)
		}
	})
}
