package runner

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	r := New(nil)
	ctx := context.Background()

	t.Run("captures_stdout", func(t *testing.T) {
		out, err := r.Run(ctx, Command{Name: "sh", Args: []string{"-c", "echo hello"}})
		if err != nil {
			t.Fatalf("Run error: %v", err)
		}
		if strings.TrimSpace(out) != "hello" {
			t.Errorf("stdout = %q", out)
		}
	})

	t.Run("respects_working_directory", func(t *testing.T) {
		dir := t.TempDir()
		out, err := r.Run(ctx, Command{Name: "pwd", Dir: dir})
		if err != nil {
			t.Fatalf("Run error: %v", err)
		}
		if !strings.Contains(strings.TrimSpace(out), dir) {
			t.Errorf("pwd = %q, want under %q", out, dir)
		}
	})

	t.Run("nonzero_exit_is_subprocess_error", func(t *testing.T) {
		_, err := r.Run(ctx, Command{Name: "sh", Args: []string{"-c", "echo oops >&2; exit 3"}})
		var subErr *SubprocessError
		if !errors.As(err, &subErr) {
			t.Fatalf("expected *SubprocessError, got: %v", err)
		}
		if subErr.ExitCode != 3 {
			t.Errorf("ExitCode = %d, want 3", subErr.ExitCode)
		}
		if !strings.Contains(subErr.Stderr, "oops") {
			t.Errorf("Stderr = %q", subErr.Stderr)
		}
	})

	t.Run("missing_binary_is_subprocess_error", func(t *testing.T) {
		_, err := r.Run(ctx, Command{Name: "definitely-not-a-binary-xyz"})
		var subErr *SubprocessError
		if !errors.As(err, &subErr) {
			t.Fatalf("expected *SubprocessError, got: %v", err)
		}
		if subErr.ExitCode != -1 {
			t.Errorf("ExitCode = %d, want -1", subErr.ExitCode)
		}
		if subErr.Err == nil {
			t.Error("spawn error should be preserved")
		}
	})
}

func TestCommandString(t *testing.T) {
	cmd := Command{Name: "npm", Args: []string{"create", "vite@latest"}}
	if got := cmd.String(); got != "npm create vite@latest" {
		t.Errorf("String() = %q", got)
	}
	if got := (Command{Name: "npm"}).String(); got != "npm" {
		t.Errorf("String() = %q", got)
	}
}
