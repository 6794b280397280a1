// Package runner executes external commands for the generation pipeline.
// Every scaffolding tool and package manager invocation goes through this
// single chokepoint so failure reporting stays uniform.
package runner

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"
)

// Command describes one external invocation: the binary, its arguments,
// and the working directory to run it in.
type Command struct {
	Name string
	Args []string
	Dir  string
}

// String renders the command for logs and error messages.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// SubprocessError reports a command that ran but exited non-zero, or
// could not be spawned at all (ExitCode -1).
type SubprocessError struct {
	Command  string
	ExitCode int
	Stderr   string
	Err      error // underlying spawn error, nil for non-zero exits
}

// Error implements the error interface.
func (e *SubprocessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("command %q failed to start: %v", e.Command, e.Err)
	}
	if e.Stderr != "" {
		return fmt.Sprintf("command %q exited with code %d: %s", e.Command, e.ExitCode, strings.TrimSpace(e.Stderr))
	}
	return fmt.Sprintf("command %q exited with code %d", e.Command, e.ExitCode)
}

// Unwrap returns the underlying spawn error, if any.
func (e *SubprocessError) Unwrap() error {
	return e.Err
}

// Runner executes external commands. Implementations must be safe for
// stubbing in tests.
type Runner interface {
	// Run executes cmd and returns its stdout on success. A non-zero
	// exit or spawn failure is returned as a *SubprocessError.
	Run(ctx context.Context, cmd Command) (string, error)
}

// execRunner is the production Runner backed by os/exec.
type execRunner struct {
	logger *slog.Logger
}

// New creates the production Runner. A nil logger discards logs.
func New(logger *slog.Logger) Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &execRunner{logger: logger}
}

// Run executes the command, capturing stdout and stderr separately.
func (r *execRunner) Run(ctx context.Context, cmd Command) (string, error) {
	r.logger.Info("running command", "cmd", cmd.String(), "dir", cmd.Dir)

	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	if err := c.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", &SubprocessError{
				Command:  cmd.String(),
				ExitCode: exitErr.ExitCode(),
				Stderr:   stderr.String(),
			}
		}
		return "", &SubprocessError{Command: cmd.String(), ExitCode: -1, Err: err}
	}

	return stdout.String(), nil
}
