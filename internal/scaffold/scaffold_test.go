package scaffold

import (
	"context"
	"strings"
	"sync"

	"github.com/stackgen-dev/stackgen/internal/runner"
)

// fakeRunner records every command instead of executing it. onRun lets a
// test simulate external tool side effects (create-vite writing a project
// tree, for example); failMatch makes matching commands fail.
type fakeRunner struct {
	mu        sync.Mutex
	commands  []runner.Command
	failMatch string
	onRun     func(cmd runner.Command) error
}

func (f *fakeRunner) Run(ctx context.Context, cmd runner.Command) (string, error) {
	f.mu.Lock()
	f.commands = append(f.commands, cmd)
	f.mu.Unlock()

	if f.failMatch != "" && strings.Contains(cmd.String(), f.failMatch) {
		return "", &runner.SubprocessError{Command: cmd.String(), ExitCode: 1, Stderr: "simulated failure"}
	}
	if f.onRun != nil {
		if err := f.onRun(cmd); err != nil {
			return "", err
		}
	}
	return "", nil
}

// recorded returns a snapshot of the command strings seen so far.
func (f *fakeRunner) recorded() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.commands))
	for i, c := range f.commands {
		out[i] = c.String()
	}
	return out
}

// findCommand returns the first recorded command containing substr.
func (f *fakeRunner) findCommand(substr string) (runner.Command, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.commands {
		if strings.Contains(c.String(), substr) {
			return c, true
		}
	}
	return runner.Command{}, false
}
