package shell

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	shellquote "github.com/kballard/go-shellquote"

	"github.com/mitoteru/sprout/internal/debug"
)

// Runner executes external commands.
type Runner interface {
	// Run invokes a command in dir, inheriting the user's terminal.
	// A non-zero exit status is returned as an error wrapping the exit state.
	Run(ctx context.Context, dir string, argv []string) error
}

// ExecRunner runs commands via os/exec. The tool is user-supervised, so
// stdout/stderr/stdin are inherited rather than captured.
type ExecRunner struct{}

// NewRunner creates an ExecRunner.
func NewRunner() Runner {
	return &ExecRunner{}
}

// Run invokes a command in dir.
func (r *ExecRunner) Run(ctx context.Context, dir string, argv []string) error {
	if len(argv) == 0 {
		return fmt.Errorf("empty command")
	}

	debug.Debug("[shell] Running: %s (dir: %s)", Quote(argv), dir)

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s failed: %w", argv[0], err)
	}

	return nil
}

// Quote renders an argv for display in progress messages.
func Quote(argv []string) string {
	return shellquote.Join(argv...)
}
