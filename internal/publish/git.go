package publish

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes a single git invocation in dir and reports its exit
// status. Commands are argument vectors, never interpolated shell strings.
type Runner interface {
	Run(ctx context.Context, dir string, args ...string) error
}

// ExecGit runs the git binary through os/exec.
type ExecGit struct{}

// Run invokes git with the given arguments, working directory dir (empty
// means the process working directory). A non-zero exit wraps the trailing
// stderr output so the operator sees what git complained about.
func (ExecGit) Run(ctx context.Context, dir string, args ...string) error {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("git %s: %w: %s", args[0], err, msg)
		}
		return fmt.Errorf("git %s: %w", args[0], err)
	}
	return nil
}
