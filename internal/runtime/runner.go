// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"context"
	"fmt"
	"io"
	"os/exec"
)

type (
	// Runner abstracts subprocess invocation so tests can substitute
	// deterministic stub interpreters.
	Runner interface {
		// Capture runs exe synchronously and returns its combined
		// stdout+stderr. A non-zero exit is reported as an error alongside
		// whatever output was produced.
		Capture(ctx context.Context, exe string, args ...string) (string, error)

		// Stream runs exe synchronously, forwarding merged stdout+stderr to w
		// as it is produced. It returns the process exit code; err is non-nil
		// only when the process could not be started or waited on.
		Stream(ctx context.Context, w io.Writer, exe string, args ...string) (ExitCode, error)
	}

	// ExecRunner is the production Runner backed by os/exec.
	ExecRunner struct{}
)

// NewExecRunner creates the production Runner.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Capture implements Runner.
func (r *ExecRunner) Capture(ctx context.Context, exe string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, exe, args...)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// Stream implements Runner. Stdout and stderr share the same writer, so the
// caller observes lines in the order the interpreter emits them, without
// whole-run buffering.
func (r *ExecRunner) Stream(ctx context.Context, w io.Writer, exe string, args ...string) (ExitCode, error) {
	cmd := exec.CommandContext(ctx, exe, args...)
	cmd.Stdout = w
	cmd.Stderr = w

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return ExitCode(exitErr.ExitCode()), nil
		}
		return 1, fmt.Errorf("failed to start %s: %w", exe, err)
	}

	return 0, nil
}
