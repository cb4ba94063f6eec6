// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// scriptPattern names the temporary script files handed to Rscript. The .R
// extension matters: Rscript refuses some operations on extension-less files.
const scriptPattern = "rrun-*.R"

type (
	// Locator resolves a version string to an interpreter executable path.
	// Satisfied by discovery.Locator; narrowed here so the executor can be
	// tested with a fixed-path fake.
	Locator interface {
		Locate(ctx context.Context, version string) (string, error)
	}

	// Executor runs R code through a located interpreter, streaming output
	// to Stdout as it is produced.
	Executor struct {
		Locator Locator
		Runner  Runner
		// Stdout receives the interpreter's merged output. Defaults to
		// os.Stdout when nil.
		Stdout io.Writer
		// Log receives probe-level debug lines. Defaults to the package
		// default logger when nil.
		Log *log.Logger
	}

	// ExecutionError is returned when the interpreter run itself failed:
	// either the process exited non-zero, or it could not be spawned.
	ExecutionError struct {
		// ExitCode is the interpreter's exit status (0 when Cause is set).
		ExitCode ExitCode
		// Cause is the spawn failure, nil for plain non-zero exits.
		Cause error
	}
)

// Error implements the error interface.
func (e *ExecutionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("R execution failed: %s", e.Cause.Error())
	}
	return fmt.Sprintf("R exited with code %s", e.ExitCode)
}

// Unwrap returns the spawn failure for errors.Is/As chains.
func (e *ExecutionError) Unwrap() error { return e.Cause }

// NewExecutor creates an Executor with production defaults for output and
// logging.
func NewExecutor(locator Locator, runner Runner) *Executor {
	return &Executor{
		Locator: locator,
		Runner:  runner,
		Stdout:  os.Stdout,
		Log:     log.Default(),
	}
}

// Execute materializes code to a temporary script file and runs it through
// the interpreter matching version. Interpreter output is forwarded to the
// executor's Stdout as it is produced. The temporary file is removed on
// every exit path.
func (e *Executor) Execute(ctx context.Context, version, code string) error {
	exe, err := e.Locator.Locate(ctx, version)
	if err != nil {
		return fmt.Errorf("cannot execute R %s code: %w", version, err)
	}

	scriptPath, err := e.writeScript(code)
	if err != nil {
		return err
	}
	defer func() {
		_ = os.Remove(scriptPath) // Cleanup is unconditional; error non-critical
	}()

	e.logger().Debug("running script", "interpreter", exe, "script", scriptPath)

	// --vanilla keeps the run isolated: no site/user profile, no workspace
	// save/restore. Interleaving fidelity depends on stdout and stderr
	// sharing one writer, which Stream guarantees.
	exitCode, err := e.Runner.Stream(ctx, e.stdout(), exe, "--vanilla", scriptPath)
	if err != nil {
		return &ExecutionError{Cause: err}
	}
	if !exitCode.IsSuccess() {
		return &ExecutionError{ExitCode: exitCode}
	}

	return nil
}

// writeScript writes code verbatim to a fresh temporary file. Plain UTF-8
// with no byte-order mark: R 4.x treats a BOM as part of the source text.
func (e *Executor) writeScript(code string) (string, error) {
	tmpFile, err := os.CreateTemp("", scriptPattern)
	if err != nil {
		return "", fmt.Errorf("failed to create temp script file: %w", err)
	}

	if _, err := tmpFile.WriteString(code); err != nil {
		_ = tmpFile.Close()           // Best-effort close on error path
		_ = os.Remove(tmpFile.Name()) // Best-effort cleanup on error path
		return "", fmt.Errorf("failed to write temp script: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		_ = os.Remove(tmpFile.Name()) // Best-effort cleanup on error path
		return "", fmt.Errorf("failed to close temp script: %w", err)
	}

	return tmpFile.Name(), nil
}

func (e *Executor) stdout() io.Writer {
	if e.Stdout != nil {
		return e.Stdout
	}
	return os.Stdout
}

func (e *Executor) logger() *log.Logger {
	if e.Log != nil {
		return e.Log
	}
	return log.Default()
}
