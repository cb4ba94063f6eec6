// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"rrun-cli/internal/discovery"
	"rrun-cli/internal/issue"
	"rrun-cli/internal/runtime"
	"rrun-cli/pkg/renvlock"
)

var (
	// runRVersion is the --r-version flag value.
	runRVersion string
	// runEval is the --eval flag value.
	runEval string

	runCmd = &cobra.Command{
		Use:   "run [script.R]",
		Short: "Run R code through a located interpreter",
		Long: `Run executes R code through the interpreter matching the requested
version, streaming its output as it is produced. The code comes from the
script file argument, from --eval, or from stdin when the argument is "-"
or absent.

Without --r-version, the version is resolved from the renv.lock manifest
in the current directory (falling back to default_r_version from the
config file). The script runs with --vanilla, so no site or user profile
is loaded.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := resolveCode(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			version, resolved, err := resolveVersion()
			if err != nil {
				return err
			}

			executor := runtime.NewExecutor(newLocator(), runtime.NewExecRunner())
			executor.Stdout = cmd.OutOrStdout()

			err = executor.Execute(cmd.Context(), version, code)
			if err == nil {
				return nil
			}
			if resolved {
				err = fmt.Errorf("execution with renv.lock-resolved version failed: %w", err)
			}

			var notFound *discovery.NotFoundError
			if errors.As(err, &notFound) {
				renderIssue(issue.InterpreterNotFoundId)
				return err
			}

			var execErr *runtime.ExecutionError
			if errors.As(err, &execErr) {
				renderIssue(issue.ScriptExecutionFailedId)
				if execErr.Cause == nil {
					// Propagate the interpreter's own exit code to the shell.
					return &ExitError{Code: execErr.ExitCode, Err: err}
				}
			}
			return err
		},
	}
)

func init() {
	runCmd.Flags().StringVarP(&runRVersion, "r-version", "r", "", "R version to run (default: from renv.lock)")
	runCmd.Flags().StringVarP(&runEval, "eval", "e", "", "inline R code to run instead of a script file")
}

// resolveCode returns the script payload from --eval, a script file, or stdin.
func resolveCode(stdin io.Reader, args []string) (string, error) {
	if runEval != "" {
		if len(args) > 0 {
			return "", fmt.Errorf("cannot combine --eval with a script file argument")
		}
		return runEval, nil
	}

	if len(args) == 0 || args[0] == "-" {
		code, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read code from stdin: %w", err)
		}
		return string(code), nil
	}

	code, err := os.ReadFile(args[0])
	if err != nil {
		return "", issue.NewErrorContext().
			WithOperation("read script file").
			WithResource(args[0]).
			Wrap(err).
			BuildError()
	}
	return string(code), nil
}

// resolveVersion returns the target R version and whether it came from the
// renv.lock manifest (as opposed to the flag or the config default).
func resolveVersion() (version string, fromLockfile bool, err error) {
	if runRVersion != "" {
		return runRVersion, false, nil
	}

	version, err = renvlock.Resolve("")
	if err == nil {
		return version, true, nil
	}

	var manifestErr *renvlock.ManifestError
	if errors.As(err, &manifestErr) {
		// Only a genuinely absent lockfile falls back to the config
		// default; a present but broken lockfile surfaces its error.
		if manifestErr.Cause == nil {
			if cfg.DefaultRVersion != "" {
				return cfg.DefaultRVersion, false, nil
			}
			renderIssue(issue.LockfileNotFoundId)
		} else {
			renderIssue(issue.LockfileParseErrorId)
		}
	}
	return "", false, err
}
