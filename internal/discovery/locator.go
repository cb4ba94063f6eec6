// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	goruntime "runtime"
	"strings"

	"github.com/charmbracelet/log"

	"rrun-cli/internal/runtime"
)

// searchCategories summarizes every strategy Locate exhausts before giving
// up, in probe order.
var searchCategories = []string{
	"PATH",
	"R_HOME",
	"registry (HKCU/HKLM SOFTWARE\\R-core)",
	"conventional install directories",
	"local drive scan",
}

type (
	// NotFoundError is returned when no installed interpreter reports the
	// requested version after every search strategy is exhausted.
	NotFoundError struct {
		// Version is the requested version string.
		Version string
		// Probed is the number of candidate directories that were checked.
		Probed int
	}

	// Locator resolves a version string to the absolute path of a matching
	// 64-bit Rscript executable.
	Locator struct {
		// Probe supplies ambient environment reads. Defaults to SystemProbe
		// when nil.
		Probe EnvironmentProbe
		// Runner spawns the short-lived version-check subprocesses. Defaults
		// to ExecRunner when nil.
		Runner runtime.Runner
		// ExtraDirs are operator-configured candidate directories, probed
		// after the conventional roots.
		ExtraDirs []string
		// Log receives per-candidate debug lines. Defaults to the package
		// default logger when nil.
		Log *log.Logger
	}
)

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf(
		"no 64-bit R %s installation found after probing %d candidate(s); searched %s",
		e.Version, e.Probed, strings.Join(searchCategories, ", "))
}

// NewLocator creates a Locator with the production probe and runner.
func NewLocator() *Locator {
	return &Locator{
		Probe:  NewSystemProbe(),
		Runner: runtime.NewExecRunner(),
		Log:    log.Default(),
	}
}

// Locate returns the path of the first candidate Rscript whose self-reported
// version output contains version. The match is substring-based, exactly as
// loose as the verification the interpreters themselves print. Candidates
// that are missing or fail their version check are skipped silently.
func (l *Locator) Locate(ctx context.Context, version string) (string, error) {
	if version == "" {
		return "", fmt.Errorf("version must not be empty")
	}

	candidates := l.Candidates(version)
	for _, candidate := range candidates {
		exe := filepath.Join(candidate.Dir, RscriptExecutable())

		if _, err := os.Stat(exe); err != nil {
			l.logger().Debug("candidate skipped, executable missing",
				"dir", candidate.Dir, "source", candidate.Source)
			continue
		}

		out, err := l.runner().Capture(ctx, exe, "--version")
		if err != nil {
			l.logger().Debug("candidate skipped, version check failed",
				"exe", exe, "error", err)
			continue
		}

		if strings.Contains(out, version) {
			l.logger().Debug("interpreter selected",
				"exe", exe, "source", candidate.Source)
			return exe, nil
		}

		l.logger().Debug("candidate skipped, version mismatch",
			"exe", exe, "reported", strings.TrimSpace(out), "requested", version)
	}

	return "", &NotFoundError{Version: version, Probed: len(candidates)}
}

// RscriptExecutable returns the interpreter executable file name for the
// current platform.
func RscriptExecutable() string {
	if goruntime.GOOS == "windows" {
		return "Rscript.exe"
	}
	return "Rscript"
}

func (l *Locator) probe() EnvironmentProbe {
	if l.Probe != nil {
		return l.Probe
	}
	return NewSystemProbe()
}

func (l *Locator) runner() runtime.Runner {
	if l.Runner != nil {
		return l.Runner
	}
	return runtime.NewExecRunner()
}

func (l *Locator) logger() *log.Logger {
	if l.Log != nil {
		return l.Log
	}
	return log.Default()
}
