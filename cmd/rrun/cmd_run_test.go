// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"rrun-cli/internal/config"
	"rrun-cli/pkg/renvlock"
)

// resetRunFlags restores the package-level flag state mutated by tests.
func resetRunFlags(t *testing.T) {
	t.Helper()

	origVersion, origEval, origCfg := runRVersion, runEval, cfg
	t.Cleanup(func() {
		runRVersion, runEval, cfg = origVersion, origEval, origCfg
	})
}

func TestResolveCode(t *testing.T) {
	// Not parallel: subtests mutate the package-level runEval flag var.

	t.Run("eval flag wins", func(t *testing.T) {
		resetRunFlags(t)
		runEval = "print(1+1)"

		code, err := resolveCode(strings.NewReader("ignored"), nil)
		if err != nil {
			t.Fatalf("resolveCode() error = %v", err)
		}
		if code != "print(1+1)" {
			t.Errorf("resolveCode() = %q", code)
		}
	})

	t.Run("eval and file argument conflict", func(t *testing.T) {
		resetRunFlags(t)
		runEval = "print(1)"

		if _, err := resolveCode(strings.NewReader(""), []string{"script.R"}); err == nil {
			t.Fatal("resolveCode() should reject --eval combined with a file")
		}
	})

	t.Run("reads stdin when no argument", func(t *testing.T) {
		resetRunFlags(t)

		code, err := resolveCode(strings.NewReader("cat('hi')\n"), nil)
		if err != nil {
			t.Fatalf("resolveCode() error = %v", err)
		}
		if code != "cat('hi')\n" {
			t.Errorf("resolveCode() = %q", code)
		}
	})

	t.Run("reads stdin for dash argument", func(t *testing.T) {
		resetRunFlags(t)

		code, err := resolveCode(strings.NewReader("x <- 1"), []string{"-"})
		if err != nil {
			t.Fatalf("resolveCode() error = %v", err)
		}
		if code != "x <- 1" {
			t.Errorf("resolveCode() = %q", code)
		}
	})

	t.Run("reads script file", func(t *testing.T) {
		resetRunFlags(t)

		path := filepath.Join(t.TempDir(), "script.R")
		if err := os.WriteFile(path, []byte("print(42)"), 0o644); err != nil {
			t.Fatalf("writing script fixture: %v", err)
		}

		code, err := resolveCode(strings.NewReader(""), []string{path})
		if err != nil {
			t.Fatalf("resolveCode() error = %v", err)
		}
		if code != "print(42)" {
			t.Errorf("resolveCode() = %q", code)
		}
	})

	t.Run("missing script file", func(t *testing.T) {
		resetRunFlags(t)

		if _, err := resolveCode(strings.NewReader(""), []string{"/no/such/script.R"}); err == nil {
			t.Fatal("resolveCode() should fail for a missing file")
		}
	})
}

func TestResolveVersion(t *testing.T) {
	// Not parallel: subtests mutate package-level flag vars and the cwd.

	t.Run("flag wins over lockfile", func(t *testing.T) {
		resetRunFlags(t)
		runRVersion = "4.4.2"

		version, fromLockfile, err := resolveVersion()
		if err != nil {
			t.Fatalf("resolveVersion() error = %v", err)
		}
		if version != "4.4.2" || fromLockfile {
			t.Errorf("resolveVersion() = (%q, %v), want (4.4.2, false)", version, fromLockfile)
		}
	})

	t.Run("lockfile in working directory", func(t *testing.T) {
		resetRunFlags(t)
		dir := t.TempDir()
		lock := `{"R": {"Version": "4.5.0"}}`
		if err := os.WriteFile(filepath.Join(dir, renvlock.LockfileName), []byte(lock), 0o644); err != nil {
			t.Fatalf("writing lockfile fixture: %v", err)
		}
		t.Chdir(dir)

		version, fromLockfile, err := resolveVersion()
		if err != nil {
			t.Fatalf("resolveVersion() error = %v", err)
		}
		if version != "4.5.0" || !fromLockfile {
			t.Errorf("resolveVersion() = (%q, %v), want (4.5.0, true)", version, fromLockfile)
		}
	})

	t.Run("config default when lockfile absent", func(t *testing.T) {
		resetRunFlags(t)
		cfg = &config.Config{DefaultRVersion: "4.3.1"}
		t.Chdir(t.TempDir())

		version, fromLockfile, err := resolveVersion()
		if err != nil {
			t.Fatalf("resolveVersion() error = %v", err)
		}
		if version != "4.3.1" || fromLockfile {
			t.Errorf("resolveVersion() = (%q, %v), want (4.3.1, false)", version, fromLockfile)
		}
	})

	t.Run("malformed lockfile surfaces even with config default", func(t *testing.T) {
		resetRunFlags(t)
		cfg = &config.Config{DefaultRVersion: "4.3.1"}
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, renvlock.LockfileName), []byte(`{"R": {`), 0o644); err != nil {
			t.Fatalf("writing lockfile fixture: %v", err)
		}
		t.Chdir(dir)

		_, _, err := resolveVersion()
		var manifestErr *renvlock.ManifestError
		if !errors.As(err, &manifestErr) {
			t.Fatalf("resolveVersion() error = %T (%v), want *renvlock.ManifestError", err, err)
		}
		if manifestErr.Cause == nil {
			t.Error("ManifestError for a present but broken lockfile should carry the parse cause")
		}
	})

	t.Run("manifest error when nothing available", func(t *testing.T) {
		resetRunFlags(t)
		cfg = config.DefaultConfig()
		t.Chdir(t.TempDir())

		_, _, err := resolveVersion()
		var manifestErr *renvlock.ManifestError
		if !errors.As(err, &manifestErr) {
			t.Fatalf("resolveVersion() error = %T (%v), want *renvlock.ManifestError", err, err)
		}
	})
}
