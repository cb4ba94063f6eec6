// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"bytes"
	"context"
	"runtime"
	"strings"
	"testing"
)

// shell returns a POSIX shell invocation usable as a stand-in interpreter.
func shell(t *testing.T, script string) (string, []string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("POSIX shell fixtures not available on Windows")
	}
	return "sh", []string{"-c", script}
}

func TestExecRunner_Capture(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	exe, args := shell(t, "echo 'R scripting front-end version 4.5.0 (2025-04-11)'")

	out, err := NewExecRunner().Capture(context.Background(), exe, args...)
	if err != nil {
		t.Fatalf("Capture() error = %v", err)
	}
	if !strings.Contains(out, "4.5.0") {
		t.Errorf("Capture() = %q, want version output", out)
	}
}

func TestExecRunner_Capture_NonZeroExitIsError(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	exe, args := shell(t, "echo partial; exit 3")

	out, err := NewExecRunner().Capture(context.Background(), exe, args...)
	if err == nil {
		t.Fatal("Capture() of a failing process should return an error")
	}
	if !strings.Contains(out, "partial") {
		t.Errorf("Capture() = %q, want output produced before failure", out)
	}
}

func TestExecRunner_Stream_OrderAndExitCode(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	exe, args := shell(t, "echo one; echo two >&2; echo three; exit 7")

	var out bytes.Buffer
	code, err := NewExecRunner().Stream(context.Background(), &out, exe, args...)
	if err != nil {
		t.Fatalf("Stream() error = %v", err)
	}
	if code != 7 {
		t.Errorf("Stream() exit code = %d, want 7", code)
	}

	got := out.String()
	for _, line := range []string{"one", "two", "three"} {
		if !strings.Contains(got, line) {
			t.Errorf("Stream() output %q missing line %q (stderr must be merged)", got, line)
		}
	}
}

func TestExecRunner_Stream_SpawnFailure(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	code, err := NewExecRunner().Stream(context.Background(), &out, "rrun-nonexistent-binary-xyz")
	if err == nil {
		t.Fatal("Stream() of a missing binary should return an error")
	}
	if code.IsSuccess() {
		t.Errorf("Stream() exit code = %d, want non-zero", code)
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	if !ExitCode(0).IsSuccess() {
		t.Error("ExitCode(0).IsSuccess() = false, want true")
	}
	if ExitCode(3).IsSuccess() {
		t.Error("ExitCode(3).IsSuccess() = true, want false")
	}
	if got := ExitCode(42).String(); got != "42" {
		t.Errorf("ExitCode(42).String() = %q, want %q", got, "42")
	}
}
