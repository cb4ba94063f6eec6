// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"testing"
)

func TestExitError(t *testing.T) {
	t.Parallel()

	bare := &ExitError{Code: 42}
	if got := bare.Error(); got != "exit status 42" {
		t.Errorf("Error() = %q, want %q", got, "exit status 42")
	}
	if bare.Unwrap() != nil {
		t.Error("Unwrap() of a bare ExitError should be nil")
	}

	cause := errors.New("R exited with code 42")
	wrapped := &ExitError{Code: 42, Err: cause}
	if got := wrapped.Error(); got != cause.Error() {
		t.Errorf("Error() = %q, want wrapped message", got)
	}
	if !errors.Is(wrapped, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}
