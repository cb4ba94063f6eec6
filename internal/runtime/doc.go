// SPDX-License-Identifier: MPL-2.0

// Package runtime runs R code through a located interpreter.
//
// The Runner interface is the single subprocess seam: Capture is used for
// short version-check probes, Stream for the main script run with live
// merged output. Executor owns the temporary script file lifecycle — the
// file is created per invocation and removed on every exit path.
package runtime
