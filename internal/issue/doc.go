// SPDX-License-Identifier: MPL-2.0

// Package issue provides structured, user-facing error types.
//
// ActionableError carries what was attempted, which resource was involved,
// and suggestions for fixing the problem. The issue catalog maps well-known
// failure classes (interpreter not found, script failed, lockfile missing)
// to rendered markdown help shown in verbose mode.
package issue
