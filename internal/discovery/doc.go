// SPDX-License-Identifier: MPL-2.0

// Package discovery locates installed 64-bit R interpreters by version.
//
// Discovery is a two-phase process: candidate building walks the ambient
// environment (PATH, R_HOME, the Windows registry, conventional install
// roots, local drives) in precedence order, then verification probes each
// candidate's Rscript with --version until one reports the requested
// version. Individual probe failures — a missing registry key, a candidate
// that fails its version check — are expected and silently skipped; only
// full exhaustion is an error.
//
// Ambient environment reads go through the EnvironmentProbe interface and
// subprocess probes through runtime.Runner, so tests substitute fakes
// instead of touching real OS state.
package discovery
