// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"path/filepath"
	"strings"
)

// Source identifies which search strategy produced a candidate. Lower values
// have higher precedence; the locator probes candidates in this order.
type Source int

const (
	// SourcePathEnv is the executable search path variable.
	SourcePathEnv Source = iota
	// SourceRHome is the R_HOME installation-root variable.
	SourceRHome
	// SourceRegistry is an R-core registry InstallPath entry.
	SourceRegistry
	// SourceConventional is a fixed program-files or user-local install root.
	SourceConventional
	// SourceExtraDir is a directory from the extra_search_dirs config key.
	SourceExtraDir
	// SourceDriveScan is a conventional root re-probed on another local drive.
	SourceDriveScan
)

// String returns the human-readable source category name.
func (s Source) String() string {
	switch s {
	case SourcePathEnv:
		return "PATH"
	case SourceRHome:
		return "R_HOME"
	case SourceRegistry:
		return "registry"
	case SourceConventional:
		return "install directory"
	case SourceExtraDir:
		return "configured directory"
	case SourceDriveScan:
		return "drive scan"
	default:
		return "unknown"
	}
}

// Candidate is a directory considered during discovery, before verification.
type Candidate struct {
	// Dir is the directory expected to contain the Rscript executable.
	Dir string
	// Source is the search strategy that produced this candidate.
	Source Source
}

// Candidates builds the ordered, deduplicated candidate directory list for
// version. The order defines precedence, not just coverage: the first
// candidate that verifies wins.
func (l *Locator) Candidates(version string) []Candidate {
	var candidates []Candidate

	// 1. PATH entries that look R-related and follow the 64-bit binary
	// directory convention. Windows paths are case-insensitive, so both
	// checks fold case.
	for _, entry := range l.probe().PathEntries() {
		if entry == "" {
			continue
		}
		if strings.Contains(strings.ToLower(entry), "r") && hasBinX64Suffix(entry) {
			candidates = append(candidates, Candidate{Dir: entry, Source: SourcePathEnv})
		}
	}

	// 2. Explicit installation root.
	if rHome := l.probe().Getenv("R_HOME"); rHome != "" {
		candidates = append(candidates, Candidate{
			Dir:    filepath.Join(rHome, "bin", "x64"),
			Source: SourceRHome,
		})
	}

	// 3. Registry entries for the exact version.
	for _, installPath := range l.probe().RegistryInstallPaths(version) {
		candidates = append(candidates, Candidate{
			Dir:    filepath.Join(installPath, "bin", "x64"),
			Source: SourceRegistry,
		})
	}

	// 4. Conventional installation roots.
	for _, root := range l.conventionalRoots(version) {
		candidates = append(candidates, Candidate{
			Dir:    filepath.Join(root, "bin", "x64"),
			Source: SourceConventional,
		})
	}

	// 5. Operator-configured directories, probed as-is.
	for _, dir := range l.ExtraDirs {
		candidates = append(candidates, Candidate{Dir: dir, Source: SourceExtraDir})
	}

	// 6. The same program-files patterns on every local drive.
	for _, drive := range l.probe().Drives() {
		for _, pattern := range drivePatterns {
			candidates = append(candidates, Candidate{
				Dir:    filepath.Join(drive, pattern, "R-"+version, "bin", "x64"),
				Source: SourceDriveScan,
			})
		}
	}

	return dedupe(candidates)
}

// drivePatterns are the program-files style layouts re-rooted on each drive
// during the drive scan.
var drivePatterns = []string{
	filepath.Join("Program Files", "R"),
	filepath.Join("Program Files (x86)", "R"),
}

// conventionalRoots returns the fixed per-machine and per-user install roots
// for version, skipping roots whose base environment variable is unset.
func (l *Locator) conventionalRoots(version string) []string {
	dirName := "R-" + version

	var roots []string
	if pf := l.probe().Getenv("ProgramFiles"); pf != "" {
		roots = append(roots, filepath.Join(pf, "R", dirName))
	}
	if pf86 := l.probe().Getenv("ProgramFiles(x86)"); pf86 != "" {
		roots = append(roots, filepath.Join(pf86, "R", dirName))
	}
	if localAppData := l.probe().Getenv("LOCALAPPDATA"); localAppData != "" {
		roots = append(roots, filepath.Join(localAppData, "Programs", "R", dirName))
	}
	return roots
}

// hasBinX64Suffix reports whether dir ends in the conventional 64-bit binary
// subdirectory, accepting either path separator.
func hasBinX64Suffix(dir string) bool {
	normalized := strings.ToLower(filepath.ToSlash(filepath.Clean(dir)))
	return strings.HasSuffix(normalized, "bin/x64")
}

// dedupe removes duplicate directories preserving first-seen order, so a
// path reachable through several strategies keeps its highest-precedence
// source.
func dedupe(candidates []Candidate) []Candidate {
	seen := make(map[string]bool, len(candidates))
	result := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		key := filepath.Clean(c.Dir)
		if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, c)
	}
	return result
}
