// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"os"
	"path/filepath"
)

type (
	// EnvironmentProbe abstracts ambient environment reads so tests can
	// substitute a fake instead of touching real OS state.
	EnvironmentProbe interface {
		// PathEntries returns the directories on the executable search path.
		PathEntries() []string

		// Getenv returns the named environment variable, empty when unset.
		Getenv(name string) string

		// RegistryInstallPaths returns the install roots recorded in the
		// registry for the exact version, user hive before machine hive.
		// Missing keys are not errors; an empty slice means no entries.
		RegistryInstallPaths(version string) []string

		// Drives returns the roots of all local drives (e.g. "C:\"). Empty
		// on platforms without drive letters.
		Drives() []string
	}

	// SystemProbe is the production EnvironmentProbe backed by the real
	// process environment and, on Windows, the real registry.
	SystemProbe struct{}
)

// NewSystemProbe creates the production probe.
func NewSystemProbe() *SystemProbe {
	return &SystemProbe{}
}

// PathEntries implements EnvironmentProbe.
func (p *SystemProbe) PathEntries() []string {
	return filepath.SplitList(os.Getenv("PATH"))
}

// Getenv implements EnvironmentProbe.
func (p *SystemProbe) Getenv(name string) string {
	return os.Getenv(name)
}

// RegistryInstallPaths implements EnvironmentProbe. The lookup itself is in
// the per-OS registry files.
func (p *SystemProbe) RegistryInstallPaths(version string) []string {
	return registryInstallPaths(version)
}

// Drives implements EnvironmentProbe.
func (p *SystemProbe) Drives() []string {
	return localDrives()
}
