// SPDX-License-Identifier: MPL-2.0

//go:build !windows

package discovery

// registryInstallPaths reports no entries: only Windows has the R-core
// registry hierarchy.
func registryInstallPaths(string) []string {
	return nil
}

// localDrives reports no drives: drive-letter enumeration is a Windows
// concept.
func localDrives() []string {
	return nil
}
