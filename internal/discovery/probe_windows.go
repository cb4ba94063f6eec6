// SPDX-License-Identifier: MPL-2.0

//go:build windows

package discovery

import (
	"os"

	"golang.org/x/sys/windows/registry"
)

// registryInstallPaths reads the InstallPath value from the R-core vendor
// keys for the exact version. R for Windows writes per-user (HKCU) and
// per-machine (HKLM) entries under both the R and R64 subtrees; any subset
// may be present, and missing keys are silently skipped.
func registryInstallPaths(version string) []string {
	hives := []registry.Key{registry.CURRENT_USER, registry.LOCAL_MACHINE}
	subtrees := []string{`SOFTWARE\R-core\R\`, `SOFTWARE\R-core\R64\`}

	var paths []string
	for _, hive := range hives {
		for _, subtree := range subtrees {
			key, err := registry.OpenKey(hive, subtree+version, registry.QUERY_VALUE|registry.WOW64_64KEY)
			if err != nil {
				continue
			}
			installPath, _, err := key.GetStringValue("InstallPath")
			_ = key.Close()
			if err != nil || installPath == "" {
				continue
			}
			paths = append(paths, installPath)
		}
	}
	return paths
}

// localDrives enumerates drive letters that currently resolve to a root
// directory.
func localDrives() []string {
	var drives []string
	for letter := 'A'; letter <= 'Z'; letter++ {
		root := string(letter) + `:\`
		if _, err := os.Stat(root); err == nil {
			drives = append(drives, root)
		}
	}
	return drives
}
