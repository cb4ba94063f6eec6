// SPDX-License-Identifier: MPL-2.0

// Package renvlock reads the R version pinned by a project's renv.lock
// manifest. Only the R.Version field is consumed; the rest of the lockfile
// (package records, repositories) is ignored and never written back.
package renvlock

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// LockfileName is the conventional manifest file name renv writes at the
// project root.
const LockfileName = "renv.lock"

// versionKey is the nested field holding the pinned interpreter version.
const versionKey = "R.Version"

// ManifestError is returned when the lockfile is absent, unreadable, or
// lacks the R.Version field.
type ManifestError struct {
	// Path is the expected lockfile location.
	Path string
	// Cause is the underlying error, nil when the file simply does not exist.
	Cause error
}

// Error implements the error interface.
func (e *ManifestError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("no %s manifest found at %s", LockfileName, e.Path)
	}
	return fmt.Sprintf("cannot read R version from %s: %s", e.Path, e.Cause.Error())
}

// Unwrap returns the underlying cause for errors.Is/As chains.
func (e *ManifestError) Unwrap() error { return e.Cause }

// Resolve reads the pinned R version from the renv.lock manifest in dir.
// An empty dir means the current working directory. Failures are reported
// as *ManifestError naming the expected path.
func Resolve(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}

	path, err := filepath.Abs(filepath.Join(dir, LockfileName))
	if err != nil {
		return "", &ManifestError{Path: filepath.Join(dir, LockfileName), Cause: err}
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", &ManifestError{Path: path}
		}
		return "", &ManifestError{Path: path, Cause: err}
	}

	// renv.lock is JSON regardless of its extension-less name.
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return "", &ManifestError{Path: path, Cause: err}
	}

	version := v.GetString(versionKey)
	if version == "" {
		return "", &ManifestError{
			Path:  path,
			Cause: fmt.Errorf("manifest has no %s field", versionKey),
		}
	}

	return version, nil
}
