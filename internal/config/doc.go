// SPDX-License-Identifier: MPL-2.0

// Package config loads rrun's optional user configuration.
//
// The config file is YAML at <platform config dir>/rrun/config.yaml. Every
// field has a default; a missing file is not an error, and a malformed file
// degrades to defaults with a warning rather than aborting the run.
package config
