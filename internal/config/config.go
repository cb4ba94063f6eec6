// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"

	"rrun-cli/internal/issue"
)

const (
	// AppName is the application name, used for the config directory.
	AppName = "rrun"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "yaml"
)

type (
	// Config holds all user-tunable settings.
	Config struct {
		// DefaultRVersion is used when no --r-version flag is given and the
		// working directory has no renv.lock.
		DefaultRVersion string `mapstructure:"default_r_version"`
		// ExtraSearchDirs are additional candidate directories probed after
		// the conventional install roots.
		ExtraSearchDirs []string `mapstructure:"extra_search_dirs"`
		// UI holds display settings.
		UI UIConfig `mapstructure:"ui"`
	}

	// UIConfig holds display settings.
	UIConfig struct {
		// Verbose enables debug logging without the --verbose flag.
		Verbose bool `mapstructure:"verbose"`
	}
)

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{}
}

// ConfigDir returns the rrun configuration directory using platform-specific
// conventions: Windows uses %APPDATA%, macOS uses ~/Library/Application
// Support, and Linux/others use $XDG_CONFIG_HOME (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	// Allow tests to override the config directory
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// Load reads the configuration, honoring the --config override when set.
// A missing config file yields defaults with a nil error; a present but
// unreadable file yields defaults with an ActionableError so the caller can
// warn without aborting.
func Load() (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("default_r_version", defaults.DefaultRVersion)
	v.SetDefault("extra_search_dirs", defaults.ExtraSearchDirs)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)

	path, explicit, err := resolveConfigPath()
	if err != nil {
		return defaults, err
	}

	if _, statErr := os.Stat(path); statErr != nil {
		if explicit {
			return defaults, issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(path).
				WithSuggestion("Verify the --config path is correct").
				Wrap(statErr).
				BuildError()
		}
		// No config file is the common case.
		return defaults, nil
	}

	v.SetConfigFile(path)
	v.SetConfigType(ConfigFileExt)
	if err := v.ReadInConfig(); err != nil {
		return defaults, issue.NewErrorContext().
			WithOperation("load configuration").
			WithResource(path).
			WithSuggestion("Check the YAML syntax of the config file").
			WithSuggestion("Remove the file to fall back to defaults").
			Wrap(err).
			BuildError()
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return DefaultConfig(), issue.NewErrorContext().
			WithOperation("load configuration").
			WithResource(path).
			Wrap(err).
			BuildError()
	}

	return cfg, nil
}

// resolveConfigPath returns the config file path and whether it was set
// explicitly via SetConfigFilePathOverride.
func resolveConfigPath() (string, bool, error) {
	if configFilePathOverride != "" {
		return configFilePathOverride, true, nil
	}

	dir, err := ConfigDir()
	if err != nil {
		return "", false, issue.WrapWithOperation(err, "resolve configuration directory")
	}
	return filepath.Join(dir, ConfigFileName+"."+ConfigFileExt), false, nil
}
