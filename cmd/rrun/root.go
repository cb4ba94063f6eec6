// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for rrun.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"rrun-cli/internal/config"
	"rrun-cli/internal/issue"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables debug output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// cfg is the loaded configuration, populated by initRootConfig.
	cfg = config.DefaultConfig()

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "rrun",
		Short: "Locate and run versioned R interpreters",
		Long: TitleStyle.Render("rrun") + SubtitleStyle.Render(" - Locate and run versioned R interpreters") + `

rrun finds a specific installed version of R by probing PATH, R_HOME,
the Windows registry, and the conventional installation directories on
every local drive, then runs R code through the matching 64-bit Rscript
with live output.

The version can be given explicitly or resolved from the renv.lock
manifest of the current project.

` + SubtitleStyle.Render("Examples:") + `
  rrun locate 4.5.0              Print the path of the R 4.5.0 interpreter
  rrun run script.R              Run a script, version from ./renv.lock
  rrun run -r 4.4.2 -e 'print(1+1)'
                                 Run inline code under R 4.4.2
  rrun candidates 4.5.0          Show the directories probed, in order`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/rrun/config.yaml)")

	rootCmd.AddCommand(locateCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(candidatesCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}

// initRootConfig reads the config file and applies it to ambient settings.
func initRootConfig() {
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	loaded, err := config.Load()
	if err != nil {
		// Config problems degrade to defaults; surface them but keep going.
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
	}
	if loaded != nil {
		cfg = loaded
		if !verbose {
			verbose = cfg.UI.Verbose
		}
	}

	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// renderIssue prints the catalog help for a failure class in verbose mode.
func renderIssue(id issue.Id) {
	if !verbose {
		return
	}
	entry := issue.Get(id)
	if entry == nil {
		return
	}
	if rendered, err := entry.Render("dark"); err == nil {
		fmt.Fprint(os.Stderr, rendered)
	}
}
