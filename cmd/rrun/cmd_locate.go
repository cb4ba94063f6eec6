// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"rrun-cli/internal/discovery"
	"rrun-cli/internal/issue"
)

var locateCmd = &cobra.Command{
	Use:   "locate <version>",
	Short: "Print the path of a matching 64-bit Rscript executable",
	Long: `Locate searches PATH, R_HOME, the Windows registry, and the
conventional installation directories on every local drive for an Rscript
executable whose self-reported version contains the given version string.
The first match in precedence order is printed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := newLocator().Locate(cmd.Context(), args[0])
		if err != nil {
			var notFound *discovery.NotFoundError
			if errors.As(err, &notFound) {
				renderIssue(issue.InterpreterNotFoundId)
			}
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

// newLocator builds the production locator, folding in configured extra
// search directories.
func newLocator() *discovery.Locator {
	l := discovery.NewLocator()
	l.ExtraDirs = cfg.ExtraSearchDirs
	return l
}
