// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"rrun-cli/internal/discovery"
)

var candidatesCmd = &cobra.Command{
	Use:   "candidates <version>",
	Short: "List the candidate directories probed for a version",
	Long: `Candidates prints every directory the locator would probe for the
given version, in precedence order, with its source category. Directories
that currently contain an Rscript executable are marked. No version-check
subprocesses are spawned.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		candidates := newLocator().Candidates(args[0])
		if len(candidates) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), SubtitleStyle.Render("no candidate directories for version "+args[0]))
			return nil
		}

		for i, candidate := range candidates {
			marker := " "
			exe := filepath.Join(candidate.Dir, discovery.RscriptExecutable())
			if _, err := os.Stat(exe); err == nil {
				marker = SuccessStyle.Render("*")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%2d %s %s %s\n",
				i+1, marker, sourceCell(SourceStyle, candidate.Source), candidate.Dir)
		}
		return nil
	},
}

// sourceCell renders the fixed-width source category column. The label is
// padded before styling so the ANSI escape sequences don't count toward the
// column width.
func sourceCell(style lipgloss.Style, source discovery.Source) string {
	return style.Render(fmt.Sprintf("%-20s", source.String()))
}
