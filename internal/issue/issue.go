// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Id identifies a well-known failure class in the catalog.
type Id int

const (
	InterpreterNotFoundId Id = iota + 1
	ScriptExecutionFailedId
	LockfileNotFoundId
	LockfileParseErrorId
	ConfigLoadFailedId
)

// MarkdownMsg is markdown text rendered for terminal display.
type MarkdownMsg string

// HttpLink is a documentation URL attached to an issue.
type HttpLink string

// Issue pairs a failure class with rendered help text.
type Issue struct {
	id       Id
	mdMsg    MarkdownMsg
	docLinks []HttpLink
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

// Render renders the issue's markdown help with the given glamour style.
func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 {
		extraMd += "\n\n## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return glamour.Render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	interpreterNotFoundIssue = &Issue{
		id: InterpreterNotFoundId,
		mdMsg: `
# No matching R installation found!

We searched PATH, R_HOME, the Windows registry, and the conventional
installation directories on every local drive, but no 64-bit Rscript
reported the requested version.

## Things you can try:
- List the candidate directories that were probed:
~~~
$ rrun candidates <version>
~~~

- Check which R versions are installed:
~~~
$ dir "C:\Program Files\R"
~~~

- Install the requested version from CRAN, or point R_HOME at an
  existing installation:
~~~
$ set R_HOME=C:\Program Files\R\R-4.5.0
~~~`,
	}

	scriptExecutionFailedIssue = &Issue{
		id: ScriptExecutionFailedId,
		mdMsg: `
# R script execution failed!

The interpreter was found, but the script exited with a non-zero status.

## Things you can try:
- Read the R error output above for the actual failure
- Run the script interactively in the same R version to reproduce it
- Check that packages used by the script are installed for that version:
~~~
$ rrun run -e 'installed.packages()[, "Package"]'
~~~`,
	}

	lockfileNotFoundIssue = &Issue{
		id: LockfileNotFoundId,
		mdMsg: `
# No renv.lock found!

Version resolution was requested but the working directory has no
renv.lock manifest.

## Things you can try:
- Pass the version explicitly:
~~~
$ rrun run --r-version 4.5.0 script.R
~~~

- Create a lockfile from an renv-managed R session:
~~~
> renv::snapshot()
~~~

- Run from the project directory that contains renv.lock`,
	}

	lockfileParseErrorIssue = &Issue{
		id: LockfileParseErrorId,
		mdMsg: `
# Failed to read the R version from renv.lock!

The lockfile exists but could not be parsed, or it lacks the R.Version
field.

## Expected shape:
~~~json
{
  "R": {
    "Version": "4.5.0"
  }
}
~~~

## Things you can try:
- Validate the JSON syntax of renv.lock
- Regenerate the lockfile with renv::snapshot()`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Your config file exists but could not be read or parsed. rrun continues
with built-in defaults.

## Things you can try:
- Check the YAML syntax of the config file
- Remove the file to fall back to defaults
- Pass an alternative file with --config`,
	}

	issues = map[Id]*Issue{
		interpreterNotFoundIssue.Id():   interpreterNotFoundIssue,
		scriptExecutionFailedIssue.Id(): scriptExecutionFailedIssue,
		lockfileNotFoundIssue.Id():      lockfileNotFoundIssue,
		lockfileParseErrorIssue.Id():    lockfileParseErrorIssue,
		configLoadFailedIssue.Id():      configLoadFailedIssue,
	}
)

// Values returns all catalog entries in unspecified order.
func Values() []*Issue {
	return maps.Values(issues)
}

// Get returns the catalog entry for id, or nil if unknown.
func Get(id Id) *Issue {
	return issues[id]
}
