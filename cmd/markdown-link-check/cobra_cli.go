package main

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"rampack-doctools/internal/cli"
	"rampack-doctools/internal/linkcheck"
)

const rootLongDesc = `
markdown-link-check verifies links between the Markdown files of a directory.

Links of the form [text](file.md#anchor), [text](#anchor) and [text](file.md)
must resolve to a Markdown file of the directory and, when an anchor is given,
to one of its headings or <a id="..."> tags.

A directory called "completion" or "gen-docs" must be given after "--" or as
"./completion", otherwise the subcommand of that name runs.
`

const usageText = "Usage: markdown-link-check [directory]"

type usageError struct{}

func (usageError) Error() string { return usageText }

func newRootCmd(stdout io.Writer) *cobra.Command {
	var (
		logFlags    cli.LogFlags
		anchorStyle string
	)
	cmd := &cobra.Command{
		Use:   "markdown-link-check [flags] DIRECTORY",
		Short: "Check internal links of a Markdown directory",
		Long:  strings.TrimSpace(rootLongDesc),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return usageError{}
			}
			return nil
		},
	}
	cli.NewRoot(cmd, stdout)
	logFlags.Register(cmd)
	cmd.Flags().StringVar(&anchorStyle, "anchor-style", string(linkcheck.AnchorStyleGitHub), "heading id rules: github or goldmark")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		style, err := linkcheck.ParseAnchorStyle(anchorStyle)
		if err != nil {
			return err
		}
		logs, err := logFlags.Provider()
		if err != nil {
			return err
		}
		checker := linkcheck.Checker{Style: style, Logger: logs.GetLogger("linkcheck")}
		return checker.Check(args[0], cmd.OutOrStdout())
	}
	return cmd
}

func run(argv []string, stdout io.Writer) error {
	cmd := newRootCmd(stdout)
	cmd.SetArgs(argv)
	return cmd.Execute()
}
