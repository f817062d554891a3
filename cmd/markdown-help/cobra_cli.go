package main

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"rampack-doctools/internal/cli"
	"rampack-doctools/internal/config"
)

const rootLongDesc = `
markdown-help regenerates the option lists of the rampack operation modes
documentation from "rampack <mode> --help".

Each mode's block lives between "[//]: # (start <mode>)" and
"[//]: # (end <mode>)" markers. All markers are validated first and the
document is written once, so a failure never leaves a half-patched file.
`

func newRootCmd(stdout io.Writer) *cobra.Command {
	app := &cliApp{stdout: stdout}
	var logFlags cli.LogFlags
	cmd := &cobra.Command{
		Use:   "markdown-help [flags]",
		Short: "Regenerate mode option lists in the rampack docs",
		Long:  strings.TrimSpace(rootLongDesc),
		Args:  cobra.NoArgs,
	}
	cli.NewRoot(cmd, stdout)
	logFlags.Register(cmd)

	flags := cmd.Flags()
	flags.StringVar(&app.opts.configPath, "config", "", "YAML or TOML file with exec, doc and modes")
	flags.StringVar(&app.opts.execPath, "exec", config.DefaultExecPath, "rampack executable (env "+config.ExecPathEnv+")")
	flags.StringVar(&app.opts.docPath, "doc", config.DefaultDocPath, "Markdown document to patch")
	flags.StringSliceVar(&app.opts.modes, "mode", config.DefaultModes, "modes to document, in order")
	flags.BoolVar(&app.opts.check, "check", false, "fail if the document is out of date instead of writing it")
	flags.BoolVar(&app.opts.toStdout, "stdout", false, "print the regenerated document instead of writing it")
	cmd.MarkFlagsMutuallyExclusive("check", "stdout")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		logs, err := logFlags.Provider()
		if err != nil {
			return err
		}
		app.logs = logs
		cfg, err := app.resolveConfig(cmd.Flags().Changed)
		if err != nil {
			return err
		}
		return app.execute(cmd.Context(), cfg)
	}
	return cmd
}
