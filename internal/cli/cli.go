// Package cli holds the Cobra plumbing shared by markdown-help and
// markdown-link-check.
//
// Both roots get --version, --log-level and --log-format plus two
// subcommands named after the tool: "completion" prints a shell completion
// script and "gen-docs" writes the tool's reference pages. The roots only
// differ in their own flags and RunE. Log records go to stderr because
// stdout carries the patched document or the link report.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	cobradoc "github.com/spf13/cobra/doc"

	"rampack-doctools/internal/logging"
)

// Version is stamped at build time with -ldflags "-X rampack-doctools/internal/cli.Version=...".
var Version = "dev"

var shells = []string{"bash", "zsh", "fish", "powershell"}

// LogFlags holds the logging flags every tool exposes.
type LogFlags struct {
	Level  string
	Format string

	// Output receives log records. Nil means stderr.
	Output io.Writer
}

// Register adds --log-level and --log-format to cmd.
func (f *LogFlags) Register(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&f.Level, "log-level", logging.DefaultLevel, "log level on stderr (trace, debug, info, warn, error)")
	flags.StringVar(&f.Format, "log-format", "console", "log format (console, json)")
}

// Provider builds the logger provider the flags describe.
func (f *LogFlags) Provider() (*logging.Provider, error) {
	out := f.Output
	if out == nil {
		out = os.Stderr
	}
	return logging.New(logging.Config{Level: f.Level, Format: f.Format, Writer: out})
}

// NewRoot applies the settings both tools share to a root command.
func NewRoot(cmd *cobra.Command, stdout io.Writer) *cobra.Command {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.DisableAutoGenTag = true
	cmd.Version = Version
	cmd.SetOut(stdout)
	cmd.SetErr(io.Discard)
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.AddCommand(NewCompletionCmd(cmd), NewDocsCmd(cmd))
	return cmd
}

// NewCompletionCmd prints the completion script of root for one shell.
func NewCompletionCmd(root *cobra.Command) *cobra.Command {
	name := root.Name()
	cmd := &cobra.Command{
		Use:   "completion [" + strings.Join(shells, "|") + "]",
		Short: "Generate shell completion scripts",
		Long: fmt.Sprintf(`Print the %[1]s completion script for a shell.

  source <(%[1]s completion bash)
  %[1]s completion fish | source`, name),
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs:             shells,
		DisableFlagsInUseLine: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return root.GenBashCompletion(out)
		case "zsh":
			return root.GenZshCompletion(out)
		case "fish":
			return root.GenFishCompletion(out, true)
		case "powershell":
			return root.GenPowerShellCompletion(out)
		}
		return fmt.Errorf("unsupported shell %q", args[0])
	}
	return cmd
}

// NewDocsCmd writes <tool>.md and one page per subcommand into a directory,
// creating it when needed.
func NewDocsCmd(root *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:   "gen-docs DIRECTORY",
		Short: "Generate Markdown reference docs for the CLI",
		Long:  fmt.Sprintf("Write the %[1]s reference pages, e.g. %[1]s gen-docs docs/cli.", root.Name()),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(args[0], 0o755); err != nil {
				return err
			}
			return cobradoc.GenMarkdownTree(root, args[0])
		},
	}
}
