package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func newTestRoot(buf *bytes.Buffer) *cobra.Command {
	root := &cobra.Command{
		Use:  "doctool",
		RunE: func(*cobra.Command, []string) error { return nil },
	}
	return NewRoot(root, buf)
}

func TestCompletionRejectsUnknownShell(t *testing.T) {
	var buf bytes.Buffer
	root := newTestRoot(&buf)
	root.SetArgs([]string{"completion", "tcsh"})
	if err := root.Execute(); err == nil {
		t.Fatalf("expected error for unsupported shell")
	}
}

func TestCompletionFish(t *testing.T) {
	var buf bytes.Buffer
	root := newTestRoot(&buf)
	root.SetArgs([]string{"completion", "fish"})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(buf.String(), "doctool") {
		t.Fatalf("completion script does not mention the command:\n%s", buf.String())
	}
}

func TestGenDocs(t *testing.T) {
	var buf bytes.Buffer
	root := newTestRoot(&buf)
	target := filepath.Join(t.TempDir(), "cli")
	root.SetArgs([]string{"gen-docs", target})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	for _, name := range []string{"doctool.md", "doctool_completion.md", "doctool_gen-docs.md"} {
		if _, err := os.Stat(filepath.Join(target, name)); err != nil {
			t.Fatalf("expected %s: %v", name, err)
		}
	}
}

func TestVersionFlag(t *testing.T) {
	var buf bytes.Buffer
	root := newTestRoot(&buf)
	root.SetArgs([]string{"--version"})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(buf.String(), Version) {
		t.Fatalf("version output %q lacks %q", buf.String(), Version)
	}
}

func TestLogFlags(t *testing.T) {
	var flags LogFlags
	root := &cobra.Command{Use: "doctool", RunE: func(*cobra.Command, []string) error { return nil }}
	flags.Register(root)
	root.SetArgs([]string{"--log-level", "debug", "--log-format", "json"})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if flags.Level != "debug" || flags.Format != "json" {
		t.Fatalf("flags not bound: %#v", flags)
	}
	if _, err := flags.Provider(); err != nil {
		t.Fatalf("Provider: %v", err)
	}
}

func TestLogFlagsWriteToOutput(t *testing.T) {
	var stdout, logs bytes.Buffer
	flags := LogFlags{Output: &logs}
	root := newTestRoot(&stdout)
	flags.Register(root)
	root.RunE = func(*cobra.Command, []string) error {
		provider, err := flags.Provider()
		if err != nil {
			return err
		}
		provider.GetLogger("doctool").Warn("careful")
		return nil
	}
	root.SetArgs(nil)
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if stdout.Len() != 0 {
		t.Fatalf("log record leaked to stdout: %q", stdout.String())
	}
	if !strings.Contains(logs.String(), "careful") {
		t.Fatalf("expected log record in output, got %q", logs.String())
	}
}
