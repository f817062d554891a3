package helpdoc

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"unicode/utf8"
)

// HelpSource yields the --help output of one mode, split into lines.
type HelpSource interface {
	Help(ctx context.Context, mode string) ([]string, error)
}

// ExecSource runs "<Path> <mode> --help" and captures standard output.
type ExecSource struct {
	Path string
}

// Help implements HelpSource. It blocks until the process exits.
func (s ExecSource) Help(ctx context.Context, mode string) ([]string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	cmd := exec.CommandContext(ctx, s.Path, mode, "--help")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return nil, invocationError(err, s.Path, mode, stderr.Bytes())
	}
	if !utf8.Valid(out) {
		return nil, invocationError(errors.New("output is not valid UTF-8"), s.Path, mode, nil)
	}
	return splitLines(string(out)), nil
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
