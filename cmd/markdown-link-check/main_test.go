package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"rampack-doctools/internal/linkcheck"
)

func writeDocs(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func TestReportsDeadLink(t *testing.T) {
	dir := writeDocs(t, map[string]string{
		"a.md": "# A\n[link](b.md#intro)\n",
		"b.md": "# Overview\n",
	})
	var buf bytes.Buffer
	err := run([]string{dir}, &buf)
	if !linkcheck.IsBrokenLinks(err) {
		t.Fatalf("expected broken links error, got %v", err)
	}
	assertContains(t, buf.String(), dir+"/a.md: some links are dead:\n  line 1: b.md#intro\n")
	assertContains(t, buf.String(), dir+"/b.md: OK\n")
}

func TestSelfLinkOK(t *testing.T) {
	dir := writeDocs(t, map[string]string{
		"a.md": "# Intro\n\nJump to [intro](#intro).\n",
	})
	var buf bytes.Buffer
	if err := run([]string{dir}, &buf); err != nil {
		t.Fatalf("run: %v", err)
	}
	if buf.String() != dir+"/a.md: OK\n" {
		t.Fatalf("unexpected report %q", buf.String())
	}
}

func TestDebugLoggingKeepsReportClean(t *testing.T) {
	dir := writeDocs(t, map[string]string{"a.md": "# Intro\n"})
	var buf bytes.Buffer
	if err := run([]string{"--log-level", "debug", dir}, &buf); err != nil {
		t.Fatalf("run: %v", err)
	}
	if buf.String() != dir+"/a.md: OK\n" {
		t.Fatalf("unexpected report %q", buf.String())
	}
}

func TestSubcommandNamedDirectory(t *testing.T) {
	parent := t.TempDir()
	dir := filepath.Join(parent, "completion")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "a.md"), []byte("# A\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Chdir(parent)
	for _, args := range [][]string{{"--", "completion"}, {"./completion"}} {
		var buf bytes.Buffer
		if err := run(args, &buf); err != nil {
			t.Fatalf("run %v: %v", args, err)
		}
		assertContains(t, buf.String(), "completion/a.md: OK\n")
	}
}

func TestNoMarkdownFiles(t *testing.T) {
	dir := writeDocs(t, map[string]string{"notes.txt": "# nope\n"})
	var buf bytes.Buffer
	err := run([]string{dir}, &buf)
	if !linkcheck.IsNoMarkdownFiles(err) {
		t.Fatalf("expected no markdown files error, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no report, got %q", buf.String())
	}
	var stdout, stderr bytes.Buffer
	reportFailure(err, &stdout, &stderr)
	assertContains(t, stdout.String(), "No Markdown files found in '"+dir+"/'")
}

func TestUsage(t *testing.T) {
	for _, args := range [][]string{nil, {"a", "b"}} {
		err := run(args, io.Discard)
		if err == nil {
			t.Fatalf("expected usage error for %v", args)
		}
		var stdout, stderr bytes.Buffer
		reportFailure(err, &stdout, &stderr)
		if stdout.String() != "Usage: markdown-link-check [directory]\n" {
			t.Fatalf("unexpected usage output %q", stdout.String())
		}
	}
}

func TestBrokenLinksNotReprinted(t *testing.T) {
	dir := writeDocs(t, map[string]string{"a.md": "[x](missing.md)\n"})
	err := run([]string{dir}, io.Discard)
	var stdout, stderr bytes.Buffer
	reportFailure(err, &stdout, &stderr)
	if stdout.Len() != 0 || stderr.Len() != 0 {
		t.Fatalf("broken links should only be reported once, got %q / %q", stdout.String(), stderr.String())
	}
}

func TestGoldmarkAnchorStyle(t *testing.T) {
	dir := writeDocs(t, map[string]string{
		"a.md": "# Intro\n\n## Intro\n\n[second](#intro-1)\n",
	})
	if err := run([]string{"--anchor-style", "goldmark", dir}, io.Discard); err != nil {
		t.Fatalf("run: %v", err)
	}
	if err := run([]string{"--anchor-style", "asciidoc", dir}, io.Discard); err == nil {
		t.Fatalf("expected error for unknown anchor style")
	}
}

func TestCompletionCommand(t *testing.T) {
	var buf bytes.Buffer
	if err := run([]string{"completion", "zsh"}, &buf); err != nil {
		t.Fatalf("run: %v", err)
	}
	assertContains(t, buf.String(), "markdown-link-check")
}

func assertContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q\n\n%s", needle, haystack)
	}
}
