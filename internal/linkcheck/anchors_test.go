package linkcheck

import (
	"reflect"
	"testing"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"My Section!":           "my-section",
		"Operation modes":       "operation-modes",
		"`casino` mode":         "casino-mode",
		"Shape  preview\tmode":  "shape-preview-mode",
		"snake_case & kebab-ok": "snake_case--kebab-ok",
	}
	for heading, want := range cases {
		if got := Slugify(heading); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", heading, got, want)
		}
	}
}

func TestHeadingAnchorsDisambiguatesDuplicates(t *testing.T) {
	got := HeadingAnchors("# Foo\ntext\n# Foo\n## Bar\n### Foo\n")
	want := []string{"foo", "foo-1", "bar", "foo-2"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("HeadingAnchors = %q, want %q", got, want)
	}
}

func TestAnchorsSkipCodeBlocks(t *testing.T) {
	doc := "# Intro\n\n```python\n# not a heading\nprint()\n```\n\n## Usage\n"
	got, err := Anchors(doc, AnchorStyleGitHub)
	if err != nil {
		t.Fatalf("Anchors: %v", err)
	}
	want := []string{"intro", "usage"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Anchors = %q, want %q", got, want)
	}
}

func TestAnchorsIncludeAnchorTagsAfterHeadings(t *testing.T) {
	doc := "<a id=\"Top_Anchor\"></a>\n# Title\n<a id='second'>\n< a  id=\"third\" >\n"
	got, err := Anchors(doc, AnchorStyleGitHub)
	if err != nil {
		t.Fatalf("Anchors: %v", err)
	}
	want := []string{"title", "Top_Anchor", "second", "third"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Anchors = %q, want %q", got, want)
	}
}

func TestAnchorsStripFrontMatter(t *testing.T) {
	doc := "---\ntitle: Modes\n# a yaml comment\n---\n# Modes\n"
	got, err := Anchors(doc, AnchorStyleGitHub)
	if err != nil {
		t.Fatalf("Anchors: %v", err)
	}
	want := []string{"modes"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Anchors = %q, want %q", got, want)
	}
}

func TestAnchorsGoldmarkStyle(t *testing.T) {
	doc := "# Getting Started\n\n```sh\n# comment\n```\n\n## Intro\n\n## Intro\n"
	got, err := Anchors(doc, AnchorStyleGoldmark)
	if err != nil {
		t.Fatalf("Anchors: %v", err)
	}
	want := []string{"getting-started", "intro", "intro-1"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Anchors = %q, want %q", got, want)
	}
}

func TestParseAnchorStyle(t *testing.T) {
	for name, want := range map[string]AnchorStyle{
		"":         AnchorStyleGitHub,
		"GitHub":   AnchorStyleGitHub,
		"goldmark": AnchorStyleGoldmark,
	} {
		got, err := ParseAnchorStyle(name)
		if err != nil || got != want {
			t.Errorf("ParseAnchorStyle(%q) = %q, %v", name, got, err)
		}
	}
	if _, err := ParseAnchorStyle("kramdown"); err == nil {
		t.Fatalf("expected error for unknown style")
	}
}
