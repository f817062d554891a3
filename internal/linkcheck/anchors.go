package linkcheck

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// AnchorStyle selects how heading anchors are derived.
type AnchorStyle string

const (
	// AnchorStyleGitHub slugifies headings the way GitHub renders heading ids.
	AnchorStyleGitHub AnchorStyle = "github"
	// AnchorStyleGoldmark uses the heading ids goldmark generates.
	AnchorStyleGoldmark AnchorStyle = "goldmark"
)

// ParseAnchorStyle validates a user supplied style name.
func ParseAnchorStyle(name string) (AnchorStyle, error) {
	switch style := AnchorStyle(strings.ToLower(strings.TrimSpace(name))); style {
	case "", AnchorStyleGitHub:
		return AnchorStyleGitHub, nil
	case AnchorStyleGoldmark:
		return AnchorStyleGoldmark, nil
	default:
		return "", fmt.Errorf("unknown anchor style %q (want %s or %s)", name, AnchorStyleGitHub, AnchorStyleGoldmark)
	}
}

var (
	codeBlockPattern  = regexp.MustCompile("(?s)[\\t ]*```\\w*[\\t ]*\\n(.*?)\\n\\s*```")
	headingPattern    = regexp.MustCompile(`(?m)^\s*#+\s*(.*)\s*$`)
	whitespacePattern = regexp.MustCompile(`\s+`)
	slugStripPattern  = regexp.MustCompile(`[^a-zA-Z0-9_\-]+`)
	anchorTagPattern  = regexp.MustCompile(`<\s*a\s+id=["']([^"']*)["']\s*>`)
)

// Anchors returns every anchor defined in document: heading ids first, in
// document order, followed by explicit <a id="..."> ids taken verbatim.
func Anchors(document string, style AnchorStyle) ([]string, error) {
	document = stripFrontMatter(document)
	var headings []string
	if style == AnchorStyleGoldmark {
		ids, err := goldmarkHeadingIDs(document)
		if err != nil {
			return nil, fmt.Errorf("goldmark heading ids: %w", err)
		}
		headings = ids
		document = StripCodeBlocks(document)
	} else {
		document = StripCodeBlocks(document)
		headings = HeadingAnchors(document)
	}
	return append(headings, AnchorTags(document)...), nil
}

// StripCodeBlocks removes fenced code blocks, whose "# ..." comment lines
// would otherwise read as headings.
func StripCodeBlocks(document string) string {
	return codeBlockPattern.ReplaceAllString(document, "")
}

// HeadingAnchors slugifies every heading and disambiguates repeated names.
func HeadingAnchors(document string) []string {
	matches := headingPattern.FindAllStringSubmatch(document, -1)
	slugs := make([]string, 0, len(matches))
	for _, m := range matches {
		slugs = append(slugs, Slugify(m[1]))
	}
	return disambiguate(slugs)
}

// Slugify lower-cases a heading, turns whitespace runs into hyphens and drops
// everything outside [a-zA-Z0-9_-].
func Slugify(heading string) string {
	slug := strings.ToLower(heading)
	slug = whitespacePattern.ReplaceAllString(slug, "-")
	return slugStripPattern.ReplaceAllString(slug, "")
}

// disambiguate suffixes the n-th repeat of a name with "-n".
func disambiguate(names []string) []string {
	counts := make(map[string]int, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if n := counts[name]; n == 0 {
			out = append(out, name)
		} else {
			out = append(out, fmt.Sprintf("%s-%d", name, n))
		}
		counts[name]++
	}
	return out
}

// AnchorTags returns the ids of explicit anchor tags.
func AnchorTags(document string) []string {
	matches := anchorTagPattern.FindAllStringSubmatch(document, -1)
	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m[1])
	}
	return ids
}

func goldmarkHeadingIDs(document string) ([]string, error) {
	source := []byte(document)
	md := goldmark.New(goldmark.WithParserOptions(parser.WithAutoHeadingID()))
	root := md.Parser().Parse(text.NewReader(source))

	var ids []string
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || n.Kind() != ast.KindHeading {
			return ast.WalkContinue, nil
		}
		if value, ok := n.AttributeString("id"); ok {
			switch id := value.(type) {
			case []byte:
				ids = append(ids, string(id))
			case string:
				ids = append(ids, id)
			}
		}
		return ast.WalkSkipChildren, nil
	})
	return ids, err
}

// stripFrontMatter drops a leading YAML or TOML front matter block. Documents
// whose front matter does not parse are returned unchanged.
func stripFrontMatter(document string) string {
	if !strings.HasPrefix(document, "---") && !strings.HasPrefix(document, "+++") {
		return document
	}
	var meta map[string]any
	body, err := frontmatter.Parse(strings.NewReader(document), &meta)
	if err != nil {
		return document
	}
	return string(body)
}
