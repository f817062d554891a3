package linkcheck

import (
	"regexp"
	"strings"
)

// Link is one cross-reference found in a document.
type Link struct {
	// Line is the 0-based line the link appears on.
	Line int
	// File is the target file name; empty means the document itself.
	File string
	// Anchor is the target anchor; empty means only the file is checked.
	Anchor string
}

// String renders the link the way it is written after the "(": file#anchor.
func (l Link) String() string {
	return l.File + "#" + l.Anchor
}

var (
	anchoredLinkPattern = regexp.MustCompile(`\[[^\]]*\]\(([a-zA-Z0-9_\-.]*)#([a-zA-Z0-9_\-]+)\)`)
	fileLinkPattern     = regexp.MustCompile(`\[[^\]]*\]\(([a-zA-Z0-9_\-.]+)\)`)
)

// FindLinks returns the anchored links of every line, then the plain file
// links of every line. Targets outside the restricted file-name alphabet
// (URLs, paths with slashes) are not reported.
func FindLinks(document string) []Link {
	lines := documentLines(document)
	var links []Link
	for i, line := range lines {
		for _, m := range anchoredLinkPattern.FindAllStringSubmatch(line, -1) {
			links = append(links, Link{Line: i, File: m[1], Anchor: m[2]})
		}
	}
	for i, line := range lines {
		for _, m := range fileLinkPattern.FindAllStringSubmatch(line, -1) {
			links = append(links, Link{Line: i, File: m[1]})
		}
	}
	return links
}

func documentLines(document string) []string {
	document = strings.ReplaceAll(document, "\r\n", "\n")
	document = strings.TrimSuffix(document, "\n")
	if document == "" {
		return nil
	}
	return strings.Split(document, "\n")
}
