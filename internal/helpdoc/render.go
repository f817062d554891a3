package helpdoc

import (
	"strings"
)

// HelpEntry is one option parsed from a mode's --help output.
type HelpEntry struct {
	// Short is the short flag ("-i"); empty when the help text leaves the column blank.
	Short string
	// Long is the long flag ("--interaction-centers"). Always set.
	Long        string
	Description string
	HasArg      bool
	// ImplicitArg is the value assumed when an optional argument is omitted.
	// Only set together with HasArg.
	ImplicitArg string
}

// Markdown renders the entry as a bullet with bold-italic flags and an
// indented description.
func (e HelpEntry) Markdown() string {
	var b strings.Builder
	b.WriteString("* ")
	if e.Short != "" {
		b.WriteString("***" + e.Short + "***, ")
	}
	b.WriteString("***" + e.Long + "***")
	if e.HasArg {
		if e.ImplicitArg == "" {
			b.WriteString(" *arg*")
		} else {
			b.WriteString(" *arg (= " + e.ImplicitArg + ")*")
		}
	}
	b.WriteString("\n\n  ")
	b.WriteString(e.Description)
	return b.String()
}

// RenderEntries joins the rendered entries with blank lines.
func RenderEntries(entries []HelpEntry) string {
	parts := make([]string, 0, len(entries))
	for _, entry := range entries {
		parts = append(parts, entry.Markdown())
	}
	return strings.Join(parts, "\n\n")
}
