package helpdoc

import (
	"regexp"
	"strings"
)

var entryStartPattern = regexp.MustCompile(`^ {2}-.+`)

// The short flag column is two characters wide and followed by a separator
// (", " or blanks when the option has no short flag).
var (
	implicitArgPattern  = regexp.MustCompile(`^ {2}(..). (--[-0-9a-zA-Z]+) \[=arg\(=([^)\]]+)\)\](?: +(.*))?$`)
	argPattern          = regexp.MustCompile(`^ {2}(..). (--[-0-9a-zA-Z]+) arg(?: +(.*))?$`)
	flagPattern         = regexp.MustCompile(`^ {2}(..). (--[-0-9a-zA-Z]+)(?: +(.*))?$`)
	continuationPattern = regexp.MustCompile(`^ +(\S.*)$`)
)

type parseState int

const (
	beforeFirstEntry parseState = iota
	accumulatingEntry
)

type helpParser struct {
	state   parseState
	entries []HelpEntry
}

// ParseHelp turns the lines of one mode's --help output into option entries,
// in help-text order. Banner and usage text before the first option line is
// ignored, and so is any line that is neither an option nor a continuation.
func ParseHelp(lines []string) ([]HelpEntry, error) {
	lines = lines[firstEntryIndex(lines):]
	p := &helpParser{}
	for i, line := range lines {
		if err := p.consume(i+1, line); err != nil {
			return nil, err
		}
	}
	return p.entries, nil
}

func firstEntryIndex(lines []string) int {
	for i, line := range lines {
		if entryStartPattern.MatchString(line) {
			return i
		}
	}
	return len(lines)
}

func (p *helpParser) consume(lineNo int, line string) error {
	if m := implicitArgPattern.FindStringSubmatch(line); m != nil {
		p.push(HelpEntry{Short: m[1], Long: m[2], HasArg: true, ImplicitArg: m[3], Description: m[4]})
		return nil
	}
	if m := argPattern.FindStringSubmatch(line); m != nil {
		p.push(HelpEntry{Short: m[1], Long: m[2], HasArg: true, Description: m[3]})
		return nil
	}
	if m := flagPattern.FindStringSubmatch(line); m != nil {
		p.push(HelpEntry{Short: m[1], Long: m[2], Description: m[3]})
		return nil
	}
	if m := continuationPattern.FindStringSubmatch(line); m != nil {
		if p.state == beforeFirstEntry {
			return parseAnomalyError(lineNo, m[1])
		}
		p.entries[len(p.entries)-1].Description += m[1]
	}
	return nil
}

func (p *helpParser) push(entry HelpEntry) {
	if strings.TrimSpace(entry.Short) == "" {
		entry.Short = ""
	}
	p.entries = append(p.entries, entry)
	p.state = accumulatingEntry
}
