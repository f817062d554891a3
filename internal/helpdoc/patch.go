package helpdoc

import (
	"sort"
	"strings"
)

// GeneratedNotice is inserted at the top of every generated block.
const GeneratedNotice = "[//]: # (This is automatically generated block, do not edit!!!)"

// StartMarker returns the comment line opening the generated block of mode.
func StartMarker(mode string) string {
	return "[//]: # (start " + mode + ")"
}

// EndMarker returns the comment line closing the generated block of mode.
func EndMarker(mode string) string {
	return "[//]: # (end " + mode + ")"
}

// ModeBlock is the rendered option list of one mode.
type ModeBlock struct {
	Mode     string
	Markdown string
}

type region struct {
	block ModeBlock
	// from is the offset right after the start marker, to the offset of the end marker.
	from, to int
}

// PatchDocument replaces the content between every mode's marker pair with
// the mode's generated block. All marker pairs are validated before anything
// is replaced; the document is then rebuilt from its untouched segments and
// the generated blocks.
func PatchDocument(doc string, blocks []ModeBlock) (string, error) {
	regions := make([]region, 0, len(blocks))
	for _, block := range blocks {
		r, err := locate(doc, block)
		if err != nil {
			return "", err
		}
		regions = append(regions, r)
	}
	sort.SliceStable(regions, func(i, j int) bool {
		return regions[i].from < regions[j].from
	})
	for i := 1; i < len(regions); i++ {
		if regions[i].from < regions[i-1].to {
			return "", malformedDocumentError(regions[i].block.Mode, "nested inside the block of mode '"+regions[i-1].block.Mode+"'")
		}
	}

	var b strings.Builder
	cursor := 0
	for _, r := range regions {
		b.WriteString(doc[cursor:r.from])
		b.WriteString(generatedBlock(r.block.Markdown))
		cursor = r.to
	}
	b.WriteString(doc[cursor:])
	return b.String(), nil
}

func locate(doc string, block ModeBlock) (region, error) {
	start := strings.Index(doc, StartMarker(block.Mode))
	end := strings.Index(doc, EndMarker(block.Mode))
	switch {
	case start == -1 && end == -1:
		return region{}, malformedDocumentError(block.Mode, "missing")
	case start == -1:
		return region{}, malformedDocumentError(block.Mode, "missing its start marker")
	case end == -1:
		return region{}, malformedDocumentError(block.Mode, "missing its end marker")
	case end < start:
		return region{}, malformedDocumentError(block.Mode, "closed before it is opened")
	}
	return region{
		block: block,
		from:  start + len(StartMarker(block.Mode)),
		to:    end,
	}, nil
}

func generatedBlock(markdown string) string {
	return "\n" + GeneratedNotice + "\n\n" + markdown + "\n\n"
}
