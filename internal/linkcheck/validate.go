package linkcheck

// Reason classifies why a link is dead.
type Reason string

const (
	ReasonMissingFile   Reason = "missing-file"
	ReasonMissingAnchor Reason = "missing-anchor"
)

// BrokenLink is a link whose target file or anchor does not exist.
type BrokenLink struct {
	Link
	Reason Reason
}

// FileResult lists the dead links of one file; an empty list means the file is fine.
type FileResult struct {
	Name   string
	Broken []BrokenLink
}

// OK reports whether every link of the file resolved.
func (r FileResult) OK() bool { return len(r.Broken) == 0 }

// FindBrokenLinks checks the links of file against the loaded set. A link
// without a file name targets file itself and is never checked for existence.
func FindBrokenLinks(file *MarkdownFile, byName map[string]*MarkdownFile) []BrokenLink {
	var broken []BrokenLink
	for _, link := range file.Links {
		target := file
		if link.File != "" {
			linked, ok := byName[link.File]
			if !ok {
				broken = append(broken, BrokenLink{Link: link, Reason: ReasonMissingFile})
				continue
			}
			target = linked
		}
		if link.Anchor != "" && !target.HasAnchor(link.Anchor) {
			broken = append(broken, BrokenLink{Link: link, Reason: ReasonMissingAnchor})
		}
	}
	return broken
}

// Validate checks every file and returns per-file results in input order,
// plus whether any link is dead.
func Validate(files []*MarkdownFile) ([]FileResult, bool) {
	byName := make(map[string]*MarkdownFile, len(files))
	for _, file := range files {
		byName[file.Name] = file
	}
	results := make([]FileResult, 0, len(files))
	anyBroken := false
	for _, file := range files {
		broken := FindBrokenLinks(file, byName)
		if len(broken) > 0 {
			anyBroken = true
		}
		results = append(results, FileResult{Name: file.Name, Broken: broken})
	}
	return results, anyBroken
}
