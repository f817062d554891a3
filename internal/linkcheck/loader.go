package linkcheck

import (
	"fmt"
	"io/fs"
)

// MarkdownFile is one loaded document with its anchors and outgoing links.
type MarkdownFile struct {
	Name    string
	Anchors map[string]struct{}
	Links   []Link
}

// NewMarkdownFile extracts anchors and links from document.
func NewMarkdownFile(name, document string, style AnchorStyle) (*MarkdownFile, error) {
	anchors, err := Anchors(document, style)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	set := make(map[string]struct{}, len(anchors))
	for _, anchor := range anchors {
		set[anchor] = struct{}{}
	}
	return &MarkdownFile{
		Name:    name,
		Anchors: set,
		Links:   FindLinks(document),
	}, nil
}

// HasAnchor reports whether the document defines anchor.
func (f *MarkdownFile) HasAnchor(anchor string) bool {
	_, ok := f.Anchors[anchor]
	return ok
}

// Load reads every *.md file at the root of fsys, sorted by name. Sub
// directories are not descended into.
func Load(fsys fs.FS, style AnchorStyle) ([]*MarkdownFile, error) {
	names, err := fs.Glob(fsys, "*.md")
	if err != nil {
		return nil, err
	}
	files := make([]*MarkdownFile, 0, len(names))
	for _, name := range names {
		info, err := fs.Stat(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", name, err)
		}
		if info.IsDir() {
			continue
		}
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		file, err := NewMarkdownFile(name, string(content), style)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}
	return files, nil
}
