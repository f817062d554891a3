package linkcheck

import (
	"errors"
	"fmt"
	"io"
	"os"

	"rampack-doctools/internal/logging"
)

// Checker validates the cross-references of a directory of Markdown files.
type Checker struct {
	Style  AnchorStyle
	Logger logging.Logger
}

// Check loads dir, prints a per-file report to w and returns an error when
// the directory is unusable or any link is dead.
func (c Checker) Check(dir string, w io.Writer) error {
	logger := c.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	info, err := os.Stat(dir)
	if err != nil {
		return missingDirectoryError(dir, err)
	}
	if !info.IsDir() {
		return missingDirectoryError(dir, errors.New("not a directory"))
	}

	files, err := Load(os.DirFS(dir), c.Style)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return noMarkdownFilesError(dir)
	}
	logger.Debug("loaded markdown files", "dir", dir, "count", len(files), "style", string(c.Style))

	results, anyBroken := Validate(files)
	if err := WriteReport(w, dir, results); err != nil {
		return err
	}
	if !anyBroken {
		return nil
	}
	var badFiles, badLinks int
	for _, res := range results {
		if !res.OK() {
			badFiles++
			badLinks += len(res.Broken)
		}
	}
	return brokenLinksError(badFiles, badLinks)
}

// WriteReport prints "<dir>/<file>: OK" or the file's dead links, one per line.
func WriteReport(w io.Writer, dir string, results []FileResult) error {
	for _, res := range results {
		if res.OK() {
			if _, err := fmt.Fprintf(w, "%s/%s: OK\n", dir, res.Name); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "%s/%s: some links are dead:\n", dir, res.Name); err != nil {
			return err
		}
		for _, link := range res.Broken {
			if _, err := fmt.Fprintf(w, "  line %d: %s\n", link.Line, link.Link); err != nil {
				return err
			}
		}
	}
	return nil
}
