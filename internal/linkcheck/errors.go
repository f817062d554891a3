package linkcheck

import (
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

const (
	missingDirectoryCode = "LINKCHECK_MISSING_DIRECTORY"
	noMarkdownFilesCode  = "LINKCHECK_NO_MARKDOWN_FILES"
	brokenLinksCode      = "LINKCHECK_BROKEN_LINKS"
)

func missingDirectoryError(dir string, err error) error {
	return goerrors.Wrap(err, goerrors.CategoryNotFound, fmt.Sprintf("'%s' is not a readable directory: %v", dir, err)).
		WithTextCode(missingDirectoryCode)
}

func noMarkdownFilesError(dir string) error {
	return goerrors.New(fmt.Sprintf("No Markdown files found in '%s/'", dir), goerrors.CategoryNotFound).
		WithTextCode(noMarkdownFilesCode)
}

func brokenLinksError(files, links int) error {
	return goerrors.New(fmt.Sprintf("%d dead link(s) in %d file(s)", links, files), goerrors.CategoryValidation).
		WithTextCode(brokenLinksCode)
}

// IsMissingDirectory reports whether err means the target directory cannot be read.
func IsMissingDirectory(err error) bool { return hasTextCode(err, missingDirectoryCode) }

// IsNoMarkdownFiles reports whether err means the directory holds no Markdown files.
func IsNoMarkdownFiles(err error) bool { return hasTextCode(err, noMarkdownFilesCode) }

// IsBrokenLinks reports whether err means at least one link is dead.
func IsBrokenLinks(err error) bool { return hasTextCode(err, brokenLinksCode) }

func hasTextCode(err error, code string) bool {
	var target *goerrors.Error
	if !errors.As(err, &target) {
		return false
	}
	return target.TextCode == code
}
