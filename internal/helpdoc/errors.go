package helpdoc

import (
	"errors"
	"fmt"
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

const (
	invocationFailedCode  = "HELP_INVOCATION_FAILED"
	parseAnomalyCode      = "HELP_PARSE_ANOMALY"
	malformedDocumentCode = "DOC_MARKERS_MALFORMED"
	staleDocumentCode     = "DOC_STALE"
)

func invocationError(err error, execPath, mode string, stderr []byte) error {
	msg := fmt.Sprintf("running %s %s --help: %v", execPath, mode, err)
	if detail := strings.TrimSpace(string(stderr)); detail != "" {
		msg += ": " + detail
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, msg).
		WithTextCode(invocationFailedCode)
}

func parseAnomalyError(line int, text string) error {
	msg := fmt.Sprintf("help line %d: continuation %q appears before any option entry", line, text)
	return goerrors.New(msg, goerrors.CategoryValidation).
		WithTextCode(parseAnomalyCode)
}

func malformedDocumentError(mode, reason string) error {
	msg := fmt.Sprintf("automatic options block for mode '%s' is %s", mode, reason)
	return goerrors.New(msg, goerrors.CategoryValidation).
		WithTextCode(malformedDocumentCode)
}

func staleDocumentError(docPath string) error {
	msg := fmt.Sprintf("'%s' is out of date; regenerate it with markdown-help", docPath)
	return goerrors.New(msg, goerrors.CategoryValidation).
		WithTextCode(staleDocumentCode)
}

// IsInvocationFailure reports whether err came from running the target executable.
func IsInvocationFailure(err error) bool {
	return hasTextCode(err, invocationFailedCode)
}

// IsParseAnomaly reports whether err came from help text the parser cannot attribute.
func IsParseAnomaly(err error) bool {
	return hasTextCode(err, parseAnomalyCode)
}

// IsMalformedDocument reports whether err came from a missing or misplaced marker pair.
func IsMalformedDocument(err error) bool {
	return hasTextCode(err, malformedDocumentCode)
}

// IsStaleDocument reports whether a check run found the document out of date.
func IsStaleDocument(err error) bool {
	return hasTextCode(err, staleDocumentCode)
}

func hasTextCode(err error, code string) bool {
	var target *goerrors.Error
	if !errors.As(err, &target) {
		return false
	}
	return target.TextCode == code
}
