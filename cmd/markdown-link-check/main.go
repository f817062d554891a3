package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"rampack-doctools/internal/linkcheck"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		reportFailure(err, os.Stdout, os.Stderr)
		os.Exit(1)
	}
}

// reportFailure prints err unless the link report already explains it.
func reportFailure(err error, stdout, stderr io.Writer) {
	var usage usageError
	switch {
	case linkcheck.IsBrokenLinks(err):
	case errors.As(err, &usage), linkcheck.IsNoMarkdownFiles(err):
		fmt.Fprintln(stdout, err)
	default:
		fmt.Fprintln(stderr, "markdown-link-check:", err)
	}
}
