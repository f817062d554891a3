package helpdoc

import (
	"context"
	"fmt"
	"io"
	"os"

	"rampack-doctools/internal/logging"
)

// Options controls one generator run.
type Options struct {
	DocPath string
	Modes   []string
	// Check compares the regenerated document with the file on disk instead of writing it.
	Check bool
	// Stdout receives the regenerated document instead of DocPath when non-nil.
	Stdout io.Writer
}

// Generator regenerates the option lists of a Markdown document from the
// target executable's help output.
type Generator struct {
	source HelpSource
	logger logging.Logger
}

// NewGenerator wires a generator to its help source.
func NewGenerator(source HelpSource, logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Generator{source: source, logger: logger}
}

// Result describes what a run did to the document.
type Result struct {
	DocPath string
	Changed bool
	Entries map[string]int
}

// Run fetches, parses and renders every mode, patches the document in memory
// and writes it once. Nothing is written when any step fails.
func (g *Generator) Run(ctx context.Context, opts Options) (Result, error) {
	result := Result{DocPath: opts.DocPath, Entries: make(map[string]int, len(opts.Modes))}

	blocks := make([]ModeBlock, 0, len(opts.Modes))
	for _, mode := range opts.Modes {
		block, count, err := g.renderMode(ctx, mode)
		if err != nil {
			return result, err
		}
		result.Entries[mode] = count
		blocks = append(blocks, block)
	}

	original, err := os.ReadFile(opts.DocPath)
	if err != nil {
		return result, fmt.Errorf("read %s: %w", opts.DocPath, err)
	}
	patched, err := PatchDocument(string(original), blocks)
	if err != nil {
		return result, fmt.Errorf("%s: %w", opts.DocPath, err)
	}
	result.Changed = patched != string(original)

	switch {
	case opts.Check:
		if result.Changed {
			return result, staleDocumentError(opts.DocPath)
		}
		return result, nil
	case opts.Stdout != nil:
		_, err := io.WriteString(opts.Stdout, patched)
		return result, err
	}
	if err := writeDocument(opts.DocPath, patched); err != nil {
		return result, err
	}
	g.logger.Info("document updated", "path", opts.DocPath, "changed", result.Changed)
	return result, nil
}

func (g *Generator) renderMode(ctx context.Context, mode string) (ModeBlock, int, error) {
	g.logger.Debug("reading help", "mode", mode)
	lines, err := g.source.Help(ctx, mode)
	if err != nil {
		return ModeBlock{}, 0, err
	}
	entries, err := ParseHelp(lines)
	if err != nil {
		return ModeBlock{}, 0, fmt.Errorf("mode '%s': %w", mode, err)
	}
	if len(entries) == 0 {
		g.logger.Warn("help output has no options", "mode", mode)
	}
	g.logger.Debug("parsed help", "mode", mode, "entries", len(entries))
	return ModeBlock{Mode: mode, Markdown: RenderEntries(entries)}, len(entries), nil
}

func writeDocument(path, content string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), info.Mode().Perm())
}
