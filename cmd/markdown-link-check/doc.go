// # markdown-link-check
//
// `markdown-link-check` verifies the internal cross-references of a directory
// of Markdown files. Every `[text](file.md#anchor)`, `[text](#anchor)` and
// `[text](file.md)` link must point at a Markdown file of the same directory
// and, when an anchor is given, at a heading or `<a id="...">` tag of that
// file. Links to other sites are not checked.
//
// ## Usage
//
//	markdown-link-check [flags] DIRECTORY
//
// A directory named like a subcommand (`completion`, `gen-docs`) is passed
// after `--` or with a path prefix: `markdown-link-check -- completion` or
// `markdown-link-check ./completion`.
//
// The report lists every file:
//
//	docs/input.md: OK
//	docs/operation-modes.md: some links are dead:
//	  line 12: input.md#arrangement
//
// Line numbers are 0-based. The exit status is 1 when any link is dead, when
// the directory holds no Markdown files, or when the arguments are wrong.
//
// ## Anchors
//
// Heading anchors follow GitHub's rules by default: lower-case, whitespace
// runs become hyphens, other punctuation is dropped and repeated headings get
// `-1`, `-2`, ... suffixes. Headings inside fenced code blocks and YAML front
// matter are ignored. `--anchor-style goldmark` uses the heading ids
// generated by goldmark instead, for documentation published with a
// goldmark-based site generator.
package main
