// # markdown-help
//
// `markdown-help` keeps the option lists of the rampack operation modes
// documentation in sync with the program itself. For every mode it runs
// `rampack <mode> --help`, turns the option table into Markdown bullets and
// replaces the block between the mode's markers in the document:
//
//	[//]: # (start casino)
//	...generated...
//	[//]: # (end casino)
//
// Every marker pair is validated before anything is replaced, and the
// document is written once at the end, so a missing marker or a failing
// rampack invocation leaves the file untouched.
//
// ## Usage
//
//	markdown-help [flags]
//
// ## Flags
//
//   - `--exec PATH`: rampack executable (default `rampack`, or `$RAMPACK_EXEC`).
//   - `--doc PATH`: document to patch (default `docs/operation-modes.md`).
//   - `--mode NAME`: mode to document; repeat or comma-separate
//     (default `casino,preview,shape-preview,trajectory`).
//   - `--config FILE`: YAML or TOML file with `exec`, `doc` and `modes` keys.
//     Explicit flags win over the file, the file wins over the environment.
//   - `--check`: fail instead of writing when the document is out of date.
//   - `--stdout`: print the regenerated document instead of writing it.
//   - `--log-level`, `--log-format`: logging verbosity and encoding.
//
// ## CI
//
// Run `markdown-help --check` in CI to fail builds whose documentation was
// not regenerated after an option changed.
package main
