// compat-sync maintains a markdown compatibility table that tracks which
// platforms pass automated tests for each released version of a tool.
//
// Each run reads the existing table, folds in JSON result artifacts for a
// single target version, stamps the current UTC time, and rewrites the
// whole table sorted by version descending.
//
// Example:
//
//	compat-sync --version 1.4.2 --results-dir artifacts/ --table-path docs/codex_compatibility.md
//
// Result artifacts are JSON files of the shape:
//
//	{"platform": "linux", "results": {"1.4.2": "pass", "1.4.1": "fail"}}
//
// Malformed artifacts, unknown platforms and malformed table rows are
// skipped; only an invalid --version (or a failed --check) is fatal.
package main
