package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"
)

// errStale is returned by --check when the on-disk table does not match
// the freshly merged row set.
var errStale = errors.New("compatibility table is out of date")

type syncOptions struct {
	Version    string
	ResultsDir string
	TablePath  string
	ConfigPath string
	DryRun     bool
	Check      bool
	Out        io.Writer
	Now        func() time.Time
}

// runSync is the whole operation: parse, load, merge, then write (or
// print, or verify).
func runSync(opts syncOptions) error {
	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	version := normalizeVersion(opts.Version)
	if !validVersion(version) {
		return fmt.Errorf("invalid version: %q", opts.Version)
	}

	rows, err := parseTable(opts.TablePath, cfg)
	if err != nil {
		return err
	}
	updates := loadResults(opts.ResultsDir, cfg)

	merged := newRow(cfg)
	if existing, ok := rows[version]; ok {
		for _, p := range cfg.Platforms {
			if s := existing.Statuses[p]; s != "" {
				merged.Statuses[p] = s
			}
		}
	}
	for p, status := range updates[version] {
		merged.Statuses[p] = status
	}
	merged.LastTested = opts.Now().UTC().Format(time.RFC3339)

	if opts.Check {
		current := make(map[string]Row, len(rows))
		for v, r := range rows {
			current[v] = r
		}
		current[version] = merged
		if !sameRows(rows, current) {
			return errStale
		}
		return nil
	}

	rows[version] = merged

	if opts.DryRun {
		if f, ok := opts.Out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			fmt.Fprintln(opts.Out, renderTable(rows, cfg, asciiMode))
			return nil
		}
		fmt.Fprint(opts.Out, renderDocument(rows, cfg))
		return nil
	}

	return writeTable(opts.TablePath, rows, cfg)
}
