package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Row is one table entry: a status per platform plus the stamp of the
// last run that touched it.
type Row struct {
	Statuses   map[string]string
	LastTested string
}

// newRow returns a Row with every configured platform set to "not-run".
func newRow(cfg Config) Row {
	r := Row{Statuses: make(map[string]string, len(cfg.Platforms))}
	for _, p := range cfg.Platforms {
		r.Statuses[p] = "not-run"
	}
	return r
}

// separatorCell reports whether a trimmed cell is a markdown separator
// like "---", ":---" or "---:".
func separatorCell(s string) bool {
	s = strings.TrimSuffix(strings.TrimPrefix(s, ":"), ":")
	if s == "" {
		return false
	}
	return strings.Count(s, "-") == len(s)
}

func splitTableLine(line string) []string {
	line = strings.Trim(strings.TrimSpace(line), "|")
	parts := strings.Split(line, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// parseTable reads the existing table into a version-keyed row map.
// A missing file is an empty table. The first pipe line is the header;
// separator lines, short rows and rows whose version cell is not
// dotted-numeric are skipped.
func parseTable(path string, cfg Config) (map[string]Row, error) {
	rows := make(map[string]Row)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return rows, nil
		}
		return nil, fmt.Errorf("open table: %w", err)
	}
	defer f.Close()

	var columns []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(strings.TrimSpace(line), "|") {
			continue
		}
		parts := splitTableLine(line)
		if len(parts) < 2 {
			continue
		}
		if columns == nil {
			columns = parts
			continue
		}
		allSep := true
		for _, p := range parts {
			if !separatorCell(p) {
				allSep = false
				break
			}
		}
		if allSep {
			continue
		}

		cells := make(map[string]string)
		for i := 0; i < len(columns) && i < len(parts); i++ {
			cells[strings.ToLower(columns[i])] = parts[i]
		}
		version := normalizeVersion(cells[strings.ToLower(cfg.VersionColumn)])
		if !validVersion(version) {
			continue
		}
		row := newRow(cfg)
		for _, p := range cfg.Platforms {
			if s := strings.ToLower(strings.TrimSpace(cells[strings.ToLower(p)])); s != "" {
				row.Statuses[p] = s
			}
		}
		row.LastTested = strings.TrimSpace(cells[timestampColumn])
		rows[version] = row
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read table: %w", err)
	}
	return rows, nil
}

// writeTable rewrites the whole table file, creating parent directories
// as needed.
func writeTable(path string, rows map[string]Row, cfg Config) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create table dir: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(renderDocument(rows, cfg)), 0o644); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}

// sameRows compares two row sets ignoring timestamps. Used by --check so
// CI can gate on staleness without timestamp churn.
func sameRows(a, b map[string]Row) bool {
	if len(a) != len(b) {
		return false
	}
	for version, ra := range a {
		rb, ok := b[version]
		if !ok || len(ra.Statuses) != len(rb.Statuses) {
			return false
		}
		for p, s := range ra.Statuses {
			if rb.Statuses[p] != s {
				return false
			}
		}
	}
	return true
}
