package main

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// renderMode selects the output flavor.
type renderMode int

const (
	markdownMode renderMode = iota // the on-disk table
	asciiMode                      // terminal preview for --dry-run
)

// renderTable renders the row set, newest version first.
func renderTable(rows map[string]Row, cfg Config, mode renderMode) string {
	w := table.NewWriter()
	// Column names must round-trip through parseTable unchanged.
	w.Style().Format.Header = text.FormatDefault

	header := make(table.Row, 0, len(cfg.Platforms)+2)
	header = append(header, cfg.VersionColumn)
	for _, p := range cfg.Platforms {
		header = append(header, p)
	}
	header = append(header, timestampColumn)
	w.AppendHeader(header)

	for _, version := range sortedVersionsDesc(rows) {
		r := rows[version]
		cells := make(table.Row, 0, len(header))
		cells = append(cells, version)
		for _, p := range cfg.Platforms {
			status := r.Statuses[p]
			if status == "" {
				status = "not-run"
			}
			cells = append(cells, status)
		}
		cells = append(cells, r.LastTested)
		w.AppendRow(cells)
	}

	if mode == asciiMode {
		w.SetStyle(table.StyleLight)
		return w.Render()
	}
	return w.RenderMarkdown()
}

// renderDocument produces the full file: title, auto-generation notice,
// then the table.
func renderDocument(rows map[string]Row, cfg Config) string {
	var b strings.Builder
	b.WriteString(cfg.Title)
	b.WriteString("\n\n")
	b.WriteString(cfg.Notice)
	b.WriteString("\n\n")
	b.WriteString(renderTable(rows, cfg, markdownMode))
	b.WriteString("\n")
	return b.String()
}
