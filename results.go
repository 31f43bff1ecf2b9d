package main

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// resultArtifact is the wire shape written by the test monitor jobs.
type resultArtifact struct {
	Platform string         `json:"platform"`
	Results  map[string]any `json:"results"`
}

// loadResults walks dir recursively and folds every valid artifact into
// a version -> platform -> status map. Malformed files, unknown
// platforms and invalid version keys are skipped; a missing directory is
// an empty result set.
func loadResults(dir string, cfg Config) map[string]map[string]string {
	updates := make(map[string]map[string]string)
	if dir == "" {
		return updates
	}
	allowed := make(map[string]bool, len(cfg.Platforms))
	for _, p := range cfg.Platforms {
		allowed[p] = true
	}

	// WalkDir visits entries in lexical order, which keeps
	// last-artifact-wins behavior deterministic.
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".json") {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		var artifact resultArtifact
		if err := json.Unmarshal(data, &artifact); err != nil {
			return nil
		}
		platform := strings.TrimSpace(artifact.Platform)
		if !allowed[platform] {
			return nil
		}
		for version, status := range artifact.Results {
			normalized := normalizeVersion(version)
			if !validVersion(normalized) {
				continue
			}
			if updates[normalized] == nil {
				updates[normalized] = make(map[string]string)
			}
			updates[normalized][platform] = normalizeStatus(status)
		}
		return nil
	})
	return updates
}

// normalizeStatus lowercases a raw status value and coerces anything
// outside the known set to "fail".
func normalizeStatus(status any) string {
	s := strings.ToLower(strings.TrimSpace(fmt.Sprint(status)))
	switch s {
	case "pass", "fail", "not-run":
		return s
	}
	return "fail"
}
