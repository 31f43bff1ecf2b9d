package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls the platform allow-list and the fixed text around the
// table. Zero-value fields in a loaded config fall back to DefaultConfig.
type Config struct {
	Platforms     []string `yaml:"platforms"`
	Title         string   `yaml:"title"`
	Notice        string   `yaml:"notice"`
	VersionColumn string   `yaml:"version_column"`
}

var DefaultConfig = Config{
	Platforms:     []string{"linux", "mac", "windows", "rockylinux8", "ubuntu20.04"},
	Title:         "# Codex Compatibility",
	Notice:        "Auto-updated by `.github/workflows/codex-release-monitor.yml`.",
	VersionColumn: "Codex version",
}

// timestampColumn is fixed; it is not a platform and never configurable.
const timestampColumn = "last_tested_utc"

// loadConfig returns DefaultConfig when path is empty, otherwise the
// defaults overlaid with whatever the YAML file sets.
func loadConfig(path string) (Config, error) {
	cfg := DefaultConfig
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	var loaded Config
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if len(loaded.Platforms) > 0 {
		cfg.Platforms = loaded.Platforms
	}
	if loaded.Title != "" {
		cfg.Title = loaded.Title
	}
	if loaded.Notice != "" {
		cfg.Notice = loaded.Notice
	}
	if loaded.VersionColumn != "" {
		cfg.VersionColumn = loaded.VersionColumn
	}
	return cfg, nil
}
