package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var rootFlags struct {
	version    string
	resultsDir string
	tablePath  string
	configPath string
	dryRun     bool
	check      bool
}

var rootCmd = &cobra.Command{
	Use:   "compat-sync",
	Short: "Sync the platform compatibility table from test-result artifacts",
	Long: "compat-sync merges JSON test-result artifacts for one version into\n" +
		"a markdown compatibility table and rewrites the table in place.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	RunE: runRoot,
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&rootFlags.version, "version", "", "Version to update (required)")
	f.StringVar(&rootFlags.resultsDir, "results-dir", "", "Directory containing *.json results (required)")
	f.StringVar(&rootFlags.tablePath, "table-path", "docs/codex_compatibility.md", "Compatibility table path")
	f.StringVar(&rootFlags.configPath, "config", "", "Optional YAML config overriding platforms and header text")
	f.BoolVar(&rootFlags.dryRun, "dry-run", false, "Print the resulting table instead of writing it")
	f.BoolVar(&rootFlags.check, "check", false, "Exit 1 if the table is out of date; never writes")

	_ = rootCmd.MarkFlagRequired("version")
	_ = rootCmd.MarkFlagRequired("results-dir")
}

func runRoot(cmd *cobra.Command, _ []string) error {
	return runSync(syncOptions{
		Version:    rootFlags.version,
		ResultsDir: rootFlags.resultsDir,
		TablePath:  rootFlags.tablePath,
		ConfigPath: rootFlags.configPath,
		DryRun:     rootFlags.dryRun,
		Check:      rootFlags.check,
		Out:        cmd.OutOrStdout(),
		Now:        time.Now,
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
