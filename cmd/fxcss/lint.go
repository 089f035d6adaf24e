package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gofxcss/fxcss/internal/lint"
)

var lintCmd = &cobra.Command{
	Use:   "lint [patterns...]",
	Short: "Verify JavaFX stylesheet files",
	Long: `Check stylesheet files for malformed rules and property names the
fxcss library never emits. Unknown -fx- properties are errors; foreign
property names are warnings.`,
	PreRunE: loadConfig,
	RunE: func(_ *cobra.Command, args []string) error {
		return runLintPatterns(args)
	},
}

func init() {
	f := lintCmd.Flags()
	f.StringSlice("paths", nil, "Glob patterns for stylesheet files to check")
	f.Bool("strict", false, "Exit 1 on any issue, including warnings (CI mode)")
	f.Int("max-issues", 0, "Max issues to report (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (fxlint) suffix on issues")
}

// runLintPatterns is shared between `fxcss lint` and `fxcss generate --lint`.
func runLintPatterns(patterns []string) error {
	config := buildLintConfig(patterns)

	logger.Debug("linting", "patterns", config.Patterns)
	result, err := lint.Lint(config)
	if err != nil {
		return fmt.Errorf("lint failed: %w", err)
	}
	logger.Debug("checked files",
		"discovered", result.Stats.FilesDiscovered,
		"checked", result.Stats.FilesChecked,
		"skipped", result.Stats.FilesSkipped)

	if !getBoolWithFallback("quiet", "quiet", false) {
		lint.NewReporter(os.Stdout, config).Print(result)
	}

	if result.Failed(config.Strict) {
		os.Exit(1)
	}
	return nil
}
