package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gofxcss/fxcss/internal/theme"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate a stylesheet from a theme file",
	Long: `Build a YAML theme document into a JavaFX stylesheet.
Rule values may reference palette colors and derive shades with
lighten() and darken().`,
	PreRunE: loadConfig,
	RunE:    runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.String("theme", "theme.yaml", "Theme file path")
	f.String("output", "", "Output stylesheet path (default: <theme name>.css)")
	f.Bool("lint", false, "Verify the generated stylesheet")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	themePath := getStringWithFallback("theme", "generate.theme", "theme.yaml")

	logger.Debug("loading theme", "path", themePath)
	doc, err := theme.Load(themePath)
	if err != nil {
		return err
	}

	output := getStringWithFallback("output", "generate.output", doc.Name+".css")

	logger.Debug("building theme", "name", doc.Name, "rules", len(doc.Rules), "output", output)
	result, err := theme.Generate(doc, output)
	if err != nil {
		return fmt.Errorf("generating %s: %w", doc.Name, err)
	}

	if !getBoolWithFallback("quiet", "quiet", false) {
		fmt.Printf("Wrote %s (%d rules, %d bytes)\n", result.Path, result.Rules, result.Bytes)
	}

	if doLint, _ := cmd.Flags().GetBool("lint"); doLint {
		return runLintPatterns([]string{result.Path})
	}
	return nil
}
