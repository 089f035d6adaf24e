package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .fxcss.yaml config file",
	Long:  `Create a .fxcss.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".fxcss.yaml"); err == nil && !force {
			return fmt.Errorf(".fxcss.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".fxcss.yaml", []byte(defaultConfig), 0o644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .fxcss.yaml")
		return nil
	},
}

const defaultConfig = `# fxcss configuration

# Shared settings
verbose: false

# Generation settings
generate:
  theme: theme.yaml
  output: ""               # default: <theme name>.css

# Linting settings
lint:
  paths:
    - "**/*.css"
  strict: false
  max-issues: 0            # 0 = unlimited
  print-lines: true
  print-linter-name: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
