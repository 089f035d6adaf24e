package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"

	"github.com/gofxcss/fxcss/internal/lint"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command, _ []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".fxcss.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// CLI flags (highest precedence — only flags that were explicitly set)
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	if getBoolWithFallback("verbose", "verbose", false) {
		logger.SetLevel(log.DebugLevel)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment
// variables. Separated from loadConfig to allow testing without a cobra
// command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (FXCSS_* prefix)
	if err := k.Load(env.Provider("FXCSS_", ".", func(s string) string {
		// FXCSS_GENERATE_THEME -> generate.theme
		// FXCSS_LINT_STRICT    -> lint.strict
		// FXCSS_VERBOSE        -> verbose
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "FXCSS_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildLintConfig constructs the lint engine's config from koanf state.
func buildLintConfig(patterns []string) lint.Config {
	if len(patterns) == 0 {
		if p := k.Strings("paths"); len(p) > 0 {
			patterns = p
		} else if p := k.Strings("lint.paths"); len(p) > 0 {
			patterns = p
		} else {
			patterns = []string{"**/*.css"}
		}
	}

	return lint.Config{
		Patterns:         patterns,
		MaxIssues:        getIntWithFallback("max-issues", "lint.max-issues", 0),
		Strict:           getBoolWithFallback("strict", "lint.strict", false),
		PrintIssuedLines: getBoolWithFallback("print-lines", "lint.print-lines", true),
		PrintLinterName:  getBoolWithFallback("print-linter-name", "lint.print-linter-name", true),
		UseColors:        getBoolWithFallback("color", "color", false),
	}
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}
