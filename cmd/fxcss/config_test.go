package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	k = koanf.New(".")
}

func TestConfigFileLoading(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".fxcss.yaml")
	configContent := `
verbose: true

generate:
  theme: themes/dark.yaml
  output: dist/dark.css

lint:
  strict: true
  max-issues: 25
  paths:
    - "dist/**/*.css"
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))
	require.NoError(t, loadConfigFromPath(configPath))

	assert.True(t, k.Bool("verbose"))
	assert.Equal(t, "themes/dark.yaml", k.String("generate.theme"))
	assert.Equal(t, "dist/dark.css", k.String("generate.output"))
	assert.True(t, k.Bool("lint.strict"))
	assert.Equal(t, 25, k.Int("lint.max-issues"))
	assert.Equal(t, []string{"dist/**/*.css"}, k.Strings("lint.paths"))
}

func TestConfigFileNotFound_UsesDefaults(t *testing.T) {
	resetKoanf()

	// Pointing at a missing config is not an error
	require.NoError(t, loadConfigFromPath("/nonexistent/.fxcss.yaml"))

	config := buildLintConfig(nil)
	assert.Equal(t, []string{"**/*.css"}, config.Patterns)
	assert.False(t, config.Strict)
	assert.Equal(t, 0, config.MaxIssues)
	assert.True(t, config.PrintIssuedLines)
	assert.True(t, config.PrintLinterName)
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".fxcss.yaml")
	configContent := `
generate:
  theme: from-file.yaml
lint:
  strict: false
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))

	t.Setenv("FXCSS_GENERATE_THEME", "from-env.yaml")
	t.Setenv("FXCSS_LINT_STRICT", "true")

	require.NoError(t, loadConfigFromPath(configPath))

	assert.Equal(t, "from-env.yaml", k.String("generate.theme"))
	assert.True(t, k.Bool("lint.strict"))
}

func TestBuildLintConfig_ExplicitPatternsWin(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".fxcss.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("lint:\n  paths:\n    - \"a/**/*.css\"\n"), 0o644))
	require.NoError(t, loadConfigFromPath(configPath))

	config := buildLintConfig([]string{"b.css"})
	assert.Equal(t, []string{"b.css"}, config.Patterns)

	config = buildLintConfig(nil)
	assert.Equal(t, []string{"a/**/*.css"}, config.Patterns)
}

func TestInitCommand_CreatesConfigFile(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	cmd := rootCmd
	cmd.SetArgs([]string{"init"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(".fxcss.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "generate:")
	assert.Contains(t, string(data), "lint:")
	assert.Contains(t, string(data), "theme: theme.yaml")
}

func TestInitCommand_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	require.NoError(t, os.WriteFile(".fxcss.yaml", []byte("existing"), 0o644))

	cmd := rootCmd
	cmd.SetArgs([]string{"init"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInitCommand_ForceOverwrite(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	require.NoError(t, os.WriteFile(".fxcss.yaml", []byte("existing"), 0o644))

	cmd := rootCmd
	cmd.SetArgs([]string{"init", "--force"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(".fxcss.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "theme: theme.yaml")
}

func TestVersionCommand(t *testing.T) {
	cmd := rootCmd
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
}

func TestGetStringWithFallback(t *testing.T) {
	resetKoanf()
	assert.Equal(t, "default", getStringWithFallback("flag-key", "config.key", "default"))
}

func TestGetBoolWithFallback(t *testing.T) {
	resetKoanf()
	assert.False(t, getBoolWithFallback("flag-key", "config.key", false))
	assert.True(t, getBoolWithFallback("flag-key", "config.key", true))
}

func TestGetIntWithFallback(t *testing.T) {
	resetKoanf()
	assert.Equal(t, 42, getIntWithFallback("flag-key", "config.key", 42))
}
