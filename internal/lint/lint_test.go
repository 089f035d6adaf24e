package lint

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLint(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "clean.css", ".a {\n    -fx-opacity: 0.5;\n}\n")
	writeFile(t, dir, "broken.css", ".b {\n    -fx-opacty: 0.5;\n    color: red;\n}\n")

	result, err := Lint(Config{Patterns: []string{filepath.Join(dir, "*.css")}})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Stats.FilesDiscovered)
	assert.Equal(t, 2, result.Stats.FilesChecked)
	assert.Equal(t, 1, result.ErrorCount)
	assert.Equal(t, 1, result.WarningCount)
	require.Len(t, result.Issues, 2)

	// Issues are sorted by position.
	assert.Equal(t, 2, result.Issues[0].Pos.Line)
	assert.Equal(t, 3, result.Issues[1].Pos.Line)

	assert.True(t, result.Failed(false))
	assert.True(t, result.Failed(true))
}

func TestLint_NoIssues(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "clean.css", ".a {\n    -fx-fill: #FF0000FF;\n}\n")

	result, err := Lint(Config{Patterns: []string{filepath.Join(dir, "**", "*.css")}})
	require.NoError(t, err)
	assert.Empty(t, result.Issues)
	assert.False(t, result.Failed(false))
	assert.False(t, result.Failed(true))
}

func TestLint_WarningsOnlyFailInStrictMode(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "warn.css", ".a {\n    color: red;\n}\n")

	result, err := Lint(Config{Patterns: []string{filepath.Join(dir, "*.css")}})
	require.NoError(t, err)
	assert.Equal(t, 0, result.ErrorCount)
	assert.Equal(t, 1, result.WarningCount)
	assert.False(t, result.Failed(false))
	assert.True(t, result.Failed(true))
}

func TestLint_MaxIssues(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "many.css", ".a {\n    a: 1;\n    b: 2;\n    c: 3;\n}\n")

	result, err := Lint(Config{
		Patterns:  []string{filepath.Join(dir, "*.css")},
		MaxIssues: 2,
	})
	require.NoError(t, err)
	assert.Len(t, result.Issues, 2)
	assert.Equal(t, 1, result.TruncatedCount)
}

func TestLint_NoMatches(t *testing.T) {
	dir := t.TempDir()
	result, err := Lint(Config{Patterns: []string{filepath.Join(dir, "*.css")}})
	require.NoError(t, err)
	assert.Empty(t, result.Issues)
	assert.Equal(t, 0, result.Stats.FilesDiscovered)
}
