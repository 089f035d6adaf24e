package theme

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTheme = `name: ocean
colors:
  primary: "#4682B4"
  ink: black
rules:
  - class: button
    target: region
    properties:
      background-color: primary
      padding: 8px 12px
      border-radius: 4px
  - class: button
    pseudo: hover
    target: region
    properties:
      background-color: lighten(primary, 0.2)
  - class: label
    target: text
    properties:
      text-fill: ink
      font-size: 12pt
      font-weight: bold
  - selector: ".card > .title"
    target: text
    properties:
      underline: "true"
`

func TestParse(t *testing.T) {
	doc, err := Parse([]byte(sampleTheme))
	require.NoError(t, err)

	assert.Equal(t, "ocean", doc.Name)
	assert.Len(t, doc.Colors, 2)
	require.Len(t, doc.Rules, 4)
	assert.Equal(t, "button", doc.Rules[0].Class)
	assert.Equal(t, "hover", doc.Rules[1].Pseudo)
	assert.Equal(t, ".card > .title", doc.Rules[3].Selector)
}

func TestParse_RequiresName(t *testing.T) {
	_, err := Parse([]byte("colors:\n  x: red\n"))
	assert.ErrorContains(t, err, "no name")
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte(":\n  - ]["))
	assert.Error(t, err)
}

func TestBuild(t *testing.T) {
	doc, err := Parse([]byte(sampleTheme))
	require.NoError(t, err)

	sheet, err := Build(doc)
	require.NoError(t, err)
	assert.Equal(t, 4, sheet.Len())

	out := sheet.Render()
	assert.Contains(t, out, ".button {\n")
	assert.Contains(t, out, "    -fx-background-color: #4682B4FF;\n")
	assert.Contains(t, out, "    -fx-padding: 8.00px 12.00px;\n")
	assert.Contains(t, out, "    -fx-border-radius: 4.00px;\n")
	assert.Contains(t, out, ".button:hover {\n")
	assert.Contains(t, out, ".label {\n")
	assert.Contains(t, out, "    -fx-fill: #000000FF;\n")
	assert.Contains(t, out, "    -fx-font-size: 12.00pt;\n")
	assert.Contains(t, out, "    -fx-font-weight: bold;\n")
	assert.Contains(t, out, ".card > .title {\n")
	assert.Contains(t, out, "    -fx-underline: true;\n")

	// The hover shade is lighter than the base.
	assert.NotContains(t, out, ".button:hover {\n    -fx-background-color: #4682B4FF;\n}")
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "unknown target",
			yaml:    "name: t\nrules:\n  - class: a\n    target: widget\n    properties:\n      opacity: \"0.5\"\n",
			wantErr: `unknown target "widget"`,
		},
		{
			name:    "unknown property",
			yaml:    "name: t\nrules:\n  - class: a\n    properties:\n      bogus: \"1\"\n",
			wantErr: "unknown property",
		},
		{
			name:    "bad palette color",
			yaml:    "name: t\ncolors:\n  primary: blurple\nrules:\n  - class: a\n    properties:\n      opacity: \"0.5\"\n",
			wantErr: `"blurple"`,
		},
		{
			name:    "unresolved color reference",
			yaml:    "name: t\nrules:\n  - class: a\n    target: shape\n    properties:\n      fill: primary\n",
			wantErr: `"primary"`,
		},
		{
			name:    "no properties",
			yaml:    "name: t\nrules:\n  - class: a\n",
			wantErr: "no properties",
		},
		{
			name:    "class and selector",
			yaml:    "name: t\nrules:\n  - class: a\n    selector: \".a\"\n    properties:\n      opacity: \"0.5\"\n",
			wantErr: "both a class and a selector",
		},
		{
			name:    "neither class nor selector",
			yaml:    "name: t\nrules:\n  - properties:\n      opacity: \"0.5\"\n",
			wantErr: "needs a class or a selector",
		},
		{
			name:    "setter validation",
			yaml:    "name: t\nrules:\n  - class: a\n    properties:\n      opacity: \"1.5\"\n",
			wantErr: "rule 1 (.a)",
		},
		{
			name:    "invalid class name",
			yaml:    "name: t\nrules:\n  - class: 1bad\n    properties:\n      opacity: \"0.5\"\n",
			wantErr: "className",
		},
		{
			name:    "derivation amount out of range",
			yaml:    "name: t\ncolors:\n  primary: red\nrules:\n  - class: a\n    target: shape\n    properties:\n      fill: lighten(primary, 7)\n",
			wantErr: "must be in [0, 1]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)
			_, err = Build(doc)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBuild_CustomPropertyPassthrough(t *testing.T) {
	yaml := "name: t\nrules:\n  - class: a\n    properties:\n      -fx-blend-mode: multiply\n"
	doc, err := Parse([]byte(yaml))
	require.NoError(t, err)

	sheet, err := Build(doc)
	require.NoError(t, err)
	assert.Contains(t, sheet.Render(), "    -fx-blend-mode: multiply;\n")
}

func TestLoadAndGenerate(t *testing.T) {
	dir := t.TempDir()
	themePath := filepath.Join(dir, "ocean.yaml")
	require.NoError(t, os.WriteFile(themePath, []byte(sampleTheme), 0o644))

	doc, err := Load(themePath)
	require.NoError(t, err)
	assert.Equal(t, "ocean", doc.Name)

	outPath := filepath.Join(dir, "out", "ocean.css")
	result, err := Generate(doc, outPath)
	require.NoError(t, err)
	assert.Equal(t, outPath, result.Path)
	assert.Equal(t, 4, result.Rules)

	content, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "/* theme: ocean */\n\n"))
	assert.Equal(t, result.Bytes, len(content))
	assert.Contains(t, string(content), ".button {\n")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
