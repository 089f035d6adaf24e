package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gofxcss/fxcss"
)

func TestCheckSource_CleanStylesheet(t *testing.T) {
	// A document the library itself renders must pass.
	button, err := fxcss.RegionStyle().
		BackgroundColor(fxcss.SteelBlue).
		Padding(8).
		BorderRadius(4).
		Build()
	require.NoError(t, err)

	hover, err := fxcss.RegionStyle().
		BackgroundColor(fxcss.SteelBlue.Lighten(0.2)).
		Build()
	require.NoError(t, err)

	sheet := fxcss.NewStylesheet()
	require.NoError(t, sheet.AddClass("button", button))
	require.NoError(t, sheet.AddPseudoClass("button", fxcss.PseudoHover, hover))

	issues := CheckSource(sheet.Render(), "app.css")
	assert.Empty(t, issues)
}

func TestCheckSource_UnknownProperty(t *testing.T) {
	content := ".button {\n    -fx-opacty: 0.5;\n}\n"

	issues := CheckSource(content, "app.css")
	require.Len(t, issues, 1)
	assert.Equal(t, SeverityError, issues[0].Severity)
	assert.Contains(t, issues[0].Text, `unknown JavaFX property "-fx-opacty"`)
	assert.Equal(t, "app.css", issues[0].Pos.Filename)
	assert.Equal(t, 2, issues[0].Pos.Line)
	assert.Equal(t, 5, issues[0].Pos.Column)
	require.Len(t, issues[0].SourceLines, 1)
	assert.Equal(t, "    -fx-opacty: 0.5;", issues[0].SourceLines[0])
}

func TestCheckSource_ForeignPropertyIsWarning(t *testing.T) {
	content := ".button {\n    color: red;\n}\n"

	issues := CheckSource(content, "app.css")
	require.Len(t, issues, 1)
	assert.Equal(t, SeverityWarning, issues[0].Severity)
	assert.Contains(t, issues[0].Text, `"color" is not a JavaFX style property`)
}

func TestCheckSource_VisibilityIsKnown(t *testing.T) {
	content := ".hidden {\n    visibility: hidden;\n}\n"
	assert.Empty(t, CheckSource(content, "app.css"))
}

func TestCheckSource_MalformedDeclarations(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		severity string
		text     string
	}{
		{
			name:     "missing colon",
			content:  ".a {\n    -fx-fill #FF0000FF;\n}\n",
			severity: SeverityError,
			text:     `declaration "-fx-fill" is missing ':'`,
		},
		{
			name:     "missing value",
			content:  ".a {\n    -fx-fill: ;\n}\n",
			severity: SeverityError,
			text:     `property "-fx-fill" has no value`,
		},
		{
			name:     "empty rule",
			content:  ".a {\n}\n",
			severity: SeverityWarning,
			text:     "empty rule",
		},
		{
			name:     "selector without block",
			content:  ".a;\n",
			severity: SeverityError,
			text:     "selector is not followed by a declaration block",
		},
		{
			name:     "class without identifier",
			content:  ". {\n    -fx-opacity: 0.5;\n}\n",
			severity: SeverityError,
			text:     "class selector is missing an identifier after '.'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := CheckSource(tt.content, "app.css")
			require.NotEmpty(t, issues)
			assert.Equal(t, tt.severity, issues[0].Severity)
			assert.Contains(t, issues[0].Text, tt.text)
		})
	}
}

func TestCheckSource_DuplicateProperty(t *testing.T) {
	content := ".a {\n    -fx-opacity: 0.5;\n    -fx-opacity: 0.7;\n}\n"

	issues := CheckSource(content, "app.css")
	require.Len(t, issues, 1)
	assert.Equal(t, SeverityWarning, issues[0].Severity)
	assert.Contains(t, issues[0].Text, `duplicate property "-fx-opacity"`)
	assert.Contains(t, issues[0].Text, "line 2")
	assert.Equal(t, 3, issues[0].Pos.Line)
}

func TestCheckSource_LastDeclarationWithoutSemicolon(t *testing.T) {
	content := ".a {\n    -fx-opacity: 0.5\n}\n"
	assert.Empty(t, CheckSource(content, "app.css"))
}

func TestCheckSource_MultipleRules(t *testing.T) {
	content := ".a {\n    -fx-fill: #FF0000FF;\n}\n\n.b {\n    -fx-strok: red;\n    color: red;\n}\n"

	issues := CheckSource(content, "app.css")
	require.Len(t, issues, 2)
	assert.Equal(t, SeverityError, issues[0].Severity)
	assert.Equal(t, 6, issues[0].Pos.Line)
	assert.Equal(t, SeverityWarning, issues[1].Severity)
	assert.Equal(t, 7, issues[1].Pos.Line)
}
