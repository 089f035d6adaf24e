package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// GenerateResult reports what a generation run produced.
type GenerateResult struct {
	Path  string
	Rules int
	Bytes int
}

// Generate builds the document and writes the rendered stylesheet to
// outputPath, creating parent directories as needed. The file opens with
// a comment naming the theme.
func Generate(doc *Document, outputPath string) (*GenerateResult, error) {
	sheet, err := Build(doc)
	if err != nil {
		return nil, err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "/* theme: %s */\n\n", doc.Name)
	sb.WriteString(sheet.Render())

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating output directory: %w", err)
		}
	}

	content := sb.String()
	if err := os.WriteFile(outputPath, []byte(content), 0o644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", outputPath, err)
	}

	return &GenerateResult{
		Path:  outputPath,
		Rules: sheet.Len(),
		Bytes: len(content),
	}, nil
}
