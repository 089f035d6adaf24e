package lint

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Reporter formats lint results in golangci-lint style.
type Reporter struct {
	w               io.Writer
	useColors       bool
	printLines      bool
	printLinterName bool
}

// NewReporter creates a reporter with the given configuration.
func NewReporter(w io.Writer, config Config) *Reporter {
	return &Reporter{
		w:               w,
		useColors:       shouldUseColors(config),
		printLines:      config.PrintIssuedLines,
		printLinterName: config.PrintLinterName,
	}
}

// shouldUseColors determines whether colored output is enabled.
func shouldUseColors(config Config) bool {
	// Explicit flag wins
	if config.UseColors {
		return true
	}

	// FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, _ := os.Stdout.Stat(); (fileInfo.Mode() & os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// Print writes the issues followed by a summary line.
func (r *Reporter) Print(result *Result) {
	for _, issue := range result.Issues {
		r.printIssue(issue)
	}
	r.printSummary(result)
}

// printIssue formats a single issue: file:line:col: message (linter).
func (r *Reporter) printIssue(issue Issue) {
	location := fmt.Sprintf("%s:%d:%d:", issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column)

	linterSuffix := ""
	if r.printLinterName {
		linterSuffix = fmt.Sprintf(" (%s)", issue.FromLinter)
	}

	fmt.Fprintf(r.w, "%s %s%s\n",
		renderStyle(styleCyan, location, r.useColors),
		issue.Text,
		renderStyle(styleGray, linterSuffix, r.useColors))

	if r.printLines && len(issue.SourceLines) > 0 {
		for _, line := range issue.SourceLines {
			fmt.Fprintf(r.w, "\t%s\n", line)
		}

		caret := buildCaretIndicator(issue.SourceLines[0], issue.Pos.Column)
		fmt.Fprintf(r.w, "\t%s\n", renderStyle(styleYellow, caret, r.useColors))
	}
}

// buildCaretIndicator creates a "^" marker aligned with the issue column,
// preserving tabs in the prefix so alignment survives tab expansion.
func buildCaretIndicator(sourceLine string, column int) string {
	if column <= 0 {
		return "^"
	}

	prefixLen := column - 1
	if prefixLen > len(sourceLine) {
		prefixLen = len(sourceLine)
	}

	var padding strings.Builder
	for _, ch := range sourceLine[:prefixLen] {
		if ch == '\t' {
			padding.WriteRune('\t')
		} else {
			padding.WriteRune(' ')
		}
	}

	return padding.String() + "^"
}

// printSummary writes the closing count line.
func (r *Reporter) printSummary(result *Result) {
	if len(result.Issues) == 0 && result.TruncatedCount == 0 {
		fmt.Fprintf(r.w, "%s (%d files checked)\n",
			renderStyle(styleGreen, "no issues found", r.useColors),
			result.Stats.FilesChecked)
		return
	}

	fmt.Fprintln(r.w, "")
	total := len(result.Issues)
	switch {
	case result.TruncatedCount > 0:
		fmt.Fprintf(r.w, "%s (%s, %s; %s truncated)\n",
			pluralizeCount(total, "issue", "issues"),
			pluralizeCount(result.ErrorCount, "error", "errors"),
			pluralizeCount(result.WarningCount, "warning", "warnings"),
			pluralizeCount(result.TruncatedCount, "issue", "issues"))
	case result.ErrorCount > 0 && result.WarningCount > 0:
		fmt.Fprintf(r.w, "%s (%s, %s)\n",
			pluralizeCount(total, "issue", "issues"),
			pluralizeCount(result.ErrorCount, "error", "errors"),
			pluralizeCount(result.WarningCount, "warning", "warnings"))
	default:
		fmt.Fprintf(r.w, "%s\n", pluralizeCount(total, "issue", "issues"))
	}
}

// pluralizeCount formats a count with its singular or plural noun.
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// UseColors returns whether colors are enabled.
func (r *Reporter) UseColors() bool {
	return r.useColors
}
