// Package lint verifies JavaFX stylesheet files: rule structure and the
// property vocabulary the fxcss styler emits.
package lint

import (
	"fmt"
	"os"
	"sort"
)

// Config controls a lint run.
type Config struct {
	// Patterns are doublestar globs selecting the stylesheet files.
	Patterns []string
	// MaxIssues caps the reported issues; 0 means unlimited.
	MaxIssues int
	// Strict promotes warnings to build failures.
	Strict bool

	// Reporter options.
	PrintIssuedLines bool
	PrintLinterName  bool
	UseColors        bool
}

// Result aggregates the issues of one lint run.
type Result struct {
	Issues         []Issue
	Stats          ScanStats
	ErrorCount     int
	WarningCount   int
	TruncatedCount int
}

// Failed reports whether the run should fail the build: any error, or any
// issue at all in strict mode.
func (r *Result) Failed(strict bool) bool {
	if strict {
		return len(r.Issues) > 0 || r.TruncatedCount > 0
	}
	return r.ErrorCount > 0
}

// Lint checks every stylesheet file matched by the config patterns.
func Lint(config Config) (*Result, error) {
	files, stats, err := expandGlobPatterns(config.Patterns)
	if err != nil {
		return nil, fmt.Errorf("expanding patterns: %w", err)
	}

	result := &Result{Stats: stats}
	for _, path := range files {
		// #nosec G304 - path comes from trusted configuration
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		result.Issues = append(result.Issues, CheckSource(string(content), path)...)
	}

	sortIssues(result.Issues)

	if config.MaxIssues > 0 && len(result.Issues) > config.MaxIssues {
		result.TruncatedCount = len(result.Issues) - config.MaxIssues
		result.Issues = result.Issues[:config.MaxIssues]
	}

	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityError:
			result.ErrorCount++
		case SeverityWarning:
			result.WarningCount++
		}
	}

	return result, nil
}

// sortIssues orders issues by file, then line, then column.
func sortIssues(issues []Issue) {
	sort.Slice(issues, func(i, j int) bool {
		if issues[i].Pos.Filename != issues[j].Pos.Filename {
			return issues[i].Pos.Filename < issues[j].Pos.Filename
		}
		if issues[i].Pos.Line != issues[j].Pos.Line {
			return issues[i].Pos.Line < issues[j].Pos.Line
		}
		return issues[i].Pos.Column < issues[j].Pos.Column
	})
}
