package lint

// Issue is a single stylesheet violation in golangci-lint format.
type Issue struct {
	FromLinter  string   `json:"FromLinter"`
	Text        string   `json:"Text"`
	Severity    string   `json:"Severity"`
	SourceLines []string `json:"SourceLines"`
	Pos         IssuePos `json:"Pos"`
}

// IssuePos is the exact location of an issue.
type IssuePos struct {
	Filename string `json:"Filename"`
	Line     int    `json:"Line"`
	Column   int    `json:"Column"` // 1-based
}

// Issue severities.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// linterName is the suffix shown after each issue.
const linterName = "fxlint"
