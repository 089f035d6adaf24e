package lint

import (
	"fmt"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"

	"github.com/gofxcss/fxcss"
)

// checker walks the token stream of one stylesheet and records issues.
type checker struct {
	content  string
	filename string
	lines    []string
	issues   []Issue
}

// CheckSource verifies a stylesheet document: every rule must be
// well-formed, and every property must be one the fxcss styler emits.
// Unknown -fx- names are errors (they would be silently ignored at
// runtime); non-JavaFX property names are warnings.
func CheckSource(content, filename string) []Issue {
	c := &checker{
		content:  content,
		filename: filename,
		lines:    strings.Split(content, "\n"),
	}

	lexer := css.NewLexer(parse.NewInputString(content))
	offset := 0

	for {
		tt, data := lexer.Next()
		if tt == css.ErrorToken {
			break
		}

		switch {
		case tt == css.AtKeywordToken:
			offset = c.skipAtRule(lexer, offset+len(data))
			continue
		case tt == css.DelimToken && len(data) > 0 && data[0] == '.':
			offset = c.checkClassSelector(lexer, offset+len(data))
			continue
		case tt == css.LeftBraceToken:
			offset = c.checkDeclarations(lexer, offset+len(data))
			continue
		}

		offset += len(data)
	}

	return c.issues
}

// skipAtRule consumes an at-rule prelude. Block-less at-rules end at the
// semicolon; block at-rules hand their body to the declaration checker.
func (c *checker) skipAtRule(lexer *css.Lexer, offset int) int {
	for {
		tt, data := lexer.Next()
		if tt == css.ErrorToken {
			return offset
		}
		offset += len(data)
		if tt == css.SemicolonToken {
			return offset
		}
		if tt == css.LeftBraceToken {
			return c.checkDeclarations(lexer, offset)
		}
	}
}

// checkClassSelector verifies that a '.' delimiter is followed by an
// identifier, then scans forward to the declaration block.
func (c *checker) checkClassSelector(lexer *css.Lexer, offset int) int {
	tt, data := lexer.Next()
	if tt != css.IdentToken {
		c.report(SeverityError, offset, "class selector is missing an identifier after '.'")
		if tt == css.ErrorToken {
			return offset
		}
	}
	offset += len(data)

	for {
		tt, data := lexer.Next()
		if tt == css.ErrorToken {
			return offset
		}
		offset += len(data)
		if tt == css.LeftBraceToken {
			return c.checkDeclarations(lexer, offset)
		}
		if tt == css.SemicolonToken {
			c.report(SeverityError, offset-len(data), "selector is not followed by a declaration block")
			return offset
		}
	}
}

// checkDeclarations verifies the property declarations of one rule body.
func (c *checker) checkDeclarations(lexer *css.Lexer, offset int) int {
	var (
		prop       string
		propOffset int
		sawColon   bool
		valueCount int
		seen       = map[string]int{}
		declared   int
	)

	finish := func() {
		if prop == "" {
			return
		}
		declared++
		switch {
		case !sawColon:
			c.report(SeverityError, propOffset, fmt.Sprintf("declaration %q is missing ':'", prop))
		case valueCount == 0:
			c.report(SeverityError, propOffset, fmt.Sprintf("property %q has no value", prop))
		default:
			c.checkPropertyName(prop, propOffset)
			if prior, dup := seen[prop]; dup {
				priorLine, _ := c.position(prior)
				c.report(SeverityWarning, propOffset,
					fmt.Sprintf("duplicate property %q (first declared on line %d)", prop, priorLine))
			} else {
				seen[prop] = propOffset
			}
		}
		prop = ""
		sawColon = false
		valueCount = 0
	}

	for {
		tt, data := lexer.Next()
		if tt == css.ErrorToken {
			finish()
			return offset
		}

		switch {
		case tt == css.RightBraceToken:
			finish()
			offset += len(data)
			if declared == 0 {
				c.report(SeverityWarning, offset-len(data), "empty rule")
			}
			return offset
		case tt == css.SemicolonToken:
			finish()
		case tt == css.IdentToken && prop == "":
			prop = string(data)
			propOffset = offset
		case tt == css.ColonToken && prop != "":
			sawColon = true
		case tt == css.WhitespaceToken || tt == css.CommentToken:
			// not part of a value
		case prop != "" && sawColon:
			valueCount++
		}

		offset += len(data)
	}
}

// checkPropertyName flags property names the styler never emits.
func (c *checker) checkPropertyName(prop string, offset int) {
	if fxcss.KnownProperty(prop) {
		return
	}
	if strings.HasPrefix(prop, "-fx-") {
		c.report(SeverityError, offset,
			fmt.Sprintf("unknown JavaFX property %q", prop))
		return
	}
	c.report(SeverityWarning, offset,
		fmt.Sprintf("property %q is not a JavaFX style property", prop))
}

// report records an issue at a byte offset into the document.
func (c *checker) report(severity string, offset int, text string) {
	line, col := c.position(offset)

	var source []string
	if line-1 >= 0 && line-1 < len(c.lines) {
		source = []string{c.lines[line-1]}
	}

	c.issues = append(c.issues, Issue{
		FromLinter:  linterName,
		Text:        text,
		Severity:    severity,
		SourceLines: source,
		Pos: IssuePos{
			Filename: c.filename,
			Line:     line,
			Column:   col,
		},
	})
}

// position converts a byte offset into 1-based line and column numbers.
func (c *checker) position(offset int) (line, col int) {
	if offset > len(c.content) {
		offset = len(c.content)
	}
	line, col = 1, 1
	for _, r := range c.content[:offset] {
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}
