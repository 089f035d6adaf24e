package fxcss

import (
	"io"
	"strings"

	"github.com/gofxcss/fxcss/internal/args"
)

// Stylesheet assembles definitions into a multi-rule stylesheet document.
// Rules render in insertion order. The stylesheet holds references to the
// definitions, which is safe because definitions are immutable.
type Stylesheet struct {
	rules []sheetRule
}

type sheetRule struct {
	selector string
	def      *Definition
}

// NewStylesheet returns an empty stylesheet.
func NewStylesheet() *Stylesheet {
	return &Stylesheet{}
}

// Len returns the number of rules added so far.
func (s *Stylesheet) Len() int { return len(s.rules) }

// AddRule appends a rule with a raw selector. The selector is trimmed
// but not validated beyond non-emptiness.
func (s *Stylesheet) AddRule(selector string, def *Definition) error {
	if err := args.NotEmpty(selector, "selector"); err != nil {
		return err
	}
	if def == nil {
		return &args.ArgumentError{Name: "def", Constraint: "must not be nil"}
	}
	s.rules = append(s.rules, sheetRule{selector: strings.TrimSpace(selector), def: def})
	return nil
}

// AddClass appends a class rule. className is validated like
// Definition.ClassRule.
func (s *Stylesheet) AddClass(className string, def *Definition) error {
	if err := validateClassName(className); err != nil {
		return err
	}
	return s.AddRule("."+strings.TrimSpace(className), def)
}

// AddPseudoClass appends a pseudo-class rule such as ".button:hover".
func (s *Stylesheet) AddPseudoClass(className string, pseudo PseudoClass, def *Definition) error {
	if err := validateClassName(className); err != nil {
		return err
	}
	if err := args.NotEmpty(string(pseudo), "pseudo"); err != nil {
		return err
	}
	selector := "." + strings.TrimSpace(className) + ":" + strings.TrimSpace(string(pseudo))
	return s.AddRule(selector, def)
}

// Render returns the stylesheet document: rule blocks separated by blank
// lines. An empty stylesheet renders as the empty string.
func (s *Stylesheet) Render() string {
	blocks := make([]string, 0, len(s.rules))
	for _, r := range s.rules {
		// Selectors were validated at add time; Rule cannot fail here.
		block, err := r.def.Rule(r.selector)
		if err != nil {
			continue
		}
		blocks = append(blocks, block)
	}
	return strings.Join(blocks, "\n")
}

// WriteTo writes the rendered document to w.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.Render())
	return int64(n), err
}
