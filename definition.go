package fxcss

import (
	"regexp"
	"strings"

	"github.com/gofxcss/fxcss/internal/args"
)

// Styleable is the single capability a visual target must expose: accept
// raw style text. JavaFX-style scene graphs satisfy it via Node.setStyle.
type Styleable interface {
	SetStyle(style string)
}

// Property is one rendered property/value pair.
type Property struct {
	Name  string
	Value string
}

// classNamePattern restricts class names to a letter or underscore start
// followed by letters, digits, underscores and hyphens.
var classNamePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_-]*$`)

// Definition is an immutable snapshot of a built style. It renders as
// inline style text or rule blocks, merges with other definitions, and
// applies itself to styleable targets. Definitions are safe for
// concurrent read-only use.
type Definition struct {
	kind  TargetKind
	props *propertyMap
}

// Kind returns the target kind the definition was built for.
func (d *Definition) Kind() TargetKind { return d.kind }

// Len returns the number of properties.
func (d *Definition) Len() int { return d.props.len() }

// Get returns the formatted value for a property name.
func (d *Definition) Get(name string) (string, bool) {
	return d.props.get(name)
}

// Properties returns the property/value pairs in insertion order. The
// returned slice is a copy; the definition itself never changes.
func (d *Definition) Properties() []Property {
	out := make([]Property, 0, d.props.len())
	for _, k := range d.props.keys {
		out = append(out, Property{Name: k, Value: d.props.values[k]})
	}
	return out
}

// Apply renders the definition as inline style text and sets it on the
// target. A nil target is a no-op. The target is returned for chaining.
func (d *Definition) Apply(target Styleable) Styleable {
	if target != nil {
		target.SetStyle(d.Inline())
	}
	return target
}

// ApplyAll applies the definition to every non-nil target. The inline
// text is rendered once and reused. An empty definition or empty target
// list is a no-op.
func (d *Definition) ApplyAll(targets ...Styleable) {
	if len(targets) == 0 {
		return
	}
	style := d.Inline()
	if style == "" {
		return
	}
	for _, t := range targets {
		if t != nil {
			t.SetStyle(style)
		}
	}
}

// Merge returns a new definition overlaying other on top of d: for
// properties present in both, other's value wins; d's key order is
// preserved and other's exclusive keys are appended in their own order.
// Neither operand is mutated. The result keeps d's kind. A nil other
// yields a copy of d.
func (d *Definition) Merge(other *Definition) *Definition {
	merged := d.props.clone()
	if other != nil {
		for _, k := range other.props.keys {
			merged.set(k, other.props.values[k])
		}
	}
	return &Definition{kind: d.kind, props: merged}
}

// Inline renders the definition as inline style text:
//
//	-fx-fill: #FF0000FF; -fx-opacity: 0.5;
//
// An empty definition renders as the empty string.
func (d *Definition) Inline() string {
	if d.props.len() == 0 {
		return ""
	}
	parts := make([]string, 0, d.props.len())
	for _, k := range d.props.keys {
		parts = append(parts, k+": "+d.props.values[k]+";")
	}
	return strings.Join(parts, " ")
}

// Rule renders the definition as a rule block for the given selector:
//
//	.accent {
//	    -fx-fill: #FF0000FF;
//	}
//
// The selector is trimmed but not otherwise validated.
func (d *Definition) Rule(selector string) (string, error) {
	if err := args.NotEmpty(selector, "selector"); err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(strings.TrimSpace(selector))
	sb.WriteString(" {\n")
	for _, k := range d.props.keys {
		sb.WriteString("    ")
		sb.WriteString(k)
		sb.WriteString(": ")
		sb.WriteString(d.props.values[k])
		sb.WriteString(";\n")
	}
	sb.WriteString("}\n")
	return sb.String(), nil
}

// ClassRule renders the definition as a class rule. className must start
// with a letter or underscore and contain only letters, digits,
// underscores and hyphens.
func (d *Definition) ClassRule(className string) (string, error) {
	if err := validateClassName(className); err != nil {
		return "", err
	}
	return d.Rule("." + strings.TrimSpace(className))
}

// PseudoClassRule renders the definition as a pseudo-class rule such as
// ".button:hover { ... }". The class name is validated like ClassRule;
// the pseudo-class must be non-empty.
func (d *Definition) PseudoClassRule(className string, pseudo PseudoClass) (string, error) {
	if err := validateClassName(className); err != nil {
		return "", err
	}
	if err := args.NotEmpty(string(pseudo), "pseudo"); err != nil {
		return "", err
	}
	return d.Rule("." + strings.TrimSpace(className) + ":" + strings.TrimSpace(string(pseudo)))
}

// String renders the definition as inline style text.
func (d *Definition) String() string {
	return d.Inline()
}

func validateClassName(className string) error {
	if err := args.NotEmpty(className, "className"); err != nil {
		return err
	}
	return args.Matches(strings.TrimSpace(className), classNamePattern, "className")
}
