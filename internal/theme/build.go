package theme

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gofxcss/fxcss"
)

// Build assembles the document into a stylesheet. Within a rule,
// properties apply in sorted name order, since YAML mappings carry no
// reliable order of their own.
func Build(doc *Document) (*fxcss.Stylesheet, error) {
	pal, err := buildPalette(doc.Colors)
	if err != nil {
		return nil, err
	}

	sheet := fxcss.NewStylesheet()
	for i, rule := range doc.Rules {
		def, err := buildRule(rule, pal)
		if err != nil {
			return nil, fmt.Errorf("rule %d (%s): %w", i+1, ruleLabel(rule), err)
		}

		switch {
		case rule.Selector != "":
			err = sheet.AddRule(rule.Selector, def)
		case rule.Pseudo != "":
			err = sheet.AddPseudoClass(rule.Class, fxcss.PseudoClass(rule.Pseudo), def)
		default:
			err = sheet.AddClass(rule.Class, def)
		}
		if err != nil {
			return nil, fmt.Errorf("rule %d (%s): %w", i+1, ruleLabel(rule), err)
		}
	}
	return sheet, nil
}

// ruleLabel names a rule for error messages.
func ruleLabel(rule Rule) string {
	if rule.Selector != "" {
		return rule.Selector
	}
	if rule.Pseudo != "" {
		return "." + rule.Class + ":" + rule.Pseudo
	}
	return "." + rule.Class
}

func buildRule(rule Rule, pal palette) (*fxcss.Definition, error) {
	if rule.Class == "" && rule.Selector == "" {
		return nil, fmt.Errorf("rule needs a class or a selector")
	}
	if rule.Class != "" && rule.Selector != "" {
		return nil, fmt.Errorf("rule has both a class and a selector")
	}
	if len(rule.Properties) == 0 {
		return nil, fmt.Errorf("rule has no properties")
	}

	styler, err := stylerFor(rule.Target)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(rule.Properties))
	for name := range rule.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := applyProperty(styler, pal, name, rule.Properties[name]); err != nil {
			return nil, fmt.Errorf("property %q: %w", name, err)
		}
	}

	def, err := styler.Build()
	if err != nil {
		return nil, err
	}
	return def, nil
}

// stylerFor returns a styler tagged with the rule's target kind.
func stylerFor(target string) (*fxcss.Styler, error) {
	switch strings.ToLower(strings.TrimSpace(target)) {
	case "", "node":
		return fxcss.NodeStyle(), nil
	case "region":
		return fxcss.RegionStyle(), nil
	case "pane":
		return fxcss.PaneStyle(), nil
	case "shape":
		return fxcss.ShapeStyle(), nil
	case "text":
		return fxcss.TextStyle(), nil
	default:
		return nil, fmt.Errorf("unknown target %q", target)
	}
}

// applyProperty parses a value expression and routes it to the matching
// styler setter. Setter-level validation errors surface from Build.
func applyProperty(s *fxcss.Styler, pal palette, name, value string) error {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "opacity":
		v, err := parseFloat(value)
		if err != nil {
			return err
		}
		s.Opacity(v)
	case "rotate":
		v, err := parseFloat(value)
		if err != nil {
			return err
		}
		s.Rotate(v)
	case "cursor":
		c, err := parseCursor(value)
		if err != nil {
			return err
		}
		s.Cursor(c)
	case "visibility":
		v, err := parseVisibility(value)
		if err != nil {
			return err
		}
		s.Visibility(v)

	case "background-color":
		c, err := pal.resolve(value)
		if err != nil {
			return err
		}
		s.BackgroundColor(c)
	case "background-radius":
		unit, values, err := parseLengths(value)
		if err != nil {
			return err
		}
		s.BackgroundRadiusUnit(unit, values...)
	case "background-image":
		s.BackgroundImage(value)
	case "background-position":
		s.BackgroundPosition(fxcss.BackgroundPosition(value))
	case "background-repeat":
		s.BackgroundRepeat(fxcss.BackgroundRepeat(value))
	case "background-size":
		s.BackgroundSize(fxcss.BackgroundSize(value))
	case "border-color":
		c, err := pal.resolve(value)
		if err != nil {
			return err
		}
		s.BorderColor(c)
	case "border-style":
		style, err := parseBorderStyle(value)
		if err != nil {
			return err
		}
		s.BorderStyle(style)
	case "border-width":
		unit, values, err := parseLengths(value)
		if err != nil {
			return err
		}
		s.BorderWidthUnit(unit, values...)
	case "border-radius":
		unit, values, err := parseLengths(value)
		if err != nil {
			return err
		}
		s.BorderRadiusUnit(unit, values...)
	case "padding":
		unit, values, err := parseLengths(value)
		if err != nil {
			return err
		}
		s.PaddingUnit(unit, values...)
	case "shape":
		s.ClipShape(value)
	case "scale-shape":
		v, err := parseBool(value)
		if err != nil {
			return err
		}
		s.ScaleShape(v)

	case "fill":
		c, err := pal.resolve(value)
		if err != nil {
			return err
		}
		s.Fill(c)
	case "stroke":
		c, err := pal.resolve(value)
		if err != nil {
			return err
		}
		s.Stroke(c)
	case "stroke-width":
		unit, v, err := parseLength(value)
		if err != nil {
			return err
		}
		s.StrokeWidthUnit(unit, v)
	case "stroke-dash-offset":
		v, err := parseFloat(value)
		if err != nil {
			return err
		}
		s.StrokeDashOffset(v)
	case "stroke-miter-limit":
		v, err := parseFloat(value)
		if err != nil {
			return err
		}
		s.StrokeMiterLimit(v)
	case "smooth":
		v, err := parseBool(value)
		if err != nil {
			return err
		}
		s.Smooth(v)

	case "text-fill":
		c, err := pal.resolve(value)
		if err != nil {
			return err
		}
		s.TextFill(c)
	case "font-family":
		s.FontFamily(value)
	case "font-size":
		unit, v, err := parseLength(value)
		if err != nil {
			return err
		}
		s.FontSizeUnit(unit, v)
	case "font-weight":
		w, err := parseFontWeight(value)
		if err != nil {
			return err
		}
		s.FontWeight(w)
	case "font-style":
		p, err := parseFontPosture(value)
		if err != nil {
			return err
		}
		s.FontStyle(p)
	case "text-alignment":
		a, err := parseAlignment(value)
		if err != nil {
			return err
		}
		s.TextAlignment(a)
	case "underline":
		v, err := parseBool(value)
		if err != nil {
			return err
		}
		s.Underline(v)
	case "strikethrough":
		v, err := parseBool(value)
		if err != nil {
			return err
		}
		s.Strikethrough(v)

	default:
		if strings.HasPrefix(name, "-fx-") {
			s.Custom(name, value)
			return nil
		}
		return fmt.Errorf("unknown property")
	}
	return nil
}

func parseBorderStyle(value string) (fxcss.BorderStyle, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "none":
		return fxcss.BorderNone, nil
	case "dotted":
		return fxcss.BorderDotted, nil
	case "dashed":
		return fxcss.BorderDashed, nil
	case "solid":
		return fxcss.BorderSolid, nil
	default:
		return 0, fmt.Errorf("invalid border style %q", value)
	}
}

// parseVisibility accepts booleans plus the visible/hidden keywords.
func parseVisibility(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "visible":
		return true, nil
	case "hidden":
		return false, nil
	}
	return parseBool(value)
}
