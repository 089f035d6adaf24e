package theme

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/gofxcss/fxcss"
)

// palette is the resolved color table of a document.
type palette map[string]fxcss.Color

func buildPalette(colors map[string]string) (palette, error) {
	p := make(palette, len(colors))
	for name, value := range colors {
		c, err := fxcss.ParseColor(value)
		if err != nil {
			return nil, fmt.Errorf("palette color %q: %w", name, err)
		}
		p[strings.ToLower(name)] = c
	}
	return p, nil
}

// derivePattern matches lighten(expr, amount) and darken(expr, amount).
var derivePattern = regexp.MustCompile(`^(lighten|darken)\(\s*(.+?)\s*,\s*([0-9.]+)\s*\)$`)

// resolve evaluates a color expression: a palette name, a color literal,
// or a lighten()/darken() derivation of another expression.
func (p palette) resolve(expr string) (fxcss.Color, error) {
	expr = strings.TrimSpace(expr)

	if m := derivePattern.FindStringSubmatch(expr); m != nil {
		base, err := p.resolve(m[2])
		if err != nil {
			return fxcss.Color{}, err
		}
		amount, err := strconv.ParseFloat(m[3], 64)
		if err != nil || amount < 0 || amount > 1 {
			return fxcss.Color{}, fmt.Errorf("%s amount %q must be in [0, 1]", m[1], m[3])
		}
		if m[1] == "lighten" {
			return base.Lighten(amount), nil
		}
		return base.Darken(amount), nil
	}

	if c, ok := p[strings.ToLower(expr)]; ok {
		return c, nil
	}
	return fxcss.ParseColor(expr)
}

var lengthPattern = regexp.MustCompile(`^(-?[0-9]+(?:\.[0-9]+)?)([a-z%]*)$`)

var unitSuffixes = map[string]fxcss.Unit{
	"":   fxcss.UnitPx,
	"px": fxcss.UnitPx,
	"em": fxcss.UnitEm,
	"ex": fxcss.UnitEx,
	"in": fxcss.UnitIn,
	"cm": fxcss.UnitCm,
	"mm": fxcss.UnitMm,
	"pt": fxcss.UnitPt,
	"pc": fxcss.UnitPc,
	"%":  fxcss.UnitPercent,
}

// parseLength parses a single magnitude with an optional unit suffix.
// A bare number is pixels.
func parseLength(value string) (fxcss.Unit, float64, error) {
	m := lengthPattern.FindStringSubmatch(strings.TrimSpace(value))
	if m == nil {
		return 0, 0, fmt.Errorf("invalid length %q", value)
	}
	unit, ok := unitSuffixes[m[2]]
	if !ok {
		return 0, 0, fmt.Errorf("unknown unit %q in %q", m[2], value)
	}
	magnitude, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid length %q", value)
	}
	return unit, magnitude, nil
}

// parseLengths parses a space-separated length list. Every entry must use
// the same unit.
func parseLengths(value string) (fxcss.Unit, []float64, error) {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return 0, nil, fmt.Errorf("empty length list")
	}

	unit, first, err := parseLength(fields[0])
	if err != nil {
		return 0, nil, err
	}
	values := []float64{first}

	for _, field := range fields[1:] {
		u, v, err := parseLength(field)
		if err != nil {
			return 0, nil, err
		}
		if u != unit {
			return 0, nil, fmt.Errorf("mixed units in %q", value)
		}
		values = append(values, v)
	}
	return unit, values, nil
}

var fontWeights = map[string]fxcss.FontWeight{
	"thin":       fxcss.WeightThin,
	"extralight": fxcss.WeightExtraLight,
	"light":      fxcss.WeightLight,
	"normal":     fxcss.WeightNormal,
	"medium":     fxcss.WeightMedium,
	"semibold":   fxcss.WeightSemiBold,
	"bold":       fxcss.WeightBold,
	"extrabold":  fxcss.WeightExtraBold,
	"black":      fxcss.WeightBlack,
}

func parseFontWeight(value string) (fxcss.FontWeight, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if w, ok := fontWeights[value]; ok {
		return w, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 100 || n > 900 {
		return 0, fmt.Errorf("invalid font weight %q", value)
	}
	return fxcss.FontWeight(n), nil
}

func parseFontPosture(value string) (fxcss.FontPosture, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "regular":
		return fxcss.PostureRegular, nil
	case "italic":
		return fxcss.PostureItalic, nil
	case "inherit":
		return fxcss.PostureInherit, nil
	default:
		return 0, fmt.Errorf("invalid font style %q", value)
	}
}

func parseAlignment(value string) (fxcss.TextAlignment, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "left":
		return fxcss.AlignLeft, nil
	case "center":
		return fxcss.AlignCenter, nil
	case "right":
		return fxcss.AlignRight, nil
	case "justify":
		return fxcss.AlignJustify, nil
	default:
		return 0, fmt.Errorf("invalid text alignment %q", value)
	}
}

var cursors = map[string]fxcss.Cursor{
	"default":   fxcss.CursorDefault,
	"crosshair": fxcss.CursorCrosshair,
	"hand":      fxcss.CursorHand,
	"move":      fxcss.CursorMove,
	"text":      fxcss.CursorText,
	"wait":      fxcss.CursorWait,
	"e-resize":  fxcss.CursorEResize,
	"w-resize":  fxcss.CursorWResize,
	"n-resize":  fxcss.CursorNResize,
	"s-resize":  fxcss.CursorSResize,
	"ne-resize": fxcss.CursorNEResize,
	"nw-resize": fxcss.CursorNWResize,
	"se-resize": fxcss.CursorSEResize,
	"sw-resize": fxcss.CursorSWResize,
	"h-resize":  fxcss.CursorHResize,
	"v-resize":  fxcss.CursorVResize,
}

func parseCursor(value string) (fxcss.Cursor, error) {
	if c, ok := cursors[strings.ToLower(strings.TrimSpace(value))]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("invalid cursor %q", value)
}

func parseBool(value string) (bool, error) {
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return false, fmt.Errorf("invalid boolean %q", value)
	}
	return b, nil
}

func parseFloat(value string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", value)
	}
	return f, nil
}
