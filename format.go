package fxcss

import (
	"fmt"
	"strconv"
	"strings"
)

// This file is the value formatter: pure conversions from typed values to
// JavaFX CSS tokens. The output grammar is a textual contract consumed by
// the JavaFX style parser, so spacing, comma placement, casing and decimal
// precision are all fixed. Formatters never fail; undefined input degrades
// to a documented fallback token.

// CSSColor renders a color as an uppercase #RRGGBBAA token, or the
// "transparent" keyword for the fully transparent constant. Channels are
// scaled to 0-255 and truncated, not rounded.
func CSSColor(c Color) string {
	if c.IsTransparent() {
		return "transparent"
	}
	return fmt.Sprintf("#%02X%02X%02X%02X",
		int(c.R*255), int(c.G*255), int(c.B*255), int(c.A*255))
}

// CSSPaint renders any paint as a CSS token. A nil paint renders as
// "transparent".
func CSSPaint(p Paint) string {
	if p == nil {
		return "transparent"
	}
	return p.CSS()
}

// CSSLinearGradient renders a linear gradient in functional notation:
//
//	linear-gradient(from 0.00% 0.00% to 100.00% 100.00%, #FF0000FF 0.00%, #0000FFFF 100.00%)
//
// The cycle keyword ("repeat" or "reflect") follows the direction clause
// when set. Stops render in the order given. A nil gradient renders as
// "transparent".
func CSSLinearGradient(g *LinearGradient) string {
	if g == nil {
		return "transparent"
	}

	direction := fmt.Sprintf("from %.2f%% %.2f%% to %.2f%% %.2f%%",
		g.StartX*100, g.StartY*100, g.EndX*100, g.EndY*100)

	cycle := ""
	if kw := g.Cycle.CSS(); kw != "" {
		cycle = " " + kw
	}

	stops := make([]string, len(g.Stops))
	for i, stop := range g.Stops {
		stops[i] = fmt.Sprintf(" %s %.2f%%", CSSColor(stop.Color), stop.Offset*100)
	}

	return fmt.Sprintf("linear-gradient(%s%s,%s)", direction, cycle, strings.Join(stops, ","))
}

// CSSRadialGradient renders a radial gradient in functional notation:
//
//	radial-gradient(focus-angle 0.0deg, focus-distance 0.00%, center 50.0% 50.0%, radius 50.0%, #FF0000FF 0.0%, #0000FFFF 100.0%)
//
// The cycle keyword is inserted as its own comma-separated token before
// the stops when set, and omitted entirely otherwise. A nil gradient
// renders as "transparent".
func CSSRadialGradient(g *RadialGradient) string {
	if g == nil {
		return "transparent"
	}

	var sb strings.Builder
	sb.WriteString("radial-gradient(")
	fmt.Fprintf(&sb, "focus-angle %.1fdeg, ", g.FocusAngle)
	fmt.Fprintf(&sb, "focus-distance %.2f%%, ", g.FocusDistance)
	fmt.Fprintf(&sb, "center %.1f%% %.1f%%, ", g.CenterX*100, g.CenterY*100)
	fmt.Fprintf(&sb, "radius %.1f%%", g.Radius*100)

	if kw := g.Cycle.CSS(); kw != "" {
		sb.WriteString(", ")
		sb.WriteString(kw)
	}

	sb.WriteString(", ")
	stops := make([]string, len(g.Stops))
	for i, stop := range g.Stops {
		stops[i] = fmt.Sprintf("%s %.1f%%", CSSColor(stop.Color), stop.Offset*100)
	}
	sb.WriteString(strings.Join(stops, ", "))
	sb.WriteString(")")
	return sb.String()
}

// CSSDropShadow renders a drop shadow effect token. A nil shadow renders
// as "null".
func CSSDropShadow(s *DropShadow) string {
	if s == nil {
		return "null"
	}
	return fmt.Sprintf("dropshadow(%s, %s, %.2f, %.2f, %.2f, %.2f)",
		s.Blur.CSS(), CSSColor(s.Color), s.Radius, s.Spread, s.OffsetX, s.OffsetY)
}

// CSSInnerShadow renders an inner shadow effect token. A nil shadow
// renders as "null".
func CSSInnerShadow(s *InnerShadow) string {
	if s == nil {
		return "null"
	}
	return fmt.Sprintf("innershadow(%s, %s, %.2f, %.2f, %.2f, %.2f)",
		s.Blur.CSS(), CSSColor(s.Color), s.Radius, s.Choke, s.OffsetX, s.OffsetY)
}

// CSSLength renders a magnitude with two decimal places and the unit
// suffix (UnitNone contributes no suffix).
func CSSLength(unit Unit, v float64) string {
	return formatFixed(v) + unit.CSS()
}

// CSSLengths renders each value with CSSLength, space-joined.
func CSSLengths(unit Unit, values ...float64) string {
	if values == nil {
		return "null"
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = CSSLength(unit, v)
	}
	return strings.Join(parts, " ")
}

// CSSInts renders integers space-joined, as used by dash arrays.
func CSSInts(values ...int) string {
	if values == nil {
		return "null"
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}

// CSSPath renders SVG path data as a double-quoted literal. Blank input
// renders as the unquoted "null" token.
func CSSPath(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return "null"
	}
	return `"` + path + `"`
}

// CSSURL renders a resource location in url() notation. Blank input
// renders as "null".
func CSSURL(url string) string {
	url = strings.TrimSpace(url)
	if url == "" {
		return "null"
	}
	return `url("` + url + `")`
}

// formatFixed renders a float with exactly two decimal places and a '.'
// separator regardless of locale.
func formatFixed(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// formatMinimal renders a float with the shortest decimal representation
// that round-trips (0.5, not 0.50).
func formatMinimal(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
