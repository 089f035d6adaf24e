package fxcss

import (
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an RGBA color with channels normalized to [0, 1].
// The zero value is fully transparent black, which renders as the
// "transparent" keyword.
type Color struct {
	R, G, B, A float64
}

// Common colors. The names follow the JavaFX named-color palette.
var (
	Transparent = Color{}
	White       = RGB(255, 255, 255)
	Black       = RGB(0, 0, 0)
	Red         = RGB(255, 0, 0)
	Green       = RGB(0, 128, 0)
	Blue        = RGB(0, 0, 255)
	Yellow      = RGB(255, 255, 0)
	Orange      = RGB(255, 165, 0)
	Purple      = RGB(128, 0, 128)
	Gray        = RGB(128, 128, 128)
	DarkGray    = RGB(169, 169, 169)
	LightGray   = RGB(211, 211, 211)
	LightBlue   = RGB(173, 216, 230)
	SteelBlue   = RGB(70, 130, 180)
	Lime        = RGB(0, 255, 0)
	Cyan        = RGB(0, 255, 255)
	Magenta     = RGB(255, 0, 255)
)

var namedColors = map[string]Color{
	"transparent": Transparent,
	"white":       White,
	"black":       Black,
	"red":         Red,
	"green":       Green,
	"blue":        Blue,
	"yellow":      Yellow,
	"orange":      Orange,
	"purple":      Purple,
	"gray":        Gray,
	"grey":        Gray,
	"darkgray":    DarkGray,
	"darkgrey":    DarkGray,
	"lightgray":   LightGray,
	"lightgrey":   LightGray,
	"lightblue":   LightBlue,
	"steelblue":   SteelBlue,
	"lime":        Lime,
	"cyan":        Cyan,
	"magenta":     Magenta,
}

// RGB returns an opaque color from 0-255 channel values.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 1)
}

// RGBA returns a color from 0-255 channel values and a 0-1 alpha.
func RGBA(r, g, b uint8, alpha float64) Color {
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: clamp01(alpha),
	}
}

// NewColor returns a color from normalized [0, 1] channel values.
// Channels are clamped into range.
func NewColor(r, g, b, a float64) Color {
	return Color{R: clamp01(r), G: clamp01(g), B: clamp01(b), A: clamp01(a)}
}

// ParseColor parses a color from a hex token ("#RGB", "#RRGGBB",
// "#RRGGBBAA") or a named color ("steelblue"). Matching is
// case-insensitive.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		return Color{}, fmt.Errorf("unknown color %q", s)
	}

	hex := s
	alpha := 1.0
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:9], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("parsing color %q: %w", s, err)
		}
		alpha = float64(a) / 255
		hex = s[:7]
	}

	cf, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("parsing color %q: %w", s, err)
	}
	return Color{R: cf.R, G: cf.G, B: cf.B, A: alpha}, nil
}

// MustParseColor is ParseColor that panics on error, for use with
// known-good literals in variable initializers.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// IsTransparent reports whether the color is the fully transparent
// constant.
func (c Color) IsTransparent() bool {
	return c == Transparent
}

// WithAlpha returns a copy of the color with the given alpha.
func (c Color) WithAlpha(alpha float64) Color {
	c.A = clamp01(alpha)
	return c
}

// Lighten returns the color blended toward white by amount in [0, 1],
// interpolating in the CIE-L*a*b* space for perceptual uniformity.
func (c Color) Lighten(amount float64) Color {
	return c.Blend(White.WithAlpha(c.A), amount)
}

// Darken returns the color blended toward black by amount in [0, 1].
func (c Color) Darken(amount float64) Color {
	return c.Blend(Black.WithAlpha(c.A), amount)
}

// Blend interpolates between c and other in the CIE-L*a*b* space.
// t = 0 yields c, t = 1 yields other. Alpha interpolates linearly.
func (c Color) Blend(other Color, t float64) Color {
	t = clamp01(t)
	if t == 0 {
		return c
	}
	if t == 1 {
		return other
	}
	blended := c.colorful().BlendLab(other.colorful(), t).Clamped()
	return Color{
		R: blended.R,
		G: blended.G,
		B: blended.B,
		A: c.A + (other.A-c.A)*t,
	}
}

// CSS renders the color as a JavaFX CSS paint token, making Color a Paint.
func (c Color) CSS() string {
	return CSSColor(c)
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
