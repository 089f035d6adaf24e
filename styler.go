package fxcss

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofxcss/fxcss/internal/args"
)

// Styler accumulates property/value pairs through chained setters and is
// finalized with Build. A styler is single-use by convention but Build
// does not consume it; it may keep accumulating afterwards.
//
// Setters validate their arguments. A failing setter records the error
// and leaves the property map untouched; the chain keeps flowing and the
// accumulated error surfaces from Err and Build. Stylers are not safe for
// concurrent use.
type Styler struct {
	kind  TargetKind
	props *propertyMap
	errs  []error
}

func newStyler(kind TargetKind) *Styler {
	return &Styler{kind: kind, props: newPropertyMap()}
}

// Kind returns the target kind the styler was created for.
func (s *Styler) Kind() TargetKind { return s.kind }

// Err returns the validation errors recorded so far, joined, or nil.
func (s *Styler) Err() error { return errors.Join(s.errs...) }

// Build snapshots the accumulated properties into an immutable
// Definition. The styler itself is left intact. If any setter failed,
// Build returns the definition built from the successful calls together
// with the accumulated error.
func (s *Styler) Build() (*Definition, error) {
	return &Definition{kind: s.kind, props: s.props.clone()}, s.Err()
}

// put records a property after its value has been formatted.
func (s *Styler) put(property, value string) *Styler {
	s.props.set(strings.TrimSpace(property), value)
	return s
}

func (s *Styler) fail(err error) *Styler {
	s.errs = append(s.errs, err)
	return s
}

// check records the first non-nil error and reports whether all passed.
func (s *Styler) check(errs ...error) bool {
	for _, err := range errs {
		if err != nil {
			s.fail(err)
			return false
		}
	}
	return true
}

// --- Node properties ---

// Opacity sets -fx-opacity. value must be in [0, 1].
func (s *Styler) Opacity(value float64) *Styler {
	if !s.check(args.InInterval(value, 0, 1, "value")) {
		return s
	}
	return s.put("-fx-opacity", formatMinimal(value))
}

// Rotate sets -fx-rotate to an angle in degrees.
func (s *Styler) Rotate(degrees float64) *Styler {
	if !s.check(args.Finite(degrees, "degrees")) {
		return s
	}
	return s.put("-fx-rotate", formatFixed(degrees))
}

// DropShadow sets -fx-effect to a drop shadow with three-pass-box blur
// and no spread. radius must be in [0, 127].
func (s *Styler) DropShadow(color Color, radius, offsetX, offsetY float64) *Styler {
	return s.DropShadowWith(ThreePassBox, color, radius, 0, offsetX, offsetY)
}

// DropShadowWith sets -fx-effect to a fully specified drop shadow.
// radius must be in [0, 127] and spread in [0, 1].
func (s *Styler) DropShadowWith(blur BlurType, color Color, radius, spread, offsetX, offsetY float64) *Styler {
	if !s.check(
		args.InInterval(radius, 0, 127, "radius"),
		args.InInterval(spread, 0, 1, "spread"),
		args.Finite(offsetX, "offsetX"),
		args.Finite(offsetY, "offsetY"),
	) {
		return s
	}
	shadow := DropShadow{Blur: blur, Color: color, Radius: radius, Spread: spread, OffsetX: offsetX, OffsetY: offsetY}
	return s.put("-fx-effect", CSSDropShadow(&shadow))
}

// Effect sets -fx-effect from a pre-built drop shadow.
func (s *Styler) Effect(shadow *DropShadow) *Styler {
	if shadow == nil {
		return s.fail(&args.ArgumentError{Name: "shadow", Constraint: "must not be nil"})
	}
	return s.put("-fx-effect", CSSDropShadow(shadow))
}

// InnerShadow sets -fx-effect to an inner shadow with three-pass-box blur
// and no choke. radius must be in [0, 127].
func (s *Styler) InnerShadow(color Color, radius, offsetX, offsetY float64) *Styler {
	return s.InnerShadowWith(ThreePassBox, color, radius, 0, offsetX, offsetY)
}

// InnerShadowWith sets -fx-effect to a fully specified inner shadow.
// radius must be in [0, 127] and choke in [0, 1].
func (s *Styler) InnerShadowWith(blur BlurType, color Color, radius, choke, offsetX, offsetY float64) *Styler {
	if !s.check(
		args.InInterval(radius, 0, 127, "radius"),
		args.InInterval(choke, 0, 1, "choke"),
		args.Finite(offsetX, "offsetX"),
		args.Finite(offsetY, "offsetY"),
	) {
		return s
	}
	shadow := InnerShadow{Blur: blur, Color: color, Radius: radius, Choke: choke, OffsetX: offsetX, OffsetY: offsetY}
	return s.put("-fx-effect", CSSInnerShadow(&shadow))
}

// InnerShadowEffect sets -fx-effect from a pre-built inner shadow.
func (s *Styler) InnerShadowEffect(shadow *InnerShadow) *Styler {
	if shadow == nil {
		return s.fail(&args.ArgumentError{Name: "shadow", Constraint: "must not be nil"})
	}
	return s.put("-fx-effect", CSSInnerShadow(shadow))
}

// Cursor sets -fx-cursor.
func (s *Styler) Cursor(cursor Cursor) *Styler {
	return s.put("-fx-cursor", cursor.CSS())
}

// Visibility sets the visibility property. A hidden node is not drawn
// but still occupies layout space.
func (s *Styler) Visibility(visible bool) *Styler {
	return s.put("visibility", strconv.FormatBool(visible))
}

// Custom sets an arbitrary property to a raw value string. It is the
// escape hatch for properties without a dedicated setter; the value is
// stored verbatim with no formatting or validation beyond non-emptiness.
func (s *Styler) Custom(property, value string) *Styler {
	if !s.check(
		args.NotEmpty(property, "property"),
		args.NotEmpty(value, "value"),
	) {
		return s
	}
	return s.put(property, value)
}

// --- Region properties ---

// BackgroundColor sets -fx-background-color. A nil paint renders as
// "transparent".
func (s *Styler) BackgroundColor(paint Paint) *Styler {
	return s.put("-fx-background-color", CSSPaint(paint))
}

// BackgroundRadius sets -fx-background-radius in pixels. Accepts one
// uniform radius or four per-corner radii.
func (s *Styler) BackgroundRadius(radii ...float64) *Styler {
	return s.BackgroundRadiusUnit(UnitPx, radii...)
}

// BackgroundRadiusUnit sets -fx-background-radius with an explicit unit.
func (s *Styler) BackgroundRadiusUnit(unit Unit, radii ...float64) *Styler {
	return s.lengthList("-fx-background-radius", unit, radii, "radii", 1, 4)
}

// BackgroundImage sets -fx-background-image to a url() reference.
func (s *Styler) BackgroundImage(url string) *Styler {
	if !s.check(args.NotEmpty(url, "url")) {
		return s
	}
	return s.put("-fx-background-image", CSSURL(url))
}

// BackgroundPosition sets -fx-background-position.
func (s *Styler) BackgroundPosition(position BackgroundPosition) *Styler {
	if !s.check(args.NotEmpty(string(position), "position")) {
		return s
	}
	return s.put("-fx-background-position", string(position))
}

// BackgroundRepeat sets -fx-background-repeat.
func (s *Styler) BackgroundRepeat(repeat BackgroundRepeat) *Styler {
	if !s.check(args.NotEmpty(string(repeat), "repeat")) {
		return s
	}
	return s.put("-fx-background-repeat", string(repeat))
}

// BackgroundSize sets -fx-background-size.
func (s *Styler) BackgroundSize(size BackgroundSize) *Styler {
	if !s.check(args.NotEmpty(string(size), "size")) {
		return s
	}
	return s.put("-fx-background-size", string(size))
}

// BorderColor sets -fx-border-color.
func (s *Styler) BorderColor(color Color) *Styler {
	return s.put("-fx-border-color", CSSColor(color))
}

// BorderStyle sets -fx-border-style.
func (s *Styler) BorderStyle(style BorderStyle) *Styler {
	return s.put("-fx-border-style", style.CSS())
}

// BorderWidth sets -fx-border-width in pixels. Accepts one uniform width
// or four per-edge widths.
func (s *Styler) BorderWidth(widths ...float64) *Styler {
	return s.BorderWidthUnit(UnitPx, widths...)
}

// BorderWidthUnit sets -fx-border-width with an explicit unit.
func (s *Styler) BorderWidthUnit(unit Unit, widths ...float64) *Styler {
	return s.lengthList("-fx-border-width", unit, widths, "widths", 1, 4)
}

// BorderRadius sets -fx-border-radius in pixels. Accepts one uniform
// radius or four per-corner radii.
func (s *Styler) BorderRadius(radii ...float64) *Styler {
	return s.BorderRadiusUnit(UnitPx, radii...)
}

// BorderRadiusUnit sets -fx-border-radius with an explicit unit.
func (s *Styler) BorderRadiusUnit(unit Unit, radii ...float64) *Styler {
	return s.lengthList("-fx-border-radius", unit, radii, "radii", 1, 4)
}

// Padding sets -fx-padding in pixels. Accepts one uniform value, a
// vertical/horizontal pair, or four per-edge values.
func (s *Styler) Padding(values ...float64) *Styler {
	return s.PaddingUnit(UnitPx, values...)
}

// PaddingUnit sets -fx-padding with an explicit unit.
func (s *Styler) PaddingUnit(unit Unit, values ...float64) *Styler {
	return s.lengthList("-fx-padding", unit, values, "values", 1, 2, 4)
}

// PaddingInsets sets -fx-padding from per-edge insets, in pixels.
func (s *Styler) PaddingInsets(insets Insets) *Styler {
	return s.Padding(insets.Top, insets.Right, insets.Bottom, insets.Left)
}

// ClipShape sets -fx-shape to quoted SVG path data, clipping the region
// to the path outline.
func (s *Styler) ClipShape(svgPath string) *Styler {
	if !s.check(args.NotEmpty(svgPath, "svgPath")) {
		return s
	}
	return s.put("-fx-shape", CSSPath(svgPath))
}

// ScaleShape sets -fx-scale-shape, controlling whether the clip shape
// scales with the region.
func (s *Styler) ScaleShape(scale bool) *Styler {
	return s.put("-fx-scale-shape", strconv.FormatBool(scale))
}

// PositionShape sets -fx-position-shape, controlling whether the clip
// shape is centered within the region.
func (s *Styler) PositionShape(position bool) *Styler {
	return s.put("-fx-position-shape", strconv.FormatBool(position))
}

// --- Shape properties ---

// Fill sets -fx-fill. A nil paint renders as "transparent".
func (s *Styler) Fill(paint Paint) *Styler {
	return s.put("-fx-fill", CSSPaint(paint))
}

// Smooth sets -fx-smooth, toggling shape antialiasing.
func (s *Styler) Smooth(smooth bool) *Styler {
	return s.put("-fx-smooth", strconv.FormatBool(smooth))
}

// Stroke sets -fx-stroke. A nil paint renders as "transparent".
func (s *Styler) Stroke(paint Paint) *Styler {
	return s.put("-fx-stroke", CSSPaint(paint))
}

// StrokeType sets -fx-stroke-type.
func (s *Styler) StrokeType(t StrokeType) *Styler {
	return s.put("-fx-stroke-type", t.CSS())
}

// StrokeWidth sets -fx-stroke-width in pixels.
func (s *Styler) StrokeWidth(width float64) *Styler {
	return s.StrokeWidthUnit(UnitPx, width)
}

// StrokeWidthUnit sets -fx-stroke-width with an explicit unit.
func (s *Styler) StrokeWidthUnit(unit Unit, width float64) *Styler {
	if !s.check(args.Finite(width, "width")) {
		return s
	}
	return s.put("-fx-stroke-width", CSSLength(unit, width))
}

// StrokeDashArray sets -fx-stroke-dash-array to a space-joined list of
// dash and gap lengths.
func (s *Styler) StrokeDashArray(dashes ...int) *Styler {
	return s.put("-fx-stroke-dash-array", CSSInts(dashes...))
}

// StrokeDashOffset sets -fx-stroke-dash-offset as a unit-less number.
func (s *Styler) StrokeDashOffset(offset float64) *Styler {
	if !s.check(args.Finite(offset, "offset")) {
		return s
	}
	return s.put("-fx-stroke-dash-offset", CSSLength(UnitNone, offset))
}

// StrokeLineCap sets -fx-stroke-line-cap.
func (s *Styler) StrokeLineCap(lineCap StrokeLineCap) *Styler {
	return s.put("-fx-stroke-line-cap", lineCap.CSS())
}

// StrokeLineJoin sets -fx-stroke-line-join.
func (s *Styler) StrokeLineJoin(join StrokeLineJoin) *Styler {
	return s.put("-fx-stroke-line-join", join.CSS())
}

// StrokeMiterLimit sets -fx-stroke-miter-limit. limit must be >= 1.
func (s *Styler) StrokeMiterLimit(limit float64) *Styler {
	if !s.check(args.AtLeast(limit, 1, "limit")) {
		return s
	}
	return s.put("-fx-stroke-miter-limit", CSSLength(UnitNone, limit))
}

// --- Text properties ---

// TextFill sets -fx-fill for text nodes. Text nodes are shapes, so the
// fill property doubles as the text color.
func (s *Styler) TextFill(paint Paint) *Styler {
	return s.Fill(paint)
}

// FontFamily sets -fx-font-family. Families containing spaces are
// double-quoted.
func (s *Styler) FontFamily(family string) *Styler {
	if !s.check(args.NotEmpty(family, "family")) {
		return s
	}
	family = strings.TrimSpace(family)
	if strings.Contains(family, " ") {
		family = `"` + family + `"`
	}
	return s.put("-fx-font-family", family)
}

// FontSize sets -fx-font-size in points.
func (s *Styler) FontSize(size float64) *Styler {
	return s.FontSizeUnit(UnitPt, size)
}

// FontSizeUnit sets -fx-font-size with an explicit unit.
func (s *Styler) FontSizeUnit(unit Unit, size float64) *Styler {
	if !s.check(args.Finite(size, "size")) {
		return s
	}
	return s.put("-fx-font-size", CSSLength(unit, size))
}

// FontWeight sets -fx-font-weight.
func (s *Styler) FontWeight(weight FontWeight) *Styler {
	return s.put("-fx-font-weight", weight.CSS())
}

// FontStyle sets -fx-font-style from a posture.
func (s *Styler) FontStyle(posture FontPosture) *Styler {
	return s.put("-fx-font-style", posture.CSS())
}

// Font is a shorthand applying the family, weight, posture and size of a
// font descriptor through their dedicated setters.
func (s *Styler) Font(font Font) *Styler {
	if !s.check(args.NotEmpty(font.Family, "font.Family")) {
		return s
	}
	return s.FontFamily(font.Family).
		FontWeight(font.Weight).
		FontStyle(font.Posture).
		FontSize(font.Size)
}

// FontSmoothing sets -fx-font-smoothing-type.
func (s *Styler) FontSmoothing(t FontSmoothing) *Styler {
	return s.put("-fx-font-smoothing-type", t.CSS())
}

// Underline sets -fx-underline.
func (s *Styler) Underline(underline bool) *Styler {
	return s.put("-fx-underline", strconv.FormatBool(underline))
}

// Strikethrough sets -fx-strikethrough.
func (s *Styler) Strikethrough(strikethrough bool) *Styler {
	return s.put("-fx-strikethrough", strconv.FormatBool(strikethrough))
}

// TextAlignment sets -fx-text-alignment.
func (s *Styler) TextAlignment(alignment TextAlignment) *Styler {
	return s.put("-fx-text-alignment", alignment.CSS())
}

// TextOrigin sets -fx-text-origin.
func (s *Styler) TextOrigin(origin TextOrigin) *Styler {
	if !s.check(args.NotEmpty(string(origin), "origin")) {
		return s
	}
	return s.put("-fx-text-origin", string(origin))
}

// lengthList validates and stores a multi-value length property.
// allowedCounts enumerates the accepted number of values (for example 1,
// 2 or 4 for padding).
func (s *Styler) lengthList(property string, unit Unit, values []float64, name string, allowedCounts ...int) *Styler {
	ok := false
	for _, n := range allowedCounts {
		if len(values) == n {
			ok = true
			break
		}
	}
	if !ok {
		return s.fail(&args.ArgumentError{
			Name:       name,
			Constraint: "must supply " + countsPhrase(allowedCounts) + " values",
		})
	}
	if !s.check(args.AllFinite(values, name)) {
		return s
	}
	if len(values) == 1 {
		return s.put(property, CSSLength(unit, values[0]))
	}
	return s.put(property, CSSLengths(unit, values...))
}

func countsPhrase(counts []int) string {
	parts := make([]string, len(counts))
	for i, n := range counts {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, " or ")
}
