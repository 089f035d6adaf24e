package fxcss

// Font is a complete font descriptor. Size is in points unless applied
// with an explicit unit.
type Font struct {
	Family  string
	Size    float64
	Weight  FontWeight
	Posture FontPosture
}

// NewFont returns a font with normal weight and regular posture.
func NewFont(family string, size float64) Font {
	return Font{Family: family, Size: size, Weight: WeightNormal, Posture: PostureRegular}
}

// Insets are per-edge lengths in pixels, in the CSS top/right/bottom/left
// order.
type Insets struct {
	Top, Right, Bottom, Left float64
}

// UniformInsets returns insets with the same length on every edge.
func UniformInsets(v float64) Insets {
	return Insets{Top: v, Right: v, Bottom: v, Left: v}
}
