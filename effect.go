package fxcss

// BlurType selects the algorithm used to blur a shadow. The zero value is
// ThreePassBox, the JavaFX default.
type BlurType int

const (
	ThreePassBox BlurType = iota
	OnePassBox
	TwoPassBox
	Gaussian
)

// CSS returns the lowercase hyphenated blur keyword.
func (t BlurType) CSS() string {
	switch t {
	case OnePassBox:
		return "one-pass-box"
	case TwoPassBox:
		return "two-pass-box"
	case Gaussian:
		return "gaussian"
	default:
		return "three-pass-box"
	}
}

// DropShadow is an outer shadow effect. Radius is the blur radius in
// [0, 127]; Spread in [0, 1] is the proportion of the shadow that is
// opaque before blurring begins.
type DropShadow struct {
	Blur    BlurType
	Color   Color
	Radius  float64
	Spread  float64
	OffsetX float64
	OffsetY float64
}

// InnerShadow is an inner shadow effect. Choke in [0, 1] plays the role
// Spread plays for DropShadow.
type InnerShadow struct {
	Blur    BlurType
	Color   Color
	Radius  float64
	Choke   float64
	OffsetX float64
	OffsetY float64
}
