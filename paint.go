package fxcss

// Paint is a visual fill: a solid color or a gradient. Implementations
// render themselves as a JavaFX CSS paint token via CSS. External paint
// types may implement Paint to supply their own token; the library does
// not validate foreign tokens.
type Paint interface {
	CSS() string
}

// CycleMethod controls how a gradient continues past its defined stops.
type CycleMethod int

const (
	// NoCycle pads with the terminal stop colors.
	NoCycle CycleMethod = iota
	// CycleRepeat restarts the stop sequence.
	CycleRepeat
	// CycleReflect mirrors the stop sequence.
	CycleReflect
)

// CSS returns the gradient cycle keyword, or the empty string for NoCycle.
func (m CycleMethod) CSS() string {
	switch m {
	case CycleRepeat:
		return "repeat"
	case CycleReflect:
		return "reflect"
	default:
		return ""
	}
}

// Stop is a single gradient color stop. Offset is a fraction in [0, 1]
// along the gradient axis.
type Stop struct {
	Offset float64
	Color  Color
}

// LinearGradient describes a linear gradient between two points in the
// unit square. Stops render in the order given; they are not sorted.
type LinearGradient struct {
	StartX, StartY float64
	EndX, EndY     float64
	Cycle          CycleMethod
	Stops          []Stop
}

// NewLinearGradient returns a linear gradient from (startX, startY) to
// (endX, endY), with coordinates as fractions of the filled area.
func NewLinearGradient(startX, startY, endX, endY float64, cycle CycleMethod, stops ...Stop) *LinearGradient {
	return &LinearGradient{
		StartX: startX,
		StartY: startY,
		EndX:   endX,
		EndY:   endY,
		Cycle:  cycle,
		Stops:  stops,
	}
}

// CSS renders the gradient in JavaFX linear-gradient functional notation.
func (g *LinearGradient) CSS() string {
	return CSSLinearGradient(g)
}

// RadialGradient describes a radial gradient. Center coordinates and the
// radius are fractions of the filled area; FocusAngle is in degrees and
// FocusDistance is a fraction of the radius.
type RadialGradient struct {
	FocusAngle    float64
	FocusDistance float64
	CenterX       float64
	CenterY       float64
	Radius        float64
	Cycle         CycleMethod
	Stops         []Stop
}

// NewRadialGradient returns a radial gradient centered at (centerX,
// centerY) with the given radius, all as fractions of the filled area.
func NewRadialGradient(centerX, centerY, radius float64, cycle CycleMethod, stops ...Stop) *RadialGradient {
	return &RadialGradient{
		CenterX: centerX,
		CenterY: centerY,
		Radius:  radius,
		Cycle:   cycle,
		Stops:   stops,
	}
}

// CSS renders the gradient in JavaFX radial-gradient functional notation.
func (g *RadialGradient) CSS() string {
	return CSSRadialGradient(g)
}

// Ramp builds n evenly spaced stops blending from start to end in the
// CIE-L*a*b* space. n must be at least 2; smaller values yield the two
// endpoint stops.
func Ramp(start, end Color, n int) []Stop {
	if n < 2 {
		n = 2
	}
	stops := make([]Stop, n)
	for i := range stops {
		t := float64(i) / float64(n-1)
		stops[i] = Stop{Offset: t, Color: start.Blend(end, t)}
	}
	return stops
}
