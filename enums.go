package fxcss

import "strconv"

// Unit is a CSS length unit. The zero value is pixels.
type Unit int

const (
	UnitPx Unit = iota
	UnitEm
	UnitEx
	UnitIn
	UnitCm
	UnitMm
	UnitPt
	UnitPc
	UnitPercent
	// UnitNone suppresses the unit suffix, for unit-less numbers such as
	// dash offsets and miter limits.
	UnitNone
)

// CSS returns the unit suffix appended to formatted magnitudes.
func (u Unit) CSS() string {
	switch u {
	case UnitEm:
		return "em"
	case UnitEx:
		return "ex"
	case UnitIn:
		return "in"
	case UnitCm:
		return "cm"
	case UnitMm:
		return "mm"
	case UnitPt:
		return "pt"
	case UnitPc:
		return "pc"
	case UnitPercent:
		return "%"
	case UnitNone:
		return ""
	default:
		return "px"
	}
}

// BorderStyle is the stroke style of a region border.
type BorderStyle int

const (
	BorderNone BorderStyle = iota
	BorderDotted
	BorderDashed
	BorderSolid
)

// CSS returns the border style keyword.
func (s BorderStyle) CSS() string {
	switch s {
	case BorderDotted:
		return "dotted"
	case BorderDashed:
		return "dashed"
	case BorderSolid:
		return "solid"
	default:
		return "none"
	}
}

// BackgroundPosition positions a background image within a region.
type BackgroundPosition string

const (
	PositionLeftTop      BackgroundPosition = "left top"
	PositionLeftCenter   BackgroundPosition = "left center"
	PositionLeftBottom   BackgroundPosition = "left bottom"
	PositionCenterTop    BackgroundPosition = "center top"
	PositionCenter       BackgroundPosition = "center center"
	PositionCenterBottom BackgroundPosition = "center bottom"
	PositionRightTop     BackgroundPosition = "right top"
	PositionRightCenter  BackgroundPosition = "right center"
	PositionRightBottom  BackgroundPosition = "right bottom"
	PositionLeft         BackgroundPosition = "left"
	PositionRight        BackgroundPosition = "right"
	PositionTop          BackgroundPosition = "top"
	PositionBottom       BackgroundPosition = "bottom"
)

// BackgroundRepeat controls background image tiling.
type BackgroundRepeat string

const (
	RepeatBoth    BackgroundRepeat = "repeat"
	RepeatNone    BackgroundRepeat = "no-repeat"
	RepeatX       BackgroundRepeat = "repeat-x"
	RepeatY       BackgroundRepeat = "repeat-y"
	RepeatSpace   BackgroundRepeat = "space"
	RepeatStretch BackgroundRepeat = "round"
)

// BackgroundSize controls background image scaling.
type BackgroundSize string

const (
	SizeAuto    BackgroundSize = "auto"
	SizeCover   BackgroundSize = "cover"
	SizeContain BackgroundSize = "contain"
)

// PseudoClass is a node state selector suffix, without the leading colon.
// Custom states can be expressed as PseudoClass("armed") and the like.
type PseudoClass string

const (
	PseudoHover    PseudoClass = "hover"
	PseudoFocused  PseudoClass = "focused"
	PseudoDisabled PseudoClass = "disabled"
	PseudoPressed  PseudoClass = "pressed"
	PseudoSelected PseudoClass = "selected"
)

// TextOrigin anchors text layout vertically.
type TextOrigin string

const (
	OriginBaseline TextOrigin = "baseline"
	OriginTop      TextOrigin = "top"
	OriginBottom   TextOrigin = "bottom"
)

// Cursor is a mouse cursor shape. The zero value renders as "null",
// which resets the property to its inherited value.
type Cursor int

const (
	CursorNone Cursor = iota
	CursorDefault
	CursorCrosshair
	CursorHand
	// CursorOpenHand and CursorClosedHand have no CSS keyword of their
	// own and render as "hand".
	CursorOpenHand
	CursorClosedHand
	CursorMove
	CursorText
	CursorWait
	CursorEResize
	CursorWResize
	CursorNResize
	CursorSResize
	CursorNEResize
	CursorNWResize
	CursorSEResize
	CursorSWResize
	CursorHResize
	CursorVResize
	// CursorDisappear has no CSS keyword and renders as "null".
	CursorDisappear
)

// CSS returns the cursor keyword.
func (c Cursor) CSS() string {
	switch c {
	case CursorDefault:
		return "default"
	case CursorCrosshair:
		return "crosshair"
	case CursorHand, CursorOpenHand, CursorClosedHand:
		return "hand"
	case CursorMove:
		return "move"
	case CursorText:
		return "text"
	case CursorWait:
		return "wait"
	case CursorEResize:
		return "e-resize"
	case CursorWResize:
		return "w-resize"
	case CursorNResize:
		return "n-resize"
	case CursorSResize:
		return "s-resize"
	case CursorNEResize:
		return "ne-resize"
	case CursorNWResize:
		return "nw-resize"
	case CursorSEResize:
		return "se-resize"
	case CursorSWResize:
		return "sw-resize"
	case CursorHResize:
		return "h-resize"
	case CursorVResize:
		return "v-resize"
	default:
		return "null"
	}
}

// FontWeight is a numeric font weight on the 100-900 scale. The zero
// value renders as "inherit".
type FontWeight int

const (
	WeightThin       FontWeight = 100
	WeightExtraLight FontWeight = 200
	WeightLight      FontWeight = 300
	WeightNormal     FontWeight = 400
	WeightMedium     FontWeight = 500
	WeightSemiBold   FontWeight = 600
	WeightBold       FontWeight = 700
	WeightExtraBold  FontWeight = 800
	WeightBlack      FontWeight = 900
)

// CSS returns the weight token: the "normal" and "bold" keywords for the
// two common levels, the three-digit value for the other named levels,
// and the raw numeric weight for anything else.
func (w FontWeight) CSS() string {
	switch w {
	case 0:
		return "inherit"
	case WeightNormal:
		return "normal"
	case WeightBold:
		return "bold"
	default:
		return strconv.Itoa(int(w))
	}
}

// FontPosture is the slant of a font. The zero value renders as "inherit".
type FontPosture int

const (
	PostureInherit FontPosture = iota
	PostureRegular
	PostureItalic
)

// CSS returns the posture keyword.
func (p FontPosture) CSS() string {
	switch p {
	case PostureRegular:
		return "regular"
	case PostureItalic:
		return "italic"
	default:
		return "inherit"
	}
}

// FontSmoothing selects the text antialiasing mode. The zero value is
// gray-scale smoothing, the JavaFX default.
type FontSmoothing int

const (
	SmoothingGray FontSmoothing = iota
	SmoothingLCD
)

// CSS returns the smoothing keyword.
func (s FontSmoothing) CSS() string {
	if s == SmoothingLCD {
		return "lcd"
	}
	return "gray"
}

// TextAlignment is horizontal text alignment. The zero value is left.
type TextAlignment int

const (
	AlignLeft TextAlignment = iota
	AlignCenter
	AlignRight
	AlignJustify
)

// CSS returns the alignment keyword.
func (a TextAlignment) CSS() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	case AlignJustify:
		return "justify"
	default:
		return "left"
	}
}

// StrokeType positions a stroke relative to the shape boundary. The zero
// value is centered, the JavaFX default.
type StrokeType int

const (
	StrokeCentered StrokeType = iota
	StrokeInside
	StrokeOutside
)

// CSS returns the stroke type keyword.
func (t StrokeType) CSS() string {
	switch t {
	case StrokeInside:
		return "inside"
	case StrokeOutside:
		return "outside"
	default:
		return "centered"
	}
}

// StrokeLineCap is the decoration at the ends of open strokes. The zero
// value is square, the JavaFX default.
type StrokeLineCap int

const (
	CapSquare StrokeLineCap = iota
	CapButt
	CapRound
)

// CSS returns the line cap keyword.
func (c StrokeLineCap) CSS() string {
	switch c {
	case CapButt:
		return "butt"
	case CapRound:
		return "round"
	default:
		return "square"
	}
}

// StrokeLineJoin is the decoration at stroke corners. The zero value is
// miter, the JavaFX default.
type StrokeLineJoin int

const (
	JoinMiter StrokeLineJoin = iota
	JoinBevel
	JoinRound
)

// CSS returns the line join keyword.
func (j StrokeLineJoin) CSS() string {
	switch j {
	case JoinBevel:
		return "bevel"
	case JoinRound:
		return "round"
	default:
		return "miter"
	}
}
