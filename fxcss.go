// Package fxcss builds JavaFX CSS style strings from typed values.
//
// The package converts colors, gradients, fonts, effects and strokes into
// the exact token forms the JavaFX style parser expects, and accumulates
// them into immutable style definitions that render as inline style text
// or as class rule blocks.
//
// # Building a style
//
// A Styler collects property/value pairs through chained setters and is
// finalized with Build:
//
//	def, err := fxcss.ShapeStyle().
//		Fill(fxcss.RGB(255, 0, 0)).
//		StrokeWidth(2).
//		Opacity(0.8).
//		Build()
//
// Invalid arguments are recorded on the styler and surface from Build (or
// earlier via Err); a failed setter never mutates the property map.
//
// # Using a definition
//
// Definitions are immutable and safe for concurrent reads. They apply
// directly to any target with a SetStyle(string) method, merge with
// override-wins semantics, and render as rule blocks for stylesheet
// assembly:
//
//	def.Apply(node)
//	css, _ := def.ClassRule("accent-box")
package fxcss

// TargetKind tags which category of scene-graph node a style was built for.
// The kind does not restrict which properties may be set; it records intent
// so downstream tooling can group rules by target category.
type TargetKind int

const (
	// KindNode covers properties shared by every scene-graph node.
	KindNode TargetKind = iota
	// KindRegion covers layout containers with backgrounds and borders.
	KindRegion
	// KindPane is a Region specialization; styling surface is identical.
	KindPane
	// KindShape covers geometric shapes with fill and stroke.
	KindShape
	// KindText covers text nodes, which are shapes with font properties.
	KindText
)

// String returns the lowercase name of the target kind.
func (k TargetKind) String() string {
	switch k {
	case KindRegion:
		return "region"
	case KindPane:
		return "pane"
	case KindShape:
		return "shape"
	case KindText:
		return "text"
	default:
		return "node"
	}
}

// NodeStyle returns a styler for properties common to all nodes.
func NodeStyle() *Styler { return newStyler(KindNode) }

// RegionStyle returns a styler for Region nodes (backgrounds, borders,
// padding) in addition to the common node properties.
func RegionStyle() *Styler { return newStyler(KindRegion) }

// PaneStyle returns a styler for Pane nodes. Panes style exactly like
// regions; the kind tag differs for downstream grouping.
func PaneStyle() *Styler { return newStyler(KindPane) }

// ShapeStyle returns a styler for Shape nodes (fill, stroke) in addition
// to the common node properties.
func ShapeStyle() *Styler { return newStyler(KindShape) }

// TextStyle returns a styler for Text nodes. Text nodes are shapes, so the
// shape properties apply alongside the font and text properties.
func TextStyle() *Styler { return newStyler(KindText) }
