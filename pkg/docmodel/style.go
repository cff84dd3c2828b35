package docmodel

// Color is an RGBA color in the 0-255 channel range.
type Color struct {
	R, G, B, A uint8
}

// FontSlant enumerates the slant axis of a font.
type FontSlant int

const (
	SlantNormal FontSlant = iota
	SlantItalic
)

// FontWeight is a CSS-style numeric weight; Regular and Bold are the two
// named defaults.
type FontWeight int

const (
	WeightRegular FontWeight = 400
	WeightBold    FontWeight = 700
)

// FlexDirection is the axis a Container's children are laid out along.
type FlexDirection int

const (
	FlexColumn FlexDirection = iota
	FlexRow
)

// FlexWrap controls whether a flex line wraps onto multiple lines.
type FlexWrap int

const (
	NoWrap FlexWrap = iota
	Wrap
)

// AlignItems positions children along the cross axis.
type AlignItems int

const (
	AlignStretch AlignItems = iota
	AlignFlexStart
	AlignFlexEnd
	AlignCenter
)

// AlignSelf overrides AlignItems for one child; AlignSelfAuto defers to
// the parent's AlignItems.
type AlignSelf int

const (
	AlignSelfAuto AlignSelf = iota
	AlignSelfStretch
	AlignSelfFlexStart
	AlignSelfFlexEnd
	AlignSelfCenter
)

// BreakRule is one of the three page-break rules a node can declare.
type BreakRule int

const (
	BreakAuto BreakRule = iota
	BreakAvoid
	BreakAlways
)

// TextTransform enumerates the text-transform property.
type TextTransform int

const (
	TransformNone TextTransform = iota
	TransformUppercase
	TransformLowercase
	TransformCapitalize
)

// EdgeSizes is a fully-resolved four-edge measurement (margin, padding, or
// border width), in points.
type EdgeSizes struct {
	Top, Right, Bottom, Left float64
}

// BorderRadius is a fully-resolved per-corner radius, in points.
type BorderRadius struct {
	TopLeft, TopRight, BottomRight, BottomLeft float64
}

// BorderStyle is the fully-resolved border record: per-edge width, color,
// per-corner radius.
type BorderStyle struct {
	Width  EdgeSizes
	Color  Color
	Radius BorderRadius
}

// FontStyle is the fully-resolved font record. Family is a stack (most
// preferred first) so font lookup can fall through it; Oblique flags a
// synthetic-italic rendering when no true italic face is registered.
type FontStyle struct {
	Family        []string
	Size          float64
	Slant         FontSlant
	Weight        FontWeight
	LetterSpacing float64
	Oblique       bool
}

// FlexStyle is the fully-resolved flex record.
type FlexStyle struct {
	Direction  FlexDirection
	Wrap       FlexWrap
	AlignItems AlignItems
	AlignSelf  AlignSelf
	Grow       float64
	Shrink     float64
}

// SizeValue is either an explicit point value or "auto".
type SizeValue struct {
	Auto  bool
	Value float64
}

// Auto is the canonical auto-sized SizeValue.
func Auto() SizeValue { return SizeValue{Auto: true} }

// Sized returns an explicit-valued SizeValue.
func Sized(v float64) SizeValue { return SizeValue{Value: v} }

// Style is a record with fully-resolved values for every style property a
// node can declare. It is the product of cascade, merge, and defaulting.
type Style struct {
	Border        BorderStyle
	Font          FontStyle
	Color         Color
	Margin        EdgeSizes
	Padding       EdgeSizes
	Background    *Color // nil means no background
	Flex          FlexStyle
	Width         SizeValue
	Height        SizeValue
	BreakBefore   BreakRule
	BreakAfter    BreakRule
	BreakInside   BreakRule
	TextTransform TextTransform
	LineHeight    *float64 // nil means unset; shaper falls back to font metrics
	Debug         bool
}

// DefaultStyle is the fixed default Style record used to fill any field a
// partial style leaves unset.
func DefaultStyle() Style {
	return Style{
		Border: BorderStyle{},
		Font: FontStyle{
			Family: []string{"sans-serif"},
			Size:   12,
			Slant:  SlantNormal,
			Weight: WeightRegular,
		},
		Color:      Color{R: 0, G: 0, B: 0, A: 255},
		Background: nil,
		Flex: FlexStyle{
			Direction:  FlexColumn,
			Wrap:       NoWrap,
			AlignItems: AlignStretch,
			AlignSelf:  AlignSelfAuto,
			Grow:       0,
			Shrink:     1,
		},
		Width:         Auto(),
		Height:        Auto(),
		BreakBefore:   BreakAuto,
		BreakAfter:    BreakAuto,
		BreakInside:   BreakAuto,
		TextTransform: TransformNone,
		LineHeight:    nil,
		Debug:         false,
	}
}
