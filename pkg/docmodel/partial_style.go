package docmodel

// PartialStyle mirrors Style field-for-field but every field is optional.
// It is what a Stylesheet entry and a node's cascade accumulator are made
// of.
//
// A derive-macro-generated language would produce this shape mechanically
// from Style's definition; Go has no derive macros, so it is hand-written
// to mirror Style's shape exactly. The Merge/Inherit operators below are
// what such a macro would otherwise have generated.
type PartialStyle struct {
	Border        *PartialBorderStyle
	Font          *PartialFontStyle
	Color         *Color
	Margin        *PartialEdgeSizes
	Padding       *PartialEdgeSizes
	Background    *Color
	Flex          *PartialFlexStyle
	Width         *SizeValue
	Height        *SizeValue
	BreakBefore   *BreakRule
	BreakAfter    *BreakRule
	BreakInside   *BreakRule
	TextTransform *TextTransform
	LineHeight    **float64 // absent (nil) leaves the merged value alone; present-but-nil (*LineHeight == nil) sets it to unset
	Debug         *bool
}

// PartialEdgeSizes mirrors EdgeSizes with every edge optional.
type PartialEdgeSizes struct {
	Top, Right, Bottom, Left *float64
}

// PartialBorderRadius mirrors BorderRadius with every corner optional.
type PartialBorderRadius struct {
	TopLeft, TopRight, BottomRight, BottomLeft *float64
}

// PartialBorderStyle mirrors BorderStyle with every field optional.
type PartialBorderStyle struct {
	Width  *PartialEdgeSizes
	Color  *Color
	Radius *PartialBorderRadius
}

// PartialFontStyle mirrors FontStyle with every field optional. Family is
// left as a plain (possibly nil) slice rather than a pointer: an absent
// stack and an empty stack are the same "unset" state.
type PartialFontStyle struct {
	Family        []string
	Size          *float64
	Slant         *FontSlant
	Weight        *FontWeight
	LetterSpacing *float64
	Oblique       *bool
}

// PartialFlexStyle mirrors FlexStyle with every field optional.
type PartialFlexStyle struct {
	Direction  *FlexDirection
	Wrap       *FlexWrap
	AlignItems *AlignItems
	AlignSelf  *AlignSelf
	Grow       *float64
	Shrink     *float64
}

func f64p(v float64) *float64 { return &v }

// ToPartial converts a fully-resolved Style into an all-present
// PartialStyle, used when a node's resolved style must feed back in as an
// accumulator (e.g. tests that build a PartialStyle from known-good data).
func (s Style) ToPartial() PartialStyle {
	lineHeight := s.LineHeight
	return PartialStyle{
		Border: &PartialBorderStyle{
			Width: &PartialEdgeSizes{
				Top: f64p(s.Border.Width.Top), Right: f64p(s.Border.Width.Right),
				Bottom: f64p(s.Border.Width.Bottom), Left: f64p(s.Border.Width.Left),
			},
			Color: &s.Border.Color,
			Radius: &PartialBorderRadius{
				TopLeft: f64p(s.Border.Radius.TopLeft), TopRight: f64p(s.Border.Radius.TopRight),
				BottomRight: f64p(s.Border.Radius.BottomRight), BottomLeft: f64p(s.Border.Radius.BottomLeft),
			},
		},
		Font: &PartialFontStyle{
			Family: append([]string(nil), s.Font.Family...),
			Size:   f64p(s.Font.Size), Slant: &s.Font.Slant, Weight: &s.Font.Weight,
			LetterSpacing: f64p(s.Font.LetterSpacing), Oblique: &s.Font.Oblique,
		},
		Color:      &s.Color,
		Margin:     &PartialEdgeSizes{Top: f64p(s.Margin.Top), Right: f64p(s.Margin.Right), Bottom: f64p(s.Margin.Bottom), Left: f64p(s.Margin.Left)},
		Padding:    &PartialEdgeSizes{Top: f64p(s.Padding.Top), Right: f64p(s.Padding.Right), Bottom: f64p(s.Padding.Bottom), Left: f64p(s.Padding.Left)},
		Background: s.Background,
		Flex: &PartialFlexStyle{
			Direction: &s.Flex.Direction, Wrap: &s.Flex.Wrap, AlignItems: &s.Flex.AlignItems,
			AlignSelf: &s.Flex.AlignSelf, Grow: f64p(s.Flex.Grow), Shrink: f64p(s.Flex.Shrink),
		},
		Width: &s.Width, Height: &s.Height,
		BreakBefore: &s.BreakBefore, BreakAfter: &s.BreakAfter, BreakInside: &s.BreakInside,
		TextTransform: &s.TextTransform,
		LineHeight:    &lineHeight,
		Debug:         &s.Debug,
	}
}

func mergeEdges(l, r *PartialEdgeSizes) *PartialEdgeSizes {
	if l == nil {
		return r
	}
	if r == nil {
		return l
	}
	out := *l
	if r.Top != nil {
		out.Top = r.Top
	}
	if r.Right != nil {
		out.Right = r.Right
	}
	if r.Bottom != nil {
		out.Bottom = r.Bottom
	}
	if r.Left != nil {
		out.Left = r.Left
	}
	return &out
}

func mergeRadius(l, r *PartialBorderRadius) *PartialBorderRadius {
	if l == nil {
		return r
	}
	if r == nil {
		return l
	}
	out := *l
	if r.TopLeft != nil {
		out.TopLeft = r.TopLeft
	}
	if r.TopRight != nil {
		out.TopRight = r.TopRight
	}
	if r.BottomRight != nil {
		out.BottomRight = r.BottomRight
	}
	if r.BottomLeft != nil {
		out.BottomLeft = r.BottomLeft
	}
	return &out
}

func mergeBorder(l, r *PartialBorderStyle) *PartialBorderStyle {
	if l == nil {
		return r
	}
	if r == nil {
		return l
	}
	out := PartialBorderStyle{
		Width:  mergeEdges(l.Width, r.Width),
		Radius: mergeRadius(l.Radius, r.Radius),
		Color:  l.Color,
	}
	if r.Color != nil {
		out.Color = r.Color
	}
	return &out
}

func mergeFont(l, r *PartialFontStyle) *PartialFontStyle {
	if l == nil {
		return r
	}
	if r == nil {
		return l
	}
	out := *l
	if len(r.Family) > 0 {
		out.Family = r.Family
	}
	if r.Size != nil {
		out.Size = r.Size
	}
	if r.Slant != nil {
		out.Slant = r.Slant
	}
	if r.Weight != nil {
		out.Weight = r.Weight
	}
	if r.LetterSpacing != nil {
		out.LetterSpacing = r.LetterSpacing
	}
	if r.Oblique != nil {
		out.Oblique = r.Oblique
	}
	return &out
}

func mergeFlex(l, r *PartialFlexStyle) *PartialFlexStyle {
	if l == nil {
		return r
	}
	if r == nil {
		return l
	}
	out := *l
	if r.Direction != nil {
		out.Direction = r.Direction
	}
	if r.Wrap != nil {
		out.Wrap = r.Wrap
	}
	if r.AlignItems != nil {
		out.AlignItems = r.AlignItems
	}
	if r.AlignSelf != nil {
		out.AlignSelf = r.AlignSelf
	}
	if r.Grow != nil {
		out.Grow = r.Grow
	}
	if r.Shrink != nil {
		out.Shrink = r.Shrink
	}
	return &out
}

// Merge is the partial-over-partial operator: other wins wherever it sets
// a field, else the receiver's value carries through.
// Nested record properties (border, font, margin, padding, flex,
// border-radius) recurse field by field. Merge is associative but not
// commutative — p.Merge(q) need not equal q.Merge(p).
func (p PartialStyle) Merge(other PartialStyle) PartialStyle {
	out := PartialStyle{
		Border:        mergeBorder(p.Border, other.Border),
		Font:          mergeFont(p.Font, other.Font),
		Color:         p.Color,
		Margin:        mergeEdges(p.Margin, other.Margin),
		Padding:       mergeEdges(p.Padding, other.Padding),
		Background:    p.Background,
		Flex:          mergeFlex(p.Flex, other.Flex),
		Width:         p.Width,
		Height:        p.Height,
		BreakBefore:   p.BreakBefore,
		BreakAfter:    p.BreakAfter,
		BreakInside:   p.BreakInside,
		TextTransform: p.TextTransform,
		LineHeight:    p.LineHeight,
		Debug:         p.Debug,
	}
	if other.Color != nil {
		out.Color = other.Color
	}
	if other.Background != nil {
		out.Background = other.Background
	}
	if other.Width != nil {
		out.Width = other.Width
	}
	if other.Height != nil {
		out.Height = other.Height
	}
	if other.BreakBefore != nil {
		out.BreakBefore = other.BreakBefore
	}
	if other.BreakAfter != nil {
		out.BreakAfter = other.BreakAfter
	}
	if other.BreakInside != nil {
		out.BreakInside = other.BreakInside
	}
	if other.TextTransform != nil {
		out.TextTransform = other.TextTransform
	}
	if other.LineHeight != nil {
		out.LineHeight = other.LineHeight
	}
	if other.Debug != nil {
		out.Debug = other.Debug
	}
	return out
}

// Inherit is the parent-into-partial operator, applied to a child's
// partial style after its style-name references have been folded. Only font (every
// sub-field), color, and debug are inheritable; everything else is left as
// the child declared it.
func Inherit(parent, child PartialStyle) PartialStyle {
	out := child
	if child.Font == nil {
		out.Font = parent.Font
	} else if parent.Font != nil {
		merged := *parent.Font
		if len(child.Font.Family) > 0 {
			merged.Family = child.Font.Family
		}
		if child.Font.Size != nil {
			merged.Size = child.Font.Size
		}
		if child.Font.Slant != nil {
			merged.Slant = child.Font.Slant
		}
		if child.Font.Weight != nil {
			merged.Weight = child.Font.Weight
		}
		if child.Font.LetterSpacing != nil {
			merged.LetterSpacing = child.Font.LetterSpacing
		}
		if child.Font.Oblique != nil {
			merged.Oblique = child.Font.Oblique
		}
		out.Font = &merged
	}
	if child.Color == nil {
		out.Color = parent.Color
	}
	if child.Debug == nil {
		out.Debug = parent.Debug
	}
	return out
}

func edgesOr(p *PartialEdgeSizes, def EdgeSizes) EdgeSizes {
	out := def
	if p == nil {
		return out
	}
	if p.Top != nil {
		out.Top = *p.Top
	}
	if p.Right != nil {
		out.Right = *p.Right
	}
	if p.Bottom != nil {
		out.Bottom = *p.Bottom
	}
	if p.Left != nil {
		out.Left = *p.Left
	}
	return out
}

func radiusOr(p *PartialBorderRadius, def BorderRadius) BorderRadius {
	out := def
	if p == nil {
		return out
	}
	if p.TopLeft != nil {
		out.TopLeft = *p.TopLeft
	}
	if p.TopRight != nil {
		out.TopRight = *p.TopRight
	}
	if p.BottomRight != nil {
		out.BottomRight = *p.BottomRight
	}
	if p.BottomLeft != nil {
		out.BottomLeft = *p.BottomLeft
	}
	return out
}

// Resolve fills every field PartialStyle leaves unset from def, producing
// the node's fully-resolved Style.
func (p PartialStyle) Resolve(def Style) Style {
	out := def

	if p.Border != nil {
		out.Border.Width = edgesOr(p.Border.Width, def.Border.Width)
		out.Border.Radius = radiusOr(p.Border.Radius, def.Border.Radius)
		if p.Border.Color != nil {
			out.Border.Color = *p.Border.Color
		}
	}

	if p.Font != nil {
		if len(p.Font.Family) > 0 {
			out.Font.Family = p.Font.Family
		}
		if p.Font.Size != nil {
			out.Font.Size = *p.Font.Size
		}
		if p.Font.Slant != nil {
			out.Font.Slant = *p.Font.Slant
		}
		if p.Font.Weight != nil {
			out.Font.Weight = *p.Font.Weight
		}
		if p.Font.LetterSpacing != nil {
			out.Font.LetterSpacing = *p.Font.LetterSpacing
		}
		if p.Font.Oblique != nil {
			out.Font.Oblique = *p.Font.Oblique
		}
	}

	if p.Color != nil {
		out.Color = *p.Color
	}
	out.Margin = edgesOr(p.Margin, def.Margin)
	out.Padding = edgesOr(p.Padding, def.Padding)
	if p.Background != nil {
		out.Background = p.Background
	}

	if p.Flex != nil {
		if p.Flex.Direction != nil {
			out.Flex.Direction = *p.Flex.Direction
		}
		if p.Flex.Wrap != nil {
			out.Flex.Wrap = *p.Flex.Wrap
		}
		if p.Flex.AlignItems != nil {
			out.Flex.AlignItems = *p.Flex.AlignItems
		}
		if p.Flex.AlignSelf != nil {
			out.Flex.AlignSelf = *p.Flex.AlignSelf
		}
		if p.Flex.Grow != nil {
			out.Flex.Grow = *p.Flex.Grow
		}
		if p.Flex.Shrink != nil {
			out.Flex.Shrink = *p.Flex.Shrink
		}
	}

	if p.Width != nil {
		out.Width = *p.Width
	}
	if p.Height != nil {
		out.Height = *p.Height
	}
	if p.BreakBefore != nil {
		out.BreakBefore = *p.BreakBefore
	}
	if p.BreakAfter != nil {
		out.BreakAfter = *p.BreakAfter
	}
	if p.BreakInside != nil {
		out.BreakInside = *p.BreakInside
	}
	if p.TextTransform != nil {
		out.TextTransform = *p.TextTransform
	}
	if p.LineHeight != nil {
		out.LineHeight = *p.LineHeight
	}
	if p.Debug != nil {
		out.Debug = *p.Debug
	}

	return out
}
