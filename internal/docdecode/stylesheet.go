package docdecode

import (
	"encoding/json"
	"fmt"

	"github.com/inkfold/docrender/pkg/docmodel"
)

// jsonEdges mirrors docmodel.PartialEdgeSizes' wire shape: every edge is an
// optional length literal. Per spec.md §6, unset fields are omitted
// entirely rather than represented as explicit nulls, so every field here
// is a pointer to a string literal.
type jsonEdges struct {
	Top    *string `json:"top,omitempty"`
	Right  *string `json:"right,omitempty"`
	Bottom *string `json:"bottom,omitempty"`
	Left   *string `json:"left,omitempty"`
}

func (e *jsonEdges) toPartial() (*docmodel.PartialEdgeSizes, error) {
	if e == nil {
		return nil, nil
	}
	out := &docmodel.PartialEdgeSizes{}
	for _, f := range []struct {
		lit **string
		dst **float64
	}{{&e.Top, &out.Top}, {&e.Right, &out.Right}, {&e.Bottom, &out.Bottom}, {&e.Left, &out.Left}} {
		if *f.lit == nil {
			continue
		}
		v, err := parseLength(**f.lit)
		if err != nil {
			return nil, err
		}
		*f.dst = &v
	}
	return out, nil
}

type jsonRadius struct {
	TopLeft     *string `json:"topLeft,omitempty"`
	TopRight    *string `json:"topRight,omitempty"`
	BottomRight *string `json:"bottomRight,omitempty"`
	BottomLeft  *string `json:"bottomLeft,omitempty"`
}

func (r *jsonRadius) toPartial() (*docmodel.PartialBorderRadius, error) {
	if r == nil {
		return nil, nil
	}
	out := &docmodel.PartialBorderRadius{}
	for _, f := range []struct {
		lit **string
		dst **float64
	}{{&r.TopLeft, &out.TopLeft}, {&r.TopRight, &out.TopRight}, {&r.BottomRight, &out.BottomRight}, {&r.BottomLeft, &out.BottomLeft}} {
		if *f.lit == nil {
			continue
		}
		v, err := parseLength(**f.lit)
		if err != nil {
			return nil, err
		}
		*f.dst = &v
	}
	return out, nil
}

type jsonBorder struct {
	Width  *jsonEdges  `json:"width,omitempty"`
	Color  *string     `json:"color,omitempty"`
	Radius *jsonRadius `json:"radius,omitempty"`
}

func (b *jsonBorder) toPartial() (*docmodel.PartialBorderStyle, error) {
	if b == nil {
		return nil, nil
	}
	width, err := b.Width.toPartial()
	if err != nil {
		return nil, err
	}
	radius, err := b.Radius.toPartial()
	if err != nil {
		return nil, err
	}
	out := &docmodel.PartialBorderStyle{Width: width, Radius: radius}
	if b.Color != nil {
		c, err := parseColor(*b.Color)
		if err != nil {
			return nil, err
		}
		out.Color = &c
	}
	return out, nil
}

type jsonFont struct {
	Family        []string `json:"family,omitempty"`
	Size          *string  `json:"size,omitempty"`
	Slant         *string  `json:"slant,omitempty"`
	Weight        *int     `json:"weight,omitempty"`
	LetterSpacing *string  `json:"letterSpacing,omitempty"`
	Oblique       *bool    `json:"oblique,omitempty"`
}

func (f *jsonFont) toPartial() (*docmodel.PartialFontStyle, error) {
	if f == nil {
		return nil, nil
	}
	out := &docmodel.PartialFontStyle{Family: f.Family, Oblique: f.Oblique}
	if f.Size != nil {
		v, err := parseLength(*f.Size)
		if err != nil {
			return nil, err
		}
		out.Size = &v
	}
	if f.Slant != nil {
		s, err := parseSlant(*f.Slant)
		if err != nil {
			return nil, err
		}
		out.Slant = &s
	}
	if f.Weight != nil {
		w := docmodel.FontWeight(*f.Weight)
		out.Weight = &w
	}
	if f.LetterSpacing != nil {
		v, err := parseLength(*f.LetterSpacing)
		if err != nil {
			return nil, err
		}
		out.LetterSpacing = &v
	}
	return out, nil
}

func parseSlant(s string) (docmodel.FontSlant, error) {
	switch s {
	case "normal", "":
		return docmodel.SlantNormal, nil
	case "italic":
		return docmodel.SlantItalic, nil
	default:
		return 0, fmt.Errorf("docrender: unknown font slant %q", s)
	}
}

func parseBreakRule(s string) (docmodel.BreakRule, error) {
	switch s {
	case "auto", "":
		return docmodel.BreakAuto, nil
	case "avoid":
		return docmodel.BreakAvoid, nil
	case "always":
		return docmodel.BreakAlways, nil
	default:
		return 0, fmt.Errorf("docrender: unknown break rule %q", s)
	}
}

func parseTextTransform(s string) (docmodel.TextTransform, error) {
	switch s {
	case "none", "":
		return docmodel.TransformNone, nil
	case "uppercase":
		return docmodel.TransformUppercase, nil
	case "lowercase":
		return docmodel.TransformLowercase, nil
	case "capitalize":
		return docmodel.TransformCapitalize, nil
	default:
		return 0, fmt.Errorf("docrender: unknown text-transform %q", s)
	}
}

type jsonFlex struct {
	Direction  *string  `json:"direction,omitempty"`
	Wrap       *bool    `json:"wrap,omitempty"`
	AlignItems *string  `json:"alignItems,omitempty"`
	AlignSelf  *string  `json:"alignSelf,omitempty"`
	Grow       *float64 `json:"grow,omitempty"`
	Shrink     *float64 `json:"shrink,omitempty"`
}

func parseAlignItems(s string) (docmodel.AlignItems, error) {
	switch s {
	case "stretch", "":
		return docmodel.AlignStretch, nil
	case "flex-start":
		return docmodel.AlignFlexStart, nil
	case "flex-end":
		return docmodel.AlignFlexEnd, nil
	case "center":
		return docmodel.AlignCenter, nil
	default:
		return 0, fmt.Errorf("docrender: unknown align-items %q", s)
	}
}

func parseAlignSelf(s string) (docmodel.AlignSelf, error) {
	switch s {
	case "auto", "":
		return docmodel.AlignSelfAuto, nil
	case "stretch":
		return docmodel.AlignSelfStretch, nil
	case "flex-start":
		return docmodel.AlignSelfFlexStart, nil
	case "flex-end":
		return docmodel.AlignSelfFlexEnd, nil
	case "center":
		return docmodel.AlignSelfCenter, nil
	default:
		return 0, fmt.Errorf("docrender: unknown align-self %q", s)
	}
}

func (f *jsonFlex) toPartial() (*docmodel.PartialFlexStyle, error) {
	if f == nil {
		return nil, nil
	}
	out := &docmodel.PartialFlexStyle{Grow: f.Grow, Shrink: f.Shrink}
	if f.Direction != nil {
		var d docmodel.FlexDirection
		switch *f.Direction {
		case "row":
			d = docmodel.FlexRow
		case "column", "":
			d = docmodel.FlexColumn
		default:
			return nil, fmt.Errorf("docrender: unknown flex-direction %q", *f.Direction)
		}
		out.Direction = &d
	}
	if f.Wrap != nil {
		w := docmodel.NoWrap
		if *f.Wrap {
			w = docmodel.Wrap
		}
		out.Wrap = &w
	}
	if f.AlignItems != nil {
		a, err := parseAlignItems(*f.AlignItems)
		if err != nil {
			return nil, err
		}
		out.AlignItems = &a
	}
	if f.AlignSelf != nil {
		a, err := parseAlignSelf(*f.AlignSelf)
		if err != nil {
			return nil, err
		}
		out.AlignSelf = &a
	}
	return out, nil
}

// jsonPartialStyle is the wire shape of one stylesheet entry or a node's
// inline style override. Every field is optional; absent means unset,
// matching spec.md §6 exactly.
type jsonPartialStyle struct {
	Border        *jsonBorder `json:"border,omitempty"`
	Font          *jsonFont   `json:"font,omitempty"`
	Color         *string     `json:"color,omitempty"`
	Margin        *jsonEdges  `json:"margin,omitempty"`
	Padding       *jsonEdges  `json:"padding,omitempty"`
	Background    *string     `json:"background,omitempty"`
	Flex          *jsonFlex   `json:"flex,omitempty"`
	Width         *string     `json:"width,omitempty"`
	Height        *string     `json:"height,omitempty"`
	BreakBefore   *string     `json:"breakBefore,omitempty"`
	BreakAfter    *string     `json:"breakAfter,omitempty"`
	BreakInside   *string     `json:"breakInside,omitempty"`
	TextTransform *string     `json:"textTransform,omitempty"`
	LineHeight    *float64    `json:"lineHeight,omitempty"`
	Debug         *bool       `json:"debug,omitempty"`
}

func (j *jsonPartialStyle) toPartial() (docmodel.PartialStyle, error) {
	var out docmodel.PartialStyle
	if j == nil {
		return out, nil
	}
	var err error
	if out.Border, err = j.Border.toPartial(); err != nil {
		return out, err
	}
	if out.Font, err = j.Font.toPartial(); err != nil {
		return out, err
	}
	if out.Margin, err = j.Margin.toPartial(); err != nil {
		return out, err
	}
	if out.Padding, err = j.Padding.toPartial(); err != nil {
		return out, err
	}
	if out.Flex, err = j.Flex.toPartial(); err != nil {
		return out, err
	}
	if j.Color != nil {
		c, err := parseColor(*j.Color)
		if err != nil {
			return out, err
		}
		out.Color = &c
	}
	if j.Background != nil {
		c, err := parseColor(*j.Background)
		if err != nil {
			return out, err
		}
		out.Background = &c
	}
	if j.Width != nil {
		v, err := parseSizeValue(*j.Width)
		if err != nil {
			return out, err
		}
		out.Width = &v
	}
	if j.Height != nil {
		v, err := parseSizeValue(*j.Height)
		if err != nil {
			return out, err
		}
		out.Height = &v
	}
	if j.BreakBefore != nil {
		v, err := parseBreakRule(*j.BreakBefore)
		if err != nil {
			return out, err
		}
		out.BreakBefore = &v
	}
	if j.BreakAfter != nil {
		v, err := parseBreakRule(*j.BreakAfter)
		if err != nil {
			return out, err
		}
		out.BreakAfter = &v
	}
	if j.BreakInside != nil {
		v, err := parseBreakRule(*j.BreakInside)
		if err != nil {
			return out, err
		}
		out.BreakInside = &v
	}
	if j.TextTransform != nil {
		v, err := parseTextTransform(*j.TextTransform)
		if err != nil {
			return out, err
		}
		out.TextTransform = &v
	}
	if j.LineHeight != nil {
		lh := *j.LineHeight
		lhp := &lh
		out.LineHeight = &lhp
	}
	out.Debug = j.Debug
	return out, nil
}

// DecodeStylesheet parses a JSON object mapping style-name to partial
// style into a docmodel.Stylesheet.
func DecodeStylesheet(data []byte) (docmodel.Stylesheet, error) {
	var raw map[string]jsonPartialStyle
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("docrender: invalid stylesheet JSON: %w", err)
	}
	out := make(docmodel.Stylesheet, len(raw))
	for name, entry := range raw {
		entry := entry
		p, err := entry.toPartial()
		if err != nil {
			return nil, fmt.Errorf("docrender: stylesheet entry %q: %w", name, err)
		}
		out[name] = p
	}
	return out, nil
}
