// Package shaping implements the paragraph shaper: it turns a RichText run
// and a width constraint into a sequence of line metrics and per-line
// substrings. It is grounded on the teacher's internal/text/shaping.go
// (TextShaper.SplitTextToLines's greedy word-wrap), generalized from a
// single monospace Font to per-span mixed fonts sourced from pkg/fonts,
// and extended with exact per-glyph advance widths instead of a
// charWidth*0.6 approximation. Unicode normalization runs through
// golang.org/x/text/unicode/norm so combining-mark sequences measure and
// break the same way regardless of input form.
package shaping

import (
	"math"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/inkfold/docrender/pkg/docmodel"
	"github.com/inkfold/docrender/pkg/fonts"
)

// Infinite is the special width value that forces exactly one line,
// regardless of content width — used for intrinsic ("shrink to fit")
// measurement passes such as SVG text sizing.
const Infinite = math.MaxFloat64

// Alignment is the paragraph's horizontal alignment, used only to compute
// each line's Left offset within the available width.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Shaper breaks RichText runs into lines against a font Registry.
type Shaper struct {
	Fonts fonts.Registry
}

// New builds a Shaper backed by the given font registry.
func New(reg fonts.Registry) *Shaper {
	return &Shaper{Fonts: reg}
}

// token is one run of non-whitespace characters drawn from a single span,
// plus the width of whatever whitespace preceded it.
type token struct {
	chars                []rune
	metric               fonts.Metrics
	size                 float64
	letterSpacing        float64
	leadingSpaceWidth    float64
	lineHeightMultiplier float64
	start, end           int // rune offsets of chars in the run's flattened text
}

func (t token) advance() float64 {
	w := t.metric.AdvanceWidth(string(t.chars), t.size)
	if len(t.chars) > 1 {
		w += t.letterSpacing * float64(len(t.chars)-1)
	}
	return w
}

// Shape breaks rt into lines no wider than width (or exactly one line when
// width is Infinite), returning a RenderedTextBlock whose lines' RichText
// slices reconstruct rt in order.
func (s *Shaper) Shape(rt docmodel.RichText, width float64, align Alignment) (docmodel.RenderedTextBlock, error) {
	words, err := s.breakWords(rt)
	if err != nil {
		return docmodel.RenderedTextBlock{}, err
	}

	total := rt.RuneLen()
	if width == Infinite {
		line := measureLine(words, rt, 0, total, width, align)
		return docmodel.RenderedTextBlock{Lines: []docmodel.ShapedLine{line}}, nil
	}

	var lines []docmodel.ShapedLine
	start := 0
	pos := 0
	for start < len(words) || (start == 0 && len(words) == 0) {
		if len(words) == 0 {
			lines = append(lines, measureLine(nil, rt, 0, total, width, align))
			break
		}
		end := start
		w := 0.0
		for end < len(words) {
			sep := 0.0
			if end > start {
				sep = words[end].leadingSpaceWidth
			}
			tokW := words[end].advance()
			if end > start && w+sep+tokW > width+1e-6 {
				break
			}
			w += sep + tokW
			end++
		}
		if end == start {
			end = start + 1 // a single token wider than the line still gets its own line
		}
		// The whitespace between this line's last word and the next line's
		// first word belongs to this line's index range.
		endIdx := total
		if end < len(words) {
			endIdx = words[end].start
		}
		line := measureLine(words[start:end], rt, pos, endIdx, width, align)
		lines = append(lines, line)
		pos = endIdx
		start = end
	}
	return docmodel.RenderedTextBlock{Lines: lines}, nil
}

func (s *Shaper) breakWords(rt docmodel.RichText) ([]token, error) {
	var toks []token
	pendingSpace := 0.0
	var cur []rune
	var curMetric fonts.Metrics
	var curSize, curLetterSpacing, curLineHeightMultiplier float64
	offset, curStart := 0, 0

	flush := func() {
		if len(cur) == 0 {
			return
		}
		toks = append(toks, token{
			chars: cur, metric: curMetric, size: curSize,
			letterSpacing: curLetterSpacing, leadingSpaceWidth: pendingSpace,
			lineHeightMultiplier: curLineHeightMultiplier,
			start: curStart, end: curStart + len(cur),
		})
		cur = nil
		pendingSpace = 0
	}

	for _, span := range rt.Spans {
		family, err := s.Fonts.Resolve(span.FontFamily)
		if err != nil {
			return nil, &docmodel.ShapingFailedError{Err: err}
		}
		metric, _, err := s.Fonts.Face(family, span.Weight, span.Slant)
		if err != nil {
			return nil, &docmodel.ShapingFailedError{Err: err}
		}
		text := norm.NFC.String(span.Text)
		for _, ch := range text {
			if unicode.IsSpace(ch) {
				flush()
				pendingSpace += metric.AdvanceWidth(" ", span.FontSize)
				offset++
				continue
			}
			if len(cur) == 0 {
				curMetric, curSize, curLetterSpacing = metric, span.FontSize, span.LetterSpacing
				curLineHeightMultiplier = span.LineHeightMultiplier
				curStart = offset
			}
			cur = append(cur, ch)
			offset++
		}
		flush()
	}
	return toks, nil
}

func measureLine(tokens []token, rt docmodel.RichText, startIdx, endIdx int, width float64, align Alignment) docmodel.ShapedLine {
	w := 0.0
	ascent, descent := 0.0, 0.0
	lineHeightMultiplier := 1.2
	for i, t := range tokens {
		if i > 0 {
			w += t.leadingSpaceWidth
		}
		w += t.advance()
		if a := t.metric.Ascent(t.size); a > ascent {
			ascent = a
		}
		if d := t.metric.Descent(t.size); d > descent {
			descent = d
		}
		// A style's line-height scales the line's leading; when a line
		// mixes spans with different values, the tallest wins, matching
		// how ascent/descent already pick the line's tallest contributor.
		if i == 0 || t.lineHeightMultiplier > lineHeightMultiplier {
			lineHeightMultiplier = t.lineHeightMultiplier
		}
	}
	textStart, textEnd := startIdx, endIdx
	if len(tokens) > 0 {
		textStart, textEnd = tokens[0].start, tokens[len(tokens)-1].end
	}
	height := ascent + descent
	if height > 0 {
		height *= lineHeightMultiplier
	}
	left := 0.0
	if width != Infinite && width > 0 {
		switch align {
		case AlignCenter:
			left = (width - w) / 2
		case AlignRight:
			left = width - w
		}
		if left < 0 {
			left = 0
		}
	}
	return docmodel.ShapedLine{
		Metrics: docmodel.LineMetrics{
			Ascent: ascent, Descent: descent, Height: height,
			Baseline: ascent, Width: w, Left: left,
			StartIndex: startIdx, EndIndex: endIdx,
		},
		// Text runs from the line's first word to its last, leaving out the
		// whitespace at the line's edges. rt.Slice indexes rt's original,
		// un-normalized spans by rune offset, while token offsets were
		// counted over the NFC-normalized text built in breakWords, so a
		// combining-mark sequence that NFC composes/decomposes can shift
		// the two countings out of step.
		Text: rt.Slice(textStart, textEnd),
	}
}
