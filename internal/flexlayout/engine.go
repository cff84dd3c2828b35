// Package flexlayout computes an absolute NodeBox for every node in a
// document tree, honoring flex-box semantics and delegating text and image
// intrinsic sizing to a measure callback. It is grounded on the teacher's
// internal/layout/block.go BlockBox: the same recursive "containing block
// passes down an available width, margin/padding/border narrow the content
// box, children are walked in order accumulating a main-axis cursor"
// shape, generalized from block-only flow to flex-box's row/column axes,
// wrap, align-items/align-self, and grow/shrink. No Go binding of a
// dedicated flex engine (e.g. Facebook Yoga) exists among the retrieved
// examples, so this is a from-scratch implementation rather than a
// wrapped external library; it stops short of a full constraint solver
// (documented per-case below) in favor of a single measurement pass that
// stays correct for the common stretch/grow/shrink cases.
package flexlayout

import "github.com/inkfold/docrender/pkg/docmodel"

// MeasureFunc is the callback the engine invokes for every text and image
// leaf. For a text node it receives the proposed content width and must
// return the measured (width, height) — typically by shaping the node's
// cached RichText at that width and caching the resulting
// RenderedTextBlock for the paginator's later reuse. For an image node the
// proposed width is advisory; the callback returns the image's intrinsic
// size.
type MeasureFunc func(node *docmodel.DomNode, proposedWidth float64) (width, height float64, err error)

// Engine lays out a tree against a resolved style table.
type Engine struct {
	Resolved map[docmodel.NodeID]docmodel.Style
	Measure  MeasureFunc
}

// New builds an Engine over the given resolved style table and measure
// callback.
func New(resolved map[docmodel.NodeID]docmodel.Style, measure MeasureFunc) *Engine {
	return &Engine{Resolved: resolved, Measure: measure}
}

// Layout computes document-absolute boxes for root and every descendant,
// against a page content width of pageWidth points (height is
// unconstrained — pages are paginated in a later pass).
func (e *Engine) Layout(root *docmodel.DomNode, pageWidth float64) (map[docmodel.NodeID]docmodel.NodeBox, error) {
	out := make(map[docmodel.NodeID]docmodel.NodeBox)
	if root == nil {
		return out, nil
	}
	if _, err := e.layoutNode(root, 0, 0, pageWidth, out); err != nil {
		return nil, &docmodel.LayoutFailedError{Err: err}
	}
	return out, nil
}

// layoutNode lays out node with its border-box's top-left at
// (offsetX, offsetY) and a border-box width of availWidth (auto-sized
// nodes fill it; explicitly-sized nodes override it). It returns node's
// border box (margin excluded, matching NodeBox's documented meaning) and
// records every visited node — including node itself — into out.
func (e *Engine) layoutNode(node *docmodel.DomNode, offsetX, offsetY, availWidth float64, out map[docmodel.NodeID]docmodel.NodeBox) (docmodel.NodeBox, error) {
	st := e.Resolved[node.ID]

	width := availWidth
	if !st.Width.Auto {
		width = st.Width.Value
	}

	contentLeft := offsetX + st.Border.Width.Left + st.Padding.Left
	contentTop := offsetY + st.Border.Width.Top + st.Padding.Top
	contentWidth := width - st.Border.Width.Left - st.Border.Width.Right - st.Padding.Left - st.Padding.Right
	if contentWidth < 0 {
		contentWidth = 0
	}

	var contentHeight float64
	var err error

	switch node.Kind {
	case docmodel.KindText:
		var h float64
		_, h, err = e.Measure(node, contentWidth)
		if err != nil {
			return docmodel.NodeBox{}, err
		}
		contentHeight = h
	case docmodel.KindImage:
		// Unlike text (which always fills the proposed width, wrapping as
		// needed), an image leaf's measured width is its intrinsic size,
		// not a fill — an auto-width image must be narrowed to it so
		// flex-start/end/center alignment (layoutColumn/layoutRowLine) has
		// a real natural size to position against instead of the full
		// containing block width.
		var w, h float64
		w, h, err = e.Measure(node, contentWidth)
		if err != nil {
			return docmodel.NodeBox{}, err
		}
		if st.Width.Auto {
			contentWidth = w
		}
		contentHeight = h
	case docmodel.KindContainer:
		contentHeight, err = e.layoutChildren(node, st, contentLeft, contentTop, contentWidth, out)
		if err != nil {
			return docmodel.NodeBox{}, err
		}
	}

	if !st.Height.Auto {
		contentHeight = st.Height.Value
	}

	box := docmodel.NodeBox{
		Left:   offsetX,
		Top:    offsetY,
		Width:  contentWidth + st.Border.Width.Left + st.Border.Width.Right + st.Padding.Left + st.Padding.Right,
		Height: contentHeight + st.Border.Width.Top + st.Border.Width.Bottom + st.Padding.Top + st.Padding.Bottom,
	}
	out[node.ID] = box
	return box, nil
}

// layoutChildren lays out node's children along its resolved flex
// direction and returns the content height they consume (content width is
// already fixed by the caller).
func (e *Engine) layoutChildren(node *docmodel.DomNode, st docmodel.Style, contentLeft, contentTop, contentWidth float64, out map[docmodel.NodeID]docmodel.NodeBox) (float64, error) {
	children := node.Children
	if len(children) == 0 {
		return 0, nil
	}
	if st.Flex.Direction == docmodel.FlexRow {
		return e.layoutRow(children, st, contentLeft, contentTop, contentWidth, out)
	}
	return e.layoutColumn(children, st, contentLeft, contentTop, contentWidth, out)
}

// layoutColumn stacks children top to bottom. Cross-axis (horizontal)
// sizing honors AlignItems/AlignSelf stretch vs start/end/center; the main
// axis (vertical) has no grow/shrink distribution to perform here because
// the content height is exactly the sum of children — flex-grow only has
// free space to redistribute when the container's own height is
// explicit, which is handled by the caller via the node's resolved
// Height.
func (e *Engine) layoutColumn(children []*docmodel.DomNode, parent docmodel.Style, contentLeft, contentTop, contentWidth float64, out map[docmodel.NodeID]docmodel.NodeBox) (float64, error) {
	y := contentTop
	for _, child := range children {
		cst := e.Resolved[child.ID]
		align := effectiveAlign(parent.Flex.AlignItems, cst.Flex.AlignSelf)

		childAvailWidth := contentWidth
		childLeft := contentLeft
		if align != docmodel.AlignStretch && cst.Width.Auto {
			// Intrinsic sizing: measure once at the full width to learn the
			// natural size, then re-run positioned at that width. A true
			// flex engine would cache this pre-measurement; we re-lay-out
			// the subtree, which is only wasted work, not wrong output.
			naturalBox, err := e.layoutNode(child, contentLeft, y+cst.Margin.Top, contentWidth, out)
			if err != nil {
				return 0, err
			}
			childAvailWidth = naturalBox.Width
			switch align {
			case docmodel.AlignFlexEnd:
				childLeft = contentLeft + contentWidth - childAvailWidth
			case docmodel.AlignCenter:
				childLeft = contentLeft + (contentWidth-childAvailWidth)/2
			}
		}

		box, err := e.layoutNode(child, childLeft, y+cst.Margin.Top, childAvailWidth, out)
		if err != nil {
			return 0, err
		}
		y += cst.Margin.Top + box.Height + cst.Margin.Bottom
	}
	return y - contentTop, nil
}

// layoutRow lays children left to right, wrapping onto a new line when
// Wrap is set and the running main-axis extent would exceed contentWidth.
// Grow/shrink redistribute the line's leftover (or deficit) main-axis
// space; cross-axis (vertical) stretch is applied per line using that
// line's tallest child, which approximates true flexbox stretch without a
// second full remeasurement pass for containers whose content depends on
// their own resolved height.
func (e *Engine) layoutRow(children []*docmodel.DomNode, parent docmodel.Style, contentLeft, contentTop, contentWidth float64, out map[docmodel.NodeID]docmodel.NodeBox) (float64, error) {
	lines := wrapIntoLines(children, e.Resolved, contentWidth, parent.Flex.Wrap == docmodel.Wrap)

	y := contentTop
	for _, line := range lines {
		lineHeight, err := e.layoutRowLine(line, parent, contentLeft, y, contentWidth, out)
		if err != nil {
			return 0, err
		}
		y += lineHeight
	}
	return y - contentTop, nil
}

type rowItem struct {
	node  *docmodel.DomNode
	style docmodel.Style
	basis float64
}

// wrapIntoLines groups children into flex lines by taking each child's
// main-axis basis (its explicit width, or the full contentWidth when its
// width is auto; nothing is measured here) plus its horizontal margins, and
// greedily packing until the running total would exceed contentWidth.
func wrapIntoLines(children []*docmodel.DomNode, resolved map[docmodel.NodeID]docmodel.Style, contentWidth float64, wrap bool) [][]rowItem {
	items := make([]rowItem, len(children))
	for i, c := range children {
		cst := resolved[c.ID]
		basis := contentWidth
		if !cst.Width.Auto {
			basis = cst.Width.Value
		}
		items[i] = rowItem{node: c, style: cst, basis: basis + cst.Margin.Left + cst.Margin.Right}
	}
	if !wrap {
		return [][]rowItem{items}
	}
	var lines [][]rowItem
	var cur []rowItem
	w := 0.0
	for _, it := range items {
		if len(cur) > 0 && w+it.basis > contentWidth+1e-6 {
			lines = append(lines, cur)
			cur = nil
			w = 0
		}
		cur = append(cur, it)
		w += it.basis
	}
	if len(cur) > 0 {
		lines = append(lines, cur)
	}
	return lines
}

func (e *Engine) layoutRowLine(line []rowItem, parent docmodel.Style, contentLeft, lineTop, contentWidth float64, out map[docmodel.NodeID]docmodel.NodeBox) (float64, error) {
	sumBasis, sumGrow, sumShrink := 0.0, 0.0, 0.0
	for _, it := range line {
		sumBasis += it.basis
		sumGrow += it.style.Flex.Grow
		sumShrink += it.style.Flex.Shrink
	}
	free := contentWidth - sumBasis

	widths := make([]float64, len(line))
	for i, it := range line {
		w := it.basis - it.style.Margin.Left - it.style.Margin.Right
		switch {
		case free > 0 && sumGrow > 0:
			w += free * (it.style.Flex.Grow / sumGrow)
		case free < 0 && sumShrink > 0:
			w += free * (it.style.Flex.Shrink * it.basis) / (sumShrink * sumBasisWeighted(line))
		}
		if w < 0 {
			w = 0
		}
		widths[i] = w
	}

	// First pass: measure every item at its resolved width to learn this
	// line's cross-axis (height) extent.
	x := contentLeft
	boxes := make([]docmodel.NodeBox, len(line))
	lineHeight := 0.0
	for i, it := range line {
		box, err := e.layoutNode(it.node, x+it.style.Margin.Left, lineTop+it.style.Margin.Top, widths[i], out)
		if err != nil {
			return 0, err
		}
		boxes[i] = box
		outer := it.style.Margin.Top + box.Height + it.style.Margin.Bottom
		if outer > lineHeight {
			lineHeight = outer
		}
		x += it.style.Margin.Left + box.Width + it.style.Margin.Right
	}

	// Second pass: reposition each item vertically within the line per
	// align-items/align-self; stretch re-lays-out the item forcing its
	// height to the line height when it did not already claim an explicit
	// height.
	x = contentLeft
	for i, it := range line {
		align := effectiveAlign(parent.Flex.AlignItems, it.style.Flex.AlignSelf)
		top := lineTop + it.style.Margin.Top
		switch align {
		case docmodel.AlignFlexEnd:
			top = lineTop + lineHeight - it.style.Margin.Bottom - boxes[i].Height
		case docmodel.AlignCenter:
			top = lineTop + (lineHeight-boxes[i].Height)/2
		case docmodel.AlignStretch:
			if it.style.Height.Auto && it.node.Kind == docmodel.KindContainer {
				stretched := lineHeight - it.style.Margin.Top - it.style.Margin.Bottom
				forced := it.style
				forced.Height = docmodel.Sized(stretched - forced.Border.Width.Top - forced.Border.Width.Bottom - forced.Padding.Top - forced.Padding.Bottom)
				e.Resolved[it.node.ID] = forced
				box, err := e.layoutNode(it.node, x+it.style.Margin.Left, top, widths[i], out)
				e.Resolved[it.node.ID] = it.style
				if err != nil {
					return 0, err
				}
				boxes[i] = box
			}
		}
		if top != lineTop+it.style.Margin.Top {
			b := out[it.node.ID]
			b.Top = top
			out[it.node.ID] = b
		}
		x += it.style.Margin.Left + boxes[i].Width + it.style.Margin.Right
	}
	return lineHeight, nil
}

func sumBasisWeighted(line []rowItem) float64 {
	s := 0.0
	for _, it := range line {
		s += it.basis
	}
	if s == 0 {
		return 1
	}
	return s
}

func effectiveAlign(parent docmodel.AlignItems, self docmodel.AlignSelf) docmodel.AlignItems {
	switch self {
	case docmodel.AlignSelfStretch:
		return docmodel.AlignStretch
	case docmodel.AlignSelfFlexStart:
		return docmodel.AlignFlexStart
	case docmodel.AlignSelfFlexEnd:
		return docmodel.AlignFlexEnd
	case docmodel.AlignSelfCenter:
		return docmodel.AlignCenter
	default:
		return parent
	}
}
