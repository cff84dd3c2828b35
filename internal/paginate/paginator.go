package paginate

import "github.com/inkfold/docrender/pkg/docmodel"

// Paginator runs the cursor/debt state machine over a laid-out tree,
// producing an ordered sequence of PaginatedNode values plus the total
// page count. The pipeline stages before it (style resolution, rich text
// construction, flex layout) must already have populated Resolved, Boxes,
// and TextBlocks.
type Paginator struct {
	Resolved   map[docmodel.NodeID]docmodel.Style
	Boxes      map[docmodel.NodeID]docmodel.NodeBox
	TextBlocks map[docmodel.NodeID]docmodel.RenderedTextBlock

	// ContentHeight is the page's available content height H, in points.
	ContentHeight float64
}

// New builds a Paginator. boxes and textBlocks are the outputs of
// internal/flexlayout: boxes holds every node's document-absolute box;
// textBlocks holds the measured RenderedTextBlock for every text node,
// keyed the same way the layout engine's measure callback cached it.
func New(resolved map[docmodel.NodeID]docmodel.Style, boxes map[docmodel.NodeID]docmodel.NodeBox, textBlocks map[docmodel.NodeID]docmodel.RenderedTextBlock, contentHeight float64) *Paginator {
	return &Paginator{Resolved: resolved, Boxes: boxes, TextBlocks: textBlocks, ContentHeight: contentHeight}
}

// cursor is the Paginator's running state, advanced once per visited node.
type cursor struct {
	pageIndex int
	yOffset   float64
	debt      float64
}

// Paginate walks root in document order and returns the paginated output
// plus the total page count (max page index + 1).
func (p *Paginator) Paginate(root *docmodel.DomNode) ([]docmodel.PaginatedNode, int, error) {
	avoid := make(map[docmodel.NodeID]bool)
	markAvoid(root, p.Resolved, avoid)

	var out []docmodel.PaginatedNode
	cur := cursor{}
	priorTop := 0.0
	p.walk(root, avoid, &cur, &priorTop, &out)

	pages := cur.pageIndex + 1
	for _, n := range out {
		if n.PageIndex+1 > pages {
			pages = n.PageIndex + 1
		}
	}
	return out, pages, nil
}

// markAvoid computes the page-break-avoid pre-pass: every Image node, every
// node with a non-auto break_inside, and every flex container that isn't
// column/no-wrap are marked; the mark propagates upward along first-child
// edges.
func markAvoid(node *docmodel.DomNode, resolved map[docmodel.NodeID]docmodel.Style, avoid map[docmodel.NodeID]bool) bool {
	if node == nil {
		return false
	}
	st := resolved[node.ID]
	self := false
	switch node.Kind {
	case docmodel.KindImage:
		self = true
	case docmodel.KindContainer:
		if st.Flex.Direction != docmodel.FlexColumn || st.Flex.Wrap != docmodel.NoWrap {
			self = true
		}
	}
	if st.BreakInside != docmodel.BreakAuto {
		self = true
	}

	if node.Kind == docmodel.KindContainer {
		for i, child := range node.Children {
			childAvoid := markAvoid(child, resolved, avoid)
			if i == 0 && childAvoid {
				self = true
			}
		}
	}

	avoid[node.ID] = self
	return self
}

// walk visits node and, for containers, its children in document order,
// appending every emission to out and advancing cur/priorTop as it goes.
func (p *Paginator) walk(node *docmodel.DomNode, avoid map[docmodel.NodeID]bool, cur *cursor, priorTop *float64, out *[]docmodel.PaginatedNode) {
	if node == nil {
		return
	}
	st := p.Resolved[node.ID]
	box := p.Boxes[node.ID]

	delta := box.Top - *priorTop - cur.debt
	cur.yOffset += delta
	cur.debt = 0

	adjusted := box
	adjusted.Top = cur.yOffset

	if adjusted.Top+adjusted.Height > p.ContentHeight && (adjusted.Top > p.ContentHeight || avoid[node.ID]) {
		cur.pageIndex++
		cur.yOffset = 0
		adjusted.Top = 0
	}

	switch node.Kind {
	case docmodel.KindContainer:
		*out = append(*out, docmodel.PaginatedNode{
			NodeID: node.ID, PageIndex: cur.pageIndex, Box: adjusted,
			Kind: docmodel.DrawableContainer, Style: st,
		})
	case docmodel.KindImage:
		*out = append(*out, docmodel.PaginatedNode{
			NodeID: node.ID, PageIndex: cur.pageIndex, Box: adjusted,
			Kind: docmodel.DrawableImage, Style: st, ImageContent: node.Content,
		})
	case docmodel.KindText:
		p.splitText(node, st, adjusted, cur, out)
	}

	*priorTop = box.Top

	if node.Kind == docmodel.KindContainer {
		for _, child := range node.Children {
			p.walk(child, avoid, cur, priorTop, out)
		}
	}

	if st.BreakAfter == docmodel.BreakAlways {
		cur.yOffset += p.ContentHeight
	}
}

// splitText runs the text-splitting loop for one text node, possibly
// emitting several PaginatedNode chunks across consecutive pages.
func (p *Paginator) splitText(node *docmodel.DomNode, st docmodel.Style, adjusted docmodel.NodeBox, cur *cursor, out *[]docmodel.PaginatedNode) {
	lines := p.TextBlocks[node.ID].Lines
	if len(lines) == 0 {
		*out = append(*out, docmodel.PaginatedNode{
			NodeID: node.ID, PageIndex: cur.pageIndex, Box: adjusted,
			Kind: docmodel.DrawableText, Style: st,
		})
		return
	}

	padTop := st.Padding.Top
	top := adjusted.Top
	i := 0
	for i < len(lines) {
		cum := make([]float64, len(lines)-i)
		running := 0.0
		for j := range cum {
			running += lines[i+j].Metrics.Height
			cum[j] = running
		}

		k := -1
		for j, h := range cum {
			if cur.yOffset+padTop+h > p.ContentHeight {
				k = j
				break
			}
		}

		if k == -1 {
			*out = append(*out, docmodel.PaginatedNode{
				NodeID: node.ID, PageIndex: cur.pageIndex,
				Box:       docmodel.NodeBox{Left: adjusted.Left, Top: top, Width: adjusted.Width, Height: running},
				Kind:      docmodel.DrawableText, Style: st,
				Lines: lines[i:], LineStart: i, LineEnd: len(lines),
			})
			return
		}

		if k == 0 {
			// The first line of this chunk doesn't fit at the current
			// yOffset. Defer it whole to a fresh page rather than forcing
			// it onto this one — emitting zero lines here, per spec §4.4
			// step c/e and the ground truth's `Some(_) => Pt(0.)` + unchanged
			// line_offset + roll. Only force-emit when the line wouldn't
			// fit even at the top of a fresh page, since otherwise nothing
			// would ever advance and the loop would spin forever.
			if cur.yOffset == 0 && lines[i].Metrics.Height+padTop > p.ContentHeight {
				*out = append(*out, docmodel.PaginatedNode{
					NodeID: node.ID, PageIndex: cur.pageIndex,
					Box:       docmodel.NodeBox{Left: adjusted.Left, Top: top, Width: adjusted.Width, Height: blockHeight(cum, 1)},
					Kind:      docmodel.DrawableText, Style: st,
					Lines: lines[i : i+1], LineStart: i, LineEnd: i + 1,
				})
				blockH := blockHeight(cum, 1)
				cur.pageIndex++
				cur.yOffset = 0
				cur.debt += blockH + padTop
				padTop = 0
				top = 0
				i++
				continue
			}

			cur.pageIndex++
			cur.yOffset = 0
			top = 0
			continue
		}

		*out = append(*out, docmodel.PaginatedNode{
			NodeID: node.ID, PageIndex: cur.pageIndex,
			Box:       docmodel.NodeBox{Left: adjusted.Left, Top: top, Width: adjusted.Width, Height: blockHeight(cum, k)},
			Kind:      docmodel.DrawableText, Style: st,
			Lines: lines[i : i+k], LineStart: i, LineEnd: i + k,
		})

		blockH := blockHeight(cum, k)
		cur.pageIndex++
		cur.yOffset = 0
		cur.debt += blockH + padTop
		padTop = 0
		top = 0
		i += k
	}
}

func blockHeight(cum []float64, k int) float64 {
	if k <= 0 {
		return 0
	}
	return cum[k-1]
}
