package docmodel

// DrawableKind tags a PaginatedNode's payload variant.
type DrawableKind int

const (
	DrawableContainer DrawableKind = iota
	DrawableText
	DrawableImage
)

// PaginatedNode is (page-index, page-local box, drawable payload). It is
// the unit the Paginator emits and the sole thing the PDF emitter consumes.
type PaginatedNode struct {
	NodeID    NodeID
	PageIndex int
	// Box is page-local: relative to the top-left of PageIndex, not the
	// document-absolute coordinates NodeBox normally carries.
	Box   NodeBox
	Kind  DrawableKind
	Style Style

	// Text payload. Lines is the slice of the source RenderedTextBlock
	// covered by this emission; LineStart/LineEnd are its bounds in the
	// source block's line indices. Across all emissions for one text node
	// these ranges union to exactly [0, line_count) with no gap or overlap.
	Lines     []ShapedLine
	LineStart int
	LineEnd   int

	// Image payload: the opaque content payload carried by the source
	// DomNode (raw SVG source, or a resource reference).
	ImageContent string
}

// DrawCursor is the Paginator's running state: which page it is emitting
// onto, the page-local y-offset reached so far, and the page-break debt
// carried over from a just-split node.
type DrawCursor struct {
	PageIndex int
	YOffset   float64
	Debt      float64
}
