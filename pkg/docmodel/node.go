// Package docmodel holds the data types shared by every stage of the
// layout-and-pagination pipeline: the node tree, the stylesheet, resolved
// styles, rich text, and the boxes and pages produced along the way.
package docmodel

import "sync/atomic"

// NodeID is an opaque, process-unique identifier assigned at parse time.
// It is stable for the lifetime of a document and is the key into every
// per-node side table (resolved styles, rich text, boxes, pagination
// output). It is never a pointer, so side tables stay trivially
// serializable for debugging.
type NodeID uint64

var nodeIDCounter uint64

// NewNodeID returns the next process-unique node identifier.
func NewNodeID() NodeID {
	return NodeID(atomic.AddUint64(&nodeIDCounter, 1))
}

// NodeKind distinguishes the three DomNode variants.
type NodeKind int

const (
	KindContainer NodeKind = iota
	KindText
	KindImage
)

func (k NodeKind) String() string {
	switch k {
	case KindContainer:
		return "container"
	case KindText:
		return "text"
	case KindImage:
		return "image"
	default:
		return "unknown"
	}
}

// TextChild is one element of a Text node's ordered child list: either a
// literal string leaf or a nested Text subtree.
type TextChild struct {
	Literal string
	Node    *DomNode // nil when Literal holds the content
}

// ViewBox describes an SVG-style view box used to derive an Image node's
// intrinsic size when no explicit width/height is declared.
type ViewBox struct {
	MinX, MinY, Width, Height float64
}

// DomNode is one of {Container, Text, Image}. Which fields are meaningful
// is determined by Kind; this mirrors the teacher's html.Node convention of
// a single tagged struct rather than an interface, since every stage keys
// off NodeID anyway and a concrete struct keeps tree construction simple.
type DomNode struct {
	ID     NodeID
	Kind   NodeKind
	Styles []string // ordered style-name references, folded left to right

	// Container
	Children []*DomNode

	// Text
	TextChildren []TextChild

	// Image
	Content         string // opaque payload, e.g. raw SVG source or a resource path
	IntrinsicWidth  float64
	IntrinsicHeight float64
	ViewBox         *ViewBox
}

// NewContainer builds a Container DomNode with a fresh NodeID.
func NewContainer(styles []string, children ...*DomNode) *DomNode {
	return &DomNode{ID: NewNodeID(), Kind: KindContainer, Styles: styles, Children: children}
}

// NewText builds a Text DomNode with a fresh NodeID.
func NewText(styles []string, children ...TextChild) *DomNode {
	return &DomNode{ID: NewNodeID(), Kind: KindText, Styles: styles, TextChildren: children}
}

// NewImage builds an Image DomNode with a fresh NodeID.
func NewImage(styles []string, content string, width, height float64) *DomNode {
	return &DomNode{
		ID: NewNodeID(), Kind: KindImage, Styles: styles,
		Content: content, IntrinsicWidth: width, IntrinsicHeight: height,
	}
}

// Walk visits node and every descendant in document order, pre-order.
func Walk(node *DomNode, visit func(*DomNode)) {
	if node == nil {
		return
	}
	visit(node)
	switch node.Kind {
	case KindContainer:
		for _, c := range node.Children {
			Walk(c, visit)
		}
	case KindText:
		for _, tc := range node.TextChildren {
			if tc.Node != nil {
				Walk(tc.Node, visit)
			}
		}
	}
}

// MMToPt converts millimeters to points: 1 mm = 2.8346456692913 pt.
func MMToPt(mm float64) float64 { return mm * mmToPt }

// PtToMM is the inverse of MMToPt.
func PtToMM(pt float64) float64 { return pt / mmToPt }

const mmToPt = 2.8346456692913
