// Package render wires the style resolver, rich-text builder, flex layout
// engine, and paginator into the single public entry point callers use to
// turn a parsed document into paginated output. It is grounded on the
// teacher's pkg/api.Converter: one struct holding Options, constructed via
// New/NewWithOptions, whose Convert-family methods run the pipeline
// stages in a fixed order and wrap each stage's error with enough context
// to act on.
package render

import (
	"fmt"

	"github.com/inkfold/docrender/internal/flexlayout"
	"github.com/inkfold/docrender/internal/paginate"
	"github.com/inkfold/docrender/internal/richtext"
	"github.com/inkfold/docrender/internal/shaping"
	"github.com/inkfold/docrender/internal/style"
	"github.com/inkfold/docrender/pkg/docmodel"
	"github.com/inkfold/docrender/pkg/fonts"
)

// Document is the pipeline entry point: render options plus the font
// registry the shaper measures with. The tree and the stylesheet it
// resolves against are passed to Render.
type Document struct {
	options Options
	fonts   fonts.Registry
}

// New builds a Document with default options and the given font registry.
func New(fontRegistry fonts.Registry) *Document {
	return NewWithOptions(DefaultOptions(), fontRegistry)
}

// NewWithOptions builds a Document with explicit options.
func NewWithOptions(options Options, fontRegistry fonts.Registry) *Document {
	return &Document{options: options, fonts: fontRegistry}
}

// WithOption returns a Document with one additional option applied.
func (d *Document) WithOption(opt Option) *Document {
	o := d.options
	opt(&o)
	return NewWithOptions(o, d.fonts)
}

// Result is the pipeline's output: the ordered PaginatedNode sequence and
// the total page count (max page index + 1).
type Result struct {
	Nodes     []docmodel.PaginatedNode
	PageCount int
}

// Render runs the full pipeline — style resolution, rich text
// construction, flex layout, pagination — over root against sheet, and
// returns the paginated output.
func (d *Document) Render(root *docmodel.DomNode, sheet docmodel.Stylesheet) (*Result, error) {
	resolver := &style.Resolver{Stylesheet: sheet, Debug: d.options.Debug}
	resolved, err := resolver.Resolve(root)
	if err != nil {
		return nil, fmt.Errorf("docrender: style resolution failed: %w", err)
	}

	richByNode := make(map[docmodel.NodeID]docmodel.RichText)
	docmodel.Walk(root, func(n *docmodel.DomNode) {
		if n.Kind == docmodel.KindText {
			richByNode[n.ID] = richtext.Build(n, resolved.Resolved)
		}
	})

	shaper := shaping.New(d.fonts)
	textBlocks := make(map[docmodel.NodeID]docmodel.RenderedTextBlock)

	measure := func(node *docmodel.DomNode, proposedWidth float64) (float64, float64, error) {
		switch node.Kind {
		case docmodel.KindImage:
			w, h := node.IntrinsicWidth, node.IntrinsicHeight
			if node.ViewBox != nil && w == 0 && h == 0 {
				w, h = node.ViewBox.Width, node.ViewBox.Height
			}
			return w, h, nil
		case docmodel.KindText:
			align := shaping.AlignLeft
			rt := richByNode[node.ID]
			block, err := shaper.Shape(rt, proposedWidth, align)
			if err != nil {
				return 0, 0, err
			}
			textBlocks[node.ID] = block
			return block.MaxWidth(), block.Height(), nil
		default:
			return proposedWidth, 0, nil
		}
	}

	layoutEngine := flexlayout.New(resolved.Resolved, measure)
	boxes, err := layoutEngine.Layout(root, d.options.ContentWidth())
	if err != nil {
		return nil, fmt.Errorf("docrender: layout failed: %w", err)
	}

	paginator := paginate.New(resolved.Resolved, boxes, textBlocks, d.options.ContentHeight())
	nodes, pages, err := paginator.Paginate(root)
	if err != nil {
		return nil, fmt.Errorf("docrender: pagination failed: %w", err)
	}

	return &Result{Nodes: nodes, PageCount: pages}, nil
}
