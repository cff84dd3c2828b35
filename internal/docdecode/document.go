package docdecode

import (
	"encoding/json"
	"fmt"

	"github.com/inkfold/docrender/pkg/docmodel"
)

// jsonViewBox mirrors docmodel.ViewBox's wire shape.
type jsonViewBox struct {
	MinX   float64 `json:"minX"`
	MinY   float64 `json:"minY"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// jsonTextChild is one element of a Text node's children array: either a
// literal string (optionally carrying a small inline markup subset decoded
// by inlinemarkup.go) or a nested node object.
type jsonTextChild struct {
	Text string    `json:"text,omitempty"`
	Node *jsonNode `json:"node,omitempty"`
}

// jsonNode is the wire shape of one DomNode. Kind selects which of the
// remaining fields apply, mirroring docmodel.DomNode's own tagged-struct
// convention rather than a polymorphic JSON shape.
type jsonNode struct {
	Kind   string   `json:"kind"`
	Styles []string `json:"styles,omitempty"`

	// container
	Children []*jsonNode `json:"children,omitempty"`

	// text
	TextChildren []jsonTextChild `json:"text,omitempty"`

	// image
	Content         string       `json:"content,omitempty"`
	IntrinsicWidth  float64      `json:"width,omitempty"`
	IntrinsicHeight float64      `json:"height,omitempty"`
	ViewBox         *jsonViewBox `json:"viewBox,omitempty"`
}

func (n *jsonNode) toDomNode() (*docmodel.DomNode, error) {
	if n == nil {
		return nil, nil
	}
	switch n.Kind {
	case "container":
		children := make([]*docmodel.DomNode, 0, len(n.Children))
		for _, c := range n.Children {
			dn, err := c.toDomNode()
			if err != nil {
				return nil, err
			}
			children = append(children, dn)
		}
		return docmodel.NewContainer(n.Styles, children...), nil

	case "text":
		var tcs []docmodel.TextChild
		for _, c := range n.TextChildren {
			if c.Node != nil {
				dn, err := c.Node.toDomNode()
				if err != nil {
					return nil, err
				}
				tcs = append(tcs, docmodel.TextChild{Node: dn})
				continue
			}
			tcs = append(tcs, expandInlineMarkup(c.Text, n.Styles)...)
		}
		return docmodel.NewText(n.Styles, tcs...), nil

	case "image":
		img := docmodel.NewImage(n.Styles, n.Content, n.IntrinsicWidth, n.IntrinsicHeight)
		if n.ViewBox != nil {
			img.ViewBox = &docmodel.ViewBox{
				MinX: n.ViewBox.MinX, MinY: n.ViewBox.MinY,
				Width: n.ViewBox.Width, Height: n.ViewBox.Height,
			}
		}
		return img, nil

	default:
		return nil, fmt.Errorf("docrender: unknown node kind %q", n.Kind)
	}
}

// DecodeDocument parses a JSON document tree into a docmodel.DomNode root.
func DecodeDocument(data []byte) (*docmodel.DomNode, error) {
	var root jsonNode
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("docrender: invalid document JSON: %w", err)
	}
	return root.toDomNode()
}

// Document is the top-level deserialized payload: a node tree plus the
// stylesheet it references, and the page size the document declares (in
// points, after any mm conversion).
type Document struct {
	Root       *docmodel.DomNode
	Stylesheet docmodel.Stylesheet
	PageWidth  float64
	PageHeight float64
}

type jsonDocument struct {
	Root       *jsonNode                    `json:"root"`
	Stylesheet map[string]jsonPartialStyle  `json:"stylesheet,omitempty"`
	Page       *struct {
		Width  string `json:"width,omitempty"`
		Height string `json:"height,omitempty"`
	} `json:"page,omitempty"`
}

// Decode parses a full document payload: {"root": ..., "stylesheet": ...,
// "page": {"width": "210mm", "height": "297mm"}}. Page dimensions are
// optional; a zero PageWidth/PageHeight tells the caller to fall back to
// its own default Options.
func Decode(data []byte) (*Document, error) {
	var raw jsonDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("docrender: invalid document JSON: %w", err)
	}
	if raw.Root == nil {
		return nil, fmt.Errorf("docrender: document has no root node")
	}
	root, err := raw.Root.toDomNode()
	if err != nil {
		return nil, err
	}

	sheet := make(docmodel.Stylesheet, len(raw.Stylesheet))
	for name, entry := range raw.Stylesheet {
		entry := entry
		p, err := entry.toPartial()
		if err != nil {
			return nil, fmt.Errorf("docrender: stylesheet entry %q: %w", name, err)
		}
		sheet[name] = p
	}

	doc := &Document{Root: root, Stylesheet: sheet}
	if raw.Page != nil {
		if raw.Page.Width != "" {
			if doc.PageWidth, err = parseLength(raw.Page.Width); err != nil {
				return nil, err
			}
		}
		if raw.Page.Height != "" {
			if doc.PageHeight, err = parseLength(raw.Page.Height); err != nil {
				return nil, err
			}
		}
	}
	return doc, nil
}
