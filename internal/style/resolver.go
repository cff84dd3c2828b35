// Package style implements the style resolver: a recursive walk over the
// node tree that folds a node's style-name references over the
// stylesheet, applies inheritance from the parent, and defaults whatever
// is left unset. It is grounded on the teacher's internal/style/cascade.go
// (a StyleEngine that walks a tree accumulating ComputedStyle per element),
// but the cascade itself is rewritten: the teacher cascades CSS selectors
// by specificity, where this resolver folds an explicit ordered list of
// style-name references — a named-style merge, not a selector match.
package style

import (
	"fmt"
	"os"

	"github.com/inkfold/docrender/pkg/docmodel"
)

// Resolver walks a DomNode tree, producing a fully-resolved Style per
// NodeID. Debug mirrors the teacher's Engine.Debug field: when set, each
// resolution step is logged to stderr.
type Resolver struct {
	Stylesheet docmodel.Stylesheet
	Debug      bool
}

// New builds a Resolver against the given stylesheet.
func New(sheet docmodel.Stylesheet) *Resolver {
	return &Resolver{Stylesheet: sheet}
}

// Result is the Resolver's output: every node's resolved Style plus the
// partial style that was handed down to its children, keyed by NodeID.
// Partials records each node's pre-default partial (what it inherited and
// declared); richtext construction reads only Resolved.
type Result struct {
	Resolved map[docmodel.NodeID]docmodel.Style
	Partials map[docmodel.NodeID]docmodel.PartialStyle
}

// Resolve runs the resolution algorithm over the whole tree rooted at
// root. It returns on the first UnknownStyleError.
func (r *Resolver) Resolve(root *docmodel.DomNode) (*Result, error) {
	res := &Result{
		Resolved: make(map[docmodel.NodeID]docmodel.Style),
		Partials: make(map[docmodel.NodeID]docmodel.PartialStyle),
	}
	if root == nil {
		return res, nil
	}
	if err := r.resolveNode(root, docmodel.PartialStyle{}, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (r *Resolver) resolveNode(node *docmodel.DomNode, parentPartial docmodel.PartialStyle, res *Result) error {
	// Fold each style-name reference, in order, over an empty partial; the
	// parent's contribution arrives only through Inherit below.
	folded, err := r.Stylesheet.Fold(docmodel.PartialStyle{}, node.Styles)
	if err != nil {
		return err
	}

	// Apply inheritance from the parent partial.
	inherited := docmodel.Inherit(parentPartial, folded)
	res.Partials[node.ID] = inherited

	// Default whatever remains unset.
	resolved := inherited.Resolve(docmodel.DefaultStyle())
	res.Resolved[node.ID] = resolved

	if r.Debug {
		fmt.Fprintf(os.Stderr, "style: node=%d kind=%s refs=%v -> color=%v font=%.1fpt\n",
			node.ID, node.Kind, node.Styles, resolved.Color, resolved.Font.Size)
	}

	// The node's resolved-into-partial form (`inherited`) is the input
	// accumulator for every child.
	switch node.Kind {
	case docmodel.KindContainer:
		for _, child := range node.Children {
			if err := r.resolveNode(child, inherited, res); err != nil {
				return err
			}
		}
	case docmodel.KindText:
		for _, tc := range node.TextChildren {
			if tc.Node != nil {
				if err := r.resolveNode(tc.Node, inherited, res); err != nil {
					return err
				}
			}
		}
	case docmodel.KindImage:
		// leaf, no children to recurse into
	}
	return nil
}
