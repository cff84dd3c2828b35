// Package richtext builds a docmodel.RichText from a Text node's subtree,
// once per node before layout begins. It is grounded on the teacher's
// collectInlineRuns/normalizeInlineRuns pair in internal/layout/engine.go,
// which walks inline HTML children carrying forward a merged style; this
// rewrite walks TextChild leaves instead of HTML nodes, and sources each
// leaf's font properties from the innermost containing Text node's
// already-resolved Style rather than re-merging CSS.
package richtext

import (
	"strings"
	"unicode"

	"github.com/inkfold/docrender/pkg/docmodel"
)

// Build walks node (which must be a Text DomNode) and its nested Text
// subtree in document order, emitting one RichTextSpan per literal leaf.
// resolved must contain every node's resolved Style (internal/style's
// Resolver output).
func Build(node *docmodel.DomNode, resolved map[docmodel.NodeID]docmodel.Style) docmodel.RichText {
	var spans []docmodel.RichTextSpan
	walk(node, resolved, &spans)
	return docmodel.RichText{Spans: spans}
}

func walk(node *docmodel.DomNode, resolved map[docmodel.NodeID]docmodel.Style, out *[]docmodel.RichTextSpan) {
	if node == nil || node.Kind != docmodel.KindText {
		return
	}
	st := resolved[node.ID]
	for _, tc := range node.TextChildren {
		if tc.Node != nil {
			walk(tc.Node, resolved, out)
			continue
		}
		if tc.Literal == "" {
			continue
		}
		lineHeightMultiplier := 1.2
		if st.LineHeight != nil {
			lineHeightMultiplier = *st.LineHeight
		}
		*out = append(*out, docmodel.RichTextSpan{
			Text:                 applyTransform(tc.Literal, st.TextTransform),
			FontFamily:           st.Font.Family,
			FontSize:             st.Font.Size,
			Slant:                st.Font.Slant,
			Weight:               st.Font.Weight,
			Color:                st.Color,
			LetterSpacing:        st.Font.LetterSpacing,
			LineHeightMultiplier: lineHeightMultiplier,
		})
	}
}

func applyTransform(s string, t docmodel.TextTransform) string {
	switch t {
	case docmodel.TransformUppercase:
		return strings.ToUpper(s)
	case docmodel.TransformLowercase:
		return strings.ToLower(s)
	case docmodel.TransformCapitalize:
		return capitalize(s)
	default:
		return s
	}
}

// capitalize upper-cases the first letter of each whitespace-delimited word.
func capitalize(s string) string {
	var b strings.Builder
	atStart := true
	for _, r := range s {
		if unicode.IsSpace(r) {
			atStart = true
			b.WriteRune(r)
			continue
		}
		if atStart {
			b.WriteRune(unicode.ToUpper(r))
			atStart = false
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
