package richtext

import (
	"testing"

	"github.com/inkfold/docrender/pkg/docmodel"
)

func TestBuildFlattensNestedTextInDocumentOrder(t *testing.T) {
	inner := docmodel.NewText(nil, docmodel.TextChild{Literal: "world"})
	outer := docmodel.NewText(nil,
		docmodel.TextChild{Literal: "hello "},
		docmodel.TextChild{Node: inner},
		docmodel.TextChild{Literal: "!"},
	)

	outerStyle := docmodel.DefaultStyle()
	outerStyle.Font.Size = 12
	innerStyle := docmodel.DefaultStyle()
	innerStyle.Font.Size = 18

	resolved := map[docmodel.NodeID]docmodel.Style{
		outer.ID: outerStyle,
		inner.ID: innerStyle,
	}

	rt := Build(outer, resolved)
	if got, want := rt.String(), "hello world!"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	if len(rt.Spans) != 3 {
		t.Fatalf("want 3 spans, got %d", len(rt.Spans))
	}
	if rt.Spans[1].FontSize != 18 {
		t.Fatalf("nested span font size = %v, want 18 (innermost containing node)", rt.Spans[1].FontSize)
	}
	if rt.Spans[0].FontSize != 12 || rt.Spans[2].FontSize != 12 {
		t.Fatalf("outer spans should use outer node's resolved size")
	}
}

func TestBuildAppliesTextTransform(t *testing.T) {
	node := docmodel.NewText(nil, docmodel.TextChild{Literal: "Hello World"})
	st := docmodel.DefaultStyle()
	st.TextTransform = docmodel.TransformUppercase
	resolved := map[docmodel.NodeID]docmodel.Style{node.ID: st}

	rt := Build(node, resolved)
	if got, want := rt.String(), "HELLO WORLD"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestCapitalizeTransform(t *testing.T) {
	node := docmodel.NewText(nil, docmodel.TextChild{Literal: "hello world  again"})
	st := docmodel.DefaultStyle()
	st.TextTransform = docmodel.TransformCapitalize
	resolved := map[docmodel.NodeID]docmodel.Style{node.ID: st}

	rt := Build(node, resolved)
	if got, want := rt.String(), "Hello World  Again"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
