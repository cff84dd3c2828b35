package style

import (
	"testing"

	"github.com/inkfold/docrender/pkg/docmodel"
)

func TestResolveAppliesDefaults(t *testing.T) {
	root := docmodel.NewContainer(nil)
	r := New(docmodel.Stylesheet{})
	res, err := r.Resolve(root)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	got := res.Resolved[root.ID]
	want := docmodel.DefaultStyle()
	if got.Font.Size != want.Font.Size || got.Color != want.Color {
		t.Fatalf("unresolved node did not fall back to defaults: %+v", got)
	}
}

func TestResolveMergesStylesLeftToRight(t *testing.T) {
	red := docmodel.Color{R: 255, A: 255}
	blue := docmodel.Color{B: 255, A: 255}
	sheet := docmodel.Stylesheet{
		"red":  docmodel.PartialStyle{Color: &red},
		"blue": docmodel.PartialStyle{Color: &blue},
	}
	node := docmodel.NewContainer([]string{"red", "blue"})
	res, err := New(sheet).Resolve(node)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Resolved[node.ID].Color != blue {
		t.Fatalf("later style in the reference list should win, got %+v", res.Resolved[node.ID].Color)
	}
}

func TestResolveUnknownStyleFails(t *testing.T) {
	node := docmodel.NewContainer([]string{"missing"})
	_, err := New(docmodel.Stylesheet{}).Resolve(node)
	if err == nil {
		t.Fatal("expected UnknownStyleError")
	}
	if _, ok := err.(*docmodel.UnknownStyleError); !ok {
		t.Fatalf("expected *docmodel.UnknownStyleError, got %T", err)
	}
}

// TestResolveInheritsFontColorDebugOnly exercises S6 from spec.md §8: a
// root sets font color; an unstyled child inherits both color and font
// size (font is wholly inheritable), but not a non-inheritable property
// like background.
func TestResolveInheritsFontColorDebugOnly(t *testing.T) {
	red := docmodel.Color{R: 255, A: 255}
	bg := docmodel.Color{G: 255, A: 255}
	size := 24.0
	sheet := docmodel.Stylesheet{
		"root-style": docmodel.PartialStyle{
			Color:      &red,
			Background: &bg,
			Font:       &docmodel.PartialFontStyle{Size: &size},
		},
	}
	child := docmodel.NewText(nil, docmodel.TextChild{Literal: "x"})
	root := docmodel.NewContainer([]string{"root-style"}, child)

	res, err := New(sheet).Resolve(root)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	childStyle := res.Resolved[child.ID]
	if childStyle.Color != red {
		t.Errorf("child should inherit color, got %+v", childStyle.Color)
	}
	if childStyle.Font.Size != size {
		t.Errorf("child should inherit font size, got %v", childStyle.Font.Size)
	}
	if childStyle.Background != nil {
		t.Errorf("child should NOT inherit background, got %+v", childStyle.Background)
	}
}

func TestResolveCoversEveryNodeExactlyOnce(t *testing.T) {
	a := docmodel.NewContainer(nil)
	b := docmodel.NewContainer(nil)
	root := docmodel.NewContainer(nil, a, b)

	res, err := New(docmodel.Stylesheet{}).Resolve(root)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(res.Resolved) != 3 {
		t.Fatalf("want 3 resolved entries, got %d", len(res.Resolved))
	}
	for _, id := range []docmodel.NodeID{root.ID, a.ID, b.ID} {
		if _, ok := res.Resolved[id]; !ok {
			t.Errorf("node %d missing a resolved style", id)
		}
	}
}
