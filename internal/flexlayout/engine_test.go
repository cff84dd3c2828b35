package flexlayout

import (
	"testing"

	"github.com/inkfold/docrender/pkg/docmodel"
)

func fixedMeasure(heights map[docmodel.NodeID]float64) MeasureFunc {
	return func(node *docmodel.DomNode, proposedWidth float64) (float64, float64, error) {
		if node.Kind == docmodel.KindImage {
			return node.IntrinsicWidth, node.IntrinsicHeight, nil
		}
		return proposedWidth, heights[node.ID], nil
	}
}

func TestLayoutColumnStacksChildren(t *testing.T) {
	a := docmodel.NewText(nil, docmodel.TextChild{Literal: "a"})
	b := docmodel.NewText(nil, docmodel.TextChild{Literal: "b"})
	root := docmodel.NewContainer(nil, a, b)

	resolved := map[docmodel.NodeID]docmodel.Style{
		root.ID: docmodel.DefaultStyle(),
		a.ID:    docmodel.DefaultStyle(),
		b.ID:    docmodel.DefaultStyle(),
	}

	eng := New(resolved, fixedMeasure(map[docmodel.NodeID]float64{a.ID: 10, b.ID: 20}))
	boxes, err := eng.Layout(root, 200)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if boxes[a.ID].Top != 0 {
		t.Fatalf("a.Top = %v, want 0", boxes[a.ID].Top)
	}
	if boxes[b.ID].Top != 10 {
		t.Fatalf("b.Top = %v, want 10 (stacked below a)", boxes[b.ID].Top)
	}
	if boxes[root.ID].Height != 30 {
		t.Fatalf("root.Height = %v, want 30", boxes[root.ID].Height)
	}
	if boxes[a.ID].Width != 200 || boxes[b.ID].Width != 200 {
		t.Fatalf("children should stretch to content width by default")
	}
}

func TestLayoutRowPlacesChildrenSideBySide(t *testing.T) {
	a := docmodel.NewText(nil, docmodel.TextChild{Literal: "a"})
	aStyle := docmodel.DefaultStyle()
	aStyle.Width = docmodel.Sized(50)
	b := docmodel.NewText(nil, docmodel.TextChild{Literal: "b"})
	bStyle := docmodel.DefaultStyle()
	bStyle.Width = docmodel.Sized(50)

	root := docmodel.NewContainer(nil, a, b)
	rootStyle := docmodel.DefaultStyle()
	rootStyle.Flex.Direction = docmodel.FlexRow

	resolved := map[docmodel.NodeID]docmodel.Style{
		root.ID: rootStyle, a.ID: aStyle, b.ID: bStyle,
	}
	eng := New(resolved, fixedMeasure(map[docmodel.NodeID]float64{a.ID: 10, b.ID: 15}))
	boxes, err := eng.Layout(root, 200)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if boxes[a.ID].Left != 0 {
		t.Fatalf("a.Left = %v, want 0", boxes[a.ID].Left)
	}
	if boxes[b.ID].Left != 50 {
		t.Fatalf("b.Left = %v, want 50 (after a's width)", boxes[b.ID].Left)
	}
	if boxes[root.ID].Height != 15 {
		t.Fatalf("root.Height = %v, want 15 (tallest child)", boxes[root.ID].Height)
	}
}

// TestLayoutColumnImageUsesIntrinsicWidth covers the measure callback's
// returned width actually narrowing an auto-width image's box, rather than
// the image filling the full content width the way auto-width text does.
func TestLayoutColumnImageUsesIntrinsicWidth(t *testing.T) {
	img := docmodel.NewImage(nil, "", 30, 20)
	root := docmodel.NewContainer(nil, img)
	imgStyle := docmodel.DefaultStyle()
	imgStyle.Flex.AlignSelf = docmodel.AlignSelfCenter

	resolved := map[docmodel.NodeID]docmodel.Style{root.ID: docmodel.DefaultStyle(), img.ID: imgStyle}
	eng := New(resolved, fixedMeasure(nil))
	boxes, err := eng.Layout(root, 200)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if boxes[img.ID].Width != 30 {
		t.Fatalf("img.Width = %v, want 30 (intrinsic width, not the 200pt content width)", boxes[img.ID].Width)
	}
	if want := (200.0 - 30) / 2; boxes[img.ID].Left != want {
		t.Fatalf("img.Left = %v, want %v (centered using its intrinsic width)", boxes[img.ID].Left, want)
	}
}

func TestLayoutRowGrowDistributesFreeSpace(t *testing.T) {
	a := docmodel.NewContainer(nil)
	aStyle := docmodel.DefaultStyle()
	aStyle.Flex.Grow = 1
	aStyle.Width = docmodel.Auto()

	root := docmodel.NewContainer(nil, a)
	rootStyle := docmodel.DefaultStyle()
	rootStyle.Flex.Direction = docmodel.FlexRow

	resolved := map[docmodel.NodeID]docmodel.Style{root.ID: rootStyle, a.ID: aStyle}
	eng := New(resolved, fixedMeasure(nil))
	boxes, err := eng.Layout(root, 100)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if boxes[a.ID].Width != 100 {
		t.Fatalf("a.Width = %v, want 100 (sole grow child claims all free space)", boxes[a.ID].Width)
	}
}
