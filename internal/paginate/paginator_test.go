package paginate

import (
	"testing"

	"github.com/inkfold/docrender/pkg/docmodel"
)

func line(h float64) docmodel.ShapedLine {
	return docmodel.ShapedLine{Metrics: docmodel.LineMetrics{Height: h}}
}

func TestSplitTextAcrossPages(t *testing.T) {
	text := docmodel.NewText(nil, docmodel.TextChild{Literal: "body"})
	root := docmodel.NewContainer(nil, text)

	resolved := map[docmodel.NodeID]docmodel.Style{
		root.ID: docmodel.DefaultStyle(),
		text.ID: docmodel.DefaultStyle(),
	}
	boxes := map[docmodel.NodeID]docmodel.NodeBox{
		root.ID: {Left: 0, Top: 0, Width: 100, Height: 100},
		text.ID: {Left: 0, Top: 0, Width: 100, Height: 100},
	}
	blocks := map[docmodel.NodeID]docmodel.RenderedTextBlock{
		text.ID: {Lines: []docmodel.ShapedLine{line(30), line(30), line(30), line(30)}},
	}

	p := New(resolved, boxes, blocks, 100)
	out, pages, err := p.Paginate(root)
	if err != nil {
		t.Fatalf("Paginate: %v", err)
	}
	if pages < 2 {
		t.Fatalf("expected the 120pt of lines to overflow a 100pt page, got %d pages", pages)
	}

	var total int
	prevEnd := -1
	for _, n := range out {
		if n.Kind != docmodel.DrawableText {
			continue
		}
		if prevEnd != -1 && n.LineStart != prevEnd {
			t.Fatalf("gap/overlap in line ranges: previous end %d, next start %d", prevEnd, n.LineStart)
		}
		prevEnd = n.LineEnd
		total += n.LineEnd - n.LineStart
	}
	if total != 4 {
		t.Fatalf("emitted line count = %d, want 4", total)
	}
	if prevEnd != 4 {
		t.Fatalf("final LineEnd = %d, want 4", prevEnd)
	}
}

func TestSplitTextFitsOnePage(t *testing.T) {
	text := docmodel.NewText(nil, docmodel.TextChild{Literal: "short"})
	root := docmodel.NewContainer(nil, text)
	resolved := map[docmodel.NodeID]docmodel.Style{root.ID: docmodel.DefaultStyle(), text.ID: docmodel.DefaultStyle()}
	boxes := map[docmodel.NodeID]docmodel.NodeBox{
		root.ID: {Width: 100, Height: 20},
		text.ID: {Width: 100, Height: 20},
	}
	blocks := map[docmodel.NodeID]docmodel.RenderedTextBlock{
		text.ID: {Lines: []docmodel.ShapedLine{line(20)}},
	}
	p := New(resolved, boxes, blocks, 500)
	out, pages, err := p.Paginate(root)
	if err != nil {
		t.Fatalf("Paginate: %v", err)
	}
	if pages != 1 {
		t.Fatalf("pages = %d, want 1", pages)
	}
	if len(out) != 2 {
		t.Fatalf("want 2 emissions (container + text), got %d", len(out))
	}
}

// TestSplitTextDefersWholeChunkWhenFirstLineDoesNotFit covers a text node
// that starts low on the page (yOffset=90 of a 100pt page) where even its
// first line (height 20) doesn't fit: the chunk must be deferred whole to
// the next page rather than forced onto the current one, so every emitted
// box stays within [0, ContentHeight].
func TestSplitTextDefersWholeChunkWhenFirstLineDoesNotFit(t *testing.T) {
	text := docmodel.NewText(nil, docmodel.TextChild{Literal: "body"})
	root := docmodel.NewContainer(nil, text)

	resolved := map[docmodel.NodeID]docmodel.Style{
		root.ID: docmodel.DefaultStyle(),
		text.ID: docmodel.DefaultStyle(),
	}
	boxes := map[docmodel.NodeID]docmodel.NodeBox{
		root.ID: {Left: 0, Top: 0, Width: 100, Height: 10},
		text.ID: {Left: 0, Top: 90, Width: 100, Height: 20},
	}
	blocks := map[docmodel.NodeID]docmodel.RenderedTextBlock{
		text.ID: {Lines: []docmodel.ShapedLine{line(20)}},
	}

	p := New(resolved, boxes, blocks, 100)
	out, _, err := p.Paginate(root)
	if err != nil {
		t.Fatalf("Paginate: %v", err)
	}
	for _, n := range out {
		if n.Kind != docmodel.DrawableText {
			continue
		}
		if n.Box.Top+n.Box.Height > 100 {
			t.Fatalf("emitted text box exceeds page bounds: top=%v height=%v", n.Box.Top, n.Box.Height)
		}
		if n.PageIndex != 1 {
			t.Fatalf("line that doesn't fit at yOffset=90 should defer to page 1, landed on %d", n.PageIndex)
		}
		if n.LineStart != 0 || n.LineEnd != 1 {
			t.Fatalf("want the single line emitted whole on the next page, got [%d:%d]", n.LineStart, n.LineEnd)
		}
	}
}

// TestSplitTextForceEmitsLineTallerThanPage covers the genuinely
// pathological case: a single line taller than ContentHeight even at the
// top of a fresh page must still be force-emitted, or pagination would
// never terminate.
func TestSplitTextForceEmitsLineTallerThanPage(t *testing.T) {
	text := docmodel.NewText(nil, docmodel.TextChild{Literal: "body"})
	root := docmodel.NewContainer(nil, text)

	resolved := map[docmodel.NodeID]docmodel.Style{
		root.ID: docmodel.DefaultStyle(),
		text.ID: docmodel.DefaultStyle(),
	}
	boxes := map[docmodel.NodeID]docmodel.NodeBox{
		root.ID: {Left: 0, Top: 0, Width: 100, Height: 150},
		text.ID: {Left: 0, Top: 0, Width: 100, Height: 150},
	}
	blocks := map[docmodel.NodeID]docmodel.RenderedTextBlock{
		text.ID: {Lines: []docmodel.ShapedLine{line(150)}},
	}

	p := New(resolved, boxes, blocks, 100)
	out, _, err := p.Paginate(root)
	if err != nil {
		t.Fatalf("Paginate: %v", err)
	}
	var emitted int
	for _, n := range out {
		if n.Kind == docmodel.DrawableText {
			emitted++
			if n.LineStart != 0 || n.LineEnd != 1 {
				t.Fatalf("want the oversized line force-emitted alone, got [%d:%d]", n.LineStart, n.LineEnd)
			}
		}
	}
	if emitted != 1 {
		t.Fatalf("want exactly 1 emission for the single oversized line, got %d", emitted)
	}
}

func TestImageAlwaysPageBreakAvoid(t *testing.T) {
	img := docmodel.NewImage(nil, "", 50, 50)
	root := docmodel.NewContainer(nil, img)
	resolved := map[docmodel.NodeID]docmodel.Style{root.ID: docmodel.DefaultStyle(), img.ID: docmodel.DefaultStyle()}
	boxes := map[docmodel.NodeID]docmodel.NodeBox{
		root.ID: {Width: 50, Height: 50, Top: 0},
		img.ID:  {Width: 50, Height: 50, Top: 80},
	}
	p := New(resolved, boxes, nil, 100)
	out, _, err := p.Paginate(root)
	if err != nil {
		t.Fatalf("Paginate: %v", err)
	}
	for _, n := range out {
		if n.Kind == docmodel.DrawableImage && n.PageIndex != 1 {
			t.Fatalf("image at absolute top 80 with height 50 should avoid-break onto page 1, landed on %d", n.PageIndex)
		}
	}
}
