package render

import (
	"errors"
	"testing"

	"github.com/inkfold/docrender/pkg/docmodel"
	"github.com/inkfold/docrender/pkg/fonts"
)

// fixedMetrics and fixedRegistry give deterministic, font-file-independent
// measurements so the pipeline's line/page counts are exact, mirroring the
// fake registry internal/shaping's tests use for the same reason.
type fixedMetrics struct{ perRune float64 }

func (m fixedMetrics) AdvanceWidth(text string, size float64) float64 {
	return float64(len([]rune(text))) * m.perRune
}
func (m fixedMetrics) Ascent(size float64) float64  { return size * 0.8 }
func (m fixedMetrics) Descent(size float64) float64 { return size * 0.2 }

type fixedRegistry struct{ perRune float64 }

func (r fixedRegistry) Resolve(stack []string) (string, error) {
	if len(stack) == 0 {
		return "", &docmodel.FontFamilyNotLoadedError{}
	}
	return stack[0], nil
}

func (r fixedRegistry) Face(family string, weight docmodel.FontWeight, slant docmodel.FontSlant) (fonts.Metrics, fonts.Face, error) {
	return fixedMetrics{perRune: r.perRune}, fonts.Face{Family: family, Weight: weight, Slant: slant}, nil
}

func TestRenderSinglePageDocument(t *testing.T) {
	text := docmodel.NewText(nil, docmodel.TextChild{Literal: "hello world"})
	root := docmodel.NewContainer(nil, text)
	sheet := docmodel.Stylesheet{}

	doc := NewWithOptions(Options{PageWidth: 400, PageHeight: 400}, fixedRegistry{perRune: 4})
	result, err := doc.Render(root, sheet)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if result.PageCount != 1 {
		t.Fatalf("PageCount = %d, want 1", result.PageCount)
	}
	if len(result.Nodes) == 0 {
		t.Fatal("expected at least one paginated node")
	}
}

func TestRenderSplitsAcrossPages(t *testing.T) {
	text := docmodel.NewText(nil, docmodel.TextChild{
		Literal: "one two three four five six seven eight nine ten eleven twelve",
	})
	root := docmodel.NewContainer(nil, text)
	sheet := docmodel.Stylesheet{}

	// A narrow, short page forces many lines and more than one page.
	doc := NewWithOptions(Options{PageWidth: 100, PageHeight: 40}, fixedRegistry{perRune: 4})
	result, err := doc.Render(root, sheet)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if result.PageCount < 2 {
		t.Fatalf("PageCount = %d, want >= 2 for a long run on a short page", result.PageCount)
	}
}

func TestRenderUnknownStylePropagates(t *testing.T) {
	root := docmodel.NewContainer([]string{"missing"})
	doc := New(fixedRegistry{perRune: 1})
	_, err := doc.Render(root, docmodel.Stylesheet{})
	if err == nil {
		t.Fatal("expected an error for an unresolvable style reference")
	}
	var unknownErr *docmodel.UnknownStyleError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("expected the error chain to contain *docmodel.UnknownStyleError, got %v", err)
	}
}
