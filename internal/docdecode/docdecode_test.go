package docdecode

import (
	"testing"

	"github.com/inkfold/docrender/pkg/docmodel"
)

func TestParseLength(t *testing.T) {
	cases := []struct {
		lit     string
		want    float64
		wantErr bool
	}{
		{"12", 12, false},
		{"12pt", 12, false},
		{"10mm", docmodel.MMToPt(10), false},
		{"", 0, true},
		{"abc", 0, true},
		{"5in", 0, true},
	}
	for _, c := range cases {
		got, err := parseLength(c.lit)
		if c.wantErr {
			if err == nil {
				t.Errorf("parseLength(%q): expected error, got %v", c.lit, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseLength(%q): unexpected error %v", c.lit, err)
			continue
		}
		if got != c.want {
			t.Errorf("parseLength(%q) = %v, want %v", c.lit, got, c.want)
		}
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		lit  string
		want docmodel.Color
	}{
		{"#000", docmodel.Color{A: 255}},
		{"#ff0000", docmodel.Color{R: 255, A: 255}},
		{"red", docmodel.Color{R: 255, A: 255}},
		{"rgb(0, 128, 255)", docmodel.Color{G: 128, B: 255, A: 255}},
	}
	for _, c := range cases {
		got, err := parseColor(c.lit)
		if err != nil {
			t.Fatalf("parseColor(%q): %v", c.lit, err)
		}
		if got != c.want {
			t.Errorf("parseColor(%q) = %+v, want %+v", c.lit, got, c.want)
		}
	}
	if _, err := parseColor("not-a-color"); err == nil {
		t.Error("expected ColorParseError for garbage literal")
	}
}

func TestDecodeDocumentRoundTrip(t *testing.T) {
	src := `{
		"root": {
			"kind": "container",
			"styles": ["card"],
			"children": [
				{"kind": "text", "styles": [], "text": [{"text": "hello <b>world</b>"}]},
				{"kind": "image", "styles": [], "content": "<svg/>", "width": 40, "height": 40}
			]
		},
		"stylesheet": {
			"card": {"padding": {"top": "4mm"}, "color": "#112233"}
		},
		"page": {"width": "210mm", "height": "297mm"}
	}`

	doc, err := Decode([]byte(src))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if doc.Root.Kind != docmodel.KindContainer {
		t.Fatalf("root kind = %v, want container", doc.Root.Kind)
	}
	if len(doc.Root.Children) != 2 {
		t.Fatalf("root children = %d, want 2", len(doc.Root.Children))
	}
	if doc.Root.Children[1].Kind != docmodel.KindImage {
		t.Errorf("second child kind = %v, want image", doc.Root.Children[1].Kind)
	}
	if _, ok := doc.Stylesheet["card"]; !ok {
		t.Error("stylesheet missing \"card\" entry")
	}
	if doc.PageWidth <= 0 || doc.PageHeight <= 0 {
		t.Errorf("page size not parsed: %v x %v", doc.PageWidth, doc.PageHeight)
	}

	textNode := doc.Root.Children[0]
	if len(textNode.TextChildren) == 0 {
		t.Fatal("text node has no children after inline markup expansion")
	}
}

func TestUnknownNodeKind(t *testing.T) {
	_, err := DecodeDocument([]byte(`{"kind": "bogus"}`))
	if err == nil {
		t.Error("expected error for unknown node kind")
	}
}
