package fonts

import (
	"testing"

	"github.com/inkfold/docrender/pkg/docmodel"
)

func TestCoreRegistryResolvesAliases(t *testing.T) {
	reg := NewCoreRegistry(nil)
	name, err := reg.Resolve([]string{"Arial", "sans-serif"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if name != "Arial" {
		t.Fatalf("Resolve returned %q, want the matched stack entry %q", name, "Arial")
	}
}

func TestCoreRegistryUnregisteredFamilyFails(t *testing.T) {
	reg := NewCoreRegistry(nil)
	_, err := reg.Resolve([]string{"Wingdings Extra Bogus"})
	if err == nil {
		t.Fatal("expected FontFamilyNotLoadedError")
	}
	if fe, ok := err.(*docmodel.FontFamilyNotLoadedError); !ok || fe.Family != "Wingdings Extra Bogus" {
		t.Fatalf("unexpected error: %#v", err)
	}
}

func TestCoreRegistryFaceMeasuresWidth(t *testing.T) {
	reg := NewCoreRegistry(nil)
	metrics, face, err := reg.Face("Helvetica", docmodel.WeightRegular, docmodel.SlantNormal)
	if err != nil {
		t.Fatalf("Face: %v", err)
	}
	if face.Family != "Helvetica" {
		t.Fatalf("face.Family = %q, want Helvetica", face.Family)
	}
	if w := metrics.AdvanceWidth("hello", 12); w <= 0 {
		t.Fatalf("AdvanceWidth = %v, want > 0", w)
	}
	longer := metrics.AdvanceWidth("hello world", 12)
	shorter := metrics.AdvanceWidth("hi", 12)
	if longer <= shorter {
		t.Fatalf("longer text should measure wider: %v <= %v", longer, shorter)
	}
}

func TestCoreRegistryCourierItalicIsSynthetic(t *testing.T) {
	reg := NewCoreRegistry(nil)
	_, face, err := reg.Face("Courier", docmodel.WeightRegular, docmodel.SlantItalic)
	if err != nil {
		t.Fatalf("Face: %v", err)
	}
	if !face.Oblique {
		t.Fatal("Courier has no distinct italic metrics in fpdf's core fonts; expected a synthetic oblique fallback")
	}
}
