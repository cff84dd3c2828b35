package fonts

import (
	"strings"
	"sync"

	"codeberg.org/go-pdf/fpdf"
	"github.com/inkfold/docrender/pkg/docmodel"
)

// CoreRegistry is a Registry backed by go-pdf/fpdf's built-in core font
// metrics (Helvetica, Times, Courier) — no font file is ever read, mirroring
// the teacher's measureTextWidth/resolveFontFromStyle pair in
// internal/layout/engine.go. It maps a handful of common family aliases
// onto the three core families and synthesizes bold/italic via fpdf's own
// style string rather than requiring a dedicated bold/italic face.
type CoreRegistry struct {
	mu  sync.Mutex
	pdf *fpdf.Fpdf

	// aliases maps a lowercased family name to one of "Helvetica", "Times",
	// or "Courier". Unregistered names are rejected by Resolve.
	aliases map[string]string
}

// NewCoreRegistry builds a registry covering the standard sans-serif/
// serif/monospace aliases plus any extra aliases the caller supplies
// (lowercased family name -> one of "Helvetica"/"Times"/"Courier").
func NewCoreRegistry(extraAliases map[string]string) *CoreRegistry {
	pdf := fpdf.New("P", "pt", "", "")
	pdf.SetFont("Helvetica", "", 12)

	aliases := map[string]string{
		"sans-serif": "Helvetica", "helvetica": "Helvetica", "arial": "Helvetica",
		"serif": "Times", "times": "Times", "times new roman": "Times",
		"monospace": "Courier", "courier": "Courier", "courier new": "Courier",
	}
	for k, v := range extraAliases {
		aliases[strings.ToLower(k)] = v
	}
	return &CoreRegistry{pdf: pdf, aliases: aliases}
}

// Resolve implements Registry.
func (r *CoreRegistry) Resolve(stack []string) (string, error) {
	for _, name := range stack {
		if _, ok := r.aliases[strings.ToLower(strings.TrimSpace(name))]; ok {
			return name, nil
		}
	}
	first := ""
	if len(stack) > 0 {
		first = stack[0]
	}
	return "", &docmodel.FontFamilyNotLoadedError{Family: first}
}

// Face implements Registry.
func (r *CoreRegistry) Face(family string, weight docmodel.FontWeight, slant docmodel.FontSlant) (Metrics, Face, error) {
	core, ok := r.aliases[strings.ToLower(strings.TrimSpace(family))]
	if !ok {
		return nil, Face{}, &docmodel.FontFamilyNotLoadedError{Family: family}
	}
	styleStr := ""
	if weight >= docmodel.WeightBold {
		styleStr += "B"
	}
	oblique := false
	if slant == docmodel.SlantItalic {
		if core == "Courier" {
			// fpdf's core Courier metrics lack an italic variant distinct
			// from upright advances; fall back to a synthetic skew rather
			// than silently dropping the slant.
			oblique = true
		} else {
			styleStr += "I"
		}
	}
	return &coreMetrics{registry: r, family: core, style: styleStr, oblique: oblique}, Face{
		Family: core, Weight: weight, Slant: slant, Oblique: oblique,
	}, nil
}

type coreMetrics struct {
	registry *CoreRegistry
	family   string
	style    string
	oblique  bool
}

func (m *coreMetrics) AdvanceWidth(text string, size float64) float64 {
	m.registry.mu.Lock()
	defer m.registry.mu.Unlock()
	m.registry.pdf.SetFont(m.family, m.style, size)
	w := m.registry.pdf.GetStringWidth(text)
	if m.oblique {
		// Synthetic oblique approximates the extra advance a true italic
		// face would report.
		w *= 1.02
	}
	return w
}

func (m *coreMetrics) Ascent(size float64) float64  { return size * 0.8 }
func (m *coreMetrics) Descent(size float64) float64 { return size * 0.2 }
