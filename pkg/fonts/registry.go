// Package fonts defines the font lookup contract the core calls into and a
// small in-memory registry implementing it. The core never parses a font
// file itself — that lives outside this module — it only asks the
// registry for a registered family name and a per-glyph advance width.
package fonts

import "github.com/inkfold/docrender/pkg/docmodel"

// Face identifies one concrete (family, weight, slant) combination
// registered with a Registry.
type Face struct {
	Family  string
	Weight  docmodel.FontWeight
	Slant   docmodel.FontSlant
	Oblique bool // synthetic oblique: no italic face registered, skew measured width
}

// Metrics is what a registered face reports about itself. AdvanceWidth
// returns the width, in points, that text would occupy at the given size
// if set in this face — the one measurement primitive the shaper needs.
type Metrics interface {
	AdvanceWidth(text string, size float64) float64
	Ascent(size float64) float64
	Descent(size float64) float64
}

// Registry resolves a family stack to the first registered family name and
// hands back Metrics for a resolved (family, weight, slant) triple.
type Registry interface {
	// Resolve returns the first family in stack that is registered. If
	// none match it returns FontFamilyNotLoadedError naming stack[0].
	Resolve(stack []string) (string, error)
	// Face returns the Metrics for family at the given weight/slant. An
	// implementation backed by a fixed set of loaded font files that lacks
	// a face for the requested combination should return
	// docmodel.FontStyleNotFoundForFamilyError rather than fail the whole
	// family; CoreRegistry never does, since it can always synthesize
	// bold/oblique from its core metrics — only a wholly unregistered
	// family is fatal there.
	Face(family string, weight docmodel.FontWeight, slant docmodel.FontSlant) (Metrics, Face, error)
}
