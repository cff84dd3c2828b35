package docmodel

import "fmt"

// User input errors: surfaced to the caller, recoverable at a document
// boundary. Each carries the context the caller needs to act on it — the
// offending node identity, style name, unit string, or color literal.

// UnknownStyleError is raised when a node references a style-name absent
// from the Stylesheet. Fatal for the document.
type UnknownStyleError struct {
	Name string
}

func (e *UnknownStyleError) Error() string {
	return fmt.Sprintf("docrender: unknown style %q", e.Name)
}

// FontFamilyNotLoadedError is raised when none of a family stack's entries
// are registered with the font lookup.
type FontFamilyNotLoadedError struct {
	Family string // first family name in the stack
}

func (e *FontFamilyNotLoadedError) Error() string {
	return fmt.Sprintf("docrender: font family %q not loaded", e.Family)
}

// FontStyleNotFoundForFamilyError is raised when a family is registered
// but lacks a face for the requested weight/slant combination.
type FontStyleNotFoundForFamilyError struct {
	Family string
	Weight FontWeight
	Slant  FontSlant
}

func (e *FontStyleNotFoundForFamilyError) Error() string {
	return fmt.Sprintf("docrender: family %q has no face for weight=%d slant=%d", e.Family, e.Weight, e.Slant)
}

// MalformedUnitError is raised when a length literal can't be parsed at all.
type MalformedUnitError struct {
	Unit string
}

func (e *MalformedUnitError) Error() string {
	return fmt.Sprintf("docrender: malformed unit %q", e.Unit)
}

// UnsupportedUnitError is raised when a length literal parses but names a
// unit the core doesn't implement.
type UnsupportedUnitError struct {
	Unit string
}

func (e *UnsupportedUnitError) Error() string {
	return fmt.Sprintf("docrender: unsupported unit %q", e.Unit)
}

// SvgParseError wraps a failure decoding an Image node's SVG payload.
type SvgParseError struct {
	Err error
}

func (e *SvgParseError) Error() string { return fmt.Sprintf("docrender: svg parse error: %v", e.Err) }
func (e *SvgParseError) Unwrap() error { return e.Err }

// ColorParseError is raised when a color literal can't be parsed.
type ColorParseError struct {
	Value string
}

func (e *ColorParseError) Error() string {
	return fmt.Sprintf("docrender: invalid color %q", e.Value)
}

// Internal errors: surfaced to the caller, indicate a bug or environment
// failure rather than bad input.

// ShapingFailedError surfaces an underlying Paragraph Shaper failure.
type ShapingFailedError struct {
	Err error
}

func (e *ShapingFailedError) Error() string { return fmt.Sprintf("docrender: shaping failed: %v", e.Err) }
func (e *ShapingFailedError) Unwrap() error { return e.Err }

// LayoutFailedError surfaces an underlying Block Layout Engine failure.
type LayoutFailedError struct {
	Err error
}

func (e *LayoutFailedError) Error() string { return fmt.Sprintf("docrender: layout failed: %v", e.Err) }
func (e *LayoutFailedError) Unwrap() error { return e.Err }
