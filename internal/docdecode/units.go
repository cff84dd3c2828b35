// Package docdecode deserializes a JSON document description (a node tree
// plus a named-style stylesheet) into the pkg/docmodel types the core
// pipeline consumes. It is an external collaborator per spec.md §1: the
// core never parses JSON, units, or colors itself — this package is the
// only thing that does, consumed afterward only through the docmodel
// types it produces.
//
// It is grounded on the teacher's internal/parser/css and
// internal/parser/html packages for the shape of "a small parser package
// producing a plain data structure", but the format itself is new: the
// teacher parses CSS selectors and HTML tags, while a docrender document
// is already a typed JSON tree referencing named style blocks directly
// (spec.md §6, "Stylesheet file format").
package docdecode

import (
	"strconv"
	"strings"

	"github.com/inkfold/docrender/pkg/docmodel"
)

// parseLength parses a length literal into points. Bare numbers and a
// "pt" suffix are points; "mm" is converted via docmodel.MMToPt per
// spec.md §6. Any other suffix is UnsupportedUnitError; a literal whose
// numeric part doesn't parse at all is MalformedUnitError.
func parseLength(lit string) (float64, error) {
	s := strings.TrimSpace(lit)
	if s == "" {
		return 0, &docmodel.MalformedUnitError{Unit: lit}
	}

	numEnd := len(s)
	for numEnd > 0 {
		c := s[numEnd-1]
		if (c >= '0' && c <= '9') || c == '.' || c == '-' || c == '+' {
			break
		}
		numEnd--
	}
	numPart, unitPart := s[:numEnd], strings.TrimSpace(s[numEnd:])

	val, err := strconv.ParseFloat(numPart, 64)
	if err != nil {
		return 0, &docmodel.MalformedUnitError{Unit: lit}
	}

	switch strings.ToLower(unitPart) {
	case "", "pt":
		return val, nil
	case "mm":
		return docmodel.MMToPt(val), nil
	default:
		return 0, &docmodel.UnsupportedUnitError{Unit: unitPart}
	}
}

// parseSizeValue parses a SizeValue literal: the literal "auto" or a
// length understood by parseLength.
func parseSizeValue(lit string) (docmodel.SizeValue, error) {
	if strings.EqualFold(strings.TrimSpace(lit), "auto") {
		return docmodel.Auto(), nil
	}
	v, err := parseLength(lit)
	if err != nil {
		return docmodel.SizeValue{}, err
	}
	return docmodel.Sized(v), nil
}

var namedColors = map[string]docmodel.Color{
	"black":       {R: 0, G: 0, B: 0, A: 255},
	"white":       {R: 255, G: 255, B: 255, A: 255},
	"red":         {R: 255, G: 0, B: 0, A: 255},
	"green":       {R: 0, G: 128, B: 0, A: 255},
	"blue":        {R: 0, G: 0, B: 255, A: 255},
	"gray":        {R: 128, G: 128, B: 128, A: 255},
	"grey":        {R: 128, G: 128, B: 128, A: 255},
	"transparent": {R: 0, G: 0, B: 0, A: 0},
}

// parseColor parses a hex literal (#rgb, #rrggbb, #rrggbbaa), an
// rgb()/rgba() functional literal, or one of a small set of named colors.
func parseColor(lit string) (docmodel.Color, error) {
	s := strings.TrimSpace(lit)
	if s == "" {
		return docmodel.Color{}, &docmodel.ColorParseError{Value: lit}
	}
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") {
		return parseHexColor(s)
	}
	if strings.HasPrefix(strings.ToLower(s), "rgb") {
		return parseFuncColor(s)
	}
	return docmodel.Color{}, &docmodel.ColorParseError{Value: lit}
}

func parseHexColor(s string) (docmodel.Color, error) {
	hex := strings.TrimPrefix(s, "#")
	expand := func(pair string) (uint8, bool) {
		v, err := strconv.ParseUint(pair, 16, 8)
		return uint8(v), err == nil
	}
	switch len(hex) {
	case 3, 4:
		r, ok1 := expand(string([]byte{hex[0], hex[0]}))
		g, ok2 := expand(string([]byte{hex[1], hex[1]}))
		b, ok3 := expand(string([]byte{hex[2], hex[2]}))
		a := uint8(255)
		ok4 := true
		if len(hex) == 4 {
			a, ok4 = expand(string([]byte{hex[3], hex[3]}))
		}
		if ok1 && ok2 && ok3 && ok4 {
			return docmodel.Color{R: r, G: g, B: b, A: a}, nil
		}
	case 6, 8:
		r, ok1 := expand(hex[0:2])
		g, ok2 := expand(hex[2:4])
		b, ok3 := expand(hex[4:6])
		a := uint8(255)
		ok4 := true
		if len(hex) == 8 {
			a, ok4 = expand(hex[6:8])
		}
		if ok1 && ok2 && ok3 && ok4 {
			return docmodel.Color{R: r, G: g, B: b, A: a}, nil
		}
	}
	return docmodel.Color{}, &docmodel.ColorParseError{Value: s}
}

func parseFuncColor(s string) (docmodel.Color, error) {
	open := strings.IndexByte(s, '(')
	close := strings.LastIndexByte(s, ')')
	if open < 0 || close < 0 || close < open {
		return docmodel.Color{}, &docmodel.ColorParseError{Value: s}
	}
	parts := strings.Split(s[open+1:close], ",")
	if len(parts) < 3 {
		return docmodel.Color{}, &docmodel.ColorParseError{Value: s}
	}
	vals := make([]int, 3)
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n < 0 || n > 255 {
			return docmodel.Color{}, &docmodel.ColorParseError{Value: s}
		}
		vals[i] = n
	}
	a := uint8(255)
	if len(parts) >= 4 {
		f, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || f < 0 || f > 1 {
			return docmodel.Color{}, &docmodel.ColorParseError{Value: s}
		}
		a = uint8(f * 255)
	}
	return docmodel.Color{R: uint8(vals[0]), G: uint8(vals[1]), B: uint8(vals[2]), A: a}, nil
}
