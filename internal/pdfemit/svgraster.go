// Package pdfemit is the PDF byte emitter: the only stage downstream of
// the Paginator, consumed only through the ordered []docmodel.PaginatedNode
// sequence and page count the core produces (spec.md §1, "external
// collaborators"). It never re-derives layout or style; it paints exactly
// what it is handed.
package pdfemit

import (
	"bytes"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/inkfold/docrender/pkg/docmodel"
)

// rasterizeSVG parses raw SVG source and rasterizes it to an image.RGBA at
// the given pixel size, grounded on the teacher's examples/images_and_styles
// use of oksvg+rasterx (the teacher's render path itself has no SVG
// support; the retrieval pack's example program is the grounding source
// for this pairing, per DESIGN.md).
func rasterizeSVG(svgSource string, widthPx, heightPx int) (*image.RGBA, error) {
	if widthPx <= 0 {
		widthPx = 1
	}
	if heightPx <= 0 {
		heightPx = 1
	}
	icon, err := oksvg.ReadIconStream(bytes.NewReader([]byte(svgSource)))
	if err != nil {
		return nil, &docmodel.SvgParseError{Err: err}
	}
	icon.SetTarget(0, 0, float64(widthPx), float64(heightPx))

	img := image.NewRGBA(image.Rect(0, 0, widthPx, heightPx))
	scanner := rasterx.NewScannerGV(widthPx, heightPx, img, img.Bounds())
	raster := rasterx.NewDasher(widthPx, heightPx, scanner)
	icon.Draw(raster, 1.0)
	return img, nil
}
