package pdfemit

// Register a broad set of image decoders so image.Decode can handle the
// raster formats an Image node's Content may carry, verbatim from the
// teacher's internal/render/pdf/decoders.go.
import (
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)
