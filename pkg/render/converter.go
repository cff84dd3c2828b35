package render

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/inkfold/docrender/internal/docdecode"
	"github.com/inkfold/docrender/internal/pdfemit"
	"github.com/inkfold/docrender/pkg/fonts"
)

// Converter is the single public entry point: it decodes a JSON document
// description, runs it through Document.Render, and emits the result as a
// PDF. It is grounded on the teacher's pkg/api.Converter, which plays the
// same role (parse, compute styles, layout, paginate, render) behind one
// struct with New/NewWithOptions constructors and a Convert-family of
// methods, each stage's error wrapped with enough context to act on.
type Converter struct {
	doc   *Document
	fonts fonts.Registry
}

// New builds a Converter with default options and a core-font registry.
func New() *Converter {
	return NewWithOptions(DefaultOptions())
}

// NewWithOptions builds a Converter with explicit options.
func NewWithOptions(options Options) *Converter {
	reg := fonts.NewCoreRegistry(nil)
	return &Converter{doc: NewWithOptions(options, reg), fonts: reg}
}

// SetDebug toggles per-stage debug tracing and the debug overlay, returning
// the receiver for chaining, matching the teacher's ConvertFile call site
// (`converter.SetDebug(true)`).
func (c *Converter) SetDebug(debug bool) *Converter {
	c.doc = c.doc.WithOption(func(o *Options) { o.Debug = debug })
	return c
}

// Convert decodes documentJSON, renders it, and writes the resulting PDF
// bytes to output.
func (c *Converter) Convert(documentJSON []byte, output io.Writer) error {
	decoded, err := docdecode.Decode(documentJSON)
	if err != nil {
		return fmt.Errorf("docrender: decode failed: %w", err)
	}

	opts := c.doc.options
	if decoded.PageWidth > 0 {
		opts.PageWidth = decoded.PageWidth
	}
	if decoded.PageHeight > 0 {
		opts.PageHeight = decoded.PageHeight
	}
	c.doc = NewWithOptions(opts, c.fonts)

	result, err := c.doc.Render(decoded.Root, decoded.Stylesheet)
	if err != nil {
		return err
	}

	emitter := pdfemit.New(c.fonts)
	emitter.Debug = opts.Debug
	meta := pdfemit.Metadata{
		Title: opts.Title, Author: opts.Author,
		Subject: opts.Subject, Keywords: opts.Keywords,
		Creator: "docrender", Producer: "docrender",
	}
	if err := emitter.Emit(output, result.Nodes, result.PageCount, opts.PageWidth, opts.PageHeight, meta); err != nil {
		return fmt.Errorf("docrender: emit failed: %w", err)
	}
	return nil
}

// ConvertBytes is a convenience wrapper returning the PDF as a byte slice.
func (c *Converter) ConvertBytes(documentJSON []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.Convert(documentJSON, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ConvertFile reads a JSON document description from inputPath and writes
// the rendered PDF to outputPath.
func (c *Converter) ConvertFile(inputPath, outputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("docrender: failed to read input file: %w", err)
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("docrender: failed to create output file: %w", err)
	}
	defer f.Close()
	return c.Convert(data, f)
}
