// Package docrender re-exports pkg/render's Converter and Options at the
// module root, mirroring the teacher's root-level gompdf.go shim over
// pkg/api.
package docrender

import "github.com/inkfold/docrender/pkg/render"

type Converter = render.Converter
type Options = render.Options
type Option = render.Option

func New() *Converter                           { return render.New() }
func NewWithOptions(options Options) *Converter { return render.NewWithOptions(options) }
func DefaultOptions() Options                   { return render.DefaultOptions() }

var (
	WithPageSize       = render.WithPageSize
	WithMargins        = render.WithMargins
	WithDebug          = render.WithDebug
	WithFontDirectory  = render.WithFontDirectory
	WithTitle          = render.WithTitle
	WithAuthor         = render.WithAuthor
	WithSubject        = render.WithSubject
	WithKeywords       = render.WithKeywords
	WithPageSizeA4     = render.WithPageSizeA4
	WithPageSizeLetter = render.WithPageSizeLetter
	WithPageSizeLegal  = render.WithPageSizeLegal
)

const (
	PageSizeA4Width  = render.PageSizeA4Width
	PageSizeA4Height = render.PageSizeA4Height

	PageSizeLetterWidth  = render.PageSizeLetterWidth
	PageSizeLetterHeight = render.PageSizeLetterHeight
	PageSizeLegalWidth   = render.PageSizeLegalWidth
	PageSizeLegalHeight  = render.PageSizeLegalHeight
)
