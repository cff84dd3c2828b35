package render

// Options configures a document render. It is grounded on the teacher's
// pkg/api.Options: a flat struct of page geometry, rendering toggles, and
// document metadata, built through the same functional-options pattern.
type Options struct {
	PageWidth  float64
	PageHeight float64

	MarginTop    float64
	MarginRight  float64
	MarginBottom float64
	MarginLeft   float64

	Debug bool

	FontDirectories []string

	Title    string
	Author   string
	Subject  string
	Keywords string
}

// Option mutates an Options value.
type Option func(*Options)

// DefaultOptions returns A4 portrait with 1-inch margins, matching the
// teacher's default.
func DefaultOptions() Options {
	return Options{
		PageWidth:  595.28,
		PageHeight: 841.89,

		MarginTop:    72,
		MarginRight:  72,
		MarginBottom: 72,
		MarginLeft:   72,

		Debug: false,
	}
}

// WithPageSize sets the page dimensions in points.
func WithPageSize(width, height float64) Option {
	return func(o *Options) { o.PageWidth = width; o.PageHeight = height }
}

// WithMargins sets all four page margins, in points.
func WithMargins(top, right, bottom, left float64) Option {
	return func(o *Options) {
		o.MarginTop, o.MarginRight, o.MarginBottom, o.MarginLeft = top, right, bottom, left
	}
}

// WithDebug toggles the per-node debug trace and the debug-overlay draw.
func WithDebug(debug bool) Option {
	return func(o *Options) { o.Debug = debug }
}

// WithFontDirectory appends dir to Options.FontDirectories. Nothing in the
// render pipeline reads that list: the Converter's core-font registry
// loads no font files.
func WithFontDirectory(dir string) Option {
	return func(o *Options) { o.FontDirectories = append(o.FontDirectories, dir) }
}

// WithTitle sets the document title metadata.
func WithTitle(title string) Option {
	return func(o *Options) { o.Title = title }
}

// WithAuthor sets the document author metadata.
func WithAuthor(author string) Option {
	return func(o *Options) { o.Author = author }
}

// WithSubject sets the document subject metadata.
func WithSubject(subject string) Option {
	return func(o *Options) { o.Subject = subject }
}

// WithKeywords sets the document keywords metadata.
func WithKeywords(keywords string) Option {
	return func(o *Options) { o.Keywords = keywords }
}

// Standard page sizes in points (1/72 inch).
const (
	PageSizeA4Width  = 595.28
	PageSizeA4Height = 841.89

	PageSizeLetterWidth  = 612
	PageSizeLetterHeight = 792

	PageSizeLegalWidth  = 612
	PageSizeLegalHeight = 1008
)

// WithPageSizeA4 sets the page size to A4.
func WithPageSizeA4() Option { return WithPageSize(PageSizeA4Width, PageSizeA4Height) }

// WithPageSizeLetter sets the page size to US Letter.
func WithPageSizeLetter() Option { return WithPageSize(PageSizeLetterWidth, PageSizeLetterHeight) }

// WithPageSizeLegal sets the page size to US Legal.
func WithPageSizeLegal() Option { return WithPageSize(PageSizeLegalWidth, PageSizeLegalHeight) }

// ContentWidth is the page width minus left/right margins.
func (o Options) ContentWidth() float64 { return o.PageWidth - o.MarginLeft - o.MarginRight }

// ContentHeight is the page height minus top/bottom margins.
func (o Options) ContentHeight() float64 { return o.PageHeight - o.MarginTop - o.MarginBottom }
