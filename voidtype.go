// Package voidtype renders text in Void, a procedural modular typeface.
//
// Every glyph is a 5x5 grid of modules: straight and centred bars, joints,
// corner links and two quarter arcs, each turned in quarter steps. Text is
// laid out glyph by glyph, each module is resolved to rectangles and
// annular sectors, and the result is painted solid, in parallel stripes,
// or in stripes whose weight, count and gap are drawn at random. Output
// goes to SVG, PNG or an in-memory recording.
//
// For one-off renders use Render. Interactive hosts keep a Session, which
// owns the parameters and the random cache so that repaints and exports
// agree stroke for stroke.
package voidtype

import (
	"io"
)

// Render draws text with the given options and writes the document to w.
// The default output is SVG with DefaultParams.
//
// Example:
//
//	err := voidtype.Render(os.Stdout, "VOID",
//	    voidtype.WithMode(voidtype.ModeStripes),
//	    voidtype.WithStripes(4, 0.25))
func Render(w io.Writer, text string, opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	p := o.params
	p.Text = text
	if o.mode != "" {
		p.Mode = o.mode
	}
	if o.strokes > 0 {
		p.Strokes, p.GapRatio = o.strokes, o.gapRatio
	}
	if o.seed != nil {
		p.Random.Seed = *o.seed
	}
	if o.width > 0 && o.height > 0 {
		p.Width, p.Height = o.width, o.height
	}

	s, err := NewSession(p)
	if err != nil {
		return err
	}
	if o.alphabet != nil {
		s.SetAlphabet(o.alphabet)
	}
	_, err = s.RenderTo(o.backend, w)
	return err
}

// Option configures Render.
type Option func(*options)

type options struct {
	params   Params
	backend  string
	alphabet *Alphabet
	mode     Mode
	strokes  int
	gapRatio float64
	seed     *int64
	width    int
	height   int
}

func defaultOptions() *options {
	return &options{params: DefaultParams(), backend: BackendSVG}
}

// WithParams replaces the base parameters. Options applied after it still
// override their fields; the text argument of Render always wins.
func WithParams(p Params) Option {
	return func(o *options) {
		o.params = p
	}
}

// WithBackend selects the output format: "svg" (default), "png" or
// "record".
func WithBackend(name string) Option {
	return func(o *options) {
		o.backend = name
	}
}

// WithAlphabet draws with a, falling back to the builtin glyphs for runes
// it does not define when it uses the builtin grid.
func WithAlphabet(a *Alphabet) Option {
	return func(o *options) {
		o.alphabet = a
	}
}

// WithMode selects fill, stripes or random strokes.
func WithMode(m Mode) Option {
	return func(o *options) {
		o.mode = m
	}
}

// WithStripes sets the stripe count and the share of each stroke given to
// gaps. Counts are clamped to 1..64 and ratios to 0..0.95.
func WithStripes(n int, gapRatio float64) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.strokes = n
		o.gapRatio = gapRatio
	}
}

// WithSeed fixes the random-mode seed.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = &seed
	}
}

// WithCanvas sets the canvas size in pixels.
func WithCanvas(width, height int) Option {
	return func(o *options) {
		o.width = width
		o.height = height
	}
}
