package voidtype

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/ryanlewis/voidtype/internal/common"
	"github.com/ryanlewis/voidtype/internal/debug"
	"github.com/ryanlewis/voidtype/internal/glyph"
	"github.com/ryanlewis/voidtype/internal/renderer"
	"github.com/ryanlewis/voidtype/internal/surface"

	// output backends register themselves with the surface registry
	_ "github.com/ryanlewis/voidtype/internal/surface/rastersurface"
	_ "github.com/ryanlewis/voidtype/internal/surface/recorder"
	_ "github.com/ryanlewis/voidtype/internal/surface/svgsurface"
)

// Session owns one set of render parameters and the random-mode cache
// that goes with them. Parameters change only through its setters, so a
// render always sees a consistent, validated set.
//
// The random cache is cleared when the text, the alphabet or the random
// ranges change, and reseeded by Reseed. Changes to sizes, colours or the
// canvas keep it, so a resize repaints the same strokes.
//
// A Session is not safe for concurrent use.
type Session struct {
	params   Params
	text     string // normalised params.Text
	alphabet *Alphabet
	renderer *renderer.Renderer
	trace    *debug.Session
}

// NewSession validates p and returns a session using the builtin
// alphabet.
func NewSession(p Params) (*Session, error) {
	if err := p.Normalize(); err != nil {
		return nil, err
	}
	return &Session{
		params:   p,
		text:     glyph.Normalize(p.Text),
		alphabet: BuiltinAlphabet(),
		renderer: renderer.New(p.Random.Seed),
	}, nil
}

// Params returns a copy of the current parameters.
func (s *Session) Params() Params {
	p := s.params
	if p.Gradient != nil {
		g := *p.Gradient
		p.Gradient = &g
	}
	return p
}

// Text returns the text as it will be drawn: NFC-composed and upper-cased.
func (s *Session) Text() string { return s.text }

// Alphabet returns the alphabet in use.
func (s *Session) Alphabet() *Alphabet { return s.alphabet }

// SetParams replaces every parameter at once. On error the session is
// unchanged.
func (s *Session) SetParams(p Params) error {
	if err := p.Normalize(); err != nil {
		return err
	}
	text := glyph.Normalize(p.Text)
	oldRandom := s.params.Random
	textChanged := text != s.text
	rangesChanged := randomRanges(p.Random) != randomRanges(oldRandom)
	s.params, s.text = p, text

	switch {
	case p.Random.Seed != oldRandom.Seed:
		s.renderer.Cache().Reseed(p.Random.Seed)
		s.traceParam("random.seed", strconv.FormatInt(p.Random.Seed, 10), true)
	case textChanged || rangesChanged:
		s.renderer.Cache().Clear()
	}
	if textChanged {
		s.traceParam("text", text, true)
	}
	if rangesChanged {
		s.traceParam("random", fmt.Sprintf("%+v", randomRanges(p.Random)), true)
	}
	return nil
}

// randomRanges drops the seed so ranges can be compared on their own.
func randomRanges(r RandomParams) RandomParams {
	r.Seed = 0
	return r
}

func (s *Session) update(fn func(p *Params)) error {
	p := s.Params()
	fn(&p)
	return s.SetParams(p)
}

// SetText replaces the text.
func (s *Session) SetText(text string) error {
	return s.update(func(p *Params) { p.Text = text })
}

// SetMode switches between fill, stripes and random.
func (s *Session) SetMode(m Mode) error {
	return s.update(func(p *Params) { p.Mode = m })
}

// SetModuleSize sets the pixel edge of one grid cell.
func (s *Session) SetModuleSize(size float64) error {
	return s.update(func(p *Params) { p.ModuleSize = size })
}

// SetStem sets the stroke weight; strokes are stem/2 thick.
func (s *Session) SetStem(stem float64) error {
	return s.update(func(p *Params) { p.Stem = stem })
}

// SetSpacing sets the letter and line gaps.
func (s *Session) SetSpacing(letter, line float64) error {
	return s.update(func(p *Params) {
		p.LetterSpacing = letter
		p.LineHeight = line
	})
}

// SetStripes sets the stripe count and gap ratio of stripe mode.
func (s *Session) SetStripes(n int, gapRatio float64) error {
	return s.update(func(p *Params) {
		p.Strokes = n
		p.GapRatio = gapRatio
	})
}

// SetColors sets the stroke and background colours; an empty background
// paints none.
func (s *Session) SetColors(fg, bg string) error {
	return s.update(func(p *Params) {
		p.Color = fg
		p.BgColor = bg
	})
}

// SetGradient fades strokes between two colours; nil turns it off.
func (s *Session) SetGradient(g *Gradient) error {
	return s.update(func(p *Params) { p.Gradient = g })
}

// SetGrid shows or hides the module grid.
func (s *Session) SetGrid(show bool) error {
	return s.update(func(p *Params) { p.ShowGrid = show })
}

// SetOverlay shows or hides the endpoint and connection markers.
func (s *Session) SetOverlay(show bool) error {
	return s.update(func(p *Params) { p.ShowOverlay = show })
}

// SetRandom replaces the random-mode ranges and scope.
func (s *Session) SetRandom(r RandomParams) error {
	return s.update(func(p *Params) { p.Random = r })
}

// SetCanvas resizes the canvas; the next render lays out again.
func (s *Session) SetCanvas(width, height int) error {
	return s.update(func(p *Params) {
		p.Width = width
		p.Height = height
	})
}

// Reseed clears the random cache and draws from seed from now on.
func (s *Session) Reseed(seed int64) {
	s.params.Random.Seed = seed
	s.renderer.Cache().Reseed(seed)
	s.traceParam("random.seed", strconv.FormatInt(seed, 10), true)
}

// SetAlphabet switches glyph tables; nil restores the builtin one.
func (s *Session) SetAlphabet(a *Alphabet) {
	if a == nil {
		a = BuiltinAlphabet()
	}
	s.alphabet = a
	s.renderer.Cache().Clear()
	s.traceParam("alphabet", a.Name, true)
}

// SetTrace sends debug events for this session to w. Tracing must also be
// enabled process-wide (VOID_DEBUG=1 or the CLI's --debug); otherwise this
// does nothing.
func (s *Session) SetTrace(w io.Writer, pretty bool) {
	if s.trace != nil {
		//nolint:errcheck // replacing the sink
		s.trace.Close()
	}
	s.trace = debug.NewSession(debug.NewSink(w, pretty))
}

// CloseTrace ends the trace session and flushes its sink.
func (s *Session) CloseTrace() error {
	err := s.trace.Close()
	s.trace = nil
	return err
}

func (s *Session) traceParam(field, value string, cleared bool) {
	s.trace.Emit("params", "Set", debug.ParamsData{Field: field, Value: value, CacheCleared: cleared})
	common.Logger().Debug("params changed", "field", field, "cache_cleared", cleared)
}

// render draws the current text on surf.
func (s *Session) render(surf surface.Surface) (Stats, error) {
	opts := s.params.rendererOptions(s.alphabet.tableOrDefault())
	opts.Debug = s.trace
	stats, err := s.renderer.Render(surf, s.text, opts)
	if err != nil {
		s.trace.Emit("render", "Error", debug.ErrorData{Type: "render", Message: err.Error()})
		return statsFrom(stats), err
	}
	return statsFrom(stats), nil
}

// RenderTo draws the current text with the named backend ("svg", "png"
// or "record") onto w. Empty text draws an empty canvas.
func (s *Session) RenderTo(backend string, w io.Writer) (Stats, error) {
	surf, err := surface.New(backend, w)
	if err != nil {
		return Stats{}, err
	}
	return s.render(surf)
}

// Run renders a frame with the named backend every interval and hands it
// to frame, until ctx is cancelled or a render or frame call fails. The
// frame number starts at 0. Parameters may be changed from inside frame;
// the next tick picks them up.
func (s *Session) Run(ctx context.Context, interval time.Duration, backend string, frame func(n int, data []byte) error) error {
	if interval <= 0 {
		return fmt.Errorf("%w: frame interval must be positive", ErrInvalidParams)
	}
	if !surface.IsRegistered(backend) {
		return fmt.Errorf("%w %q", ErrUnknownBackend, backend)
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var buf bytes.Buffer
	for n := 0; ; n++ {
		buf.Reset()
		if _, err := s.RenderTo(backend, &buf); err != nil {
			return fmt.Errorf("frame %d: %w", n, err)
		}
		if err := frame(n, buf.Bytes()); err != nil {
			return fmt.Errorf("frame %d: %w", n, err)
		}
		if ctx.Err() != nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
