// Package renderer turns text into positioned module shapes and paints
// them on a surface.
//
// Compose produces the layout (the draw list); a Renderer paints a layout
// with one of the stroke strategies. The random-mode cache lives on the
// Renderer so a repaint of the same text repeats the same draws.
package renderer

import (
	"fmt"
	"image/color"
	"time"
	"unicode/utf8"

	"github.com/ryanlewis/voidtype/internal/common"
	"github.com/ryanlewis/voidtype/internal/connectivity"
	"github.com/ryanlewis/voidtype/internal/debug"
	"github.com/ryanlewis/voidtype/internal/glyph"
	"github.com/ryanlewis/voidtype/internal/surface"
)

// Renderer paints layouts. It is not safe for concurrent use.
type Renderer struct {
	cache *Cache
}

// New returns a renderer whose random cache draws from seed.
func New(seed int64) *Renderer {
	return &Renderer{cache: NewCache(seed)}
}

// Cache returns the random-mode cache.
func (r *Renderer) Cache() *Cache {
	return r.cache
}

// Render composes text and paints it on s as one document.
func (r *Renderer) Render(s surface.Surface, text string, opts *Options) (Stats, error) {
	if s == nil {
		return Stats{}, ErrNilSurface
	}
	layout := Compose(text, opts)
	defer layout.Release()
	return r.Draw(s, layout, opts)
}

// Draw paints a composed layout on s, from Begin to End.
func (r *Renderer) Draw(s surface.Surface, layout *Layout, opts *Options) (Stats, error) {
	if s == nil {
		return Stats{}, ErrNilSurface
	}
	start := time.Now()
	stats := Stats{Lines: len(layout.Lines), Glyphs: len(layout.Glyphs), Fallbacks: layout.Fallbacks()}

	opts.Debug.Emit("render", "Start", debug.RenderStartData{
		Text:       layoutText(layout),
		Runes:      len(layout.Glyphs),
		Lines:      len(layout.Lines),
		Mode:       opts.Mode.String(),
		ModuleSize: opts.ModuleSize,
		Stem:       opts.Stem,
		Width:      opts.Width,
		Height:     opts.Height,
	})

	if err := s.Begin(opts.Width, opts.Height); err != nil {
		return stats, fmt.Errorf("begin surface: %w", err)
	}

	if opts.Background != nil {
		s.SetFillColor(opts.Background)
		s.BeginPath()
		s.MoveTo(0, 0)
		s.LineTo(layout.Width, 0)
		s.LineTo(layout.Width, layout.Height)
		s.LineTo(0, layout.Height)
		s.ClosePath()
		s.Fill()
	}

	for i, line := range layout.Lines {
		opts.Debug.Emit("render", "Line", debug.LineData{
			Line:   i,
			Runes:  len(line.Runes),
			Width:  line.Width,
			StartX: line.X,
			Y:      line.Y,
		})
	}

	strategy := r.strategy(opts)
	var paint surface.Surface = s
	if opts.GradientTo != nil {
		paint = surface.NewGradientFill(s, opts.Color, opts.GradientTo)
	}

	for i := range layout.Glyphs {
		g := &layout.Glyphs[i]
		opts.Debug.Emit("render", "Glyph", debug.GlyphData{
			Line:     g.Line,
			Index:    g.Index,
			Rune:     g.Rune,
			X:        g.X,
			Y:        g.Y,
			Modules:  len(g.Modules),
			Fallback: g.Fallback,
		})

		s.BeginGroup(fmt.Sprintf("glyph-%d-%d", g.Line, g.Index))
		if opts.ShowGrid {
			drawGrid(s, layout, g, opts.GridColor)
		}
		s.SetFillColor(opts.Color)
		for _, m := range g.Modules {
			stats.Paths += strategy.Draw(paint, m)
		}
		stats.Modules += len(g.Modules)
		if opts.ShowOverlay {
			drawOverlay(s, layout, g)
		}
		s.EndGroup()
	}

	if err := s.End(); err != nil {
		return stats, fmt.Errorf("end surface: %w", err)
	}

	elapsed := time.Since(start)
	opts.Debug.Emit("render", "End", debug.RenderEndData{
		Glyphs:     stats.Glyphs,
		Shapes:     stats.Modules,
		Primitives: stats.Paths,
		ElapsedMs:  elapsed.Milliseconds(),
	})
	common.Logger().Debug("render",
		"glyphs", stats.Glyphs,
		"modules", stats.Modules,
		"paths", stats.Paths,
		"mode", opts.Mode.String(),
		"elapsed", elapsed)
	if stats.Fallbacks > 0 {
		common.Logger().Info("runes without glyphs drawn as space", "count", stats.Fallbacks)
	}
	return stats, nil
}

func (r *Renderer) strategy(opts *Options) StrokeStrategy {
	if opts.Mode == ModeRandom {
		return Random{
			Cache:        r.cache,
			Options:      opts.Random,
			Stem:         opts.Stem,
			CornerRadius: opts.CornerRadius,
			Debug:        opts.Debug,
		}
	}
	return strategyFor(opts)
}

// drawGrid strokes the module lines of one glyph box.
func drawGrid(s surface.Surface, layout *Layout, g *PlacedGlyph, c color.Color) {
	size := layout.ModuleSize
	gw, gh := layout.GridWidth(), layout.GridHeight()
	s.SetStroke(c, common.GridLineWidth)
	s.BeginPath()
	for i := 0; i <= layout.Cols; i++ {
		x := g.X + float64(i)*size
		s.MoveTo(x, g.Y)
		s.LineTo(x, g.Y+gh)
	}
	for j := 0; j <= layout.Rows; j++ {
		y := g.Y + float64(j)*size
		s.MoveTo(g.X, y)
		s.LineTo(g.X+gw, y)
	}
	s.Stroke()
}

var (
	endpointColor   = mustHex(common.OverlayEndpointColor)
	connectionColor = mustHex(common.OverlayConnectionColor)
)

func mustHex(s string) color.Color {
	c, err := surface.ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// drawOverlay marks endpoints as discs on the middle of their side and
// connections as short ticks across the shared edge.
func drawOverlay(s surface.Surface, layout *Layout, g *PlacedGlyph) {
	res := connectivity.Analyze(g.Code, layout.Cols, layout.Rows)
	size := layout.ModuleSize

	if len(res.Connections) > 0 {
		reach := size * common.OverlayConnectionReach
		s.SetStroke(connectionColor, size*common.OverlayConnectionWidth)
		s.BeginPath()
		for _, c := range res.Connections {
			x, y := sideMidpoint(g, size, c.A, c.SideA)
			dx, dy := c.SideA.Offset()
			s.MoveTo(x-float64(dx)*reach, y-float64(dy)*reach)
			s.LineTo(x+float64(dx)*reach, y+float64(dy)*reach)
		}
		s.Stroke()
	}

	s.SetFillColor(endpointColor)
	for _, e := range res.Endpoints {
		x, y := sideMidpoint(g, size, e.Cell, e.Side)
		s.BeginPath()
		surface.Disc(s, x, y, size*common.OverlayEndpointRadius)
		s.Fill()
	}
}

func sideMidpoint(g *PlacedGlyph, size float64, c connectivity.CellRef, side glyph.Side) (x, y float64) {
	cx := g.X + (float64(c.Col)+0.5)*size
	cy := g.Y + (float64(c.Row)+0.5)*size
	dx, dy := side.Offset()
	return cx + float64(dx)*size/2, cy + float64(dy)*size/2
}

// layoutText rebuilds the composed text for tracing.
func layoutText(l *Layout) string {
	n := 0
	for _, line := range l.Lines {
		n += len(line.Runes) + 1
	}
	buf := make([]byte, 0, n)
	for i, line := range l.Lines {
		if i > 0 {
			buf = append(buf, '\n')
		}
		for _, r := range line.Runes {
			buf = utf8.AppendRune(buf, r)
		}
	}
	return string(buf)
}
