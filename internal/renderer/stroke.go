package renderer

import (
	"github.com/ryanlewis/voidtype/internal/geometry"
	"github.com/ryanlewis/voidtype/internal/surface"
)

// StrokeStrategy paints one module onto a surface and returns the number
// of filled paths. The fill paint is set by the caller.
type StrokeStrategy interface {
	Draw(s surface.Surface, m Module) int
}

// Fill paints each primitive of a module once.
type Fill struct {
	CornerRadius float64
}

// Draw paints each primitive of the module as one solid path.
func (f Fill) Draw(s surface.Surface, m Module) int {
	return paintShape(s, m.Shape, f.CornerRadius)
}

// Stripes splits each primitive into N parallel stripes across its
// thickness. With N <= 1 it paints exactly what Fill paints.
type Stripes struct {
	N            int
	GapRatio     float64
	CornerRadius float64
}

// Draw paints the module split into st.N stripes per primitive.
func (st Stripes) Draw(s surface.Surface, m Module) int {
	return paintShape(s, m.Shape.Stripes(st.N, st.GapRatio), st.CornerRadius)
}

// paintShape fills one path per primitive.
func paintShape(s surface.Surface, shape geometry.Shape, radius float64) int {
	n := 0
	for _, r := range shape.Rects {
		if r.W <= 0 || r.H <= 0 {
			continue
		}
		if radius > 0 && r.Radius == 0 {
			r.Radius = radius
		}
		s.BeginPath()
		surface.Rect(s, r)
		s.Fill()
		n++
	}
	for _, sec := range shape.Sectors {
		if sec.Outer <= 0 {
			continue
		}
		s.BeginPath()
		surface.Sector(s, sec)
		s.Fill()
		n++
	}
	return n
}

// strategyFor picks the strategy for the fixed modes. ModeRandom is built
// per render since it carries the cache.
func strategyFor(opts *Options) StrokeStrategy {
	switch opts.Mode {
	case ModeStripes:
		return Stripes{N: opts.Strokes, GapRatio: opts.GapRatio, CornerRadius: opts.CornerRadius}
	default:
		return Fill{CornerRadius: opts.CornerRadius}
	}
}
