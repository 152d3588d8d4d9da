// Package surface defines the drawing primitives the renderer issues and
// the registry of output backends that implement them.
//
// Coordinates are canvas pixels, y down. Angles are radians and grow
// clockwise on screen, matching the geometry package.
package surface

import (
	"image/color"
	"math"

	"github.com/ryanlewis/voidtype/internal/geometry"
)

// Surface is a path-based 2D drawing target.
//
// A path is opened with BeginPath, built with MoveTo, LineTo, Arc and
// ClosePath, and consumed by Fill or Stroke. Groups bracket the paths of
// one glyph and may nest.
type Surface interface {
	// Begin starts a document of the given pixel size.
	Begin(width, height int) error
	// End finishes the document and flushes any output.
	End() error

	BeginGroup(id string)
	EndGroup()

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	// Arc adds a circular arc around (cx, cy) from angle a0 to a1,
	// clockwise unless ccw is set. When the path has a current point a
	// straight segment joins it to the arc start.
	Arc(cx, cy, r, a0, a1 float64, ccw bool)
	ClosePath()

	SetFillColor(c color.Color)
	SetFillGradient(g Gradient)
	Fill()

	SetStroke(c color.Color, width float64)
	Stroke()
}

// Gradient is a two-stop linear gradient between two canvas points.
type Gradient struct {
	X0, Y0, X1, Y1 float64
	From, To       color.Color
}

// Rect traces r as a closed path, with rounded corners when r.Radius is
// positive. The caller opens the path and fills it.
func Rect(s Surface, r geometry.Rect) {
	rad := math.Min(r.Radius, math.Min(r.W, r.H)/2)
	if rad <= 0 {
		s.MoveTo(r.X, r.Y)
		s.LineTo(r.X+r.W, r.Y)
		s.LineTo(r.X+r.W, r.Y+r.H)
		s.LineTo(r.X, r.Y+r.H)
		s.ClosePath()
		return
	}
	x0, y0, x1, y1 := r.X, r.Y, r.X+r.W, r.Y+r.H
	s.MoveTo(x0+rad, y0)
	s.LineTo(x1-rad, y0)
	s.Arc(x1-rad, y0+rad, rad, -math.Pi/2, 0, false)
	s.LineTo(x1, y1-rad)
	s.Arc(x1-rad, y1-rad, rad, 0, math.Pi/2, false)
	s.LineTo(x0+rad, y1)
	s.Arc(x0+rad, y1-rad, rad, math.Pi/2, math.Pi, false)
	s.LineTo(x0, y0+rad)
	s.Arc(x0+rad, y0+rad, rad, math.Pi, 1.5*math.Pi, false)
	s.ClosePath()
}

// Sector traces an annular sector: the outer arc clockwise, then the
// inner arc back. A pie sector runs from its centre instead.
func Sector(s Surface, sec geometry.Sector) {
	if sec.Outer <= 0 {
		return
	}
	if sec.IsPie() {
		s.MoveTo(sec.CX, sec.CY)
		s.Arc(sec.CX, sec.CY, sec.Outer, sec.Start, sec.End, false)
		s.ClosePath()
		return
	}
	p := sec.PointAt(sec.Outer, sec.Start)
	s.MoveTo(p.X, p.Y)
	s.Arc(sec.CX, sec.CY, sec.Outer, sec.Start, sec.End, false)
	s.Arc(sec.CX, sec.CY, sec.Inner, sec.End, sec.Start, true)
	s.ClosePath()
}

// Disc traces a full circle.
func Disc(s Surface, cx, cy, r float64) {
	s.MoveTo(cx+r, cy)
	s.Arc(cx, cy, r, 0, math.Pi, false)
	s.Arc(cx, cy, r, math.Pi, 2*math.Pi, false)
	s.ClosePath()
}

// Sweep returns the signed angle an arc from a0 to a1 covers in the given
// direction: positive clockwise, negative counter-clockwise, at most one
// full turn.
func Sweep(a0, a1 float64, ccw bool) float64 {
	d := a1 - a0
	if !ccw {
		for d < 0 {
			d += 2 * math.Pi
		}
		return math.Min(d, 2*math.Pi)
	}
	for d > 0 {
		d -= 2 * math.Pi
	}
	return math.Max(d, -2*math.Pi)
}
