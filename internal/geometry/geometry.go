// Package geometry turns a single glyph module (type, rotation, cell box,
// stem) into drawable primitives: axis-aligned rectangles and annular
// sectors. Coordinates are canvas pixels with y growing downward, so a
// positive angle sweeps clockwise on screen.
package geometry

import (
	"math"

	"github.com/ryanlewis/voidtype/internal/glyph"
)

// Point is a position in canvas pixels.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned stroke segment. Vertical reports whether the
// stroke runs top to bottom, in which case its thickness is W.
type Rect struct {
	X, Y, W, H float64
	Radius     float64
	Vertical   bool
}

// Thickness returns the extent across the stroke direction.
func (r Rect) Thickness() float64 {
	if r.Vertical {
		return r.W
	}
	return r.H
}

// Min returns the top-left corner.
func (r Rect) Min() Point { return Point{r.X, r.Y} }

// Max returns the bottom-right corner.
func (r Rect) Max() Point { return Point{r.X + r.W, r.Y + r.H} }

// Sector is an annular sector around (CX, CY) sweeping clockwise from
// Start to End radians. Inner == 0 makes it a pie slice. Stroke is the
// nominal stroke thickness before clamping to the cell; zero means
// Outer-Inner.
type Sector struct {
	CX, CY       float64
	Inner, Outer float64
	Start, End   float64
	Stroke       float64
}

// Thickness returns the radial width of the ring.
func (s Sector) Thickness() float64 {
	return s.Outer - s.Inner
}

// IsPie reports whether the sector has no hole.
func (s Sector) IsPie() bool {
	return s.Inner <= 0
}

// PointAt returns the point at radius r and angle a around the centre.
func (s Sector) PointAt(r, a float64) Point {
	return Point{s.CX + r*math.Cos(a), s.CY + r*math.Sin(a)}
}

// Shape is the resolved geometry of one module cell.
type Shape struct {
	Type     glyph.ModuleType
	Rotation int
	Cell     Rect
	Rects    []Rect
	Sectors  []Sector
}

// Empty reports whether the shape draws nothing.
func (s Shape) Empty() bool {
	return len(s.Rects) == 0 && len(s.Sectors) == 0
}

// Primitives returns the number of rectangles plus sectors.
func (s Shape) Primitives() int {
	return len(s.Rects) + len(s.Sectors)
}

// Resolve builds the primitives for a module of type t rotated rot
// clockwise quarter turns inside the w×h cell at (x, y). Strokes are
// stem/2 thick; a stroke that would not fit the cell is clamped to the
// cell so no primitive ever has a negative dimension.
func Resolve(t glyph.ModuleType, rot int, x, y, w, h, stem float64) Shape {
	rot = ((rot % 4) + 4) % 4
	shape := Shape{
		Type:     t,
		Rotation: rot,
		Cell:     Rect{X: x, Y: y, W: w, H: h},
	}
	half := math.Max(stem/2, 0)
	tx := math.Min(half, w)
	ty := math.Min(half, h)

	left := Rect{X: x, Y: y, W: tx, H: h, Vertical: true}
	switch t {
	case glyph.Straight:
		shape.Rects = []Rect{left}
	case glyph.Central:
		shape.Rects = []Rect{{X: x + (w-tx)/2, Y: y, W: tx, H: h, Vertical: true}}
	case glyph.Joint:
		shape.Rects = []Rect{left, {X: x, Y: y + (h-ty)/2, W: w, H: ty}}
	case glyph.Link:
		shape.Rects = []Rect{left, {X: x, Y: y + h - ty, W: w, H: ty}}
	case glyph.Round:
		shape.Sectors = []Sector{{
			CX: x + w, CY: y,
			Inner: math.Max(w-half, 0), Outer: w,
			Start: math.Pi / 2, End: math.Pi,
			Stroke: half,
		}}
	case glyph.Bend:
		shape.Sectors = []Sector{{
			CX: x + w, CY: y,
			Inner: 0, Outer: math.Min(half, w),
			Start: math.Pi / 2, End: math.Pi,
			Stroke: half,
		}}
	default:
		return shape
	}

	if rot == 0 {
		return shape
	}
	c := Point{x + w/2, y + h/2}
	for i := range shape.Rects {
		shape.Rects[i] = rotateRect(shape.Rects[i], c, rot)
	}
	for i := range shape.Sectors {
		shape.Sectors[i] = rotateSector(shape.Sectors[i], c, rot)
	}
	return shape
}

// rotatePoint turns p clockwise (on screen) k quarter turns about c.
func rotatePoint(p, c Point, k int) Point {
	dx, dy := p.X-c.X, p.Y-c.Y
	for i := 0; i < k; i++ {
		dx, dy = -dy, dx
	}
	return Point{c.X + dx, c.Y + dy}
}

func rotateRect(r Rect, c Point, k int) Rect {
	a := rotatePoint(r.Min(), c, k)
	b := rotatePoint(r.Max(), c, k)
	return Rect{
		X:        math.Min(a.X, b.X),
		Y:        math.Min(a.Y, b.Y),
		W:        math.Abs(b.X - a.X),
		H:        math.Abs(b.Y - a.Y),
		Radius:   r.Radius,
		Vertical: r.Vertical != (k%2 == 1),
	}
}

func rotateSector(s Sector, c Point, k int) Sector {
	p := rotatePoint(Point{s.CX, s.CY}, c, k)
	span := s.End - s.Start
	s.CX, s.CY = p.X, p.Y
	s.Start = normAngle(s.Start + float64(k)*math.Pi/2)
	s.End = s.Start + span
	return s
}

// normAngle maps a to [0, 2π).
func normAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	if 2*math.Pi-a < 1e-12 {
		return 0
	}
	return a
}
