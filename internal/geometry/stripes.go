package geometry

import "math"

// MaxGapRatio caps the share of a stroke given over to gaps.
const MaxGapRatio = 0.95

const eps = 1e-9

// StripeWidths splits a stroke of the given thickness into n stripes.
// It returns the stripe width and the gap between stripes, which satisfy
// n*width + (n-1)*gap == thickness. A single stripe has no gap.
func StripeWidths(thickness float64, n int, gapRatio float64) (width, gap float64) {
	if n < 1 {
		n = 1
	}
	if thickness <= 0 {
		return 0, 0
	}
	if n > 1 {
		gap = thickness * clampRatio(gapRatio) / float64(n-1)
	}
	width = (thickness - gap*float64(n-1)) / float64(n)
	return width, gap
}

func clampRatio(r float64) float64 {
	if math.IsNaN(r) || r < 0 {
		return 0
	}
	return math.Min(r, MaxGapRatio)
}

// Stripes splits r across its thickness into n parallel rectangles.
// The first stripe sits on the rectangle's min edge.
func (r Rect) Stripes(n int, gapRatio float64) []Rect {
	if n <= 1 {
		return []Rect{r}
	}
	w2, gap := StripeWidths(r.Thickness(), n, gapRatio)
	out := make([]Rect, 0, n)
	for i := 0; i < n; i++ {
		s := r
		off := float64(i) * (w2 + gap)
		if r.Vertical {
			s.X, s.W = r.X+off, w2
		} else {
			s.Y, s.H = r.Y+off, w2
		}
		s.Radius = math.Min(r.Radius, w2/2)
		out = append(out, s)
	}
	return out
}

// Stripes splits s into n concentric sectors, outermost first. Stripes are
// sized from the nominal stroke, so when the stroke is wider than the
// cell allows, the stripes whose inner radius would be negative are
// dropped.
func (s Sector) Stripes(n int, gapRatio float64) []Sector {
	if n <= 1 {
		return []Sector{s}
	}
	thickness := s.Stroke
	if thickness <= 0 {
		thickness = s.Thickness()
	}
	w2, gap := StripeWidths(thickness, n, gapRatio)
	out := make([]Sector, 0, n)
	for i := 0; i < n; i++ {
		outer := s.Outer - float64(i)*(w2+gap)
		inner := outer - w2
		if inner < -eps || outer <= 0 {
			continue
		}
		sub := s
		sub.Outer = outer
		sub.Inner = math.Max(inner, 0)
		out = append(out, sub)
	}
	return out
}

// Stripes applies stripe subdivision to every primitive of the shape.
// n == 1 returns an equal shape.
func (s Shape) Stripes(n int, gapRatio float64) Shape {
	if n <= 1 {
		return s
	}
	out := s
	out.Rects = make([]Rect, 0, len(s.Rects)*n)
	for _, r := range s.Rects {
		out.Rects = append(out.Rects, r.Stripes(n, gapRatio)...)
	}
	out.Sectors = make([]Sector, 0, len(s.Sectors)*n)
	for _, sec := range s.Sectors {
		out.Sectors = append(out.Sectors, sec.Stripes(n, gapRatio)...)
	}
	return out
}

// Bounds returns the bounding box of every primitive in the shape, or
// the cell box when the shape is empty.
func (s Shape) Bounds() Rect {
	if s.Empty() {
		return s.Cell
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	grow := func(x0, y0, x1, y1 float64) {
		minX, minY = math.Min(minX, x0), math.Min(minY, y0)
		maxX, maxY = math.Max(maxX, x1), math.Max(maxY, y1)
	}
	for _, r := range s.Rects {
		grow(r.X, r.Y, r.X+r.W, r.Y+r.H)
	}
	for _, sec := range s.Sectors {
		x0, y0, x1, y1 := sec.bounds()
		grow(x0, y0, x1, y1)
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// bounds holds for axis-aligned quarter sectors, whose extremes are the
// four corner points.
func (s Sector) bounds() (x0, y0, x1, y1 float64) {
	pts := []Point{
		s.PointAt(s.Outer, s.Start), s.PointAt(s.Outer, s.End),
		s.PointAt(s.Inner, s.Start), s.PointAt(s.Inner, s.End),
	}
	x0, y0 = math.Inf(1), math.Inf(1)
	x1, y1 = math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		x0, y0 = math.Min(x0, p.X), math.Min(y0, p.Y)
		x1, y1 = math.Max(x1, p.X), math.Max(y1, p.Y)
	}
	return x0, y0, x1, y1
}
