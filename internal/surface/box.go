package surface

import "math"

// Box accumulates the bounding box of path points.
type Box struct {
	MinX, MinY, MaxX, MaxY float64
	ok                     bool
}

// Empty reports whether no point was added since the last Reset.
func (b Box) Empty() bool { return !b.ok }

// Reset forgets every point.
func (b *Box) Reset() { b.ok = false }

// Add grows the box to contain (x, y).
func (b *Box) Add(x, y float64) {
	if !b.ok {
		b.MinX, b.MaxX, b.MinY, b.MaxY = x, x, y, y
		b.ok = true
		return
	}
	b.MinX, b.MaxX = math.Min(b.MinX, x), math.Max(b.MaxX, x)
	b.MinY, b.MaxY = math.Min(b.MinY, y), math.Max(b.MaxY, y)
}

// AddArc grows the box by the arc's end points and by every axis
// extreme the sweep passes.
func (b *Box) AddArc(cx, cy, r, a0, a1 float64, ccw bool) {
	sweep := Sweep(a0, a1, ccw)
	b.Add(cx+r*math.Cos(a0), cy+r*math.Sin(a0))
	b.Add(cx+r*math.Cos(a0+sweep), cy+r*math.Sin(a0+sweep))
	lo, hi := a0, a0+sweep
	if lo > hi {
		lo, hi = hi, lo
	}
	for k := math.Ceil(lo / (math.Pi / 2)); k*math.Pi/2 <= hi; k++ {
		a := k * math.Pi / 2
		b.Add(cx+r*math.Cos(a), cy+r*math.Sin(a))
	}
}
