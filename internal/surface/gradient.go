package surface

import "image/color"

// GradientFill wraps a surface so that every Fill paints a linear
// gradient across the bounding box of the path being filled. Path calls
// are recorded for the box and forwarded unchanged.
type GradientFill struct {
	Surface
	From, To color.Color
	// Vertical runs the gradient top to bottom instead of left to right.
	Vertical bool

	box Box
}

// NewGradientFill decorates s with a from→to gradient fill.
func NewGradientFill(s Surface, from, to color.Color) *GradientFill {
	return &GradientFill{Surface: s, From: from, To: to}
}

// BeginPath starts a new path and an empty box.
func (g *GradientFill) BeginPath() {
	g.box.Reset()
	g.Surface.BeginPath()
}

// MoveTo grows the box and forwards the call.
func (g *GradientFill) MoveTo(x, y float64) {
	g.box.Add(x, y)
	g.Surface.MoveTo(x, y)
}

// LineTo grows the box and forwards the call.
func (g *GradientFill) LineTo(x, y float64) {
	g.box.Add(x, y)
	g.Surface.LineTo(x, y)
}

// Arc grows the box by the arc extremes and forwards the call.
func (g *GradientFill) Arc(cx, cy, r, a0, a1 float64, ccw bool) {
	g.box.AddArc(cx, cy, r, a0, a1, ccw)
	g.Surface.Arc(cx, cy, r, a0, a1, ccw)
}

// Bounds returns the box of the path built since the last BeginPath or
// Fill.
func (g *GradientFill) Bounds() Box {
	return g.box
}

// Fill sets a gradient spanning the path box, then fills.
func (g *GradientFill) Fill() {
	if !g.box.Empty() {
		b := g.box
		grad := Gradient{X0: b.MinX, Y0: b.MinY, X1: b.MaxX, Y1: b.MinY, From: g.From, To: g.To}
		if g.Vertical {
			grad.X1, grad.Y1 = b.MinX, b.MaxY
		}
		g.Surface.SetFillGradient(grad)
	}
	g.Surface.Fill()
	g.box.Reset()
}
