// Package svgsurface draws to an SVG document through ajstarks/svgo.
// Every filled path becomes one <path> element; groups become <g>.
package svgsurface

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/ryanlewis/voidtype/internal/surface"
)

// Name is the registry name of the SVG backend.
const Name = "svg"

func init() {
	surface.Register(Name, func(w io.Writer) surface.Surface { return New(w) })
}

// errWriter keeps the first write error so End can report it.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// Surface writes SVG markup as calls arrive.
type Surface struct {
	out    *errWriter
	canvas *svg.SVG

	// Title, when set, is written as the document <title>.
	Title string

	d         strings.Builder
	box       surface.Box
	hasPoint  bool
	curX      float64
	curY      float64
	fillStyle string
	gradient  *surface.Gradient
	gradients int

	strokeStyle string
	paths       int
}

// New returns a surface writing to w.
func New(w io.Writer) *Surface {
	out := &errWriter{w: w}
	return &Surface{
		out:       out,
		canvas:    svg.New(out),
		fillStyle: "fill:#000000",
	}
}

// Paths returns how many <path> elements were written.
func (s *Surface) Paths() int { return s.paths }

// Begin writes the document header with a viewBox of the canvas size.
func (s *Surface) Begin(width, height int) error {
	s.canvas.Startview(width, height, 0, 0, width, height)
	if s.Title != "" {
		s.canvas.Title(s.Title)
	}
	return s.out.err
}

// End closes the document and reports the first write error.
func (s *Surface) End() error {
	s.canvas.End()
	return s.out.err
}

// BeginGroup opens a <g>, with an id when one is given.
func (s *Surface) BeginGroup(id string) {
	if id == "" {
		s.canvas.Group()
		return
	}
	s.canvas.Gid(id)
}

// EndGroup closes the innermost <g>.
func (s *Surface) EndGroup() { s.canvas.Gend() }

// BeginPath discards any unfilled path data.
func (s *Surface) BeginPath() {
	s.d.Reset()
	s.box.Reset()
	s.hasPoint = false
}

// MoveTo starts a subpath at (x, y).
func (s *Surface) MoveTo(x, y float64) {
	s.cmd('M', x, y)
	s.box.Add(x, y)
	s.hasPoint = true
	s.curX, s.curY = x, y
}

// LineTo adds a line, or a move when the path has no point yet.
func (s *Surface) LineTo(x, y float64) {
	if !s.hasPoint {
		s.MoveTo(x, y)
		return
	}
	s.cmd('L', x, y)
	s.box.Add(x, y)
	s.curX, s.curY = x, y
}

// Arc adds a circular arc, joined to the current point by a line when
// they differ.
func (s *Surface) Arc(cx, cy, r, a0, a1 float64, ccw bool) {
	sweep := surface.Sweep(a0, a1, ccw)
	x0, y0 := cx+r*math.Cos(a0), cy+r*math.Sin(a0)
	switch {
	case !s.hasPoint:
		s.MoveTo(x0, y0)
	case math.Abs(x0-s.curX) > 1e-9 || math.Abs(y0-s.curY) > 1e-9:
		s.LineTo(x0, y0)
	}
	s.box.AddArc(cx, cy, r, a0, a1, ccw)

	// a full turn cannot be one SVG arc command
	steps := 1
	if math.Abs(sweep) > math.Pi+1e-9 {
		steps = 2
	}
	flag := 1
	if sweep < 0 {
		flag = 0
	}
	for i := 1; i <= steps; i++ {
		a := a0 + sweep*float64(i)/float64(steps)
		s.curX, s.curY = cx+r*math.Cos(a), cy+r*math.Sin(a)
		fmt.Fprintf(&s.d, "A%s %s 0 0 %d %s %s ", num(r), num(r), flag, num(s.curX), num(s.curY))
	}
}

// ClosePath closes the current subpath.
func (s *Surface) ClosePath() {
	if s.hasPoint {
		s.d.WriteString("Z ")
	}
}

// SetFillColor sets a solid fill and drops any gradient.
func (s *Surface) SetFillColor(c color.Color) {
	s.gradient = nil
	s.fillStyle = paint("fill", c)
}

// SetFillGradient makes the next fills use g.
func (s *Surface) SetFillGradient(g surface.Gradient) {
	s.gradient = &g
}

// Fill writes the path as a filled <path>.
func (s *Surface) Fill() {
	d := strings.TrimSpace(s.d.String())
	if d == "" {
		return
	}
	style := s.fillStyle
	if s.gradient != nil {
		style = "fill:url(#" + s.defineGradient(*s.gradient) + ")"
	}
	s.canvas.Path(d, style)
	s.paths++
	s.BeginPath()
}

// SetStroke sets the outline colour and width for Stroke.
func (s *Surface) SetStroke(c color.Color, width float64) {
	s.strokeStyle = "fill:none;" + paint("stroke", c) + ";stroke-width:" + num(width)
}

// Stroke writes the path as an unfilled, outlined <path>.
func (s *Surface) Stroke() {
	d := strings.TrimSpace(s.d.String())
	if d == "" {
		return
	}
	s.canvas.Path(d, s.strokeStyle)
	s.paths++
	s.BeginPath()
}

// defineGradient writes a <linearGradient> for g in the path's bounding
// box units and returns its id.
func (s *Surface) defineGradient(g surface.Gradient) string {
	s.gradients++
	id := "grad" + strconv.Itoa(s.gradients)
	b := s.box
	pct := func(v, lo, hi float64) uint8 {
		if hi-lo <= 0 {
			return 0
		}
		return uint8(math.Round(100 * math.Max(0, math.Min(1, (v-lo)/(hi-lo)))))
	}
	s.canvas.Def()
	s.canvas.LinearGradient(id,
		pct(g.X0, b.MinX, b.MaxX), pct(g.Y0, b.MinY, b.MaxY),
		pct(g.X1, b.MinX, b.MaxX), pct(g.Y1, b.MinY, b.MaxY),
		[]svg.Offcolor{
			{Offset: 0, Color: surface.Hex(g.From), Opacity: surface.Opacity(g.From)},
			{Offset: 100, Color: surface.Hex(g.To), Opacity: surface.Opacity(g.To)},
		})
	s.canvas.DefEnd()
	return id
}

func (s *Surface) cmd(c byte, x, y float64) {
	s.d.WriteByte(c)
	s.d.WriteString(num(x))
	s.d.WriteByte(' ')
	s.d.WriteString(num(y))
	s.d.WriteByte(' ')
}

func paint(attr string, c color.Color) string {
	style := attr + ":" + surface.Hex(c)
	if a := surface.Opacity(c); a < 1 {
		style += ";" + attr + "-opacity:" + num(a)
	}
	return style
}

// num prints v with at most three decimals.
func num(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		v = 0 // no "-0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
