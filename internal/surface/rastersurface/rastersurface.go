// Package rastersurface draws to an RGBA image with fogleman/gg and
// encodes it as PNG when the document ends.
package rastersurface

import (
	"errors"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"

	"github.com/ryanlewis/voidtype/internal/surface"
)

// Name is the registry name of the PNG backend.
const Name = "png"

func init() {
	surface.Register(Name, func(w io.Writer) surface.Surface { return New(w) })
}

// ErrNotStarted is returned by End when Begin was never called.
var ErrNotStarted = errors.New("rastersurface: End before Begin")

// Surface rasterises paths into a gg.Context.
type Surface struct {
	w    io.Writer
	dc   *gg.Context
	fill gg.Pattern

	strokeColor color.Color
	strokeWidth float64
}

// New returns a surface that writes a PNG to w on End. A nil w keeps the
// image in memory only; read it with Image.
func New(w io.Writer) *Surface {
	return &Surface{
		w:           w,
		fill:        gg.NewSolidPattern(color.Black),
		strokeColor: color.Black,
		strokeWidth: 1,
	}
}

// Image returns the rendered image, or nil before Begin.
func (s *Surface) Image() image.Image {
	if s.dc == nil {
		return nil
	}
	return s.dc.Image()
}

// Begin allocates a width×height canvas.
func (s *Surface) Begin(width, height int) error {
	s.dc = gg.NewContext(width, height)
	return nil
}

// End encodes the canvas as PNG to the writer given to New.
func (s *Surface) End() error {
	if s.dc == nil {
		return ErrNotStarted
	}
	if s.w == nil {
		return nil
	}
	return s.dc.EncodePNG(s.w)
}

// BeginGroup does nothing; groups have no raster equivalent.
func (s *Surface) BeginGroup(string) {}

// EndGroup does nothing.
func (s *Surface) EndGroup() {}

// BeginPath clears the current path.
func (s *Surface) BeginPath() { s.dc.ClearPath() }

// MoveTo starts a subpath.
func (s *Surface) MoveTo(x, y float64) { s.dc.MoveTo(x, y) }

// LineTo adds a line segment.
func (s *Surface) LineTo(x, y float64) { s.dc.LineTo(x, y) }

// Arc maps onto gg.DrawArc, which already joins the current point to the
// arc start with a line and sweeps from angle1 toward angle2.
func (s *Surface) Arc(cx, cy, r, a0, a1 float64, ccw bool) {
	s.dc.DrawArc(cx, cy, r, a0, a0+surface.Sweep(a0, a1, ccw))
}

// ClosePath closes the current subpath.
func (s *Surface) ClosePath() { s.dc.ClosePath() }

// SetFillColor sets a solid fill.
func (s *Surface) SetFillColor(c color.Color) {
	s.fill = gg.NewSolidPattern(c)
}

// SetFillGradient sets a linear gradient fill.
func (s *Surface) SetFillGradient(g surface.Gradient) {
	grad := gg.NewLinearGradient(g.X0, g.Y0, g.X1, g.Y1)
	grad.AddColorStop(0, g.From)
	grad.AddColorStop(1, g.To)
	s.fill = grad
}

// Fill paints the path with the current fill.
func (s *Surface) Fill() {
	s.dc.SetFillStyle(s.fill)
	s.dc.Fill()
}

// SetStroke sets the outline colour and width.
func (s *Surface) SetStroke(c color.Color, width float64) {
	s.strokeColor, s.strokeWidth = c, width
}

// Stroke outlines the path.
func (s *Surface) Stroke() {
	s.dc.SetStrokeStyle(gg.NewSolidPattern(s.strokeColor))
	s.dc.SetLineWidth(s.strokeWidth)
	s.dc.Stroke()
}

// Thumbnail scales img to fit within maxW×maxH, keeping its aspect
// ratio. Images that already fit are copied unscaled.
func Thumbnail(img image.Image, maxW, maxH int) *image.RGBA {
	b := img.Bounds()
	scale := 1.0
	if maxW > 0 && maxH > 0 {
		scale = math.Min(1, math.Min(float64(maxW)/float64(b.Dx()), float64(maxH)/float64(b.Dy())))
	}
	w := max(1, int(math.Round(float64(b.Dx())*scale)))
	h := max(1, int(math.Round(float64(b.Dy())*scale)))
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}
