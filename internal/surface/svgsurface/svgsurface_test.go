package svgsurface

import (
	"bytes"
	"errors"
	"image/color"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryanlewis/voidtype/internal/geometry"
	"github.com/ryanlewis/voidtype/internal/surface"
)

func TestDocument(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf)
	s.Title = "void"
	require.NoError(t, s.Begin(200, 100))

	s.BeginGroup("glyph-0")
	s.SetFillColor(color.NRGBA{R: 255, A: 255})
	s.BeginPath()
	surface.Rect(s, geometry.Rect{X: 1, Y: 2, W: 3, H: 4})
	s.Fill()
	s.EndGroup()
	require.NoError(t, s.End())

	out := buf.String()
	assert.Contains(t, out, `viewBox="0 0 200 100"`)
	assert.Contains(t, out, `<title>void</title>`)
	assert.Contains(t, out, `<g id="glyph-0"`)
	assert.Contains(t, out, `d="M1 2 L4 2 L4 6 L1 6 Z"`)
	assert.Contains(t, out, `fill:#ff0000`)
	assert.Contains(t, out, `</svg>`)
	assert.Equal(t, 1, s.Paths())
	assert.Equal(t, 1, strings.Count(out, "<path"))
}

func TestArcCommands(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf)
	require.NoError(t, s.Begin(10, 10))
	s.BeginPath()
	surface.Sector(s, geometry.Sector{CX: 10, CY: 0, Inner: 6, Outer: 10, Start: math.Pi / 2, End: math.Pi})
	s.Fill()
	require.NoError(t, s.End())

	out := buf.String()
	// outer arc clockwise, inner arc back counter-clockwise
	assert.Contains(t, out, "M10 10 A10 10 0 0 1 0 0 L4 0 A6 6 0 0 0 10 6 Z")
}

func TestFullCircleSplits(t *testing.T) {
	s := New(&bytes.Buffer{})
	s.BeginPath()
	s.Arc(0, 0, 5, 0, 2*math.Pi-1e-6, false)
	assert.Equal(t, 2, strings.Count(s.d.String(), "A"))
}

func TestGradientDefinition(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf)
	require.NoError(t, s.Begin(50, 50))
	g := surface.NewGradientFill(s, color.NRGBA{R: 255, A: 255}, color.NRGBA{B: 255, A: 128})
	g.BeginPath()
	surface.Rect(g, geometry.Rect{X: 10, Y: 10, W: 20, H: 5})
	g.Fill()
	require.NoError(t, s.End())

	out := buf.String()
	assert.Contains(t, out, `<linearGradient id="grad1"`)
	assert.Contains(t, out, `fill:url(#grad1)`)
	assert.Contains(t, out, `stop-color="#0000ff"`)
}

func TestEmptyPathIsSkipped(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf)
	require.NoError(t, s.Begin(10, 10))
	s.BeginPath()
	s.Fill()
	s.Stroke()
	require.NoError(t, s.End())
	assert.Equal(t, 0, s.Paths())
}

func TestStrokeStyle(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf)
	require.NoError(t, s.Begin(10, 10))
	s.SetStroke(color.NRGBA{G: 255, A: 255}, 0.5)
	s.BeginPath()
	s.MoveTo(0, 0)
	s.LineTo(10, 10)
	s.Stroke()
	require.NoError(t, s.End())
	assert.Contains(t, buf.String(), "fill:none;stroke:#00ff00;stroke-width:0.5")
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteErrorSurfaces(t *testing.T) {
	s := New(failWriter{})
	assert.Error(t, s.Begin(10, 10))
	assert.EqualError(t, s.End(), "disk full")
}

func TestNum(t *testing.T) {
	assert.Equal(t, "0", num(-0.0001))
	assert.Equal(t, "1.235", num(1.23456))
	assert.Equal(t, "12", num(12))
}
