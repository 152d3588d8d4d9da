package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryanlewis/voidtype/internal/glyph"
)

func testOptions() *Options {
	return &Options{
		ModuleSize:    12,
		Stem:          8,
		LetterSpacing: 12,
		LineHeight:    24,
		Width:         200,
		Height:        200,
		Strokes:       3,
		GapRatio:      0.3,
	}
}

func TestComposeSingleLine(t *testing.T) {
	l := Compose("AB", testOptions())
	defer l.Release()

	require.Len(t, l.Lines, 1)
	require.Len(t, l.Glyphs, 2)
	assert.Equal(t, 132.0, l.Lines[0].Width)
	assert.Equal(t, 34.0, l.Lines[0].X)
	assert.Equal(t, 70.0, l.Lines[0].Y)
	assert.Equal(t, 34.0, l.Glyphs[0].X)
	assert.Equal(t, 106.0, l.Glyphs[1].X)
	assert.Equal(t, 70.0, l.Glyphs[1].Y)
	assert.Equal(t, 60.0, l.BlockHeight())
	assert.Equal(t, 70.0, l.BlockTop())
}

func TestComposeMultiLine(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		widths []float64
		xs     []float64
		ys     []float64
	}{
		{
			name:   "two lines",
			text:   "A\nBC",
			widths: []float64{60, 132},
			xs:     []float64{70, 34},
			ys:     []float64{28, 112},
		},
		{
			name:   "empty middle line",
			text:   "A\n\nB",
			widths: []float64{60, 0, 60},
			xs:     []float64{70, 100, 70},
			ys:     []float64{-14, 70, 154},
		},
		{
			name:   "empty text",
			text:   "",
			widths: []float64{0},
			xs:     []float64{100},
			ys:     []float64{70},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Compose(tt.text, testOptions())
			defer l.Release()
			require.Len(t, l.Lines, len(tt.widths))
			for i, line := range l.Lines {
				assert.Equal(t, tt.widths[i], line.Width, "line %d width", i)
				assert.Equal(t, tt.xs[i], line.X, "line %d x", i)
				assert.Equal(t, tt.ys[i], line.Y, "line %d y", i)
			}
		})
	}
}

func TestComposeModules(t *testing.T) {
	l := Compose("L", testOptions())
	defer l.Release()

	require.Len(t, l.Glyphs, 1)
	g := l.Glyphs[0]
	assert.Equal(t, glyph.Lookup('L'), g.Code)
	require.Len(t, g.Modules, 9)
	assert.Equal(t, 9, l.Modules())

	first := g.Modules[0]
	assert.Equal(t, ModuleKey{Line: 0, Char: 0, Col: 0, Row: 0}, first.Key)
	assert.Equal(t, glyph.Straight, first.Cell.Type)
	assert.Equal(t, 70.0, first.Shape.Cell.X)
	assert.Equal(t, 70.0, first.Shape.Cell.Y)
	require.Len(t, first.Shape.Rects, 1)
	assert.Equal(t, 4.0, first.Shape.Rects[0].W)

	corner := g.Modules[4]
	assert.Equal(t, glyph.Link, corner.Cell.Type)
	assert.Equal(t, ModuleKey{Col: 0, Row: 4}, corner.Key)
	assert.Equal(t, 70.0+4*12, corner.Shape.Cell.Y)
}

func TestComposeFallback(t *testing.T) {
	l := Compose("A§ ", testOptions())
	defer l.Release()

	require.Len(t, l.Glyphs, 3)
	assert.False(t, l.Glyphs[0].Fallback)
	assert.True(t, l.Glyphs[1].Fallback)
	assert.False(t, l.Glyphs[2].Fallback, "space is defined, not a fallback")
	assert.Equal(t, glyph.SpaceCode, l.Glyphs[1].Code)
	assert.Empty(t, l.Glyphs[1].Modules)
	assert.Equal(t, 1, l.Fallbacks())
}

func TestComposeIsDeterministic(t *testing.T) {
	a := Compose("VOID 2024", testOptions())
	b := Compose("VOID 2024", testOptions())
	assert.Equal(t, a.Lines, b.Lines)
	require.Len(t, b.Glyphs, len(a.Glyphs))
	for i := range a.Glyphs {
		assert.Equal(t, a.Glyphs[i].Modules, b.Glyphs[i].Modules)
	}
	a.Release()
	b.Release()
	assert.Nil(t, a.Glyphs)
}

func TestLineWidthAndBlockHeight(t *testing.T) {
	assert.Equal(t, 0.0, LineWidth(0, 60, 12))
	assert.Equal(t, 60.0, LineWidth(1, 60, 12))
	assert.Equal(t, 132.0, LineWidth(2, 60, 12))
	assert.Equal(t, 0.0, BlockHeight(0, 60, 24))
	assert.Equal(t, 144.0, BlockHeight(2, 60, 24))
}

func TestComposeCustomTable(t *testing.T) {
	table, err := glyph.NewTable(2, 1, map[rune]glyph.Code{'X': "S0C0"})
	require.NoError(t, err)

	opts := testOptions()
	opts.Table = table
	l := Compose("X", opts)
	defer l.Release()

	assert.Equal(t, 2, l.Cols)
	assert.Equal(t, 1, l.Rows)
	assert.Equal(t, 24.0, l.Lines[0].Width)
	require.Len(t, l.Glyphs[0].Modules, 2)
	assert.Equal(t, glyph.Central, l.Glyphs[0].Modules[1].Cell.Type)
}

func BenchmarkCompose(b *testing.B) {
	opts := testOptions()
	opts.Width = 2000
	for i := 0; i < b.N; i++ {
		l := Compose("THE QUICK BROWN FOX\nJUMPS OVER 1234567890", opts)
		l.Release()
	}
}
