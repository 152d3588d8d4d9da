package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryanlewis/voidtype/internal/glyph"
	"github.com/ryanlewis/voidtype/internal/surface/recorder"
)

func glyphModules(t *testing.T, r rune) []Module {
	t.Helper()
	l := Compose(string(r), testOptions())
	require.Len(t, l.Glyphs, 1)
	return l.Glyphs[0].Modules
}

func drawAll(st StrokeStrategy, mods []Module) (*recorder.Recorder, int) {
	rec := recorder.New()
	n := 0
	for _, m := range mods {
		n += st.Draw(rec, m)
	}
	return rec, n
}

func TestFillPathCounts(t *testing.T) {
	tests := []struct {
		r    rune
		want int
	}{
		{' ', 0},
		{'.', 1},
		{'L', 10},
		{'O', 16},
		{'T', 10},
	}
	for _, tt := range tests {
		t.Run(string(tt.r), func(t *testing.T) {
			rec, n := drawAll(Fill{}, glyphModules(t, tt.r))
			assert.Equal(t, tt.want, n)
			assert.Equal(t, tt.want, rec.Count(recorder.OpFill))
			assert.Equal(t, tt.want, rec.Count(recorder.OpBeginPath))
		})
	}
}

func TestStripesMultiplyPrimitives(t *testing.T) {
	mods := glyphModules(t, 'L')
	for n := 1; n <= 4; n++ {
		_, got := drawAll(Stripes{N: n, GapRatio: 0.3}, mods)
		assert.Equal(t, 10*n, got, "n=%d", n)
	}
}

func TestSingleStripeEqualsFill(t *testing.T) {
	for _, r := range []rune{'A', 'O', 'Ж', '?'} {
		mods := glyphModules(t, r)
		fill, _ := drawAll(Fill{CornerRadius: 1}, mods)
		stripe, _ := drawAll(Stripes{N: 1, GapRatio: 0.5, CornerRadius: 1}, mods)
		assert.Equal(t, fill.Ops, stripe.Ops, "rune %q", r)
	}
}

func TestStripesOnArcs(t *testing.T) {
	tests := []struct {
		name string
		stem float64
		want int
	}{
		{"stroke fits the cell", 8, 3},
		// stroke 20 in a 12px cell: stripes of 4.667 with gaps of 3, so
		// only the outermost keeps a non-negative inner radius
		{"stroke wider than the cell", 40, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := testOptions()
			opts.Stem = tt.stem
			l := Compose(",", opts)
			defer l.Release()
			require.Len(t, l.Glyphs, 1)
			mods := l.Glyphs[0].Modules
			require.Len(t, mods, 2)
			bend := mods[1]
			require.Equal(t, glyph.Bend, bend.Cell.Type)

			_, n := drawAll(Stripes{N: 3, GapRatio: 0.3}, []Module{bend})
			assert.Equal(t, tt.want, n)
		})
	}
}

func TestCornerRadiusRoundsRects(t *testing.T) {
	mods := glyphModules(t, '.')
	sharp, _ := drawAll(Fill{}, mods)
	round, _ := drawAll(Fill{CornerRadius: 1.5}, mods)
	assert.Zero(t, sharp.Count(recorder.OpArc))
	assert.Equal(t, 4, round.Count(recorder.OpArc))
}

func TestStrategyFor(t *testing.T) {
	opts := testOptions()
	opts.Mode = ModeStripes
	assert.Equal(t, Stripes{N: 3, GapRatio: 0.3}, strategyFor(opts))
	opts.Mode = ModeFill
	assert.Equal(t, Fill{}, strategyFor(opts))
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{ModeFill, ModeStripes, ModeRandom} {
		got, ok := ParseMode(m.String())
		assert.True(t, ok)
		assert.Equal(t, m, got)
	}
	_, ok := ParseMode("hatch")
	assert.False(t, ok)
	assert.Equal(t, "Mode(9)", Mode(9).String())

	s, ok := ParseScope("full")
	assert.True(t, ok)
	assert.Equal(t, ScopeFull, s)
	s, ok = ParseScope("byType")
	assert.True(t, ok)
	assert.Equal(t, ScopeByType, s)
	_, ok = ParseScope("glyph")
	assert.False(t, ok)
}
