package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryanlewis/voidtype/internal/glyph"
	"github.com/ryanlewis/voidtype/internal/surface/recorder"
)

func randomOptions(scope Scope) RandomOptions {
	return RandomOptions{
		StemMul: Range{Min: 0.5, Max: 1.5},
		Strokes: IntRange{Min: 1, Max: 5},
		Gap:     Range{Min: 0.1, Max: 0.6},
		Scope:   scope,
	}
}

func TestCacheByTypeSharesDraws(t *testing.T) {
	c := NewCache(7)
	ro := randomOptions(ScopeByType)

	a, hit := c.Params(ro, ModuleKey{Col: 0}, glyph.Straight)
	assert.False(t, hit)
	b, hit := c.Params(ro, ModuleKey{Line: 3, Char: 9, Col: 4, Row: 4}, glyph.Straight)
	assert.True(t, hit)
	assert.Equal(t, a, b)

	_, hit = c.Params(ro, ModuleKey{}, glyph.Round)
	assert.False(t, hit)
	assert.Equal(t, 2, c.Len())
}

func TestCacheFullDrawsPerCell(t *testing.T) {
	c := NewCache(7)
	ro := randomOptions(ScopeFull)

	k1 := ModuleKey{Line: 0, Char: 0, Col: 1, Row: 2}
	k2 := ModuleKey{Line: 0, Char: 1, Col: 1, Row: 2}
	a, _ := c.Params(ro, k1, glyph.Straight)
	again, hit := c.Params(ro, k1, glyph.Round)
	assert.True(t, hit, "full scope keys on the cell, not the type")
	assert.Equal(t, a, again)

	_, hit = c.Params(ro, k2, glyph.Straight)
	assert.False(t, hit)
	assert.Equal(t, 2, c.Len())
}

func TestCacheDrawsStayInRange(t *testing.T) {
	c := NewCache(42)
	ro := randomOptions(ScopeFull)
	for i := 0; i < 500; i++ {
		p, _ := c.Params(ro, ModuleKey{Char: i}, glyph.Straight)
		assert.GreaterOrEqual(t, p.StemMul, 0.5)
		assert.LessOrEqual(t, p.StemMul, 1.5)
		assert.GreaterOrEqual(t, p.Strokes, 1)
		assert.LessOrEqual(t, p.Strokes, 5)
		assert.GreaterOrEqual(t, p.GapRatio, 0.1)
		assert.LessOrEqual(t, p.GapRatio, 0.6)
	}
}

func TestCacheRangeEdges(t *testing.T) {
	c := NewCache(1)
	ro := RandomOptions{
		StemMul: Range{Min: 2, Max: 1},
		Strokes: IntRange{Min: 0, Max: 0},
		Gap:     Range{Min: 0.25, Max: 0.25},
	}
	p, _ := c.Params(ro, ModuleKey{}, glyph.Central)
	assert.GreaterOrEqual(t, p.StemMul, 1.0, "reversed bounds are swapped")
	assert.LessOrEqual(t, p.StemMul, 2.0)
	assert.Equal(t, 1, p.Strokes, "stripe count never drops below one")
	assert.Equal(t, 0.25, p.GapRatio)
}

func TestCacheClearRepeatsSequence(t *testing.T) {
	c := NewCache(99)
	ro := randomOptions(ScopeByType)
	first, _ := c.Params(ro, ModuleKey{}, glyph.Joint)

	c.Clear()
	assert.Zero(t, c.Len())
	second, hit := c.Params(ro, ModuleKey{}, glyph.Joint)
	assert.False(t, hit)
	assert.Equal(t, first, second)

	c.Reseed(100)
	assert.Equal(t, int64(100), c.Seed())
	assert.Zero(t, c.Len())
}

func TestRandomRenderIsStableAcrossPasses(t *testing.T) {
	r := New(5)
	opts := testOptions()
	opts.Mode = ModeRandom
	opts.Random = randomOptions(ScopeFull)

	first := recorder.New()
	_, err := r.Render(first, "VOID", opts)
	require.NoError(t, err)
	cached := r.Cache().Len()
	assert.Positive(t, cached)

	second := recorder.New()
	_, err = r.Render(second, "VOID", opts)
	require.NoError(t, err)
	assert.Equal(t, first.Ops, second.Ops)
	assert.Equal(t, cached, r.Cache().Len())
}

func TestRandomByTypeCacheSize(t *testing.T) {
	r := New(5)
	opts := testOptions()
	opts.Mode = ModeRandom
	opts.Random = randomOptions(ScopeByType)

	_, err := r.Render(recorder.New(), "L", opts)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Cache().Len(), "L uses straight and link modules")

	r.Cache().Clear()
	opts.Random.Scope = ScopeFull
	_, err = r.Render(recorder.New(), "L", opts)
	require.NoError(t, err)
	assert.Equal(t, 9, r.Cache().Len())
}

func TestRandomFixedDrawMatchesStripes(t *testing.T) {
	opts := testOptions()
	opts.Random = RandomOptions{
		StemMul: Range{Min: 1, Max: 1},
		Strokes: IntRange{Min: 2, Max: 2},
		Gap:     Range{Min: 0.3, Max: 0.3},
	}
	mods := glyphModules(t, 'Ф')

	random := Random{Cache: NewCache(1), Options: opts.Random, Stem: opts.Stem}
	got, n := drawAll(random, mods)
	want, m := drawAll(Stripes{N: 2, GapRatio: 0.3}, mods)
	assert.Equal(t, m, n)
	assert.Equal(t, want.Ops, got.Ops)
}
