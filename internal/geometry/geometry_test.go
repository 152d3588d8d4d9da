package geometry

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryanlewis/voidtype/internal/glyph"
)

const delta = 1e-9

func assertRect(t *testing.T, want, got Rect) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, delta, "x")
	assert.InDelta(t, want.Y, got.Y, delta, "y")
	assert.InDelta(t, want.W, got.W, delta, "w")
	assert.InDelta(t, want.H, got.H, delta, "h")
	assert.Equal(t, want.Vertical, got.Vertical, "vertical")
}

func TestResolveRects(t *testing.T) {
	// 12px cell at (10,20), stroke 3px thick
	tests := []struct {
		name string
		t    glyph.ModuleType
		rot  int
		want []Rect
	}{
		{"straight", glyph.Straight, 0, []Rect{{X: 10, Y: 20, W: 3, H: 12, Vertical: true}}},
		{"straight quarter", glyph.Straight, 1, []Rect{{X: 10, Y: 20, W: 12, H: 3}}},
		{"straight half", glyph.Straight, 2, []Rect{{X: 19, Y: 20, W: 3, H: 12, Vertical: true}}},
		{"straight three quarters", glyph.Straight, 3, []Rect{{X: 10, Y: 29, W: 12, H: 3}}},
		{"central", glyph.Central, 0, []Rect{{X: 14.5, Y: 20, W: 3, H: 12, Vertical: true}}},
		{"central quarter", glyph.Central, 1, []Rect{{X: 10, Y: 24.5, W: 12, H: 3}}},
		{"joint", glyph.Joint, 0, []Rect{
			{X: 10, Y: 20, W: 3, H: 12, Vertical: true},
			{X: 10, Y: 24.5, W: 12, H: 3},
		}},
		{"link", glyph.Link, 0, []Rect{
			{X: 10, Y: 20, W: 3, H: 12, Vertical: true},
			{X: 10, Y: 29, W: 12, H: 3},
		}},
		{"link half", glyph.Link, 2, []Rect{
			{X: 19, Y: 20, W: 3, H: 12, Vertical: true},
			{X: 10, Y: 20, W: 12, H: 3},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shape := Resolve(tt.t, tt.rot, 10, 20, 12, 12, 6)
			require.Len(t, shape.Rects, len(tt.want))
			assert.Empty(t, shape.Sectors)
			for i := range tt.want {
				assertRect(t, tt.want[i], shape.Rects[i])
			}
		})
	}
}

func TestResolveSectors(t *testing.T) {
	tests := []struct {
		name string
		t    glyph.ModuleType
		rot  int
		want Sector
	}{
		{"round", glyph.Round, 0, Sector{CX: 22, CY: 20, Inner: 9, Outer: 12, Start: math.Pi / 2, End: math.Pi}},
		{"round quarter", glyph.Round, 1, Sector{CX: 22, CY: 32, Inner: 9, Outer: 12, Start: math.Pi, End: 1.5 * math.Pi}},
		{"round half", glyph.Round, 2, Sector{CX: 10, CY: 32, Inner: 9, Outer: 12, Start: 1.5 * math.Pi, End: 2 * math.Pi}},
		{"round three quarters", glyph.Round, 3, Sector{CX: 10, CY: 20, Inner: 9, Outer: 12, Start: 0, End: math.Pi / 2}},
		{"bend", glyph.Bend, 0, Sector{CX: 22, CY: 20, Inner: 0, Outer: 3, Start: math.Pi / 2, End: math.Pi}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shape := Resolve(tt.t, tt.rot, 10, 20, 12, 12, 6)
			require.Len(t, shape.Sectors, 1)
			got := shape.Sectors[0]
			assert.InDelta(t, tt.want.CX, got.CX, delta)
			assert.InDelta(t, tt.want.CY, got.CY, delta)
			assert.InDelta(t, tt.want.Inner, got.Inner, delta)
			assert.InDelta(t, tt.want.Outer, got.Outer, delta)
			assert.InDelta(t, tt.want.Start, got.Start, delta)
			assert.InDelta(t, tt.want.End, got.End, delta)
		})
	}
}

// The sector's two ends must land on the cell sides its exits name.
func TestSectorEndsMatchExits(t *testing.T) {
	const x, y, w = 0.0, 0.0, 10.0
	onSide := func(p Point) []glyph.Side {
		var sides []glyph.Side
		if math.Abs(p.Y-y) < delta {
			sides = append(sides, glyph.Top)
		}
		if math.Abs(p.X-(x+w)) < delta {
			sides = append(sides, glyph.Right)
		}
		if math.Abs(p.Y-(y+w)) < delta {
			sides = append(sides, glyph.Bottom)
		}
		if math.Abs(p.X-x) < delta {
			sides = append(sides, glyph.Left)
		}
		return sides
	}
	for rot := 0; rot < 4; rot++ {
		s := Resolve(glyph.Round, rot, x, y, w, w, 4).Sectors[0]
		mid := (s.Inner + s.Outer) / 2
		got := glyph.Of(append(onSide(s.PointAt(mid, s.Start)), onSide(s.PointAt(mid, s.End))...)...)
		assert.Equal(t, glyph.Exits(glyph.Round, rot), got, "rotation %d", rot)
	}
}

func TestResolveEmpty(t *testing.T) {
	shape := Resolve(glyph.Empty, 2, 0, 0, 12, 12, 6)
	assert.True(t, shape.Empty())
	assert.Equal(t, 0, shape.Primitives())
	assert.Equal(t, Rect{W: 12, H: 12}, shape.Bounds())
}

func TestResolveDegenerateStem(t *testing.T) {
	for _, stem := range []float64{24, 25, 40, 1000} {
		for _, mt := range glyph.Types() {
			for rot := 0; rot < 4; rot++ {
				name := fmt.Sprintf("%s/%d/%g", mt, rot, stem)
				shape := Resolve(mt, rot, 0, 0, 12, 12, stem)
				for _, r := range shape.Rects {
					assert.GreaterOrEqual(t, r.W, 0.0, name)
					assert.GreaterOrEqual(t, r.H, 0.0, name)
					assert.LessOrEqual(t, r.W, 12.0, name)
					assert.LessOrEqual(t, r.H, 12.0, name)
				}
				for _, s := range shape.Sectors {
					assert.GreaterOrEqual(t, s.Inner, 0.0, name)
					assert.Greater(t, s.Outer, 0.0, name)
					assert.True(t, s.IsPie(), name)
				}
				if mt != glyph.Empty {
					assert.False(t, shape.Empty(), name)
				}
			}
		}
	}
}

func TestResolveNegativeStem(t *testing.T) {
	shape := Resolve(glyph.Round, 0, 0, 0, 12, 12, -4)
	require.Len(t, shape.Sectors, 1)
	assert.Equal(t, 12.0, shape.Sectors[0].Inner)
	assert.Equal(t, 0.0, shape.Sectors[0].Thickness())
}

func TestStripeConservation(t *testing.T) {
	for _, thickness := range []float64{1, 3, 7.5, 20} {
		for n := 1; n <= 8; n++ {
			for _, ratio := range []float64{0, 0.1, 0.5, 0.95, 2, -1} {
				w2, gap := StripeWidths(thickness, n, ratio)
				assert.GreaterOrEqual(t, w2, 0.0)
				assert.GreaterOrEqual(t, gap, 0.0)
				assert.InDelta(t, thickness, float64(n)*w2+float64(n-1)*gap, 1e-9,
					"thickness %g n %d ratio %g", thickness, n, ratio)
			}
		}
	}
	w2, gap := StripeWidths(6, 1, 0.5)
	assert.Equal(t, 6.0, w2)
	assert.Zero(t, gap)
}

func TestRectStripesSpanThickness(t *testing.T) {
	r := Rect{X: 10, Y: 0, W: 6, H: 12, Vertical: true}
	stripes := r.Stripes(3, 0.5)
	require.Len(t, stripes, 3)
	assert.InDelta(t, r.X, stripes[0].X, delta)
	last := stripes[2]
	assert.InDelta(t, r.X+r.W, last.X+last.W, delta)
	for _, s := range stripes {
		assert.Equal(t, r.H, s.H)
		assert.InDelta(t, 1.0, s.W, delta)
	}

	h := Rect{X: 0, Y: 4, W: 12, H: 6}
	hs := h.Stripes(2, 0)
	require.Len(t, hs, 2)
	assert.Equal(t, 4.0, hs[0].Y)
	assert.Equal(t, 7.0, hs[1].Y)
	assert.Equal(t, 12.0, hs[1].W)
}

func TestSectorStripesConcentric(t *testing.T) {
	s := Sector{Inner: 6, Outer: 12, Start: 0, End: math.Pi / 2}
	stripes := s.Stripes(3, 0.4)
	require.Len(t, stripes, 3)
	assert.InDelta(t, 12.0, stripes[0].Outer, delta)
	assert.InDelta(t, 6.0, stripes[2].Inner, delta)
	for i := 1; i < len(stripes); i++ {
		assert.Less(t, stripes[i].Outer, stripes[i-1].Outer)
		assert.LessOrEqual(t, stripes[i].Outer, stripes[i-1].Inner+delta)
	}

	pie := Sector{Inner: 0, Outer: 3, Start: 0, End: math.Pi / 2}
	for _, sub := range pie.Stripes(4, 0.5) {
		assert.GreaterOrEqual(t, sub.Inner, 0.0)
		assert.Greater(t, sub.Outer, 0.0)
	}
}

func TestSectorStripesDropBelowCentre(t *testing.T) {
	tests := []struct {
		name      string
		t         glyph.ModuleType
		stem      float64
		wantOuter []float64
	}{
		// stroke 3 fits: three stripes of 0.7 with gaps of 0.45 fill the ring
		{"round fits", glyph.Round, 6, []float64{12, 10.85, 9.7}},
		// stroke 20 in a 12px cell: stripes of 14/3 with gaps of 3
		{"round too wide", glyph.Round, 40, []float64{12}},
		{"bend too wide", glyph.Bend, 40, []float64{12}},
		// stroke 15: stripes of 3.5 with gaps of 2.25, the third would end at -3
		{"bend slightly too wide", glyph.Bend, 30, []float64{12, 6.25}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shape := Resolve(tt.t, 0, 0, 0, 12, 12, tt.stem)
			require.Len(t, shape.Sectors, 1)
			stripes := shape.Sectors[0].Stripes(3, 0.3)
			require.Len(t, stripes, len(tt.wantOuter))
			for i, sub := range stripes {
				assert.InDelta(t, tt.wantOuter[i], sub.Outer, 1e-9, "stripe %d", i)
				assert.GreaterOrEqual(t, sub.Inner, 0.0, "stripe %d", i)
			}
		})
	}
}

func TestSingleStripeEqualsFill(t *testing.T) {
	for _, mt := range glyph.Types() {
		for rot := 0; rot < 4; rot++ {
			fill := Resolve(mt, rot, 3, 5, 12, 12, 6)
			assert.Equal(t, fill, fill.Stripes(1, 0.7), "%s rot %d", mt, rot)
		}
	}
}

func TestBounds(t *testing.T) {
	round := Resolve(glyph.Round, 0, 0, 0, 12, 12, 6)
	assertRect(t, Rect{W: 12, H: 12}, round.Bounds())

	link := Resolve(glyph.Link, 1, 0, 0, 12, 12, 6)
	assertRect(t, Rect{W: 12, H: 12}, link.Bounds())

	straight := Resolve(glyph.Straight, 0, 0, 0, 12, 12, 6)
	assertRect(t, Rect{W: 3, H: 12}, straight.Bounds())
}
