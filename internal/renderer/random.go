package renderer

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/ryanlewis/voidtype/internal/debug"
	"github.com/ryanlewis/voidtype/internal/geometry"
	"github.com/ryanlewis/voidtype/internal/glyph"
	"github.com/ryanlewis/voidtype/internal/surface"
)

// ModuleParams is one random draw for a module.
type ModuleParams struct {
	StemMul  float64
	Strokes  int
	GapRatio float64
}

// Cache holds random draws so that repeated lookups within one text and
// parameter set return the same values. It is not safe for concurrent
// use.
type Cache struct {
	seed   int64
	rng    *rand.Rand
	byType map[glyph.ModuleType]ModuleParams
	full   map[ModuleKey]ModuleParams
}

// NewCache returns an empty cache drawing from seed.
func NewCache(seed int64) *Cache {
	return &Cache{
		seed:   seed,
		rng:    rand.New(rand.NewSource(seed)),
		byType: make(map[glyph.ModuleType]ModuleParams),
		full:   make(map[ModuleKey]ModuleParams),
	}
}

// Seed returns the seed the cache was last reset with.
func (c *Cache) Seed() int64 { return c.seed }

// Len returns the number of cached draws across both scopes.
func (c *Cache) Len() int { return len(c.byType) + len(c.full) }

// Clear drops every draw and restarts the generator from the seed, so
// the next render repeats the first one.
func (c *Cache) Clear() {
	clear(c.byType)
	clear(c.full)
	c.rng.Seed(c.seed)
}

// Reseed clears the cache and switches to a new seed.
func (c *Cache) Reseed(seed int64) {
	c.seed = seed
	c.Clear()
}

// Params returns the draw for a module, drawing and storing it on a miss.
// hit reports whether the value came from the cache.
func (c *Cache) Params(ro RandomOptions, key ModuleKey, t glyph.ModuleType) (p ModuleParams, hit bool) {
	if ro.Scope == ScopeFull {
		if p, ok := c.full[key]; ok {
			return p, true
		}
		p = c.draw(ro)
		c.full[key] = p
		return p, false
	}
	if p, ok := c.byType[t]; ok {
		return p, true
	}
	p = c.draw(ro)
	c.byType[t] = p
	return p, false
}

func (c *Cache) draw(ro RandomOptions) ModuleParams {
	return ModuleParams{
		StemMul:  c.uniform(ro.StemMul),
		Strokes:  c.intn(ro.Strokes),
		GapRatio: c.uniform(ro.Gap),
	}
}

func (c *Cache) uniform(r Range) float64 {
	lo, hi := r.Min, r.Max
	if hi < lo {
		lo, hi = hi, lo
	}
	if hi == lo {
		return lo
	}
	return lo + c.rng.Float64()*(hi-lo)
}

func (c *Cache) intn(r IntRange) int {
	lo, hi := r.Min, r.Max
	if hi < lo {
		lo, hi = hi, lo
	}
	lo = max(lo, 1)
	hi = max(hi, lo)
	return lo + c.rng.Intn(hi-lo+1)
}

// Random is Stripes with stem weight, stripe count and gap drawn per
// module type or per cell.
type Random struct {
	Cache        *Cache
	Options      RandomOptions
	Stem         float64
	CornerRadius float64
	Debug        *debug.Session
}

// Draw re-resolves the module with its drawn stem and paints it striped
// with its drawn count and gap.
func (rs Random) Draw(s surface.Surface, m Module) int {
	p, hit := rs.Cache.Params(rs.Options, m.Key, m.Cell.Type)
	if !hit && rs.Debug != nil {
		key := m.Cell.Type.String()
		if rs.Options.Scope == ScopeFull {
			key = fmt.Sprintf("%d:%d:%d,%d", m.Key.Line, m.Key.Char, m.Key.Col, m.Key.Row)
		}
		rs.Debug.Emit("random", "Draw", debug.RandomDrawData{
			Scope:   rs.Options.Scope.String(),
			Key:     key,
			StemMul: p.StemMul,
			Strokes: p.Strokes,
			Gap:     p.GapRatio,
		})
	}
	stem := math.Max(rs.Stem*p.StemMul, 0)
	cell := m.Shape.Cell
	shape := geometry.Resolve(m.Cell.Type, m.Cell.Rotation, cell.X, cell.Y, cell.W, cell.H, stem)
	return paintShape(s, shape.Stripes(p.Strokes, p.GapRatio), rs.CornerRadius)
}
