package voidtype

import (
	"fmt"
	"image/color"
	"math"

	"github.com/ryanlewis/voidtype/internal/common"
	"github.com/ryanlewis/voidtype/internal/geometry"
	"github.com/ryanlewis/voidtype/internal/glyph"
	"github.com/ryanlewis/voidtype/internal/renderer"
	"github.com/ryanlewis/voidtype/internal/surface"
)

// Params is the full set of render parameters. Colours are hex strings
// (#rgb, #rrggbb or #rrggbbaa); an empty BgColor paints no background.
type Params struct {
	Text string `yaml:"text"`

	ModuleSize    float64 `yaml:"module_size"`
	Stem          float64 `yaml:"stem"`
	LetterSpacing float64 `yaml:"letter_spacing"`
	LineHeight    float64 `yaml:"line_height"`
	CornerRadius  float64 `yaml:"corner_radius,omitempty"`

	Mode     Mode    `yaml:"mode"`
	Strokes  int     `yaml:"strokes"`
	GapRatio float64 `yaml:"gap_ratio"`

	Color     string    `yaml:"color"`
	BgColor   string    `yaml:"bg_color"`
	GridColor string    `yaml:"grid_color"`
	Gradient  *Gradient `yaml:"gradient,omitempty"`

	ShowGrid    bool `yaml:"show_grid"`
	ShowOverlay bool `yaml:"show_overlay"`

	Random RandomParams `yaml:"random"`

	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Gradient fades strokes from one colour to another across each path.
type Gradient struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// RandomParams bounds the draws of random mode. Stem bounds multiply
// Params.Stem.
type RandomParams struct {
	StemMin    float64 `yaml:"stem_min"`
	StemMax    float64 `yaml:"stem_max"`
	StrokesMin int     `yaml:"strokes_min"`
	StrokesMax int     `yaml:"strokes_max"`
	GapMin     float64 `yaml:"gap_min"`
	GapMax     float64 `yaml:"gap_max"`
	Scope      Scope   `yaml:"scope"`
	Seed       int64   `yaml:"seed"`
}

// DefaultParams returns the parameters used when nothing is configured.
func DefaultParams() Params {
	return Params{
		ModuleSize:    common.DefaultModuleSize,
		Stem:          common.DefaultStem,
		LetterSpacing: common.DefaultLetterSpacing,
		LineHeight:    common.DefaultLineHeight,
		Mode:          ModeFill,
		Strokes:       common.DefaultStrokes,
		GapRatio:      common.DefaultGapRatio,
		Color:         common.DefaultColor,
		BgColor:       common.DefaultBgColor,
		GridColor:     common.DefaultGridColor,
		Random:        DefaultRandomParams(),
		Width:         common.DefaultWidth,
		Height:        common.DefaultHeight,
	}
}

// DefaultRandomParams returns the default random-mode ranges.
func DefaultRandomParams() RandomParams {
	return RandomParams{
		StemMin:    common.DefaultStemMin,
		StemMax:    common.DefaultStemMax,
		StrokesMin: common.DefaultStrokesMin,
		StrokesMax: common.DefaultStrokesMax,
		GapMin:     common.DefaultGapMin,
		GapMax:     common.DefaultGapMax,
		Scope:      ScopeByType,
	}
}

// Normalize validates p and clamps values that have a safe nearest value.
//
// Errors (wrapping ErrInvalidParams):
//   - module size not positive, or any value NaN or infinite
//   - canvas outside 1..16384 on either side
//   - unknown mode or scope
//   - a colour that does not parse
//
// Clamped:
//   - negative stem, spacing, line height and corner radius become 0
//   - stripe counts into 1..64
//   - gap ratios into 0..0.95
//   - reversed random ranges are swapped
//
// Empty mode and scope select the defaults.
func (p *Params) Normalize() error {
	for name, v := range map[string]float64{
		"module_size":    p.ModuleSize,
		"stem":           p.Stem,
		"letter_spacing": p.LetterSpacing,
		"line_height":    p.LineHeight,
		"corner_radius":  p.CornerRadius,
		"gap_ratio":      p.GapRatio,
		"random.stem":    p.Random.StemMin + p.Random.StemMax,
		"random.gap":     p.Random.GapMin + p.Random.GapMax,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s is not a finite number", ErrInvalidParams, name)
		}
	}
	if p.ModuleSize <= 0 {
		return fmt.Errorf("%w: module_size must be positive, got %g", ErrInvalidParams, p.ModuleSize)
	}
	if p.Width < 1 || p.Height < 1 || p.Width > common.MaxCanvas || p.Height > common.MaxCanvas {
		return fmt.Errorf("%w: canvas %dx%d outside 1..%d", ErrInvalidParams, p.Width, p.Height, common.MaxCanvas)
	}

	if p.Mode == "" {
		p.Mode = ModeFill
	}
	if _, ok := p.Mode.internal(); !ok {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidParams, p.Mode)
	}
	if p.Random.Scope == "" {
		p.Random.Scope = ScopeByType
	}
	if _, ok := renderer.ParseScope(string(p.Random.Scope)); !ok {
		return fmt.Errorf("%w: unknown random scope %q", ErrInvalidParams, p.Random.Scope)
	}

	p.Stem = math.Max(p.Stem, 0)
	p.LetterSpacing = math.Max(p.LetterSpacing, 0)
	p.LineHeight = math.Max(p.LineHeight, 0)
	p.CornerRadius = math.Max(p.CornerRadius, 0)
	p.Strokes = clampInt(p.Strokes, 1, common.MaxStrokes)
	p.GapRatio = clampGap(p.GapRatio)

	r := &p.Random
	if r.StemMin > r.StemMax {
		r.StemMin, r.StemMax = r.StemMax, r.StemMin
	}
	r.StemMin = math.Max(r.StemMin, 0)
	r.StemMax = math.Max(r.StemMax, 0)
	if r.StrokesMin > r.StrokesMax {
		r.StrokesMin, r.StrokesMax = r.StrokesMax, r.StrokesMin
	}
	r.StrokesMin = clampInt(r.StrokesMin, 1, common.MaxStrokes)
	r.StrokesMax = clampInt(r.StrokesMax, r.StrokesMin, common.MaxStrokes)
	if r.GapMin > r.GapMax {
		r.GapMin, r.GapMax = r.GapMax, r.GapMin
	}
	r.GapMin = clampGap(r.GapMin)
	r.GapMax = clampGap(r.GapMax)

	for name, c := range map[string]string{"color": p.Color, "grid_color": p.GridColor} {
		if _, err := surface.ParseHex(c); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidParams, name, err)
		}
	}
	if p.BgColor != "" {
		if _, err := surface.ParseHex(p.BgColor); err != nil {
			return fmt.Errorf("%w: bg_color: %v", ErrInvalidParams, err)
		}
	}
	if p.Gradient != nil {
		if _, err := surface.ParseHex(p.Gradient.From); err != nil {
			return fmt.Errorf("%w: gradient.from: %v", ErrInvalidParams, err)
		}
		if _, err := surface.ParseHex(p.Gradient.To); err != nil {
			return fmt.Errorf("%w: gradient.to: %v", ErrInvalidParams, err)
		}
	}
	return nil
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

func clampGap(v float64) float64 {
	return math.Min(math.Max(v, 0), geometry.MaxGapRatio)
}

// rendererOptions converts normalised params to renderer options.
func (p *Params) rendererOptions(table *glyph.Table) *renderer.Options {
	mode, _ := p.Mode.internal()
	scope, _ := renderer.ParseScope(string(p.Random.Scope))
	opts := &renderer.Options{
		Table:         table,
		ModuleSize:    p.ModuleSize,
		Stem:          p.Stem,
		LetterSpacing: p.LetterSpacing,
		LineHeight:    p.LineHeight,
		CornerRadius:  p.CornerRadius,
		Width:         p.Width,
		Height:        p.Height,
		Mode:          mode,
		Strokes:       p.Strokes,
		GapRatio:      p.GapRatio,
		Random: renderer.RandomOptions{
			StemMul: renderer.Range{Min: p.Random.StemMin, Max: p.Random.StemMax},
			Strokes: renderer.IntRange{Min: p.Random.StrokesMin, Max: p.Random.StrokesMax},
			Gap:     renderer.Range{Min: p.Random.GapMin, Max: p.Random.GapMax},
			Scope:   scope,
		},
		Color:       hexOr(p.Color, color.Black),
		GridColor:   hexOr(p.GridColor, color.Gray{Y: 0xd0}),
		ShowGrid:    p.ShowGrid,
		ShowOverlay: p.ShowOverlay,
	}
	if p.BgColor != "" {
		opts.Background = hexOr(p.BgColor, color.White)
	}
	if p.Gradient != nil {
		opts.Color = hexOr(p.Gradient.From, opts.Color)
		opts.GradientTo = hexOr(p.Gradient.To, opts.Color)
	}
	return opts
}

func hexOr(s string, fallback color.Color) color.Color {
	c, err := surface.ParseHex(s)
	if err != nil {
		return fallback
	}
	return c
}
