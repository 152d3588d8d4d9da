package renderer

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/ryanlewis/voidtype/internal/debug"
	"github.com/ryanlewis/voidtype/internal/glyph"
)

// ErrNilSurface is returned when Render is given no surface.
var ErrNilSurface = errors.New("surface cannot be nil")

// Mode selects how module strokes are painted.
type Mode int

// Stroke modes
const (
	// ModeFill paints each primitive once
	ModeFill Mode = iota
	// ModeStripes splits each primitive into parallel stripes
	ModeStripes
	// ModeRandom is stripes with per-module random weight, count and gap
	ModeRandom
)

var modeNames = [...]string{
	ModeFill:    "fill",
	ModeStripes: "stripes",
	ModeRandom:  "random",
}

func (m Mode) String() string {
	if m >= 0 && int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode maps a mode name to its Mode.
func ParseMode(s string) (Mode, bool) {
	for i, name := range modeNames {
		if name == s {
			return Mode(i), true
		}
	}
	return ModeFill, false
}

// Scope selects how random draws are shared between modules.
type Scope int

// Random scopes
const (
	// ScopeByType shares one draw between all modules of a type
	ScopeByType Scope = iota
	// ScopeFull draws for every cell of every glyph
	ScopeFull
)

func (s Scope) String() string {
	if s == ScopeFull {
		return "full"
	}
	return "byType"
}

// ParseScope maps "byType" or "full" to a Scope.
func ParseScope(s string) (Scope, bool) {
	switch s {
	case "byType", "bytype", "type":
		return ScopeByType, true
	case "full", "cell":
		return ScopeFull, true
	}
	return ScopeByType, false
}

// Range is an inclusive interval of floats.
type Range struct {
	Min, Max float64
}

// IntRange is an inclusive interval of ints.
type IntRange struct {
	Min, Max int
}

// RandomOptions bounds the draws made in ModeRandom.
type RandomOptions struct {
	// StemMul scales Options.Stem per draw
	StemMul Range
	Strokes IntRange
	Gap     Range
	Scope   Scope
}

// Options is the read-only parameter set for one render pass.
type Options struct {
	// Table resolves runes; nil means the builtin alphabet
	Table *glyph.Table

	ModuleSize    float64
	Stem          float64
	LetterSpacing float64
	LineHeight    float64
	CornerRadius  float64

	Width, Height int

	Mode     Mode
	Strokes  int
	GapRatio float64
	Random   RandomOptions

	Color color.Color
	// Background, when non-nil, is painted under everything
	Background color.Color
	// GradientTo, when non-nil, fades strokes from Color to it
	GradientTo color.Color

	ShowGrid  bool
	GridColor color.Color

	// ShowOverlay marks endpoints and connections on each glyph
	ShowOverlay bool

	Debug *debug.Session
}

func (o *Options) table() *glyph.Table {
	if o.Table == nil {
		return glyph.Default()
	}
	return o.Table
}

// cols and rows come from the table so custom alphabets may use other
// grid sizes.
func (o *Options) cols() int { return o.table().Cols() }
func (o *Options) rows() int { return o.table().Rows() }

// Stats summarises a render pass.
type Stats struct {
	Lines     int
	Glyphs    int
	Fallbacks int
	// Modules counts non-empty cells drawn
	Modules int
	// Paths counts filled primitives, one per surface Fill
	Paths int
}
