package voidtype

import (
	"errors"

	"github.com/ryanlewis/voidtype/internal/connectivity"
	"github.com/ryanlewis/voidtype/internal/glyph"
	"github.com/ryanlewis/voidtype/internal/renderer"
	"github.com/ryanlewis/voidtype/internal/surface"
)

// Common errors returned by the voidtype package
var (
	// ErrEmptyText is returned by exports when there is no text to draw.
	// Nothing is written when it is returned.
	ErrEmptyText = errors.New("empty text")

	// ErrInvalidParams is returned when parameters cannot be normalised
	// into a drawable configuration
	ErrInvalidParams = errors.New("invalid params")

	// ErrMalformedCode is returned when an alphabet holds a glyph code of
	// the wrong length or with letters outside the module alphabet
	ErrMalformedCode = glyph.ErrMalformedCode

	// ErrUnknownBackend is returned for an unregistered output backend
	ErrUnknownBackend = surface.ErrUnknownBackend
)

// Mode selects how strokes are painted.
type Mode string

// Stroke modes
const (
	ModeFill    Mode = "fill"
	ModeStripes Mode = "stripes"
	ModeRandom  Mode = "random"
)

func (m Mode) internal() (renderer.Mode, bool) {
	return renderer.ParseMode(string(m))
}

// Scope selects how random draws are shared.
type Scope string

// Random scopes
const (
	// ScopeByType draws once per module type
	ScopeByType Scope = "byType"
	// ScopeFull draws once per cell of every glyph
	ScopeFull Scope = "full"
)

// Output backends
const (
	BackendSVG    = "svg"
	BackendPNG    = "png"
	BackendRecord = "record"
)

// Connectivity types, shared with the analyzer.
type (
	CellRef    = connectivity.CellRef
	Connection = connectivity.Connection
	Endpoint   = connectivity.Endpoint
)

// Stats summarises one render.
type Stats struct {
	Lines     int
	Glyphs    int
	Fallbacks int
	Modules   int
	Paths     int
}

func statsFrom(s renderer.Stats) Stats {
	return Stats{
		Lines:     s.Lines,
		Glyphs:    s.Glyphs,
		Fallbacks: s.Fallbacks,
		Modules:   s.Modules,
		Paths:     s.Paths,
	}
}
