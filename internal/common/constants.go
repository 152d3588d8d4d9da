// Package common provides shared defaults and the package logger for the
// internal packages. The defaults must match DefaultParams in the voidtype
// package.
package common

// Render parameter defaults
const (
	// DefaultModuleSize is the pixel edge of one grid cell
	DefaultModuleSize = 12.0
	// DefaultStem is the configured stroke weight; strokes are Stem/2 thick
	DefaultStem = 8.0
	// DefaultLetterSpacing is the gap between glyph boxes on a line
	DefaultLetterSpacing = 12.0
	// DefaultLineHeight is the gap between line boxes
	DefaultLineHeight = 24.0
	// DefaultStrokes is the stripe count in stripe mode
	DefaultStrokes = 3
	// DefaultGapRatio is the share of a stroke given to gaps in stripe mode
	DefaultGapRatio = 0.3
	// DefaultWidth and DefaultHeight size the canvas in pixels
	DefaultWidth  = 800
	DefaultHeight = 400
)

// Colour defaults, as hex strings.
const (
	DefaultColor     = "#000000"
	DefaultBgColor   = "#ffffff"
	DefaultGridColor = "#d0d0d0"

	// OverlayEndpointColor marks free stroke ends
	OverlayEndpointColor = "#e0245e"
	// OverlayConnectionColor marks joins between neighbouring cells
	OverlayConnectionColor = "#1d9bf0"
)

// Overlay marker sizes as fractions of the module size
const (
	OverlayEndpointRadius  = 0.12
	OverlayConnectionWidth = 0.08
	OverlayConnectionReach = 0.25
	GridLineWidth          = 0.5
)

// Random mode defaults
const (
	DefaultStemMin    = 0.5
	DefaultStemMax    = 1.5
	DefaultStrokesMin = 1
	DefaultStrokesMax = 5
	DefaultGapMin     = 0.1
	DefaultGapMax     = 0.6
)

// Limits enforced when parameters are normalised
const (
	// MaxStrokes bounds the stripe count so one module cannot explode into
	// thousands of paths
	MaxStrokes = 64
	// MaxCanvas bounds either canvas dimension
	MaxCanvas = 16384
)

// Environment variables read by the CLI and by debug.InitFromEnv
const (
	EnvDebug       = "VOID_DEBUG"
	EnvDebugPretty = "VOID_DEBUG_PRETTY"
)
