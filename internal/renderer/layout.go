package renderer

import (
	"strings"

	"github.com/ryanlewis/voidtype/internal/geometry"
	"github.com/ryanlewis/voidtype/internal/glyph"
)

// ModuleKey identifies one cell of one character in the composed text.
type ModuleKey struct {
	Line, Char int
	Col, Row   int
}

// Module is a non-empty cell placed on the canvas.
type Module struct {
	Key   ModuleKey
	Cell  glyph.Cell
	Shape geometry.Shape
}

// Line is one row of text after layout.
type Line struct {
	Runes []rune
	// Width is the pixel width of the line, 0 when empty.
	Width float64
	X, Y  float64
}

// PlacedGlyph is one character with its origin and module shapes.
type PlacedGlyph struct {
	Line, Index int
	Rune        rune
	Code        glyph.Code
	X, Y        float64
	// Fallback is set when the rune had no glyph and rendered as space.
	Fallback bool
	Modules  []Module
}

// Layout is the draw list produced by Compose.
type Layout struct {
	Cols, Rows   int
	ModuleSize   float64
	Width        float64
	Height       float64
	Lines        []Line
	Glyphs       []PlacedGlyph
	blockTop     float64
	blockHeight  float64
	moduleCount  int
	fallbackRune int
}

// GridWidth returns the pixel width of one glyph.
func (l *Layout) GridWidth() float64 { return float64(l.Cols) * l.ModuleSize }

// GridHeight returns the pixel height of one glyph.
func (l *Layout) GridHeight() float64 { return float64(l.Rows) * l.ModuleSize }

// BlockTop returns the y of the first line.
func (l *Layout) BlockTop() float64 { return l.blockTop }

// BlockHeight returns the height of all lines including line gaps.
func (l *Layout) BlockHeight() float64 { return l.blockHeight }

// Modules returns the number of non-empty cells in the layout.
func (l *Layout) Modules() int { return l.moduleCount }

// Fallbacks returns the number of runes drawn as space for lack of a glyph.
func (l *Layout) Fallbacks() int { return l.fallbackRune }

// Release hands the module buffers back to the pool. The layout must not
// be used afterwards.
func (l *Layout) Release() {
	if l == nil {
		return
	}
	for i := range l.Glyphs {
		releaseModules(l.Glyphs[i].Modules)
		l.Glyphs[i].Modules = nil
	}
	l.Glyphs = nil
}

// LineWidth is the width of n glyphs separated by letter spacing.
func LineWidth(n int, gridW, letterSpacing float64) float64 {
	if n <= 0 {
		return 0
	}
	return float64(n)*(gridW+letterSpacing) - letterSpacing
}

// BlockHeight is the height of n lines separated by line height.
func BlockHeight(n int, gridH, lineHeight float64) float64 {
	if n <= 0 {
		return 0
	}
	return float64(n)*(gridH+lineHeight) - lineHeight
}

// Compose lays text out on the canvas. Lines split on '\n' are centred
// horizontally one by one and the block is centred vertically. Every
// non-empty cell is resolved to its shape at its pixel origin. Text is
// used as given; callers normalise it first.
func Compose(text string, opts *Options) *Layout {
	table := opts.table()
	cols, rows := table.Cols(), table.Rows()
	size := opts.ModuleSize

	l := &Layout{
		Cols:       cols,
		Rows:       rows,
		ModuleSize: size,
		Width:      float64(opts.Width),
		Height:     float64(opts.Height),
	}
	gridW, gridH := l.GridWidth(), l.GridHeight()

	parts := strings.Split(text, "\n")
	l.blockHeight = BlockHeight(len(parts), gridH, opts.LineHeight)
	l.blockTop = (l.Height - l.blockHeight) / 2
	l.Lines = make([]Line, 0, len(parts))

	buf := acquireRunes()
	defer releaseRunes(buf)

	for li, part := range parts {
		buf = buf[:0]
		for _, r := range part {
			buf = append(buf, r)
		}
		runes := make([]rune, len(buf))
		copy(runes, buf)

		width := LineWidth(len(runes), gridW, opts.LetterSpacing)
		line := Line{
			Runes: runes,
			Width: width,
			X:     (l.Width - width) / 2,
			Y:     l.blockTop + float64(li)*(gridH+opts.LineHeight),
		}
		l.Lines = append(l.Lines, line)

		for ci, r := range runes {
			code, ok := table.LookupOK(r)
			g := PlacedGlyph{
				Line:     li,
				Index:    ci,
				Rune:     r,
				Code:     code,
				X:        line.X + float64(ci)*(gridW+opts.LetterSpacing),
				Y:        line.Y,
				Fallback: !ok && r != ' ',
			}
			if g.Fallback {
				l.fallbackRune++
			}
			g.Modules = composeGlyph(li, ci, code, g.X, g.Y, cols, size, opts.Stem)
			l.moduleCount += len(g.Modules)
			l.Glyphs = append(l.Glyphs, g)
		}
	}
	return l
}

func composeGlyph(line, char int, code glyph.Code, x, y float64, cols int, size, stem float64) []Module {
	n := code.Len()
	mods := acquireModules(n)
	for i := 0; i < n; i++ {
		cell := code.Cell(i, cols)
		if cell.Type == glyph.Empty {
			continue
		}
		cx := x + float64(cell.Col)*size
		cy := y + float64(cell.Row)*size
		mods = append(mods, Module{
			Key:   ModuleKey{Line: line, Char: char, Col: cell.Col, Row: cell.Row},
			Cell:  cell,
			Shape: geometry.Resolve(cell.Type, cell.Rotation, cx, cy, size, size, stem),
		})
	}
	return mods
}
