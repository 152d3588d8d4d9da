package glyph

import (
	"errors"
	"fmt"
)

// ErrMalformedCode is returned when a glyph code has the wrong length or
// contains a pair outside the module alphabet.
var ErrMalformedCode = errors.New("glyph: malformed code")

// Code is a glyph encoded as (type, rotation) letter pairs in row-major
// order, e.g. "S0E0..." for a 5x5 grid.
type Code string

// Cell is one decoded module of a glyph.
type Cell struct {
	Col, Row int
	Type     ModuleType
	Rotation int
}

// Exits returns the rotated exit sides of the cell.
func (c Cell) Exits() SideSet {
	return Exits(c.Type, c.Rotation)
}

// Validate checks that code has cols*rows pairs of a module letter
// followed by a rotation digit 0-3.
func Validate(code Code, cols, rows int) error {
	if cols <= 0 || rows <= 0 {
		return fmt.Errorf("%w: invalid grid %dx%d", ErrMalformedCode, cols, rows)
	}
	want := cols * rows * 2
	if len(code) != want {
		return fmt.Errorf("%w: length %d, want %d", ErrMalformedCode, len(code), want)
	}
	for i := 0; i < len(code); i += 2 {
		if _, ok := ParseType(code[i]); !ok {
			return fmt.Errorf("%w: unknown module type %q at pair %d", ErrMalformedCode, code[i], i/2)
		}
		if r := code[i+1]; r < '0' || r > '3' {
			return fmt.Errorf("%w: invalid rotation %q at pair %d", ErrMalformedCode, r, i/2)
		}
	}
	return nil
}

// Len returns the number of modules encoded in code.
func (code Code) Len() int {
	return len(code) / 2
}

// Cell decodes the i-th module of code for a grid cols wide. Pairs that
// fail to decode come back as Empty; callers validate codes up front.
func (code Code) Cell(i, cols int) Cell {
	c := Cell{Col: i % cols, Row: i / cols, Type: Empty}
	if 2*i+1 >= len(code) {
		return c
	}
	if t, ok := ParseType(code[2*i]); ok {
		c.Type = t
	}
	if r := code[2*i+1]; r >= '0' && r <= '3' {
		c.Rotation = int(r - '0')
	}
	return c
}

// Cells decodes every module of code for a grid cols wide.
func (code Code) Cells(cols int) []Cell {
	n := code.Len()
	cells := make([]Cell, n)
	for i := 0; i < n; i++ {
		cells[i] = code.Cell(i, cols)
	}
	return cells
}

// At returns the cell at (col,row), or an Empty cell outside the grid.
func (code Code) At(col, row, cols, rows int) Cell {
	if col < 0 || row < 0 || col >= cols || row >= rows {
		return Cell{Col: col, Row: row, Type: Empty}
	}
	return code.Cell(row*cols+col, cols)
}

// Encode builds a code from cells laid out row-major.
func Encode(cells []Cell) Code {
	buf := make([]byte, 0, len(cells)*2)
	for _, c := range cells {
		buf = append(buf, c.Type.Letter(), byte('0'+normRotation(c.Rotation)))
	}
	return Code(buf)
}
