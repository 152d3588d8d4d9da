// Package connectivity finds where the strokes of a glyph join across
// module boundaries and where they stop. The result only feeds
// diagnostic overlays; rendering never reads it.
package connectivity

import (
	"fmt"
	"sort"

	"github.com/ryanlewis/voidtype/internal/glyph"
)

// CellRef addresses one module in a glyph grid.
type CellRef struct {
	Col, Row int
}

func (c CellRef) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

func (c CellRef) step(s glyph.Side) CellRef {
	dc, dr := s.Offset()
	return CellRef{c.Col + dc, c.Row + dr}
}

// before orders cells row-major.
func (c CellRef) before(o CellRef) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}
	return c.Col < o.Col
}

// Connection joins two neighbouring modules through a shared edge. A
// always precedes B in row-major order; SideA is the edge as seen from A.
type Connection struct {
	A, B  CellRef
	SideA glyph.Side
}

// SideB returns the shared edge as seen from B.
func (c Connection) SideB() glyph.Side {
	return c.SideA.Opposite()
}

func (c Connection) String() string {
	return fmt.Sprintf("%s.%s-%s.%s", c.A, c.SideA, c.B, c.SideB())
}

// Endpoint is a module side where a stroke ends.
type Endpoint struct {
	Cell CellRef
	Side glyph.Side
	Type glyph.ModuleType
}

func (e Endpoint) String() string {
	return fmt.Sprintf("%s.%s", e.Cell, e.Side)
}

// Result is the analysis of one glyph.
type Result struct {
	Cols, Rows  int
	Connections []Connection
	Endpoints   []Endpoint

	adj map[CellRef][]CellRef
}

// Analyze inspects every exit of every non-empty module in code. An exit
// facing the grid edge or an empty module is an endpoint, except for arcs,
// whose open ends are settled after all their exits are seen. An exit
// facing a module that exits back, shares any exit side with it, or is an
// arc when the current module is also an arc, is a connection; any other
// exit of a non-arc module is an endpoint.
func Analyze(code glyph.Code, cols, rows int) Result {
	res := Result{Cols: cols, Rows: rows, adj: make(map[CellRef][]CellRef)}
	seen := make(map[Connection]bool)

	for i, n := 0, cols*rows; i < n; i++ {
		cell := code.Cell(i, cols)
		if cell.Type == glyph.Empty {
			continue
		}
		here := CellRef{cell.Col, cell.Row}
		exits := cell.Exits()
		arc := cell.Type.IsArc()
		var joined glyph.SideSet

		for _, side := range exits.Sides() {
			there := here.step(side)
			nb := code.At(there.Col, there.Row, cols, rows)
			if nb.Type == glyph.Empty {
				if !arc {
					res.Endpoints = append(res.Endpoints, Endpoint{here, side, cell.Type})
				}
				continue
			}
			nbExits := nb.Exits()
			if nbExits.Has(side.Opposite()) || exits.Intersects(nbExits) || (arc && nb.Type.IsArc()) {
				joined |= glyph.Of(side)
				c := Connection{A: here, B: there, SideA: side}
				if there.before(here) {
					c = Connection{A: there, B: here, SideA: side.Opposite()}
				}
				if !seen[c] {
					seen[c] = true
					res.Connections = append(res.Connections, c)
					res.adj[c.A] = append(res.adj[c.A], c.B)
					res.adj[c.B] = append(res.adj[c.B], c.A)
				}
				continue
			}
			if !arc {
				res.Endpoints = append(res.Endpoints, Endpoint{here, side, cell.Type})
			}
		}

		if arc {
			for _, side := range exits.Sides() {
				if joined.Has(side) {
					continue
				}
				there := here.step(side)
				if code.At(there.Col, there.Row, cols, rows).Type == glyph.Empty {
					res.Endpoints = append(res.Endpoints, Endpoint{here, side, cell.Type})
				}
			}
		}
	}
	return res
}

// Connected reports whether a and b are joined, in either direction.
func (r Result) Connected(a, b CellRef) bool {
	for _, n := range r.adj[a] {
		if n == b {
			return true
		}
	}
	return false
}

// Neighbours returns the modules joined to c, in discovery order.
func (r Result) Neighbours(c CellRef) []CellRef {
	return append([]CellRef(nil), r.adj[c]...)
}

// Components groups the joined modules into strokes by breadth-first
// search over the connections. Modules with no connection at all are not
// reported. Each component is sorted row-major and components are ordered
// by their first cell.
func (r Result) Components() [][]CellRef {
	starts := make([]CellRef, 0, len(r.adj))
	for c := range r.adj {
		starts = append(starts, c)
	}
	sortCells(starts)

	seen := make(map[CellRef]bool, len(starts))
	var comps [][]CellRef
	for _, s := range starts {
		if seen[s] {
			continue
		}
		seen[s] = true
		queue := []CellRef{s}
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range r.adj[queue[qi]] {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		sortCells(queue)
		comps = append(comps, queue)
	}
	return comps
}

func sortCells(cells []CellRef) {
	sort.Slice(cells, func(i, j int) bool { return cells[i].before(cells[j]) })
}
