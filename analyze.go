package voidtype

import (
	"sort"

	"github.com/ryanlewis/voidtype/internal/connectivity"
	"github.com/ryanlewis/voidtype/internal/debug"
	"github.com/ryanlewis/voidtype/internal/glyph"
)

// Analysis describes how the strokes of one glyph join up.
type Analysis struct {
	Rune rune
	Code string
	// Defined is false when the rune fell back to space
	Defined     bool
	Modules     int
	Connections []Connection
	Endpoints   []Endpoint
	// Components lists the cells of each connected stroke, isolated
	// modules included
	Components [][]CellRef
	// Topology is one of blank, dots, closed, open, branched or split
	Topology string
}

// Analyze inspects the glyph for r in the session's alphabet.
func (s *Session) Analyze(r rune) Analysis {
	a := analyze(s.alphabet.tableOrDefault(), r)
	s.trace.Emit("analysis", "Glyph", debug.AnalysisData{
		Rune:        a.Rune,
		Connections: len(a.Connections),
		Endpoints:   len(a.Endpoints),
		Components:  len(a.Components),
		Topology:    a.Topology,
	})
	return a
}

// AnalyzeText inspects each distinct rune of the session text, in order
// of first appearance. Line breaks are skipped.
func (s *Session) AnalyzeText() []Analysis {
	seen := make(map[rune]bool)
	var out []Analysis
	for _, r := range s.text {
		if r == '\n' || seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, s.Analyze(r))
	}
	return out
}

// Analyze inspects the builtin glyph for r.
func Analyze(r rune) Analysis {
	return analyze(glyph.Default(), r)
}

func analyze(t *glyph.Table, r rune) Analysis {
	code, ok := t.LookupOK(r)
	res := connectivity.Analyze(code, t.Cols(), t.Rows())

	comps := res.Components()
	joined := make(map[CellRef]bool)
	for _, comp := range comps {
		for _, c := range comp {
			joined[c] = true
		}
	}
	modules := 0
	for _, c := range code.Cells(t.Cols()) {
		if c.Type == glyph.Empty {
			continue
		}
		modules++
		if ref := (CellRef{Col: c.Col, Row: c.Row}); !joined[ref] {
			comps = append(comps, []CellRef{ref})
		}
	}
	sort.SliceStable(comps, func(i, j int) bool {
		a, b := comps[i][0], comps[j][0]
		if a.Row != b.Row {
			return a.Row < b.Row
		}
		return a.Col < b.Col
	})

	return Analysis{
		Rune:        r,
		Code:        string(code),
		Defined:     ok,
		Modules:     modules,
		Connections: res.Connections,
		Endpoints:   res.Endpoints,
		Components:  comps,
		Topology:    debug.ClassifyTopology(modules, len(res.Connections), len(res.Endpoints), len(comps)),
	}
}
