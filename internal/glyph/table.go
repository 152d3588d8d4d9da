package glyph

import (
	"fmt"
	"sort"
)

// SpaceCode is the all-empty glyph every unknown rune resolves to.
const SpaceCode Code = "E0E0E0E0E0" +
	"E0E0E0E0E0" +
	"E0E0E0E0E0" +
	"E0E0E0E0E0" +
	"E0E0E0E0E0"

// builtin is the Void alphabet. Each entry is five rows of five
// (type, rotation) pairs.
var builtin = map[rune]Code{
	' ': SpaceCode,

	// punctuation
	'.': "E0E0E0E0E0" + "E0E0E0E0E0" + "E0E0E0E0E0" + "E0E0E0E0E0" + "E0E0C0E0E0",
	',': "E0E0E0E0E0" + "E0E0E0E0E0" + "E0E0E0E0E0" + "E0E0C0E0E0" + "E0E0B0E0E0",
	'!': "E0E0C0E0E0" + "E0E0C0E0E0" + "E0E0C0E0E0" + "E0E0E0E0E0" + "E0E0C0E0E0",
	'?': "S1S1S1S1R2" + "E0E0E0E0S2" + "E0E0R1S1R3" + "E0E0E0E0E0" + "E0E0C0E0E0",
	'-': "E0E0E0E0E0" + "E0E0E0E0E0" + "E0C1C1C1E0" + "E0E0E0E0E0" + "E0E0E0E0E0",
	'+': "E0E0E0E0E0" + "E0E0C0E0E0" + "E0C1C0C1E0" + "E0E0C0E0E0" + "E0E0E0E0E0",
	':': "E0E0E0E0E0" + "E0E0C0E0E0" + "E0E0E0E0E0" + "E0E0C0E0E0" + "E0E0E0E0E0",
	'\'': "E0E0C0E0E0" + "E0E0E0E0E0" + "E0E0E0E0E0" + "E0E0E0E0E0" + "E0E0E0E0E0",
	'(': "E0E0R1E0E0" + "E0E0S0E0E0" + "E0E0S0E0E0" + "E0E0S0E0E0" + "E0E0R0E0E0",
	')': "E0E0R2E0E0" + "E0E0S2E0E0" + "E0E0S2E0E0" + "E0E0S2E0E0" + "E0E0R3E0E0",

	// digits
	'0': "R1S1S1S1R2" + "S0E0E0E0S2" + "S0E0C0E0S2" + "S0E0E0E0S2" + "R0S3S3S3R3",
	'1': "E0S1J1E0E0" + "E0E0C0E0E0" + "E0E0C0E0E0" + "E0E0C0E0E0" + "E0S3J3S3E0",
	'2': "S1S1S1S1R2" + "E0E0E0E0S2" + "R1S1S1S1R3" + "S0E0E0E0E0" + "L0S3S3S3S3",
	'3': "S1S1S1S1R2" + "E0E0E0E0S2" + "E0C1C1C1J2" + "E0E0E0E0S2" + "S3S3S3S3R3",
	'4': "S0E0E0E0S2" + "S0E0E0E0S2" + "L0S3S3S3L3" + "E0E0E0E0S2" + "E0E0E0E0S2",
	'5': "L1S1S1S1S1" + "S0E0E0E0E0" + "L0S3S3S3E0" + "E0E0E0E0R2" + "S3S3S3S3R3",
	'6': "R1S1S1S1S1" + "S0E0E0E0E0" + "L0S3S3S3E0" + "S0E0E0E0R2" + "R0S3S3S3R3",
	'7': "S1S1S1S1R2" + "E0E0E0E0S2" + "E0E0E0E0S2" + "E0E0E0E0S2" + "E0E0E0E0S2",
	'8': "R1S1S1S1R2" + "S0E0E0E0S2" + "J0C1C1C1J2" + "S0E0E0E0S2" + "R0S3S3S3R3",
	'9': "R1S1S1S1R2" + "S0E0E0E0S2" + "R0S3S3S3L3" + "E0E0E0E0S2" + "S3S3S3S3R3",

	// Latin
	'A': "R1S1S1S1R2" + "S0E0E0E0S2" + "J0C1C1C1J2" + "S0E0E0E0S2" + "S0E0E0E0S2",
	'B': "L1S1S1S1R2" + "S0E0E0E0S2" + "J0C1C1C1J2" + "S0E0E0E0S2" + "L0S3S3S3R3",
	'C': "R1S1S1S1S1" + "S0E0E0E0E0" + "S0E0E0E0E0" + "S0E0E0E0E0" + "R0S3S3S3S3",
	'D': "L1S1S1S1R2" + "S0E0E0E0S2" + "S0E0E0E0S2" + "S0E0E0E0S2" + "L0S3S3S3R3",
	'E': "L1S1S1S1S1" + "S0E0E0E0E0" + "J0C1C1C1E0" + "S0E0E0E0E0" + "L0S3S3S3S3",
	'F': "L1S1S1S1S1" + "S0E0E0E0E0" + "J0C1C1C1E0" + "S0E0E0E0E0" + "S0E0E0E0E0",
	'G': "R1S1S1S1S1" + "S0E0E0E0E0" + "S0E0E0S1L2" + "S0E0E0E0S2" + "R0S3S3S3R3",
	'H': "S0E0E0E0S2" + "S0E0E0E0S2" + "J0C1C1C1J2" + "S0E0E0E0S2" + "S0E0E0E0S2",
	'I': "S1S1J1S1S1" + "E0E0C0E0E0" + "E0E0C0E0E0" + "E0E0C0E0E0" + "S3S3J3S3S3",
	'J': "E0E0E0E0S2" + "E0E0E0E0S2" + "E0E0E0E0S2" + "S0E0E0E0S2" + "R0S3S3S3R3",
	'K': "S0E0E0E0S2" + "S0E0E0E0S2" + "J0C1C1C1B3" + "S0E0E0E0S2" + "S0E0E0E0S2",
	'L': "S0E0E0E0E0" + "S0E0E0E0E0" + "S0E0E0E0E0" + "S0E0E0E0E0" + "L0S3S3S3S3",
	'M': "L1S1J1S1R2" + "S0E0C0E0S2" + "S0E0C0E0S2" + "S0E0E0E0S2" + "S0E0E0E0S2",
	'N': "L1S1S1S1R2" + "S0E0E0E0S2" + "S0E0E0E0S2" + "S0E0E0E0S2" + "S0E0E0E0S2",
	'O': "R1S1S1S1R2" + "S0E0E0E0S2" + "S0E0E0E0S2" + "S0E0E0E0S2" + "R0S3S3S3R3",
	'P': "L1S1S1S1R2" + "S0E0E0E0S2" + "L0S3S3S3R3" + "S0E0E0E0E0" + "S0E0E0E0E0",
	'Q': "R1S1S1S1R2" + "S0E0E0E0S2" + "S0E0E0E0S2" + "S0E0E0B0S2" + "R0S3S3S3L3",
	'R': "L1S1S1S1R2" + "S0E0E0E0S2" + "L0S3S3S3L3" + "S0E0E0E0S2" + "S0E0E0E0S2",
	'S': "R1S1S1S1S1" + "S0E0E0E0E0" + "R0S3S3S3E0" + "E0E0E0E0R2" + "S3S3S3S3R3",
	'T': "S1S1J1S1S1" + "E0E0C0E0E0" + "E0E0C0E0E0" + "E0E0C0E0E0" + "E0E0C0E0E0",
	'U': "S0E0E0E0S2" + "S0E0E0E0S2" + "S0E0E0E0S2" + "S0E0E0E0S2" + "R0S3S3S3R3",
	'V': "S0E0E0E0S2" + "S0E0E0E0S2" + "S0E0E0E0S2" + "R0E0E0E0R3" + "E0R0S3R3E0",
	'W': "S0E0E0E0S2" + "S0E0E0E0S2" + "S0E0C0E0S2" + "S0E0C0E0S2" + "L0S3J3S3L3",
	'X': "S0E0E0E0S2" + "R0S3B0S3R3" + "E0E0C0E0E0" + "R1S1B2S1R2" + "S0E0E0E0S2",
	'Y': "S0E0E0E0S2" + "R0S3S3S3R3" + "E0E0C0E0E0" + "E0E0C0E0E0" + "E0E0C0E0E0",
	'Z': "S1S1S1S1R2" + "E0E0E0E0S2" + "R1S1S1S1R3" + "S0E0E0E0E0" + "L0S3S3S3S3",

	// Cyrillic letters without a Latin twin
	'Б': "L1S1S1S1S1" + "S0E0E0E0E0" + "L0S3S3S3E0" + "S0E0E0E0R2" + "L0S3S3S3R3",
	'Г': "L1S1S1S1S1" + "S0E0E0E0E0" + "S0E0E0E0E0" + "S0E0E0E0E0" + "S0E0E0E0E0",
	'Д': "E0L1S1S1L2" + "E0S0E0E0S2" + "E0S0E0E0S2" + "E0S0E0E0S2" + "L1S1S1S1L2",
	'Ж': "S0E0C0E0S2" + "R0S3J3S3R3" + "E0E0C0E0E0" + "R1S1J1S1R2" + "S0E0C0E0S2",
	'З': "S1S1S1S1R2" + "E0E0E0E0S2" + "E0E0C1C1J2" + "E0E0E0E0S2" + "S3S3S3S3R3",
	'И': "S0E0E0E0S2" + "S0E0E0E0S2" + "S0E0E0E0S2" + "S0E0E0E0S2" + "R0S3S3S3L3",
	'Л': "E0R1S1S1L2" + "E0S0E0E0S2" + "E0S0E0E0S2" + "E0S0E0E0S2" + "S3R3E0E0S2",
	'П': "L1S1S1S1L2" + "S0E0E0E0S2" + "S0E0E0E0S2" + "S0E0E0E0S2" + "S0E0E0E0S2",
	'У': "S0E0E0E0S2" + "S0E0E0E0S2" + "R0S3S3S3L3" + "E0E0E0E0S2" + "S3S3S3S3R3",
	'Ф': "R1S1J1S1R2" + "S0E0C0E0S2" + "R0S3J3S3R3" + "E0E0C0E0E0" + "E0E0C0E0E0",
	'Ц': "S0E0E0S0E0" + "S0E0E0S0E0" + "S0E0E0S0E0" + "S0E0E0S0E0" + "L0S3S3L0S3",
	'Ч': "S0E0E0E0S2" + "S0E0E0E0S2" + "R0S3S3S3L3" + "E0E0E0E0S2" + "E0E0E0E0S2",
	'Ш': "S0E0C0E0S2" + "S0E0C0E0S2" + "S0E0C0E0S2" + "S0E0C0E0S2" + "L0S3J3S3L3",
	'Щ': "S0E0C0E0S2" + "S0E0C0E0S2" + "S0E0C0E0S2" + "S0E0C0E0S2" + "L0S3J3S3J3",
	'Ъ': "S1L2E0E0E0" + "E0S2E0E0E0" + "E0S2S1S1R2" + "E0S2E0E0S2" + "E0S2S3S3R3",
	'Ы': "S0E0E0E0S2" + "S0E0E0E0S2" + "S0S1R2E0S2" + "S0E0S2E0S2" + "L0S3R3E0S2",
	'Ь': "S0E0E0E0E0" + "S0E0E0E0E0" + "S0S1S1S1R2" + "S0E0E0E0S2" + "L0S3S3S3R3",
	'Э': "R1S1S1S1R2" + "E0E0E0E0S2" + "E0C1C1C1J2" + "E0E0E0E0S2" + "R0S3S3S3R3",
	'Ю': "S0E0R1S1R2" + "S0E0S0E0S2" + "J0C1J0E0S2" + "S0E0S0E0S2" + "S0E0R0S3R3",
	'Я': "R1S1S1S1L2" + "S0E0E0E0S2" + "R0S3S3S3L3" + "S0E0E0E0S2" + "S0E0E0E0S2",
}

// Cyrillic letters drawn exactly like a Latin one.
var twins = map[rune]rune{
	'А': 'A', 'В': 'B', 'Е': 'E', 'Ё': 'E', 'К': 'K', 'М': 'M', 'Н': 'H',
	'О': 'O', 'Р': 'P', 'С': 'C', 'Т': 'T', 'Х': 'X', 'Й': 'И',
}

// Table maps runes to glyph codes for a fixed grid size.
type Table struct {
	cols, rows int
	codes      map[rune]Code
}

// NewTable builds a table from codes, validating every entry. A space
// entry is added when missing so lookups always have a fallback.
func NewTable(cols, rows int, codes map[rune]Code) (*Table, error) {
	t := &Table{cols: cols, rows: rows, codes: make(map[rune]Code, len(codes)+1)}
	for r, code := range codes {
		if err := Validate(code, cols, rows); err != nil {
			return nil, fmt.Errorf("rune %q: %w", r, err)
		}
		t.codes[r] = code
	}
	if _, ok := t.codes[' ']; !ok {
		t.codes[' '] = blankCode(cols, rows)
	}
	return t, nil
}

// MustTable is NewTable for data owned by the program: a malformed code
// is a programming error and panics.
func MustTable(cols, rows int, codes map[rune]Code) *Table {
	t, err := NewTable(cols, rows, codes)
	if err != nil {
		panic(err)
	}
	return t
}

var defaultTable = MustTable(Cols, Rows, builtinCodes())

func builtinCodes() map[rune]Code {
	codes := make(map[rune]Code, len(builtin)+len(twins))
	for r, c := range builtin {
		codes[r] = c
	}
	for r, latin := range twins {
		codes[r] = builtin[latin]
	}
	return codes
}

// Default returns the builtin Void table.
func Default() *Table {
	return defaultTable
}

// Lookup resolves r in the builtin table.
func Lookup(r rune) Code {
	return defaultTable.Lookup(r)
}

// Lookup returns the code for r, or the space code when r is absent.
func (t *Table) Lookup(r rune) Code {
	code, _ := t.LookupOK(r)
	return code
}

// LookupOK is Lookup that also reports whether r was defined.
func (t *Table) LookupOK(r rune) (Code, bool) {
	if code, ok := t.codes[r]; ok {
		return code, true
	}
	return t.codes[' '], false
}

// Cols returns the grid width of the table's glyphs.
func (t *Table) Cols() int { return t.cols }

// Rows returns the grid height of the table's glyphs.
func (t *Table) Rows() int { return t.rows }

// Len returns the number of defined runes.
func (t *Table) Len() int { return len(t.codes) }

// Runes returns the defined runes in ascending order.
func (t *Table) Runes() []rune {
	out := make([]rune, 0, len(t.codes))
	for r := range t.codes {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// With returns a copy of t where codes override existing entries. The
// grid size must match.
func (t *Table) With(codes map[rune]Code) (*Table, error) {
	merged := make(map[rune]Code, len(t.codes)+len(codes))
	for r, c := range t.codes {
		merged[r] = c
	}
	for r, c := range codes {
		merged[r] = c
	}
	return NewTable(t.cols, t.rows, merged)
}

func blankCode(cols, rows int) Code {
	buf := make([]byte, 0, cols*rows*2)
	for i := 0; i < cols*rows; i++ {
		buf = append(buf, 'E', '0')
	}
	return Code(buf)
}
