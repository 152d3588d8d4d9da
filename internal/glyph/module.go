// Package glyph holds the Void alphabet: module types, rotations, exit
// sides and the table mapping runes to glyph codes.
package glyph

// Grid dimensions of every builtin glyph.
const (
	Cols = 5
	Rows = 5
)

// ModuleType identifies the stroke shape drawn in one grid cell.
type ModuleType uint8

// Module types in glyph-code letter order.
const (
	Straight ModuleType = iota // S: edge-aligned vertical bar
	Central                    // C: centred vertical bar
	Joint                      // J: edge bar plus centred crossbar
	Link                       // L: edge bar plus bottom bar (corner)
	Round                      // R: wide quarter ring
	Bend                       // B: tight quarter fillet
	Empty                      // E: nothing
)

var typeLetters = [...]byte{
	Straight: 'S',
	Central:  'C',
	Joint:    'J',
	Link:     'L',
	Round:    'R',
	Bend:     'B',
	Empty:    'E',
}

var typeNames = [...]string{
	Straight: "straight",
	Central:  "central",
	Joint:    "joint",
	Link:     "link",
	Round:    "round",
	Bend:     "bend",
	Empty:    "empty",
}

// ParseType maps a glyph-code letter to its module type.
func ParseType(b byte) (ModuleType, bool) {
	for t, l := range typeLetters {
		if l == b {
			return ModuleType(t), true
		}
	}
	return Empty, false
}

// Letter returns the glyph-code letter for t.
func (t ModuleType) Letter() byte {
	if int(t) < len(typeLetters) {
		return typeLetters[t]
	}
	return '?'
}

// String returns the lower-case name of t.
func (t ModuleType) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "unknown"
}

// IsArc reports whether t is drawn as an annular sector.
func (t ModuleType) IsArc() bool {
	return t == Round || t == Bend
}

// Types lists every module type, Empty last.
func Types() []ModuleType {
	return []ModuleType{Straight, Central, Joint, Link, Round, Bend, Empty}
}

// Side is one edge of a grid cell. Sides are ordered clockwise so that a
// quarter turn of the cell advances every side by one.
type Side uint8

// Cell sides in clockwise order.
const (
	Top Side = iota
	Right
	Bottom
	Left
)

var sideNames = [...]string{"top", "right", "bottom", "left"}

func (s Side) String() string {
	if int(s) < len(sideNames) {
		return sideNames[s]
	}
	return "unknown"
}

// Opposite returns the side facing s across a shared edge.
func (s Side) Opposite() Side {
	return (s + 2) % 4
}

// Rotate advances s by k clockwise quarter turns.
func (s Side) Rotate(k int) Side {
	return Side((int(s) + normRotation(k)) % 4)
}

// Offset returns the grid step from a cell to its neighbour across s.
func (s Side) Offset() (dc, dr int) {
	switch s {
	case Top:
		return 0, -1
	case Right:
		return 1, 0
	case Bottom:
		return 0, 1
	default:
		return -1, 0
	}
}

// Sides lists all four sides clockwise from Top.
func Sides() []Side {
	return []Side{Top, Right, Bottom, Left}
}

// SideSet is a bitmask of sides; bit i is Side(i).
type SideSet uint8

// Of builds a set from the given sides.
func Of(sides ...Side) SideSet {
	var set SideSet
	for _, s := range sides {
		set |= 1 << s
	}
	return set
}

// Has reports whether s is in the set.
func (set SideSet) Has(s Side) bool {
	return set&(1<<s) != 0
}

// Intersects reports whether the two sets share a side.
func (set SideSet) Intersects(other SideSet) bool {
	return set&other != 0
}

// Rotate shifts every side in the set by k clockwise quarter turns.
func (set SideSet) Rotate(k int) SideSet {
	k = normRotation(k)
	v := uint8(set) & 0x0f
	return SideSet(((v << k) | (v >> (4 - k))) & 0x0f)
}

// Sides returns the members of the set in clockwise order.
func (set SideSet) Sides() []Side {
	out := make([]Side, 0, 4)
	for _, s := range Sides() {
		if set.Has(s) {
			out = append(out, s)
		}
	}
	return out
}

// Len returns the number of sides in the set.
func (set SideSet) Len() int {
	n := 0
	for v := uint8(set) & 0x0f; v != 0; v &= v - 1 {
		n++
	}
	return n
}

// canonicalExits holds the exit sides of each type at rotation 0. The
// geometry resolver draws the same strokes, so rotating these sets gives
// the sides a rendered module actually touches.
var canonicalExits = [...]SideSet{
	Straight: Of(Top, Bottom),
	Central:  Of(Top, Bottom),
	Joint:    Of(Top, Right, Bottom),
	Link:     Of(Top, Right),
	Round:    Of(Top, Right),
	Bend:     Of(Top, Right),
	Empty:    0,
}

// CanonicalExits returns the exit sides of t at rotation 0.
func CanonicalExits(t ModuleType) SideSet {
	if int(t) < len(canonicalExits) {
		return canonicalExits[t]
	}
	return 0
}

// Exits returns the exit sides of t rotated by rot quarter turns.
func Exits(t ModuleType, rot int) SideSet {
	return CanonicalExits(t).Rotate(rot)
}

func normRotation(k int) int {
	k %= 4
	if k < 0 {
		k += 4
	}
	return k
}
