// Package parser reads Void alphabet files: YAML documents mapping runes
// to glyph codes.
//
//	name: extra
//	cols: 5
//	rows: 5
//	glyphs:
//	  "Ñ": S0E0E0E0S2S0E0...
//	  "Ç":
//	    - R1 S1 S1 S1 S1
//	    - S0 E0 E0 E0 E0
//	    - ...
//
// A code is either one string or a list of row strings; whitespace inside
// a code is ignored. Grid size defaults to 5x5.
package parser

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/ryanlewis/voidtype/internal/glyph"
)

const (
	// maxAlphabetSize bounds the bytes read from one alphabet file
	maxAlphabetSize = 4 * 1024 * 1024
	// maxGrid bounds either grid dimension
	maxGrid = 64
)

var (
	// ErrInvalidAlphabet reports a document that is not a usable alphabet.
	ErrInvalidAlphabet = errors.New("parser: invalid alphabet")
	// ErrTooLarge reports an alphabet file over the size limit.
	ErrTooLarge = errors.New("parser: alphabet file too large")
)

// Alphabet is a parsed alphabet file.
type Alphabet struct {
	Name   string
	Cols   int
	Rows   int
	Glyphs map[rune]glyph.Code
	// Warnings lists entries that were accepted but look suspicious,
	// such as lower-case keys that lookups will never reach.
	Warnings []string
}

// Runes returns the defined runes in ascending order.
func (a *Alphabet) Runes() []rune {
	out := make([]rune, 0, len(a.Glyphs))
	for r := range a.Glyphs {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Table builds a lookup table from the alphabet.
func (a *Alphabet) Table() (*glyph.Table, error) {
	return glyph.NewTable(a.Cols, a.Rows, a.Glyphs)
}

// document is the YAML shape of an alphabet file.
type document struct {
	Name   string               `yaml:"name,omitempty"`
	Cols   int                  `yaml:"cols,omitempty"`
	Rows   int                  `yaml:"rows,omitempty"`
	Glyphs map[string]codeValue `yaml:"glyphs"`
}

// codeValue accepts a code as a scalar or as a sequence of row strings.
type codeValue struct {
	rows []string
}

func (c *codeValue) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		c.rows = []string{n.Value}
		return nil
	case yaml.SequenceNode:
		c.rows = make([]string, 0, len(n.Content))
		for _, item := range n.Content {
			if item.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: code rows must be strings", item.Line)
			}
			c.rows = append(c.rows, item.Value)
		}
		return nil
	default:
		return fmt.Errorf("line %d: code must be a string or a list of rows", n.Line)
	}
}

func (c codeValue) code() glyph.Code {
	var b strings.Builder
	for _, row := range c.rows {
		for _, r := range row {
			if !unicode.IsSpace(r) {
				b.WriteRune(r)
			}
		}
	}
	return glyph.Code(b.String())
}

// Parse reads one alphabet document from r and validates every code.
func Parse(r io.Reader) (*Alphabet, error) {
	buf := acquireReadBuffer()
	defer releaseReadBuffer(buf)

	n, err := buf.ReadFrom(io.LimitReader(r, maxAlphabetSize+1))
	if err != nil {
		return nil, fmt.Errorf("read alphabet: %w", err)
	}
	if n > maxAlphabetSize {
		return nil, ErrTooLarge
	}
	return ParseBytes(buf.Bytes())
}

// ParseBytes parses an alphabet document held in memory.
func ParseBytes(data []byte) (*Alphabet, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidAlphabet)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidAlphabet, err)
	}
	return build(&doc)
}

func build(doc *document) (*Alphabet, error) {
	a := &Alphabet{
		Name:   doc.Name,
		Cols:   doc.Cols,
		Rows:   doc.Rows,
		Glyphs: make(map[rune]glyph.Code, len(doc.Glyphs)),
	}
	if a.Cols == 0 {
		a.Cols = glyph.Cols
	}
	if a.Rows == 0 {
		a.Rows = glyph.Rows
	}
	if a.Cols < 1 || a.Rows < 1 || a.Cols > maxGrid || a.Rows > maxGrid {
		return nil, fmt.Errorf("%w: grid %dx%d out of range", ErrInvalidAlphabet, a.Cols, a.Rows)
	}
	if len(doc.Glyphs) == 0 {
		return nil, fmt.Errorf("%w: no glyphs", ErrInvalidAlphabet)
	}

	keys := make([]string, 0, len(doc.Glyphs))
	for k := range doc.Glyphs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		r, size := utf8.DecodeRuneInString(key)
		if r == utf8.RuneError || size != len(key) {
			return nil, fmt.Errorf("%w: key %q must be exactly one character", ErrInvalidAlphabet, key)
		}
		if r == '\n' {
			return nil, fmt.Errorf("%w: newline cannot have a glyph", ErrInvalidAlphabet)
		}
		code := doc.Glyphs[key].code()
		if err := glyph.Validate(code, a.Cols, a.Rows); err != nil {
			return nil, fmt.Errorf("glyph %q: %w", key, err)
		}
		if unicode.IsLower(r) {
			a.Warnings = append(a.Warnings, fmt.Sprintf("glyph %q is lower case; text is upper-cased before lookup", key))
		}
		a.Glyphs[r] = code
	}
	return a, nil
}

// Write encodes a as an alphabet document, one row per list entry.
func Write(w io.Writer, a *Alphabet) error {
	glyphs := &yaml.Node{Kind: yaml.MappingNode}
	for _, r := range a.Runes() {
		code := a.Glyphs[r]
		rows := &yaml.Node{Kind: yaml.SequenceNode}
		width := a.Cols * 2
		for i := 0; i+width <= len(code); i += width {
			rows.Content = append(rows.Content, &yaml.Node{
				Kind:  yaml.ScalarNode,
				Value: spaced(string(code[i : i+width])),
			})
		}
		glyphs.Content = append(glyphs.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: string(r), Style: yaml.DoubleQuotedStyle},
			rows)
	}

	root := &yaml.Node{Kind: yaml.MappingNode}
	add := func(key string, value *yaml.Node) {
		root.Content = append(root.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: key}, value)
	}
	if a.Name != "" {
		add("name", &yaml.Node{Kind: yaml.ScalarNode, Value: a.Name})
	}
	add("cols", &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprint(a.Cols)})
	add("rows", &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprint(a.Rows)})
	add("glyphs", glyphs)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}); err != nil {
		return fmt.Errorf("encode alphabet: %w", err)
	}
	return enc.Close()
}

// spaced separates code pairs with single spaces.
func spaced(row string) string {
	var b strings.Builder
	b.Grow(len(row) + len(row)/2)
	for i := 0; i+1 < len(row); i += 2 {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(row[i : i+2])
	}
	return b.String()
}
