package voidtype

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/ryanlewis/voidtype/internal/common"
	"github.com/ryanlewis/voidtype/internal/glyph"
	"github.com/ryanlewis/voidtype/internal/parser"
)

// Alphabet is an immutable rune-to-glyph table that can be shared across
// goroutines. Alphabets on the builtin 5x5 grid extend the builtin glyphs;
// other grid sizes stand alone.
type Alphabet struct {
	// Name comes from the file's name field, or the file name when absent
	Name string
	// Warnings lists entries accepted with a caveat
	Warnings []string

	table *glyph.Table
}

var builtinAlphabet = &Alphabet{Name: "void", table: glyph.Default()}

// BuiltinAlphabet returns the builtin Void alphabet.
func BuiltinAlphabet() *Alphabet {
	return builtinAlphabet
}

// Lookup returns the glyph code for r, or the space code and false when r
// has no glyph.
func (a *Alphabet) Lookup(r rune) (string, bool) {
	code, ok := a.tableOrDefault().LookupOK(r)
	return string(code), ok
}

// Runes returns every rune with a glyph, sorted.
func (a *Alphabet) Runes() []rune { return a.tableOrDefault().Runes() }

// Len returns the number of glyphs.
func (a *Alphabet) Len() int { return a.tableOrDefault().Len() }

// Cols returns the grid width of the alphabet's glyphs.
func (a *Alphabet) Cols() int { return a.tableOrDefault().Cols() }

// Rows returns the grid height of the alphabet's glyphs.
func (a *Alphabet) Rows() int { return a.tableOrDefault().Rows() }

func (a *Alphabet) tableOrDefault() *glyph.Table {
	if a == nil || a.table == nil {
		return glyph.Default()
	}
	return a.table
}

// WriteTo encodes the alphabet as a YAML alphabet file.
func (a *Alphabet) WriteTo(w io.Writer) (int64, error) {
	t := a.tableOrDefault()
	pa := &parser.Alphabet{Name: a.Name, Cols: t.Cols(), Rows: t.Rows(), Glyphs: make(map[rune]glyph.Code, t.Len())}
	for _, r := range t.Runes() {
		pa.Glyphs[r] = t.Lookup(r)
	}
	cw := &countingWriter{w: w}
	err := parser.Write(cw, pa)
	return cw.n, err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// ParseAlphabet reads a YAML alphabet file. Every code is validated;
// a malformed one fails the whole file with ErrMalformedCode.
//
// Example:
//
//	f, err := os.Open("extra.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer f.Close()
//
//	alpha, err := voidtype.ParseAlphabet(f)
func ParseAlphabet(r io.Reader) (*Alphabet, error) {
	pa, err := parser.Parse(r)
	if err != nil {
		return nil, err
	}
	return fromParser(pa)
}

// ParseAlphabetBytes is ParseAlphabet for data in memory.
func ParseAlphabetBytes(data []byte) (*Alphabet, error) {
	return ParseAlphabet(bytes.NewReader(data))
}

func fromParser(pa *parser.Alphabet) (*Alphabet, error) {
	var (
		table *glyph.Table
		err   error
	)
	if pa.Cols == glyph.Cols && pa.Rows == glyph.Rows {
		table, err = glyph.Default().With(pa.Glyphs)
	} else {
		table, err = pa.Table()
	}
	if err != nil {
		return nil, err
	}
	for _, w := range pa.Warnings {
		common.Logger().Warn("alphabet", "name", pa.Name, "warning", w)
	}
	return &Alphabet{Name: pa.Name, Warnings: pa.Warnings, table: table}, nil
}

// LoadAlphabet reads an alphabet file from disk.
func LoadAlphabet(filename string) (*Alphabet, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open alphabet file: %w", err)
	}
	defer f.Close()

	a, err := ParseAlphabet(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse alphabet %s: %w", filename, err)
	}
	if a.Name == "" {
		base := filepath.Base(filename)
		a.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return a, nil
}

// LoadAlphabetFS reads an alphabet file from fsys. Path traversal is
// rejected.
//
// Example with embed.FS:
//
//	//go:embed alphabets/*.yaml
//	var alphabets embed.FS
//
//	alpha, err := voidtype.LoadAlphabetFS(alphabets, "alphabets/extra.yaml")
func LoadAlphabetFS(fsys fs.FS, name string) (*Alphabet, error) {
	if fsys == nil {
		return nil, errors.New("filesystem cannot be nil")
	}
	clean, err := cleanFSPath(name)
	if err != nil {
		return nil, err
	}
	f, err := fsys.Open(clean)
	if err != nil {
		return nil, fmt.Errorf("failed to open alphabet file: %w", err)
	}
	defer f.Close()

	a, err := ParseAlphabet(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse alphabet %s: %w", clean, err)
	}
	if a.Name == "" {
		a.Name = strings.TrimSuffix(path.Base(clean), path.Ext(clean))
	}
	return a, nil
}

// cleanFSPath checks p against fs.ValidPath rules and refuses anything
// that could leave the root.
func cleanFSPath(p string) (string, error) {
	switch {
	case p == "":
		return "", errors.New("path cannot be empty")
	case strings.HasPrefix(p, "/"):
		return "", errors.New("absolute paths not allowed")
	case strings.ContainsRune(p, '\\'):
		return "", errors.New("backslashes not allowed in fs paths")
	case !fs.ValidPath(p):
		return "", fmt.Errorf("invalid fs path: %s", p)
	}
	clean := path.Clean(p)
	if clean == "." || strings.HasPrefix(clean, "../") {
		return "", errors.New("path traversal not allowed")
	}
	return clean, nil
}
