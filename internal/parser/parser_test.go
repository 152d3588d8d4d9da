package parser

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryanlewis/voidtype/internal/glyph"
)

const ntilde = `name: extra
glyphs:
  "Ñ":
    - S1 S1 S1 S1 S1
    - L1 S1 S1 S1 R2
    - S0 E0 E0 E0 S2
    - S0 E0 E0 E0 S2
    - S0 E0 E0 E0 S2
  "·": E0E0E0E0E0E0E0E0E0E0E0E0C0E0E0E0E0E0E0E0E0E0E0E0E0
`

func TestParse(t *testing.T) {
	a, err := Parse(strings.NewReader(ntilde))
	require.NoError(t, err)

	assert.Equal(t, "extra", a.Name)
	assert.Equal(t, glyph.Cols, a.Cols)
	assert.Equal(t, glyph.Rows, a.Rows)
	assert.Equal(t, []rune{'·', 'Ñ'}, a.Runes())
	assert.Equal(t, glyph.Code("S1S1S1S1S1L1S1S1S1R2S0E0E0E0S2S0E0E0E0S2S0E0E0E0S2"), a.Glyphs['Ñ'])
	assert.Empty(t, a.Warnings)

	table, err := a.Table()
	require.NoError(t, err)
	code, ok := table.LookupOK('·')
	assert.True(t, ok)
	assert.Equal(t, glyph.Central, code.Cell(12, 5).Type)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		malformed bool
		contains  string
	}{
		{
			name:     "empty document",
			input:    "",
			contains: "empty document",
		},
		{
			name:     "no glyphs",
			input:    "name: nothing\n",
			contains: "no glyphs",
		},
		{
			name:     "unknown field",
			input:    "glyph:\n  A: S0\n",
			contains: "invalid alphabet",
		},
		{
			name:     "multi-rune key",
			input:    "glyphs:\n  AB: " + strings.Repeat("E0", 25) + "\n",
			contains: "exactly one character",
		},
		{
			name:      "short code",
			input:     "glyphs:\n  A: S0S0\n",
			malformed: true,
			contains:  `glyph "A"`,
		},
		{
			name:      "bad module letter",
			input:     "glyphs:\n  A: X0" + strings.Repeat("E0", 24) + "\n",
			malformed: true,
			contains:  "unknown module type",
		},
		{
			name:      "bad rotation",
			input:     "glyphs:\n  A: S4" + strings.Repeat("E0", 24) + "\n",
			malformed: true,
			contains:  "invalid rotation",
		},
		{
			name:     "code as mapping",
			input:    "glyphs:\n  A:\n    row: S0\n",
			contains: "string or a list of rows",
		},
		{
			name:     "grid too large",
			input:    "cols: 100\nglyphs:\n  A: S0\n",
			contains: "out of range",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBytes([]byte(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
			if tt.malformed {
				assert.True(t, errors.Is(err, glyph.ErrMalformedCode), "want ErrMalformedCode, got %v", err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidAlphabet)
			}
		})
	}
}

func TestParseCustomGrid(t *testing.T) {
	a, err := ParseBytes([]byte("cols: 3\nrows: 1\nglyphs:\n  \"-\": C1 C1 C1\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, a.Cols)
	assert.Equal(t, 1, a.Rows)
	assert.Equal(t, glyph.Code("C1C1C1"), a.Glyphs['-'])
}

func TestParseWarnsOnLowerCase(t *testing.T) {
	a, err := ParseBytes([]byte("glyphs:\n  q: " + strings.Repeat("E0", 25) + "\n"))
	require.NoError(t, err)
	require.Len(t, a.Warnings, 1)
	assert.Contains(t, a.Warnings[0], "lower case")
}

func TestParseTooLarge(t *testing.T) {
	big := bytes.Repeat([]byte("#"), maxAlphabetSize+10)
	_, err := Parse(bytes.NewReader(big))
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestWriteRoundTrip(t *testing.T) {
	src, err := ParseBytes([]byte(ntilde))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, src))
	assert.Contains(t, buf.String(), "- S1 S1 S1 S1 S1")
	assert.Contains(t, buf.String(), `"Ñ":`)

	back, err := Parse(&buf)
	require.NoError(t, err)
	assert.Equal(t, src.Name, back.Name)
	assert.Equal(t, src.Glyphs, back.Glyphs)
}

func TestWriteBuiltinTable(t *testing.T) {
	table := glyph.Default()
	a := &Alphabet{Cols: table.Cols(), Rows: table.Rows(), Glyphs: map[rune]glyph.Code{}}
	for _, r := range table.Runes() {
		a.Glyphs[r] = table.Lookup(r)
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, a))
	back, err := Parse(&buf)
	require.NoError(t, err)
	assert.Equal(t, a.Glyphs, back.Glyphs)
}

func BenchmarkParse(b *testing.B) {
	data := []byte(ntilde)
	for i := 0; i < b.N; i++ {
		if _, err := Parse(bytes.NewReader(data)); err != nil {
			b.Fatal(err)
		}
	}
}
