package glyph

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Normalize prepares user text for lookup: it composes decomposed
// sequences (И + combining breve becomes Й) and upper-cases, since the
// alphabet only defines capitals. Line breaks are preserved and CRLF is
// folded to LF.
func Normalize(text string) string {
	text = norm.NFC.String(text)
	text = cases.Upper(language.Und).String(text)
	out := make([]rune, 0, len(text))
	prevCR := false
	for _, r := range text {
		switch {
		case r == '\r':
			out = append(out, '\n')
			prevCR = true
			continue
		case r == '\n' && prevCR:
		case r == '\t':
			out = append(out, ' ')
		default:
			out = append(out, r)
		}
		prevCR = false
	}
	return string(out)
}
