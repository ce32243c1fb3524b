package render

import (
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// punctuation maps typographic characters to ASCII before encoding.
var punctuation = strings.NewReplacer(
	"–", "-", // en dash
	"—", "-", // em dash
	"‘", "'",
	"’", "'",
	"“", `"`,
	"”", `"`,
	"…", "...",
)

// Sanitize restricts s to characters ISO-8859-1 can encode. Known punctuation is
// replaced with ASCII, anything else outside the range is dropped. It returns the
// cleaned text and the number of runes dropped.
func Sanitize(s string) (string, int) {
	s = punctuation.Replace(s)

	var b strings.Builder
	b.Grow(len(s))
	dropped := 0
	for _, r := range s {
		if _, ok := charmap.ISO8859_1.EncodeRune(r); !ok {
			dropped++
			continue
		}
		b.WriteRune(r)
	}
	return b.String(), dropped
}

// latin1 sanitizes s and encodes it as single-byte ISO-8859-1, which is what
// the standard PDF fonts expect.
func latin1(s string) (string, int) {
	clean, dropped := Sanitize(s)
	encoded, err := charmap.ISO8859_1.NewEncoder().String(clean)
	if err != nil {
		// unreachable: clean only holds encodable runes
		return "", dropped + len([]rune(clean))
	}
	return encoded, dropped
}
