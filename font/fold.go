package font

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Replacement is drawn for characters that have no ASCII form.
const Replacement = '?'

// Fold maps s onto the printable ASCII range covered by a glyph table.
// Characters are decomposed and combining marks dropped, so "café" becomes
// "cafe"; whatever is still outside ' '..'~' is replaced with Replacement.
func Fold(s string) string {
	if printable(s) {
		return s
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	out := make([]byte, 0, len(stripped))
	for _, r := range stripped {
		if r >= ' ' && r <= '~' {
			out = append(out, byte(r))
		} else {
			out = append(out, Replacement)
		}
	}
	return string(out)
}

func printable(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < ' ' || s[i] > '~' {
			return false
		}
	}
	return true
}
