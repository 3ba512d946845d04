package quiz

import "strings"

// NormalizeAnswer maps free text to a canonical comparable form: lowercased,
// with whitespace and everything outside Latin letters, Cyrillic letters and
// digits stripped. Two answers are equal iff their normalized forms are equal.
func NormalizeAnswer(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'а' && r <= 'я', r == 'ё':
			b.WriteRune(r)
		}
	}
	return b.String()
}
