package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// HasUpper reports whether s contains an uppercase letter.
func HasUpper(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

// Capitalize uppercases the first letter of s and leaves the rest alone.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// cutSuffix is strings.CutSuffix that refuses to consume the whole string.
func cutSuffix(s, suffix string) (string, bool) {
	if len(s) <= len(suffix) {
		return s, false
	}
	return strings.CutSuffix(s, suffix)
}
