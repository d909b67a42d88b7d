package stringutils

import (
	"strings"
	"unicode/utf8"
)

// SanitizeText drops NUL, C0/C1 control characters (except tab, newline and
// carriage return) and invalid UTF-8 from user supplied text before it is
// forwarded upstream.
func SanitizeText(s string) string {
	if utf8.ValidString(s) && strings.IndexFunc(s, isControl) < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		if (r == utf8.RuneError && size == 1) || isControl(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isControl(r rune) bool {
	switch r {
	case '\t', '\n', '\r':
		return false
	}
	return r < 32 || r == 127 || (r >= 128 && r <= 159)
}
